package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"consent-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const consentColumns = `id, party_id, consent_type, status, valid_from, valid_until,
	access_frequency, access_scope, last_action_date, created_at, updated_at`

// ConsentRepo implements ports.ConsentRepository.
type ConsentRepo struct {
	pool Pool
}

// NewConsentRepo creates a new ConsentRepo.
func NewConsentRepo(pool Pool) *ConsentRepo {
	return &ConsentRepo{pool: pool}
}

// GetByID fetches a consent by UUID. Returns nil, nil if not found.
func (r *ConsentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Consent, error) {
	query := fmt.Sprintf(`SELECT %s FROM consents WHERE id = $1`, consentColumns)

	return r.scanConsent(r.pool.QueryRow(ctx, query, id))
}

// ListByParty fetches all consents owned by a customer, newest first.
func (r *ConsentRepo) ListByParty(ctx context.Context, partyID string) ([]domain.Consent, error) {
	query := fmt.Sprintf(`SELECT %s FROM consents WHERE party_id = $1 ORDER BY created_at DESC`, consentColumns)

	rows, err := r.pool.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("list consents by party: %w", err)
	}
	defer rows.Close()

	return r.collectConsents(rows)
}

// Upsert inserts a consent or fully replaces the stored row on ID conflict.
func (r *ConsentRepo) Upsert(ctx context.Context, c *domain.Consent) error {
	query := `INSERT INTO consents (id, party_id, consent_type, status, valid_from, valid_until,
		access_frequency, access_scope, last_action_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			party_id = EXCLUDED.party_id,
			consent_type = EXCLUDED.consent_type,
			status = EXCLUDED.status,
			valid_from = EXCLUDED.valid_from,
			valid_until = EXCLUDED.valid_until,
			access_frequency = EXCLUDED.access_frequency,
			access_scope = EXCLUDED.access_scope,
			last_action_date = EXCLUDED.last_action_date,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.PartyID, c.ConsentType, c.Status, c.ValidFrom, c.ValidUntil,
		c.AccessFrequency, c.AccessScope, c.LastActionDate, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert consent: %w", err)
	}
	return nil
}

// ListExpiredCandidates fetches consents whose validity window closed before
// now and that are still in a non-terminal status, oldest expiry first.
func (r *ConsentRepo) ListExpiredCandidates(ctx context.Context, now time.Time, limit int) ([]domain.Consent, error) {
	query := fmt.Sprintf(`SELECT %s FROM consents
		WHERE valid_until <= $1 AND status IN ('RECEIVED', 'VALID')
		ORDER BY valid_until ASC LIMIT $2`, consentColumns)

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list expired candidates: %w", err)
	}
	defer rows.Close()

	return r.collectConsents(rows)
}

func (r *ConsentRepo) collectConsents(rows pgx.Rows) ([]domain.Consent, error) {
	var consents []domain.Consent
	for rows.Next() {
		c := domain.Consent{}
		err := rows.Scan(
			&c.ID, &c.PartyID, &c.ConsentType, &c.Status, &c.ValidFrom, &c.ValidUntil,
			&c.AccessFrequency, &c.AccessScope, &c.LastActionDate, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan consent row: %w", err)
		}
		consents = append(consents, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate consent rows: %w", err)
	}
	return consents, nil
}

// scanConsent is a helper to scan a single row into a Consent.
func (r *ConsentRepo) scanConsent(row pgx.Row) (*domain.Consent, error) {
	c := &domain.Consent{}
	err := row.Scan(
		&c.ID, &c.PartyID, &c.ConsentType, &c.Status, &c.ValidFrom, &c.ValidUntil,
		&c.AccessFrequency, &c.AccessScope, &c.LastActionDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan consent: %w", err)
	}
	return c, nil
}
