package postgres

import (
	"context"
	"fmt"
	"strings"

	"consent-gateway/internal/core/domain"
	"consent-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const accessLogColumns = `id, consent_id, party_id, third_party_id, request_id, psu_id,
	access_type, resource_type, resource_id, status, error_message, created_at`

// AccessLogRepo implements ports.AccessLogRepository. The table is
// append-only: there are no update or delete operations.
type AccessLogRepo struct {
	pool Pool
}

// NewAccessLogRepo creates a new AccessLogRepo.
func NewAccessLogRepo(pool Pool) *AccessLogRepo {
	return &AccessLogRepo{pool: pool}
}

// Create appends a new access log entry.
func (r *AccessLogRepo) Create(ctx context.Context, e *domain.AccessLogEntry) error {
	query := `INSERT INTO access_logs (id, consent_id, party_id, third_party_id, request_id, psu_id,
		access_type, resource_type, resource_id, status, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.ConsentID, e.PartyID, e.ThirdPartyID, e.RequestID, e.PSUID,
		e.AccessType, e.ResourceType, e.ResourceID, e.Status, e.ErrorMessage, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert access log: %w", err)
	}
	return nil
}

// CountByConsent counts successful accesses for a consent. Denied and failed
// attempts do not consume the consent's access frequency.
func (r *AccessLogRepo) CountByConsent(ctx context.Context, consentID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM access_logs WHERE consent_id = $1 AND status = 'SUCCESS'`

	var count int64
	err := r.pool.QueryRow(ctx, query, consentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count access logs: %w", err)
	}
	return count, nil
}

// ListByConsent fetches all entries for a consent, newest first.
func (r *AccessLogRepo) ListByConsent(ctx context.Context, consentID uuid.UUID) ([]domain.AccessLogEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM access_logs WHERE consent_id = $1 ORDER BY created_at DESC`, accessLogColumns)
	return r.queryEntries(ctx, query, consentID)
}

// ListByParty fetches all entries for a customer, newest first.
func (r *AccessLogRepo) ListByParty(ctx context.Context, partyID string) ([]domain.AccessLogEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM access_logs WHERE party_id = $1 ORDER BY created_at DESC`, accessLogColumns)
	return r.queryEntries(ctx, query, partyID)
}

// ListByProvider fetches all entries for a third-party provider, newest first.
func (r *AccessLogRepo) ListByProvider(ctx context.Context, thirdPartyID string) ([]domain.AccessLogEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM access_logs WHERE third_party_id = $1 ORDER BY created_at DESC`, accessLogColumns)
	return r.queryEntries(ctx, query, thirdPartyID)
}

// List fetches entries with filtering and pagination.
func (r *AccessLogRepo) List(ctx context.Context, params ports.AccessLogListParams) ([]domain.AccessLogEntry, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.ConsentID != nil {
		conditions = append(conditions, fmt.Sprintf("consent_id = $%d", argIdx))
		args = append(args, *params.ConsentID)
		argIdx++
	}
	if params.PartyID != nil {
		conditions = append(conditions, fmt.Sprintf("party_id = $%d", argIdx))
		args = append(args, *params.PartyID)
		argIdx++
	}
	if params.ThirdPartyID != nil {
		conditions = append(conditions, fmt.Sprintf("third_party_id = $%d", argIdx))
		args = append(args, *params.ThirdPartyID)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM access_logs %s", where)
	var total int64
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count access logs: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM access_logs %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		accessLogColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list access logs: %w", err)
	}
	defer rows.Close()

	entries, err := r.collectEntries(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *AccessLogRepo) queryEntries(ctx context.Context, query string, args ...any) ([]domain.AccessLogEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list access logs: %w", err)
	}
	defer rows.Close()

	return r.collectEntries(rows)
}

func (r *AccessLogRepo) collectEntries(rows pgx.Rows) ([]domain.AccessLogEntry, error) {
	var entries []domain.AccessLogEntry
	for rows.Next() {
		e := domain.AccessLogEntry{}
		err := rows.Scan(
			&e.ID, &e.ConsentID, &e.PartyID, &e.ThirdPartyID, &e.RequestID, &e.PSUID,
			&e.AccessType, &e.ResourceType, &e.ResourceID, &e.Status, &e.ErrorMessage, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan access log row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate access log rows: %w", err)
	}
	return entries, nil
}
