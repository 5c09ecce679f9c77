package ports

import (
	"context"
	"time"

	"consent-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// ConsentRepository defines persistence operations for consents.
type ConsentRepository interface {
	// GetByID fetches a consent by ID. Returns nil, nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Consent, error)
	ListByParty(ctx context.Context, partyID string) ([]domain.Consent, error)
	// Upsert stores the full consent record keyed by ID, replacing any
	// existing row. Fields not set on the passed consent are cleared.
	Upsert(ctx context.Context, consent *domain.Consent) error
	// ListExpiredCandidates returns non-terminal consents whose validity
	// window closed before now, up to limit rows. Used by the expiry sweeper.
	ListExpiredCandidates(ctx context.Context, now time.Time, limit int) ([]domain.Consent, error)
}

// AccessLogRepository defines persistence for the append-only access ledger.
// Entries are never updated or deleted.
type AccessLogRepository interface {
	Create(ctx context.Context, entry *domain.AccessLogEntry) error
	// CountByConsent counts SUCCESS entries for a consent. Feeds the
	// frequency throttle; eventual consistency with concurrent writers is
	// acceptable.
	CountByConsent(ctx context.Context, consentID uuid.UUID) (int64, error)
	ListByConsent(ctx context.Context, consentID uuid.UUID) ([]domain.AccessLogEntry, error)
	ListByParty(ctx context.Context, partyID string) ([]domain.AccessLogEntry, error)
	ListByProvider(ctx context.Context, thirdPartyID string) ([]domain.AccessLogEntry, error)
	List(ctx context.Context, params AccessLogListParams) ([]domain.AccessLogEntry, int64, error)
}

// AccessLogListParams holds filter + pagination for listing ledger entries.
type AccessLogListParams struct {
	ConsentID    *uuid.UUID
	PartyID      *string
	ThirdPartyID *string
	Status       *domain.AccessStatus
	From         *time.Time
	To           *time.Time
	Page         int
	PageSize     int
}
