package ports

import (
	"context"
	"time"

	"consent-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// UsageCache is the Redis-layer fast path for consent usage counts.
// It is best-effort: a miss or error falls back to the ledger count.
type UsageCache interface {
	// Get returns the cached usage count and whether the key was present.
	Get(ctx context.Context, consentID uuid.UUID) (int64, bool, error)
	Set(ctx context.Context, consentID uuid.UUID, count int64, ttl time.Duration) error
	// Incr increments an existing counter. A counter that is not present is
	// left absent so the cache never invents usage out of thin air.
	Incr(ctx context.Context, consentID uuid.UUID) error
}

// --- Service Ports (Business Logic) ---

// AuthorizationService decides whether a consent currently authorizes an
// access attempt. Denials are ordinary false results; errors signal that the
// decision could not be made at all.
type AuthorizationService interface {
	// Authorize runs the strict check: status, time window, party ownership,
	// scope table, and frequency throttle, in that order. On allow it stamps
	// the consent's LastActionDate.
	Authorize(ctx context.Context, req AuthorizeRequest) (bool, error)
	// ValidateConsent runs the loose check used as a quick gate before
	// dispatching to backend data ports: status, window, and a substring
	// match of the resource type against the consent's access scope. It has
	// no side effects.
	ValidateConsent(ctx context.Context, consentID, resourceType, accessType string) (bool, error)
}

// AuthorizeRequest holds validated input for the strict authorization check.
type AuthorizeRequest struct {
	ConsentID    uuid.UUID
	ResourceType domain.ResourceType
	PartyID      string // empty = skip the ownership check
	ThirdPartyID string
}

// ConsentService defines consent lifecycle management.
type ConsentService interface {
	Create(ctx context.Context, req CreateConsentRequest) (*domain.Consent, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Consent, error)
	GetStatus(ctx context.Context, id uuid.UUID) (domain.ConsentStatus, error)
	ListByParty(ctx context.Context, partyID string) ([]domain.Consent, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus domain.ConsentStatus) (*domain.Consent, error)
	Revoke(ctx context.Context, id uuid.UUID) (*domain.Consent, error)
	// ExpireOverdue transitions consents whose window has closed to EXPIRED
	// and returns how many were expired.
	ExpireOverdue(ctx context.Context, now time.Time, batchSize int) (int, error)
}

// CreateConsentRequest holds input for consent creation.
type CreateConsentRequest struct {
	PartyID         string
	ConsentType     domain.ConsentType
	ValidFrom       *time.Time // nil = now
	ValidUntil      time.Time
	AccessFrequency *int32
	AccessScope     string
}

// AccessLogService records access attempts on behalf of the data-access
// collaborators and exposes ledger queries. The authorization engine never
// writes ledger entries itself.
type AccessLogService interface {
	Record(ctx context.Context, req RecordAccessRequest) (*domain.AccessLogEntry, error)
	CountByConsent(ctx context.Context, consentID uuid.UUID) (int64, error)
	ListByConsent(ctx context.Context, consentID uuid.UUID) ([]domain.AccessLogEntry, error)
	ListByParty(ctx context.Context, partyID string) ([]domain.AccessLogEntry, error)
	ListByProvider(ctx context.Context, thirdPartyID string) ([]domain.AccessLogEntry, error)
	List(ctx context.Context, params AccessLogListParams) ([]domain.AccessLogEntry, int64, error)
}

// RecordAccessRequest holds input for recording one access attempt.
type RecordAccessRequest struct {
	ConsentID    uuid.UUID
	PartyID      string
	ThirdPartyID string
	RequestID    *string
	PSUID        *string
	AccessType   domain.AccessType
	ResourceType domain.ResourceType
	ResourceID   string
	Status       domain.AccessStatus
	ErrorMessage *string
}
