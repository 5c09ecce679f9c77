package integration

import (
	"context"
	"sort"
	"sync"
	"time"

	"consent-gateway/internal/core/domain"
	"consent-gateway/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Consent Repo ---

// inMemoryConsentRepo stores copies, like a real database: mutating a
// returned consent has no effect until it is upserted back.
type inMemoryConsentRepo struct {
	mu       sync.RWMutex
	consents map[uuid.UUID]domain.Consent
}

func newInMemoryConsentRepo() *inMemoryConsentRepo {
	return &inMemoryConsentRepo{consents: make(map[uuid.UUID]domain.Consent)}
}

func (r *inMemoryConsentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Consent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.consents[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *inMemoryConsentRepo) ListByParty(ctx context.Context, partyID string) ([]domain.Consent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Consent
	for _, c := range r.consents {
		if c.PartyID == partyID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *inMemoryConsentRepo) Upsert(ctx context.Context, c *domain.Consent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.consents[c.ID] = *c
	return nil
}

func (r *inMemoryConsentRepo) ListExpiredCandidates(ctx context.Context, now time.Time, limit int) ([]domain.Consent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Consent
	for _, c := range r.consents {
		if !c.ValidUntil.After(now) && (c.Status == domain.ConsentStatusReceived || c.Status == domain.ConsentStatusValid) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ValidUntil.Before(result[j].ValidUntil) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- In-Memory Access Log Repo ---

type inMemoryAccessLogRepo struct {
	mu      sync.RWMutex
	entries []domain.AccessLogEntry
}

func newInMemoryAccessLogRepo() *inMemoryAccessLogRepo {
	return &inMemoryAccessLogRepo{}
}

func (r *inMemoryAccessLogRepo) Create(ctx context.Context, e *domain.AccessLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *e)
	return nil
}

func (r *inMemoryAccessLogRepo) CountByConsent(ctx context.Context, consentID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, e := range r.entries {
		if e.ConsentID == consentID && e.Status == domain.AccessStatusSuccess {
			count++
		}
	}
	return count, nil
}

func (r *inMemoryAccessLogRepo) ListByConsent(ctx context.Context, consentID uuid.UUID) ([]domain.AccessLogEntry, error) {
	return r.filter(func(e domain.AccessLogEntry) bool { return e.ConsentID == consentID }), nil
}

func (r *inMemoryAccessLogRepo) ListByParty(ctx context.Context, partyID string) ([]domain.AccessLogEntry, error) {
	return r.filter(func(e domain.AccessLogEntry) bool { return e.PartyID == partyID }), nil
}

func (r *inMemoryAccessLogRepo) ListByProvider(ctx context.Context, thirdPartyID string) ([]domain.AccessLogEntry, error) {
	return r.filter(func(e domain.AccessLogEntry) bool { return e.ThirdPartyID == thirdPartyID }), nil
}

func (r *inMemoryAccessLogRepo) List(ctx context.Context, params ports.AccessLogListParams) ([]domain.AccessLogEntry, int64, error) {
	matched := r.filter(func(e domain.AccessLogEntry) bool {
		if params.ConsentID != nil && e.ConsentID != *params.ConsentID {
			return false
		}
		if params.PartyID != nil && e.PartyID != *params.PartyID {
			return false
		}
		if params.ThirdPartyID != nil && e.ThirdPartyID != *params.ThirdPartyID {
			return false
		}
		if params.Status != nil && e.Status != *params.Status {
			return false
		}
		if params.From != nil && e.CreatedAt.Before(*params.From) {
			return false
		}
		if params.To != nil && e.CreatedAt.After(*params.To) {
			return false
		}
		return true
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *inMemoryAccessLogRepo) filter(keep func(domain.AccessLogEntry) bool) []domain.AccessLogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.AccessLogEntry
	for _, e := range r.entries {
		if keep(e) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result
}
