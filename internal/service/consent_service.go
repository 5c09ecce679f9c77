package service

import (
	"context"
	"fmt"
	"time"

	"consent-gateway/internal/core/domain"
	"consent-gateway/internal/core/ports"
	"consent-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ConsentServiceImpl implements ports.ConsentService, the consent lifecycle
// manager. Unlike the authorization engine, direct lookups here surface an
// explicit not-found error rather than a fail-closed false: these operations
// are record management, not a security gate.
type ConsentServiceImpl struct {
	repo ports.ConsentRepository
	log  zerolog.Logger
}

// NewConsentService creates a new ConsentServiceImpl.
func NewConsentService(repo ports.ConsentRepository, log zerolog.Logger) *ConsentServiceImpl {
	return &ConsentServiceImpl{repo: repo, log: log}
}

// Create constructs and persists a consent in status RECEIVED.
func (s *ConsentServiceImpl) Create(ctx context.Context, req ports.CreateConsentRequest) (*domain.Consent, error) {
	if req.PartyID == "" {
		return nil, apperror.Validation("partyId is required")
	}
	if _, err := domain.ParseConsentType(string(req.ConsentType)); err != nil {
		return nil, apperror.ErrUnknownValue(err)
	}

	now := time.Now().UTC()
	validFrom := now
	if req.ValidFrom != nil {
		validFrom = req.ValidFrom.UTC()
	}
	if !req.ValidUntil.After(now) {
		return nil, apperror.Validation("validUntil must be in the future")
	}
	if !validFrom.Before(req.ValidUntil) {
		return nil, apperror.Validation("validFrom must precede validUntil")
	}
	if req.AccessFrequency != nil && *req.AccessFrequency <= 0 {
		return nil, apperror.Validation("accessFrequency must be positive when set")
	}

	consent := &domain.Consent{
		ID:              uuid.New(),
		PartyID:         req.PartyID,
		ConsentType:     req.ConsentType,
		Status:          domain.ConsentStatusReceived,
		ValidFrom:       validFrom,
		ValidUntil:      req.ValidUntil.UTC(),
		AccessFrequency: req.AccessFrequency,
		AccessScope:     req.AccessScope,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Upsert(ctx, consent); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create consent: %w", err))
	}

	s.log.Info().
		Str("consent_id", consent.ID.String()).
		Str("party_id", consent.PartyID).
		Str("consent_type", string(consent.ConsentType)).
		Time("valid_until", consent.ValidUntil).
		Msg("consent created")

	return consent, nil
}

// Get fetches a consent by ID.
func (s *ConsentServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Consent, error) {
	consent, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get consent: %w", err))
	}
	if consent == nil {
		return nil, apperror.ErrConsentNotFound()
	}
	return consent, nil
}

// GetStatus returns the current status of a consent. Absence is an explicit
// error here, not a default value.
func (s *ConsentServiceImpl) GetStatus(ctx context.Context, id uuid.UUID) (domain.ConsentStatus, error) {
	consent, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return consent.Status, nil
}

// ListByParty returns all consents owned by a customer.
func (s *ConsentServiceImpl) ListByParty(ctx context.Context, partyID string) ([]domain.Consent, error) {
	consents, err := s.repo.ListByParty(ctx, partyID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list consents by party: %w", err))
	}
	return consents, nil
}

// UpdateStatus moves a consent to a new status. The state machine is
// enforced: illegal transitions fail with CNS_004. A same-status update is a
// no-op restamp, which keeps Revoke idempotent.
func (s *ConsentServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus domain.ConsentStatus) (*domain.Consent, error) {
	if _, err := domain.ParseConsentStatus(string(newStatus)); err != nil {
		return nil, apperror.ErrUnknownValue(err)
	}

	consent, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(consent.Status, newStatus) {
		return nil, apperror.ErrIllegalTransition(string(consent.Status), string(newStatus))
	}

	oldStatus := consent.Status
	consent.Status = newStatus
	consent.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, consent); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update consent status: %w", err))
	}

	s.log.Info().
		Str("consent_id", id.String()).
		Str("old_status", string(oldStatus)).
		Str("new_status", string(newStatus)).
		Msg("consent status updated")

	return consent, nil
}

// Revoke moves a consent to REVOKED. Revoking an already-revoked consent
// succeeds and re-stamps UpdatedAt.
func (s *ConsentServiceImpl) Revoke(ctx context.Context, id uuid.UUID) (*domain.Consent, error) {
	return s.UpdateStatus(ctx, id, domain.ConsentStatusRevoked)
}

// ExpireOverdue transitions consents whose validity window closed before now
// to EXPIRED, up to batchSize records. Returns the number expired.
func (s *ConsentServiceImpl) ExpireOverdue(ctx context.Context, now time.Time, batchSize int) (int, error) {
	candidates, err := s.repo.ListExpiredCandidates(ctx, now, batchSize)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list expired candidates: %w", err))
	}

	expired := 0
	for i := range candidates {
		consent := &candidates[i]
		if !domain.CanTransition(consent.Status, domain.ConsentStatusExpired) {
			continue
		}
		consent.Status = domain.ConsentStatusExpired
		consent.UpdatedAt = now.UTC()
		if err := s.repo.Upsert(ctx, consent); err != nil {
			// Keep going; the next sweep retries whatever failed here.
			s.log.Warn().Err(err).Str("consent_id", consent.ID.String()).Msg("failed to expire consent")
			continue
		}
		expired++
	}

	if expired > 0 {
		s.log.Info().Int("expired", expired).Msg("expired overdue consents")
	}

	return expired, nil
}
