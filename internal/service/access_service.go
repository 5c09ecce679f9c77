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

// AccessLogServiceImpl implements ports.AccessLogService. Recording is
// synchronous: the ledger is the regulatory audit trail and feeds the
// frequency throttle, so a lost write must be visible to the caller.
type AccessLogServiceImpl struct {
	repo ports.AccessLogRepository
	log  zerolog.Logger
}

// NewAccessLogService creates a new AccessLogServiceImpl.
func NewAccessLogService(repo ports.AccessLogRepository, log zerolog.Logger) *AccessLogServiceImpl {
	return &AccessLogServiceImpl{repo: repo, log: log}
}

// Record persists one access attempt, successful or denied.
func (s *AccessLogServiceImpl) Record(ctx context.Context, req ports.RecordAccessRequest) (*domain.AccessLogEntry, error) {
	entry := &domain.AccessLogEntry{
		ID:           uuid.New(),
		ConsentID:    req.ConsentID,
		PartyID:      req.PartyID,
		ThirdPartyID: req.ThirdPartyID,
		RequestID:    req.RequestID,
		PSUID:        req.PSUID,
		AccessType:   req.AccessType,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append access log: %w", err))
	}

	s.log.Info().
		Str("consent_id", entry.ConsentID.String()).
		Str("third_party_id", entry.ThirdPartyID).
		Str("access_type", string(entry.AccessType)).
		Str("resource_type", string(entry.ResourceType)).
		Str("status", string(entry.Status)).
		Msg("access recorded")

	return entry, nil
}

// CountByConsent returns the number of successful accesses for a consent.
func (s *AccessLogServiceImpl) CountByConsent(ctx context.Context, consentID uuid.UUID) (int64, error) {
	count, err := s.repo.CountByConsent(ctx, consentID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("count access log: %w", err))
	}
	return count, nil
}

// ListByConsent returns all ledger entries for a consent.
func (s *AccessLogServiceImpl) ListByConsent(ctx context.Context, consentID uuid.UUID) ([]domain.AccessLogEntry, error) {
	entries, err := s.repo.ListByConsent(ctx, consentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list access log by consent: %w", err))
	}
	return entries, nil
}

// ListByParty returns all ledger entries for a customer.
func (s *AccessLogServiceImpl) ListByParty(ctx context.Context, partyID string) ([]domain.AccessLogEntry, error) {
	entries, err := s.repo.ListByParty(ctx, partyID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list access log by party: %w", err))
	}
	return entries, nil
}

// ListByProvider returns all ledger entries for a third-party provider.
func (s *AccessLogServiceImpl) ListByProvider(ctx context.Context, thirdPartyID string) ([]domain.AccessLogEntry, error) {
	entries, err := s.repo.ListByProvider(ctx, thirdPartyID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list access log by provider: %w", err))
	}
	return entries, nil
}

// List returns ledger entries matching the given filters with pagination.
func (s *AccessLogServiceImpl) List(ctx context.Context, params ports.AccessLogListParams) ([]domain.AccessLogEntry, int64, error) {
	entries, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list access log: %w", err))
	}
	return entries, total, nil
}
