package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"consent-gateway/internal/core/domain"
	"consent-gateway/internal/core/ports"
	"consent-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthorizationServiceImpl implements ports.AuthorizationService.
//
// Both checks fail closed: an absent consent is an ordinary denial, but an
// unreachable store or ledger surfaces as an infrastructure error so callers
// can tell "denied" apart from "could not determine".
type AuthorizationServiceImpl struct {
	consentRepo ports.ConsentRepository
	ledger      ports.AccessLogRepository
	usageCache  ports.UsageCache // optional; nil disables the fast path
	usageTTL    time.Duration
	locks       *keyedMutex
	log         zerolog.Logger
}

// NewAuthorizationService creates a new AuthorizationServiceImpl.
// usageCache may be nil, in which case every frequency check counts against
// the ledger directly.
func NewAuthorizationService(
	consentRepo ports.ConsentRepository,
	ledger ports.AccessLogRepository,
	usageCache ports.UsageCache,
	usageTTL time.Duration,
	log zerolog.Logger,
) *AuthorizationServiceImpl {
	return &AuthorizationServiceImpl{
		consentRepo: consentRepo,
		ledger:      ledger,
		usageCache:  usageCache,
		usageTTL:    usageTTL,
		locks:       newKeyedMutex(),
		log:         log,
	}
}

// Authorize runs the strict authorization check. Checks are evaluated in
// order; the first failing check short-circuits to false and nothing is
// mutated. Only on allow is the consent's LastActionDate stamped and saved.
func (s *AuthorizationServiceImpl) Authorize(ctx context.Context, req ports.AuthorizeRequest) (bool, error) {
	// Serialize per consent ID so two concurrent calls cannot both pass the
	// frequency check on the same stale count within this process.
	unlock := s.locks.lock(req.ConsentID)
	defer unlock()

	consent, err := s.consentRepo.GetByID(ctx, req.ConsentID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("load consent: %w", err))
	}
	if consent == nil {
		s.denied(req, "consent not found")
		return false, nil
	}

	if consent.Status != domain.ConsentStatusValid {
		s.denied(req, "status not valid")
		return false, nil
	}

	now := time.Now().UTC()
	if !consent.IsWithinWindow(now) {
		s.denied(req, "outside validity window")
		return false, nil
	}

	if req.PartyID != "" && req.PartyID != consent.PartyID {
		s.denied(req, "party mismatch")
		return false, nil
	}

	if !consent.ConsentType.AllowsResource(req.ResourceType) {
		s.denied(req, "resource type not in scope")
		return false, nil
	}

	if consent.AccessFrequency != nil && *consent.AccessFrequency > 0 {
		count, err := s.usageCount(ctx, req.ConsentID)
		if err != nil {
			return false, err
		}
		if count >= int64(*consent.AccessFrequency) {
			s.denied(req, "access frequency limit reached")
			return false, nil
		}
	}

	consent.LastActionDate = &now
	consent.UpdatedAt = now
	if err := s.consentRepo.Upsert(ctx, consent); err != nil {
		return false, apperror.InternalError(fmt.Errorf("stamp last action date: %w", err))
	}

	if s.usageCache != nil {
		if err := s.usageCache.Incr(ctx, req.ConsentID); err != nil {
			s.log.Warn().Err(err).Str("consent_id", req.ConsentID.String()).Msg("failed to bump usage cache")
		}
	}

	s.log.Info().
		Str("consent_id", req.ConsentID.String()).
		Str("resource_type", string(req.ResourceType)).
		Str("third_party_id", req.ThirdPartyID).
		Msg("access authorized")

	return true, nil
}

// ValidateConsent runs the loose consent gate: status, window, and a
// substring match of the resource type against the consent's free-text
// access scope. No scope table, no frequency throttle, no side effects.
func (s *AuthorizationServiceImpl) ValidateConsent(ctx context.Context, consentID, resourceType, accessType string) (bool, error) {
	id, err := uuid.Parse(consentID)
	if err != nil {
		// An unparseable ID is indistinguishable from an absent consent.
		return false, nil
	}

	consent, err := s.consentRepo.GetByID(ctx, id)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("load consent: %w", err))
	}
	if consent == nil {
		return false, nil
	}

	if consent.Status != domain.ConsentStatusValid {
		return false, nil
	}
	if !consent.IsWithinWindow(time.Now().UTC()) {
		return false, nil
	}
	if !strings.Contains(strings.ToLower(consent.AccessScope), strings.ToLower(resourceType)) {
		s.log.Debug().
			Str("consent_id", consentID).
			Str("resource_type", resourceType).
			Str("access_type", accessType).
			Msg("consent gate rejected: resource type not in access scope")
		return false, nil
	}

	return true, nil
}

// usageCount returns the consent's success count, trying the Redis cache
// first and falling back to the ledger. Cache errors degrade to the ledger;
// ledger errors fail the decision closed.
func (s *AuthorizationServiceImpl) usageCount(ctx context.Context, consentID uuid.UUID) (int64, error) {
	if s.usageCache != nil {
		count, ok, err := s.usageCache.Get(ctx, consentID)
		if err != nil {
			s.log.Warn().Err(err).Str("consent_id", consentID.String()).Msg("usage cache read failed, falling through to ledger")
		} else if ok {
			return count, nil
		}
	}

	count, err := s.ledger.CountByConsent(ctx, consentID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("count consent usage: %w", err))
	}

	if s.usageCache != nil {
		if err := s.usageCache.Set(ctx, consentID, count, s.usageTTL); err != nil {
			s.log.Warn().Err(err).Str("consent_id", consentID.String()).Msg("failed to prime usage cache")
		}
	}

	return count, nil
}

func (s *AuthorizationServiceImpl) denied(req ports.AuthorizeRequest, reason string) {
	s.log.Debug().
		Str("consent_id", req.ConsentID.String()).
		Str("resource_type", string(req.ResourceType)).
		Str("third_party_id", req.ThirdPartyID).
		Str("reason", reason).
		Msg("access denied")
}
