package integration

import (
	"context"
	"testing"
	"time"

	"consent-gateway/internal/core/domain"
	"consent-gateway/internal/core/ports"
	"consent-gateway/internal/service"
	"consent-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	consentRepo *inMemoryConsentRepo
	ledgerRepo  *inMemoryAccessLogRepo
	consents    ports.ConsentService
	engine      ports.AuthorizationService
	ledger      ports.AccessLogService
}

func newTestApp() *testApp {
	consentRepo := newInMemoryConsentRepo()
	ledgerRepo := newInMemoryAccessLogRepo()
	log := zerolog.Nop()
	return &testApp{
		consentRepo: consentRepo,
		ledgerRepo:  ledgerRepo,
		consents:    service.NewConsentService(consentRepo, log),
		engine:      service.NewAuthorizationService(consentRepo, ledgerRepo, nil, 5*time.Minute, log),
		ledger:      service.NewAccessLogService(ledgerRepo, log),
	}
}

func int32Ptr(v int32) *int32 { return &v }

// TestConsentLifecycle walks a consent through its whole life: created,
// authorized by the customer, exercised by a provider, revoked, and denied
// thereafter.
func TestConsentLifecycle(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	// Create: a new consent starts in RECEIVED and cannot grant access yet.
	consent, err := app.consents.Create(ctx, ports.CreateConsentRequest{
		PartyID:     "party-1",
		ConsentType: domain.ConsentTypeAccountInformation,
		ValidUntil:  time.Now().UTC().Add(90 * 24 * time.Hour),
		AccessScope: "all-accounts",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ConsentStatusReceived, consent.Status)

	allowed, err := app.engine.Authorize(ctx, ports.AuthorizeRequest{
		ConsentID:    consent.ID,
		ResourceType: domain.ResourceTypeAccount,
		PartyID:      "party-1",
		ThirdPartyID: "tpp1",
	})
	require.NoError(t, err)
	assert.False(t, allowed, "a RECEIVED consent grants nothing")

	// Customer approves the consent.
	_, err = app.consents.UpdateStatus(ctx, consent.ID, domain.ConsentStatusValid)
	require.NoError(t, err)

	status, err := app.consents.GetStatus(ctx, consent.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ConsentStatusValid, status)

	// The loose gate and the strict engine now both pass.
	ok, err := app.engine.ValidateConsent(ctx, consent.ID.String(), "ACCOUNT", "READ")
	require.NoError(t, err)
	assert.True(t, ok)

	allowed, err = app.engine.Authorize(ctx, ports.AuthorizeRequest{
		ConsentID:    consent.ID,
		ResourceType: domain.ResourceTypeAccount,
		PartyID:      "party-1",
		ThirdPartyID: "tpp1",
	})
	require.NoError(t, err)
	assert.True(t, allowed)

	// LastActionDate was stamped by the allow.
	fresh, err := app.consents.Get(ctx, consent.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.LastActionDate)

	// The provider records the access it performed.
	_, err = app.ledger.Record(ctx, ports.RecordAccessRequest{
		ConsentID:    consent.ID,
		PartyID:      "party-1",
		ThirdPartyID: "tpp1",
		AccessType:   domain.AccessTypeRead,
		ResourceType: domain.ResourceTypeAccount,
		ResourceID:   "acc-42",
		Status:       domain.AccessStatusSuccess,
	})
	require.NoError(t, err)

	entries, err := app.ledger.ListByProvider(ctx, "tpp1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// Revoke, then every check fails.
	revoked, err := app.consents.Revoke(ctx, consent.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ConsentStatusRevoked, revoked.Status)

	allowed, err = app.engine.Authorize(ctx, ports.AuthorizeRequest{
		ConsentID:    consent.ID,
		ResourceType: domain.ResourceTypeAccount,
		PartyID:      "party-1",
		ThirdPartyID: "tpp1",
	})
	require.NoError(t, err)
	assert.False(t, allowed)

	ok, err = app.engine.ValidateConsent(ctx, consent.ID.String(), "ACCOUNT", "READ")
	require.NoError(t, err)
	assert.False(t, ok)

	// Revoking again is a no-op, not an error.
	_, err = app.consents.Revoke(ctx, consent.ID)
	require.NoError(t, err)

	// But reviving a revoked consent is illegal.
	_, err = app.consents.UpdateStatus(ctx, consent.ID, domain.ConsentStatusValid)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CNS_004", appErr.Code)
}

// TestFrequencyThrottle verifies that successful accesses recorded in the
// ledger consume the consent's access frequency.
func TestFrequencyThrottle(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	consent, err := app.consents.Create(ctx, ports.CreateConsentRequest{
		PartyID:         "party-1",
		ConsentType:     domain.ConsentTypeAccountInformation,
		ValidUntil:      time.Now().UTC().Add(24 * time.Hour),
		AccessFrequency: int32Ptr(3),
		AccessScope:     "all-accounts",
	})
	require.NoError(t, err)
	_, err = app.consents.UpdateStatus(ctx, consent.ID, domain.ConsentStatusValid)
	require.NoError(t, err)

	req := ports.AuthorizeRequest{
		ConsentID:    consent.ID,
		ResourceType: domain.ResourceTypeAccount,
		PartyID:      "party-1",
		ThirdPartyID: "tpp1",
	}

	for i := 0; i < 3; i++ {
		allowed, err := app.engine.Authorize(ctx, req)
		require.NoError(t, err)
		require.True(t, allowed, "attempt %d should be within the frequency limit", i+1)

		_, err = app.ledger.Record(ctx, ports.RecordAccessRequest{
			ConsentID:    consent.ID,
			PartyID:      "party-1",
			ThirdPartyID: "tpp1",
			AccessType:   domain.AccessTypeRead,
			ResourceType: domain.ResourceTypeAccount,
			ResourceID:   "acc-42",
			Status:       domain.AccessStatusSuccess,
		})
		require.NoError(t, err)
	}

	allowed, err := app.engine.Authorize(ctx, req)
	require.NoError(t, err)
	assert.False(t, allowed, "the fourth attempt exceeds the frequency limit")

	count, err := app.ledger.CountByConsent(ctx, consent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

// TestExpirySweep verifies the sweeper transition path: once the validity
// window closes, a sweep moves the consent to EXPIRED and the engine denies.
func TestExpirySweep(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	consent, err := app.consents.Create(ctx, ports.CreateConsentRequest{
		PartyID:     "party-1",
		ConsentType: domain.ConsentTypePaymentInitiation,
		ValidUntil:  time.Now().UTC().Add(time.Hour),
		AccessScope: "payments",
	})
	require.NoError(t, err)
	_, err = app.consents.UpdateStatus(ctx, consent.ID, domain.ConsentStatusValid)
	require.NoError(t, err)

	// Nothing to do while the window is open.
	expired, err := app.consents.ExpireOverdue(ctx, time.Now().UTC(), 100)
	require.NoError(t, err)
	assert.Zero(t, expired)

	// A sweep after the window closes expires the consent.
	expired, err = app.consents.ExpireOverdue(ctx, time.Now().UTC().Add(2*time.Hour), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	status, err := app.consents.GetStatus(ctx, consent.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ConsentStatusExpired, status)

	allowed, err := app.engine.Authorize(ctx, ports.AuthorizeRequest{
		ConsentID:    consent.ID,
		ResourceType: domain.ResourceTypePayment,
		PartyID:      "party-1",
	})
	require.NoError(t, err)
	assert.False(t, allowed)

	// A second sweep finds nothing left.
	expired, err = app.consents.ExpireOverdue(ctx, time.Now().UTC().Add(2*time.Hour), 100)
	require.NoError(t, err)
	assert.Zero(t, expired)
}
