package postgres

import (
	"context"
	"testing"
	"time"

	"consent-gateway/internal/core/domain"
	"consent-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(consentID uuid.UUID) *domain.AccessLogEntry {
	now := time.Now().UTC().Truncate(time.Microsecond)
	requestID := "req-001"
	return &domain.AccessLogEntry{
		ID:           uuid.New(),
		ConsentID:    consentID,
		PartyID:      "party-1",
		ThirdPartyID: "tpp1",
		RequestID:    &requestID,
		PSUID:        nil,
		AccessType:   domain.AccessTypeRead,
		ResourceType: domain.ResourceTypeAccount,
		ResourceID:   "acc-42",
		Status:       domain.AccessStatusSuccess,
		ErrorMessage: nil,
		CreatedAt:    now,
	}
}

func accessLogDBColumns() []string {
	return []string{"id", "consent_id", "party_id", "third_party_id", "request_id", "psu_id",
		"access_type", "resource_type", "resource_id", "status", "error_message", "created_at"}
}

func accessLogRow(e *domain.AccessLogEntry) *pgxmock.Rows {
	return pgxmock.NewRows(accessLogDBColumns()).AddRow(
		e.ID, e.ConsentID, e.PartyID, e.ThirdPartyID, e.RequestID, e.PSUID,
		e.AccessType, e.ResourceType, e.ResourceID, e.Status, e.ErrorMessage, e.CreatedAt,
	)
}

func TestAccessLogRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccessLogRepo(mock)
	entry := newTestEntry(uuid.New())

	mock.ExpectExec("INSERT INTO access_logs").
		WithArgs(
			entry.ID, entry.ConsentID, entry.PartyID, entry.ThirdPartyID, entry.RequestID, entry.PSUID,
			entry.AccessType, entry.ResourceType, entry.ResourceID, entry.Status, entry.ErrorMessage, entry.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessLogRepo_CountByConsent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccessLogRepo(mock)
	consentID := uuid.New()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM access_logs WHERE consent_id").
		WithArgs(consentID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountByConsent(context.Background(), consentID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessLogRepo_ListByConsent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccessLogRepo(mock)
	consentID := uuid.New()
	entry := newTestEntry(consentID)

	mock.ExpectQuery("SELECT .+ FROM access_logs WHERE consent_id").
		WithArgs(consentID).
		WillReturnRows(accessLogRow(entry))

	result, err := repo.ListByConsent(context.Background(), consentID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, entry.ID, result[0].ID)
	assert.Equal(t, entry.ResourceID, result[0].ResourceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessLogRepo_ListByProvider(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccessLogRepo(mock)
	entry := newTestEntry(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM access_logs WHERE third_party_id").
		WithArgs("tpp1").
		WillReturnRows(accessLogRow(entry))

	result, err := repo.ListByProvider(context.Background(), "tpp1")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "tpp1", result[0].ThirdPartyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessLogRepo_List_WithFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccessLogRepo(mock)
	consentID := uuid.New()
	entry := newTestEntry(consentID)
	status := domain.AccessStatusSuccess

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM access_logs WHERE consent_id = \\$1 AND status = \\$2").
		WithArgs(consentID, status).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .+ FROM access_logs WHERE consent_id = \\$1 AND status = \\$2 ORDER BY created_at DESC LIMIT \\$3 OFFSET \\$4").
		WithArgs(consentID, status, 20, 0).
		WillReturnRows(accessLogRow(entry))

	result, total, err := repo.List(context.Background(), ports.AccessLogListParams{
		ConsentID: &consentID,
		Status:    &status,
		Page:      1,
		PageSize:  20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, result, 1)
	assert.Equal(t, entry.ID, result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessLogRepo_List_NoFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccessLogRepo(mock)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM access_logs").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery("SELECT .+ FROM access_logs\\s+ORDER BY created_at DESC LIMIT \\$1 OFFSET \\$2").
		WithArgs(50, 0).
		WillReturnRows(pgxmock.NewRows(accessLogDBColumns()))

	result, total, err := repo.List(context.Background(), ports.AccessLogListParams{Page: 1, PageSize: 50})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
