package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConsentType classifies what kind of data access or initiation a consent covers.
type ConsentType string

const (
	ConsentTypeAccountInformation ConsentType = "ACCOUNT_INFORMATION"
	ConsentTypePaymentInitiation  ConsentType = "PAYMENT_INITIATION"
	ConsentTypeFundsConfirmation  ConsentType = "FUNDS_CONFIRMATION"
	ConsentTypeCardInformation    ConsentType = "CARD_INFORMATION"
)

// ConsentStatus represents the lifecycle state of a consent.
type ConsentStatus string

const (
	ConsentStatusReceived ConsentStatus = "RECEIVED"
	ConsentStatusValid    ConsentStatus = "VALID"
	ConsentStatusRejected ConsentStatus = "REJECTED"
	ConsentStatusExpired  ConsentStatus = "EXPIRED"
	ConsentStatusRevoked  ConsentStatus = "REVOKED"
)

// Consent is a customer's time-bounded, scope-bounded authorization for a
// third-party provider to access financial data or initiate payments.
type Consent struct {
	ID              uuid.UUID     `json:"id"`
	PartyID         string        `json:"party_id"`
	ConsentType     ConsentType   `json:"consent_type"`
	Status          ConsentStatus `json:"status"`
	ValidFrom       time.Time     `json:"valid_from"`
	ValidUntil      time.Time     `json:"valid_until"`
	AccessFrequency *int32        `json:"access_frequency,omitempty"` // nil = unlimited
	AccessScope     string        `json:"access_scope"`
	LastActionDate  *time.Time    `json:"last_action_date,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// IsWithinWindow reports whether now falls inside the half-open
// authorization window [ValidFrom, ValidUntil).
func (c *Consent) IsWithinWindow(now time.Time) bool {
	return !now.Before(c.ValidFrom) && now.Before(c.ValidUntil)
}

// IsTerminal returns true if the consent can make no further forward progress.
func (c *Consent) IsTerminal() bool {
	return c.Status == ConsentStatusRejected ||
		c.Status == ConsentStatusExpired ||
		c.Status == ConsentStatusRevoked
}

// CanTransition reports whether moving a consent from one status to another
// is a legal state-machine transition. Same-status moves are allowed so that
// operations like revoke stay idempotent (the record is re-stamped only).
func CanTransition(from, to ConsentStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case ConsentStatusReceived:
		return to == ConsentStatusValid || to == ConsentStatusRejected || to == ConsentStatusExpired
	case ConsentStatusValid:
		return to == ConsentStatusRevoked || to == ConsentStatusExpired
	default:
		// REJECTED, EXPIRED and REVOKED are terminal.
		return false
	}
}

// ParseConsentType converts a raw string into a ConsentType.
// Unknown values yield an UnknownValueError.
func ParseConsentType(s string) (ConsentType, error) {
	switch ConsentType(s) {
	case ConsentTypeAccountInformation, ConsentTypePaymentInitiation,
		ConsentTypeFundsConfirmation, ConsentTypeCardInformation:
		return ConsentType(s), nil
	}
	return "", &UnknownValueError{Kind: "consent type", Value: s}
}

// ParseConsentStatus converts a raw string into a ConsentStatus.
// Unknown values yield an UnknownValueError.
func ParseConsentStatus(s string) (ConsentStatus, error) {
	switch ConsentStatus(s) {
	case ConsentStatusReceived, ConsentStatusValid, ConsentStatusRejected,
		ConsentStatusExpired, ConsentStatusRevoked:
		return ConsentStatus(s), nil
	}
	return "", &UnknownValueError{Kind: "consent status", Value: s}
}

// UnknownValueError reports an enum string that does not belong to its
// closed value set. It is produced at the boundary, before raw transport
// strings ever reach the engine.
type UnknownValueError struct {
	Kind  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return "unknown " + e.Kind + ": " + e.Value
}
