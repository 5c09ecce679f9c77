package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccessType represents the kind of operation attempted against a resource.
type AccessType string

const (
	AccessTypeRead   AccessType = "READ"
	AccessTypeWrite  AccessType = "WRITE"
	AccessTypeDelete AccessType = "DELETE"
)

// ResourceType identifies the category of banking resource being accessed.
type ResourceType string

const (
	ResourceTypeAccount           ResourceType = "ACCOUNT"
	ResourceTypePayment           ResourceType = "PAYMENT"
	ResourceTypeConsent           ResourceType = "CONSENT"
	ResourceTypeBalance           ResourceType = "BALANCE"
	ResourceTypeTransaction       ResourceType = "TRANSACTION"
	ResourceTypeFundsConfirmation ResourceType = "FUNDS_CONFIRMATION"
	ResourceTypeCard              ResourceType = "CARD"
	ResourceTypeCardBalance       ResourceType = "CARD_BALANCE"
	ResourceTypeCardTransaction   ResourceType = "CARD_TRANSACTION"
)

// AccessStatus records the outcome of an access attempt.
type AccessStatus string

const (
	AccessStatusSuccess AccessStatus = "SUCCESS"
	AccessStatusFailure AccessStatus = "FAILURE"
)

// AccessLogEntry is an immutable audit record of a single access attempt,
// successful or denied. Entries are created exactly once and never mutated;
// together they form the compliance trail and feed the frequency throttle.
type AccessLogEntry struct {
	ID           uuid.UUID    `json:"id"`
	ConsentID    uuid.UUID    `json:"consent_id"`
	PartyID      string       `json:"party_id"`
	ThirdPartyID string       `json:"third_party_id"`
	RequestID    *string      `json:"request_id,omitempty"`
	PSUID        *string      `json:"psu_id,omitempty"`
	AccessType   AccessType   `json:"access_type"`
	ResourceType ResourceType `json:"resource_type"`
	ResourceID   string       `json:"resource_id,omitempty"`
	Status       AccessStatus `json:"status"`
	ErrorMessage *string      `json:"error_message,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ParseAccessType converts a raw string into an AccessType.
func ParseAccessType(s string) (AccessType, error) {
	switch AccessType(s) {
	case AccessTypeRead, AccessTypeWrite, AccessTypeDelete:
		return AccessType(s), nil
	}
	return "", &UnknownValueError{Kind: "access type", Value: s}
}

// ParseResourceType converts a raw string into a ResourceType.
func ParseResourceType(s string) (ResourceType, error) {
	switch ResourceType(s) {
	case ResourceTypeAccount, ResourceTypePayment, ResourceTypeConsent,
		ResourceTypeBalance, ResourceTypeTransaction, ResourceTypeFundsConfirmation,
		ResourceTypeCard, ResourceTypeCardBalance, ResourceTypeCardTransaction:
		return ResourceType(s), nil
	}
	return "", &UnknownValueError{Kind: "resource type", Value: s}
}
