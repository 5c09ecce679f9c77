package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that the surrounding web layer maps to
// HTTP responses. Authorization denials are never AppErrors: a denial is a
// normal false result, while an AppError means the request failed or the
// decision could not be made.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Consent Lifecycle (CNS) ----

func ErrConsentNotFound() *AppError {
	return New("CNS_001", "Consent not found", http.StatusNotFound)
}

// Validation returns a CNS_002 validation error with a caller-supplied message.
func Validation(message string) *AppError {
	return New("CNS_002", message, http.StatusBadRequest)
}

// ErrUnknownValue wraps an enum parse failure from the domain boundary.
func ErrUnknownValue(err error) *AppError {
	return Wrap("CNS_003", "Unknown enum value", http.StatusBadRequest, err)
}

func ErrIllegalTransition(from, to string) *AppError {
	return New("CNS_004", fmt.Sprintf("Illegal consent status transition %s -> %s", from, to), http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps a store or ledger failure. Callers must treat it as
// "could not determine", never as a policy denial.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ---- Classification helpers ----

// IsNotFound reports whether err is a consent-not-found error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == "CNS_001"
}

// IsValidation reports whether err is a validation or enum-parse error.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && (appErr.Code == "CNS_002" || appErr.Code == "CNS_003")
}

// IsInfrastructure reports whether err is a retryable infrastructure error,
// as opposed to a definitive policy or lookup outcome.
func IsInfrastructure(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == "SYS_001"
}
