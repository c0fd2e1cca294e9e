package apperror

import "errors"

// Kind classifies application errors by their recovery policy.
type Kind int

const (
	// KindInternal is an unexpected failure with no defined fallback.
	KindInternal Kind = iota
	// KindValidation is user-recoverable: surface the message and stop the
	// current action, nothing else happens.
	KindValidation
	// KindStoreUnavailable means the bill store could not be opened, read or
	// written. Billing stays usable; the caller degrades to memory-only
	// history for the rest of the session.
	KindStoreUnavailable
	// KindParse marks malformed user input that is normalized to a default
	// instead of being surfaced.
	KindParse
)

// AppError represents an application error with its recovery classification
type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrEmptySelection = &AppError{Kind: KindValidation, Message: "select at least one product"}
)

// NewValidationError creates a user-recoverable validation error
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewStoreUnavailableError wraps a persistence failure
func NewStoreUnavailableError(message string, err error) *AppError {
	return &AppError{Kind: KindStoreUnavailable, Message: message, Err: err}
}

// NewParseError marks input that was normalized rather than rejected
func NewParseError(message string, err error) *AppError {
	return &AppError{Kind: KindParse, Message: message, Err: err}
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindValidation
}

// IsStoreUnavailable checks if an error means the bill store is unusable
func IsStoreUnavailable(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindStoreUnavailable
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Kind: KindInternal, Message: err.Error()}
}
