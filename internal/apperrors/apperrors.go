package apperrors

import "net/http"

// AppError is a domain error carrying the HTTP status it maps to. The
// global error handler renders it as a failure envelope; anything that is
// not an AppError becomes a generic 500.
type AppError struct {
	StatusCode int
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidation reports an inbound payload that failed its declared field
// constraints.
func NewValidation(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

// NewUnauthorized reports a missing/invalid/expired token or a failed
// credential check.
func NewUnauthorized(message string) *AppError {
	return &AppError{StatusCode: http.StatusUnauthorized, Message: message}
}

// NewNotFound reports a referenced record that does not exist.
func NewNotFound(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message}
}

// NewConflict reports a uniqueness violation, e.g. a duplicate email on
// registration.
func NewConflict(message string) *AppError {
	return &AppError{StatusCode: http.StatusConflict, Message: message}
}
