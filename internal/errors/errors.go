// Package errors provides custom error types for the Truck Ledger API.
// All service-layer errors should use AppError so that clients receive
// consistent error responses that never leak internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Profile errors.
var (
	ErrNotInitialized  = &AppError{Code: "NOT_INITIALIZED", Message: "No game profile selected", StatusCode: http.StatusBadRequest}
	ErrProfileNotFound = &AppError{Code: "PROFILE_NOT_FOUND", Message: "Game profile not found", StatusCode: http.StatusNotFound}
)

// Asset ledger errors.
var (
	ErrGarageNotFound    = &AppError{Code: "GARAGE_NOT_FOUND", Message: "Garage not found", StatusCode: http.StatusNotFound}
	ErrTruckNotFound     = &AppError{Code: "TRUCK_NOT_FOUND", Message: "Truck not found", StatusCode: http.StatusNotFound}
	ErrTrailerNotFound   = &AppError{Code: "TRAILER_NOT_FOUND", Message: "Trailer not found", StatusCode: http.StatusNotFound}
	ErrDriverNotFound    = &AppError{Code: "DRIVER_NOT_FOUND", Message: "Driver not found", StatusCode: http.StatusNotFound}
	ErrLoanNotFound      = &AppError{Code: "LOAN_NOT_FOUND", Message: "Loan not found", StatusCode: http.StatusNotFound}
	ErrUnknownGarageSize = &AppError{Code: "INVALID_INPUT", Message: "Unknown garage size", StatusCode: http.StatusBadRequest}
)
