package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors.
type ErrorCode string

const (
	// Auth errors
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Store errors. A DATA_FETCH failure is a failed read; the view keeps its
	// last-known-good data. A MUTATION failure is a rejected write, surfaced
	// with the store-provided message when one exists.
	ErrCodeDataFetch  ErrorCode = "DATA_FETCH"
	ErrCodeMutation   ErrorCode = "MUTATION"
	ErrCodeDBNotFound ErrorCode = "DB_NOT_FOUND"

	// Validation errors never reach the store.
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
)

// AppError carries a code alongside the message and cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError creates a new AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError.
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts the AppError from err, or nil.
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// ErrNotExtendable rejects extension of a cancelled or checked-out booking.
	ErrNotExtendable = errors.New("booking is not extendable")

	// ErrRoomTypeNotFound reports a booking referencing an unknown room type.
	ErrRoomTypeNotFound = errors.New("room type not found")
)
