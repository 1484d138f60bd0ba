package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Catalog errors
	ErrCodePackageNotFound ErrorCode = "PACKAGE_NOT_FOUND"
	ErrCodeInvalidCategory ErrorCode = "INVALID_CATEGORY"
	ErrCodeInvalidPrice    ErrorCode = "INVALID_PRICE"
	ErrCodeInvalidCapacity ErrorCode = "INVALID_CAPACITY"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business errors
	ErrCodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"
	ErrCodeNoDatesSet       ErrorCode = "NO_DATES_SET"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// AppError is the application error type carried through services and
// controllers.
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

// GetAppError extracts the AppError from err, or returns nil.
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// Catalog errors
	ErrPackageNotFound = errors.New("package not found")
	ErrDateNotFound    = errors.New("date occurrence not found")
	ErrNoDatesSet      = errors.New("package has no departure dates set")

	// ErrValidationFailed aborts a submission transaction when field or
	// business rules fail; the per-field messages travel separately.
	ErrValidationFailed = errors.New("validation failed")
)
