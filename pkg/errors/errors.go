package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Query errors
	ErrPackageNotFound ErrorCode = "PACKAGE_NOT_FOUND"
	ErrUnknownLinkType ErrorCode = "UNKNOWN_LINK_TYPE"

	// Repository errors
	ErrRepositoryLoad   ErrorCode = "REPOSITORY_LOAD"
	ErrRepositoryFormat ErrorCode = "REPOSITORY_FORMAT"

	// Output errors
	ErrOutput ErrorCode = "OUTPUT"
)

// DepsError represents a structured error with code and details
type DepsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DepsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DepsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DepsError) Is(target error) bool {
	var targetErr *DepsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DepsError with the given code and message
func New(code ErrorCode, message string) *DepsError {
	return &DepsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DepsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DepsError {
	return &DepsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DepsError
func Wrap(err error, code ErrorCode, message string) *DepsError {
	if err == nil {
		return nil
	}
	return &DepsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DepsError {
	if err == nil {
		return nil
	}
	return &DepsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DepsError) WithDetail(key string, value interface{}) *DepsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DepsError) WithDetails(details map[string]interface{}) *DepsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var depsErr *DepsError
	if errors.As(err, &depsErr) {
		return depsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DepsError
func GetErrorCode(err error) ErrorCode {
	var depsErr *DepsError
	if errors.As(err, &depsErr) {
		return depsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DepsError
func GetErrorDetails(err error) map[string]interface{} {
	var depsErr *DepsError
	if errors.As(err, &depsErr) {
		return depsErr.Details
	}
	return nil
}
