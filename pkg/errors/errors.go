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

	// Template errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateInvalid  ErrorCode = "TEMPLATE_INVALID"

	// Materialization errors
	ErrConflict     ErrorCode = "CONFLICT"
	ErrTypeConflict ErrorCode = "TYPE_CONFLICT"
	ErrPermission   ErrorCode = "PERMISSION"
	ErrRollback     ErrorCode = "ROLLBACK"

	// Editor errors
	ErrNoEditor   ErrorCode = "NO_EDITOR"
	ErrEditorExit ErrorCode = "EDITOR_EXIT"

	// Doc generation errors
	ErrToolNotFound ErrorCode = "TOOL_NOT_FOUND"
	ErrToolExec     ErrorCode = "TOOL_EXEC"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// SkaffError represents a structured error with code and details
type SkaffError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SkaffError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SkaffError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SkaffError) Is(target error) bool {
	var targetErr *SkaffError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithDetail adds a detail key-value pair to the error
func (e *SkaffError) WithDetail(key string, value interface{}) *SkaffError {
	e.Details[key] = value
	return e
}

// New creates a new SkaffError with the given code and message
func New(code ErrorCode, message string) *SkaffError {
	return &SkaffError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SkaffError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SkaffError {
	return &SkaffError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SkaffError
func Wrap(err error, code ErrorCode, message string) *SkaffError {
	if err == nil {
		return nil
	}
	return &SkaffError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SkaffError {
	if err == nil {
		return nil
	}
	return &SkaffError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not SkaffErrors.
func GetCode(err error) ErrorCode {
	var skaffErr *SkaffError
	if errors.As(err, &skaffErr) {
		return skaffErr.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	var skaffErr *SkaffError
	if errors.As(err, &skaffErr) {
		return skaffErr.Code == code
	}
	return false
}
