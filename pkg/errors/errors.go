// Package errors defines categorized application errors for the insights
// service boundary layers (file handling, request input, configuration).
//
// The analysis core itself never produces these: its single distinguished
// failure, an empty transaction batch, is a report value. Everything here
// serves the CLI and HTTP surfaces, where errors need a category, a
// user-facing suggestion, and a process exit code.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCategory represents different categories of errors.
type ErrorCategory string

const (
	CategoryFile          ErrorCategory = "file"
	CategoryInput         ErrorCategory = "input"
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryInternal      ErrorCategory = "internal"
)

// ErrorCode represents specific error codes within categories.
type ErrorCode string

const (
	// File errors
	CodeFileNotFound   ErrorCode = "file_not_found"
	CodeFilePermission ErrorCode = "file_permission"
	CodeFileWrite      ErrorCode = "file_write"

	// Input errors
	CodeInvalidJSON  ErrorCode = "invalid_json"
	CodeMissingInput ErrorCode = "missing_input"

	// Configuration errors
	CodeInvalidConfig ErrorCode = "invalid_config"

	// Internal errors
	CodeUnexpectedError ErrorCode = "unexpected_error"
)

// InsightsError is the base error type for all application errors.
type InsightsError struct {
	Category   ErrorCategory     `json:"category"`
	Code       ErrorCode         `json:"code"`
	Message    string            `json:"message"`
	Suggestion string            `json:"suggestion,omitempty"`
	Context    Context           `json:"context,omitempty"`
	Cause      error             `json:"-"`
	StackTrace errors.StackTrace `json:"-"`
}

// Context provides additional information about the error.
type Context map[string]interface{}

// Error implements the error interface.
func (e *InsightsError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (suggestion: %s)", e.Message, e.Suggestion)
	}
	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *InsightsError) Unwrap() error {
	return e.Cause
}

// GetExitCode returns an appropriate process exit code for the error.
func (e *InsightsError) GetExitCode() int {
	switch e.Category {
	case CategoryFile:
		return 2
	case CategoryInput:
		return 3
	case CategoryConfiguration:
		return 4
	case CategoryInternal:
		return 5
	default:
		return 1
	}
}

// WithContext adds context information to the error.
func (e *InsightsError) WithContext(key string, value interface{}) *InsightsError {
	if e.Context == nil {
		e.Context = make(Context)
	}
	e.Context[key] = value
	return e
}

// WithSuggestion adds a suggestion for fixing the error.
func (e *InsightsError) WithSuggestion(suggestion string) *InsightsError {
	e.Suggestion = suggestion
	return e
}

// New creates a new InsightsError.
func New(category ErrorCategory, code ErrorCode, message string) *InsightsError {
	return &InsightsError{
		Category:   category,
		Code:       code,
		Message:    message,
		StackTrace: errors.New("").(stackTracer).StackTrace(),
	}
}

// Wrap wraps an existing error with InsightsError context.
func Wrap(err error, category ErrorCategory, code ErrorCode, message string) *InsightsError {
	if err == nil {
		return nil
	}
	return &InsightsError{
		Category:   category,
		Code:       code,
		Message:    message,
		Cause:      err,
		StackTrace: errors.WithStack(err).(stackTracer).StackTrace(),
	}
}

// stackTracer interface for extracting stack traces.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// FileError creates a file-related error.
func FileError(code ErrorCode, path string, err error) *InsightsError {
	var message, suggestion string
	switch code {
	case CodeFileNotFound:
		message = fmt.Sprintf("file not found: %s", path)
		suggestion = "check if the file path is correct and the file exists"
	case CodeFilePermission:
		message = fmt.Sprintf("permission denied accessing file: %s", path)
		suggestion = "check file permissions and ensure you have read access"
	case CodeFileWrite:
		message = fmt.Sprintf("failed to write file: %s", path)
		suggestion = "ensure the directory exists and is writable"
	default:
		message = fmt.Sprintf("file error: %s", path)
		suggestion = "check the file and try again"
	}

	var result *InsightsError
	if err != nil {
		result = Wrap(err, CategoryFile, code, message)
	} else {
		result = New(CategoryFile, code, message)
	}
	return result.
		WithSuggestion(suggestion).
		WithContext("file_path", path)
}

// InputError creates an error for malformed or missing request input.
func InputError(code ErrorCode, detail string, err error) *InsightsError {
	var message, suggestion string
	switch code {
	case CodeInvalidJSON:
		message = fmt.Sprintf("invalid JSON input: %s", detail)
		suggestion = "ensure the payload is well-formed JSON"
	case CodeMissingInput:
		message = detail
		suggestion = "provide a JSON body or upload a JSON file"
	default:
		message = fmt.Sprintf("input error: %s", detail)
		suggestion = "check the input and try again"
	}

	var result *InsightsError
	if err != nil {
		result = Wrap(err, CategoryInput, code, message)
	} else {
		result = New(CategoryInput, code, message)
	}
	return result.WithSuggestion(suggestion)
}

// ConfigurationError creates a configuration-related error.
func ConfigurationError(setting string, value interface{}, err error) *InsightsError {
	message := fmt.Sprintf("invalid configuration for '%s': %v", setting, value)

	var result *InsightsError
	if err != nil {
		result = Wrap(err, CategoryConfiguration, CodeInvalidConfig, message)
	} else {
		result = New(CategoryConfiguration, CodeInvalidConfig, message)
	}
	return result.
		WithSuggestion("check the configuration documentation for valid values").
		WithContext("setting", setting).
		WithContext("value", value)
}

// InternalError creates an internal error.
func InternalError(operation string, err error) *InsightsError {
	message := fmt.Sprintf("unexpected error during %s", operation)

	var result *InsightsError
	if err != nil {
		result = Wrap(err, CategoryInternal, CodeUnexpectedError, message)
	} else {
		result = New(CategoryInternal, CodeUnexpectedError, message)
	}
	return result.
		WithSuggestion("this is likely a bug - please report it with the error details").
		WithContext("operation", operation)
}

// IsInsightsError checks if an error is an InsightsError.
func IsInsightsError(err error) bool {
	_, ok := err.(*InsightsError)
	return ok
}

// AsInsightsError extracts an InsightsError from an error chain.
func AsInsightsError(err error) (*InsightsError, bool) {
	var insightsErr *InsightsError
	if errors.As(err, &insightsErr) {
		return insightsErr, true
	}
	return nil, false
}
