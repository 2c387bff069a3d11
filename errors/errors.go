package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified adapter error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// MissingParameter creates a new AppError for a required parameter that is
// absent or empty for the selected operation.
func MissingParameter(operation, param string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingParameter,
		Message: fmt.Sprintf("operation %q requires parameter %q", operation, param),
		Details: map[string]any{"operation": operation, "parameter": param},
	}
}

// InvalidParameter creates a new AppError for a parameter value that does
// not match its declared kind.
func InvalidParameter(param, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidParameter,
		Message: fmt.Sprintf("invalid value for parameter %q: %s", param, reason),
		Details: map[string]any{"parameter": param},
	}
}

// UnknownOperation creates a new AppError for an operation name that is not
// in the catalog.
func UnknownOperation(catalog, operation string) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownOperation,
		Message: fmt.Sprintf("catalog %q has no operation %q", catalog, operation),
		Details: map[string]any{"catalog": catalog, "operation": operation},
	}
}

// InvalidCatalog creates a new AppError for an internally inconsistent
// operation table.
func InvalidCatalog(catalog, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidCatalog,
		Message: fmt.Sprintf("catalog %q is invalid: %s", catalog, reason),
		Details: map[string]any{"catalog": catalog},
	}
}

// InvalidConfig creates a new AppError for adapter configuration that failed
// validation.
func InvalidConfig(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: reason,
	}
}

// RequestFailed creates a new AppError for a failed HTTP call.
func RequestFailed(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeRequestFailed,
		Message: "request failed",
		Cause:   cause,
	}
}

// ItemFailed wraps a per-record failure with its zero-based record index.
// The Batch Runner uses it to annotate the error surfaced in abort mode.
func ItemFailed(index int, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeItemFailed,
		Message: fmt.Sprintf("item %d failed", index),
		Details: map[string]any{"item_index": index},
		Cause:   cause,
	}
}

// --- Inspection helpers ---

// As unwraps err into an *AppError if possible.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := stderrors.As(err, &appErr)
	return appErr, ok
}

// HasCode reports whether err (or any error it wraps) carries the given code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// IsConfiguration reports whether err is a configuration-class error, i.e.
// one detected before any network call.
func IsConfiguration(err error) bool {
	return HasCode(err, ErrCodeMissingParameter) ||
		HasCode(err, ErrCodeInvalidParameter) ||
		HasCode(err, ErrCodeUnknownOperation) ||
		HasCode(err, ErrCodeInvalidCatalog) ||
		HasCode(err, ErrCodeInvalidConfig)
}
