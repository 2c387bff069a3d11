package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors: detected before any network call, never retried.
const (
	// ErrCodeMissingParameter indicates a required parameter is absent or
	// empty for the selected operation.
	ErrCodeMissingParameter ErrorCode = "MISSING_PARAMETER"
	// ErrCodeInvalidParameter indicates a parameter value does not match
	// its declared kind.
	ErrCodeInvalidParameter ErrorCode = "INVALID_PARAMETER"
	// ErrCodeUnknownOperation indicates the selected operation is not in
	// the catalog.
	ErrCodeUnknownOperation ErrorCode = "UNKNOWN_OPERATION"
	// ErrCodeInvalidCatalog indicates an operation table is internally
	// inconsistent (duplicate names, unbound path placeholders, ...).
	ErrCodeInvalidCatalog ErrorCode = "INVALID_CATALOG"
	// ErrCodeInvalidConfig indicates adapter configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Execution errors.
const (
	// ErrCodeRequestFailed indicates the HTTP executor reported a failed
	// call (network failure or non-success response).
	ErrCodeRequestFailed ErrorCode = "REQUEST_FAILED"
	// ErrCodeItemFailed wraps any per-record failure surfaced in abort
	// mode, annotated with the offending record index.
	ErrCodeItemFailed ErrorCode = "ITEM_FAILED"
)
