// Package errors provides unified error handling for swapkit adapters.
// It implements structured error types with machine-readable codes so
// callers can distinguish configuration problems (bad catalog entry,
// missing parameter, unknown operation) from transport failures without
// string matching.
package errors
