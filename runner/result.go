package runner

import "encoding/json"

// Item is one unit of input. The runner reads only the operation selection
// and the raw parameter values; everything else about the record is opaque.
type Item struct {
	// Operation is the catalog operation to dispatch for this item.
	Operation string
	// Params holds raw user-supplied parameter values by wire name.
	// A key that is present with a zero value is "explicitly zero" and
	// suppresses the catalog default; a missing key means "unset".
	Params map[string]any
}

// Result is the outcome for one input item. Exactly one Result exists per
// item in isolation mode, carrying either the payload or the error message,
// always with the item's original index.
type Result struct {
	// Index is the zero-based input position this result belongs to.
	Index int `json:"index"`
	// Payload is the raw JSON the service returned, passed through
	// unmodified. Nil on failure.
	Payload json.RawMessage `json:"payload,omitempty"`
	// Error is the failure message when the item failed in isolation
	// mode. Empty on success.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the result is error-shaped.
func (r Result) Failed() bool { return r.Error != "" }
