package catalog

import (
	"github.com/kbukum/swapkit/errors"
)

// Source supplies raw parameter values for one input record. Absence is
// reported through the second return value, so an explicit zero value can be
// told apart from "unset".
type Source interface {
	Value(name string) (any, bool)
}

// MapSource is a map-backed Source.
type MapSource map[string]any

// Value returns the raw value for name, if present.
func (m MapSource) Value(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Values is a resolved parameter set for one operation. Keys are a subset of
// the catalog parameters visible to the active operation.
type Values map[string]Value

// Resolve produces the parameter set for one record: every parameter visible
// to the operation, set to the supplied value or the declared default when
// completely unset. Parameters that are neither supplied nor defaulted are
// left out. A required parameter that resolves absent or zero fails with a
// configuration error; no network call happens for such a record.
func (c *Catalog) Resolve(operation string, src Source) (Values, error) {
	if _, err := c.Operation(operation); err != nil {
		return nil, err
	}
	if src == nil {
		src = MapSource(nil)
	}

	vals := make(Values)
	for _, p := range c.Params(operation) {
		raw, supplied := src.Value(p.Name)

		var (
			v   Value
			set bool
			err error
		)
		switch {
		case supplied:
			// An explicit value wins over the default, even when zero.
			v, err = coerceValue(p, raw)
			if err != nil {
				return nil, err
			}
			set = true
		case p.Default != nil:
			// Defaults were validated against the kind in New.
			v, err = coerceValue(p, p.Default)
			if err != nil {
				return nil, err
			}
			set = true
		}

		if p.Required && (!set || v.IsZero()) {
			return nil, errors.MissingParameter(operation, p.Name)
		}
		if set {
			vals[p.Name] = v
		}
	}
	return vals, nil
}
