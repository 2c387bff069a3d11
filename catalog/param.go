package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kbukum/swapkit/errors"
)

// Kind identifies a parameter value type.
type Kind int

const (
	// KindString is a text parameter.
	KindString Kind = iota
	// KindNumber is a numeric parameter, carried as decimal.Decimal so
	// lamport-scale amounts survive untruncated.
	KindNumber
	// KindBool is a boolean parameter.
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Placement identifies where a parameter goes in the outbound request.
type Placement int

const (
	// PlaceQuery puts the parameter in the URL query string.
	PlaceQuery Placement = iota
	// PlaceBody puts the parameter in the JSON request body.
	PlaceBody
	// PlacePath interpolates the parameter into a {name} path segment.
	PlacePath
)

// Param declares one catalog parameter.
type Param struct {
	// Name is the wire name of the parameter.
	Name string
	// Kind is the value type.
	Kind Kind
	// Placement selects query, body, or path interpolation.
	Placement Placement
	// Default is substituted when the parameter is completely unset.
	// Nil means no default.
	Default any
	// Required marks the parameter mandatory: absent or zero-valued
	// resolution is a configuration error.
	Required bool
	// Operations lists the operation names this parameter applies to.
	// Nil or empty means every operation in the catalog.
	Operations []string
	// List marks comma-separated text. List values are forwarded raw in
	// query strings but split into trimmed tokens in JSON bodies.
	List bool
}

// AppliesTo reports whether the parameter is visible to the given operation.
func (p Param) AppliesTo(operation string) bool {
	if len(p.Operations) == 0 {
		return true
	}
	for _, op := range p.Operations {
		if op == operation {
			return true
		}
	}
	return false
}

// Value is a resolved parameter value tagged with its kind.
type Value struct {
	kind Kind
	str  string
	num  decimal.Decimal
	b    bool
}

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue wraps a decimal.
func NumberValue(d decimal.Decimal) Value { return Value{kind: KindNumber, num: d} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether the value is its kind's zero: empty string, zero
// number, or false. Zero values are omitted from outbound requests.
func (v Value) IsZero() bool {
	switch v.kind {
	case KindNumber:
		return v.num.IsZero()
	case KindBool:
		return !v.b
	default:
		return v.str == ""
	}
}

// Text returns the query-string/path form of the value.
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return v.num.String()
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return v.str
	}
}

// JSON returns the typed form of the value for a JSON body: string,
// json.Number, or bool.
func (v Value) JSON() any {
	switch v.kind {
	case KindNumber:
		return json.Number(v.num.String())
	case KindBool:
		return v.b
	default:
		return v.str
	}
}

// coerceValue converts a raw user-supplied value into a typed Value
// according to the parameter's declared kind.
func coerceValue(p Param, raw any) (Value, error) {
	switch p.Kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return Value{}, errors.InvalidParameter(p.Name, fmt.Sprintf("expected string, got %T", raw))
		}
		return StringValue(s), nil
	case KindNumber:
		d, err := toDecimal(raw)
		if err != nil {
			return Value{}, errors.InvalidParameter(p.Name, err.Error())
		}
		return NumberValue(d), nil
	case KindBool:
		b, ok := raw.(bool)
		if !ok {
			return Value{}, errors.InvalidParameter(p.Name, fmt.Sprintf("expected boolean, got %T", raw))
		}
		return BoolValue(b), nil
	default:
		return Value{}, errors.InvalidParameter(p.Name, fmt.Sprintf("unsupported kind %d", p.Kind))
	}
}

// toDecimal accepts the numeric representations callers plausibly hold:
// decimals, Go integers/floats, numeric strings, and json.Number.
func toDecimal(raw any) (decimal.Decimal, error) {
	switch n := raw.(type) {
	case decimal.Decimal:
		return n, nil
	case string:
		return decimal.NewFromString(n)
	case json.Number:
		return decimal.NewFromString(n.String())
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	default:
		return decimal.Zero, fmt.Errorf("expected number, got %T", raw)
	}
}
