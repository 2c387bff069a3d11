package catalog

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/kbukum/swapkit/errors"
)

// Operation binds a named action to an endpoint path template and method.
type Operation struct {
	// Name is the operation name used for dispatch.
	Name string
	// Method is the HTTP method. Read operations use GET, mutating
	// operations use POST.
	Method string
	// Path is the endpoint path template, relative to the adapter base
	// URL. Segments of the form {param} are interpolated from path-placed
	// parameters.
	Path string
}

// Catalog is the immutable operation table for one adapter family.
// Build one with New; it is never mutated at runtime and is safe for
// concurrent use.
type Catalog struct {
	name   string
	ops    []Operation
	params []Param
	index  map[string]int
}

// New builds a catalog from operation and parameter tables, validating
// internal consistency: unique names, supported methods, and path
// placeholders bound to path-placed parameters.
func New(name string, ops []Operation, params []Param) (*Catalog, error) {
	if name == "" {
		return nil, errors.InvalidCatalog(name, "catalog name is required")
	}
	if len(ops) == 0 {
		return nil, errors.InvalidCatalog(name, "at least one operation is required")
	}

	index := make(map[string]int, len(ops))
	for i, op := range ops {
		if op.Name == "" {
			return nil, errors.InvalidCatalog(name, fmt.Sprintf("operation %d has no name", i))
		}
		if _, dup := index[op.Name]; dup {
			return nil, errors.InvalidCatalog(name, fmt.Sprintf("duplicate operation %q", op.Name))
		}
		if op.Method != http.MethodGet && op.Method != http.MethodPost {
			return nil, errors.InvalidCatalog(name, fmt.Sprintf("operation %q: unsupported method %q", op.Name, op.Method))
		}
		if !strings.HasPrefix(op.Path, "/") {
			return nil, errors.InvalidCatalog(name, fmt.Sprintf("operation %q: path must start with /", op.Name))
		}
		index[op.Name] = i
	}

	for i, p := range params {
		if p.Name == "" {
			return nil, errors.InvalidCatalog(name, "parameter with empty name")
		}
		// Two declarations may share a name (e.g. "user" in a POST body
		// and a GET query) only when no operation sees both.
		for _, q := range params[:i] {
			if q.Name != p.Name {
				continue
			}
			for _, op := range ops {
				if p.AppliesTo(op.Name) && q.AppliesTo(op.Name) {
					return nil, errors.InvalidCatalog(name, fmt.Sprintf("parameter %q declared twice for operation %q", p.Name, op.Name))
				}
			}
		}
		for _, op := range p.Operations {
			if _, ok := index[op]; !ok {
				return nil, errors.InvalidCatalog(name, fmt.Sprintf("parameter %q references unknown operation %q", p.Name, op))
			}
		}
		if p.Default != nil {
			if _, err := coerceValue(p, p.Default); err != nil {
				return nil, errors.InvalidCatalog(name, fmt.Sprintf("parameter %q: default does not match kind %s", p.Name, p.Kind))
			}
		}
		// Read operations carry everything in the query string, mutating
		// operations in the JSON body. A parameter placed on the wrong
		// side of that split is a table error, not a runtime decision.
		for _, op := range ops {
			if !p.AppliesTo(op.Name) {
				continue
			}
			if p.Placement == PlaceBody && op.Method == http.MethodGet {
				return nil, errors.InvalidCatalog(name, fmt.Sprintf("body parameter %q applies to GET operation %q", p.Name, op.Name))
			}
			if p.Placement == PlaceQuery && op.Method == http.MethodPost {
				return nil, errors.InvalidCatalog(name, fmt.Sprintf("query parameter %q applies to POST operation %q", p.Name, op.Name))
			}
		}
	}

	c := &Catalog{name: name, ops: ops, params: params, index: index}

	// Every {placeholder} must be bound to a path-placed parameter visible
	// to that operation, and vice versa.
	for _, op := range ops {
		for _, ph := range PathPlaceholders(op.Path) {
			bound := false
			for _, p := range params {
				if p.Name == ph && p.Placement == PlacePath && p.AppliesTo(op.Name) {
					bound = true
					break
				}
			}
			if !bound {
				return nil, errors.InvalidCatalog(name, fmt.Sprintf("operation %q: placeholder {%s} has no path parameter", op.Name, ph))
			}
		}
	}
	for _, p := range params {
		if p.Placement != PlacePath {
			continue
		}
		for _, op := range ops {
			if !p.AppliesTo(op.Name) {
				continue
			}
			if !strings.Contains(op.Path, "{"+p.Name+"}") {
				return nil, errors.InvalidCatalog(name, fmt.Sprintf("path parameter %q not present in path of operation %q", p.Name, op.Name))
			}
		}
	}

	return c, nil
}

// MustNew is New for static catalog tables; it panics on table errors.
func MustNew(name string, ops []Operation, params []Param) *Catalog {
	c, err := New(name, ops, params)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the catalog (adapter family) name.
func (c *Catalog) Name() string { return c.name }

// Operations returns the operations in declaration order.
func (c *Catalog) Operations() []Operation {
	out := make([]Operation, len(c.ops))
	copy(out, c.ops)
	return out
}

// Operation looks up an operation by name. Unknown names are a fatal
// configuration error for the record that selected them.
func (c *Catalog) Operation(name string) (Operation, error) {
	i, ok := c.index[name]
	if !ok {
		return Operation{}, errors.UnknownOperation(c.name, name)
	}
	return c.ops[i], nil
}

// Params returns the parameters visible to the given operation, in
// declaration order.
func (c *Catalog) Params(operation string) []Param {
	out := make([]Param, 0, len(c.params))
	for _, p := range c.params {
		if p.AppliesTo(operation) {
			out = append(out, p)
		}
	}
	return out
}

// PathPlaceholders extracts {name} placeholders from a path template, in
// order of appearance.
func PathPlaceholders(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, "/") {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") && len(seg) > 2 {
			out = append(out, seg[1:len(seg)-1])
		}
	}
	return out
}
