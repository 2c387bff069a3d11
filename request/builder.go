package request

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/kbukum/swapkit/catalog"
	"github.com/kbukum/swapkit/errors"
	"github.com/kbukum/swapkit/util"
)

// Build maps a resolved operation and parameter set to a request descriptor
// against the given base URL. Values that are zero for their kind are
// omitted from query and body (the falsy-omission rule).
func Build(cat *catalog.Catalog, operation string, vals catalog.Values, baseURL string) (*Descriptor, error) {
	op, err := cat.Operation(operation)
	if err != nil {
		return nil, err
	}

	path, err := interpolatePath(op, vals)
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		Method: op.Method,
		URL:    strings.TrimRight(baseURL, "/") + path,
	}
	if op.Method == http.MethodPost {
		d.Body = make(map[string]any)
	} else {
		d.Query = make(map[string]string)
	}

	for _, p := range cat.Params(operation) {
		if p.Placement == catalog.PlacePath {
			continue
		}
		v, ok := vals[p.Name]
		if !ok || v.IsZero() {
			continue
		}
		switch p.Placement {
		case catalog.PlaceQuery:
			// List values travel as the raw comma-separated string.
			d.Query[p.Name] = v.Text()
		case catalog.PlaceBody:
			if p.List {
				d.Body[p.Name] = util.SplitCSV(v.Text())
			} else {
				d.Body[p.Name] = v.JSON()
			}
		}
	}
	return d, nil
}

// interpolatePath substitutes {name} segments with the corresponding path
// parameter values. A missing or zero path value cannot produce a valid URL,
// so it is a configuration error even if the catalog forgot to mark the
// parameter required.
func interpolatePath(op catalog.Operation, vals catalog.Values) (string, error) {
	path := op.Path
	for _, name := range catalog.PathPlaceholders(op.Path) {
		v, ok := vals[name]
		if !ok || v.IsZero() {
			return "", errors.MissingParameter(op.Name, name)
		}
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(v.Text()))
	}
	return path, nil
}
