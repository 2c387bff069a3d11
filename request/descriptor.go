package request

import "net/http"

// Descriptor describes one outbound HTTP request. Descriptors are built
// fresh per record and never reused.
type Descriptor struct {
	// Method is the HTTP method (GET or POST).
	Method string
	// URL is the full request URL with path parameters interpolated,
	// without the query string.
	URL string
	// Query holds query-string parameters. Empty for POST requests.
	Query map[string]string
	// Body holds JSON body values. Nil for GET requests.
	Body map[string]any
	// Headers are request headers, typically the injected credential.
	Headers map[string]string
}

// IsRead reports whether the descriptor describes a read (GET) operation.
func (d *Descriptor) IsRead() bool { return d.Method == http.MethodGet }

// SetHeader sets a single request header.
func (d *Descriptor) SetHeader(key, value string) {
	if d.Headers == nil {
		d.Headers = make(map[string]string)
	}
	d.Headers[key] = value
}
