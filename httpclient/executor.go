package httpclient

import (
	"context"
	"encoding/json"

	"github.com/kbukum/swapkit/request"
)

// Execute performs the single round trip a request descriptor describes and
// returns the raw JSON payload unmodified. It satisfies runner.Executor.
//
// Read descriptors go out without a body; mutating ones carry the body map.
// Responses are not schema-validated; the payload is whatever the service
// returned.
func (c *Client) Execute(ctx context.Context, d *request.Descriptor) (json.RawMessage, error) {
	req := Request{
		Method:  d.Method,
		Path:    d.URL,
		Headers: d.Headers,
		Query:   d.Query,
	}
	if !d.IsRead() {
		req.Body = d.Body
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(resp.Body), nil
}
