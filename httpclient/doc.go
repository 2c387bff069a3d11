// Package httpclient provides the outbound HTTP transport for swapkit
// adapters.
//
// The base Client handles protocol concerns: URL resolution, JSON body
// encoding, header merging, and status-code classification into typed
// errors. Execute adapts a request descriptor into a single round trip and
// satisfies the Batch Runner's executor contract. There is deliberately no
// retry, backoff, rate limiting, or redirect handling here; timeout and
// cancellation arrive through the configured client timeout and the caller's
// context.
//
// # Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    Timeout: 30 * time.Second,
//	})
//
//	payload, err := client.Execute(ctx, descriptor)
package httpclient
