package credentials

import (
	"context"
	"os"
)

// HeaderAPIKey is the header the swap API reads the key from.
const HeaderAPIKey = "x-api-key"

// Credential is the opaque secret associated with a whole adapter instance,
// never with individual records.
type Credential struct {
	// APIKey is the API key string.
	APIKey string
}

// Provider attempts to fetch the stored credential. The boolean is false
// when no usable credential exists; providers never return errors — lookup
// failure is a silent fallback to unauthenticated access.
type Provider interface {
	Lookup(ctx context.Context) (Credential, bool)
}

// Static is a fixed-key provider.
type Static struct {
	Credential Credential
}

// Lookup returns the fixed credential if its key is non-empty.
func (s Static) Lookup(context.Context) (Credential, bool) {
	if s.Credential.APIKey == "" {
		return Credential{}, false
	}
	return s.Credential, true
}

// Env looks the key up from an environment variable on every call.
type Env struct {
	// Var is the environment variable name.
	Var string
}

// Lookup reads the environment variable.
func (e Env) Lookup(context.Context) (Credential, bool) {
	key := os.Getenv(e.Var)
	if key == "" {
		return Credential{}, false
	}
	return Credential{APIKey: key}, true
}

// Func adapts an error-returning lookup into a Provider, swallowing the
// error unconditionally.
type Func func(ctx context.Context) (Credential, error)

// Lookup calls the function and discards any error.
func (f Func) Lookup(ctx context.Context) (Credential, bool) {
	cred, err := f(ctx)
	if err != nil || cred.APIKey == "" {
		return Credential{}, false
	}
	return cred, true
}

// Headers returns the header set to merge into a request descriptor:
// {"x-api-key": key} when a non-empty key is available, nil otherwise.
// A nil provider is treated as no credential.
func Headers(ctx context.Context, p Provider) map[string]string {
	if p == nil {
		return nil
	}
	cred, ok := p.Lookup(ctx)
	if !ok || cred.APIKey == "" {
		return nil
	}
	return map[string]string{HeaderAPIKey: cred.APIKey}
}
