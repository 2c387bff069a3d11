// Package credentials supplies the optional API key attached to every
// outbound request of an adapter instance.
//
// Credential absence is expected, not exceptional: a provider reports
// presence through a boolean, and implementations swallow their own lookup
// failures. Without a key the adapter simply runs against the
// unauthenticated, rate-limited tier of the service.
package credentials
