// Package runner drives one adapter invocation over an ordered sequence of
// input items: resolve the operation's parameters, build the request
// descriptor, inject the credential, execute, and append exactly one result
// per item, in input order.
//
// Items are processed strictly one at a time; the HTTP call is the only
// suspension point and there is never more than one request in flight.
//
// Failures follow a two-mode policy fixed at invocation start:
//
//   - isolation mode (ContinueOnError): any per-item failure becomes an
//     error-shaped Result and the batch continues, so len(results) always
//     equals len(items);
//   - abort mode: the run stops at the first failure, returning the results
//     gathered so far and an error annotated with the zero-based index of
//     the offending item.
package runner
