// Package jupiter provides the operation catalogs and the adapter entry
// point for the Jupiter swap aggregator REST API.
//
// Each API family (ultra, swap, trigger, recurring, price, token) is a pure
// data catalog: an operation table plus a parameter table, with no
// per-operation code. New wires a family catalog together with the HTTP
// client, credential provider, and batch runner into an Adapter.
//
// Authenticated traffic goes to https://api.jup.ag with the key in the
// x-api-key header; without a key the adapter falls back to the
// unauthenticated https://lite-api.jup.ag tier.
package jupiter
