// Package catalog defines the static operation tables that drive swapkit
// adapters, and resolves per-record parameter values against them.
//
// A Catalog is an ordered, immutable set of named operations. Each operation
// binds an endpoint path template to an HTTP method; each parameter declares
// a kind (string, number, boolean), a placement (query, body, or path
// segment), an optional default, and a visibility list naming the operations
// it applies to. Catalogs are pure data: the same dispatch, resolution and
// request-building code serves every adapter family.
//
// # Resolution
//
// Resolve returns only parameters visible to the active operation, each set
// to the supplied value or the declared default when completely unset. An
// explicitly supplied zero value ("" / 0 / false) suppresses the default; it
// resolves to zero and is later omitted from the wire (the falsy-omission
// rule — a legitimately-zero value is indistinguishable from "unset" on the
// wire, which downstream defaults may rely on).
//
//	vals, err := cat.Resolve("quote", catalog.MapSource{
//	    "inputMint":  "So11...112",
//	    "outputMint": "EPjF...t1v",
//	    "amount":     "1000000",
//	})
package catalog
