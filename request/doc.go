// Package request maps a resolved operation and parameter set to a concrete
// request descriptor: method, URL, query parameters, and JSON body.
//
// The mapping is uniform across every adapter family:
//
//   - Path-placed parameters are interpolated into {name} segments of the
//     operation's path template.
//   - Read operations are GET with all remaining parameters in the query
//     string; mutating operations are POST with a JSON body.
//   - Zero-valued parameters ("" / 0 / false) are omitted entirely, even
//     when the catalog marks them optional-but-meaningful at zero.
//   - Comma-separated list parameters go into the query string as-is and
//     into JSON bodies as a sequence of trimmed tokens.
//
// No semantic validation happens here; the downstream service is the source
// of truth for address formats and the like.
package request
