package jupiter

import (
	"net/http"

	"github.com/kbukum/swapkit/catalog"
)

// ultraCatalog covers the Ultra API: RFQ-style orders that Jupiter signs,
// lands, and confirms on the caller's behalf.
var ultraCatalog = catalog.MustNew("ultra",
	[]catalog.Operation{
		{Name: "getOrder", Method: http.MethodGet, Path: "/ultra/v1/order"},
		{Name: "executeOrder", Method: http.MethodPost, Path: "/ultra/v1/execute"},
		{Name: "getBalances", Method: http.MethodGet, Path: "/ultra/v1/balances/{address}"},
		{Name: "getShield", Method: http.MethodGet, Path: "/ultra/v1/shield"},
	},
	[]catalog.Param{
		{Name: "inputMint", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Required: true, Operations: []string{"getOrder"}},
		{Name: "outputMint", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Required: true, Operations: []string{"getOrder"}},
		{Name: "amount", Kind: catalog.KindNumber, Placement: catalog.PlaceQuery, Required: true, Operations: []string{"getOrder"}},
		{Name: "taker", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Operations: []string{"getOrder"}},
		{Name: "referralAccount", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Operations: []string{"getOrder"}},
		{Name: "referralFee", Kind: catalog.KindNumber, Placement: catalog.PlaceQuery, Operations: []string{"getOrder"}},

		{Name: "signedTransaction", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"executeOrder"}},
		{Name: "requestId", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"executeOrder"}},

		{Name: "address", Kind: catalog.KindString, Placement: catalog.PlacePath, Required: true, Operations: []string{"getBalances"}},

		{Name: "mints", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Required: true, List: true, Operations: []string{"getShield"}},
	})
