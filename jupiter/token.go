package jupiter

import (
	"net/http"

	"github.com/kbukum/swapkit/catalog"
)

// tokenCatalog covers the Token API: mint metadata lookups and discovery
// lists.
var tokenCatalog = catalog.MustNew("token",
	[]catalog.Operation{
		{Name: "getToken", Method: http.MethodGet, Path: "/tokens/v1/token/{mint}"},
		{Name: "getTaggedTokens", Method: http.MethodGet, Path: "/tokens/v1/tagged/{tags}"},
		{Name: "getNewTokens", Method: http.MethodGet, Path: "/tokens/v1/new"},
		{Name: "getTradableTokens", Method: http.MethodGet, Path: "/tokens/v1/mints/tradable"},
		{Name: "getMarketMints", Method: http.MethodGet, Path: "/tokens/v1/market/{marketAddress}/mints"},
	},
	[]catalog.Param{
		{Name: "mint", Kind: catalog.KindString, Placement: catalog.PlacePath, Required: true, Operations: []string{"getToken"}},
		// Comma-separated tag list, kept verbatim inside a single path
		// segment.
		{Name: "tags", Kind: catalog.KindString, Placement: catalog.PlacePath, Required: true, Operations: []string{"getTaggedTokens"}},
		{Name: "limit", Kind: catalog.KindNumber, Placement: catalog.PlaceQuery, Operations: []string{"getNewTokens"}},
		{Name: "offset", Kind: catalog.KindNumber, Placement: catalog.PlaceQuery, Operations: []string{"getNewTokens"}},
		{Name: "marketAddress", Kind: catalog.KindString, Placement: catalog.PlacePath, Required: true, Operations: []string{"getMarketMints"}},
	})
