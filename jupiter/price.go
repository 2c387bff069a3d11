package jupiter

import (
	"net/http"

	"github.com/kbukum/swapkit/catalog"
)

// priceCatalog covers the Price API: derived USD (or vsToken-relative)
// prices for a comma-separated list of mints.
var priceCatalog = catalog.MustNew("price",
	[]catalog.Operation{
		{Name: "getPrice", Method: http.MethodGet, Path: "/price/v2"},
	},
	[]catalog.Param{
		{Name: "ids", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Required: true, List: true, Operations: []string{"getPrice"}},
		{Name: "vsToken", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Operations: []string{"getPrice"}},
		{Name: "showExtraInfo", Kind: catalog.KindBool, Placement: catalog.PlaceQuery, Operations: []string{"getPrice"}},
	})
