package jupiter

import (
	"net/http"

	"github.com/kbukum/swapkit/catalog"
)

// recurringCatalog covers the Recurring API: time-based DCA orders plus the
// price deposit/withdraw management calls.
var recurringCatalog = catalog.MustNew("recurring",
	[]catalog.Operation{
		{Name: "createOrder", Method: http.MethodPost, Path: "/recurring/v1/createOrder"},
		{Name: "executeOrder", Method: http.MethodPost, Path: "/recurring/v1/execute"},
		{Name: "cancelOrder", Method: http.MethodPost, Path: "/recurring/v1/cancelOrder"},
		{Name: "priceDeposit", Method: http.MethodPost, Path: "/recurring/v1/priceDeposit"},
		{Name: "priceWithdraw", Method: http.MethodPost, Path: "/recurring/v1/priceWithdraw"},
		{Name: "getRecurringOrders", Method: http.MethodGet, Path: "/recurring/v1/getRecurringOrders"},
	},
	[]catalog.Param{
		{Name: "user", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"createOrder", "cancelOrder", "priceDeposit", "priceWithdraw"}},
		{Name: "inputMint", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"createOrder"}},
		{Name: "outputMint", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"createOrder"}},
		{Name: "inAmount", Kind: catalog.KindNumber, Placement: catalog.PlaceBody, Required: true, Operations: []string{"createOrder"}},
		{Name: "numberOfOrders", Kind: catalog.KindNumber, Placement: catalog.PlaceBody, Required: true, Operations: []string{"createOrder"}},
		{Name: "interval", Kind: catalog.KindNumber, Placement: catalog.PlaceBody, Required: true, Operations: []string{"createOrder"}},
		{Name: "minPrice", Kind: catalog.KindNumber, Placement: catalog.PlaceBody, Operations: []string{"createOrder"}},
		{Name: "maxPrice", Kind: catalog.KindNumber, Placement: catalog.PlaceBody, Operations: []string{"createOrder"}},
		{Name: "startAt", Kind: catalog.KindNumber, Placement: catalog.PlaceBody, Operations: []string{"createOrder"}},

		{Name: "signedTransaction", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"executeOrder"}},
		{Name: "requestId", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"executeOrder"}},

		{Name: "order", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"cancelOrder", "priceDeposit", "priceWithdraw"}},
		{Name: "recurringType", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"cancelOrder"}},
		{Name: "amount", Kind: catalog.KindNumber, Placement: catalog.PlaceBody, Required: true, Operations: []string{"priceDeposit", "priceWithdraw"}},

		{Name: "user", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Required: true, Operations: []string{"getRecurringOrders"}},
		{Name: "orderStatus", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Required: true, Operations: []string{"getRecurringOrders"}},
		{Name: "recurringType", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Required: true, Operations: []string{"getRecurringOrders"}},
		{Name: "page", Kind: catalog.KindNumber, Placement: catalog.PlaceQuery, Operations: []string{"getRecurringOrders"}},
		{Name: "includeFailedTx", Kind: catalog.KindBool, Placement: catalog.PlaceQuery, Operations: []string{"getRecurringOrders"}},
	})
