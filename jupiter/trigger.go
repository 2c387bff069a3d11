package jupiter

import (
	"net/http"

	"github.com/kbukum/swapkit/catalog"
)

// triggerCatalog covers the Trigger API: on-chain limit orders created,
// executed, and cancelled through unsigned transactions the caller signs.
var triggerCatalog = catalog.MustNew("trigger",
	[]catalog.Operation{
		{Name: "createOrder", Method: http.MethodPost, Path: "/trigger/v1/createOrder"},
		{Name: "executeOrder", Method: http.MethodPost, Path: "/trigger/v1/execute"},
		{Name: "cancelOrder", Method: http.MethodPost, Path: "/trigger/v1/cancelOrder"},
		{Name: "cancelOrders", Method: http.MethodPost, Path: "/trigger/v1/cancelOrders"},
		{Name: "getTriggerOrders", Method: http.MethodGet, Path: "/trigger/v1/getTriggerOrders"},
	},
	[]catalog.Param{
		{Name: "inputMint", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"createOrder"}},
		{Name: "outputMint", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"createOrder"}},
		{Name: "maker", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"createOrder", "cancelOrder", "cancelOrders"}},
		{Name: "payer", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"createOrder"}},
		{Name: "makingAmount", Kind: catalog.KindNumber, Placement: catalog.PlaceBody, Required: true, Operations: []string{"createOrder"}},
		{Name: "takingAmount", Kind: catalog.KindNumber, Placement: catalog.PlaceBody, Required: true, Operations: []string{"createOrder"}},
		{Name: "expiredAt", Kind: catalog.KindNumber, Placement: catalog.PlaceBody, Operations: []string{"createOrder"}},
		{Name: "slippageBps", Kind: catalog.KindNumber, Placement: catalog.PlaceBody, Operations: []string{"createOrder"}},
		{Name: "feeAccount", Kind: catalog.KindString, Placement: catalog.PlaceBody, Operations: []string{"createOrder"}},
		// "auto" or a lamport amount, so carried as a string.
		{Name: "computeUnitPrice", Kind: catalog.KindString, Placement: catalog.PlaceBody, Operations: []string{"createOrder", "cancelOrder", "cancelOrders"}},

		{Name: "signedTransaction", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"executeOrder"}},
		{Name: "requestId", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"executeOrder"}},

		{Name: "order", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"cancelOrder"}},
		{Name: "orders", Kind: catalog.KindString, Placement: catalog.PlaceBody, List: true, Operations: []string{"cancelOrders"}},

		{Name: "user", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Required: true, Operations: []string{"getTriggerOrders"}},
		{Name: "orderStatus", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Required: true, Operations: []string{"getTriggerOrders"}},
		{Name: "page", Kind: catalog.KindNumber, Placement: catalog.PlaceQuery, Operations: []string{"getTriggerOrders"}},
		{Name: "includeFailedTx", Kind: catalog.KindBool, Placement: catalog.PlaceQuery, Operations: []string{"getTriggerOrders"}},
	})
