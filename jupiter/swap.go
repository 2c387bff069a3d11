package jupiter

import (
	"net/http"

	"github.com/kbukum/swapkit/catalog"
)

// swapCatalog covers the Swap API: quote discovery plus self-signed swap
// transaction construction. The quoteResponse parameter is the raw JSON of a
// previous quote payload, forwarded verbatim as a string.
var swapCatalog = catalog.MustNew("swap",
	[]catalog.Operation{
		{Name: "getQuote", Method: http.MethodGet, Path: "/swap/v1/quote"},
		{Name: "buildSwap", Method: http.MethodPost, Path: "/swap/v1/swap"},
		{Name: "buildSwapInstructions", Method: http.MethodPost, Path: "/swap/v1/swap-instructions"},
		{Name: "getProgramIdToLabel", Method: http.MethodGet, Path: "/swap/v1/program-id-to-label"},
	},
	[]catalog.Param{
		{Name: "inputMint", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Required: true, Operations: []string{"getQuote"}},
		{Name: "outputMint", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Required: true, Operations: []string{"getQuote"}},
		{Name: "amount", Kind: catalog.KindNumber, Placement: catalog.PlaceQuery, Required: true, Operations: []string{"getQuote"}},
		{Name: "slippageBps", Kind: catalog.KindNumber, Placement: catalog.PlaceQuery, Default: 50, Operations: []string{"getQuote"}},
		{Name: "swapMode", Kind: catalog.KindString, Placement: catalog.PlaceQuery, Operations: []string{"getQuote"}},
		{Name: "dexes", Kind: catalog.KindString, Placement: catalog.PlaceQuery, List: true, Operations: []string{"getQuote"}},
		{Name: "excludeDexes", Kind: catalog.KindString, Placement: catalog.PlaceQuery, List: true, Operations: []string{"getQuote"}},
		{Name: "restrictIntermediateTokens", Kind: catalog.KindBool, Placement: catalog.PlaceQuery, Operations: []string{"getQuote"}},
		{Name: "onlyDirectRoutes", Kind: catalog.KindBool, Placement: catalog.PlaceQuery, Operations: []string{"getQuote"}},
		{Name: "asLegacyTransaction", Kind: catalog.KindBool, Placement: catalog.PlaceQuery, Operations: []string{"getQuote"}},
		{Name: "platformFeeBps", Kind: catalog.KindNumber, Placement: catalog.PlaceQuery, Operations: []string{"getQuote"}},
		{Name: "maxAccounts", Kind: catalog.KindNumber, Placement: catalog.PlaceQuery, Operations: []string{"getQuote"}},

		{Name: "userPublicKey", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"buildSwap", "buildSwapInstructions"}},
		{Name: "quoteResponse", Kind: catalog.KindString, Placement: catalog.PlaceBody, Required: true, Operations: []string{"buildSwap", "buildSwapInstructions"}},
		{Name: "wrapAndUnwrapSol", Kind: catalog.KindBool, Placement: catalog.PlaceBody, Operations: []string{"buildSwap", "buildSwapInstructions"}},
		{Name: "useSharedAccounts", Kind: catalog.KindBool, Placement: catalog.PlaceBody, Operations: []string{"buildSwap", "buildSwapInstructions"}},
		{Name: "feeAccount", Kind: catalog.KindString, Placement: catalog.PlaceBody, Operations: []string{"buildSwap", "buildSwapInstructions"}},
		{Name: "computeUnitPriceMicroLamports", Kind: catalog.KindNumber, Placement: catalog.PlaceBody, Operations: []string{"buildSwap", "buildSwapInstructions"}},
		{Name: "dynamicComputeUnitLimit", Kind: catalog.KindBool, Placement: catalog.PlaceBody, Operations: []string{"buildSwap", "buildSwapInstructions"}},
		{Name: "skipUserAccountsRpcCalls", Kind: catalog.KindBool, Placement: catalog.PlaceBody, Operations: []string{"buildSwap", "buildSwapInstructions"}},
	})
