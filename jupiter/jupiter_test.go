package jupiter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/swapkit/catalog"
	"github.com/kbukum/swapkit/config"
	"github.com/kbukum/swapkit/credentials"
	"github.com/kbukum/swapkit/errors"
	"github.com/kbukum/swapkit/request"
	"github.com/kbukum/swapkit/runner"
)

// requiredParams builds a minimal parameter map satisfying every required
// parameter of the operation.
func requiredParams(cat *catalog.Catalog, operation string) map[string]any {
	params := map[string]any{}
	for _, p := range cat.Params(operation) {
		if !p.Required {
			continue
		}
		switch p.Kind {
		case catalog.KindNumber:
			params[p.Name] = 1
		case catalog.KindBool:
			params[p.Name] = true
		default:
			if p.List {
				params[p.Name] = "a,b"
			} else {
				params[p.Name] = "x"
			}
		}
	}
	return params
}

// Every operation in every family catalog must resolve and build a
// descriptor from its required parameters alone.
func TestCatalogs_EveryOperationBuilds(t *testing.T) {
	for _, family := range Families() {
		cat, err := FamilyCatalog(family)
		if err != nil {
			t.Fatalf("%s: %v", family, err)
		}
		if cat.Name() != family {
			t.Errorf("%s: catalog name = %q", family, cat.Name())
		}
		for _, op := range cat.Operations() {
			t.Run(family+"/"+op.Name, func(t *testing.T) {
				vals, err := cat.Resolve(op.Name, catalog.MapSource(requiredParams(cat, op.Name)))
				if err != nil {
					t.Fatalf("resolve: %v", err)
				}
				d, err := request.Build(cat, op.Name, vals, DefaultBaseURL)
				if err != nil {
					t.Fatalf("build: %v", err)
				}
				if d.Method != op.Method {
					t.Errorf("method = %s, want %s", d.Method, op.Method)
				}
				if strings.Contains(d.URL, "{") {
					t.Errorf("unfilled placeholder in %s", d.URL)
				}
				if op.Method == http.MethodGet && d.Body != nil {
					t.Errorf("GET operation produced a body")
				}
				if op.Method == http.MethodPost && d.Query != nil {
					t.Errorf("POST operation produced a query")
				}
			})
		}
	}
}

func TestSwapQuote_DefaultSlippage(t *testing.T) {
	cat, _ := FamilyCatalog(FamilySwap)

	params := requiredParams(cat, "getQuote")
	vals, err := cat.Resolve("getQuote", catalog.MapSource(params))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, err := request.Build(cat, "getQuote", vals, DefaultBaseURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Query["slippageBps"] != "50" {
		t.Errorf("slippageBps = %q, want 50", d.Query["slippageBps"])
	}

	// Explicit zero suppresses the default entirely.
	params["slippageBps"] = 0
	vals, err = cat.Resolve("getQuote", catalog.MapSource(params))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, err = request.Build(cat, "getQuote", vals, DefaultBaseURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := d.Query["slippageBps"]; ok {
		t.Error("explicit zero slippageBps must be omitted")
	}
}

func TestTokenCatalog_PathInterpolation(t *testing.T) {
	cat, _ := FamilyCatalog(FamilyToken)

	vals, err := cat.Resolve("getMarketMints", catalog.MapSource(map[string]any{"marketAddress": "M1"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, err := request.Build(cat, "getMarketMints", vals, DefaultBaseURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := DefaultBaseURL + "/tokens/v1/market/M1/mints"; d.URL != want {
		t.Errorf("URL = %s, want %s", d.URL, want)
	}
}

func TestNew_RunAgainstServer(t *testing.T) {
	var gotPath, gotIDs, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotIDs = r.URL.Query().Get("ids")
		gotKey = r.Header.Get(credentials.HeaderAPIKey)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"SOL":{"price":"150.0"}}}`))
	}))
	defer srv.Close()

	adapter, err := New(Config{
		Family:  FamilyPrice,
		BaseURL: srv.URL,
		APIKey:  "test-key",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results, err := adapter.Run(context.Background(), []runner.Item{
		{Operation: "getPrice", Params: map[string]any{"ids": "SOL, USDC"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Failed() {
		t.Fatalf("results = %+v", results)
	}
	if gotPath != "/price/v2" {
		t.Errorf("path = %q", gotPath)
	}
	// Query lists carry the raw comma-separated text.
	if gotIDs != "SOL, USDC" {
		t.Errorf("ids = %q", gotIDs)
	}
	if gotKey != "test-key" {
		t.Errorf("x-api-key = %q", gotKey)
	}
	if !strings.Contains(string(results[0].Payload), `"SOL"`) {
		t.Errorf("payload = %s", results[0].Payload)
	}
}

func TestNew_IsolationMode(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	adapter, err := New(Config{
		Family:          FamilyPrice,
		BaseURL:         srv.URL,
		ContinueOnError: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results, err := adapter.Run(context.Background(), []runner.Item{
		{Operation: "getPrice", Params: map[string]any{"ids": "SOL"}},
		{Operation: "getPrice", Params: map[string]any{"ids": "USDC"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if !results[0].Failed() || results[0].Index != 0 {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[1].Failed() || results[1].Index != 1 {
		t.Errorf("results[1] = %+v", results[1])
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error for missing family")
	}
	if _, err := New(Config{Family: "perps"}); err == nil {
		t.Error("expected error for unknown family")
	}
	if _, err := New(Config{Family: FamilyPrice, BaseURL: "not a url"}); err == nil {
		t.Error("expected error for malformed base URL")
	}
}

func TestConfig_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swapkit.yml")
	content := "family: swap\napi_key: test-key\ncontinue_on_error: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load[Config](path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Family != FamilySwap || cfg.APIKey != "test-key" || !cfg.ContinueOnError {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout default not applied: %v", cfg.Timeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging defaults not applied: %+v", cfg.Logging)
	}
}

func TestFamilyCatalog_Unknown(t *testing.T) {
	_, err := FamilyCatalog("perps")
	if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}
