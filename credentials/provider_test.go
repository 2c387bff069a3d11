package credentials

import (
	"context"
	"errors"
	"testing"
)

func TestStatic_Lookup(t *testing.T) {
	if _, ok := (Static{}).Lookup(context.Background()); ok {
		t.Error("empty static credential must report absent")
	}
	cred, ok := (Static{Credential: Credential{APIKey: "k"}}).Lookup(context.Background())
	if !ok || cred.APIKey != "k" {
		t.Errorf("got (%v, %v)", cred, ok)
	}
}

func TestEnv_Lookup(t *testing.T) {
	t.Setenv("SWAPKIT_TEST_KEY", "from-env")
	cred, ok := (Env{Var: "SWAPKIT_TEST_KEY"}).Lookup(context.Background())
	if !ok || cred.APIKey != "from-env" {
		t.Errorf("got (%v, %v)", cred, ok)
	}

	t.Setenv("SWAPKIT_TEST_KEY", "")
	if _, ok := (Env{Var: "SWAPKIT_TEST_KEY"}).Lookup(context.Background()); ok {
		t.Error("unset variable must report absent")
	}
}

func TestFunc_SwallowsErrors(t *testing.T) {
	p := Func(func(context.Context) (Credential, error) {
		return Credential{}, errors.New("store unreachable")
	})
	if _, ok := p.Lookup(context.Background()); ok {
		t.Error("lookup failure must report absent, never propagate")
	}
}

func TestHeaders(t *testing.T) {
	h := Headers(context.Background(), Static{Credential: Credential{APIKey: "secret"}})
	if h[HeaderAPIKey] != "secret" {
		t.Errorf("headers = %v", h)
	}

	if h := Headers(context.Background(), Static{}); h != nil {
		t.Errorf("absent credential must yield no headers, got %v", h)
	}
	if h := Headers(context.Background(), nil); h != nil {
		t.Errorf("nil provider must yield no headers, got %v", h)
	}
}
