package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	err := MissingParameter("quote", "inputMint")
	if !strings.Contains(err.Error(), "MISSING_PARAMETER") {
		t.Errorf("expected code in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "inputMint") {
		t.Errorf("expected parameter name in message, got %q", err.Error())
	}
}

func TestAppError_ErrorWithCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := RequestFailed(cause)
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestHasCode(t *testing.T) {
	inner := UnknownOperation("swap", "teleport")
	wrapped := ItemFailed(3, inner)

	if !HasCode(wrapped, ErrCodeItemFailed) {
		t.Error("expected ITEM_FAILED on the outer error")
	}
	if !HasCode(wrapped, ErrCodeUnknownOperation) {
		t.Error("expected UNKNOWN_OPERATION through the wrap chain")
	}
	if HasCode(wrapped, ErrCodeRequestFailed) {
		t.Error("did not expect REQUEST_FAILED")
	}
	if HasCode(nil, ErrCodeItemFailed) {
		t.Error("nil error should carry no code")
	}
}

func TestHasCode_ThroughFmtWrap(t *testing.T) {
	inner := MissingParameter("createOrder", "maker")
	wrapped := fmt.Errorf("resolve: %w", inner)
	if !HasCode(wrapped, ErrCodeMissingParameter) {
		t.Error("expected code through fmt.Errorf wrap")
	}
}

func TestIsConfiguration(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"missing parameter", MissingParameter("quote", "amount"), true},
		{"unknown operation", UnknownOperation("price", "nope"), true},
		{"invalid catalog", InvalidCatalog("swap", "duplicate operation"), true},
		{"request failed", RequestFailed(stderrors.New("boom")), false},
		{"plain error", stderrors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfiguration(tt.err); got != tt.want {
				t.Errorf("IsConfiguration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItemFailed_Index(t *testing.T) {
	err := ItemFailed(7, stderrors.New("boom"))
	if got := err.Details["item_index"]; got != 7 {
		t.Errorf("expected item_index=7, got %v", got)
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "bad config").WithDetail("field", "base_url")
	if err.Details["field"] != "base_url" {
		t.Errorf("expected detail to be set, got %v", err.Details)
	}
}
