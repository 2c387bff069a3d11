package httpclient

import (
	"errors"
	"strings"
	"testing"
)

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		status int
		code   ErrorCode
	}{
		{401, ErrCodeAuth},
		{403, ErrCodeAuth},
		{404, ErrCodeNotFound},
		{429, ErrCodeRateLimit},
		{400, ErrCodeValidation},
		{422, ErrCodeValidation},
		{500, ErrCodeServer},
		{503, ErrCodeServer},
	}
	for _, tt := range tests {
		err := ClassifyStatusCode(tt.status, nil)
		if err == nil {
			t.Fatalf("status %d: expected error", tt.status)
		}
		if err.Code != tt.code {
			t.Errorf("status %d: code = %s, want %s", tt.status, err.Code, tt.code)
		}
		if err.StatusCode != tt.status {
			t.Errorf("status %d: StatusCode = %d", tt.status, err.StatusCode)
		}
	}

	for _, ok := range []int{200, 201, 204, 299} {
		if err := ClassifyStatusCode(ok, nil); err != nil {
			t.Errorf("status %d: expected nil, got %v", ok, err)
		}
	}
}

func TestClassifyStatusCode_BodyInMessage(t *testing.T) {
	err := ClassifyStatusCode(400, []byte(`{"error":"amount too small"}`))
	if !strings.Contains(err.Message, "amount too small") {
		t.Errorf("message = %q", err.Message)
	}
}

func TestClassifyStatusCode_TruncatesLongBody(t *testing.T) {
	err := ClassifyStatusCode(500, []byte(strings.Repeat("x", 4096)))
	if len(err.Message) > 600 {
		t.Errorf("message not truncated, len = %d", len(err.Message))
	}
}

func TestErrorPredicates(t *testing.T) {
	timeout := NewTimeoutError(errors.New("deadline exceeded"))
	if !IsTimeout(timeout) || IsConnection(timeout) {
		t.Error("timeout predicate mismatch")
	}

	conn := NewConnectionError(errors.New("refused"))
	if !IsConnection(conn) || IsTimeout(conn) {
		t.Error("connection predicate mismatch")
	}

	if !IsAuth(ClassifyStatusCode(401, nil)) {
		t.Error("expected auth predicate")
	}
	if !IsRateLimit(ClassifyStatusCode(429, nil)) {
		t.Error("expected rate limit predicate")
	}
	if !IsServerError(ClassifyStatusCode(502, nil)) {
		t.Error("expected server predicate")
	}
	if IsAuth(errors.New("plain")) {
		t.Error("plain errors must not classify")
	}
}
