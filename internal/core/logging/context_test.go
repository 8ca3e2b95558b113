package logging

import (
	"context"
	"testing"
)

func TestWithRequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "req-123"

	ctx = WithRequestID(ctx, requestID)
	got := GetRequestID(ctx)

	if got != requestID {
		t.Errorf("GetRequestID() = %q, want %q", got, requestID)
	}
}

func TestWithIntent(t *testing.T) {
	ctx := WithIntent(context.Background(), "delete")

	if got := GetIntent(ctx); got != "delete" {
		t.Errorf("GetIntent() = %q, want %q", got, "delete")
	}
}

func TestGetRequestID_NotPresent(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty string", got)
	}
}
