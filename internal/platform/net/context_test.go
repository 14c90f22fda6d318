package net

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("empty ctx = %q", got)
	}
	ctx := WithRequestID(context.Background(), "host/abc-000001")
	if got := RequestID(ctx); got != "host/abc-000001" {
		t.Fatalf("RequestID = %q", got)
	}
	if WithRequestID(ctx, "") != ctx {
		t.Fatal("empty id should return ctx unchanged")
	}
}
