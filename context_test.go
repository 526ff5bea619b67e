package crediflow

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	if _, ok := RequestIDFromContext(ctx); ok {
		t.Error("expected no id on a bare context")
	}

	ctx = WithRequestID(ctx, "workflow-7")
	id, ok := RequestIDFromContext(ctx)
	if !ok || id != "workflow-7" {
		t.Errorf("expected workflow-7, got %q (ok=%v)", id, ok)
	}
}
