package auth

import (
	"context"
	"testing"
)

func TestIdentityContext_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := ContextWithIdentity(context.Background(), "user-42")

	if got := IdentityFromContext(ctx); got != "user-42" {
		t.Errorf("expected user-42, got %q", got)
	}
}

func TestIdentityFromContext_Missing(t *testing.T) {
	t.Parallel()

	if got := IdentityFromContext(context.Background()); got != "" {
		t.Errorf("expected empty identity, got %q", got)
	}
}

func TestIdentityContext_NoCrossRequestLeakage(t *testing.T) {
	t.Parallel()

	base := context.Background()
	ctxA := ContextWithIdentity(base, "user-a")
	ctxB := ContextWithIdentity(base, "user-b")

	if IdentityFromContext(ctxA) != "user-a" || IdentityFromContext(ctxB) != "user-b" {
		t.Error("each context must carry its own binding")
	}
	if IdentityFromContext(base) != "" {
		t.Error("parent context must stay unbound")
	}
}

func TestMustIdentityFromContext_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing identity")
		}
	}()

	MustIdentityFromContext(context.Background())
}
