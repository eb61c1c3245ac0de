package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// identityKey is the context key for the acting identity.
const identityKey contextKey = "identity"

// ContextWithIdentity binds the acting user id to the request context.
// The binding is request-scoped: each request carries its own value.
func ContextWithIdentity(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, identityKey, userID)
}

// IdentityFromContext retrieves the acting user id from the context.
// Returns empty string if the request was not authenticated.
func IdentityFromContext(ctx context.Context) string {
	id, ok := ctx.Value(identityKey).(string)
	if !ok {
		return ""
	}
	return id
}

// MustIdentityFromContext retrieves the acting user id from the context.
// Panics if not present (use only behind the auth middleware).
func MustIdentityFromContext(ctx context.Context) string {
	id := IdentityFromContext(ctx)
	if id == "" {
		panic("identity not found in context - ensure auth middleware is applied")
	}
	return id
}
