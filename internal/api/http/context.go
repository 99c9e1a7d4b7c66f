package http

import (
	"context"

	"locmaq-backend/internal/security"
)

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity stores the verified caller in the request context.
func WithIdentity(ctx context.Context, id *security.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom extracts the verified caller from the request context.
func IdentityFrom(ctx context.Context) (*security.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*security.Identity)
	return id, ok
}
