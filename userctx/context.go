package userctx

import (
	"context"

	"github.com/destegai/scan-server/models"
)

// Context key type
type contextKey string

const identityKey contextKey = "identity"

// Identity is the resolved "who is acting" for one request. It is
// placed in the request context by the auth middleware and read by
// every component that needs an actor; there is no ambient lookup.
type Identity struct {
	UID   string
	Email string
	Role  models.Role
}

// IsAdmin reports whether the identity holds the ADMIN role
func (id Identity) IsAdmin() bool {
	return id.Role == models.RoleAdmin
}

// WithIdentity adds the acting identity to the request context
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity retrieves the acting identity from the request context
func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// GetActorEmail retrieves the acting user's email, or "SYSTEM" when no
// identity is present (background and startup events).
func GetActorEmail(ctx context.Context) string {
	id, ok := GetIdentity(ctx)
	if !ok || id.Email == "" {
		return models.SystemActor
	}
	return id.Email
}
