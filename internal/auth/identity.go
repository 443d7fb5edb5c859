package auth

import (
	"context"

	"crm-backend/internal/logger"

	"github.com/google/uuid"
)

type identityKey struct{}

// Identity is the caller resolved from a session. It is the only source of
// owner ids handed to repositories.
type Identity struct {
	UserID uuid.UUID
	Token  string
}

// WithIdentity returns a context carrying the identity
func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, identityKey{}, id)
	return context.WithValue(ctx, logger.UserIDKey, id.UserID.String())
}

// IdentityFrom extracts the identity stored by WithIdentity
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.UserID == uuid.Nil {
		return Identity{}, false
	}
	return id, true
}
