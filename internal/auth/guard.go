package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"gorm.io/gorm"
)

// Guard resolves the caller behind a session token
type Guard struct {
	sessions repository.SessionRepositoryInterface
	now      func() time.Time
}

// NewGuard creates a guard backed by the session store
func NewGuard(sessions repository.SessionRepositoryInterface) *Guard {
	return &Guard{sessions: sessions, now: time.Now}
}

// WithClock replaces the guard's time source
func (g *Guard) WithClock(now func() time.Time) *Guard {
	g.now = now
	return g
}

// Resolve returns the identity owning token. A missing token, an unknown token
// and an expired session all yield ErrUnauthorized. It never writes.
func (g *Guard) Resolve(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, apperrors.ErrUnauthorized
	}

	session, err := g.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Identity{}, apperrors.ErrUnauthorized
		}
		return Identity{}, fmt.Errorf("failed to look up session: %w", err)
	}
	if !session.ActiveAt(g.now()) {
		return Identity{}, apperrors.ErrUnauthorized
	}

	return Identity{UserID: session.UserID, Token: token}, nil
}
