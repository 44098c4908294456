package ports

import (
	"context"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
)

// SessionStore persists the login record between invocations. Current
// returns domain.ErrNoSession when nobody is logged in.
type SessionStore interface {
	Current(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
