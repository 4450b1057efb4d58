package ports

import (
	"context"

	"github.com/thrive/wellness-api/internal/core/domain"
)

// SessionStore holds at most one authenticated identity for the lifetime of
// the process. Implementations must be safe for concurrent use.
type SessionStore interface {
	// Current returns a copy of the active identity, if any.
	Current() (*domain.User, bool)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Signup(ctx context.Context, email, password, name string, role domain.Role) (*domain.User, error)
	Logout(ctx context.Context) error
	// UpdateProfile merges patch into the active identity. Without an active
	// session it does nothing and returns (nil, nil).
	UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (*domain.User, error)
}

// SnapshotStore is a single-key local storage: one serialized value per key.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// TokenIssuer signs the bearer token returned on login and signup.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}
