package ports

import (
	"context"

	"github.com/mywallet/wallet-system/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
type UserRepository interface {
	// Create inserts the user only if no row already holds the same email.
	// The existence check and the insert are a single atomic store operation;
	// a duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns (nil, nil) when no user holds the email; an error
	// means the store itself failed.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SessionRepository persists opaque token → user bindings.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// Delete removes the session matching token. Deleting a token that does
	// not exist is not an error.
	Delete(ctx context.Context, token string) error
}
