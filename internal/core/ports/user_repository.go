package ports

import (
	"context"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. Emails are unique.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists balance, store and courier profile changes.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by id. Inside a transaction the row stays locked until commit.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
