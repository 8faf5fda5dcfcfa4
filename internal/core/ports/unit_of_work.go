package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork wraps one database transaction. Repositories obtained from it share the
// transaction between Begin and Commit. Rollback without an open transaction returns
// an error, which handlers deferring Rollback ignore.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	UserRepository() UserRepository

	StoreRepository() StoreRepository

	ItemRepository() ItemRepository

	OrderRepository() OrderRepository

	NotificationRepository() NotificationRepository

	ReviewRepository() ReviewRepository
}
