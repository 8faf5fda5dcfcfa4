// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler validates its command, runs inside one unit of work and commits
// only when every step succeeded.
package commands

import (
	"context"

	"oja/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest combination they need.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// UserUoW manages transactions that only touch users (signup).
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// CatalogUoW manages transactions over stores and their items, with access to
	// the acting user for ownership checks.
	CatalogUoW interface {
		TxManager
		UserRepoFactory
		StoreRepoFactory
		ItemRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UoW manages transactions across every aggregate. Used by the order lifecycle
	// commands that move money and stock.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   userRepo := uow.UserRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		UserRepoFactory
		StoreRepoFactory
		ItemRepoFactory
		OrderRepoFactory
		NotificationRepoFactory
		ReviewRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
