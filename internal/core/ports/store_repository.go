package ports

import (
	"context"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
type StoreRepository interface {
	Add(ctx context.Context, aggregate *store.Store) error

	Update(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store by id and locks its row inside a transaction.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)

	// Find retrieves a store by id without locking it. For reads of the owner or
	// location, which never change after creation.
	Find(ctx context.Context, id kernel.UUID) (*store.Store, error)
}

// ItemRepository defines the persistence contract for item aggregates.
type ItemRepository interface {
	Add(ctx context.Context, aggregate *store.Item) error

	Update(ctx context.Context, aggregate *store.Item) error

	// Get retrieves an item by id and locks its row inside a transaction.
	Get(ctx context.Context, id kernel.UUID) (*store.Item, error)

	// GetMany retrieves and locks several items, always in id order so that concurrent
	// checkouts cannot deadlock. Any unknown id is an errs.ErrObjectNotFound.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*store.Item, error)
}
