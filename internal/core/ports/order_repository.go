package ports

import (
	"context"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Lines are stored with their order and never updated.
type OrderRepository interface {
	// Add persists a new order together with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, courier and review changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Inside a transaction the row stays locked until
	// commit, which serializes concurrent transitions of the same order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllOutForDelivery retrieves every order a courier is currently delivering.
	// Inside a transaction the rows are share-locked until it ends, so a concurrent
	// MarkDelivered on one of them waits, and one already in flight is seen as delivered.
	GetAllOutForDelivery(ctx context.Context) ([]*order.Order, error)
}
