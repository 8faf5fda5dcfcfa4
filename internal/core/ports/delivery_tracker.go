package ports

import (
	"oja/internal/core/domain/model/kernel"
)

// DeliveryTracker keeps the simulated courier position of every order out for delivery.
// Implementations must be safe for concurrent use.
type DeliveryTracker interface {
	// Track starts following an order from pickup to drop-off at progress 0.
	// Tracking an order twice keeps its current progress.
	Track(orderID kernel.UUID, pickup, dropoff kernel.GeoPoint)

	// Untrack forgets the order. Unknown orders are ignored.
	Untrack(orderID kernel.UUID)

	// Position returns the interpolated position, ok is false for untracked orders.
	Position(orderID kernel.UUID) (kernel.GeoPoint, bool)

	// Tracked lists the orders currently followed.
	Tracked() []kernel.UUID

	// Advance moves every tracked order one tick closer to its drop-off.
	Advance()
}
