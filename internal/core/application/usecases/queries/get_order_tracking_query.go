package queries

import (
	"errors"
	"time"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/order"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var (
	ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
		"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
	)
)

// GetOrderTrackingQuery asks where an order currently is.
//
// Example:
//
//	query, err := NewGetOrderTrackingQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	tracking, err := handler.Handle(ctx, query)
//	if tracking.Position != nil {
//	    fmt.Printf("courier at %s, ETA %s\n", tracking.Position, tracking.ETA)
//	}
type GetOrderTrackingQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return GetOrderTrackingQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// GetOrderTrackingQueryResponse is the tracking view of one order.
// Position is nil while the order is still Processing.
type GetOrderTrackingQueryResponse struct {
	OrderID   kernel.UUID
	Status    order.Status
	CourierID *kernel.UUID
	Pickup    kernel.GeoPoint
	Dropoff   kernel.GeoPoint
	Position  *kernel.GeoPoint
	ETA       time.Time
}
