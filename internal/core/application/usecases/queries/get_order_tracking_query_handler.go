package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/order"
	"oja/internal/core/ports"
	"oja/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler joins the stored order with the in-memory simulated position.
//
// The position depends on the status:
//   - Processing: none
//   - OutForDelivery: the simulated position, or the store pickup until the next tick
//     registers the order
//   - Delivered: the drop-off point
type GetOrderTrackingQueryHandler struct {
	db      *gorm.DB
	tracker ports.DeliveryTracker
}

func NewGetOrderTrackingQueryHandler(db *gorm.DB, tracker ports.DeliveryTracker) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db, tracker: tracker}
}

func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status,
			o.courier_id,
			o.eta,
			o.dropoff_lat,
			o.dropoff_lng,
			s.location_lat,
			s.location_lng
		FROM orders o
		JOIN stores s ON s.id = o.store_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		status                 int
		courierID              *uuid.UUID
		eta                    time.Time
		dropoffLat, dropoffLng float64
		pickupLat, pickupLng   float64
	)
	err := row.Scan(&status, &courierID, &eta, &dropoffLat, &dropoffLng, &pickupLat, &pickupLng)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderTrackingQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderTrackingQueryResponse{}, err
	}

	response := GetOrderTrackingQueryResponse{
		OrderID: query.OrderID(),
		Status:  order.Status(status),
		ETA:     eta,
	}
	if err := response.Status.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	if courierID != nil {
		id, idErr := kernel.UUIDFromBytes(courierID[:])
		if idErr != nil {
			return GetOrderTrackingQueryResponse{}, idErr
		}
		response.CourierID = &id
	}

	if response.Pickup, err = kernel.NewGeoPoint(pickupLat, pickupLng); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	if response.Dropoff, err = kernel.NewGeoPoint(dropoffLat, dropoffLng); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	switch response.Status {
	case order.OutForDelivery:
		position, ok := h.tracker.Position(query.OrderID())
		if !ok {
			position = response.Pickup
		}
		response.Position = &position
	case order.Delivered:
		position := response.Dropoff
		response.Position = &position
	case order.Unknown, order.Processing:
	}

	return response, nil
}
