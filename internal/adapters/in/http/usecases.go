package http

import (
	"context"

	"oja/internal/core/application/usecases/commands"
	"oja/internal/core/application/usecases/queries"
)

type SignUpUserHandler interface {
	Handle(ctx context.Context, command commands.SignUpUserCommand) error
}

type CreateStoreHandler interface {
	Handle(ctx context.Context, command commands.CreateStoreCommand) error
}

type AddItemHandler interface {
	Handle(ctx context.Context, command commands.AddItemCommand) error
}

type RestockItemHandler interface {
	Handle(ctx context.Context, command commands.RestockItemCommand) error
}

type UpdateStockThresholdHandler interface {
	Handle(ctx context.Context, command commands.UpdateStockThresholdCommand) error
}

type PlaceOrderHandler interface {
	Handle(ctx context.Context, command commands.PlaceOrderCommand) error
}

type AcceptDeliveryHandler interface {
	Handle(ctx context.Context, command commands.AcceptDeliveryCommand) error
}

type MarkDeliveredHandler interface {
	Handle(ctx context.Context, command commands.MarkDeliveredCommand) (commands.MarkDeliveredResult, error)
}

type LeaveReviewHandler interface {
	Handle(ctx context.Context, command commands.LeaveReviewCommand) error
}

type GetSellerNotificationsHandler interface {
	Handle(
		ctx context.Context,
		query queries.GetSellerNotificationsQuery,
	) ([]queries.GetSellerNotificationsQueryResponse, error)
}

type GetNearbyStoresHandler interface {
	Handle(ctx context.Context, query queries.GetNearbyStoresQuery) ([]queries.GetNearbyStoresQueryResponse, error)
}

type GetStockAlertsHandler interface {
	Handle(ctx context.Context, query queries.GetStockAlertsQuery) (queries.GetStockAlertsQueryResponse, error)
}

type GetOrderTrackingHandler interface {
	Handle(ctx context.Context, query queries.GetOrderTrackingQuery) (queries.GetOrderTrackingQueryResponse, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	SignUpUser             SignUpUserHandler
	CreateStore            CreateStoreHandler
	AddItem                AddItemHandler
	RestockItem            RestockItemHandler
	UpdateStockThreshold   UpdateStockThresholdHandler
	PlaceOrder             PlaceOrderHandler
	AcceptDelivery         AcceptDeliveryHandler
	MarkDelivered          MarkDeliveredHandler
	LeaveReview            LeaveReviewHandler
	GetSellerNotifications GetSellerNotificationsHandler
	GetNearbyStores        GetNearbyStoresHandler
	GetStockAlerts         GetStockAlertsHandler
	GetOrderTracking       GetOrderTrackingHandler
}
