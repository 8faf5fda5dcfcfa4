package http_test

import (
	"context"

	"oja/internal/core/application/usecases/commands"
	"oja/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockSignUpUserHandler struct{ mock.Mock }

func (m *MockSignUpUserHandler) Handle(ctx context.Context, command commands.SignUpUserCommand) error {
	return m.Called(ctx, command).Error(0)
}

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, command commands.PlaceOrderCommand) error {
	return m.Called(ctx, command).Error(0)
}

type MockAcceptDeliveryHandler struct{ mock.Mock }

func (m *MockAcceptDeliveryHandler) Handle(ctx context.Context, command commands.AcceptDeliveryCommand) error {
	return m.Called(ctx, command).Error(0)
}

type MockMarkDeliveredHandler struct{ mock.Mock }

func (m *MockMarkDeliveredHandler) Handle(
	ctx context.Context,
	command commands.MarkDeliveredCommand,
) (commands.MarkDeliveredResult, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(commands.MarkDeliveredResult), args.Error(1)
}

type MockGetOrderTrackingHandler struct{ mock.Mock }

func (m *MockGetOrderTrackingHandler) Handle(
	ctx context.Context,
	query queries.GetOrderTrackingQuery,
) (queries.GetOrderTrackingQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderTrackingQueryResponse), args.Error(1)
}

type MockGetNearbyStoresHandler struct{ mock.Mock }

func (m *MockGetNearbyStoresHandler) Handle(
	ctx context.Context,
	query queries.GetNearbyStoresQuery,
) ([]queries.GetNearbyStoresQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetNearbyStoresQueryResponse), args.Error(1)
}

type MockGetStockAlertsHandler struct{ mock.Mock }

func (m *MockGetStockAlertsHandler) Handle(
	ctx context.Context,
	query queries.GetStockAlertsQuery,
) (queries.GetStockAlertsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetStockAlertsQueryResponse), args.Error(1)
}
