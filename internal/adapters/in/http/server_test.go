package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"oja/api"
	httpin "oja/internal/adapters/in/http"
	"oja/internal/core/application/usecases/commands"
	"oja/internal/core/application/usecases/queries"
	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/order"
	"oja/internal/core/domain/services"
	"oja/internal/metrics"
	"oja/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	e        *echo.Echo
	signUp   *MockSignUpUserHandler
	place    *MockPlaceOrderHandler
	accept   *MockAcceptDeliveryHandler
	deliver  *MockMarkDeliveredHandler
	tracking *MockGetOrderTrackingHandler
	nearby   *MockGetNearbyStoresHandler
	alerts   *MockGetStockAlertsHandler
	healthy  error
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	f := &apiFixture{
		signUp:   &MockSignUpUserHandler{},
		place:    &MockPlaceOrderHandler{},
		accept:   &MockAcceptDeliveryHandler{},
		deliver:  &MockMarkDeliveredHandler{},
		tracking: &MockGetOrderTrackingHandler{},
		nearby:   &MockGetNearbyStoresHandler{},
		alerts:   &MockGetStockAlertsHandler{},
	}
	server := httpin.NewServer(httpin.Handlers{
		SignUpUser:       f.signUp,
		PlaceOrder:       f.place,
		AcceptDelivery:   f.accept,
		MarkDelivered:    f.deliver,
		GetOrderTracking: f.tracking,
		GetNearbyStores:  f.nearby,
		GetStockAlerts:   f.alerts,
	}, 10)

	reg := metrics.NewRegistry()
	httpMetrics, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	e, err := httpin.NewRouter(context.Background(), httpin.RouterConfig{
		Server:      server,
		OpenAPI:     api.OpenAPI,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		HTTPMetrics: httpMetrics,
		Metrics:     reg.Handler(),
		Health: func(context.Context) error {
			return f.healthy
		},
	})
	require.NoError(t, err)
	f.e = e

	t.Cleanup(func() {
		f.signUp.AssertExpectations(t)
		f.place.AssertExpectations(t)
		f.accept.AssertExpectations(t)
		f.deliver.AssertExpectations(t)
		f.tracking.AssertExpectations(t)
		f.nearby.AssertExpectations(t)
		f.alerts.AssertExpectations(t)
	})
	return f
}

func (f *apiFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpin.Error {
	t.Helper()
	var body httpin.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func placeOrderBody(buyerID, itemID kernel.UUID) string {
	return fmt.Sprintf(`{
		"buyerId": %q,
		"items": [{"itemId": %q, "quantity": 2}],
		"deliveryAddress": "7 Bode Thomas Street, Surulere",
		"dropoff": {"lat": 6.49, "lng": 3.36}
	}`, buyerID, itemID)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "1"), http.StatusNotFound},
		{"required", errs.NewValueIsRequiredError("email"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("cart"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("rating", 6, 1, 5), http.StatusBadRequest},
		{"joined validation", errors.Join(errs.NewValueIsRequiredError("name")), http.StatusBadRequest},
		{"insufficient funds", errs.NewInsufficientFundsError(11500, 100), http.StatusPaymentRequired},
		{"out of stock", errs.NewOutOfStockError("i", 3, 1), http.StatusConflict},
		{"already accepted", fmt.Errorf("accept: %w", errs.ErrAlreadyAccepted), http.StatusConflict},
		{"invalid transition", errs.NewInvalidTransitionError("Processing", "deliver"), http.StatusConflict},
		{"anything else", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpin.StatusFor(tt.err))
		})
	}
}

func TestPlaceOrder_Created(t *testing.T) {
	f := newAPIFixture(t)
	buyerID, itemID := kernel.NewUUID(), kernel.NewUUID()

	var placed commands.PlaceOrderCommand
	f.place.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.PlaceOrderCommand) bool {
		cart := c.Cart()
		return c.BuyerID().IsEqual(buyerID) &&
			len(cart) == 1 && cart[0].ItemID.IsEqual(itemID) && cart[0].Quantity == 2 &&
			c.Dropoff().IsEqual(kernel.MustGeoPoint(6.49, 3.36))
	})).Run(func(args mock.Arguments) {
		placed = args.Get(1).(commands.PlaceOrderCommand)
	}).Return(nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/orders", placeOrderBody(buyerID, itemID))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created httpin.Created
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, placed.OrderID().String(), created.Id.String())
}

func TestPlaceOrder_DomainErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"insufficient funds", errs.NewInsufficientFundsError(11500, 1000), http.StatusPaymentRequired},
		{"out of stock", errs.NewOutOfStockError("item", 2, 1), http.StatusConflict},
		{"unknown buyer", errs.NewObjectNotFoundError("user", "x"), http.StatusNotFound},
		{"database down", errors.New("dial tcp: connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.place.On("Handle", mock.Anything, mock.Anything).Return(tt.err).Once()

			rec := f.do(http.MethodPost, "/api/v1/orders", placeOrderBody(kernel.NewUUID(), kernel.NewUUID()))

			require.Equal(t, tt.code, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Code)
			if tt.code == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, "connection refused")
			} else {
				assert.Equal(t, tt.err.Error(), body.Message)
			}
		})
	}
}

func TestPlaceOrder_RejectedByContract(t *testing.T) {
	f := newAPIFixture(t)

	tests := map[string]string{
		"empty cart":     `{"buyerId":"` + kernel.NewUUID().String() + `","items":[],"deliveryAddress":"x","dropoff":{"lat":6.4,"lng":3.3}}`,
		"zero quantity":  strings.Replace(placeOrderBody(kernel.NewUUID(), kernel.NewUUID()), `"quantity": 2`, `"quantity": 0`, 1),
		"missing buyer":  `{"items":[{"itemId":"` + kernel.NewUUID().String() + `","quantity":1}],"deliveryAddress":"x","dropoff":{"lat":6.4,"lng":3.3}}`,
		"latitude range": strings.Replace(placeOrderBody(kernel.NewUUID(), kernel.NewUUID()), `"lat": 6.49`, `"lat": 96.49`, 1),
	}
	for name, body := range tests {
		rec := f.do(http.MethodPost, "/api/v1/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
		assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code, name)
	}
}

func TestSignUp_ReturnsOpeningBalance(t *testing.T) {
	f := newAPIFixture(t)
	f.signUp.On("Handle", mock.Anything, mock.AnythingOfType("commands.SignUpUserCommand")).Return(nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/users",
		`{"email":"ada@oja.ng","fullName":"Ada Obi","role":"BUYER"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created httpin.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "BUYER", created.Role)
	assert.Equal(t, int64(50000), created.Balance)
}

func TestSignUp_UnknownRoleIsRejected(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/users", `{"email":"a@b.c","fullName":"A","role":"PILOT"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptDelivery(t *testing.T) {
	f := newAPIFixture(t)
	orderID, courierID := kernel.NewUUID(), kernel.NewUUID()
	f.accept.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.AcceptDeliveryCommand) bool {
		return c.OrderID().IsEqual(orderID) && c.CourierID().IsEqual(courierID)
	})).Return(nil).Once()
	f.accept.On("Handle", mock.Anything, mock.Anything).Return(errs.ErrAlreadyAccepted).Once()

	body := fmt.Sprintf(`{"courierId":%q}`, courierID)
	first := f.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/accept", body)
	second := f.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/accept", body)

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestMarkDelivered_ReturnsPayout(t *testing.T) {
	f := newAPIFixture(t)
	orderID := kernel.NewUUID()
	f.deliver.On("Handle", mock.Anything, mock.Anything).Return(commands.MarkDeliveredResult{
		Changed: true,
		Payout:  services.Payout{Subtotal: 10000, Commission: 500, SellerAmount: 9500, CourierAmount: 1500},
	}, nil).Once()
	f.deliver.On("Handle", mock.Anything, mock.Anything).Return(commands.MarkDeliveredResult{}, nil).Once()

	body := fmt.Sprintf(`{"actorId":%q}`, kernel.NewUUID())
	first := f.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/deliver", body)
	second := f.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/deliver", body)

	require.Equal(t, http.StatusOK, first.Code)
	var result httpin.DeliveryResult
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &result))
	assert.True(t, result.Changed)
	require.NotNil(t, result.Payout)
	assert.Equal(t, int64(9500), result.Payout.SellerAmount)
	assert.Equal(t, int64(1500), result.Payout.CourierAmount)

	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, `{"changed":false}`, second.Body.String())
}

func TestMarkDelivered_InvalidTransition(t *testing.T) {
	f := newAPIFixture(t)
	f.deliver.On("Handle", mock.Anything, mock.Anything).
		Return(commands.MarkDeliveredResult{}, errs.NewInvalidTransitionError("Processing", "deliver")).Once()

	rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/deliver",
		fmt.Sprintf(`{"actorId":%q}`, kernel.NewUUID()))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetOrderTracking(t *testing.T) {
	f := newAPIFixture(t)
	orderID, courierID := kernel.NewUUID(), kernel.NewUUID()
	position := kernel.MustGeoPoint(6.495, 3.355)
	eta := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	f.tracking.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderTrackingQuery) bool {
		return q.OrderID().IsEqual(orderID)
	})).Return(queries.GetOrderTrackingQueryResponse{
		OrderID:   orderID,
		Status:    order.OutForDelivery,
		CourierID: &courierID,
		Pickup:    kernel.MustGeoPoint(6.50, 3.35),
		Dropoff:   kernel.MustGeoPoint(6.49, 3.36),
		Position:  &position,
		ETA:       eta,
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/tracking", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var tracking httpin.Tracking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tracking))
	assert.Equal(t, "OutForDelivery", tracking.Status)
	require.NotNil(t, tracking.CourierId)
	assert.Equal(t, courierID.String(), tracking.CourierId.String())
	require.NotNil(t, tracking.Position)
	assert.InDelta(t, 6.495, tracking.Position.Lat, 1e-9)
	assert.True(t, eta.Equal(tracking.Eta))
}

func TestGetOrderTracking_BadPathParam(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/orders/not-a-uuid/tracking", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderTracking_NotFound(t *testing.T) {
	f := newAPIFixture(t)
	f.tracking.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetOrderTrackingQueryResponse{}, errs.NewObjectNotFoundError("order", "x")).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String()+"/tracking", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
}

func TestGetNearbyStores_DefaultRadius(t *testing.T) {
	f := newAPIFixture(t)
	storeID := kernel.NewUUID()
	f.nearby.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetNearbyStoresQuery) bool {
		return q.RadiusKm() == 10
	})).Return([]queries.GetNearbyStoresQueryResponse{{
		ID:            storeID,
		Name:          "Iya Basira Kitchen",
		Category:      "Food",
		Address:       "Surulere",
		Location:      kernel.MustGeoPoint(6.50, 3.35),
		DistanceKm:    1.2,
		RatingAverage: 4.5,
		RatingCount:   2,
	}}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/stores/nearby?lat=6.5&lng=3.36", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var stores []httpin.NearbyStore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stores))
	require.Len(t, stores, 1)
	assert.Equal(t, storeID.String(), stores[0].Id.String())
	assert.Equal(t, 2, stores[0].Rating.Count)
}

func TestGetNearbyStores_QueryValidation(t *testing.T) {
	f := newAPIFixture(t)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/stores/nearby?lng=3.36", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/stores/nearby?lat=95&lng=3.36", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/v1/stores/nearby?lat=6.5&lng=3.36&radiusKm=0", "").Code)
}

func TestGetStockAlerts(t *testing.T) {
	f := newAPIFixture(t)
	storeID := kernel.NewUUID()
	f.alerts.On("Handle", mock.Anything, mock.Anything).Return(queries.GetStockAlertsQueryResponse{
		StoreID:    storeID,
		Threshold:  5,
		LowStock:   []queries.StockAlertItem{{ID: kernel.NewUUID(), Name: "Garri", Stock: 2}},
		OutOfStock: nil,
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/stores/"+storeID.String()+"/stock-alerts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var alerts httpin.StockAlerts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &alerts))
	assert.Equal(t, 5, alerts.Threshold)
	require.Len(t, alerts.LowStock, 1)
	assert.Equal(t, "Garri", alerts.LowStock[0].Name)
	assert.NotNil(t, alerts.OutOfStock)
	assert.Empty(t, alerts.OutOfStock)
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/couriers", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	f.healthy = errors.New("database unreachable")
	rec = f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSwaggerServesContract(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oja marketplace API")
}

func TestMetricsEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	_ = f.do(http.MethodGet, "/health", "")

	rec := f.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `oja_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
