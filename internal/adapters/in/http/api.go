package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BasePath prefixes every marketplace route.
const BasePath = "/api/v1"

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// Location defines model for Location.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CourierDetails defines model for CourierDetails.
type CourierDetails struct {
	Address      string `json:"address"`
	LicensePlate string `json:"licensePlate"`
	Nin          string `json:"nin"`
	Vehicle      string `json:"vehicle"`
}

// SignUpRequest defines model for SignUpRequest.
type SignUpRequest struct {
	Courier  *CourierDetails `json:"courier,omitempty"`
	Email    string          `json:"email"`
	FullName string          `json:"fullName"`
	Phone    *string         `json:"phone,omitempty"`
	Role     string          `json:"role"`
}

// User defines model for User.
type User struct {
	Balance int64              `json:"balance"`
	Email   string             `json:"email"`
	Id      openapi_types.UUID `json:"id"`
	Role    string             `json:"role"`
}

// Notification defines model for Notification.
type Notification struct {
	CreatedAt time.Time          `json:"createdAt"`
	Id        openapi_types.UUID `json:"id"`
	Message   string             `json:"message"`
	OrderId   openapi_types.UUID `json:"orderId"`
	Read      bool               `json:"read"`
}

// NewStore defines model for NewStore.
type NewStore struct {
	Address     string             `json:"address"`
	Category    string             `json:"category"`
	Description *string            `json:"description,omitempty"`
	Location    Location           `json:"location"`
	Name        string             `json:"name"`
	OwnerId     openapi_types.UUID `json:"ownerId"`
}

// Rating defines model for Rating.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// NearbyStore defines model for NearbyStore.
type NearbyStore struct {
	Address    string             `json:"address"`
	Category   string             `json:"category"`
	DistanceKm float64            `json:"distanceKm"`
	Id         openapi_types.UUID `json:"id"`
	Location   Location           `json:"location"`
	Name       string             `json:"name"`
	Rating     Rating             `json:"rating"`
}

// NewItem defines model for NewItem.
type NewItem struct {
	ActorId     openapi_types.UUID `json:"actorId"`
	Description *string            `json:"description,omitempty"`
	Name        string             `json:"name"`
	Price       int64              `json:"price"`
	Stock       int                `json:"stock"`
}

// StockAlertItem defines model for StockAlertItem.
type StockAlertItem struct {
	Id    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
	Stock int                `json:"stock"`
}

// StockAlerts defines model for StockAlerts.
type StockAlerts struct {
	LowStock   []StockAlertItem   `json:"lowStock"`
	OutOfStock []StockAlertItem   `json:"outOfStock"`
	StoreId    openapi_types.UUID `json:"storeId"`
	Threshold  int                `json:"threshold"`
}

// ThresholdUpdate defines model for ThresholdUpdate.
type ThresholdUpdate struct {
	ActorId   openapi_types.UUID `json:"actorId"`
	Threshold int                `json:"threshold"`
}

// Restock defines model for Restock.
type Restock struct {
	ActorId  openapi_types.UUID `json:"actorId"`
	Quantity int                `json:"quantity"`
}

// CartItem defines model for CartItem.
type CartItem struct {
	ItemId   openapi_types.UUID `json:"itemId"`
	Quantity int                `json:"quantity"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	BuyerId         openapi_types.UUID `json:"buyerId"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Dropoff         Location           `json:"dropoff"`
	Items           []CartItem         `json:"items"`
}

// Acceptance defines model for Acceptance.
type Acceptance struct {
	CourierId openapi_types.UUID `json:"courierId"`
}

// DeliveryConfirmation defines model for DeliveryConfirmation.
type DeliveryConfirmation struct {
	ActorId openapi_types.UUID `json:"actorId"`
}

// Payout defines model for Payout.
type Payout struct {
	Commission    int64 `json:"commission"`
	CourierAmount int64 `json:"courierAmount"`
	SellerAmount  int64 `json:"sellerAmount"`
	Subtotal      int64 `json:"subtotal"`
}

// DeliveryResult defines model for DeliveryResult.
type DeliveryResult struct {
	// Changed false when the order was already delivered
	Changed bool    `json:"changed"`
	Payout  *Payout `json:"payout,omitempty"`
}

// Tracking defines model for Tracking.
type Tracking struct {
	CourierId *openapi_types.UUID `json:"courierId,omitempty"`
	Dropoff   Location            `json:"dropoff"`
	Eta       time.Time           `json:"eta"`
	OrderId   openapi_types.UUID  `json:"orderId"`
	Pickup    Location            `json:"pickup"`
	Position  *Location           `json:"position,omitempty"`
	Status    string              `json:"status"`
}

// ItemRating defines model for ItemRating.
type ItemRating struct {
	ItemId openapi_types.UUID `json:"itemId"`
	Rating int                `json:"rating"`
}

// NewReview defines model for NewReview.
type NewReview struct {
	BuyerId       openapi_types.UUID `json:"buyerId"`
	Comment       *string            `json:"comment,omitempty"`
	CourierRating *int               `json:"courierRating,omitempty"`
	ItemRatings   []ItemRating       `json:"itemRatings"`
	StoreRating   int                `json:"storeRating"`
}

// GetNearbyStoresParams defines parameters for GetNearbyStores.
type GetNearbyStoresParams struct {
	Lat float64 `form:"lat" json:"lat"`
	Lng float64 `form:"lng" json:"lng"`

	// RadiusKm Search radius, defaults to the configured radius
	RadiusKm *float64 `form:"radiusKm,omitempty" json:"radiusKm,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Create an account
	// (POST /api/v1/users)
	SignUp(ctx echo.Context) error
	// List a seller's notifications, newest first
	// (GET /api/v1/users/{userId}/notifications)
	GetNotifications(ctx echo.Context, userId openapi_types.UUID) error
	// Open the seller's store
	// (POST /api/v1/stores)
	CreateStore(ctx echo.Context) error
	// Stores within a radius, nearest first
	// (GET /api/v1/stores/nearby)
	GetNearbyStores(ctx echo.Context, params GetNearbyStoresParams) error
	// Add an item to the store
	// (POST /api/v1/stores/{storeId}/items)
	AddItem(ctx echo.Context, storeId openapi_types.UUID) error
	// Items at or below the low-stock threshold
	// (GET /api/v1/stores/{storeId}/stock-alerts)
	GetStockAlerts(ctx echo.Context, storeId openapi_types.UUID) error
	// Change the low-stock threshold
	// (PUT /api/v1/stores/{storeId}/low-stock-threshold)
	UpdateLowStockThreshold(ctx echo.Context, storeId openapi_types.UUID) error
	// Add units to an item's stock
	// (POST /api/v1/items/{itemId}/restock)
	RestockItem(ctx echo.Context, itemId openapi_types.UUID) error
	// Check a single-store cart out
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// Accept an order for delivery
	// (POST /api/v1/orders/{orderId}/accept)
	AcceptDelivery(ctx echo.Context, orderId openapi_types.UUID) error
	// Mark an order delivered and pay out
	// (POST /api/v1/orders/{orderId}/deliver)
	MarkDelivered(ctx echo.Context, orderId openapi_types.UUID) error
	// Order status and courier position
	// (GET /api/v1/orders/{orderId}/tracking)
	GetOrderTracking(ctx echo.Context, orderId openapi_types.UUID) error
	// Rate a delivered order
	// (POST /api/v1/orders/{orderId}/review)
	LeaveReview(ctx echo.Context, orderId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) SignUp(ctx echo.Context) error {
	return w.Handler.SignUp(ctx)
}

func (w *ServerInterfaceWrapper) GetNotifications(ctx echo.Context) error {
	userId, err := bindUUIDPathParam(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.GetNotifications(ctx, userId)
}

func (w *ServerInterfaceWrapper) CreateStore(ctx echo.Context) error {
	return w.Handler.CreateStore(ctx)
}

func (w *ServerInterfaceWrapper) GetNearbyStores(ctx echo.Context) error {
	var params GetNearbyStoresParams

	err := runtime.BindQueryParameter("form", true, true, "lat", ctx.QueryParams(), &params.Lat)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lat: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, true, "lng", ctx.QueryParams(), &params.Lng)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lng: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "radiusKm", ctx.QueryParams(), &params.RadiusKm)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter radiusKm: %s", err))
	}

	return w.Handler.GetNearbyStores(ctx, params)
}

func (w *ServerInterfaceWrapper) AddItem(ctx echo.Context) error {
	storeId, err := bindUUIDPathParam(ctx, "storeId")
	if err != nil {
		return err
	}
	return w.Handler.AddItem(ctx, storeId)
}

func (w *ServerInterfaceWrapper) GetStockAlerts(ctx echo.Context) error {
	storeId, err := bindUUIDPathParam(ctx, "storeId")
	if err != nil {
		return err
	}
	return w.Handler.GetStockAlerts(ctx, storeId)
}

func (w *ServerInterfaceWrapper) UpdateLowStockThreshold(ctx echo.Context) error {
	storeId, err := bindUUIDPathParam(ctx, "storeId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateLowStockThreshold(ctx, storeId)
}

func (w *ServerInterfaceWrapper) RestockItem(ctx echo.Context) error {
	itemId, err := bindUUIDPathParam(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.RestockItem(ctx, itemId)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) AcceptDelivery(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AcceptDelivery(ctx, orderId)
}

func (w *ServerInterfaceWrapper) MarkDelivered(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.MarkDelivered(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetOrderTracking(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrderTracking(ctx, orderId)
}

func (w *ServerInterfaceWrapper) LeaveReview(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.LeaveReview(ctx, orderId)
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter under BasePath.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, BasePath)
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/users", wrapper.SignUp)
	router.GET(baseURL+"/users/:userId/notifications", wrapper.GetNotifications)
	router.POST(baseURL+"/stores", wrapper.CreateStore)
	router.GET(baseURL+"/stores/nearby", wrapper.GetNearbyStores)
	router.POST(baseURL+"/stores/:storeId/items", wrapper.AddItem)
	router.GET(baseURL+"/stores/:storeId/stock-alerts", wrapper.GetStockAlerts)
	router.PUT(baseURL+"/stores/:storeId/low-stock-threshold", wrapper.UpdateLowStockThreshold)
	router.POST(baseURL+"/items/:itemId/restock", wrapper.RestockItem)
	router.POST(baseURL+"/orders", wrapper.PlaceOrder)
	router.POST(baseURL+"/orders/:orderId/accept", wrapper.AcceptDelivery)
	router.POST(baseURL+"/orders/:orderId/deliver", wrapper.MarkDelivered)
	router.GET(baseURL+"/orders/:orderId/tracking", wrapper.GetOrderTracking)
	router.POST(baseURL+"/orders/:orderId/review", wrapper.LeaveReview)
}
