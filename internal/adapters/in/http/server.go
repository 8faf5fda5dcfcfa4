package http

import (
	"net/http"

	"oja/internal/core/application/usecases/commands"
	"oja/internal/core/application/usecases/queries"
	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It translates wire models into commands and queries and leaves error
// mapping to the echo error handler.
type Server struct {
	handlers        Handlers
	defaultRadiusKm float64
}

// NewServer creates a new HTTP server with the required command and query handlers.
// defaultRadiusKm is used by GetNearbyStores when the request has no radius.
func NewServer(handlers Handlers, defaultRadiusKm float64) *Server {
	return &Server{
		handlers:        handlers,
		defaultRadiusKm: defaultRadiusKm,
	}
}

// SignUp handles POST /api/v1/users - creates an account.
func (s *Server) SignUp(ctx echo.Context) error {
	var req SignUpRequest
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return err
	}

	var courier *commands.CourierDetails
	if req.Courier != nil {
		courier = &commands.CourierDetails{
			Vehicle:      user.VehicleType(req.Courier.Vehicle),
			LicensePlate: req.Courier.LicensePlate,
			NIN:          req.Courier.Nin,
			Address:      req.Courier.Address,
		}
	}

	cmd, err := commands.NewSignUpUserCommand(req.Email, req.FullName, deref(req.Phone), role, courier)
	if err != nil {
		return err
	}
	if err := s.handlers.SignUpUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, User{
		Id:      cmd.UserID().Bytes(),
		Email:   cmd.Email(),
		Role:    role.String(),
		Balance: role.OpeningBalance(),
	})
}

// GetNotifications handles GET /api/v1/users/{userId}/notifications.
func (s *Server) GetNotifications(ctx echo.Context, userId openapi_types.UUID) error {
	sellerID, err := kernel.UUIDFromGoogle(userId)
	if err != nil {
		return err
	}
	query, err := queries.NewGetSellerNotificationsQuery(sellerID)
	if err != nil {
		return err
	}

	notes, err := s.handlers.GetSellerNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Notification, len(notes))
	for i, n := range notes {
		response[i] = Notification{
			Id:        n.ID.Bytes(),
			OrderId:   n.OrderID.Bytes(),
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateStore handles POST /api/v1/stores.
func (s *Server) CreateStore(ctx echo.Context) error {
	var req NewStore
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	ownerID, err := kernel.UUIDFromGoogle(req.OwnerId)
	if err != nil {
		return err
	}
	location, err := kernel.NewGeoPoint(req.Location.Lat, req.Location.Lng)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateStoreCommand(ownerID, req.Name, deref(req.Description), req.Category, req.Address, location)
	if err != nil {
		return err
	}
	if err := s.handlers.CreateStore.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, Created{Id: cmd.StoreID().Bytes()})
}

// GetNearbyStores handles GET /api/v1/stores/nearby.
func (s *Server) GetNearbyStores(ctx echo.Context, params GetNearbyStoresParams) error {
	origin, err := kernel.NewGeoPoint(params.Lat, params.Lng)
	if err != nil {
		return err
	}
	radius := s.defaultRadiusKm
	if params.RadiusKm != nil {
		radius = *params.RadiusKm
	}

	query, err := queries.NewGetNearbyStoresQuery(origin, radius)
	if err != nil {
		return err
	}
	stores, err := s.handlers.GetNearbyStores.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]NearbyStore, len(stores))
	for i, st := range stores {
		response[i] = NearbyStore{
			Id:         st.ID.Bytes(),
			Name:       st.Name,
			Category:   st.Category,
			Address:    st.Address,
			Location:   toLocation(st.Location),
			DistanceKm: st.DistanceKm,
			Rating:     Rating{Average: st.RatingAverage, Count: st.RatingCount},
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddItem handles POST /api/v1/stores/{storeId}/items.
func (s *Server) AddItem(ctx echo.Context, storeId openapi_types.UUID) error {
	var req NewItem
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	storeID, err := kernel.UUIDFromGoogle(storeId)
	if err != nil {
		return err
	}
	actorID, err := kernel.UUIDFromGoogle(req.ActorId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddItemCommand(actorID, storeID, req.Name, deref(req.Description), req.Price, req.Stock)
	if err != nil {
		return err
	}
	if err := s.handlers.AddItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, Created{Id: cmd.ItemID().Bytes()})
}

// GetStockAlerts handles GET /api/v1/stores/{storeId}/stock-alerts.
func (s *Server) GetStockAlerts(ctx echo.Context, storeId openapi_types.UUID) error {
	storeID, err := kernel.UUIDFromGoogle(storeId)
	if err != nil {
		return err
	}
	query, err := queries.NewGetStockAlertsQuery(storeID)
	if err != nil {
		return err
	}

	alerts, err := s.handlers.GetStockAlerts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, StockAlerts{
		StoreId:    alerts.StoreID.Bytes(),
		Threshold:  alerts.Threshold,
		LowStock:   toStockAlertItems(alerts.LowStock),
		OutOfStock: toStockAlertItems(alerts.OutOfStock),
	})
}

// UpdateLowStockThreshold handles PUT /api/v1/stores/{storeId}/low-stock-threshold.
func (s *Server) UpdateLowStockThreshold(ctx echo.Context, storeId openapi_types.UUID) error {
	var req ThresholdUpdate
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	storeID, err := kernel.UUIDFromGoogle(storeId)
	if err != nil {
		return err
	}
	actorID, err := kernel.UUIDFromGoogle(req.ActorId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateStockThresholdCommand(actorID, storeID, req.Threshold)
	if err != nil {
		return err
	}
	if err := s.handlers.UpdateStockThreshold.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RestockItem handles POST /api/v1/items/{itemId}/restock.
func (s *Server) RestockItem(ctx echo.Context, itemId openapi_types.UUID) error {
	var req Restock
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	itemID, err := kernel.UUIDFromGoogle(itemId)
	if err != nil {
		return err
	}
	actorID, err := kernel.UUIDFromGoogle(req.ActorId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRestockItemCommand(actorID, itemID, req.Quantity)
	if err != nil {
		return err
	}
	if err := s.handlers.RestockItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders - checks a cart out.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	buyerID, err := kernel.UUIDFromGoogle(req.BuyerId)
	if err != nil {
		return err
	}
	dropoff, err := kernel.NewGeoPoint(req.Dropoff.Lat, req.Dropoff.Lng)
	if err != nil {
		return err
	}
	cart := make([]commands.CartEntry, 0, len(req.Items))
	for _, line := range req.Items {
		itemID, err := kernel.UUIDFromGoogle(line.ItemId)
		if err != nil {
			return err
		}
		cart = append(cart, commands.CartEntry{ItemID: itemID, Quantity: line.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(buyerID, cart, req.DeliveryAddress, dropoff)
	if err != nil {
		return err
	}
	if err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, Created{Id: cmd.OrderID().Bytes()})
}

// AcceptDelivery handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	var req Acceptance
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}
	courierID, err := kernel.UUIDFromGoogle(req.CourierId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptDeliveryCommand(courierID, orderID)
	if err != nil {
		return err
	}
	if err := s.handlers.AcceptDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) MarkDelivered(ctx echo.Context, orderId openapi_types.UUID) error {
	var req DeliveryConfirmation
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}
	actorID, err := kernel.UUIDFromGoogle(req.ActorId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkDeliveredCommand(actorID, orderID)
	if err != nil {
		return err
	}
	res, err := s.handlers.MarkDelivered.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	response := DeliveryResult{Changed: res.Changed}
	if res.Changed {
		response.Payout = &Payout{
			Subtotal:      res.Payout.Subtotal,
			Commission:    res.Payout.Commission,
			SellerAmount:  res.Payout.SellerAmount,
			CourierAmount: res.Payout.CourierAmount,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderTracking handles GET /api/v1/orders/{orderId}/tracking.
func (s *Server) GetOrderTracking(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return err
	}

	tracking, err := s.handlers.GetOrderTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := Tracking{
		OrderId: tracking.OrderID.Bytes(),
		Status:  tracking.Status.String(),
		Pickup:  toLocation(tracking.Pickup),
		Dropoff: toLocation(tracking.Dropoff),
		Eta:     tracking.ETA,
	}
	if tracking.CourierID != nil {
		courierID := tracking.CourierID.Bytes()
		response.CourierId = &courierID
	}
	if tracking.Position != nil {
		position := toLocation(*tracking.Position)
		response.Position = &position
	}
	return ctx.JSON(http.StatusOK, response)
}

// LeaveReview handles POST /api/v1/orders/{orderId}/review.
func (s *Server) LeaveReview(ctx echo.Context, orderId openapi_types.UUID) error {
	var req NewReview
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}
	buyerID, err := kernel.UUIDFromGoogle(req.BuyerId)
	if err != nil {
		return err
	}
	itemRatings := make(map[kernel.UUID]int, len(req.ItemRatings))
	for _, r := range req.ItemRatings {
		itemID, err := kernel.UUIDFromGoogle(r.ItemId)
		if err != nil {
			return err
		}
		itemRatings[itemID] = r.Rating
	}
	courierRating := 0
	if req.CourierRating != nil {
		courierRating = *req.CourierRating
	}

	cmd, err := commands.NewLeaveReviewCommand(buyerID, orderID, req.StoreRating, itemRatings, courierRating, deref(req.Comment))
	if err != nil {
		return err
	}
	if err := s.handlers.LeaveReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toLocation(p kernel.GeoPoint) Location {
	return Location{Lat: p.Lat(), Lng: p.Lng()}
}

func toStockAlertItems(items []queries.StockAlertItem) []StockAlertItem {
	response := make([]StockAlertItem, len(items))
	for i, item := range items {
		response[i] = StockAlertItem{Id: item.ID.Bytes(), Name: item.Name, Stock: item.Stock}
	}
	return response
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
