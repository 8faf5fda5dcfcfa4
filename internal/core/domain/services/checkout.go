package services

import (
	"errors"
	"fmt"
	"time"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/order"
	"oja/internal/core/domain/model/store"
	"oja/internal/core/domain/model/user"
	"oja/internal/pkg/errs"
)

const (
	// DefaultDeliveryFee is charged on every order with a positive subtotal.
	DefaultDeliveryFee int64 = 1500
	// DefaultETA is the promised delivery time after checkout.
	DefaultETA = time.Hour
)

// ErrCartIsEmpty is returned when checking out an empty cart.
var ErrCartIsEmpty = errs.NewValueIsRequiredError("cart")

// CartLine is one cart entry: Quantity units of Item.
type CartLine struct {
	Item     *store.Item
	Quantity int
}

// OrderRequest is everything checkout needs to turn a cart into an order.
type OrderRequest struct {
	// OrderID is generated when left empty.
	OrderID         kernel.UUID
	Buyer           *user.User
	Store           *store.Store
	Cart            []CartLine
	DeliveryAddress string
	Dropoff         kernel.GeoPoint
	PlacedAt        time.Time
}

// Checkout places orders: it snapshots the cart, reserves stock, debits the buyer and
// only then applies the stock decrements. Any failure leaves buyer and items untouched.
type Checkout struct {
	ledger      Ledger
	stock       StockLedger
	deliveryFee int64
	eta         time.Duration
}

// NewCheckout creates a checkout charging deliveryFee and promising delivery within eta.
func NewCheckout(ledger Ledger, stock StockLedger, deliveryFee int64, eta time.Duration) (Checkout, error) {
	var errList []error
	if deliveryFee < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("delivery fee",
			fmt.Errorf("%d is negative", deliveryFee)))
	}
	if eta <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("eta",
			fmt.Errorf("%s is not positive", eta)))
	}
	if err := errors.Join(errList...); err != nil {
		return Checkout{}, err
	}
	return Checkout{ledger: ledger, stock: stock, deliveryFee: deliveryFee, eta: eta}, nil
}

// NewDefaultCheckout uses the default ledger, DefaultDeliveryFee and DefaultETA.
func NewDefaultCheckout() Checkout {
	return Checkout{ledger: NewDefaultLedger(), stock: NewStockLedger(), deliveryFee: DefaultDeliveryFee, eta: DefaultETA}
}

func (c Checkout) DeliveryFee() int64 {
	return c.deliveryFee
}

// PlaceOrder turns the cart into a Processing order.
//
// Errors:
//   - errs.ErrValueIsRequired / errs.ErrValueIsInvalid for an empty cart, a cart spanning
//     several stores, a quantity below 1 or a buyer that is not a RoleBuyer user
//   - errs.ErrOutOfStock when any line exceeds the item's stock
//   - errs.ErrInsufficientFunds when the total exceeds the buyer's balance
func (c Checkout) PlaceOrder(req OrderRequest) (*order.Order, error) {
	if err := c.validate(req); err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(req.Cart))
	requests := make([]StockRequest, 0, len(req.Cart))
	for _, cl := range req.Cart {
		line, err := order.NewLine(cl.Item.ID(), cl.Item.Name(), cl.Item.Price(), cl.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
		requests = append(requests, StockRequest{Item: cl.Item, Quantity: cl.Quantity})
	}

	placedAt := req.PlacedAt
	if placedAt.IsZero() {
		placedAt = time.Now()
	}

	orderID := req.OrderID
	if orderID.Validate() != nil {
		orderID = kernel.NewUUID()
	}

	o, err := order.NewOrder(orderID, req.Buyer.ID(), req.Store.ID(), lines,
		c.feeFor(lines), req.DeliveryAddress, req.Dropoff, placedAt, placedAt.Add(c.eta))
	if err != nil {
		return nil, err
	}

	reservation, err := c.stock.Reserve(requests)
	if err != nil {
		return nil, err
	}
	if err := c.ledger.DebitBuyer(req.Buyer, o.Total()); err != nil {
		return nil, err
	}
	if err := reservation.Commit(); err != nil {
		return nil, err
	}

	return o, nil
}

func (c Checkout) feeFor(lines []order.Line) int64 {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.Amount()
	}
	if subtotal > 0 {
		return c.deliveryFee
	}
	return 0
}

func (c Checkout) validate(req OrderRequest) error {
	if err := req.Buyer.Validate(); err != nil {
		return err
	}
	if req.Buyer.Role() != user.RoleBuyer {
		return errs.NewValueIsInvalidErrorWithCause("buyer",
			fmt.Errorf("%s users cannot place orders", req.Buyer.Role()))
	}
	if err := req.Store.Validate(); err != nil {
		return err
	}
	if len(req.Cart) == 0 {
		return ErrCartIsEmpty
	}
	for _, cl := range req.Cart {
		if err := cl.Item.Validate(); err != nil {
			return err
		}
		if !cl.Item.StoreID().IsEqual(req.Store.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("cart",
				fmt.Errorf("item %s is not sold by store %s", cl.Item.ID(), req.Store.ID()))
		}
		if cl.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is less than 1 for item %s", cl.Quantity, cl.Item.ID()))
		}
	}
	return nil
}
