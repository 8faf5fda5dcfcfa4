package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// CartEntry is one line of the buyer's cart.
type CartEntry struct {
	ItemID   kernel.UUID
	Quantity int
}

// PlaceOrderCommand checks a buyer's cart out into a new order.
//
// Example:
//
//	dropoff, _ := kernel.NewGeoPoint(6.60, 3.40)
//	cmd, err := NewPlaceOrderCommand(buyerID, []CartEntry{{ItemID: itemID, Quantity: 2}},
//	    "12 Allen Avenue, Ikeja", dropoff)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errs.ErrOutOfStock, errs.ErrInsufficientFunds, ...
//	}
//	fmt.Println("placed", cmd.OrderID())
type PlaceOrderCommand struct {
	orderID         kernel.UUID
	buyerID         kernel.UUID
	cart            []CartEntry
	deliveryAddress string
	dropoff         kernel.GeoPoint
	placedAt        time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand generates the order id. The cart must not be empty and every
// quantity must be at least 1.
func NewPlaceOrderCommand(
	buyerID kernel.UUID,
	cart []CartEntry,
	deliveryAddress string,
	dropoff kernel.GeoPoint,
) (PlaceOrderCommand, error) {
	var errList []error
	if err := buyerID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("buyer", err))
	}
	if len(cart) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("cart"))
	}
	for _, entry := range cart {
		if err := entry.ItemID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause("item", err))
		}
		if entry.Quantity < 1 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is less than 1", entry.Quantity)))
		}
	}
	if strings.TrimSpace(deliveryAddress) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("delivery address"))
	}
	if err := dropoff.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		orderID:         kernel.NewUUID(),
		buyerID:         buyerID,
		cart:            append([]CartEntry(nil), cart...),
		deliveryAddress: deliveryAddress,
		dropoff:         dropoff,
		placedAt:        time.Now().UTC(),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID is the id the new order will get.
func (c PlaceOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c PlaceOrderCommand) BuyerID() kernel.UUID { return c.buyerID }

func (c PlaceOrderCommand) Cart() []CartEntry { return append([]CartEntry(nil), c.cart...) }

func (c PlaceOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

func (c PlaceOrderCommand) Dropoff() kernel.GeoPoint { return c.dropoff }

func (c PlaceOrderCommand) PlacedAt() time.Time { return c.placedAt }
