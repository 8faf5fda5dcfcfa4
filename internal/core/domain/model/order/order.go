package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLinesAreRequired is returned for an order without lines.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("lines")
)

// Order is a buyer's purchase from a single store. It is the aggregate root of the
// order lifecycle from checkout through delivery.
//
// Order follows these invariants:
//   - Must have a valid identifier, buyer, store and drop-off point
//   - Lines are a non-empty snapshot that never changes after checkout
//   - Total is always Subtotal + DeliveryFee
//   - Status only moves forward and a courier is assigned exactly when the status
//     is OutForDelivery or Delivered
//   - Can be reviewed once, after delivery
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID is the user who paid for the order
	buyerID kernel.UUID

	// storeID is the store every line comes from
	storeID kernel.UUID

	// lines is the checkout snapshot of the cart
	lines []Line

	// deliveryFee is paid by the buyer and goes to the courier
	deliveryFee int64

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the checkout time, eta the promised delivery time
	createdAt time.Time
	eta       time.Time

	// deliveryAddress and dropoff describe where the courier goes
	deliveryAddress string
	dropoff         kernel.GeoPoint

	// courierID is the assigned courier's ID (nil until accepted)
	courierID *kernel.UUID

	// reviewed is set once the buyer reviewed the delivered order
	reviewed bool

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Processing status with no courier assigned.
//
// Parameters:
//   - id: Unique identifier for the order
//   - buyerID, storeID: The paying buyer and the single store the lines come from
//   - lines: Checkout snapshot, at least one line
//   - deliveryFee: Fee in minor currency units, not negative
//   - deliveryAddress, dropoff: Where the order goes
//   - createdAt, eta: Checkout time and the promised delivery time (not before createdAt)
//
// Example:
//
//	line, _ := order.NewLine(item.ID(), item.Name(), item.Price(), 2)
//	now := time.Now()
//	o, err := order.NewOrder(kernel.NewUUID(), buyer.ID(), shop.ID(), []order.Line{line},
//	    1500, "12 Allen Avenue", kernel.MustGeoPoint(6.60, 3.40), now, now.Add(time.Hour))
func NewOrder(
	id, buyerID, storeID kernel.UUID,
	lines []Line,
	deliveryFee int64,
	deliveryAddress string,
	dropoff kernel.GeoPoint,
	createdAt, eta time.Time,
) (*Order, error) {
	return RestoreOrder(id, buyerID, storeID, lines, deliveryFee, Processing,
		deliveryAddress, dropoff, createdAt, eta, nil, false)
}

// RestoreOrder rebuilds an Order from storage, checking the same invariants as NewOrder
// plus the status and courier consistency.
func RestoreOrder(
	id, buyerID, storeID kernel.UUID,
	lines []Line,
	deliveryFee int64,
	status Status,
	deliveryAddress string,
	dropoff kernel.GeoPoint,
	createdAt, eta time.Time,
	courierID *kernel.UUID,
	reviewed bool,
) (*Order, error) {
	o := &Order{
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(buyerID, storeID),
		o.setLines(lines),
		o.setDeliveryFee(deliveryFee),
		o.setDropoff(dropoff),
		o.setSchedule(createdAt, eta),
		o.setStatus(status, courierID),
		o.setReviewed(status, reviewed),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// Lines returns a copy of the checkout snapshot.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) DeliveryFee() int64 {
	return o.deliveryFee
}

// Subtotal is the sum of unit price times quantity over all lines.
func (o *Order) Subtotal() int64 {
	var subtotal int64
	for _, l := range o.lines {
		subtotal += l.Amount()
	}
	return subtotal
}

// Total is what the buyer pays: Subtotal plus DeliveryFee.
func (o *Order) Total() int64 {
	return o.Subtotal() + o.deliveryFee
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) ETA() time.Time {
	return o.eta
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Dropoff is the delivery destination.
func (o *Order) Dropoff() kernel.GeoPoint {
	return o.dropoff
}

// Courier returns the assigned courier's ID, nil while the order is Processing.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// IsCourier reports whether userID is the courier assigned to the order.
func (o *Order) IsCourier(userID kernel.UUID) bool {
	return o.courierID != nil && o.courierID.IsEqual(userID)
}

func (o *Order) IsReviewed() bool {
	return o.reviewed
}

// AcceptDelivery assigns the courier and moves the order to OutForDelivery.
//
// This method enforces the following business rules:
//   - The courier ID must be valid
//   - A delivered order cannot be accepted (errs.ErrInvalidTransition)
//   - An order with a courier cannot be accepted again (errs.ErrAlreadyAccepted)
//
// The order is left unchanged when an error is returned.
func (o *Order) AcceptDelivery(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	if o.courierID != nil {
		return fmt.Errorf("%w: order %s has courier %s", errs.ErrAlreadyAccepted, o.id, o.courierID)
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// MarkDelivered moves the order to Delivered.
//
// changed is true only when this call performed the transition. Repeating the call on a
// delivered order succeeds with changed == false, so callers pay out only when changed is true.
// A Processing order cannot be delivered (errs.ErrInvalidTransition).
//
// Example:
//
//	changed, err := o.MarkDelivered()
//	if err != nil {
//	    return err
//	}
//	if changed {
//	    // pay the seller and the courier
//	}
func (o *Order) MarkDelivered() (bool, error) {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return false, err
	}

	changed := newStatus != o.status
	o.status = newStatus
	return changed, nil
}

// MarkReviewed records that the buyer reviewed the order. Only delivered orders can be
// reviewed, and only once.
func (o *Order) MarkReviewed() error {
	if o.status != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("%s orders cannot be reviewed", o.status))
	}
	if o.reviewed {
		return errs.NewValueIsInvalidErrorWithCause("order", errors.New("already reviewed"))
	}
	o.reviewed = true
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(buyerID, storeID kernel.UUID) error {
	var errList []error
	if err := buyerID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("buyer", err))
	}
	if err := storeID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("store", err))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	o.buyerID = buyerID
	o.storeID = storeID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setDeliveryFee(fee int64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee", fmt.Errorf("%d is negative", fee))
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setDropoff(dropoff kernel.GeoPoint) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(o.deliveryAddress) == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.dropoff = dropoff
	return nil
}

func (o *Order) setSchedule(createdAt, eta time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	if eta.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("eta", fmt.Errorf("%s is before %s", eta, createdAt))
	}
	o.createdAt = createdAt
	o.eta = eta
	return nil
}

func (o *Order) setStatus(status Status, courierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
		id := *courierID
		o.courierID = &id
	}
	o.status = status
	return nil
}

func (o *Order) setReviewed(status Status, reviewed bool) error {
	if reviewed && status != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("reviewed",
			fmt.Errorf("%s orders cannot be reviewed", status))
	}
	o.reviewed = reviewed
	return nil
}
