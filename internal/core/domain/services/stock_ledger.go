package services

import (
	"errors"
	"slices"

	"oja/internal/core/domain/model/store"
	"oja/internal/pkg/errs"
)

// ErrReservationCommitted is returned when a reservation is committed twice.
var ErrReservationCommitted = errors.New("reservation is already committed")

// StockRequest asks for Quantity units of Item.
type StockRequest struct {
	Item     *store.Item
	Quantity int
}

// StockLedger checks and applies stock decrements across several items at once.
type StockLedger struct{}

func NewStockLedger() StockLedger {
	return StockLedger{}
}

// Reservation is a checked set of decrements that has not been applied yet.
type Reservation struct {
	items      []*store.Item
	quantities map[string]int
	committed  bool
}

// Reserve checks every request. The first item that cannot cover its quantity fails the
// whole reservation with errs.ErrOutOfStock and no stock changes. Requests for the same
// item are summed.
func (StockLedger) Reserve(requests []StockRequest) (*Reservation, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("stock requests")
	}

	r := &Reservation{quantities: make(map[string]int, len(requests))}
	for _, req := range requests {
		if err := req.Item.Validate(); err != nil {
			return nil, err
		}
		if req.Quantity < 1 {
			return nil, errs.NewValueIsOutOfRangeError("quantity", req.Quantity, 1, req.Item.Stock())
		}
		key := req.Item.ID().String()
		if _, seen := r.quantities[key]; !seen {
			r.items = append(r.items, req.Item)
		}
		r.quantities[key] += req.Quantity
	}

	if err := r.check(); err != nil {
		return nil, err
	}
	return r, nil
}

// Commit applies every decrement of the reservation.
func (r *Reservation) Commit() error {
	if r.committed {
		return ErrReservationCommitted
	}
	if err := r.check(); err != nil {
		return err
	}
	for _, item := range r.items {
		if err := item.Decrement(r.quantities[item.ID().String()]); err != nil {
			return err
		}
	}
	r.committed = true
	return nil
}

// Items returns the reserved items in request order.
func (r *Reservation) Items() []*store.Item {
	return slices.Clone(r.items)
}

func (r *Reservation) check() error {
	for _, item := range r.items {
		if err := item.EnsureAvailable(r.quantities[item.ID().String()]); err != nil {
			return err
		}
	}
	return nil
}

// ReserveAndDecrement reserves and commits in one step.
func (l StockLedger) ReserveAndDecrement(requests []StockRequest) error {
	r, err := l.Reserve(requests)
	if err != nil {
		return err
	}
	return r.Commit()
}

// IsLowStock reports 0 < stock <= threshold.
func (StockLedger) IsLowStock(item *store.Item, threshold int) bool {
	return item.IsLowStock(threshold)
}

// IsOutOfStock reports stock == 0.
func (StockLedger) IsOutOfStock(item *store.Item) bool {
	return item.IsOutOfStock()
}

// Alerts splits items into the low-stock and out-of-stock lists a seller is warned about.
func (l StockLedger) Alerts(items []*store.Item, threshold int) (low, out []*store.Item) {
	for _, item := range items {
		switch {
		case l.IsOutOfStock(item):
			out = append(out, item)
		case l.IsLowStock(item, threshold):
			low = append(low, item)
		}
	}
	return low, out
}
