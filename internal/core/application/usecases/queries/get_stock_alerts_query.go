package queries

import (
	"errors"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var (
	ErrGetStockAlertsQueryIsNotConstructed = errors.New(
		"GetStockAlertsQuery must be created via NewGetStockAlertsQuery constructor",
	)
)

// GetStockAlertsQuery lists the items of a store that need restocking.
type GetStockAlertsQuery struct {
	storeID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetStockAlertsQuery(storeID kernel.UUID) (GetStockAlertsQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetStockAlertsQuery{}, errs.NewValueIsRequiredErrorWithCause("store id", err)
	}
	return GetStockAlertsQuery{storeID: storeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStockAlertsQuery) StoreID() kernel.UUID {
	return q.storeID
}

func (q GetStockAlertsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockAlertsQueryIsNotConstructed)
}

// StockAlertItem is one item in an alert list.
type StockAlertItem struct {
	ID    kernel.UUID
	Name  string
	Stock int
}

// GetStockAlertsQueryResponse splits the store's items below its threshold.
// LowStock holds items with 0 < stock <= Threshold, OutOfStock those with stock == 0.
type GetStockAlertsQueryResponse struct {
	StoreID    kernel.UUID
	Threshold  int
	LowStock   []StockAlertItem
	OutOfStock []StockAlertItem
}
