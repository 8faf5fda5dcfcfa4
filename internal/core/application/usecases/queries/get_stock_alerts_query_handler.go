package queries

import (
	"context"
	"database/sql"
	"errors"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/store"
	"oja/internal/core/domain/services"
	"oja/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStockAlertsQueryHandler reads the candidate rows with SQL and lets the stock ledger
// decide which list each item belongs to.
type GetStockAlertsQueryHandler struct {
	db    *gorm.DB
	stock services.StockLedger
}

func NewGetStockAlertsQueryHandler(db *gorm.DB, stock services.StockLedger) GetStockAlertsQueryHandler {
	return GetStockAlertsQueryHandler{db: db, stock: stock}
}

func (h GetStockAlertsQueryHandler) Handle(
	ctx context.Context,
	query GetStockAlertsQuery,
) (GetStockAlertsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockAlertsQueryResponse{}, err
	}

	var threshold int
	err := h.db.WithContext(ctx).
		Raw(`SELECT low_stock_threshold FROM stores WHERE id = ?`, query.StoreID().Bytes()).
		Row().
		Scan(&threshold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetStockAlertsQueryResponse{}, errs.NewObjectNotFoundError("store", query.StoreID().String())
		}
		return GetStockAlertsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			stock
		FROM items
		WHERE store_id = ? AND stock <= ?
		ORDER BY stock, name
	`, query.StoreID().Bytes(), threshold).Rows()
	if err != nil {
		return GetStockAlertsQueryResponse{}, err
	}
	defer rows.Close()

	var items []*store.Item
	for rows.Next() {
		var (
			id    uuid.UUID
			name  string
			price int64
			stock int
		)
		if err := rows.Scan(&id, &name, &price, &stock); err != nil {
			return GetStockAlertsQueryResponse{}, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetStockAlertsQueryResponse{}, idErr
		}

		item, itemErr := store.RestoreItem(itemID, query.StoreID(), name, "", price, stock, kernel.Rating{})
		if itemErr != nil {
			return GetStockAlertsQueryResponse{}, itemErr
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return GetStockAlertsQueryResponse{}, err
	}

	low, out := h.stock.Alerts(items, threshold)

	return GetStockAlertsQueryResponse{
		StoreID:    query.StoreID(),
		Threshold:  threshold,
		LowStock:   toAlertItems(low),
		OutOfStock: toAlertItems(out),
	}, nil
}

func toAlertItems(items []*store.Item) []StockAlertItem {
	result := make([]StockAlertItem, 0, len(items))
	for _, item := range items {
		result = append(result, StockAlertItem{ID: item.ID(), Name: item.Name(), Stock: item.Stock()})
	}
	return result
}
