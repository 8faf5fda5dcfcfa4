package queries

import (
	"context"
	"time"

	"oja/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetSellerNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewGetSellerNotificationsQueryHandler(db *gorm.DB) GetSellerNotificationsQueryHandler {
	return GetSellerNotificationsQueryHandler{db: db}
}

func (h GetSellerNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetSellerNotificationsQuery,
) ([]GetSellerNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			message,
			read,
			created_at
		FROM notifications
		WHERE seller_id = ?
		ORDER BY created_at DESC, id
	`, query.SellerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]GetSellerNotificationsQueryResponse, 0)
	for rows.Next() {
		var (
			resp        GetSellerNotificationsQueryResponse
			id, orderID uuid.UUID
			createdAt   time.Time
		)
		if err := rows.Scan(&id, &orderID, &resp.Message, &resp.Read, &createdAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt
		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
