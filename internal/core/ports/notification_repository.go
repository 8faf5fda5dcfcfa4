package ports

import (
	"context"

	"oja/internal/core/domain/model/notification"
	"oja/internal/core/domain/model/review"
)

type NotificationRepository interface {
	Add(ctx context.Context, aggregate *notification.Notification) error
}

type ReviewRepository interface {
	// AddBatch stores every review left for one order.
	AddBatch(ctx context.Context, reviews []*review.Review) error
}
