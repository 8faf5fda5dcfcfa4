package notificationrepo

import (
	"context"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormNotificationRepository is append-only. Sellers read their inbox through a query.
// GormNotificationRepository is append-only. Sellers read their inbox through a query.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
