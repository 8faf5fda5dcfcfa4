package reviewrepo

import (
	"context"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/review"
	"oja/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddBatch inserts every review of an order with a single INSERT.
func (r *GormReviewRepository) AddBatch(ctx context.Context, reviews []*review.Review) error {
	if len(reviews) == 0 {
		return errs.NewValueIsRequiredError("reviews")
	}

	dtos := make([]ReviewDTO, 0, len(reviews))
	for _, rv := range reviews {
		if err := rv.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(rv))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, rv := range reviews {
		r.tracker.TrackAggregate(rv.ID(), rv)
	}
	return nil
}
