package reviewrepo

import (
	"time"

	"oja/internal/core/domain/model/review"

	"github.com/google/uuid"
)

type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null"`
	TargetID   uuid.UUID `gorm:"type:uuid;index;not null"`
	TargetType string    `gorm:"not null"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         r.ID().Bytes(),
		OrderID:    r.OrderID().Bytes(),
		ReviewerID: r.ReviewerID().Bytes(),
		TargetID:   r.TargetID().Bytes(),
		TargetType: string(r.TargetType()),
		Rating:     r.Rating(),
		Comment:    r.Comment(),
		CreatedAt:  r.CreatedAt(),
	}
}
