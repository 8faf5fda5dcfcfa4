package notificationrepo

import (
	"time"

	"oja/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID  uuid.UUID `gorm:"type:uuid;index;not null"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null"`
	Message   string    `gorm:"type:text;not null"`
	Read      bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"index;not null"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID().Bytes(),
		SellerID:  n.SellerID().Bytes(),
		OrderID:   n.OrderID().Bytes(),
		Message:   n.Message(),
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}
