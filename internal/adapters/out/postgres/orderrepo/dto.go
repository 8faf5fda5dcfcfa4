package orderrepo

import (
	"time"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	BuyerID         uuid.UUID   `gorm:"type:uuid;index;not null"`
	StoreID         uuid.UUID   `gorm:"type:uuid;index;not null"`
	CourierID       *uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryFee     int64       `gorm:"not null"`
	Status          int         `gorm:"index;not null"`
	DeliveryAddress string      `gorm:"type:text"`
	Dropoff         LocationDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	CreatedAt       time.Time   `gorm:"not null"`
	ETA             time.Time   `gorm:"not null"`
	Reviewed        bool        `gorm:"not null"`
	Lines           []LineDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is an order_lines row. Position keeps the checkout order of the cart.
type LineDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	ItemID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

type LocationDTO struct {
	Lat float64
	Lng float64
}

func fromDomain(o *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	lines := make([]LineDTO, 0, len(o.Lines()))
	for i, line := range o.Lines() {
		lines = append(lines, LineDTO{
			OrderID:   o.ID().Bytes(),
			Position:  i,
			ItemID:    line.ItemID().Bytes(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		BuyerID:         o.BuyerID().Bytes(),
		StoreID:         o.StoreID().Bytes(),
		CourierID:       courierID,
		DeliveryFee:     o.DeliveryFee(),
		Status:          int(o.Status()),
		DeliveryAddress: o.DeliveryAddress(),
		Dropoff: LocationDTO{
			Lat: o.Dropoff().Lat(),
			Lng: o.Dropoff().Lng(),
		},
		CreatedAt: o.CreatedAt(),
		ETA:       o.ETA(),
		Reviewed:  o.IsReviewed(),
		Lines:     lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	dropoff, err := kernel.NewGeoPoint(dto.Dropoff.Lat, dto.Dropoff.Lng)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		itemID, itemErr := kernel.UUIDFromBytes(l.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		line, lineErr := order.NewLine(itemID, l.Name, l.UnitPrice, l.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, buyerID, storeID, lines, dto.DeliveryFee, order.Status(dto.Status),
		dto.DeliveryAddress, dropoff, dto.CreatedAt, dto.ETA, courierID, dto.Reviewed)
}
