package storerepo

import (
	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/store"

	"github.com/google/uuid"
)

type StoreDTO struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OwnerID           uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null"`
	Name              string      `gorm:"not null"`
	Description       string      `gorm:"type:text"`
	Category          string      `gorm:"index"`
	Address           string      `gorm:"type:text"`
	Location          LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	LowStockThreshold int         `gorm:"not null"`
	Rating            RatingDTO   `gorm:"embedded;embeddedPrefix:rating_"`
}

func (StoreDTO) TableName() string {
	return "stores"
}

type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"not null"`
	Stock       int       `gorm:"not null"`
	Rating      RatingDTO `gorm:"embedded;embeddedPrefix:rating_"`
}

func (ItemDTO) TableName() string {
	return "items"
}

type LocationDTO struct {
	Lat float64
	Lng float64
}

type RatingDTO struct {
	Average float64
	Count   int
}

func storeFromDomain(s *store.Store) StoreDTO {
	return StoreDTO{
		ID:          s.ID().Bytes(),
		OwnerID:     s.OwnerID().Bytes(),
		Name:        s.Name(),
		Description: s.Description(),
		Category:    s.Category(),
		Address:     s.Address(),
		Location: LocationDTO{
			Lat: s.Location().Lat(),
			Lng: s.Location().Lng(),
		},
		LowStockThreshold: s.LowStockThreshold(),
		Rating:            ratingFromDomain(s.Rating()),
	}
}

func storeToDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	rating, err := kernel.RestoreRating(dto.Rating.Average, dto.Rating.Count)
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(id, ownerID, dto.Name, dto.Description, dto.Category, dto.Address,
		location, dto.LowStockThreshold, rating)
}

func itemFromDomain(i *store.Item) ItemDTO {
	return ItemDTO{
		ID:          i.ID().Bytes(),
		StoreID:     i.StoreID().Bytes(),
		Name:        i.Name(),
		Description: i.Description(),
		Price:       i.Price(),
		Stock:       i.Stock(),
		Rating:      ratingFromDomain(i.Rating()),
	}
}

func itemToDomain(dto ItemDTO) (*store.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	rating, err := kernel.RestoreRating(dto.Rating.Average, dto.Rating.Count)
	if err != nil {
		return nil, err
	}

	return store.RestoreItem(id, storeID, dto.Name, dto.Description, dto.Price, dto.Stock, rating)
}

func ratingFromDomain(r kernel.Rating) RatingDTO {
	return RatingDTO{Average: r.Average(), Count: r.Count()}
}
