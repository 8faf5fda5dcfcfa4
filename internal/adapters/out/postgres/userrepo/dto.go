package userrepo

import (
	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the users table row. Courier columns are NULL for everyone but couriers.
type UserDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email    string     `gorm:"uniqueIndex;not null"`
	FullName string     `gorm:"not null"`
	Phone    string     `gorm:"size:32"`
	Role     string     `gorm:"not null"`
	Balance  int64      `gorm:"not null"`
	StoreID  *uuid.UUID `gorm:"type:uuid"`
	Courier  CourierDTO `gorm:"embedded;embeddedPrefix:courier_"`
}

func (UserDTO) TableName() string {
	return "users"
}

type CourierDTO struct {
	Vehicle       *string
	LicensePlate  *string
	NIN           *string
	Address       *string
	Verified      bool
	RatingAverage float64
	RatingCount   int
}

func fromDomain(u *user.User) UserDTO {
	var storeID *uuid.UUID
	if id := u.StoreID(); id != nil {
		raw := id.Bytes()
		storeID = &raw
	}

	dto := UserDTO{
		ID:       u.ID().Bytes(),
		Email:    u.Email(),
		FullName: u.FullName(),
		Phone:    u.Phone(),
		Role:     u.Role().String(),
		Balance:  u.Balance(),
		StoreID:  storeID,
	}

	if profile, ok := u.CourierProfile(); ok {
		vehicle := string(profile.Vehicle())
		plate := profile.LicensePlate()
		nin := profile.NIN()
		address := profile.Address()
		dto.Courier = CourierDTO{
			Vehicle:       &vehicle,
			LicensePlate:  &plate,
			NIN:           &nin,
			Address:       &address,
			Verified:      profile.IsVerified(),
			RatingAverage: profile.Rating().Average(),
			RatingCount:   profile.Rating().Count(),
		}
	}

	return dto
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var storeID *kernel.UUID
	if dto.StoreID != nil {
		sID, storeErr := kernel.UUIDFromBytes((*dto.StoreID)[:])
		if storeErr != nil {
			return nil, storeErr
		}
		storeID = &sID
	}

	var courier *user.CourierProfile
	if dto.Courier.Vehicle != nil {
		profile, profileErr := courierToDomain(dto.Courier)
		if profileErr != nil {
			return nil, profileErr
		}
		courier = &profile
	}

	return user.RestoreUser(id, dto.Email, dto.FullName, dto.Phone, role, dto.Balance, storeID, courier)
}

func courierToDomain(dto CourierDTO) (user.CourierProfile, error) {
	rating, err := kernel.RestoreRating(dto.RatingAverage, dto.RatingCount)
	if err != nil {
		return user.CourierProfile{}, err
	}

	return user.RestoreCourierProfile(
		user.VehicleType(*dto.Vehicle),
		deref(dto.LicensePlate),
		deref(dto.NIN),
		deref(dto.Address),
		dto.Verified,
		rating,
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
