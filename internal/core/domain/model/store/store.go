package store

import (
	"errors"
	"fmt"
	"strings"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

// DefaultLowStockThreshold is used until the seller configures their own.
const DefaultLowStockThreshold = 5

var (
	// ErrStoreIsNotConstructed is returned for a Store that bypassed NewStore/RestoreStore.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")
	// ErrNameIsRequired is returned for an empty store or item name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Store is a seller's shop. Orders are picked up at its location.
type Store struct {
	id                kernel.UUID
	ownerID           kernel.UUID
	name              string
	description       string
	category          string
	address           string
	location          kernel.GeoPoint
	lowStockThreshold int
	rating            kernel.Rating
	guard             guard.ConstructorGuard
}

// NewStore opens a store with the default low-stock threshold and no reviews.
func NewStore(
	id, ownerID kernel.UUID,
	name, description, category, address string,
	location kernel.GeoPoint,
) (*Store, error) {
	return RestoreStore(id, ownerID, name, description, category, address, location,
		DefaultLowStockThreshold, kernel.Rating{})
}

// RestoreStore rebuilds a Store from storage.
func RestoreStore(
	id, ownerID kernel.UUID,
	name, description, category, address string,
	location kernel.GeoPoint,
	lowStockThreshold int,
	rating kernel.Rating,
) (*Store, error) {
	s := &Store{
		description: description,
		category:    category,
		address:     address,
		rating:      rating,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setName(name),
		s.setLocation(location),
		s.SetLowStockThreshold(lowStockThreshold),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

func (s *Store) ID() kernel.UUID { return s.id }

func (s *Store) OwnerID() kernel.UUID { return s.ownerID }

func (s *Store) Name() string { return s.name }

func (s *Store) Description() string { return s.description }

func (s *Store) Category() string { return s.category }

func (s *Store) Address() string { return s.address }

// Location is the pickup point couriers start from.
func (s *Store) Location() kernel.GeoPoint { return s.location }

func (s *Store) LowStockThreshold() int { return s.lowStockThreshold }

func (s *Store) Rating() kernel.Rating { return s.rating }

// IsOwnedBy reports whether userID is the seller running the store.
func (s *Store) IsOwnedBy(userID kernel.UUID) bool {
	return s.ownerID.IsEqual(userID)
}

// SetLowStockThreshold changes the level at or below which items are reported as low on stock.
func (s *Store) SetLowStockThreshold(threshold int) error {
	if threshold < 0 {
		return errs.NewValueIsInvalidErrorWithCause("low stock threshold", fmt.Errorf("%d is negative", threshold))
	}
	s.lowStockThreshold = threshold
	return nil
}

// Rate folds a review score into the store rating.
func (s *Store) Rate(score int) error {
	rating, err := s.rating.Add(score)
	if err != nil {
		return err
	}
	s.rating = rating
	return nil
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	s.ownerID = ownerID
	return nil
}

func (s *Store) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Store) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}
