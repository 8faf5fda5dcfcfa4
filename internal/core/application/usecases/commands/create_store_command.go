package commands

import (
	"errors"
	"strings"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommand opens a store for a seller. A seller runs at most one store.
type CreateStoreCommand struct {
	storeID     kernel.UUID
	ownerID     kernel.UUID
	name        string
	description string
	category    string
	address     string
	location    kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewCreateStoreCommand(
	ownerID kernel.UUID,
	name, description, category, address string,
	location kernel.GeoPoint,
) (CreateStoreCommand, error) {
	var errList []error
	if err := ownerID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("owner", err))
	}
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if err := location.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return CreateStoreCommand{}, err
	}

	return CreateStoreCommand{
		storeID:     kernel.NewUUID(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		category:    category,
		address:     address,
		location:    location,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

func (c CreateStoreCommand) StoreID() kernel.UUID { return c.storeID }

func (c CreateStoreCommand) OwnerID() kernel.UUID { return c.ownerID }

func (c CreateStoreCommand) Name() string { return c.name }

func (c CreateStoreCommand) Description() string { return c.description }

func (c CreateStoreCommand) Category() string { return c.category }

func (c CreateStoreCommand) Address() string { return c.address }

func (c CreateStoreCommand) Location() kernel.GeoPoint { return c.location }
