package commands

import (
	"errors"
	"fmt"
	"strings"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand lists a new product in a store. Only the store owner may do it.
type AddItemCommand struct {
	itemID      kernel.UUID
	actorID     kernel.UUID
	storeID     kernel.UUID
	name        string
	description string
	price       int64
	stock       int

	guard guard.ConstructorGuard
}

func NewAddItemCommand(
	actorID, storeID kernel.UUID,
	name, description string,
	price int64,
	stock int,
) (AddItemCommand, error) {
	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := storeID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("store", err))
	}
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if price <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", price)))
	}
	if stock < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock)))
	}
	if err := errors.Join(errList...); err != nil {
		return AddItemCommand{}, err
	}

	return AddItemCommand{
		itemID:      kernel.NewUUID(),
		actorID:     actorID,
		storeID:     storeID,
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

func (c AddItemCommand) ItemID() kernel.UUID { return c.itemID }

func (c AddItemCommand) ActorID() kernel.UUID { return c.actorID }

func (c AddItemCommand) StoreID() kernel.UUID { return c.storeID }

func (c AddItemCommand) Name() string { return c.name }

func (c AddItemCommand) Description() string { return c.description }

func (c AddItemCommand) Price() int64 { return c.price }

func (c AddItemCommand) Stock() int { return c.stock }
