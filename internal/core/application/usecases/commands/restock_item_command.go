package commands

import (
	"errors"
	"fmt"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var ErrRestockItemCommandIsNotConstructed = errors.New(
	"RestockItemCommand must be created via NewRestockItemCommand constructor",
)

// RestockItemCommand adds units to an item's stock on behalf of the store owner.
type RestockItemCommand struct {
	actorID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewRestockItemCommand(actorID, itemID kernel.UUID, quantity int) (RestockItemCommand, error) {
	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := itemID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("item", err))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := errors.Join(errList...); err != nil {
		return RestockItemCommand{}, err
	}

	return RestockItemCommand{
		actorID:  actorID,
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RestockItemCommand) Validate() error {
	return c.guard.Validate(ErrRestockItemCommandIsNotConstructed)
}

func (c RestockItemCommand) ActorID() kernel.UUID { return c.actorID }

func (c RestockItemCommand) ItemID() kernel.UUID { return c.itemID }

func (c RestockItemCommand) Quantity() int { return c.quantity }
