package commands

import (
	"errors"
	"fmt"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var ErrUpdateStockThresholdCommandIsNotConstructed = errors.New(
	"UpdateStockThresholdCommand must be created via NewUpdateStockThresholdCommand constructor",
)

// UpdateStockThresholdCommand changes the store's low-stock threshold.
type UpdateStockThresholdCommand struct {
	actorID   kernel.UUID
	storeID   kernel.UUID
	threshold int

	guard guard.ConstructorGuard
}

func NewUpdateStockThresholdCommand(actorID, storeID kernel.UUID, threshold int) (UpdateStockThresholdCommand, error) {
	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := storeID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("store", err))
	}
	if threshold < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("threshold",
			fmt.Errorf("%d is negative", threshold)))
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateStockThresholdCommand{}, err
	}

	return UpdateStockThresholdCommand{
		actorID:   actorID,
		storeID:   storeID,
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateStockThresholdCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockThresholdCommandIsNotConstructed)
}

func (c UpdateStockThresholdCommand) ActorID() kernel.UUID { return c.actorID }

func (c UpdateStockThresholdCommand) StoreID() kernel.UUID { return c.storeID }

func (c UpdateStockThresholdCommand) Threshold() int { return c.threshold }
