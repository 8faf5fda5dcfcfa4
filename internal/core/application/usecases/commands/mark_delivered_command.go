package commands

import (
	"errors"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand completes a delivery. The actor is either the assigned courier
// or the seller running the order's store.
type MarkDeliveredCommand struct {
	actorID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkDeliveredCommand(actorID, orderID kernel.UUID) (MarkDeliveredCommand, error) {
	var errList []error
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("order", err))
	}
	if err := errors.Join(errList...); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		actorID: actorID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

func (c MarkDeliveredCommand) ActorID() kernel.UUID { return c.actorID }

func (c MarkDeliveredCommand) OrderID() kernel.UUID { return c.orderID }
