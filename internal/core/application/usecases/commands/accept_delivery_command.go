package commands

import (
	"errors"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand assigns a courier to a Processing order.
type AcceptDeliveryCommand struct {
	courierID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptDeliveryCommand(courierID, orderID kernel.UUID) (AcceptDeliveryCommand, error) {
	var errList []error
	if err := courierID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("courier", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("order", err))
	}
	if err := errors.Join(errList...); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return AcceptDeliveryCommand{
		courierID: courierID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

func (c AcceptDeliveryCommand) CourierID() kernel.UUID { return c.courierID }

func (c AcceptDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
