package commands

import (
	"errors"

	"oja/internal/pkg/guard"
)

var ErrAdvanceDeliveriesCommandIsNotConstructed = errors.New(
	"AdvanceDeliveriesCommand must be created via NewAdvanceDeliveriesCommand constructor",
)

// AdvanceDeliveriesCommand is one tick of the courier position simulation.
// It is parameterless and issued periodically by the delivery progress job.
type AdvanceDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

func NewAdvanceDeliveriesCommand() AdvanceDeliveriesCommand {
	return AdvanceDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c AdvanceDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveriesCommandIsNotConstructed)
}
