package commands

import (
	"context"
	"fmt"

	"oja/internal/core/ports"
	"oja/internal/pkg/errs"
)

// AcceptDeliveryCommandHandler moves an order to OutForDelivery and starts tracking the
// courier from the store to the drop-off.
//
// Errors, in the order they are checked:
//   - errs.ErrObjectNotFound for an unknown order or courier
//   - errs.ErrValueIsInvalid when the courier is not a delivery user
//   - errs.ErrInvalidTransition for a delivered order
//   - errs.ErrAlreadyAccepted when another courier took the order first
//
// The order row stays locked for the whole transaction, so of two couriers accepting the
// same order concurrently exactly one succeeds. The store is read without a lock.
type AcceptDeliveryCommandHandler struct {
	uowFactory UoWFactory
	tracker    ports.DeliveryTracker
	recorder   LifecycleRecorder
}

func NewAcceptDeliveryCommandHandler(
	uowFactory UoWFactory,
	tracker ports.DeliveryTracker,
	recorder LifecycleRecorder,
) AcceptDeliveryCommandHandler {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return AcceptDeliveryCommandHandler{uowFactory: uowFactory, tracker: tracker, recorder: recorder}
}

func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, command AcceptDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	courier, err := uow.UserRepository().Get(ctx, command.CourierID())
	if err != nil {
		return err
	}
	if !courier.IsCourier() {
		return errs.NewValueIsInvalidErrorWithCause("courier",
			fmt.Errorf("%s users cannot accept deliveries", courier.Role()))
	}

	if err := o.AcceptDelivery(courier.ID()); err != nil {
		return err
	}

	shop, err := uow.StoreRepository().Find(ctx, o.StoreID())
	if err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.tracker.Track(o.ID(), shop.Location(), o.Dropoff())
	h.recorder.DeliveryAccepted()
	return nil
}
