package commands

import (
	"context"
	"fmt"

	"oja/internal/core/domain/services"
	"oja/internal/core/ports"
	"oja/internal/pkg/errs"
)

// MarkDeliveredResult reports what a MarkDelivered call did. Changed is false when the
// order was already delivered, in which case Payout is empty.
type MarkDeliveredResult struct {
	Changed bool
	Payout  services.Payout
}

// MarkDeliveredCommandHandler moves an order to Delivered and pays the seller and the
// courier in the same transaction.
//
// Payout happens at most once per order: the order row is locked while the transaction
// runs, and a call that finds the order already Delivered commits nothing.
//
// Example:
//
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // still Processing
//	case err != nil:
//	    return err
//	case res.Changed:
//	    log.Printf("seller +%d, courier +%d", res.Payout.SellerAmount, res.Payout.CourierAmount)
//	}
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
	ledger     services.Ledger
	tracker    ports.DeliveryTracker
	recorder   LifecycleRecorder
}

func NewMarkDeliveredCommandHandler(
	uowFactory UoWFactory,
	ledger services.Ledger,
	tracker ports.DeliveryTracker,
	recorder LifecycleRecorder,
) MarkDeliveredCommandHandler {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return MarkDeliveredCommandHandler{uowFactory: uowFactory, ledger: ledger, tracker: tracker, recorder: recorder}
}

func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, command MarkDeliveredCommand) (MarkDeliveredResult, error) {
	if err := command.Validate(); err != nil {
		return MarkDeliveredResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MarkDeliveredResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	userRepo := uow.UserRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return MarkDeliveredResult{}, err
	}

	shop, err := uow.StoreRepository().Find(ctx, o.StoreID())
	if err != nil {
		return MarkDeliveredResult{}, err
	}

	if !o.IsCourier(command.ActorID()) && !shop.IsOwnedBy(command.ActorID()) {
		return MarkDeliveredResult{}, errs.NewValueIsInvalidErrorWithCause("actor",
			fmt.Errorf("user %s is neither the courier nor the seller of order %s", command.ActorID(), o.ID()))
	}

	changed, err := o.MarkDelivered()
	if err != nil {
		return MarkDeliveredResult{}, err
	}
	if !changed {
		return MarkDeliveredResult{}, nil
	}

	seller, err := userRepo.Get(ctx, shop.OwnerID())
	if err != nil {
		return MarkDeliveredResult{}, err
	}
	courier, err := userRepo.Get(ctx, *o.Courier())
	if err != nil {
		return MarkDeliveredResult{}, err
	}

	payout, err := h.ledger.PayoutOnDelivery(o, seller, courier)
	if err != nil {
		return MarkDeliveredResult{}, err
	}

	if err := orderRepo.Update(ctx, o); err != nil {
		return MarkDeliveredResult{}, err
	}
	if err := userRepo.Update(ctx, seller); err != nil {
		return MarkDeliveredResult{}, err
	}
	if err := userRepo.Update(ctx, courier); err != nil {
		return MarkDeliveredResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return MarkDeliveredResult{}, err
	}

	h.tracker.Untrack(o.ID())
	h.recorder.OrderDelivered(payout)
	return MarkDeliveredResult{Changed: true, Payout: payout}, nil
}
