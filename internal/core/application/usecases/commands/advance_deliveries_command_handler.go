package commands

import (
	"context"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/ports"
)

// AdvanceDeliveriesCommandHandler reconciles the tracker with the database and then
// advances every tracked delivery by one tick:
//   - orders out for delivery that the tracker does not know (for example after a
//     restart) start tracking at progress 0
//   - orders that were tracked before the query and are no longer out for delivery
//     are dropped
//
// The tracker is read before the query, so an order accepted while the tick runs is
// left alone. The out-for-delivery rows stay share-locked until the tracker is updated,
// so a delivery that commits during the tick is never re-tracked.
//
// The handler only reads. Its transaction is always rolled back.
type AdvanceDeliveriesCommandHandler struct {
	uowFactory UoWFactory
	tracker    ports.DeliveryTracker
}

func NewAdvanceDeliveriesCommandHandler(uowFactory UoWFactory, tracker ports.DeliveryTracker) AdvanceDeliveriesCommandHandler {
	return AdvanceDeliveriesCommandHandler{uowFactory: uowFactory, tracker: tracker}
}

func (h AdvanceDeliveriesCommandHandler) Handle(ctx context.Context, command AdvanceDeliveriesCommand) error {
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

	trackedBefore := h.tracker.Tracked()

	orders, err := uow.OrderRepository().GetAllOutForDelivery(ctx)
	if err != nil {
		return err
	}

	tracked := idSet(trackedBefore)
	active := make([]kernel.UUID, 0, len(orders))
	storeRepo := uow.StoreRepository()
	for _, o := range orders {
		active = append(active, o.ID())
		if _, ok := tracked[o.ID().String()]; ok {
			continue
		}
		shop, err := storeRepo.Find(ctx, o.StoreID())
		if err != nil {
			return err
		}
		h.tracker.Track(o.ID(), shop.Location(), o.Dropoff())
	}

	stillOut := idSet(active)
	for _, id := range trackedBefore {
		if _, ok := stillOut[id.String()]; !ok {
			h.tracker.Untrack(id)
		}
	}

	h.tracker.Advance()
	return nil
}

func idSet(ids []kernel.UUID) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id.String()] = struct{}{}
	}
	return out
}
