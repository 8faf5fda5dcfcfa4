package commands

import (
	"context"
	"errors"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/notification"
	"oja/internal/core/domain/model/store"
	"oja/internal/core/domain/services"
	"oja/internal/pkg/errs"
)

// PlaceOrderCommandHandler runs checkout in a single transaction: the order, the buyer
// debit, the stock decrements and the seller notification are committed together or not at all.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	checkout   services.Checkout
	recorder   LifecycleRecorder
}

func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	checkout services.Checkout,
	recorder LifecycleRecorder,
) PlaceOrderCommandHandler {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return PlaceOrderCommandHandler{uowFactory: uowFactory, checkout: checkout, recorder: recorder}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
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

	userRepo := uow.UserRepository()
	itemRepo := uow.ItemRepository()

	cart := command.Cart()
	ids := make([]kernel.UUID, 0, len(cart))
	for _, entry := range cart {
		ids = append(ids, entry.ItemID)
	}
	items, err := itemRepo.GetMany(ctx, ids)
	if err != nil {
		return err
	}

	lines, err := cartLines(cart, items)
	if err != nil {
		return err
	}

	shop, err := uow.StoreRepository().Find(ctx, lines[0].Item.StoreID())
	if err != nil {
		return err
	}

	buyer, err := userRepo.Get(ctx, command.BuyerID())
	if err != nil {
		return err
	}

	o, err := h.checkout.PlaceOrder(services.OrderRequest{
		OrderID:         command.OrderID(),
		Buyer:           buyer,
		Store:           shop,
		Cart:            lines,
		DeliveryAddress: command.DeliveryAddress(),
		Dropoff:         command.Dropoff(),
		PlacedAt:        command.PlacedAt(),
	})
	if err != nil {
		return err
	}

	note, err := notification.NewOrderPlaced(shop.OwnerID(), o.ID(), len(o.Lines()), o.Total(), o.CreatedAt())
	if err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}
	if err := userRepo.Update(ctx, buyer); err != nil {
		return err
	}
	for _, item := range items {
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}
	}
	if err := uow.NotificationRepository().Add(ctx, note); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.recorder.OrderPlaced(o.Total())
	return nil
}

// cartLines pairs every cart entry with its loaded item, keeping the cart order.
func cartLines(cart []CartEntry, items []*store.Item) ([]services.CartLine, error) {
	byID := make(map[string]*store.Item, len(items))
	for _, item := range items {
		byID[item.ID().String()] = item
	}

	lines := make([]services.CartLine, 0, len(cart))
	for _, entry := range cart {
		item, ok := byID[entry.ItemID.String()]
		if !ok {
			return nil, errs.NewObjectNotFoundErrorWithCause("item", entry.ItemID,
				errors.New("cart references an unknown item"))
		}
		lines = append(lines, services.CartLine{Item: item, Quantity: entry.Quantity})
	}
	return lines, nil
}
