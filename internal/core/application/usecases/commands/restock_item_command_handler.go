package commands

import (
	"context"
)

type RestockItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRestockItemCommandHandler(uowFactory CatalogUoWFactory) RestockItemCommandHandler {
	return RestockItemCommandHandler{uowFactory: uowFactory}
}

func (h RestockItemCommandHandler) Handle(ctx context.Context, command RestockItemCommand) error {
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

	itemRepo := uow.ItemRepository()

	item, err := itemRepo.Get(ctx, command.ItemID())
	if err != nil {
		return err
	}

	s, err := uow.StoreRepository().Find(ctx, item.StoreID())
	if err != nil {
		return err
	}
	if err := ensureOwner(s, command.ActorID()); err != nil {
		return err
	}

	if err := item.Restock(command.Quantity()); err != nil {
		return err
	}
	if err := itemRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
