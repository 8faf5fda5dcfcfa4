package commands

import (
	"context"
)

type UpdateStockThresholdCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateStockThresholdCommandHandler(uowFactory CatalogUoWFactory) UpdateStockThresholdCommandHandler {
	return UpdateStockThresholdCommandHandler{uowFactory: uowFactory}
}

func (h UpdateStockThresholdCommandHandler) Handle(ctx context.Context, command UpdateStockThresholdCommand) error {
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

	storeRepo := uow.StoreRepository()

	s, err := storeRepo.Get(ctx, command.StoreID())
	if err != nil {
		return err
	}
	if err := ensureOwner(s, command.ActorID()); err != nil {
		return err
	}

	if err := s.SetLowStockThreshold(command.Threshold()); err != nil {
		return err
	}
	if err := storeRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
