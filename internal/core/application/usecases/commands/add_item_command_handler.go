package commands

import (
	"context"
	"fmt"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/store"
	"oja/internal/pkg/errs"
)

type AddItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddItemCommandHandler(uowFactory CatalogUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{uowFactory: uowFactory}
}

func (h AddItemCommandHandler) Handle(ctx context.Context, command AddItemCommand) error {
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

	s, err := uow.StoreRepository().Get(ctx, command.StoreID())
	if err != nil {
		return err
	}
	if err := ensureOwner(s, command.ActorID()); err != nil {
		return err
	}

	item, err := store.NewItem(command.ItemID(), s.ID(), command.Name(), command.Description(),
		command.Price(), command.Stock())
	if err != nil {
		return err
	}

	if err := uow.ItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ensureOwner rejects actors that do not run the store.
func ensureOwner(s *store.Store, actorID kernel.UUID) error {
	if !s.IsOwnedBy(actorID) {
		return errs.NewValueIsInvalidErrorWithCause("actor",
			fmt.Errorf("user %s does not own store %s", actorID, s.ID()))
	}
	return nil
}
