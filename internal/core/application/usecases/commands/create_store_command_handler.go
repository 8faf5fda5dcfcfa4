package commands

import (
	"context"

	"oja/internal/core/domain/model/store"
)

// CreateStoreCommandHandler stores the new shop and links it to its seller in one transaction.
type CreateStoreCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateStoreCommandHandler(uowFactory CatalogUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{uowFactory: uowFactory}
}

func (h CreateStoreCommandHandler) Handle(ctx context.Context, command CreateStoreCommand) error {
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

	owner, err := userRepo.Get(ctx, command.OwnerID())
	if err != nil {
		return err
	}

	s, err := store.NewStore(command.StoreID(), owner.ID(), command.Name(), command.Description(),
		command.Category(), command.Address(), command.Location())
	if err != nil {
		return err
	}

	if err := owner.AttachStore(s.ID()); err != nil {
		return err
	}

	if err := uow.StoreRepository().Add(ctx, s); err != nil {
		return err
	}
	if err := userRepo.Update(ctx, owner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
