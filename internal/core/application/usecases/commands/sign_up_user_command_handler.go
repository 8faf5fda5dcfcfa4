package commands

import (
	"context"
	"errors"
	"fmt"

	"oja/internal/core/domain/model/user"
	"oja/internal/pkg/errs"
)

// ErrEmailIsTaken is returned when signing up with an email that already has an account.
var ErrEmailIsTaken = errs.NewValueIsInvalidErrorWithCause("email", errors.New("already registered"))

// SignUpUserCommandHandler creates the account with the role's opening balance.
type SignUpUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewSignUpUserCommandHandler(uowFactory UserUoWFactory) SignUpUserCommandHandler {
	return SignUpUserCommandHandler{uowFactory: uowFactory}
}

func (h SignUpUserCommandHandler) Handle(ctx context.Context, command SignUpUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	u, err := newUser(command)
	if err != nil {
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

	_, err = userRepo.GetByEmail(ctx, u.Email())
	switch {
	case err == nil:
		return ErrEmailIsTaken
	case !errors.Is(err, errs.ErrObjectNotFound):
		return fmt.Errorf("look up email: %w", err)
	}

	if err := userRepo.Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func newUser(command SignUpUserCommand) (*user.User, error) {
	details := command.Courier()
	if details == nil {
		return user.NewUser(command.UserID(), command.Email(), command.FullName(), command.Phone(), command.Role())
	}

	profile, err := user.NewCourierProfile(details.Vehicle, details.LicensePlate, details.NIN, details.Address)
	if err != nil {
		return nil, err
	}
	return user.NewDeliveryPerson(command.UserID(), command.Email(), command.FullName(), command.Phone(), profile)
}
