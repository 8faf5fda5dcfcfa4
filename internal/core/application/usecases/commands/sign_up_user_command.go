package commands

import (
	"errors"
	"strings"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/user"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var ErrSignUpUserCommandIsNotConstructed = errors.New(
	"SignUpUserCommand must be created via NewSignUpUserCommand constructor",
)

// CourierDetails are the extra signup fields of a delivery person.
type CourierDetails struct {
	Vehicle      user.VehicleType
	LicensePlate string
	NIN          string
	Address      string
}

// SignUpUserCommand registers a new marketplace account.
//
// Example:
//
//	cmd, err := NewSignUpUserCommand("ada@oja.ng", "Ada Obi", "0801", user.RoleBuyer, nil)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Println("signed up", cmd.UserID())
type SignUpUserCommand struct {
	userID   kernel.UUID
	email    string
	fullName string
	phone    string
	role     user.Role
	courier  *CourierDetails

	guard guard.ConstructorGuard
}

// NewSignUpUserCommand generates the user id. Courier details are required for
// user.RoleDelivery and rejected for every other role.
func NewSignUpUserCommand(
	email, fullName, phone string,
	role user.Role,
	courier *CourierDetails,
) (SignUpUserCommand, error) {
	var errList []error
	if strings.TrimSpace(email) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if strings.TrimSpace(fullName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("full name"))
	}
	if err := role.Validate(); err != nil {
		errList = append(errList, err)
	}
	if role == user.RoleDelivery && courier == nil {
		errList = append(errList, errs.NewValueIsRequiredError("courier details"))
	}
	if role != user.RoleDelivery && courier != nil {
		errList = append(errList, errs.NewValueIsInvalidError("courier details"))
	}
	if err := errors.Join(errList...); err != nil {
		return SignUpUserCommand{}, err
	}

	return SignUpUserCommand{
		userID:   kernel.NewUUID(),
		email:    email,
		fullName: fullName,
		phone:    phone,
		role:     role,
		courier:  courier,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SignUpUserCommand) Validate() error {
	return c.guard.Validate(ErrSignUpUserCommandIsNotConstructed)
}

// UserID is the id the new user will get.
func (c SignUpUserCommand) UserID() kernel.UUID { return c.userID }

func (c SignUpUserCommand) Email() string { return c.email }

func (c SignUpUserCommand) FullName() string { return c.fullName }

func (c SignUpUserCommand) Phone() string { return c.phone }

func (c SignUpUserCommand) Role() user.Role { return c.role }

// Courier returns the courier details, nil unless the role is user.RoleDelivery.
func (c SignUpUserCommand) Courier() *CourierDetails { return c.courier }
