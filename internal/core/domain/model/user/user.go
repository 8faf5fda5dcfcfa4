package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned for a User that bypassed NewUser/RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	// ErrFullNameIsRequired is returned for an empty display name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full name")
)

// User is a marketplace account. The wallet balance is kept in minor currency units
// and never drops below zero.
//
// Invariants:
//   - RoleDelivery users always carry a CourierProfile, other roles never do
//   - only sellers own a store, and at most one
type User struct {
	id       kernel.UUID
	email    string
	fullName string
	phone    string
	role     Role
	balance  int64
	storeID  *kernel.UUID
	courier  *CourierProfile
	guard    guard.ConstructorGuard
}

// NewUser signs up a buyer, seller or admin. The wallet starts at the role's opening balance.
// Couriers are created with NewDeliveryPerson.
func NewUser(id kernel.UUID, email, fullName, phone string, role Role) (*User, error) {
	if role == RoleDelivery {
		return nil, errs.NewValueIsRequiredErrorWithCause("courier profile",
			errors.New("delivery users must be created via NewDeliveryPerson"))
	}
	return RestoreUser(id, email, fullName, phone, role, role.OpeningBalance(), nil, nil)
}

// NewDeliveryPerson signs up a courier with its vehicle details.
func NewDeliveryPerson(id kernel.UUID, email, fullName, phone string, profile CourierProfile) (*User, error) {
	return RestoreUser(id, email, fullName, phone, RoleDelivery, RoleDelivery.OpeningBalance(), nil, &profile)
}

// RestoreUser rebuilds a User from storage and re-checks every invariant.
func RestoreUser(
	id kernel.UUID,
	email, fullName, phone string,
	role Role,
	balance int64,
	storeID *kernel.UUID,
	courier *CourierProfile,
) (*User, error) {
	u := &User{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setFullName(fullName),
		u.setRole(role),
		u.setBalance(balance),
		u.setStoreID(role, storeID),
		u.setCourier(role, courier),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Role() Role {
	return u.role
}

// Balance returns the wallet balance in minor currency units.
func (u *User) Balance() int64 {
	return u.balance
}

// StoreID returns the seller's store, nil for other roles or a seller without a store yet.
func (u *User) StoreID() *kernel.UUID {
	return u.storeID
}

// CourierProfile returns the courier attributes, ok is false for non-delivery users.
func (u *User) CourierProfile() (CourierProfile, bool) {
	if u.courier == nil {
		return CourierProfile{}, false
	}
	return *u.courier, true
}

func (u *User) IsCourier() bool {
	return u.role == RoleDelivery
}

// Debit removes amount from the wallet. The balance is left untouched on failure.
func (u *User) Debit(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", amount))
	}
	if amount > u.balance {
		return errs.NewInsufficientFundsError(amount, u.balance)
	}
	u.balance -= amount
	return nil
}

// Credit adds amount to the wallet.
func (u *User) Credit(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", amount))
	}
	u.balance += amount
	return nil
}

// AttachStore links a seller to the store it just opened.
func (u *User) AttachStore(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	if u.role != RoleSeller {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%s cannot own a store", u.role))
	}
	if u.storeID != nil {
		return errs.NewValueIsInvalidErrorWithCause("store",
			fmt.Errorf("seller already owns store %s", u.storeID))
	}
	u.storeID = &storeID
	return nil
}

// RateAsCourier folds a buyer's review score into the courier's rating.
func (u *User) RateAsCourier(score int) error {
	if u.courier == nil {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s has no courier rating", u.role))
	}
	rating, err := u.courier.rating.Add(score)
	if err != nil {
		return err
	}
	u.courier.rating = rating
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = strings.ToLower(email)
	return nil
}

func (u *User) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return ErrFullNameIsRequired
	}
	u.fullName = fullName
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setBalance(balance int64) error {
	if balance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("balance", fmt.Errorf("%d is negative", balance))
	}
	u.balance = balance
	return nil
}

func (u *User) setStoreID(role Role, storeID *kernel.UUID) error {
	if storeID == nil {
		return nil
	}
	if role != RoleSeller {
		return errs.NewValueIsInvalidErrorWithCause("store", fmt.Errorf("%s cannot own a store", role))
	}
	if err := storeID.Validate(); err != nil {
		return err
	}
	id := *storeID
	u.storeID = &id
	return nil
}

func (u *User) setCourier(role Role, courier *CourierProfile) error {
	if role != RoleDelivery {
		if courier != nil {
			return errs.NewValueIsInvalidErrorWithCause("courier profile",
				fmt.Errorf("%s cannot have a courier profile", role))
		}
		return nil
	}
	if courier == nil {
		return errs.NewValueIsRequiredError("courier profile")
	}
	if err := courier.Validate(); err != nil {
		return err
	}
	profile := *courier
	u.courier = &profile
	return nil
}
