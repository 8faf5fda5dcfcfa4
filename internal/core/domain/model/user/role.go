package user

import (
	"fmt"

	"oja/internal/pkg/errs"
)

// Role discriminates the user variants. Only RoleDelivery users carry a CourierProfile.
type Role int

const (
	// RoleUnknown is the invalid zero value.
	RoleUnknown Role = iota
	// RoleBuyer shops and places orders.
	RoleBuyer
	// RoleSeller owns a store and gets paid on delivery.
	RoleSeller
	// RoleDelivery accepts and delivers orders.
	RoleDelivery
	// RoleAdmin oversees the platform.
	RoleAdmin
)

// BuyerOpeningBalance is the wallet balance a buyer starts with, in minor currency units.
const BuyerOpeningBalance int64 = 50000

func (r Role) String() string {
	switch r {
	case RoleBuyer:
		return "BUYER"
	case RoleSeller:
		return "SELLER"
	case RoleDelivery:
		return "DELIVERY"
	case RoleAdmin:
		return "ADMIN"
	case RoleUnknown:
		return "UNKNOWN"
	}
	return "UNKNOWN"
}

// ParseRole maps the wire names (BUYER, SELLER, DELIVERY, ADMIN) to a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range []Role{RoleBuyer, RoleSeller, RoleDelivery, RoleAdmin} {
		if r.String() == s {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// Validate rejects RoleUnknown and values outside the enum.
func (r Role) Validate() error {
	switch r {
	case RoleBuyer, RoleSeller, RoleDelivery, RoleAdmin:
		return nil
	case RoleUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
}

// OpeningBalance is the wallet balance granted at signup.
func (r Role) OpeningBalance() int64 {
	switch r {
	case RoleBuyer:
		return BuyerOpeningBalance
	case RoleSeller, RoleDelivery, RoleAdmin, RoleUnknown:
		return 0
	}
	return 0
}
