// Package user models marketplace accounts.
//
// A User is one of four roles. Buyers start with BuyerOpeningBalance in their wallet,
// everybody else starts at zero. Sellers own at most one store. Delivery users carry a
// CourierProfile with their vehicle and their rating.
//
// Wallet changes go through Debit and Credit, which never let the balance drop below zero:
//
//	buyer, _ := user.NewUser(kernel.NewUUID(), "ada@oja.ng", "Ada", "", user.RoleBuyer)
//	if err := buyer.Debit(11500); errors.Is(err, errs.ErrInsufficientFunds) {
//	    // balance unchanged
//	}
package user
