package services

import (
	"fmt"

	"oja/internal/core/domain/model/order"
	"oja/internal/core/domain/model/user"
	"oja/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultCommissionRate is the platform's cut of the subtotal on every delivered order.
var DefaultCommissionRate = decimal.RequireFromString("0.05")

// Payout is the money movement of one delivered order, in minor currency units.
// SellerAmount + Commission + CourierAmount always equals the order total.
type Payout struct {
	Subtotal      int64
	Commission    int64
	SellerAmount  int64
	CourierAmount int64
}

// Ledger moves money between buyer, seller and courier wallets.
// Commission is withheld from the seller and not credited to any wallet.
type Ledger struct {
	commissionRate decimal.Decimal
}

// NewLedger creates a ledger with a commission rate in [0, 1).
func NewLedger(commissionRate decimal.Decimal) (Ledger, error) {
	if commissionRate.IsNegative() || commissionRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Ledger{}, errs.NewValueIsOutOfRangeError("commission rate", commissionRate, 0, 1)
	}
	return Ledger{commissionRate: commissionRate}, nil
}

// NewDefaultLedger creates a ledger charging DefaultCommissionRate.
func NewDefaultLedger() Ledger {
	return Ledger{commissionRate: DefaultCommissionRate}
}

// CommissionRate returns the configured rate.
func (l Ledger) CommissionRate() decimal.Decimal {
	return l.commissionRate
}

// Commission is subtotal times the commission rate, rounded half away from zero.
func (l Ledger) Commission(subtotal int64) int64 {
	return decimal.NewFromInt(subtotal).Mul(l.commissionRate).Round(0).IntPart()
}

// DebitBuyer charges the buyer's wallet. It fails with errs.ErrInsufficientFunds when
// amount exceeds the balance, leaving the balance unchanged.
func (l Ledger) DebitBuyer(buyer *user.User, amount int64) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	return buyer.Debit(amount)
}

// PayoutOnDelivery credits the seller with subtotal minus commission and the courier
// with the delivery fee. The order must be Delivered, seller and courier must be the
// parties of the order. Callers run it only when MarkDelivered reported a change.
func (l Ledger) PayoutOnDelivery(o *order.Order, seller, courier *user.User) (Payout, error) {
	if err := o.Validate(); err != nil {
		return Payout{}, err
	}
	if err := seller.Validate(); err != nil {
		return Payout{}, err
	}
	if err := courier.Validate(); err != nil {
		return Payout{}, err
	}
	if o.Status() != order.Delivered {
		return Payout{}, errs.NewInvalidTransitionError(o.Status().String(), "pay out")
	}
	if seller.StoreID() == nil || !seller.StoreID().IsEqual(o.StoreID()) {
		return Payout{}, errs.NewValueIsInvalidErrorWithCause("seller",
			fmt.Errorf("user %s does not own store %s", seller.ID(), o.StoreID()))
	}
	if !o.IsCourier(courier.ID()) {
		return Payout{}, errs.NewValueIsInvalidErrorWithCause("courier",
			fmt.Errorf("user %s is not the courier of order %s", courier.ID(), o.ID()))
	}

	subtotal := o.Subtotal()
	commission := l.Commission(subtotal)
	payout := Payout{
		Subtotal:      subtotal,
		Commission:    commission,
		SellerAmount:  subtotal - commission,
		CourierAmount: o.DeliveryFee(),
	}

	if err := seller.Credit(payout.SellerAmount); err != nil {
		return Payout{}, err
	}
	if err := courier.Credit(payout.CourierAmount); err != nil {
		return Payout{}, err
	}
	return payout, nil
}
