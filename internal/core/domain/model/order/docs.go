// Package order implements the Order aggregate root and its lifecycle.
//
// The package includes:
//   - Order: identity, the checkout snapshot, delivery details and the courier assignment
//   - Line: one immutable cart entry (item, name, unit price, quantity)
//   - Status: the state machine Processing -> OutForDelivery -> Delivered
//
// Key business rules:
//   - An order comes from a single store and has at least one line
//   - Total = Subtotal + DeliveryFee, where Subtotal sums unit price times quantity
//   - AcceptDelivery works only from Processing. A second courier gets errs.ErrAlreadyAccepted,
//     a delivered order errs.ErrInvalidTransition
//   - MarkDelivered works from OutForDelivery and is a no-op on a delivered order, reporting
//     whether it changed anything so that payout happens at most once
package order
