// Package services contains the domain services of the marketplace core.
//
//   - Ledger: buyer debits and the seller/courier payout of a delivered order
//   - StockLedger: all-or-nothing stock reservation plus low and out-of-stock checks
//   - Checkout: turns a single-store cart into a Processing order
//
// Services mutate the aggregates they are given and never persist anything. The
// application layer runs them inside a unit of work so that a failure rolls back every change.
package services
