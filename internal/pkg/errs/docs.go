// Package errs provides the typed errors shared by the marketplace core.
//
// Every error type follows the same shape:
//   - a sentinel variable (e.g. ErrOutOfStock) used with errors.Is
//   - a struct carrying the details of the failure
//   - constructor functions
//   - an Unwrap method returning the sentinel
//
// The sentinels double as the core error taxonomy: ErrObjectNotFound (NotFound),
// ErrValueIsRequired / ErrValueIsInvalid / ErrValueIsOutOfRange (ValidationError),
// ErrInsufficientFunds, ErrOutOfStock, ErrAlreadyAccepted and ErrInvalidTransition.
package errs
