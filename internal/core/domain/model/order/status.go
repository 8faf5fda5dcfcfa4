package order

import (
	"fmt"

	"oja/internal/pkg/errs"
)

// Status represents the current state of an order in its lifecycle.
// Status only moves forward:
//
//	Processing -> OutForDelivery -> Delivered
type Status int

const (
	// Unknown is the zero value and never a valid state.
	Unknown Status = iota

	// Processing means the order is paid and waits for a courier.
	Processing

	// OutForDelivery means a courier accepted the order and is on the way.
	OutForDelivery

	// Delivered is final. The seller and the courier have been paid.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Processing:     "Processing",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// ParseStatus maps a status name back to its value.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and values outside the enum.
func (s Status) Validate() error {
	switch s {
	case Processing, OutForDelivery, Delivered:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveCourier checks the courier assignment against the status:
// Processing orders have no courier, later states always have one.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Processing {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}

	if !courier && (s == OutForDelivery || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}

	return nil
}

// Accept is the transition taken when a courier picks the order up.
// Only Processing orders can be accepted. Orders that are already out for delivery
// report errs.ErrAlreadyAccepted, delivered ones errs.ErrInvalidTransition.
func (s Status) Accept() (Status, error) {
	switch s {
	case Processing:
		return OutForDelivery, nil
	case OutForDelivery:
		return s, fmt.Errorf("%w: order is %s", errs.ErrAlreadyAccepted, s)
	case Delivered, Unknown:
	}
	return s, errs.NewInvalidTransitionError(s.String(), "accept delivery")
}

// Deliver is the transition taken when the order is handed over.
// Delivering a delivered order is allowed and leaves it Delivered.
func (s Status) Deliver() (Status, error) {
	switch s {
	case OutForDelivery, Delivered:
		return Delivered, nil
	case Processing, Unknown:
	}
	return s, errs.NewInvalidTransitionError(s.String(), "mark delivered")
}
