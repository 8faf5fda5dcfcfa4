package queries

import (
	"errors"
	"time"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var (
	ErrGetSellerNotificationsQueryIsNotConstructed = errors.New(
		"GetSellerNotificationsQuery must be created via NewGetSellerNotificationsQuery constructor",
	)
)

// GetSellerNotificationsQuery lists a seller's inbox, newest first.
type GetSellerNotificationsQuery struct {
	sellerID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetSellerNotificationsQuery(sellerID kernel.UUID) (GetSellerNotificationsQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetSellerNotificationsQuery{}, errs.NewValueIsRequiredErrorWithCause("seller id", err)
	}
	return GetSellerNotificationsQuery{sellerID: sellerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSellerNotificationsQuery) SellerID() kernel.UUID {
	return q.sellerID
}

func (q GetSellerNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerNotificationsQueryIsNotConstructed)
}

type GetSellerNotificationsQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Message   string
	Read      bool
	CreatedAt time.Time
}
