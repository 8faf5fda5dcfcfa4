package commands

import (
	"errors"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

var ErrLeaveReviewCommandIsNotConstructed = errors.New(
	"LeaveReviewCommand must be created via NewLeaveReviewCommand constructor",
)

// LeaveReviewCommand carries a buyer's ratings for a delivered order: one for the store,
// one per ordered item and one for the courier.
type LeaveReviewCommand struct {
	buyerID       kernel.UUID
	orderID       kernel.UUID
	storeRating   int
	itemRatings   map[string]int
	courierRating int
	comment       string

	guard guard.ConstructorGuard
}

// NewLeaveReviewCommand checks every score against kernel.ScoreMin..kernel.ScoreMax.
// A courierRating of 0 means "not rated", which is only accepted for orders without courier.
func NewLeaveReviewCommand(
	buyerID, orderID kernel.UUID,
	storeRating int,
	itemRatings map[kernel.UUID]int,
	courierRating int,
	comment string,
) (LeaveReviewCommand, error) {
	var errList []error
	if err := buyerID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("buyer", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("order", err))
	}
	if err := kernel.ValidateScore(storeRating); err != nil {
		errList = append(errList, err)
	}
	ratings := make(map[string]int, len(itemRatings))
	for id, score := range itemRatings {
		if err := kernel.ValidateScore(score); err != nil {
			errList = append(errList, err)
		}
		ratings[id.String()] = score
	}
	if courierRating != 0 {
		if err := kernel.ValidateScore(courierRating); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return LeaveReviewCommand{}, err
	}

	return LeaveReviewCommand{
		buyerID:       buyerID,
		orderID:       orderID,
		storeRating:   storeRating,
		itemRatings:   ratings,
		courierRating: courierRating,
		comment:       comment,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c LeaveReviewCommand) Validate() error {
	return c.guard.Validate(ErrLeaveReviewCommandIsNotConstructed)
}

func (c LeaveReviewCommand) BuyerID() kernel.UUID { return c.buyerID }

func (c LeaveReviewCommand) OrderID() kernel.UUID { return c.orderID }

func (c LeaveReviewCommand) StoreRating() int { return c.storeRating }

// ItemRating returns the score given to an item, ok is false when it was not rated.
func (c LeaveReviewCommand) ItemRating(itemID kernel.UUID) (int, bool) {
	score, ok := c.itemRatings[itemID.String()]
	return score, ok
}

// CourierRating is 0 when the courier was not rated.
func (c LeaveReviewCommand) CourierRating() int { return c.courierRating }

func (c LeaveReviewCommand) Comment() string { return c.comment }
