// Package review records the ratings buyers leave after a delivery.
package review

import (
	"errors"
	"fmt"
	"time"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

// TargetType is what a review rates.
type TargetType string

const (
	TargetStore    TargetType = "store"
	TargetItem     TargetType = "item"
	TargetDelivery TargetType = "delivery"
)

func (t TargetType) Validate() error {
	switch t {
	case TargetStore, TargetItem, TargetDelivery:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("target type", fmt.Errorf("%q is not supported", string(t)))
}

// ErrReviewIsNotConstructed is returned for a Review that bypassed its constructors.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is one score with an optional comment. TargetID is a store, an item or a courier.
type Review struct {
	id         kernel.UUID
	orderID    kernel.UUID
	reviewerID kernel.UUID
	targetID   kernel.UUID
	targetType TargetType
	rating     int
	comment    string
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

// NewReview validates the score against kernel.ScoreMin..kernel.ScoreMax.
func NewReview(
	id, orderID, reviewerID, targetID kernel.UUID,
	targetType TargetType,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	var errList []error
	for name, v := range map[string]kernel.UUID{"review": id, "order": orderID, "reviewer": reviewerID, "target": targetID} {
		if err := v.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause(name, err))
		}
	}
	if err := targetType.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := kernel.ValidateScore(rating); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Review{
		id:         id,
		orderID:    orderID,
		reviewerID: reviewerID,
		targetID:   targetID,
		targetType: targetType,
		rating:     rating,
		comment:    comment,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

func (r *Review) ID() kernel.UUID         { return r.id }
func (r *Review) OrderID() kernel.UUID    { return r.orderID }
func (r *Review) ReviewerID() kernel.UUID { return r.reviewerID }
func (r *Review) TargetID() kernel.UUID   { return r.targetID }
func (r *Review) TargetType() TargetType  { return r.targetType }
func (r *Review) Rating() int             { return r.rating }
func (r *Review) Comment() string         { return r.comment }
func (r *Review) CreatedAt() time.Time    { return r.createdAt }
