package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/review"
	"oja/internal/pkg/errs"
)

// LeaveReviewCommandHandler records the buyer's reviews of a delivered order and folds the
// scores into the store, item and courier ratings. An order is reviewed at most once.
type LeaveReviewCommandHandler struct {
	uowFactory UoWFactory
}

func NewLeaveReviewCommandHandler(uowFactory UoWFactory) LeaveReviewCommandHandler {
	return LeaveReviewCommandHandler{uowFactory: uowFactory}
}

func (h LeaveReviewCommandHandler) Handle(ctx context.Context, command LeaveReviewCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	storeRepo := uow.StoreRepository()
	itemRepo := uow.ItemRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if !o.BuyerID().IsEqual(command.BuyerID()) {
		return errs.NewValueIsInvalidErrorWithCause("buyer",
			fmt.Errorf("user %s did not place order %s", command.BuyerID(), o.ID()))
	}
	if err := o.MarkReviewed(); err != nil {
		return err
	}

	now := time.Now().UTC()
	var reviews []*review.Review
	add := func(target kernel.UUID, targetType review.TargetType, score int) error {
		r, err := review.NewReview(kernel.NewUUID(), o.ID(), command.BuyerID(), target, targetType,
			score, command.Comment(), now)
		if err != nil {
			return err
		}
		reviews = append(reviews, r)
		return nil
	}

	ids := make([]kernel.UUID, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		ids = append(ids, l.ItemID())
	}
	items, err := itemRepo.GetMany(ctx, ids)
	if err != nil {
		return err
	}
	for _, item := range items {
		score, ok := command.ItemRating(item.ID())
		if !ok {
			return errs.NewValueIsRequiredErrorWithCause("item rating",
				fmt.Errorf("item %s is not rated", item.ID()))
		}
		if err := item.Rate(score); err != nil {
			return err
		}
		if err := add(item.ID(), review.TargetItem, score); err != nil {
			return err
		}
	}

	shop, err := storeRepo.Get(ctx, o.StoreID())
	if err != nil {
		return err
	}
	if err := shop.Rate(command.StoreRating()); err != nil {
		return err
	}
	if err := add(shop.ID(), review.TargetStore, command.StoreRating()); err != nil {
		return err
	}

	if courierID := o.Courier(); courierID != nil {
		if command.CourierRating() == 0 {
			return errs.NewValueIsRequiredErrorWithCause("courier rating", errors.New("the order had a courier"))
		}
		courier, err := uow.UserRepository().Get(ctx, *courierID)
		if err != nil {
			return err
		}
		if err := courier.RateAsCourier(command.CourierRating()); err != nil {
			return err
		}
		if err := add(courier.ID(), review.TargetDelivery, command.CourierRating()); err != nil {
			return err
		}
		if err := uow.UserRepository().Update(ctx, courier); err != nil {
			return err
		}
	}

	if err := storeRepo.Update(ctx, shop); err != nil {
		return err
	}
	for _, item := range items {
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}
	}
	if err := uow.ReviewRepository().AddBatch(ctx, reviews); err != nil {
		return err
	}
	if err := orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
