package commands_test

import (
	"testing"

	"oja/internal/core/application/usecases/commands"
	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/order"
	"oja/internal/core/domain/model/review"
	"oja/internal/core/domain/model/store"
	"oja/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLeaveReviewCommandHandler_Handle_Success(t *testing.T) {
	w := newWorld(t)
	o := w.order(t, order.Delivered)
	cmd, err := commands.NewLeaveReviewCommand(w.buyer.ID(), o.ID(), 4,
		map[kernel.UUID]int{w.item.ID(): 5}, 3, "good")
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(true)
	uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.stores.On("Get", mock.Anything, w.shop.ID()).Return(w.shop, nil).Once()
	uow.items.On("GetMany", mock.Anything, []kernel.UUID{w.item.ID()}).Return([]*store.Item{w.item}, nil).Once()
	uow.users.On("Get", mock.Anything, w.courier.ID()).Return(w.courier, nil).Once()
	uow.users.On("Update", mock.Anything, w.courier).Return(nil).Once()
	uow.stores.On("Update", mock.Anything, w.shop).Return(nil).Once()
	uow.items.On("Update", mock.Anything, w.item).Return(nil).Once()
	uow.reviews.On("AddBatch", mock.Anything, mock.MatchedBy(func(rs []*review.Review) bool {
		return len(rs) == 3
	})).Return(nil).Once()
	uow.orders.On("Update", mock.Anything, o).Return(nil).Once()

	err = commands.NewLeaveReviewCommandHandler(uowFactory{uow}).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.True(t, o.IsReviewed())
	assert.InDelta(t, 4.0, w.shop.Rating().Average(), 1e-9)
	assert.InDelta(t, 5.0, w.item.Rating().Average(), 1e-9)
	profile, _ := w.courier.CourierProfile()
	assert.InDelta(t, 3.0, profile.Rating().Average(), 1e-9)
	uow.assertExpectations(t)
}

func TestLeaveReviewCommandHandler_Handle_Rejections(t *testing.T) {
	t.Run("order not delivered", func(t *testing.T) {
		w := newWorld(t)
		o := w.order(t, order.OutForDelivery)
		cmd, _ := commands.NewLeaveReviewCommand(w.buyer.ID(), o.ID(), 4, map[kernel.UUID]int{w.item.ID(): 5}, 3, "")

		uow := newMockUoW()
		uow.expectTx(false)
		uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

		err := commands.NewLeaveReviewCommandHandler(uowFactory{uow}).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		uow.assertExpectations(t)
	})

	t.Run("someone else's order", func(t *testing.T) {
		w := newWorld(t)
		o := w.order(t, order.Delivered)
		cmd, _ := commands.NewLeaveReviewCommand(w.seller.ID(), o.ID(), 4, map[kernel.UUID]int{w.item.ID(): 5}, 3, "")

		uow := newMockUoW()
		uow.expectTx(false)
		uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

		err := commands.NewLeaveReviewCommandHandler(uowFactory{uow}).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.False(t, o.IsReviewed())
	})

	t.Run("item left unrated", func(t *testing.T) {
		w := newWorld(t)
		o := w.order(t, order.Delivered)
		cmd, _ := commands.NewLeaveReviewCommand(w.buyer.ID(), o.ID(), 4, nil, 3, "")

		uow := newMockUoW()
		uow.expectTx(false)
		uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
		uow.items.On("GetMany", mock.Anything, mock.Anything).Return([]*store.Item{w.item}, nil).Once()

		err := commands.NewLeaveReviewCommandHandler(uowFactory{uow}).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		uow.assertExpectations(t)
	})

	t.Run("scores out of range", func(t *testing.T) {
		_, err := commands.NewLeaveReviewCommand(kernel.NewUUID(), kernel.NewUUID(), 6, nil, 0, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
