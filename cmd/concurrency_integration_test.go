package cmd_test

import (
	"context"
	"errors"
	"sync"

	"oja/internal/adapters/out/postgres"
	"oja/internal/core/application/usecases/commands"
	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
)

// concurrently releases every fn at the same moment and waits for all of them.
func concurrently(fns ...func() error) []error {
	results := make([]error, len(fns))
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = fn()
		}()
	}
	close(start)
	wg.Wait()

	return results
}

func (suite *MarketplaceE2ETestSuite) id(raw string) kernel.UUID {
	id, err := kernel.UUIDFromString(raw)
	suite.Require().NoError(err)
	return id
}

func (suite *MarketplaceE2ETestSuite) checkoutCommand(m marketplace, quantity int) commands.PlaceOrderCommand {
	cmd, err := commands.NewPlaceOrderCommand(suite.id(m.buyer),
		[]commands.CartEntry{{ItemID: suite.id(m.item), Quantity: quantity}},
		"7 Bode Thomas Street", kernel.MustGeoPoint(6.49, 3.36))
	suite.Require().NoError(err)
	return cmd
}

func (suite *MarketplaceE2ETestSuite) acceptCommand(courier string, orderID kernel.UUID) commands.AcceptDeliveryCommand {
	cmd, err := commands.NewAcceptDeliveryCommand(suite.id(courier), orderID)
	suite.Require().NoError(err)
	return cmd
}

func (suite *MarketplaceE2ETestSuite) deliverCommand(actor string, orderID kernel.UUID) commands.MarkDeliveredCommand {
	cmd, err := commands.NewMarkDeliveredCommand(suite.id(actor), orderID)
	suite.Require().NoError(err)
	return cmd
}

func (suite *MarketplaceE2ETestSuite) stock(item string) int {
	i, err := postgres.NewGormUnitOfWorkFactory(suite.database.DB).Create().ItemRepository().
		Get(context.Background(), suite.id(item))
	suite.Require().NoError(err)
	return i.Stock()
}

func (suite *MarketplaceE2ETestSuite) TestConcurrentDeliveriesPayOutOnce() {
	ctx := context.Background()
	m := suite.seed(10)

	checkout := suite.checkoutCommand(m, 2)
	suite.Require().NoError(suite.app.CreatePlaceOrderCommandHandler().Handle(ctx, checkout))
	suite.Require().NoError(suite.app.CreateAcceptDeliveryCommandHandler().Handle(ctx, suite.acceptCommand(m.courier, checkout.OrderID())))

	handler := suite.app.CreateMarkDeliveredCommandHandler()
	byCourier := suite.deliverCommand(m.courier, checkout.OrderID())
	bySeller := suite.deliverCommand(m.seller, checkout.OrderID())
	results := make([]commands.MarkDeliveredResult, 2)
	errList := concurrently(
		func() (err error) {
			results[0], err = handler.Handle(ctx, byCourier)
			return err
		},
		func() (err error) {
			results[1], err = handler.Handle(ctx, bySeller)
			return err
		},
	)

	suite.Require().NoError(errors.Join(errList...))
	suite.NotEqual(results[0].Changed, results[1].Changed, "exactly one call moves the order to Delivered")
	suite.Equal(int64(9500), suite.balance(m.seller))
	suite.Equal(int64(1500), suite.balance(m.courier))
}

func (suite *MarketplaceE2ETestSuite) TestConcurrentCheckoutsCannotOversell() {
	ctx := context.Background()
	m := suite.seed(3)

	handler := suite.app.CreatePlaceOrderCommandHandler()
	first, second := suite.checkoutCommand(m, 2), suite.checkoutCommand(m, 2)
	errList := concurrently(
		func() error { return handler.Handle(ctx, first) },
		func() error { return handler.Handle(ctx, second) },
	)

	var placed, outOfStock int
	for _, err := range errList {
		switch {
		case err == nil:
			placed++
		case errors.Is(err, errs.ErrOutOfStock):
			outOfStock++
		default:
			suite.Failf("unexpected checkout error", "%v", err)
		}
	}
	suite.Equal(1, placed)
	suite.Equal(1, outOfStock)
	suite.Equal(1, suite.stock(m.item))
	suite.Equal(int64(50000-11500), suite.balance(m.buyer), "only the placed order is charged")
}

// A seller closing one order of a courier while the same courier accepts another order
// of the same store touches the order, store and courier rows from both sides.
func (suite *MarketplaceE2ETestSuite) TestAcceptAndDeliverSharingCourierAndStore() {
	ctx := context.Background()
	m := suite.seed(10)

	placeHandler := suite.app.CreatePlaceOrderCommandHandler()
	acceptHandler := suite.app.CreateAcceptDeliveryCommandHandler()
	deliverHandler := suite.app.CreateMarkDeliveredCommandHandler()

	current := suite.checkoutCommand(m, 1)
	suite.Require().NoError(placeHandler.Handle(ctx, current))
	suite.Require().NoError(acceptHandler.Handle(ctx, suite.acceptCommand(m.courier, current.OrderID())))

	currentID := current.OrderID()
	for round := range 3 {
		next := suite.checkoutCommand(m, 1)
		suite.Require().NoError(placeHandler.Handle(ctx, next))

		deliver := suite.deliverCommand(m.seller, currentID)
		accept := suite.acceptCommand(m.courier, next.OrderID())
		errList := concurrently(
			func() error {
				_, err := deliverHandler.Handle(ctx, deliver)
				return err
			},
			func() error { return acceptHandler.Handle(ctx, accept) },
		)
		suite.Require().NoError(errors.Join(errList...), "round %d", round)
		currentID = next.OrderID()
	}

	suite.Equal(int64(3*1500), suite.balance(m.courier))
	suite.Equal(int64(3*4750), suite.balance(m.seller))
}

// A review and a checkout of the same item both lock the item and store rows.
func (suite *MarketplaceE2ETestSuite) TestReviewAndCheckoutSharingItem() {
	ctx := context.Background()
	m := suite.seed(10)

	delivered := suite.checkoutCommand(m, 1)
	suite.Require().NoError(suite.app.CreatePlaceOrderCommandHandler().Handle(ctx, delivered))
	suite.Require().NoError(suite.app.CreateAcceptDeliveryCommandHandler().Handle(ctx, suite.acceptCommand(m.courier, delivered.OrderID())))
	_, err := suite.app.CreateMarkDeliveredCommandHandler().Handle(ctx, suite.deliverCommand(m.courier, delivered.OrderID()))
	suite.Require().NoError(err)

	review, err := commands.NewLeaveReviewCommand(suite.id(m.buyer), delivered.OrderID(), 5,
		map[kernel.UUID]int{suite.id(m.item): 4}, 5, "")
	suite.Require().NoError(err)

	checkout := suite.checkoutCommand(m, 2)
	errList := concurrently(
		func() error { return suite.app.CreateLeaveReviewCommandHandler().Handle(ctx, review) },
		func() error { return suite.app.CreatePlaceOrderCommandHandler().Handle(ctx, checkout) },
	)

	suite.Require().NoError(errors.Join(errList...))
	suite.Equal(7, suite.stock(m.item))
}
