// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The Unit of Work keeps the objects affected by one business transaction and
// coordinates writing out their changes in a single database transaction.
//
// Key Features:
//   - Transaction management across the user, store, item, order, notification
//     and review repositories
//   - Aggregates written through the repositories are reported to the
//     CommitObserver values once the transaction commits
//   - Row locks taken by repository Get calls live until Commit or Rollback
//   - Repository factory methods bound to the current transaction
//
// Usage Patterns:
//
// Checkout:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	items, err := uow.ItemRepository().GetMany(ctx, ids) // locked in id order
//	if err != nil {
//	    return err
//	}
//	// ... debit the buyer, decrement stock, build the order
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance owns at most one transaction
//   - Goroutines must not share a UnitOfWork
//   - Two checkouts touching the same items serialize on the item rows
//   - Two couriers accepting the same order serialize on the order row
//   - Handlers take row locks in one order: order, items (by id), store, users
package postgres

import (
	"context"

	"oja/internal/adapters/out/postgres/notificationrepo"
	"oja/internal/adapters/out/postgres/orderrepo"
	"oja/internal/adapters/out/postgres/reviewrepo"
	"oja/internal/adapters/out/postgres/storerepo"
	"oja/internal/adapters/out/postgres/userrepo"
	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// CommitObserver receives the aggregates a unit of work wrote, in write order, after
// its transaction committed. Rolled back writes are never reported.
type CommitObserver interface {
	AggregatesCommitted(aggregates []any)
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
// Every business operation gets a fresh unit of work.
//
// Example:
//
//	db, err := postgres.Open(ctx, dsn, postgres.DefaultPoolConfig)
//	if err != nil {
//	    return err
//	}
//	factory := postgres.NewGormUnitOfWorkFactory(db, writesMetrics)
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	observers []CommitObserver
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB, observers ...CommitObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, observers: observers}
}

// Create produces a new UnitOfWork with its own transaction state and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		observers:         f.observers,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the aggregates
// written through its repositories.
//
// Repositories obtained before Begin run in autocommit mode. Repositories obtained
// after Begin run inside the transaction, so callers fetch them after Begin.
//
// Example usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("begin: %w", err)
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().Get(ctx, orderID) // row stays locked
//	if err != nil {
//	    return err
//	}
//	if err := o.AcceptDelivery(courierID); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	observers         []CommitObserver
	trackedAggregates []trackedAggregate
}

// Begin starts a database transaction. Calling Begin twice does not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]
	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes every change of the transaction permanent and releases its row locks.
// After Commit the unit of work has no transaction, a deferred Rollback returns
// gorm.ErrInvalidTransaction and changes nothing.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.notifyCommitted()
	return nil
}

// Rollback discards every change of the transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StoreRepository() ports.StoreRepository {
	return storerepo.NewGormStoreRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ItemRepository() ports.ItemRepository {
	return storerepo.NewGormItemRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ReviewRepository() ports.ReviewRepository {
	return reviewrepo.NewGormReviewRepository(uow.conn(), uow)
}

// TrackAggregate records an aggregate written by one of the repositories.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) notifyCommitted() {
	if len(uow.trackedAggregates) == 0 {
		return
	}

	aggregates := make([]any, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		aggregates = append(aggregates, tracked.Aggregate)
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	for _, observer := range uow.observers {
		observer.AggregatesCommitted(aggregates)
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
