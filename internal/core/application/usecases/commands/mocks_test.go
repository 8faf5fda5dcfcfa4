package commands_test

import (
	"context"

	"oja/internal/core/application/usecases/commands"
	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/notification"
	"oja/internal/core/domain/model/order"
	"oja/internal/core/domain/model/review"
	"oja/internal/core/domain/model/store"
	"oja/internal/core/domain/model/user"
	"oja/internal/core/domain/services"
	"oja/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Add(ctx context.Context, s *store.Store) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, s *store.Store) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStoreRepository) Get(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) Find(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, i *store.Item) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, i *store.Item) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id kernel.UUID) (*store.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Item), args.Error(1)
}

func (m *MockItemRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*store.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Item), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllOutForDelivery(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) AddBatch(ctx context.Context, reviews []*review.Review) error {
	return m.Called(ctx, reviews).Error(0)
}

// MockUoW serves every unit of work flavour used by the handlers.
type MockUoW struct {
	mock.Mock

	users         *MockUserRepository
	stores        *MockStoreRepository
	items         *MockItemRepository
	orders        *MockOrderRepository
	notifications *MockNotificationRepository
	reviews       *MockReviewRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		users:         new(MockUserRepository),
		stores:        new(MockStoreRepository),
		items:         new(MockItemRepository),
		orders:        new(MockOrderRepository),
		notifications: new(MockNotificationRepository),
		reviews:       new(MockReviewRepository),
	}
}

// expectTx sets up Begin and Rollback. commit tells whether Commit must be called.
func (m *MockUoW) expectTx(commit bool) {
	m.On("Begin", mock.Anything).Return(nil).Once()
	m.On("Rollback", mock.Anything).Return(nil).Once()
	if commit {
		m.On("Commit", mock.Anything).Return(nil).Once()
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) UserRepository() ports.UserRepository                 { return m.users }
func (m *MockUoW) StoreRepository() ports.StoreRepository               { return m.stores }
func (m *MockUoW) ItemRepository() ports.ItemRepository                 { return m.items }
func (m *MockUoW) OrderRepository() ports.OrderRepository               { return m.orders }
func (m *MockUoW) NotificationRepository() ports.NotificationRepository { return m.notifications }
func (m *MockUoW) ReviewRepository() ports.ReviewRepository             { return m.reviews }

func (m *MockUoW) assertExpectations(t mock.TestingT) {
	m.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.stores.AssertExpectations(t)
	m.items.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.notifications.AssertExpectations(t)
	m.reviews.AssertExpectations(t)
}

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

type catalogUoWFactory struct{ uow *MockUoW }

func (f catalogUoWFactory) Create() commands.CatalogUoW { return f.uow }

type userUoWFactory struct{ uow *MockUoW }

func (f userUoWFactory) Create() commands.UserUoW { return f.uow }

type MockTracker struct{ mock.Mock }

func (m *MockTracker) Track(orderID kernel.UUID, pickup, dropoff kernel.GeoPoint) {
	m.Called(orderID, pickup, dropoff)
}

func (m *MockTracker) Untrack(orderID kernel.UUID) {
	m.Called(orderID)
}

func (m *MockTracker) Position(orderID kernel.UUID) (kernel.GeoPoint, bool) {
	args := m.Called(orderID)
	return args.Get(0).(kernel.GeoPoint), args.Bool(1)
}

func (m *MockTracker) Tracked() []kernel.UUID {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]kernel.UUID)
}

func (m *MockTracker) Advance() {
	m.Called()
}

type MockRecorder struct{ mock.Mock }

func (m *MockRecorder) OrderPlaced(total int64)               { m.Called(total) }
func (m *MockRecorder) DeliveryAccepted()                     { m.Called() }
func (m *MockRecorder) OrderDelivered(payout services.Payout) { m.Called(payout) }
