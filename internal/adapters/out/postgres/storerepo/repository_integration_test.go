package storerepo_test

import (
	"context"
	"testing"

	"oja/internal/adapters/out/postgres/pgtest"
	"oja/internal/adapters/out/postgres/storerepo"
	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/store"
	"oja/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// StoreRepositoryIntegrationTestSuite covers both the store and the item repository.
type StoreRepositoryIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	stores   *storerepo.GormStoreRepository
	items    *storerepo.GormItemRepository
	tracker  *MockAggregateTracker
}

func (suite *StoreRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *StoreRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.stores = storerepo.NewGormStoreRepository(suite.database.DB, suite.tracker)
	suite.items = storerepo.NewGormItemRepository(suite.database.DB, suite.tracker)
}

func (suite *StoreRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *StoreRepositoryIntegrationTestSuite) TestStore_AddGetUpdate() {
	ctx := context.Background()
	shop := suite.newStore()
	suite.Require().NoError(suite.stores.Add(ctx, shop))

	retrieved, err := suite.stores.Get(ctx, shop.ID())
	suite.Require().NoError(err)
	suite.True(shop.OwnerID().IsEqual(retrieved.OwnerID()))
	suite.Equal("Mama Put Provisions", retrieved.Name())
	suite.Equal("Groceries", retrieved.Category())
	suite.Equal("Balogun Market, Lagos Island", retrieved.Address())
	suite.True(shop.Location().IsEqual(retrieved.Location()))
	suite.Equal(store.DefaultLowStockThreshold, retrieved.LowStockThreshold())
	suite.Equal(0, retrieved.Rating().Count())

	suite.Require().NoError(retrieved.SetLowStockThreshold(0))
	suite.Require().NoError(retrieved.Rate(5))
	suite.Require().NoError(retrieved.Rate(4))
	suite.Require().NoError(suite.stores.Update(ctx, retrieved))

	updated, err := suite.stores.Get(ctx, shop.ID())
	suite.Require().NoError(err)
	suite.Equal(0, updated.LowStockThreshold())
	suite.Equal(2, updated.Rating().Count())
	suite.InDelta(4.5, updated.Rating().Average(), 1e-9)
}

func (suite *StoreRepositoryIntegrationTestSuite) TestStore_OneStorePerOwner() {
	ctx := context.Background()
	first := suite.newStore()
	suite.Require().NoError(suite.stores.Add(ctx, first))

	second, err := store.NewStore(kernel.NewUUID(), first.OwnerID(), "Second", "", "", "", kernel.MustGeoPoint(6.5, 3.3))
	suite.Require().NoError(err)

	suite.Require().Error(suite.stores.Add(ctx, second))
}

func (suite *StoreRepositoryIntegrationTestSuite) TestStore_GetUnknown_ReturnsNotFound() {
	_, err := suite.stores.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StoreRepositoryIntegrationTestSuite) TestItem_AddGetUpdate() {
	ctx := context.Background()
	shop := suite.newStore()
	suite.Require().NoError(suite.stores.Add(ctx, shop))

	item := suite.newItem(shop.ID(), "Garri (5kg)", 3500, 10)
	suite.Require().NoError(suite.items.Add(ctx, item))

	suite.Require().NoError(item.Decrement(10))
	suite.Require().NoError(suite.items.Update(ctx, item))

	retrieved, err := suite.items.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("Garri (5kg)", retrieved.Name())
	suite.Equal(int64(3500), retrieved.Price())
	suite.Equal(0, retrieved.Stock())
	suite.True(retrieved.IsOutOfStock())
	suite.True(shop.ID().IsEqual(retrieved.StoreID()))
}

func (suite *StoreRepositoryIntegrationTestSuite) TestItem_UpdateUnknown_ReturnsNotFound() {
	item := suite.newItem(kernel.NewUUID(), "Ghost", 100, 1)

	err := suite.items.Update(context.Background(), item)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StoreRepositoryIntegrationTestSuite) TestItem_GetMany() {
	ctx := context.Background()
	shop := suite.newStore()
	suite.Require().NoError(suite.stores.Add(ctx, shop))

	rice := suite.newItem(shop.ID(), "Rice", 4000, 3)
	beans := suite.newItem(shop.ID(), "Beans", 2000, 4)
	oil := suite.newItem(shop.ID(), "Palm oil", 1500, 5)
	for _, item := range []*store.Item{rice, beans, oil} {
		suite.Require().NoError(suite.items.Add(ctx, item))
	}

	suite.Run("returns every requested item once, ordered by id", func() {
		items, err := suite.items.GetMany(ctx, []kernel.UUID{oil.ID(), rice.ID(), oil.ID()})
		suite.Require().NoError(err)
		suite.Require().Len(items, 2)
		suite.Less(items[0].ID().String(), items[1].ID().String())
	})

	suite.Run("unknown id is not found", func() {
		missing := kernel.NewUUID()
		_, err := suite.items.GetMany(ctx, []kernel.UUID{rice.ID(), missing})

		var notFound *errs.ObjectNotFoundError
		suite.Require().ErrorAs(err, &notFound)
		suite.Equal(missing.String(), notFound.ID)
	})

	suite.Run("empty input is rejected", func() {
		_, err := suite.items.GetMany(ctx, nil)
		suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
	})
}

func (suite *StoreRepositoryIntegrationTestSuite) TestItem_GetManyLocksRowsUntilCommit() {
	ctx := context.Background()
	shop := suite.newStore()
	suite.Require().NoError(suite.stores.Add(ctx, shop))
	item := suite.newItem(shop.ID(), "Yam tuber", 1200, 2)
	suite.Require().NoError(suite.items.Add(ctx, item))

	tx := suite.database.DB.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	_, err := storerepo.NewGormItemRepository(tx, suite.tracker).GetMany(ctx, []kernel.UUID{item.ID()})
	suite.Require().NoError(err)

	err = suite.database.DB.Exec("SELECT id FROM items WHERE id = ? FOR UPDATE NOWAIT", item.ID().Bytes()).Error
	suite.Require().Error(err, "row must stay locked while the checkout transaction is open")
}

func (suite *StoreRepositoryIntegrationTestSuite) newStore() *store.Store {
	shop, err := store.NewStore(kernel.NewUUID(), kernel.NewUUID(), "Mama Put Provisions", "Fresh foodstuff",
		"Groceries", "Balogun Market, Lagos Island", kernel.MustGeoPoint(6.4550, 3.3841))
	suite.Require().NoError(err)
	return shop
}

func (suite *StoreRepositoryIntegrationTestSuite) newItem(storeID kernel.UUID, name string, price int64, stock int) *store.Item {
	item, err := store.NewItem(kernel.NewUUID(), storeID, name, "", price, stock)
	suite.Require().NoError(err)
	return item
}

func TestStoreRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StoreRepositoryIntegrationTestSuite))
}
