package cmd

import (
	"context"
	"log/slog"

	"oja/api"
	httpin "oja/internal/adapters/in/http"
	"oja/internal/adapters/out/postgres"
	"oja/internal/core/application/usecases/commands"
	"oja/internal/core/application/usecases/queries"
	"oja/internal/core/domain/services"
	"oja/internal/jobs"
	"oja/internal/metrics"
	"oja/internal/simulation"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot wires configuration, the database and the in-memory simulator into
// the use case handlers, the HTTP router and the background jobs.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	ledger   services.Ledger
	checkout services.Checkout
	tracker  *simulation.PositionSimulator

	registry    *metrics.Registry
	lifecycle   *metrics.Lifecycle
	httpMetrics *metrics.HTTP
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	rate, err := configs.Marketplace.Commission()
	if err != nil {
		return nil, err
	}
	ledger, err := services.NewLedger(rate)
	if err != nil {
		return nil, err
	}
	checkout, err := services.NewCheckout(ledger, services.NewStockLedger(),
		configs.Marketplace.DeliveryFee, configs.Marketplace.ETA)
	if err != nil {
		return nil, err
	}
	tracker, err := simulation.NewPositionSimulator(configs.Simulation.Step)
	if err != nil {
		return nil, err
	}

	registry := metrics.NewRegistry()
	lifecycle, err := metrics.NewLifecycle(registry)
	if err != nil {
		return nil, err
	}
	httpMetrics, err := metrics.NewHTTP(registry)
	if err != nil {
		return nil, err
	}
	if err := metrics.RegisterActiveDeliveries(registry, tracker); err != nil {
		return nil, err
	}
	writes, err := metrics.NewWrites(registry)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		configs:     configs,
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB, writes),
		logger:      logger,
		ledger:      ledger,
		checkout:    checkout,
		tracker:     tracker,
		registry:    registry,
		lifecycle:   lifecycle,
		httpMetrics: httpMetrics,
	}, nil
}

// Tracker exposes the delivery position simulator.
func (c *CompositionRoot) Tracker() *simulation.PositionSimulator {
	return c.tracker
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSignUpUserCommandHandler() commands.SignUpUserCommandHandler {
	return commands.NewSignUpUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	return commands.NewCreateStoreCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRestockItemCommandHandler() commands.RestockItemCommandHandler {
	return commands.NewRestockItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStockThresholdCommandHandler() commands.UpdateStockThresholdCommandHandler {
	return commands.NewUpdateStockThresholdCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.fullUoWFactory(), c.checkout, c.lifecycle)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.fullUoWFactory(), c.tracker, c.lifecycle)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.fullUoWFactory(), c.ledger, c.tracker, c.lifecycle)
}

func (c *CompositionRoot) CreateLeaveReviewCommandHandler() commands.LeaveReviewCommandHandler {
	return commands.NewLeaveReviewCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceDeliveriesCommandHandler() commands.AdvanceDeliveriesCommandHandler {
	return commands.NewAdvanceDeliveriesCommandHandler(c.fullUoWFactory(), c.tracker)
}

func (c *CompositionRoot) CreateGetSellerNotificationsQueryHandler() queries.GetSellerNotificationsQueryHandler {
	return queries.NewGetSellerNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearbyStoresQueryHandler() queries.GetNearbyStoresQueryHandler {
	return queries.NewGetNearbyStoresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockAlertsQueryHandler() queries.GetStockAlertsQueryHandler {
	return queries.NewGetStockAlertsQueryHandler(c.gormDB, services.NewStockLedger())
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB, c.tracker)
}

// CreateHTTPServer builds the echo router with every use case mounted.
func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		SignUpUser:             c.CreateSignUpUserCommandHandler(),
		CreateStore:            c.CreateCreateStoreCommandHandler(),
		AddItem:                c.CreateAddItemCommandHandler(),
		RestockItem:            c.CreateRestockItemCommandHandler(),
		UpdateStockThreshold:   c.CreateUpdateStockThresholdCommandHandler(),
		PlaceOrder:             c.CreatePlaceOrderCommandHandler(),
		AcceptDelivery:         c.CreateAcceptDeliveryCommandHandler(),
		MarkDelivered:          c.CreateMarkDeliveredCommandHandler(),
		LeaveReview:            c.CreateLeaveReviewCommandHandler(),
		GetSellerNotifications: c.CreateGetSellerNotificationsQueryHandler(),
		GetNearbyStores:        c.CreateGetNearbyStoresQueryHandler(),
		GetStockAlerts:         c.CreateGetStockAlertsQueryHandler(),
		GetOrderTracking:       c.CreateGetOrderTrackingQueryHandler(),
	}, c.configs.Stores.NearbyRadiusKm)

	return httpin.NewRouter(ctx, httpin.RouterConfig{
		Server:      server,
		OpenAPI:     api.OpenAPI,
		Logger:      c.logger.With("component", "http"),
		HTTPMetrics: c.httpMetrics,
		Metrics:     c.registry.Handler(),
		Health:      c.pingDatabase,
	})
}

// CreateJobManager schedules the delivery progress job.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAdvanceDeliveriesCommandHandler(), c.configs.Simulation.TickInterval, c.logger)
}

func (c *CompositionRoot) pingDatabase(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
