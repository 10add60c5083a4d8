package order

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	cartrepository "dacsanviet/internal/cart/repository"
	"dacsanviet/internal/config"
	"dacsanviet/internal/metrics"
	"dacsanviet/internal/notification"
	"dacsanviet/internal/order/controller"
	"dacsanviet/internal/order/repository"
	"dacsanviet/internal/order/service"
	productrepository "dacsanviet/internal/product/repository"
)

type Module struct {
	Controller *controller.OrderController
	Service    *service.OrderService
}

func NewModule(
	db *sql.DB,
	cfg *config.Config,
	notifier notification.Notifier,
	orderMetrics *metrics.OrderMetrics,
	logger *zap.Logger,
) *Module {
	orderRepo := repository.NewMySQLOrderRepository(db)
	itemRepo := repository.NewMySQLOrderItemRepository(db)
	productRepo := productrepository.NewMySQLRepository(db)
	cartRepo := cartrepository.NewMySQLCartItemRepository(db)

	resolver := service.NewCartResolver(cartRepo, logger)
	ledger := service.NewStockLedger(productRepo, notifier, orderMetrics, logger, cfg.Inventory.LowStockThreshold)
	orderNumbers := service.NewOrderNumberGenerator(time.Now().UnixNano())

	orderService := service.NewOrderService(
		db, orderRepo, itemRepo, resolver, ledger,
		notifier, orderMetrics, orderNumbers, logger,
		cfg.Shipping, cfg.Order.TxTimeout, cfg.Order.MaxRetryAttempts,
	)

	return &Module{
		Controller: controller.NewOrderController(orderService, logger),
		Service:    orderService,
	}
}
