package payment

import (
	"database/sql"

	"go.uber.org/zap"

	"dacsanviet/internal/config"
	"dacsanviet/internal/metrics"
	"dacsanviet/internal/notification"
	orderrepository "dacsanviet/internal/order/repository"
	"dacsanviet/internal/payment/controller"
	"dacsanviet/internal/payment/service"
)

type Module struct {
	Controller *controller.WebhookController
	Service    *service.ReconciliationService
}

func NewModule(
	db *sql.DB,
	cfg *config.Config,
	notifier notification.Notifier,
	orderMetrics *metrics.OrderMetrics,
	logger *zap.Logger,
) *Module {
	orderRepo := orderrepository.NewMySQLOrderRepository(db)

	reconciliationService := service.NewReconciliationService(
		db, orderRepo, notifier, orderMetrics, logger,
		cfg.Payment.AmountTolerance, cfg.Order.TxTimeout,
	)

	return &Module{
		Controller: controller.NewWebhookController(reconciliationService, logger),
		Service:    reconciliationService,
	}
}
