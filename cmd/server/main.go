package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"dacsanviet/internal/commons"
	"dacsanviet/internal/config"
	"dacsanviet/internal/infrastructure/logger"
	"dacsanviet/internal/infrastructure/mysql"
	"dacsanviet/internal/infrastructure/rabbitmq"
	"dacsanviet/internal/metrics"
	"dacsanviet/internal/notification"
	"dacsanviet/internal/order"
	"dacsanviet/internal/payment"
	"dacsanviet/internal/server"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	var notifier notification.Notifier = notification.NewNopNotifier()
	if cfg.RabbitMQ.Enabled {
		client, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
		})
		if err != nil {
			log.Warn("rabbitmq unavailable, notifications disabled", zap.Error(err))
		} else {
			defer client.Close()
			notifier = notification.NewAMQPNotifier(client, log)
		}
	}

	orderMetrics := metrics.NewOrderMetrics()

	orderModule := order.NewModule(db, cfg, notifier, orderMetrics, log)
	paymentModule := payment.NewModule(db, cfg, notifier, orderMetrics, log)

	router := server.NewRouter(orderModule, paymentModule)
	srv := server.NewServer(cfg.Server.Port, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		log.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
