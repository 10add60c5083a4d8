package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"dacsanviet/internal/metrics"
	"dacsanviet/internal/order"
	"dacsanviet/internal/payment"
)

type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

func NewServer(port int, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func NewRouter(orderModule *order.Module, paymentModule *payment.Module) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderModule.Controller.Create)
			r.Get("/number/{orderNumber}", orderModule.Controller.GetByNumber)
			r.Route("/{orderId}", func(r chi.Router) {
				r.Get("/", orderModule.Controller.Get)
				r.Post("/cancel", orderModule.Controller.Cancel)
				r.Post("/confirm-delivery", orderModule.Controller.ConfirmDelivery)
				r.Patch("/status", orderModule.Controller.UpdateStatus)
			})
		})
		r.Post("/webhooks/payment", paymentModule.Controller.HandlePayment)
	})

	return r
}
