package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"dacsanviet/internal/dto"
	apperrors "dacsanviet/internal/errors"
)

type ReconciliationUseCase interface {
	VerifyAndUpdatePayment(ctx context.Context, orderID uint, amount int64, paymentMethod, transactionID, description string) (bool, error)
}

type WebhookController struct {
	useCase  ReconciliationUseCase
	validate *validator.Validate
	logger   *zap.Logger
}

func NewWebhookController(useCase ReconciliationUseCase, logger *zap.Logger) *WebhookController {
	return &WebhookController{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

// HandlePayment receives payment gateway callbacks. The response status tells
// the gateway whether the payment was matched to an order: mismatches and
// unknown orders are reported as 422 so the gateway surfaces them for manual
// review instead of retrying forever.
func (c *WebhookController) HandlePayment(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.PaymentWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}

	if err := c.validate.Struct(req); err != nil {
		logger.Warn("webhook validation failed", zap.Error(err))
		c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	verified, err := c.useCase.VerifyAndUpdatePayment(
		r.Context(), req.OrderID, req.Amount, req.PaymentMethod, req.TransactionID, req.Description)
	if err != nil {
		if re, ok := apperrors.IsReconciliationError(err); ok {
			logger.Error("payment reconciliation failed", zap.Uint("orderId", req.OrderID), zap.Error(re))
			c.writeError(w, traceID, http.StatusInternalServerError, "RECONCILIATION_ERROR", "payment reconciliation failed")
			return
		}
		logger.Error("unexpected error", zap.Error(err))
		c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return
	}

	status := http.StatusOK
	if !verified {
		status = http.StatusUnprocessableEntity
	}

	c.writeJSON(w, status, dto.PaymentWebhookResponse{
		TraceID:   traceID,
		OrderID:   req.OrderID,
		Verified:  verified,
		Timestamp: time.Now().UTC(),
	})
}

type errorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *WebhookController) writeError(w http.ResponseWriter, traceID string, status int, code, message string) {
	c.writeJSON(w, status, errorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func (c *WebhookController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
