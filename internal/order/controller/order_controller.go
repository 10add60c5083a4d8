package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"dacsanviet/internal/dto"
	apperrors "dacsanviet/internal/errors"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	CancelOrder(ctx context.Context, orderID, userID uint) (*dto.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, req dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error)
	ConfirmDelivery(ctx context.Context, orderID, userID uint) (*dto.OrderResponse, error)
	GetOrder(ctx context.Context, orderID uint) (*dto.OrderResponse, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*dto.OrderResponse, error)
}

type OrderController struct {
	useCase  OrderUseCase
	validate *validator.Validate
	logger   *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if details := c.structDetails(req); len(details) > 0 {
		c.writeValidationError(w, traceID, "validation failed", details...)
		return
	}

	order, err := c.useCase.CreateOrder(r.Context(), req)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, order)
}

func (c *OrderController) Cancel(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.orderIDFromPath(w, r, traceID)
	if !ok {
		return
	}

	var req dto.CancelOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if details := c.structDetails(req); len(details) > 0 {
		c.writeValidationError(w, traceID, "validation failed", details...)
		return
	}

	order, err := c.useCase.CancelOrder(r.Context(), orderID, req.UserID)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.orderIDFromPath(w, r, traceID)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if details := c.structDetails(req); len(details) > 0 {
		c.writeValidationError(w, traceID, "validation failed", details...)
		return
	}

	order, err := c.useCase.UpdateOrderStatus(r.Context(), orderID, req)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *OrderController) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.orderIDFromPath(w, r, traceID)
	if !ok {
		return
	}

	var req dto.ConfirmDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if details := c.structDetails(req); len(details) > 0 {
		c.writeValidationError(w, traceID, "validation failed", details...)
		return
	}

	order, err := c.useCase.ConfirmDelivery(r.Context(), orderID, req.UserID)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.orderIDFromPath(w, r, traceID)
	if !ok {
		return
	}

	order, err := c.useCase.GetOrder(r.Context(), orderID)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *OrderController) GetByNumber(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		c.writeValidationError(w, traceID, "invalid order number", apperrors.ValidationDetail{
			Field:   "orderNumber",
			Message: "orderNumber is required",
		})
		return
	}

	order, err := c.useCase.GetOrderByNumber(r.Context(), orderNumber)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *OrderController) orderIDFromPath(w http.ResponseWriter, r *http.Request, traceID string) (uint, bool) {
	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
	if err != nil || orderID == 0 {
		c.writeValidationError(w, traceID, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return 0, false
	}
	return uint(orderID), true
}

func (c *OrderController) structDetails(req interface{}) []apperrors.ValidationDetail {
	err := c.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperrors.ValidationDetail{{Field: "body", Message: err.Error()}}
	}

	details := make([]apperrors.ValidationDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperrors.ValidationDetail{
			Field:   fe.Field(),
			Message: "failed validation on '" + fe.Tag() + "'",
		})
	}
	return details
}

type errorResponse struct {
	TraceID   string                       `json:"traceId"`
	Status    int                          `json:"status"`
	Code      string                       `json:"code"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}

func (c *OrderController) handleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, ve.Details)
		return
	}

	if apperrors.IsEmptyCartError(err) {
		c.writeError(w, traceID, http.StatusBadRequest, "EMPTY_CART", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsCartInvalidError(err); ok {
		c.writeError(w, traceID, http.StatusUnprocessableEntity, "CART_INVALID", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsInsufficientStockError(err); ok {
		c.writeError(w, traceID, http.StatusConflict, "INSUFFICIENT_STOCK", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsProductUnavailableError(err); ok {
		c.writeError(w, traceID, http.StatusUnprocessableEntity, "PRODUCT_UNAVAILABLE", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsInvalidTransitionError(err); ok {
		c.writeError(w, traceID, http.StatusConflict, "INVALID_TRANSITION", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsNotOwnerError(err); ok {
		c.writeError(w, traceID, http.StatusForbidden, "NOT_OWNER", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsDeadlockError(err); ok {
		c.writeError(w, traceID, http.StatusConflict, "DEADLOCK", err.Error(), nil)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", nil)
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, traceID, message string, details ...apperrors.ValidationDetail) {
	c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", message, details)
}

func (c *OrderController) writeError(w http.ResponseWriter, traceID string, status int, code, message string, details []apperrors.ValidationDetail) {
	c.writeJSON(w, status, errorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
