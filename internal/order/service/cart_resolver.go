package service

import (
	"context"

	"go.uber.org/zap"

	"dacsanviet/internal/domain"
	"dacsanviet/internal/dto"
	apperrors "dacsanviet/internal/errors"
)

type CartItemRepository interface {
	FindByUserID(ctx context.Context, userID uint) ([]domain.CartItem, error)
	DeleteByUserID(ctx context.Context, userID uint) error
}

// CartResolver normalizes the two possible cart inputs into one list of
// purchase lines. A non-empty client-supplied item list always wins over
// the persisted cart, so a client-side cart survives independent of any
// server session.
type CartResolver struct {
	cartRepo CartItemRepository
	logger   *zap.Logger
}

func NewCartResolver(cartRepo CartItemRepository, logger *zap.Logger) *CartResolver {
	return &CartResolver{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

func (r *CartResolver) Resolve(ctx context.Context, req dto.CreateOrderRequest) (*dto.ResolvedCart, error) {
	if len(req.Items) > 0 {
		lines := make([]dto.PurchaseLine, len(req.Items))
		for i, item := range req.Items {
			lines[i] = dto.PurchaseLine{
				ProductID:       item.ProductID,
				Quantity:        item.Quantity,
				UnitPrice:       item.UnitPrice,
				ProductName:     item.ProductName,
				ProductImageURL: item.ProductImageURL,
			}
		}
		return &dto.ResolvedCart{
			Lines:  lines,
			Source: dto.CartSourceClientItems,
			UserID: req.UserID,
		}, nil
	}

	if req.UserID == nil {
		return nil, apperrors.NewEmptyCartError()
	}

	cartItems, err := r.cartRepo.FindByUserID(ctx, *req.UserID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, apperrors.NewEmptyCartError()
	}

	lines := make([]dto.PurchaseLine, len(cartItems))
	for i, item := range cartItems {
		// Pricing and product attributes are filled from the locked
		// product rows inside the checkout transaction.
		lines[i] = dto.PurchaseLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return &dto.ResolvedCart{
		Lines:  lines,
		Source: dto.CartSourcePersisted,
		UserID: req.UserID,
	}, nil
}

// ClearPersistedCart empties the user's server-side cart after a
// successful order. Best-effort: a failure is logged, never propagated.
func (r *CartResolver) ClearPersistedCart(ctx context.Context, userID uint) {
	if err := r.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		r.logger.Warn("failed to clear persisted cart after order",
			zap.Uint("userId", userID), zap.Error(err))
	}
}
