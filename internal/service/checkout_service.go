package service

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/model"
	"storefront/internal/payment"
	"storefront/internal/pricing"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	orderRepo   repository.OrderRepository
	gateway     payment.Gateway
	frontendURL string
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service. frontendURL is the base
// for the payment redirect targets.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	gateway payment.Gateway,
	frontendURL string,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:   orderRepo,
		gateway:     gateway,
		frontendURL: frontendURL,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout runs the workflow in strict order: normalize pricing, persist the
// order atomically, commit, then request the payment session. A gateway
// failure after commit leaves the order Pending on purpose; a Pending order
// with no session is reconcilable, a lost order is not.
func (s *checkoutService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if req == nil || req.CustomerID == 0 || req.StoreID == 0 || len(req.Products) == 0 {
		return nil, model.ErrMissingCheckoutData
	}

	quote, err := pricing.Normalize(req.Products)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int64("customer_id", req.CustomerID).
			Msg("pricing normalization failed")
		return nil, err
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, model.NewPersistenceError(err)
	}

	// Release the transaction on every exit path before the commit; a
	// rollback after a successful commit is a no-op error we ignore.
	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	order := &model.Order{
		ID:          uuid.New(),
		CustomerID:  req.CustomerID,
		DateOrdered: time.Now().UTC(),
		TotalAmount: quote.Total,
		Status:      model.OrderStatusPending,
	}

	if err := s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, model.NewPersistenceError(err)
	}

	items := make([]model.OrderItem, len(quote.Lines))
	for i, line := range quote.Lines {
		items[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			StoreID:   req.StoreID,
		}
	}

	if err := s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(items)).
			Msg("failed to create order items")
		return nil, model.NewPersistenceError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, model.NewPersistenceError(err)
	}
	committed = true

	// The order is durable from here on. Do not undo it on gateway failure.
	successURL := fmt.Sprintf("%s/store/%d/success", s.frontendURL, req.StoreID)
	cancelURL := fmt.Sprintf("%s/store/%d/cart", s.frontendURL, req.StoreID)

	handle, err := s.gateway.CreateSession(ctx, quote.Lines, successURL, cancelURL)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("payment session creation failed, order remains Pending")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("session_id", handle.SessionID).
		Str("total_amount", order.TotalAmount.String()).
		Int("item_count", len(items)).
		Msg("checkout completed")

	return &model.CheckoutResponse{
		SessionID:   handle.SessionID,
		OrderID:     order.ID,
		RedirectURL: handle.RedirectURL,
	}, nil
}

// GetOrder retrieves an order with its items.
func (s *checkoutService) GetOrder(ctx context.Context, id uuid.UUID) (*model.OrderDetail, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, model.NewPersistenceError(err)
	}

	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	return &model.OrderDetail{Order: *order, Items: items}, nil
}
