package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/pricing"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves a store's products with total sold counts.
func (s *productService) List(ctx context.Context, storeID int64) ([]model.Product, error) {
	products, err := s.productRepo.ListByStore(ctx, storeID)
	if err != nil {
		s.logger.Error().Err(err).Int64("store_id", storeID).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Categories retrieves the distinct category names for a store.
func (s *productService) Categories(ctx context.Context, storeID int64) ([]string, error) {
	categories, err := s.productRepo.Categories(ctx, storeID)
	if err != nil {
		s.logger.Error().Err(err).Int64("store_id", storeID).Msg("failed to get categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// CategoryCounts retrieves per-category product counts for a store.
func (s *productService) CategoryCounts(ctx context.Context, storeID int64) ([]model.CategoryCount, error) {
	counts, err := s.productRepo.CategoryCounts(ctx, storeID)
	if err != nil {
		s.logger.Error().Err(err).Int64("store_id", storeID).Msg("failed to get category counts")
		return nil, fmt.Errorf("failed to get category counts: %w", err)
	}
	return counts, nil
}

// Add validates and inserts a new product.
func (s *productService) Add(ctx context.Context, product *model.Product) error {
	if product == nil {
		return model.NewDomainError(model.ErrCodeValidation, "product is required")
	}

	if product.Name == "" {
		return model.NewDomainError(model.ErrCodeValidation, "product name is required")
	}

	if product.Price.IsNegative() {
		return model.NewInvalidPriceError(product.Name)
	}

	if product.StockQuantity < 0 {
		return model.NewDomainError(model.ErrCodeValidation, "stock quantity cannot be negative")
	}

	// Never store a malformed image reference.
	if product.ImageURL != nil {
		if cleaned := pricing.SanitizeImageURL(*product.ImageURL); cleaned != "" {
			product.ImageURL = &cleaned
		} else {
			product.ImageURL = nil
		}
	}

	if err := s.productRepo.Insert(ctx, product); err != nil {
		s.logger.Error().
			Err(err).
			Int64("store_id", product.StoreID).
			Str("product_name", product.Name).
			Msg("failed to add product")
		return model.NewPersistenceError(err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Int64("store_id", product.StoreID).
		Msg("product added")

	return nil
}

// Filter retrieves a store's products matching the given filter.
func (s *productService) Filter(ctx context.Context, storeID int64, filter model.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.Filter(ctx, storeID, filter)
	if err != nil {
		s.logger.Error().Err(err).Int64("store_id", storeID).Msg("failed to filter products")
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}
	return products, nil
}
