package service

import (
	"context"

	"storefront/internal/model"

	"github.com/google/uuid"
)

// CheckoutService runs the checkout workflow: pricing, order persistence,
// payment session creation.
type CheckoutService interface {
	// Checkout creates a durable Pending order and a payment session for it.
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error)

	// GetOrder retrieves an order with its items, for status lookups and
	// reconciliation.
	GetOrder(ctx context.Context, id uuid.UUID) (*model.OrderDetail, error)
}

// ProductService defines operations for catalogue management.
type ProductService interface {
	// List retrieves a store's products with total sold counts.
	List(ctx context.Context, storeID int64) ([]model.Product, error)

	// Categories retrieves the distinct category names for a store.
	Categories(ctx context.Context, storeID int64) ([]string, error)

	// CategoryCounts retrieves per-category product counts for a store.
	CategoryCounts(ctx context.Context, storeID int64) ([]model.CategoryCount, error)

	// Add inserts a new product into the store's catalogue.
	Add(ctx context.Context, product *model.Product) error

	// Filter retrieves a store's products matching the given filter.
	Filter(ctx context.Context, storeID int64, filter model.ProductFilter) ([]model.Product, error)
}

// AdminService defines the admin dashboard operations.
type AdminService interface {
	// Summary retrieves the dashboard headline counts.
	Summary(ctx context.Context) (*model.DashboardSummary, error)

	// Stores retrieves the store listing with optional filters.
	Stores(ctx context.Context, filter model.StoreFilter) ([]model.StoreListing, error)

	// UpdateStoreStatus enables or disables a store.
	UpdateStoreStatus(ctx context.Context, storeID int64, status model.StoreStatus) error
}
