package repository

import (
	"context"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepository defines the durable order/order-items storage.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the order's line items within the provided
	// transaction. Items never exist without their parent order.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)
}

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// ListByStore retrieves a store's products with their total sold counts.
	ListByStore(ctx context.Context, storeID int64) ([]model.Product, error)

	// Categories retrieves the distinct category names for a store.
	Categories(ctx context.Context, storeID int64) ([]string, error)

	// CategoryCounts retrieves per-category product counts for a store.
	CategoryCounts(ctx context.Context, storeID int64) ([]model.CategoryCount, error)

	// Insert adds a new product to the store's catalogue.
	Insert(ctx context.Context, product *model.Product) error

	// Filter retrieves a store's products matching the given filter. Only
	// the enumerated filter keys are applied and all values are bound.
	Filter(ctx context.Context, storeID int64, filter model.ProductFilter) ([]model.Product, error)
}

// StoreRepository defines the admin dashboard data access.
type StoreRepository interface {
	// Summary retrieves the dashboard headline counts.
	Summary(ctx context.Context) (*model.DashboardSummary, error)

	// List retrieves stores joined with their owner accounts.
	List(ctx context.Context, filter model.StoreFilter) ([]model.StoreListing, error)

	// UpdateStatus sets a store's status.
	UpdateStatus(ctx context.Context, storeID int64, status model.StoreStatus) error
}
