package repository

import (
	"context"
	"testing"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(customerID int64) *model.Order {
	return &model.Order{
		ID:          uuid.New(),
		CustomerID:  customerID,
		DateOrdered: time.Now().UTC(),
		TotalAmount: decimal.RequireFromString("19.98"),
		Status:      model.OrderStatusPending,
	}
}

func TestOrderRepository_BeginTx(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)

	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)

	require.NoError(t, err)
	require.NotNil(t, tx)

	// Rollback to cleanup
	err = tx.Rollback(ctx)
	assert.NoError(t, err)
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)

	ctx := context.Background()
	order := testOrder(42)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	err = repo.CreateOrder(ctx, tx, order)
	require.NoError(t, err)

	err = tx.Commit(ctx)
	require.NoError(t, err)

	// Verify the persisted row
	var got model.Order
	err = pool.QueryRow(ctx,
		`SELECT id, customer_id, total_amount, status FROM orders WHERE id = $1`, order.ID,
	).Scan(&got.ID, &got.CustomerID, &got.TotalAmount, &got.Status)
	require.NoError(t, err)

	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, int64(42), got.CustomerID)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("19.98")))
	assert.Equal(t, model.OrderStatusPending, got.Status)
}

func TestOrderRepository_CreateOrderItems(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)

	ctx := context.Background()
	order := testOrder(42)

	items := []model.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, ProductID: 1, Quantity: 2, StoreID: 7},
		{ID: uuid.New(), OrderID: order.ID, ProductID: 2, Quantity: 1, StoreID: 7},
		{ID: uuid.New(), OrderID: order.ID, ProductID: 3, Quantity: 5, StoreID: 9},
	}

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.CreateOrder(ctx, tx, order))
	require.NoError(t, repo.CreateOrderItems(ctx, tx, items))
	require.NoError(t, tx.Commit(ctx))

	var count int
	err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_items WHERE order_id = $1`, order.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestOrderRepository_CreateOrderItems_Empty(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)

	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	err = repo.CreateOrderItems(ctx, tx, nil)
	assert.NoError(t, err)
}

func TestOrderRepository_RollbackDiscardsOrder(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)

	ctx := context.Background()
	order := testOrder(42)

	// An invalid item violates the quantity check; after rollback the order
	// itself must not be visible either.
	items := []model.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, ProductID: 1, Quantity: 0, StoreID: 7},
	}

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.CreateOrder(ctx, tx, order))

	err = repo.CreateOrderItems(ctx, tx, items)
	require.Error(t, err)

	require.NoError(t, tx.Rollback(ctx))

	var count int
	err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE id = $1`, order.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestOrderRepository_GetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)

	ctx := context.Background()
	order := testOrder(42)
	items := []model.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, ProductID: 1, Quantity: 2, StoreID: 7},
		{ID: uuid.New(), OrderID: order.ID, ProductID: 2, Quantity: 1, StoreID: 7},
	}

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.CreateOrder(ctx, tx, order))
	require.NoError(t, repo.CreateOrderItems(ctx, tx, items))
	require.NoError(t, tx.Commit(ctx))

	got, gotItems, err := repo.GetByID(ctx, order.ID)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.CustomerID, got.CustomerID)
	assert.True(t, got.TotalAmount.Equal(order.TotalAmount))
	assert.Equal(t, model.OrderStatusPending, got.Status)
	assert.Len(t, gotItems, 2)
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)

	ctx := context.Background()

	got, gotItems, err := repo.GetByID(ctx, uuid.New())

	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Nil(t, gotItems)
}
