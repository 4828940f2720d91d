package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	// Get connection string
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	// Create schema
	createSchema(t, pool)

	// Cleanup function
	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS stores (
			id BIGSERIAL PRIMARY KEY,
			store_name TEXT NOT NULL,
			store_email TEXT NOT NULL,
			store_status TEXT NOT NULL DEFAULT 'enabled'
		);

		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL,
			user_type TEXT NOT NULL,
			store_id BIGINT REFERENCES stores(id)
		);

		CREATE TABLE IF NOT EXISTS customers (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS products (
			product_id BIGSERIAL PRIMARY KEY,
			store_id BIGINT NOT NULL,
			product_name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
			stock_quantity INTEGER NOT NULL DEFAULT 0,
			image_url TEXT,
			product_category TEXT NOT NULL DEFAULT '',
			date_created TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_id BIGINT NOT NULL,
			date_ordered TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			total_amount DECIMAL(10,2) NOT NULL,
			status TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id BIGINT NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			store_id BIGINT NOT NULL
		);
	`

	_, err := pool.Exec(ctx, schema)
	require.NoError(t, err)
}

// seedStore inserts a store and its owner account, returning the store ID.
func seedStore(t *testing.T, pool *pgxpool.Pool, name, email, status, ownerEmail string) int64 {
	ctx := context.Background()

	var storeID int64
	err := pool.QueryRow(ctx,
		`INSERT INTO stores (store_name, store_email, store_status) VALUES ($1, $2, $3) RETURNING id`,
		name, email, status,
	).Scan(&storeID)
	require.NoError(t, err)

	_, err = pool.Exec(ctx,
		`INSERT INTO users (email, user_type, store_id) VALUES ($1, 'shop_owner', $2)`,
		ownerEmail, storeID)
	require.NoError(t, err)

	return storeID
}

// seedProduct inserts a product and returns its generated ID.
func seedProduct(t *testing.T, pool *pgxpool.Pool, storeID int64, name, price, category string, stock int) int64 {
	ctx := context.Background()

	var productID int64
	err := pool.QueryRow(ctx, `
		INSERT INTO products (store_id, product_name, price, stock_quantity, product_category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING product_id`,
		storeID, name, price, stock, category,
	).Scan(&productID)
	require.NoError(t, err)

	return productID
}
