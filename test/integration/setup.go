package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS stores (
			id BIGSERIAL PRIMARY KEY,
			store_name VARCHAR(255) NOT NULL,
			store_email VARCHAR(255) NOT NULL,
			store_status VARCHAR(20) NOT NULL DEFAULT 'enabled'
		);

		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			user_type VARCHAR(50) NOT NULL,
			store_id BIGINT REFERENCES stores(id)
		);

		CREATE TABLE IF NOT EXISTS customers (
			id BIGSERIAL PRIMARY KEY,
			email VARCHAR(255) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS products (
			product_id BIGSERIAL PRIMARY KEY,
			store_id BIGINT NOT NULL,
			product_name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price DECIMAL(10, 2) NOT NULL CHECK (price >= 0),
			stock_quantity INTEGER NOT NULL DEFAULT 0,
			image_url TEXT,
			product_category VARCHAR(100) NOT NULL DEFAULT '',
			date_created TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_id BIGINT NOT NULL,
			date_ordered TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			total_amount DECIMAL(10, 2) NOT NULL,
			status VARCHAR(20) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id BIGINT NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			store_id BIGINT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
		CREATE INDEX IF NOT EXISTS idx_products_store_id ON products(store_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedStore inserts a store with its owner account and returns the store ID.
func SeedStore(t *testing.T, pool *pgxpool.Pool, name, status string) int64 {
	t.Helper()

	ctx := context.Background()

	var storeID int64
	err := pool.QueryRow(ctx,
		"INSERT INTO stores (store_name, store_email, store_status) VALUES ($1, $2, $3) RETURNING id",
		name, name+"@example.com", status,
	).Scan(&storeID)
	if err != nil {
		t.Fatalf("failed to seed store %s: %v", name, err)
	}

	_, err = pool.Exec(ctx,
		"INSERT INTO users (email, user_type, store_id) VALUES ($1, 'shop_owner', $2)",
		"owner-"+name+"@example.com", storeID)
	if err != nil {
		t.Fatalf("failed to seed store owner for %s: %v", name, err)
	}

	return storeID
}

// SeedProducts inserts test product data for the given store.
func SeedProducts(t *testing.T, pool *pgxpool.Pool, storeID int64) []int64 {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		name     string
		price    string
		stock    int
		category string
	}{
		{"Mug", "9.99", 10, "Kitchen"},
		{"Plate", "12.50", 0, "Kitchen"},
		{"Desk Lamp", "45.00", 3, "Office"},
	}

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		var id int64
		err := pool.QueryRow(ctx,
			"INSERT INTO products (store_id, product_name, price, stock_quantity, product_category) VALUES ($1, $2, $3, $4, $5) RETURNING product_id",
			storeID, p.name, p.price, p.stock, p.category,
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
		ids = append(ids, id)
	}

	return ids
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "products", "users", "customers", "stores"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
