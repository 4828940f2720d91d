package repository

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `
	p.product_id, p.store_id, p.product_name, p.description, p.price,
	p.stock_quantity, p.image_url, p.product_category, p.date_created,
	COALESCE(SUM(oi.quantity), 0) AS total_sold`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// ListByStore retrieves a store's products with their total sold counts.
func (r *productRepository) ListByStore(ctx context.Context, storeID int64) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN order_items oi
			ON p.product_id = oi.product_id AND oi.store_id = $1
		WHERE p.store_id = $1
		GROUP BY p.product_id
		ORDER BY p.product_id`, productColumns)

	return r.queryProducts(ctx, query, storeID)
}

// Categories retrieves the distinct category names for a store.
func (r *productRepository) Categories(ctx context.Context, storeID int64) ([]string, error) {
	query := `
		SELECT DISTINCT product_category
		FROM products
		WHERE store_id = $1
		ORDER BY product_category
	`

	rows, err := r.pool.Query(ctx, query, storeID)
	if err != nil {
		r.logger.Error().Err(err).Int64("store_id", storeID).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, name)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// CategoryCounts retrieves per-category product counts for a store.
func (r *productRepository) CategoryCounts(ctx context.Context, storeID int64) ([]model.CategoryCount, error) {
	query := `
		SELECT product_category, COUNT(product_id)
		FROM products
		WHERE store_id = $1
		GROUP BY product_category
		ORDER BY product_category
	`

	rows, err := r.pool.Query(ctx, query, storeID)
	if err != nil {
		r.logger.Error().Err(err).Int64("store_id", storeID).Msg("failed to query category counts")
		return nil, fmt.Errorf("failed to query category counts: %w", err)
	}
	defer rows.Close()

	var counts []model.CategoryCount
	for rows.Next() {
		var c model.CategoryCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category count row")
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category count rows")
		return nil, fmt.Errorf("error iterating category counts: %w", err)
	}

	return counts, nil
}

// Insert adds a new product to the store's catalogue.
func (r *productRepository) Insert(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products
			(store_id, product_name, description, price, stock_quantity, image_url, product_category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING product_id, date_created
	`

	err := r.pool.QueryRow(ctx, query,
		product.StoreID,
		product.Name,
		product.Description,
		product.Price,
		product.StockQuantity,
		product.ImageURL,
		product.Category,
	).Scan(&product.ID, &product.DateCreated)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("store_id", product.StoreID).
			Str("product_name", product.Name).
			Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().
		Int64("product_id", product.ID).
		Int64("store_id", product.StoreID).
		Msg("product inserted successfully")

	return nil
}

// Filter retrieves a store's products matching the given filter. The query
// is assembled only from the enumerated filter keys; every client value is
// bound as a parameter.
func (r *productRepository) Filter(ctx context.Context, storeID int64, filter model.ProductFilter) ([]model.Product, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `
		SELECT %s
		FROM products p
		LEFT JOIN order_items oi
			ON p.product_id = oi.product_id AND oi.store_id = $1
		WHERE p.store_id = $1`, productColumns)

	args := []any{storeID}

	if filter.Category != "" && filter.Category != "All" {
		args = append(args, filter.Category)
		fmt.Fprintf(&sb, " AND p.product_category = $%d", len(args))
	}

	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		fmt.Fprintf(&sb, " AND p.price >= $%d", len(args))
	}

	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		fmt.Fprintf(&sb, " AND p.price <= $%d", len(args))
	}

	if filter.InStock {
		sb.WriteString(" AND p.stock_quantity > 0")
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		fmt.Fprintf(&sb, " AND p.product_name ILIKE $%d", len(args))
	}

	if filter.StartDate != nil && filter.EndDate != nil {
		args = append(args, *filter.StartDate)
		fmt.Fprintf(&sb, " AND p.date_created::date >= $%d", len(args))
		args = append(args, *filter.EndDate)
		fmt.Fprintf(&sb, " AND p.date_created::date <= $%d", len(args))
	}

	sb.WriteString(" GROUP BY p.product_id")

	having := make([]string, 0, 2)
	if filter.MinSold != nil {
		args = append(args, *filter.MinSold)
		having = append(having, fmt.Sprintf("COALESCE(SUM(oi.quantity), 0) >= $%d", len(args)))
	}
	if filter.MaxSold != nil {
		args = append(args, *filter.MaxSold)
		having = append(having, fmt.Sprintf("COALESCE(SUM(oi.quantity), 0) <= $%d", len(args)))
	}
	if len(having) > 0 {
		sb.WriteString(" HAVING " + strings.Join(having, " AND "))
	}

	sb.WriteString(" ORDER BY p.product_id")

	return r.queryProducts(ctx, sb.String(), args...)
}

// queryProducts runs a product query and scans the rows.
func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(
			&p.ID,
			&p.StoreID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.StockQuantity,
			&p.ImageURL,
			&p.Category,
			&p.DateCreated,
			&p.TotalSold,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
