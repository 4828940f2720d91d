package repository

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// storeRepository implements the StoreRepository interface using PostgreSQL.
type storeRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewStoreRepository creates a new PostgreSQL-backed store repository.
func NewStoreRepository(pool *pgxpool.Pool, logger zerolog.Logger) StoreRepository {
	return &storeRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "store").Logger(),
	}
}

// Summary retrieves the dashboard headline counts.
func (r *storeRepository) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM stores),
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM products),
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders)
	`

	var summary model.DashboardSummary
	err := r.pool.QueryRow(ctx, query).Scan(
		&summary.TotalStores,
		&summary.TotalCustomers,
		&summary.TotalProducts,
		&summary.TotalSales,
	)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query dashboard summary")
		return nil, fmt.Errorf("failed to query dashboard summary: %w", err)
	}

	return &summary, nil
}

// List retrieves stores joined with their owner accounts. Search and status
// values are bound; the sort direction is a whitelisted keyword.
func (r *storeRepository) List(ctx context.Context, filter model.StoreFilter) ([]model.StoreListing, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT s.id, s.store_name, s.store_email, s.store_status, u.email AS owner_email
		FROM stores s
		JOIN users u ON s.id = u.store_id AND u.user_type = 'shop_owner'`)

	var args []any
	var conds []string

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(s.store_name ILIKE $%d OR u.email ILIKE $%d)", len(args), len(args)))
	}

	if filter.Status.Valid() {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("s.store_status = $%d", len(args)))
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	if filter.SortDesc {
		sb.WriteString(" ORDER BY s.id DESC")
	} else {
		sb.WriteString(" ORDER BY s.id ASC")
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query stores")
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer rows.Close()

	var stores []model.StoreListing
	for rows.Next() {
		var s model.StoreListing
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Status, &s.OwnerEmail); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan store row")
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating store rows")
		return nil, fmt.Errorf("error iterating stores: %w", err)
	}

	return stores, nil
}

// UpdateStatus sets a store's status.
func (r *storeRepository) UpdateStatus(ctx context.Context, storeID int64, status model.StoreStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE stores SET store_status = $1 WHERE id = $2`, status, storeID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("store_id", storeID).
			Str("status", string(status)).
			Msg("failed to update store status")
		return fmt.Errorf("failed to update store status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn().Int64("store_id", storeID).Msg("store not found for status update")
	}

	return nil
}
