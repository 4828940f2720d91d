package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalogue product belonging to a store.
type Product struct {
	ID            int64           `json:"product_id" db:"product_id"`
	StoreID       int64           `json:"store_id" db:"store_id"`
	Name          string          `json:"product_name" db:"product_name"`
	Description   string          `json:"description" db:"description"`
	Price         decimal.Decimal `json:"price" db:"price"`
	StockQuantity int             `json:"stock_quantity" db:"stock_quantity"`
	ImageURL      *string         `json:"image_url,omitempty" db:"image_url"`
	Category      string          `json:"product_category" db:"product_category"`
	DateCreated   time.Time       `json:"date_created" db:"date_created"`

	// TotalSold is aggregated from order items on listing queries.
	TotalSold int64 `json:"total_sold"`
}

// CategoryCount is a per-category product tally for a store.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// ProductFilter enumerates the allowed catalogue filter keys. Every value is
// bound as a query parameter; unknown keys never reach the SQL.
type ProductFilter struct {
	Category  string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	InStock   bool
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	MinSold   *int64
	MaxSold   *int64
}
