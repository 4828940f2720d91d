package model

import "github.com/shopspring/decimal"

// StoreStatus is a store's availability state.
type StoreStatus string

const (
	StoreStatusEnabled  StoreStatus = "enabled"
	StoreStatusDisabled StoreStatus = "disabled"
)

// Valid reports whether the status is one of the known values.
func (s StoreStatus) Valid() bool {
	return s == StoreStatusEnabled || s == StoreStatusDisabled
}

// DashboardSummary holds the admin dashboard headline counts.
type DashboardSummary struct {
	TotalStores    int64           `json:"total_stores"`
	TotalCustomers int64           `json:"total_customers"`
	TotalProducts  int64           `json:"total_products"`
	TotalSales     decimal.Decimal `json:"total_sales"`
}

// StoreListing is a store row joined with its owner account.
type StoreListing struct {
	ID         int64       `json:"id"`
	Name       string      `json:"store_name"`
	Email      string      `json:"store_email"`
	Status     StoreStatus `json:"store_status"`
	OwnerEmail string      `json:"owner_email"`
}

// StoreFilter holds the admin store listing filters.
type StoreFilter struct {
	Search   string
	Status   StoreStatus
	SortDesc bool
}
