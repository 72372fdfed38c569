package models

type StockStatus string

const (
	StockInStock     StockStatus = "in-stock"
	StockLowStock    StockStatus = "low-stock"
	StockOutOfStock  StockStatus = "out-of-stock"
	StockUnavailable StockStatus = "unavailable"
)

// InventoryStats aggregates a set of menu items for the admin dashboard.
type InventoryStats struct {
	Total      int `json:"total"`
	Available  int `json:"available"`
	LowStock   int `json:"lowStock"`
	OutOfStock int `json:"outOfStock"`
}
