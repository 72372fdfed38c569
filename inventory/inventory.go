// Package inventory classifies menu item stock. Everything here is pure and
// works on whatever the provider returned, including stale or negative
// stock written by other tools.
package inventory

import (
	"github.com/yeremiapane/seblak-listyaning/apperr"
	"github.com/yeremiapane/seblak-listyaning/models"
)

// GetStockStatus depends only on IsAvailable, StockQuantity and
// LowStockThreshold. Negative stock counts as out of stock.
func GetStockStatus(item models.MenuItem) models.StockStatus {
	switch {
	case !item.Available():
		return models.StockUnavailable
	case item.StockQuantity <= 0:
		return models.StockOutOfStock
	case item.StockQuantity <= item.LowStockThreshold:
		return models.StockLowStock
	default:
		return models.StockInStock
	}
}

func isOrderable(item models.MenuItem) bool {
	return item.Available() && item.StockQuantity > 0
}

// CalculateInventoryStats counts items for the dashboard. Low stock items are
// a subset of available ones, so Available+OutOfStock always equals Total.
func CalculateInventoryStats(items []models.MenuItem) models.InventoryStats {
	stats := models.InventoryStats{Total: len(items)}
	for _, item := range items {
		if !isOrderable(item) {
			stats.OutOfStock++
			continue
		}
		stats.Available++
		if item.StockQuantity <= item.LowStockThreshold {
			stats.LowStock++
		}
	}
	return stats
}

// CountByStatus buckets items by GetStockStatus. Every status is present in
// the result, with zero when nothing matches.
func CountByStatus(items []models.MenuItem) map[models.StockStatus]int {
	counts := map[models.StockStatus]int{
		models.StockInStock:     0,
		models.StockLowStock:    0,
		models.StockOutOfStock:  0,
		models.StockUnavailable: 0,
	}
	for _, item := range items {
		counts[GetStockStatus(item)]++
	}
	return counts
}

// ValidateStockUpdate guards the stock mutation. The pair is written
// together, so both are checked before anything is stored.
func ValidateStockUpdate(stockQuantity, lowStockThreshold int) error {
	f := apperr.FieldErrors{}
	if stockQuantity < 0 {
		f.Add("stockQuantity", "must not be negative")
	}
	if lowStockThreshold < 1 {
		f.Add("lowStockThreshold", "must be at least 1")
	}
	return f.Err("invalid stock values")
}

func ValidateAvailability(isAvailable int) error {
	if isAvailable != 0 && isAvailable != 1 {
		return apperr.InvalidField("isAvailable", "must be 0 or 1")
	}
	return nil
}

// ValidateNewMenuItem mirrors the admin add-menu form rules.
func ValidateNewMenuItem(item models.MenuItem) error {
	f := apperr.FieldErrors{}
	required := map[string]string{
		"name":        item.Name,
		"description": item.Description,
		"category":    item.Category,
		"image":       item.Image,
		"unit":        item.Unit,
	}
	for field, v := range required {
		if v == "" {
			f.Add(field, "required")
		}
	}
	if item.Price < 1 {
		f.Add("price", "must be greater than 0")
	}
	if item.StockQuantity < 0 {
		f.Add("stockQuantity", "must not be negative")
	}
	if item.LowStockThreshold < 1 {
		f.Add("lowStockThreshold", "must be at least 1")
	}
	if item.IsAvailable != 0 && item.IsAvailable != 1 {
		f.Add("isAvailable", "must be 0 or 1")
	}
	return f.Err("invalid menu item")
}
