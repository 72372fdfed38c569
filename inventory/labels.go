package inventory

import "github.com/yeremiapane/seblak-listyaning/models"

// StockStatusText is the Indonesian label shown on the inventory page.
func StockStatusText(status models.StockStatus) string {
	switch status {
	case models.StockUnavailable:
		return "Tidak Tersedia"
	case models.StockOutOfStock:
		return "Habis"
	case models.StockLowStock:
		return "Stok Menipis"
	case models.StockInStock:
		return "Tersedia"
	default:
		return string(status)
	}
}

// Entry is a MenuItem annotated with its derived stock status.
type Entry struct {
	models.MenuItem
	StockStatus     models.StockStatus `json:"stockStatus"`
	StockStatusText string             `json:"stockStatusText"`
}

func Annotate(items []models.MenuItem) []Entry {
	out := make([]Entry, len(items))
	for i, item := range items {
		status := GetStockStatus(item)
		out[i] = Entry{
			MenuItem:        item,
			StockStatus:     status,
			StockStatusText: StockStatusText(status),
		}
	}
	return out
}
