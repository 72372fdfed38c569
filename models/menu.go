package models

// MenuItem is a dish or drink on the Seblak Listyaning menu.
// Price is in whole Rupiah.
type MenuItem struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Price             int64   `json:"price"`
	Category          string  `json:"category"`
	Image             string  `json:"image"`
	SpicyLevel        *string `json:"spicyLevel"`
	StockQuantity     int     `json:"stockQuantity"`
	LowStockThreshold int     `json:"lowStockThreshold"`
	Unit              string  `json:"unit"`
	IsAvailable       int     `json:"isAvailable"`
	Rating            int     `json:"rating"`
	ReviewCount       int     `json:"reviewCount"`
}

// Available reports the manual availability flag, independent of stock.
func (m MenuItem) Available() bool {
	return m.IsAvailable != 0
}

// NewMenuItem is the admin input for creating a menu item.
type NewMenuItem struct {
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description" binding:"required"`
	Price             int64   `json:"price" binding:"required,gte=1"`
	Category          string  `json:"category" binding:"required"`
	Image             string  `json:"image" binding:"required"`
	SpicyLevel        *string `json:"spicyLevel"`
	StockQuantity     int     `json:"stockQuantity" binding:"gte=0"`
	LowStockThreshold int     `json:"lowStockThreshold" binding:"required,gte=1"`
	Unit              string  `json:"unit" binding:"required"`
	IsAvailable       *int    `json:"isAvailable" binding:"omitempty,oneof=0 1"`
	Rating            *int    `json:"rating"`
	ReviewCount       *int    `json:"reviewCount"`
}

const (
	DefaultRating      = 45
	DefaultReviewCount = 0
)

// Build turns the input into a MenuItem without an id, applying display defaults.
func (n NewMenuItem) Build() MenuItem {
	item := MenuItem{
		Name:              n.Name,
		Description:       n.Description,
		Price:             n.Price,
		Category:          n.Category,
		Image:             n.Image,
		SpicyLevel:        n.SpicyLevel,
		StockQuantity:     n.StockQuantity,
		LowStockThreshold: n.LowStockThreshold,
		Unit:              n.Unit,
		IsAvailable:       1,
		Rating:            DefaultRating,
		ReviewCount:       DefaultReviewCount,
	}
	if n.IsAvailable != nil {
		item.IsAvailable = *n.IsAvailable
	}
	if n.Rating != nil {
		item.Rating = *n.Rating
	}
	if n.ReviewCount != nil {
		item.ReviewCount = *n.ReviewCount
	}
	return item
}
