package store

import (
	"time"

	"github.com/yeremiapane/seblak-listyaning/models"
)

// Rows use snake_case columns; the domain types use camelCase JSON. The
// to*Row / to*Domain pairs are the only place the two shapes meet.

type menuItemRow struct {
	ID                int     `gorm:"column:id;primaryKey;autoIncrement"`
	Name              string  `gorm:"column:name;type:varchar(255);not null"`
	Description       string  `gorm:"column:description;type:text;not null"`
	Price             int64   `gorm:"column:price;not null"`
	Category          string  `gorm:"column:category;type:varchar(100);not null;index"`
	Image             string  `gorm:"column:image;type:varchar(255);not null"`
	SpicyLevel        *string `gorm:"column:spicy_level;type:varchar(50)"`
	StockQuantity     int     `gorm:"column:stock_quantity;not null"`
	LowStockThreshold int     `gorm:"column:low_stock_threshold;not null"`
	Unit              string  `gorm:"column:unit;type:varchar(20);not null"`
	IsAvailable       int     `gorm:"column:is_available;not null"`
	Rating            int     `gorm:"column:rating"`
	ReviewCount       int     `gorm:"column:review_count"`
}

func (menuItemRow) TableName() string { return "menu_items" }

type orderRow struct {
	ID              int                `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerName    string             `gorm:"column:customer_name;type:varchar(255);not null"`
	CustomerPhone   string             `gorm:"column:customer_phone;type:varchar(30);not null"`
	CustomerAddress string             `gorm:"column:customer_address;type:text;not null"`
	ServiceType     string             `gorm:"column:service_type;type:varchar(20);not null"`
	PaymentMethod   string             `gorm:"column:payment_method;type:varchar(20);not null"`
	Notes           *string            `gorm:"column:notes;type:text"`
	Items           []models.OrderLine `gorm:"column:items;type:text;serializer:json;not null"`
	TotalAmount     int64              `gorm:"column:total_amount;not null"`
	Status          string             `gorm:"column:status;type:varchar(20);not null;index"`
	CreatedAt       time.Time          `gorm:"column:created_at;not null;index"`
}

func (orderRow) TableName() string { return "orders" }

func toMenuItemRow(m models.MenuItem) menuItemRow {
	return menuItemRow{
		ID:                m.ID,
		Name:              m.Name,
		Description:       m.Description,
		Price:             m.Price,
		Category:          m.Category,
		Image:             m.Image,
		SpicyLevel:        m.SpicyLevel,
		StockQuantity:     m.StockQuantity,
		LowStockThreshold: m.LowStockThreshold,
		Unit:              m.Unit,
		IsAvailable:       m.IsAvailable,
		Rating:            m.Rating,
		ReviewCount:       m.ReviewCount,
	}
}

func toMenuItemDomain(r menuItemRow) models.MenuItem {
	return models.MenuItem{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		Price:             r.Price,
		Category:          r.Category,
		Image:             r.Image,
		SpicyLevel:        r.SpicyLevel,
		StockQuantity:     r.StockQuantity,
		LowStockThreshold: r.LowStockThreshold,
		Unit:              r.Unit,
		IsAvailable:       r.IsAvailable,
		Rating:            r.Rating,
		ReviewCount:       r.ReviewCount,
	}
}

func toOrderRow(o models.Order) orderRow {
	items := make([]models.OrderLine, len(o.Items))
	copy(items, o.Items)
	return orderRow{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		ServiceType:     string(o.ServiceType),
		PaymentMethod:   string(o.PaymentMethod),
		Notes:           o.Notes,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
	}
}

func toOrderDomain(r orderRow) models.Order {
	items := r.Items
	if items == nil {
		items = []models.OrderLine{}
	}
	return models.Order{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		ServiceType:     models.ServiceType(r.ServiceType),
		PaymentMethod:   models.PaymentMethod(r.PaymentMethod),
		Notes:           r.Notes,
		Items:           items,
		TotalAmount:     r.TotalAmount,
		Status:          models.OrderStatus(r.Status),
		CreatedAt:       r.CreatedAt,
	}
}
