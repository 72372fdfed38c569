package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/seblak-listyaning/apperr"
	"github.com/yeremiapane/seblak-listyaning/inventory"
	"github.com/yeremiapane/seblak-listyaning/models"
	"github.com/yeremiapane/seblak-listyaning/orders"
)

// GormStore is the durable provider (Postgres, MySQL or SQLite).
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore migrates the two tables and returns the store. It does not
// seed; see Seed.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&menuItemRow{}, &orderRow{}); err != nil {
		return nil, apperr.Provider("migrate", err)
	}
	return &GormStore{db: db, now: time.Now}, nil
}

func (s *GormStore) notFoundOr(err error, op, resource string, id int) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(resource, id)
	}
	return apperr.Provider(op, err)
}

func (s *GormStore) GetAllMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var rows []menuItemRow
	if err := s.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, apperr.Provider("getAllMenuItems", err)
	}
	return menuItemsFromRows(rows), nil
}

func (s *GormStore) GetMenuItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	var rows []menuItemRow
	if err := s.db.WithContext(ctx).Where("category = ?", category).Order("id asc").Find(&rows).Error; err != nil {
		return nil, apperr.Provider("getMenuItemsByCategory", err)
	}
	return menuItemsFromRows(rows), nil
}

func menuItemsFromRows(rows []menuItemRow) []models.MenuItem {
	out := make([]models.MenuItem, len(rows))
	for i, r := range rows {
		out[i] = toMenuItemDomain(r)
	}
	return out
}

func (s *GormStore) GetMenuItem(ctx context.Context, id int) (models.MenuItem, error) {
	var row menuItemRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return models.MenuItem{}, s.notFoundOr(err, "getMenuItem", "menu item", id)
	}
	return toMenuItemDomain(row), nil
}

func (s *GormStore) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if err := inventory.ValidateNewMenuItem(item); err != nil {
		return models.MenuItem{}, err
	}
	row := toMenuItemRow(item)
	row.ID = 0
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.MenuItem{}, apperr.Provider("createMenuItem", err)
	}
	return toMenuItemDomain(row), nil
}

// updateMenuItem is a locked read-modify-write of one menu row.
func (s *GormStore) updateMenuItem(ctx context.Context, op string, id int, values map[string]interface{}) (models.MenuItem, error) {
	var row menuItemRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&row).Updates(values).Error; err != nil {
			return err
		}
		return tx.First(&row, id).Error
	})
	if err != nil {
		return models.MenuItem{}, s.notFoundOr(err, op, "menu item", id)
	}
	return toMenuItemDomain(row), nil
}

func (s *GormStore) UpdateMenuItemStock(ctx context.Context, id, stockQuantity, lowStockThreshold int) (models.MenuItem, error) {
	if err := inventory.ValidateStockUpdate(stockQuantity, lowStockThreshold); err != nil {
		return models.MenuItem{}, err
	}
	return s.updateMenuItem(ctx, "updateMenuItemStock", id, map[string]interface{}{
		"stock_quantity":      stockQuantity,
		"low_stock_threshold": lowStockThreshold,
	})
}

func (s *GormStore) UpdateMenuItemAvailability(ctx context.Context, id, isAvailable int) (models.MenuItem, error) {
	if err := inventory.ValidateAvailability(isAvailable); err != nil {
		return models.MenuItem{}, err
	}
	return s.updateMenuItem(ctx, "updateMenuItemAvailability", id, map[string]interface{}{
		"is_available": isAvailable,
	})
}

func (s *GormStore) CreateOrder(ctx context.Context, in models.NewOrder) (models.Order, error) {
	prepared, err := orders.PrepareNewOrder(in)
	if err != nil {
		return models.Order{}, err
	}
	row := toOrderRow(models.Order{
		CustomerName:    prepared.CustomerName,
		CustomerPhone:   prepared.CustomerPhone,
		CustomerAddress: prepared.CustomerAddress,
		ServiceType:     prepared.ServiceType,
		PaymentMethod:   prepared.PaymentMethod,
		Notes:           prepared.Notes,
		Items:           prepared.Items,
		TotalAmount:     prepared.TotalAmount,
		Status:          orders.InitialStatus,
		CreatedAt:       s.now().UTC().Truncate(time.Millisecond),
	})
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Order{}, apperr.Provider("createOrder", err)
	}
	return toOrderDomain(row), nil
}

func (s *GormStore) GetOrder(ctx context.Context, id int) (models.Order, error) {
	var row orderRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return models.Order{}, s.notFoundOr(err, "getOrder", "order", id)
	}
	return toOrderDomain(row), nil
}

func (s *GormStore) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	var rows []orderRow
	if err := s.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&rows).Error; err != nil {
		return nil, apperr.Provider("getAllOrders", err)
	}
	out := make([]models.Order, len(rows))
	for i, r := range rows {
		out[i] = toOrderDomain(r)
	}
	return out, nil
}

func (s *GormStore) UpdateOrderStatus(ctx context.Context, id int, status models.OrderStatus) (models.Order, error) {
	if _, err := orders.ParseStatus(string(status)); err != nil {
		return models.Order{}, err
	}
	var row orderRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&row).Update("status", string(status)).Error; err != nil {
			return err
		}
		row.Status = string(status)
		return nil
	})
	if err != nil {
		return models.Order{}, s.notFoundOr(err, "updateOrderStatus", "order", id)
	}
	return toOrderDomain(row), nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
