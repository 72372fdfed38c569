// Package store is the persistence boundary. MemoryStore and GormStore
// satisfy the same Store contract, including error kinds: validation
// failures are *apperr.ValidationError, unknown ids *apperr.NotFoundError
// and backend failures *apperr.ProviderError.
package store

import (
	"context"
	"fmt"

	"github.com/yeremiapane/seblak-listyaning/cache"
	"github.com/yeremiapane/seblak-listyaning/config"
	"github.com/yeremiapane/seblak-listyaning/database"
	"github.com/yeremiapane/seblak-listyaning/models"
	"github.com/yeremiapane/seblak-listyaning/utils"
)

type Store interface {
	GetAllMenuItems(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id int) (models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	UpdateMenuItemStock(ctx context.Context, id, stockQuantity, lowStockThreshold int) (models.MenuItem, error)
	UpdateMenuItemAvailability(ctx context.Context, id, isAvailable int) (models.MenuItem, error)

	// CreateOrder assigns id, status pending and createdAt.
	CreateOrder(ctx context.Context, order models.NewOrder) (models.Order, error)
	GetOrder(ctx context.Context, id int) (models.Order, error)
	// GetAllOrders returns newest first.
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	// UpdateOrderStatus writes any valid status regardless of the current one.
	UpdateOrderStatus(ctx context.Context, id int, status models.OrderStatus) (models.Order, error)

	Close() error
}

type Kind string

const (
	KindMemory Kind = "memory"
	KindGorm   Kind = "gorm"
)

// Select decides the provider from configuration alone.
func Select(cfg *config.Config) Kind {
	if cfg.UsesDatabase() {
		return KindGorm
	}
	return KindMemory
}

// New builds the configured provider, seeds the default menu when empty and
// wraps it with the Redis menu cache when REDIS_ADDR is set.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	var s Store
	switch Select(cfg) {
	case KindGorm:
		db, err := database.Open(cfg)
		if err != nil {
			return nil, err
		}
		gs, err := NewGormStore(db)
		if err != nil {
			return nil, err
		}
		n, err := Seed(ctx, gs, DefaultMenuItems())
		if err != nil {
			gs.Close()
			return nil, fmt.Errorf("seed menu: %w", err)
		}
		if n > 0 {
			utils.InfoLogger.Printf("Inserted %d default menu items", n)
		}
		s = gs
	default:
		s = NewMemoryStore()
	}
	utils.InfoLogger.Printf("Using %s storage", Select(cfg))

	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(ctx, cfg)
		if err != nil {
			s.Close()
			return nil, err
		}
		s = NewCachedStore(s, cache.NewMenuCache(rdb, cfg.MenuCacheTTL))
		utils.InfoLogger.Printf("Menu cache enabled at %s", cfg.RedisAddr)
	}
	return s, nil
}

// Seed inserts items only when the provider has no menu yet and returns how
// many were inserted.
func Seed(ctx context.Context, s Store, items []models.MenuItem) (int, error) {
	existing, err := s.GetAllMenuItems(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i, item := range items {
		if _, err := s.CreateMenuItem(ctx, item); err != nil {
			return i, fmt.Errorf("insert %q: %w", item.Name, err)
		}
	}
	return len(items), nil
}
