package store

import (
	"context"

	"github.com/yeremiapane/seblak-listyaning/cache"
	"github.com/yeremiapane/seblak-listyaning/models"
)

// CachedStore serves menu reads from Redis and invalidates on every menu
// write. Orders always go to the wrapped store. A fill that raced with an
// invalidation is dropped, so a stale listing never outlives the write.
type CachedStore struct {
	Store
	menu *cache.MenuCache
}

func NewCachedStore(s Store, menu *cache.MenuCache) *CachedStore {
	return &CachedStore{Store: s, menu: menu}
}

func (c *CachedStore) GetAllMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	if items, ok := c.menu.GetAll(ctx); ok {
		return items, nil
	}
	gen, fill := c.menu.Generation(ctx)
	items, err := c.Store.GetAllMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	if fill {
		c.menu.SetAll(ctx, gen, items)
	}
	return items, nil
}

func (c *CachedStore) GetMenuItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	if items, ok := c.menu.GetCategory(ctx, category); ok {
		return items, nil
	}
	gen, fill := c.menu.Generation(ctx)
	items, err := c.Store.GetMenuItemsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if fill {
		c.menu.SetCategory(ctx, gen, category, items)
	}
	return items, nil
}

func (c *CachedStore) GetMenuItem(ctx context.Context, id int) (models.MenuItem, error) {
	if item, ok := c.menu.GetItem(ctx, id); ok {
		return item, nil
	}
	gen, fill := c.menu.Generation(ctx)
	item, err := c.Store.GetMenuItem(ctx, id)
	if err != nil {
		return models.MenuItem{}, err
	}
	if fill {
		c.menu.SetItem(ctx, gen, item)
	}
	return item, nil
}

func (c *CachedStore) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	created, err := c.Store.CreateMenuItem(ctx, item)
	if err != nil {
		return models.MenuItem{}, err
	}
	c.menu.Invalidate(ctx, 0, created.Category)
	return created, nil
}

func (c *CachedStore) UpdateMenuItemStock(ctx context.Context, id, stockQuantity, lowStockThreshold int) (models.MenuItem, error) {
	updated, err := c.Store.UpdateMenuItemStock(ctx, id, stockQuantity, lowStockThreshold)
	if err != nil {
		return models.MenuItem{}, err
	}
	c.menu.Invalidate(ctx, id, updated.Category)
	return updated, nil
}

func (c *CachedStore) UpdateMenuItemAvailability(ctx context.Context, id, isAvailable int) (models.MenuItem, error) {
	updated, err := c.Store.UpdateMenuItemAvailability(ctx, id, isAvailable)
	if err != nil {
		return models.MenuItem{}, err
	}
	c.menu.Invalidate(ctx, id, updated.Category)
	return updated, nil
}

func (c *CachedStore) Close() error {
	err := c.Store.Close()
	if cerr := c.menu.Close(); err == nil {
		err = cerr
	}
	return err
}
