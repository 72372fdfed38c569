// Package cache holds the Redis read-through cache for menu queries.
// Every Redis failure is logged and reported as a miss so callers fall
// back to the store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yeremiapane/seblak-listyaning/models"
	"github.com/yeremiapane/seblak-listyaning/utils"
)

const (
	allMenuKey    = "menu:all"
	generationKey = "menu:gen"
	DefaultTTL    = 5 * time.Minute
)

var errStaleFill = errors.New("menu cache invalidated during read")

func categoryKey(category string) string {
	return fmt.Sprintf("menu:category:%s", category)
}

func itemKey(id int) string {
	return fmt.Sprintf("menu:item:%d", id)
}

type MenuCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewMenuCache(rdb *redis.Client, ttl time.Duration) *MenuCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MenuCache{redis: rdb, ttl: ttl}
}

func (c *MenuCache) get(ctx context.Context, key string, dst interface{}) bool {
	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if err := json.Unmarshal(data, dst); err != nil {
			utils.ErrorLogger.Printf("Failed to unmarshal cached %s (continuing with store): %v", key, err)
			return false
		}
		return true
	case errors.Is(err, redis.Nil):
		return false
	default:
		utils.ErrorLogger.Printf("Redis error on %s (continuing with store): %v", key, err)
		return false
	}
}

// Generation returns the invalidation counter. Readers take it before
// querying the store and hand it to the setter, which drops the fill when
// an invalidation landed in between. ok is false when Redis is unreachable.
func (c *MenuCache) Generation(ctx context.Context) (int64, bool) {
	n, err := c.redis.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		utils.ErrorLogger.Printf("Redis error on %s (skipping cache fill): %v", generationKey, err)
		return 0, false
	}
	return n, true
}

// setIfCurrent writes key only while the counter still equals gen. WATCH
// makes the check and the write atomic against other instances.
func (c *MenuCache) setIfCurrent(ctx context.Context, gen int64, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to marshal %s: %v", key, err)
		return
	}
	err = c.redis.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if n != gen {
			return errStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, data, c.ttl)
			return nil
		})
		return err
	}, generationKey)
	switch {
	case err == nil:
	case errors.Is(err, errStaleFill), errors.Is(err, redis.TxFailedErr):
		utils.InfoLogger.Printf("Skipped caching %s: menu changed during read", key)
	default:
		utils.ErrorLogger.Printf("Failed to cache %s: %v", key, err)
	}
}

func (c *MenuCache) GetAll(ctx context.Context) ([]models.MenuItem, bool) {
	var items []models.MenuItem
	ok := c.get(ctx, allMenuKey, &items)
	return items, ok
}

func (c *MenuCache) SetAll(ctx context.Context, gen int64, items []models.MenuItem) {
	c.setIfCurrent(ctx, gen, allMenuKey, items)
}

func (c *MenuCache) GetCategory(ctx context.Context, category string) ([]models.MenuItem, bool) {
	var items []models.MenuItem
	ok := c.get(ctx, categoryKey(category), &items)
	return items, ok
}

func (c *MenuCache) SetCategory(ctx context.Context, gen int64, category string, items []models.MenuItem) {
	c.setIfCurrent(ctx, gen, categoryKey(category), items)
}

func (c *MenuCache) GetItem(ctx context.Context, id int) (models.MenuItem, bool) {
	var item models.MenuItem
	ok := c.get(ctx, itemKey(id), &item)
	return item, ok
}

func (c *MenuCache) SetItem(ctx context.Context, gen int64, item models.MenuItem) {
	c.setIfCurrent(ctx, gen, itemKey(item.ID), item)
}

// Invalidate drops the full listing, the given categories and item ids,
// and bumps the generation so in-flight fills are discarded. Pass id 0 to
// skip the item key.
func (c *MenuCache) Invalidate(ctx context.Context, id int, categories ...string) {
	keys := []string{allMenuKey}
	if id > 0 {
		keys = append(keys, itemKey(id))
	}
	for _, category := range categories {
		if category != "" {
			keys = append(keys, categoryKey(category))
		}
	}
	_, err := c.redis.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, keys...)
		p.Incr(ctx, generationKey)
		return nil
	})
	if err != nil {
		utils.ErrorLogger.Printf("Failed to invalidate menu cache %v: %v", keys, err)
	}
}

func (c *MenuCache) Close() error {
	return c.redis.Close()
}
