package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yeremiapane/seblak-listyaning/apperr"
	"github.com/yeremiapane/seblak-listyaning/inventory"
	"github.com/yeremiapane/seblak-listyaning/models"
	"github.com/yeremiapane/seblak-listyaning/orders"
)

// MemoryStore keeps everything for the lifetime of the process and is
// reseeded with the default menu on construction.
type MemoryStore struct {
	mu          sync.RWMutex
	menuItems   map[int]models.MenuItem
	orders      map[int]models.Order
	nextMenuID  int
	nextOrderID int
	now         func() time.Time
}

// NewMemoryStore returns a store seeded with DefaultMenuItems.
func NewMemoryStore() *MemoryStore {
	s := NewEmptyMemoryStore()
	for _, item := range DefaultMenuItems() {
		item.ID = s.nextMenuID
		s.nextMenuID++
		s.menuItems[item.ID] = item
	}
	return s
}

// NewEmptyMemoryStore returns a store with no menu items.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{
		menuItems:   make(map[int]models.MenuItem),
		orders:      make(map[int]models.Order),
		nextMenuID:  1,
		nextOrderID: 1,
		now:         time.Now,
	}
}

func (s *MemoryStore) sortedMenu(keep func(models.MenuItem) bool) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(s.menuItems))
	for _, item := range s.menuItems {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryStore) GetAllMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedMenu(func(models.MenuItem) bool { return true }), nil
}

func (s *MemoryStore) GetMenuItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedMenu(func(m models.MenuItem) bool { return m.Category == category }), nil
}

func (s *MemoryStore) GetMenuItem(ctx context.Context, id int) (models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.menuItems[id]
	if !ok {
		return models.MenuItem{}, apperr.NotFound("menu item", id)
	}
	return item, nil
}

func (s *MemoryStore) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if err := inventory.ValidateNewMenuItem(item); err != nil {
		return models.MenuItem{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextMenuID
	s.nextMenuID++
	s.menuItems[item.ID] = item
	return item, nil
}

func (s *MemoryStore) UpdateMenuItemStock(ctx context.Context, id, stockQuantity, lowStockThreshold int) (models.MenuItem, error) {
	if err := inventory.ValidateStockUpdate(stockQuantity, lowStockThreshold); err != nil {
		return models.MenuItem{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.menuItems[id]
	if !ok {
		return models.MenuItem{}, apperr.NotFound("menu item", id)
	}
	item.StockQuantity = stockQuantity
	item.LowStockThreshold = lowStockThreshold
	s.menuItems[id] = item
	return item, nil
}

func (s *MemoryStore) UpdateMenuItemAvailability(ctx context.Context, id, isAvailable int) (models.MenuItem, error) {
	if err := inventory.ValidateAvailability(isAvailable); err != nil {
		return models.MenuItem{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.menuItems[id]
	if !ok {
		return models.MenuItem{}, apperr.NotFound("menu item", id)
	}
	item.IsAvailable = isAvailable
	s.menuItems[id] = item
	return item, nil
}

func (s *MemoryStore) CreateOrder(ctx context.Context, in models.NewOrder) (models.Order, error) {
	prepared, err := orders.PrepareNewOrder(in)
	if err != nil {
		return models.Order{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order := models.Order{
		ID:              s.nextOrderID,
		CustomerName:    prepared.CustomerName,
		CustomerPhone:   prepared.CustomerPhone,
		CustomerAddress: prepared.CustomerAddress,
		ServiceType:     prepared.ServiceType,
		PaymentMethod:   prepared.PaymentMethod,
		Notes:           prepared.Notes,
		Items:           prepared.Items,
		TotalAmount:     prepared.TotalAmount,
		Status:          orders.InitialStatus,
		CreatedAt:       s.now(),
	}
	s.nextOrderID++
	s.orders[order.ID] = order
	return order.Clone(), nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, id int) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, apperr.NotFound("order", id)
	}
	return order.Clone(), nil
}

func (s *MemoryStore) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *MemoryStore) UpdateOrderStatus(ctx context.Context, id int, status models.OrderStatus) (models.Order, error) {
	if _, err := orders.ParseStatus(string(status)); err != nil {
		return models.Order{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, apperr.NotFound("order", id)
	}
	order.Status = status
	s.orders[id] = order
	return order.Clone(), nil
}

func (s *MemoryStore) Close() error { return nil }

func sortNewestFirst(list []models.Order) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
}
