// Package cart is the customer's in-progress selection. It never reserves
// stock and never talks to the network on its own.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/yeremiapane/seblak-listyaning/apperr"
	"github.com/yeremiapane/seblak-listyaning/models"
)

// StorageKey names the persisted cart, matching the storefront's local
// storage key.
const StorageKey = "seblak-cart"

// Cart holds at most one entry per item id.
type Cart struct {
	mu     sync.Mutex
	items  []models.CartItem
	isOpen bool
}

func New() *Cart {
	return &Cart{}
}

// AddItem adds one unit. The quantity on the argument is ignored: a new
// entry starts at 1 and an existing entry is incremented by 1.
func (c *Cart) AddItem(item models.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.items = append(c.items, item)
}

// AddMenuItem is AddItem for a menu entry.
func (c *Cart) AddMenuItem(m models.MenuItem) {
	c.AddItem(models.CartItem{
		ID:    strconv.Itoa(m.ID),
		Name:  m.Name,
		Price: m.Price,
		Image: m.Image,
	})
}

func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

func (c *Cart) removeLocked(id string) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

// UpdateQuantity sets the quantity. Zero or below removes the entry.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) Open() {
	c.mu.Lock()
	c.isOpen = true
	c.mu.Unlock()
}

func (c *Cart) Close() {
	c.mu.Lock()
	c.isOpen = false
	c.mu.Unlock()
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isOpen
}

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, it := range c.items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

// --- Persistence ---

type persisted struct {
	Items []models.CartItem `json:"items"`
}

// Load reads a cart saved by Save. A missing file is an empty cart.
func Load(path string) (*Cart, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	c := New()
	for _, it := range p.Items {
		if it.Quantity > 0 {
			c.items = append(c.items, it)
		}
	}
	return c, nil
}

// Save writes the entries (not the open flag) to path.
func (c *Cart) Save(path string) error {
	data, err := json.MarshalIndent(persisted{Items: c.Items()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// --- Checkout ---

// OrderCreator is anything that can place an order: the API client or a
// storage provider.
type OrderCreator interface {
	CreateOrder(ctx context.Context, order models.NewOrder) (models.Order, error)
}

// CheckoutDetails is the customer part of the checkout form.
type CheckoutDetails struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	ServiceType     models.ServiceType
	PaymentMethod   models.PaymentMethod
	Notes           *string
}

// Snapshot freezes the current entries into an order payload.
func (c *Cart) Snapshot(d CheckoutDetails) (models.NewOrder, error) {
	items := c.Items()
	if len(items) == 0 {
		return models.NewOrder{}, apperr.InvalidField("items", "cart is empty")
	}
	order := models.NewOrder{
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		CustomerAddress: d.CustomerAddress,
		ServiceType:     d.ServiceType,
		PaymentMethod:   d.PaymentMethod,
		Notes:           d.Notes,
		Items:           make([]models.OrderLine, len(items)),
	}
	for i, it := range items {
		id, err := strconv.Atoi(it.ID)
		if err != nil {
			return models.NewOrder{}, apperr.InvalidField(fmt.Sprintf("items[%d].id", i), "not a menu item id")
		}
		order.Items[i] = models.OrderLine{ID: id, Name: it.Name, Price: it.Price, Quantity: it.Quantity}
		order.TotalAmount += it.Price * int64(it.Quantity)
	}
	return order, nil
}

// Checkout submits the snapshot and clears the cart only when the order
// was created.
func (c *Cart) Checkout(ctx context.Context, creator OrderCreator, d CheckoutDetails) (models.Order, error) {
	payload, err := c.Snapshot(d)
	if err != nil {
		return models.Order{}, err
	}
	order, err := creator.CreateOrder(ctx, payload)
	if err != nil {
		return models.Order{}, err
	}
	c.Clear()
	c.Close()
	return order, nil
}
