// Package client talks to the ordering API over HTTP. The storefront CLI
// and the admin order watcher use it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yeremiapane/seblak-listyaning/apperr"
	"github.com/yeremiapane/seblak-listyaning/inventory"
	"github.com/yeremiapane/seblak-listyaning/models"
	"github.com/yeremiapane/seblak-listyaning/orders"
)

const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx response that is neither a validation failure nor
// a missing resource.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL, e.g. http://localhost:5000. A nil
// httpClient gets one with DefaultTimeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// do sends body as JSON and decodes a 2xx response into out. 400 maps to
// *apperr.ValidationError and 404 to *apperr.NotFoundError so callers can
// use the same checks as against a local store.
func (c *Client) do(ctx context.Context, method, path string, id int, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var eb errorBody
		if jsonErr := json.Unmarshal(data, &eb); jsonErr != nil || eb.Message == "" {
			eb.Message = http.StatusText(resp.StatusCode)
		}
		switch resp.StatusCode {
		case http.StatusBadRequest:
			return &apperr.ValidationError{Message: eb.Message, Fields: eb.Errors}
		case http.StatusNotFound:
			resource := "resource"
			if strings.Contains(path, "/inventory") || strings.Contains(path, "/menu") {
				resource = "menu item"
			} else if strings.Contains(path, "/orders") {
				resource = "order"
			}
			return apperr.NotFound(resource, id)
		default:
			return &APIError{StatusCode: resp.StatusCode, Message: eb.Message}
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := c.do(ctx, http.MethodGet, "/api/menu", 0, nil, &items)
	return items, err
}

func (c *Client) ListMenuByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := c.do(ctx, http.MethodGet, "/api/menu/category/"+url.PathEscape(category), 0, nil, &items)
	return items, err
}

// CreateOrder satisfies cart.OrderCreator.
func (c *Client) CreateOrder(ctx context.Context, order models.NewOrder) (models.Order, error) {
	var created models.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", 0, order, &created)
	return created, err
}

func (c *Client) GetOrder(ctx context.Context, id int) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), id, nil, &order)
	return order, err
}

func (c *Client) GetReceipt(ctx context.Context, id int) (models.Receipt, error) {
	var receipt models.Receipt
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d/receipt", id), id, nil, &receipt)
	return receipt, err
}

func (c *Client) ListAdminOrders(ctx context.Context) ([]models.Order, error) {
	var list []models.Order
	err := c.do(ctx, http.MethodGet, "/api/admin/orders", 0, nil, &list)
	return list, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status models.OrderStatus) (models.Order, error) {
	var order models.Order
	body := map[string]models.OrderStatus{"status": status}
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/admin/orders/%d/status", id), id, body, &order)
	return order, err
}

func (c *Client) OrderStats(ctx context.Context) (orders.Stats, error) {
	var stats orders.Stats
	err := c.do(ctx, http.MethodGet, "/api/admin/orders/stats", 0, nil, &stats)
	return stats, err
}

func (c *Client) ListInventory(ctx context.Context) ([]inventory.Entry, error) {
	var entries []inventory.Entry
	err := c.do(ctx, http.MethodGet, "/api/admin/inventory", 0, nil, &entries)
	return entries, err
}

func (c *Client) UpdateStock(ctx context.Context, id, stockQuantity, lowStockThreshold int) (models.MenuItem, error) {
	var item models.MenuItem
	body := map[string]int{"stockQuantity": stockQuantity, "lowStockThreshold": lowStockThreshold}
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/admin/inventory/%d", id), id, body, &item)
	return item, err
}

func (c *Client) UpdateAvailability(ctx context.Context, id, isAvailable int) (models.MenuItem, error) {
	var item models.MenuItem
	body := map[string]int{"isAvailable": isAvailable}
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/admin/inventory/%d/availability", id), id, body, &item)
	return item, err
}

func (c *Client) CreateMenuItem(ctx context.Context, item models.NewMenuItem) (models.MenuItem, error) {
	var created models.MenuItem
	err := c.do(ctx, http.MethodPost, "/api/admin/inventory", 0, item, &created)
	return created, err
}
