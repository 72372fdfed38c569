package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/seblak-listyaning/apperr"
	"github.com/yeremiapane/seblak-listyaning/config"
	"github.com/yeremiapane/seblak-listyaning/models"
	"github.com/yeremiapane/seblak-listyaning/router"
	"github.com/yeremiapane/seblak-listyaning/store"
)

// setupRouter serves the production routes over s with limits and origin
// checks off.
func setupRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return router.SetupRouter(s, &config.Config{})
}

func perform(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func validOrderPayload() map[string]interface{} {
	return map[string]interface{}{
		"customerName":    "Siti",
		"customerPhone":   "081234567890",
		"customerAddress": "Jl. Merdeka No. 10, Bandung",
		"serviceType":     "diantar",
		"paymentMethod":   "cash",
		"notes":           "level 3",
		"items": []map[string]interface{}{
			{"id": 1, "name": "Seblak", "price": 15000, "quantity": 2},
		},
		"totalAmount": 30000,
	}
}

// brokenStore fails every call with a provider error.
type brokenStore struct{}

var errBackend = apperr.Provider("query", errors.New("connection reset"))

func (brokenStore) GetAllMenuItems(context.Context) ([]models.MenuItem, error) { return nil, errBackend }
func (brokenStore) GetMenuItemsByCategory(context.Context, string) ([]models.MenuItem, error) {
	return nil, errBackend
}
func (brokenStore) GetMenuItem(context.Context, int) (models.MenuItem, error) {
	return models.MenuItem{}, errBackend
}
func (brokenStore) CreateMenuItem(context.Context, models.MenuItem) (models.MenuItem, error) {
	return models.MenuItem{}, errBackend
}
func (brokenStore) UpdateMenuItemStock(context.Context, int, int, int) (models.MenuItem, error) {
	return models.MenuItem{}, errBackend
}
func (brokenStore) UpdateMenuItemAvailability(context.Context, int, int) (models.MenuItem, error) {
	return models.MenuItem{}, errBackend
}
func (brokenStore) CreateOrder(context.Context, models.NewOrder) (models.Order, error) {
	return models.Order{}, errBackend
}
func (brokenStore) GetOrder(context.Context, int) (models.Order, error) {
	return models.Order{}, errBackend
}
func (brokenStore) GetAllOrders(context.Context) ([]models.Order, error) { return nil, errBackend }
func (brokenStore) UpdateOrderStatus(context.Context, int, models.OrderStatus) (models.Order, error) {
	return models.Order{}, errBackend
}
func (brokenStore) Close() error { return nil }
