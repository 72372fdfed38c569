package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/seblak-listyaning/controllers"
	"github.com/yeremiapane/seblak-listyaning/inventory"
	"github.com/yeremiapane/seblak-listyaning/models"
	"github.com/yeremiapane/seblak-listyaning/store"
)

func TestGetInventoryAnnotatesStatus(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())

	w := perform(r, http.MethodGet, "/api/admin/inventory", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var entries []inventory.Entry
	decode(t, w, &entries)
	require.Len(t, entries, len(store.DefaultMenuItems()))
	assert.Equal(t, "Seblak Original", entries[0].Name)
	assert.Equal(t, models.StockInStock, entries[0].StockStatus)
	assert.Equal(t, "Tersedia", entries[0].StockStatusText)

	last := entries[len(entries)-1]
	assert.Equal(t, models.StockUnavailable, last.StockStatus)
}

func TestUpdateStock(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())

	w := perform(r, http.MethodPatch, "/api/admin/inventory/5", map[string]int{"stockQuantity": 3, "lowStockThreshold": 5})
	assert.Equal(t, http.StatusOK, w.Code)
	var item models.MenuItem
	decode(t, w, &item)
	assert.Equal(t, 5, item.ID)
	assert.Equal(t, 3, item.StockQuantity)
	assert.Equal(t, 5, item.LowStockThreshold)

	// quoted digits are not numbers
	w = perform(r, http.MethodPatch, "/api/admin/inventory/5", map[string]string{"stockQuantity": "12", "lowStockThreshold": "4"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodGet, "/api/menu", nil)
	var items []models.MenuItem
	decode(t, w, &items)
	assert.Equal(t, 3, items[4].StockQuantity)
}

func TestUpdateStockRejected(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())

	cases := map[string]interface{}{
		"negative stock": map[string]int{"stockQuantity": -1, "lowStockThreshold": 5},
		"zero threshold": map[string]int{"stockQuantity": 1, "lowStockThreshold": 0},
		"non numeric":    map[string]string{"stockQuantity": "abc", "lowStockThreshold": "5"},
		"numeric string": map[string]string{"stockQuantity": "7", "lowStockThreshold": "3"},
		"mixed string":   map[string]interface{}{"stockQuantity": 7, "lowStockThreshold": "3"},
		"fractional":     map[string]float64{"stockQuantity": 1.5, "lowStockThreshold": 5},
		"missing fields": map[string]int{},
		"malformed json": "{",
		"threshold only": map[string]int{"lowStockThreshold": 5},
		"boolean values": map[string]bool{"stockQuantity": true, "lowStockThreshold": true},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := perform(r, http.MethodPatch, "/api/admin/inventory/5", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	w := perform(r, http.MethodGet, "/api/menu", nil)
	var items []models.MenuItem
	decode(t, w, &items)
	assert.Equal(t, 35, items[4].StockQuantity, "item unchanged")

	w = perform(r, http.MethodPatch, "/api/admin/inventory/9999", map[string]int{"stockQuantity": 1, "lowStockThreshold": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAvailability(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())

	w := perform(r, http.MethodPatch, "/api/admin/inventory/5/availability", map[string]int{"isAvailable": 0})
	assert.Equal(t, http.StatusOK, w.Code)
	var item models.MenuItem
	decode(t, w, &item)
	assert.Equal(t, 0, item.IsAvailable)

	w = perform(r, http.MethodPatch, "/api/admin/inventory/5/availability", map[string]int{"isAvailable": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body errorBody
	decode(t, w, &body)
	assert.Contains(t, body.Errors, "isAvailable")

	w = perform(r, http.MethodPatch, "/api/admin/inventory/5/availability", map[string]int{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, raw := range []string{`{"isAvailable":"1"}`, `{"isAvailable":"0"}`, `{"isAvailable":true}`} {
		w = perform(r, http.MethodPatch, "/api/admin/inventory/5/availability", raw)
		assert.Equal(t, http.StatusBadRequest, w.Code, raw)
		decode(t, w, &body)
		assert.Equal(t, "must be 0 or 1", body.Errors["isAvailable"], raw)
	}

	w = perform(r, http.MethodGet, "/api/menu", nil)
	var items []models.MenuItem
	decode(t, w, &items)
	assert.Equal(t, 0, items[4].IsAvailable, "rejected bodies leave the flag alone")

	w = perform(r, http.MethodPatch, "/api/admin/inventory/9999/availability", map[string]int{"isAvailable": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func newMenuPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":              "Seblak Tulang",
		"description":       "Tulang ayam dengan kuah seblak",
		"price":             22000,
		"category":          "seblak",
		"image":             "/images/seblak-tulang.jpg",
		"spicyLevel":        "level 1-5",
		"stockQuantity":     10,
		"lowStockThreshold": 3,
		"unit":              "porsi",
		"isAvailable":       1,
	}
}

func TestCreateMenuItem(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())

	w := perform(r, http.MethodPost, "/api/admin/inventory", newMenuPayload())
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item models.MenuItem
	decode(t, w, &item)
	assert.Equal(t, len(store.DefaultMenuItems())+1, item.ID)
	assert.Equal(t, models.DefaultRating, item.Rating)
	assert.Equal(t, 0, item.ReviewCount)
	assert.Equal(t, 1, item.IsAvailable)

	w = perform(r, http.MethodGet, "/api/menu/category/seblak", nil)
	var items []models.MenuItem
	decode(t, w, &items)
	assert.Len(t, items, 6)
}

func TestCreateMenuItemAvailabilityDefault(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())

	p := newMenuPayload()
	delete(p, "isAvailable")
	w := perform(r, http.MethodPost, "/api/admin/inventory", p)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item models.MenuItem
	decode(t, w, &item)
	assert.Equal(t, 1, item.IsAvailable)

	p["isAvailable"] = 0
	w = perform(r, http.MethodPost, "/api/admin/inventory", p)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decode(t, w, &item)
	assert.Equal(t, 0, item.IsAvailable)
}

func TestCreateMenuItemValidation(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())

	cases := map[string]struct {
		mutate func(p map[string]interface{})
		field  string
	}{
		"missing name":   {func(p map[string]interface{}) { delete(p, "name") }, "name"},
		"zero price":     {func(p map[string]interface{}) { p["price"] = 0 }, "price"},
		"negative stock": {func(p map[string]interface{}) { p["stockQuantity"] = -2 }, "stockQuantity"},
		"bad threshold":  {func(p map[string]interface{}) { p["lowStockThreshold"] = 0 }, "lowStockThreshold"},
		"bad available":  {func(p map[string]interface{}) { p["isAvailable"] = 3 }, "isAvailable"},
		"string price":   {func(p map[string]interface{}) { p["price"] = "murah" }, "price"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := newMenuPayload()
			tc.mutate(p)
			w := perform(r, http.MethodPost, "/api/admin/inventory", p)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			var body errorBody
			decode(t, w, &body)
			assert.Contains(t, body.Errors, tc.field, w.Body.String())
		})
	}
}

func TestGetInventoryStats(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())
	perform(r, http.MethodPatch, "/api/admin/inventory/1", map[string]int{"stockQuantity": 2, "lowStockThreshold": 5})
	perform(r, http.MethodPatch, "/api/admin/inventory/2", map[string]int{"stockQuantity": 0, "lowStockThreshold": 5})

	w := perform(r, http.MethodGet, "/api/admin/inventory/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var stats controllers.InventoryStatsResponse
	decode(t, w, &stats)
	assert.Equal(t, 11, stats.Total)
	assert.Equal(t, 9, stats.Available)
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 2, stats.OutOfStock)
	assert.Equal(t, 1, stats.ByStatus[models.StockUnavailable])
	assert.Equal(t, 1, stats.ByStatus[models.StockOutOfStock])
}

func TestAdminProviderFailure(t *testing.T) {
	r := setupRouter(brokenStore{})

	for _, tc := range []struct {
		method, path string
		body         interface{}
	}{
		{http.MethodGet, "/api/admin/inventory", nil},
		{http.MethodGet, "/api/admin/inventory/stats", nil},
		{http.MethodPatch, "/api/admin/inventory/1", map[string]int{"stockQuantity": 1, "lowStockThreshold": 1}},
		{http.MethodPatch, "/api/admin/inventory/1/availability", map[string]int{"isAvailable": 1}},
		{http.MethodPost, "/api/admin/inventory", newMenuPayload()},
	} {
		w := perform(r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, tc.path)
	}
}
