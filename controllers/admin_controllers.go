package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/seblak-listyaning/apperr"
	"github.com/yeremiapane/seblak-listyaning/inventory"
	"github.com/yeremiapane/seblak-listyaning/models"
	"github.com/yeremiapane/seblak-listyaning/store"
	"github.com/yeremiapane/seblak-listyaning/utils"
)

// AdminController serves the inventory side of the admin dashboard. Admin
// order routes reuse OrderController.
type AdminController struct {
	Store store.Store
}

func NewAdminController(s store.Store) *AdminController {
	return &AdminController{Store: s}
}

type stockRequest struct {
	StockQuantity     numberField `json:"stockQuantity"`
	LowStockThreshold numberField `json:"lowStockThreshold"`
}

type availabilityRequest struct {
	IsAvailable numberField `json:"isAvailable"`
}

// InventoryStatsResponse is the dashboard summary card data.
type InventoryStatsResponse struct {
	models.InventoryStats
	ByStatus map[models.StockStatus]int `json:"byStatus"`
}

// GetInventory GET /api/admin/inventory
func (ac *AdminController) GetInventory(c *gin.Context) {
	items, err := ac.Store.GetAllMenuItems(c.Request.Context())
	if err != nil {
		utils.RespondAppError(c, err, "Failed to fetch inventory")
		return
	}
	utils.RespondJSON(c, http.StatusOK, inventory.Annotate(items))
}

// GetInventoryStats GET /api/admin/inventory/stats
func (ac *AdminController) GetInventoryStats(c *gin.Context) {
	items, err := ac.Store.GetAllMenuItems(c.Request.Context())
	if err != nil {
		utils.RespondAppError(c, err, "Failed to fetch inventory stats")
		return
	}
	utils.RespondJSON(c, http.StatusOK, InventoryStatsResponse{
		InventoryStats: inventory.CalculateInventoryStats(items),
		ByStatus:       inventory.CountByStatus(items),
	})
}

// UpdateStock PATCH /api/admin/inventory/:id
func (ac *AdminController) UpdateStock(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondAppError(c, err, "Failed to update stock")
		return
	}

	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondAppError(c, apperr.Invalid("Invalid stock values: must be numbers"), "Failed to update stock")
		return
	}
	f := apperr.FieldErrors{}
	if !req.StockQuantity.Set {
		f.Add("stockQuantity", "required")
	}
	if !req.LowStockThreshold.Set {
		f.Add("lowStockThreshold", "required")
	}
	if err := f.Err("Invalid stock values"); err != nil {
		utils.RespondAppError(c, err, "Failed to update stock")
		return
	}

	item, err := ac.Store.UpdateMenuItemStock(c.Request.Context(), id, req.StockQuantity.Value, req.LowStockThreshold.Value)
	if err != nil {
		utils.RespondAppError(c, err, "Failed to update stock")
		return
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"menu_item_id": item.ID,
		"stock":        item.StockQuantity,
		"threshold":    item.LowStockThreshold,
		"request_id":   c.GetString("request_id"),
	}).Info("Stock updated")
	utils.RespondJSON(c, http.StatusOK, item)
}

// UpdateAvailability PATCH /api/admin/inventory/:id/availability
func (ac *AdminController) UpdateAvailability(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondAppError(c, err, "Failed to update availability")
		return
	}

	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.IsAvailable.Set {
		utils.RespondAppError(c, apperr.InvalidField("isAvailable", "must be 0 or 1"), "Failed to update availability")
		return
	}

	item, err := ac.Store.UpdateMenuItemAvailability(c.Request.Context(), id, req.IsAvailable.Value)
	if err != nil {
		utils.RespondAppError(c, err, "Failed to update availability")
		return
	}
	utils.RespondJSON(c, http.StatusOK, item)
}

// CreateMenuItem POST /api/admin/inventory
func (ac *AdminController) CreateMenuItem(c *gin.Context) {
	var req models.NewMenuItem
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondAppError(c, bindingError(err, "Invalid menu item"), "Failed to create menu item")
		return
	}

	item, err := ac.Store.CreateMenuItem(c.Request.Context(), req.Build())
	if err != nil {
		utils.RespondAppError(c, err, "Failed to create menu item")
		return
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"menu_item_id": item.ID,
		"category":     item.Category,
		"request_id":   c.GetString("request_id"),
	}).Info("Menu item created")
	utils.RespondJSON(c, http.StatusCreated, item)
}
