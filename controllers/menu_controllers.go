package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/seblak-listyaning/store"
	"github.com/yeremiapane/seblak-listyaning/utils"
)

type MenuController struct {
	Store store.Store
}

func NewMenuController(s store.Store) *MenuController {
	return &MenuController{Store: s}
}

// GetAllMenuItems GET /api/menu
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	items, err := mc.Store.GetAllMenuItems(c.Request.Context())
	if err != nil {
		utils.RespondAppError(c, err, "Failed to fetch menu items")
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

// GetMenuItemsByCategory GET /api/menu/category/:category
func (mc *MenuController) GetMenuItemsByCategory(c *gin.Context) {
	items, err := mc.Store.GetMenuItemsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		utils.RespondAppError(c, err, "Failed to fetch menu items")
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}
