package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/seblak-listyaning/apperr"
	"github.com/yeremiapane/seblak-listyaning/models"
	"github.com/yeremiapane/seblak-listyaning/orders"
	"github.com/yeremiapane/seblak-listyaning/store"
	"github.com/yeremiapane/seblak-listyaning/utils"
)

type OrderController struct {
	Store store.Store
}

func NewOrderController(s store.Store) *OrderController {
	return &OrderController{Store: s}
}

type statusRequest struct {
	Status *string `json:"status"`
}

// CreateOrder POST /api/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req models.NewOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondAppError(c, bindingError(err, "Invalid order data"), "Failed to create order")
		return
	}

	order, err := oc.Store.CreateOrder(c.Request.Context(), req)
	if err != nil {
		utils.RespondAppError(c, err, "Failed to create order")
		return
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"service_type": order.ServiceType,
		"total":        order.TotalAmount,
		"request_id":   c.GetString("request_id"),
	}).Info("Order created")
	utils.RespondJSON(c, http.StatusCreated, order)
}

// GetOrder GET /api/orders/:id
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondAppError(c, err, "Failed to fetch order")
		return
	}
	order, err := oc.Store.GetOrder(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err, "Failed to fetch order")
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

// GetAllOrders GET /api/orders and GET /api/admin/orders
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	list, err := oc.Store.GetAllOrders(c.Request.Context())
	if err != nil {
		utils.RespondAppError(c, err, "Failed to fetch orders")
		return
	}
	utils.RespondJSON(c, http.StatusOK, list)
}

// UpdateOrderStatus PATCH /api/orders/:id/status and /api/admin/orders/:id/status.
// The status must be one of the known values; any transition is allowed.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondAppError(c, err, "Failed to update order status")
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == nil || *req.Status == "" {
		utils.RespondAppError(c, apperr.InvalidField("status", "required"), "Failed to update order status")
		return
	}
	status, err := orders.ParseStatus(*req.Status)
	if err != nil {
		utils.RespondAppError(c, err, "Failed to update order status")
		return
	}

	order, err := oc.Store.UpdateOrderStatus(c.Request.Context(), id, status)
	if err != nil {
		utils.RespondAppError(c, err, "Failed to update order status")
		return
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":   order.ID,
		"status":     order.Status,
		"request_id": c.GetString("request_id"),
	}).Info("Order status updated")
	utils.RespondJSON(c, http.StatusOK, order)
}

// GetReceipt GET /api/orders/:id/receipt
func (oc *OrderController) GetReceipt(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RespondAppError(c, err, "Failed to build receipt")
		return
	}
	order, err := oc.Store.GetOrder(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err, "Failed to build receipt")
		return
	}
	utils.RespondJSON(c, http.StatusOK, orders.BuildReceipt(order))
}

// GetOrderStats GET /api/admin/orders/stats
func (oc *OrderController) GetOrderStats(c *gin.Context) {
	list, err := oc.Store.GetAllOrders(c.Request.Context())
	if err != nil {
		utils.RespondAppError(c, err, "Failed to fetch order stats")
		return
	}
	utils.RespondJSON(c, http.StatusOK, orders.CalculateStats(list))
}
