package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/seblak-listyaning/config"
	"github.com/yeremiapane/seblak-listyaning/controllers"
	"github.com/yeremiapane/seblak-listyaning/middlewares"
	"github.com/yeremiapane/seblak-listyaning/store"
	"github.com/yeremiapane/seblak-listyaning/utils"
)

func SetupRouter(s store.Store, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigins))
	r.Use(middlewares.LoggerMiddleware())

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})

	menuCtrl := controllers.NewMenuController(s)
	orderCtrl := controllers.NewOrderController(s)
	adminCtrl := controllers.NewAdminController(s)
	healthCtrl := &controllers.HealthController{Storage: store.Select(cfg)}

	r.GET("/health", healthCtrl.Health)

	api := r.Group("/api")
	{
		api.GET("/menu", menuCtrl.GetAllMenuItems)
		api.GET("/menu/category/:category", menuCtrl.GetMenuItemsByCategory)

		orderLimiter := middlewares.NewRateLimiter(cfg.OrderRateLimit)
		api.POST("/orders", orderLimiter.RateLimit(), orderCtrl.CreateOrder)
		api.GET("/orders", orderCtrl.GetAllOrders)
		api.GET("/orders/:id", orderCtrl.GetOrder)
		api.GET("/orders/:id/receipt", orderCtrl.GetReceipt)
		api.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/stats", orderCtrl.GetOrderStats)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)

		admin.GET("/inventory", adminCtrl.GetInventory)
		admin.GET("/inventory/stats", adminCtrl.GetInventoryStats)
		admin.POST("/inventory", adminCtrl.CreateMenuItem)
		admin.PATCH("/inventory/:id", adminCtrl.UpdateStock)
		admin.PATCH("/inventory/:id/availability", adminCtrl.UpdateAvailability)
	}

	return r
}
