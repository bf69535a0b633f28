package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/julddllc/christmasfun-api/controllers/order"
	productcontroller "github.com/julddllc/christmasfun-api/controllers/product"
	"github.com/julddllc/christmasfun-api/middleware"
)

// SetupOrderRoutes registers all "/admin/*" endpoints. Requires API‐Key
// middleware.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdminKey(deps.AdminAPIKey))
	{
		// ─────────── Orders ───────────
		orders := adminGroup.Group("/orders")
		{
			orders.GET("", orderControllers.GetAllOrdersHandler(db))
			orders.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))

			// websocket endpoint for real-time completed-order updates
			orders.GET("/ws", deps.OrderFeed.Handler())

			orders.GET("/:orderRef", orderControllers.GetOrderHandler(db))
		}

		// ─────────── Catalog Management ───────────
		products := adminGroup.Group("/products")
		{
			products.POST("", productcontroller.CreateProduct(db))
			products.PUT("/:code", productcontroller.UpdateProduct(db))
			products.DELETE("/:code", productcontroller.DeleteProduct(db))
		}
	}
}
