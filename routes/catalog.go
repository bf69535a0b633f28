package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/julddllc/christmasfun-api/controllers/order"
	productcontroller "github.com/julddllc/christmasfun-api/controllers/product"
)

// SetupCatalogRoutes registers the public storefront endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("", productcontroller.GetCatalog(db))
		catalog.GET("/:code", productcontroller.GetCatalogItem(db))
	}

	// Buyer-facing order status lookup ("where are my downloads?")
	r.GET("/orders/:ref/status", orderControllers.GetOrderStatusHandler(db))
}
