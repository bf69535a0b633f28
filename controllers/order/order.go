package orderControllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/julddllc/christmasfun-api/models"
	"gorm.io/gorm"
)

// GetAllOrdersHandler lists every order, newest first (admin).
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderHandler fetches a single order by its order ref (admin).
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("orderRef")
		if ref == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderRef is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Where("order_ref = ?", ref).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GetOrderStatusHandler is the buyer-facing lookup: status by order ref,
// with download links once the order is completed.
func GetOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("ref")
		if ref == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order ref is required"})
			return
		}

		var order models.Order
		if err := db.Where("order_ref = ?", ref).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		resp := gin.H{"order_ref": order.OrderRef, "status": order.Status}
		if order.Status == models.OrderStatusCompleted && order.DownloadLinks != "" {
			var links []string
			if err := json.Unmarshal([]byte(order.DownloadLinks), &links); err == nil {
				resp["download_links"] = links
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}
