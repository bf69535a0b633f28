package emailControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/julddllc/christmasfun-api/mail"
)

type SendOrderEmailRequest struct {
	To            string   `json:"to" binding:"required"`
	ProductName   string   `json:"productName" binding:"required"`
	ProductType   string   `json:"productType"`
	DownloadLinks []string `json:"downloadLinks"`
	OrderNumber   string   `json:"orderNumber" binding:"required"`
}

// SendOrderEmailHandler renders and dispatches the order-confirmation
// email. The route is guarded by the service bearer token.
func SendOrderEmailHandler(sender mail.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendOrderEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}

		messageID, err := sender.Send(c.Request.Context(), mail.OrderEmail{
			To:            req.To,
			ProductName:   req.ProductName,
			ProductType:   req.ProductType,
			DownloadLinks: req.DownloadLinks,
			OrderNumber:   req.OrderNumber,
		})
		if err != nil {
			log.Printf("❌ Order email to %s failed: %v", req.To, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "messageId": messageID})
	}
}
