package paymentControllers

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/julddllc/christmasfun-api/models"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// CheckoutSessionRequest accepts the multi-item cart body and the legacy
// single-item body (productId + priceReference).
type CheckoutSessionRequest struct {
	Items []struct {
		PriceReference string `json:"priceReference"`
		Quantity       int64  `json:"quantity"`
	} `json:"items"`
	ProductID      string `json:"productId"`
	PriceReference string `json:"priceReference"`
	CustomerEmail  string `json:"customerEmail"`
}

// generateOrderRef builds a unique order reference, e.g.
// 20261224093000-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// CreateCheckoutSessionHandler validates the request, creates a hosted
// checkout session and records a pending order keyed by the session id.
// Each call creates a fresh session; the X-Idempotency-Key header is
// stored on the order but not used for deduplication.
func CreateCheckoutSessionHandler(db *gorm.DB, creator SessionCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		// Legacy single-item shape
		if len(req.Items) == 0 && req.PriceReference != "" {
			req.Items = append(req.Items, struct {
				PriceReference string `json:"priceReference"`
				Quantity       int64  `json:"quantity"`
			}{PriceReference: req.PriceReference, Quantity: 1})
		}

		if !emailPattern.MatchString(req.CustomerEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty cart"})
			return
		}

		// Resolve each price reference against the catalog so the order
		// record carries product codes the fulfillment table can key on.
		var (
			orderItems []models.OrderItem
			lineItems  []SessionLineItem
			totalCents int64
		)
		for _, item := range req.Items {
			quantity := item.Quantity
			if quantity <= 0 {
				quantity = 1
			}

			var product models.Product
			if err := db.First(&product, "price_reference = ?", item.PriceReference).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "unknown price reference: " + item.PriceReference})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate items"})
				return
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductCode:    product.Code,
				ProductName:    product.Name,
				PriceReference: product.PriceReference,
				UnitPriceCents: product.PriceCents,
				Quantity:       int(quantity),
			})
			lineItems = append(lineItems, SessionLineItem{
				PriceReference: item.PriceReference,
				Quantity:       quantity,
			})
			totalCents += product.PriceCents * quantity
		}

		orderRef := generateOrderRef()
		sess, err := creator.CreateSession(c.Request.Context(), SessionRequest{
			Items:         lineItems,
			CustomerEmail: req.CustomerEmail,
			OrderRef:      orderRef,
		})
		if err != nil {
			if errors.Is(err, ErrNotConfigured) {
				log.Printf("❌ Checkout misconfigured: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "payment service unavailable, try again later"})
				return
			}
			log.Printf("❌ Payment provider error: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		order := models.Order{
			OrderRef:        orderRef,
			CustomerEmail:   req.CustomerEmail,
			Items:           orderItems,
			TotalCents:      totalCents,
			Status:          models.OrderStatusPending,
			StripeSessionID: sess.ID,
			IdempotencyKey:  c.GetHeader("X-Idempotency-Key"),
		}
		if err := db.Create(&order).Error; err != nil {
			log.Printf("❌ Failed to record pending order %s: %v", orderRef, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": sess.URL})
	}
}
