package webhookControllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
	"gorm.io/gorm"

	orderControllers "github.com/julddllc/christmasfun-api/controllers/order"
	"github.com/julddllc/christmasfun-api/fulfillment"
	"github.com/julddllc/christmasfun-api/mail"
	"github.com/julddllc/christmasfun-api/models"
)

// StripeWebhookHandler verifies the event signature, fulfills completed
// checkout sessions and triggers the order email. Every recognized event
// is acknowledged with {"received": true} so Stripe stops retrying.
func StripeWebhookHandler(db *gorm.DB, sender mail.Sender, webhookSecret string, feed *orderControllers.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		if webhookSecret == "" {
			log.Printf("❌ STRIPE_WEBHOOK_SECRET is not set, rejecting webhook")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook verification unavailable"})
			return
		}

		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
			return
		}

		signature := c.GetHeader("Stripe-Signature")
		if signature == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing stripe-signature header"})
			return
		}

		event, err := webhook.ConstructEventWithOptions(payload, signature, webhookSecret,
			webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}

		if event.Type != "checkout.session.completed" {
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
			return
		}

		if err := fulfillOrder(c.Request.Context(), db, sender, feed, session.ID); err != nil {
			// Acknowledged anyway; fulfillment problems are resolved by
			// re-running the webhook or fixing the download table.
			log.Printf("⚠️ Fulfillment for session %s: %v", session.ID, err)
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

// fulfillOrder resolves download links for the paid order, marks it
// completed and sends the confirmation email. An empty link set leaves the
// order in the processing state rather than failing.
func fulfillOrder(ctx context.Context, db *gorm.DB, sender mail.Sender, feed *orderControllers.Feed, sessionID string) error {
	var order models.Order
	if err := db.Preload("Items").Where("stripe_session_id = ?", sessionID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("no order recorded for session")
		}
		return err
	}

	if order.Status == models.OrderStatusCompleted {
		// Stripe retries webhooks; a second completion is a no-op.
		return nil
	}

	var links []string
	for _, item := range order.Items {
		links = append(links, fulfillment.Resolve(item.ProductCode)...)
	}

	if len(links) == 0 {
		log.Printf("⚠️ No download links for order %s, leaving in processing (check fulfillment table)", order.OrderRef)
		return db.Model(&order).Update("status", models.OrderStatusProcessing).Error
	}

	linksJSON, err := json.Marshal(links)
	if err != nil {
		return err
	}
	if err := db.Model(&order).Updates(map[string]interface{}{
		"status":         models.OrderStatusCompleted,
		"download_links": string(linksJSON),
	}).Error; err != nil {
		return err
	}
	order.Status = models.OrderStatusCompleted
	order.DownloadLinks = string(linksJSON)

	if _, err := sender.Send(ctx, mail.OrderEmail{
		To:            order.CustomerEmail,
		ProductName:   orderProductName(order),
		ProductType:   orderProductType(db, order),
		DownloadLinks: links,
		OrderNumber:   order.OrderRef,
	}); err != nil {
		// Non-fatal: the order stays completed, the buyer can still be
		// reached through the order-status endpoint.
		log.Printf("⚠️ Failed to send order email for %s: %v", order.OrderRef, err)
	}

	feed.Broadcast(order)
	return nil
}

func orderProductName(order models.Order) string {
	names := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		names = append(names, item.ProductName)
	}
	return strings.Join(names, ", ")
}

func orderProductType(db *gorm.DB, order models.Order) string {
	if len(order.Items) != 1 {
		return "digital download"
	}
	var product models.Product
	if err := db.First(&product, "code = ?", order.Items[0].ProductCode).Error; err != nil {
		return "digital download"
	}
	return string(product.Kind)
}
