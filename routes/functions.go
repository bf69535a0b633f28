package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	emailControllers "github.com/julddllc/christmasfun-api/controllers/orderemail"
	paymentControllers "github.com/julddllc/christmasfun-api/controllers/payment"
	webhookControllers "github.com/julddllc/christmasfun-api/controllers/webhook"
	"github.com/julddllc/christmasfun-api/middleware"
)

// SetupFunctionRoutes registers the endpoints the storefront and the
// payment provider call, under the /functions/v1 prefix the front end
// already uses.
func SetupFunctionRoutes(r *gin.Engine, db *gorm.DB, deps Deps) {
	functions := r.Group("/functions/v1")
	{
		// Checkout session creation: storefront → here → Stripe
		functions.POST("/create-checkout-session",
			middleware.RequireAnonKey(deps.AnonKey),
			paymentControllers.CreateCheckoutSessionHandler(db, deps.SessionCreator),
		)

		// Webhook endpoint: signature verification happens in the handler
		// because it needs the raw body.
		functions.POST("/stripe-webhook",
			webhookControllers.StripeWebhookHandler(db, deps.EmailSender, deps.StripeWebhookSecret, deps.OrderFeed),
		)

		// Order email dispatch: server-to-server only
		functions.POST("/send-order-email",
			middleware.RequireServiceToken(deps.ServiceToken),
			emailControllers.SendOrderEmailHandler(deps.EmailSender),
		)
	}
}
