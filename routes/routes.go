package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/julddllc/christmasfun-api/controllers/order"
	paymentControllers "github.com/julddllc/christmasfun-api/controllers/payment"
	"github.com/julddllc/christmasfun-api/mail"
)

// Deps carries the collaborators the route groups need beyond the DB.
type Deps struct {
	SessionCreator paymentControllers.SessionCreator
	EmailSender    mail.Sender
	OrderFeed      *orderControllers.Feed

	AnonKey             string
	AdminAPIKey         string
	ServiceToken        string
	StripeWebhookSecret string
}

// SetupRoutes is the single entry‐point that wires up the storefront
// function endpoints, the catalog, and the admin order routes.
func SetupRoutes(r *gin.Engine, db *gorm.DB, deps Deps) {
	// 1️⃣ Serverless-style function endpoints (checkout, webhook, email)
	SetupFunctionRoutes(r, db, deps)

	// 2️⃣ Public catalog + buyer order lookup
	SetupCatalogRoutes(r, db)

	// 3️⃣ Admin routes (API‐Key‐protected)
	SetupOrderRoutes(r, db, deps)
}
