package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/julddllc/christmasfun-api/config"
	orderControllers "github.com/julddllc/christmasfun-api/controllers/order"
	paymentControllers "github.com/julddllc/christmasfun-api/controllers/payment"
	"github.com/julddllc/christmasfun-api/fulfillment"
	"github.com/julddllc/christmasfun-api/mail"
	"github.com/julddllc/christmasfun-api/models"
	"github.com/julddllc/christmasfun-api/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config failed: %v", err)
	}

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	if err := models.SeedCatalog(db); err != nil {
		log.Fatalf("❌ Catalog seed failed: %v", err)
	}

	warnFulfillmentDrift(db)

	// Gin setup
	r := gin.Default()

	// The webhook contract answers non-POST with 405, not 404
	r.HandleMethodNotAllowed = true

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "apikey", "X-API-KEY", "X-Idempotency-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, routes.Deps{
		SessionCreator: &paymentControllers.StripeSessionCreator{
			SecretKey:  cfg.StripeSecretKey,
			SuccessURL: cfg.CheckoutSuccessURL,
			CancelURL:  cfg.CheckoutCancelURL,
		},
		EmailSender:         mail.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName),
		OrderFeed:           orderControllers.NewFeed(),
		AnonKey:             cfg.AnonKey,
		AdminAPIKey:         cfg.AdminAPIKey,
		ServiceToken:        cfg.ServiceToken,
		StripeWebhookSecret: cfg.StripeWebhookSecret,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// warnFulfillmentDrift logs catalog codes that have no entry in the
// download table so they get fixed before a buyer pays for one.
func warnFulfillmentDrift(db *gorm.DB) {
	var codes []string
	if err := db.Model(&models.Product{}).Pluck("code", &codes).Error; err != nil {
		log.Printf("⚠️ Could not check fulfillment table: %v", err)
		return
	}
	if missing := fulfillment.MissingFrom(codes); len(missing) > 0 {
		log.Printf("⚠️ Catalog codes missing from fulfillment table: %v", missing)
	}
}
