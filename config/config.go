package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every configurable parameter of the API, sourced from
// environment variables (loaded from .env for local runs).
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// Database (DATABASE_URL wins over the discrete fields)
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"christmasfun"`

	// Public anon key required on the checkout endpoint, admin key for
	// the back-office routes, service token for the email endpoint.
	AnonKey      string `envconfig:"ANON_KEY"`
	AdminAPIKey  string `envconfig:"ADMIN_API_KEY"`
	ServiceToken string `envconfig:"SERVICE_TOKEN"`

	// Stripe
	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
	CheckoutSuccessURL  string `envconfig:"CHECKOUT_SUCCESS_URL" default:"https://christmasfun.store/thank-you?session_id={CHECKOUT_SESSION_ID}"`
	CheckoutCancelURL   string `envconfig:"CHECKOUT_CANCEL_URL" default:"https://christmasfun.store/cart"`

	// SendGrid
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	EmailFrom      string `envconfig:"EMAIL_FROM" default:"orders@christmasfun.store"`
	EmailFromName  string `envconfig:"EMAIL_FROM_NAME" default:"ChristmasFun.store"`
}

// Load reads the full configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// DSN builds the postgres connection string from the discrete fields.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
