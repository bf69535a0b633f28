package models

import "time"

type OrderStatus string

const (
	// Order placed, payment not confirmed yet
	OrderStatusPending OrderStatus = "pending"
	// Payment confirmed but no download links resolved yet
	OrderStatusProcessing OrderStatus = "processing"
	// Payment confirmed and download links delivered
	OrderStatusCompleted OrderStatus = "completed"
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	CustomerEmail   string      `gorm:"not null" json:"customer_email"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalCents      int64       `json:"total_cents"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	StripeSessionID string      `gorm:"uniqueIndex" json:"stripe_session_id"`
	// Client-supplied token, stored for reconciliation only; duplicate
	// sessions are not deduplicated against it.
	IdempotencyKey string    `gorm:"index" json:"idempotency_key"`
	DownloadLinks  string    `json:"download_links"` // JSON array, set on completion
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	OrderID        uint   `gorm:"index" json:"order_id"`
	ProductCode    string `json:"product_code"`
	ProductName    string `json:"product_name"`
	PriceReference string `gorm:"not null" json:"price_reference"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}
