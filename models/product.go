package models

import (
	"time"

	"gorm.io/gorm"
)

type ProductKind string

const (
	ProductKindSingle ProductKind = "single-item"
	ProductKindNote   ProductKind = "note"
	ProductKindBundle ProductKind = "bundle"
)

// Product is a priceable catalog entry: a printable design, a Santa note
// or the full-collection bundle. Code is the stable identifier the
// storefront and the fulfillment table both key on; PriceReference is the
// Stripe price id used in checkout sessions.
type Product struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code           string         `gorm:"uniqueIndex;not null" json:"code"`
	Kind           ProductKind    `gorm:"type:VARCHAR(20);not null" json:"kind"`
	Name           string         `gorm:"not null" json:"name"`
	Description    string         `json:"description"`
	Image          string         `json:"image"`
	PriceReference string         `gorm:"uniqueIndex;not null" json:"price_reference"`
	PriceCents     int64          `gorm:"not null" json:"price_cents"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
