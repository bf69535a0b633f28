package models

import (
	"log"

	"gorm.io/gorm"
)

// SeedCatalog inserts the launch catalog when the products table is empty.
// Codes here must stay in sync with the fulfillment download table.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []Product{
		{Code: "design-snowman", Kind: ProductKindSingle, Name: "Jolly Snowman", Description: "Printable snowman design", Image: "/images/designs/snowman.png", PriceReference: "price_design_snowman", PriceCents: 99},
		{Code: "design-reindeer", Kind: ProductKindSingle, Name: "Reindeer Games", Description: "Printable reindeer design", Image: "/images/designs/reindeer.png", PriceReference: "price_design_reindeer", PriceCents: 99},
		{Code: "design-elf", Kind: ProductKindSingle, Name: "Elf on Duty", Description: "Printable elf design", Image: "/images/designs/elf.png", PriceReference: "price_design_elf", PriceCents: 99},
		{Code: "note-santa-1", Kind: ProductKindNote, Name: "Santa Note #1", Description: "Personalized note from Santa", Image: "/images/notes/santa-1.png", PriceReference: "price_note_santa_1", PriceCents: 199},
		{Code: "note-santa-2", Kind: ProductKindNote, Name: "Santa Note #2", Description: "Personalized note from Santa", Image: "/images/notes/santa-2.png", PriceReference: "price_note_santa_2", PriceCents: 199},
		{Code: "bundle-complete", Kind: ProductKindBundle, Name: "Complete Collection", Description: "Every design and note in one bundle", Image: "/images/bundle.png", PriceReference: "price_bundle_complete", PriceCents: 1999},
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Printf("🎄 Seeded catalog with %d products", len(products))
	return nil
}
