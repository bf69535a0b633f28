package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/julddllc/christmasfun-api/models"
	"gorm.io/gorm"
)

// GetCatalog returns every priceable item, grouped the way the storefront
// displays them (singles, notes, then the bundle).
func GetCatalog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("kind, code").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve catalog"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetCatalogItem returns a single product by its catalog code.
// URL param: /catalog/:code
func GetCatalogItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product code is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

type productInput struct {
	Code           string `json:"code" binding:"required"`
	Kind           string `json:"kind" binding:"required,oneof=single-item note bundle"`
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	PriceReference string `json:"price_reference" binding:"required"`
	PriceCents     int64  `json:"price_cents" binding:"required,min=1"`
}

// CreateProduct adds a catalog entry (admin).
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input productInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Code:           input.Code,
			Kind:           models.ProductKind(input.Kind),
			Name:           input.Name,
			Description:    input.Description,
			Image:          input.Image,
			PriceReference: input.PriceReference,
			PriceCents:     input.PriceCents,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct updates a catalog entry by code (admin).
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		var product models.Product
		if err := db.First(&product, "code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var input productInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product.Code = input.Code
		product.Kind = models.ProductKind(input.Kind)
		product.Name = input.Name
		product.Description = input.Description
		product.Image = input.Image
		product.PriceReference = input.PriceReference
		product.PriceCents = input.PriceCents

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct soft-deletes a catalog entry by code (admin).
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		result := db.Where("code = ?", code).Delete(&models.Product{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
