package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phamnguyendevv/fashion-api/models"
	"gorm.io/gorm"
)

// ProductFilter mirrors the body of POST /product/list; every field is
// optional and filters compose.
type ProductFilter struct {
	Keyword      string `json:"keyword"`
	IsMan        *bool  `json:"isMan"`
	IsNewProduct *bool  `json:"isNewProduct"`
	IsPopular    *bool  `json:"isPopular"`
	CategoryID   uint   `json:"category_id"`
}

// POST /product/list
func ListProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter ProductFilter
		if err := c.ShouldBindJSON(&filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		query := db.Model(&models.Product{}).Preload("Category")
		if filter.Keyword != "" {
			query = query.Where("name ILIKE ?", "%"+filter.Keyword+"%")
		}
		if filter.IsMan != nil {
			query = query.Where("is_man = ?", *filter.IsMan)
		}
		if filter.IsNewProduct != nil {
			query = query.Where("is_new_product = ?", *filter.IsNewProduct)
		}
		if filter.IsPopular != nil {
			query = query.Where("is_popular = ?", *filter.IsPopular)
		}
		if filter.CategoryID != 0 {
			query = query.Where("category_id = ?", filter.CategoryID)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Products retrieved successfully", "data": products})
	}
}

// GET /get-all-products
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Products retrieved successfully", "data": products})
	}
}

// GET /getprobycate/:categoryId
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
			return
		}

		var products []models.Product
		if err := db.Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Products retrieved successfully", "data": products})
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch product"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product retrieved successfully", "data": product})
	}
}
