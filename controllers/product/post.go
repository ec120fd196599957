package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phamnguyendevv/fashion-api/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name           string   `json:"name" binding:"required"`
	Price          float64  `json:"price" binding:"required,min=0"`
	Image          string   `json:"image"`
	CarouselImages []string `json:"carouselImages"`
	IsNewProduct   bool     `json:"isNewProduct"`
	IsPopular      bool     `json:"isPopular"`
	IsMan          bool     `json:"isMan"`
	Rating         float64  `json:"rating"`
	Description    string   `json:"description"`
	CategoryID     uint     `json:"category_id" binding:"required"`
}

// POST /addproducts
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		if err := db.First(&models.Category{}, input.CategoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to validate category"})
			}
			return
		}

		product := models.Product{
			Name:           input.Name,
			Price:          input.Price,
			Image:          input.Image,
			CarouselImages: input.CarouselImages,
			IsNewProduct:   input.IsNewProduct,
			IsPopular:      input.IsPopular,
			IsMan:          input.IsMan,
			Rating:         input.Rating,
			Description:    input.Description,
			CategoryID:     input.CategoryID,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "data": product})
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch product"})
			}
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		product.Name = input.Name
		product.Price = input.Price
		product.Image = input.Image
		product.CarouselImages = input.CarouselImages
		product.IsNewProduct = input.IsNewProduct
		product.IsPopular = input.IsPopular
		product.IsMan = input.IsMan
		product.Rating = input.Rating
		product.Description = input.Description
		product.CategoryID = input.CategoryID

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "data": product})
	}
}

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		res := db.Delete(&models.Product{}, id)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete product"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
