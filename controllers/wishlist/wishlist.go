package wishlistControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phamnguyendevv/fashion-api/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
	ErrNotInWishlist     = errors.New("product not found in wishlist")
)

type WishlistRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
}

// -------- Core Logic --------

// AddToWishlist records a (user, product) pair; the pair is unique.
func AddToWishlist(db *gorm.DB, userID string, productID uint) error {
	if err := validateRefs(db, userID, productID); err != nil {
		return err
	}

	var existing models.WishlistItem
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error
	if err == nil {
		return ErrAlreadyInWishlist
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(&models.WishlistItem{UserID: userID, ProductID: productID}).Error
}

// RemoveFromWishlist deletes the pair, NotFound when it never existed.
func RemoveFromWishlist(db *gorm.DB, userID string, productID uint) error {
	if err := validateRefs(db, userID, productID); err != nil {
		return err
	}

	res := db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotInWishlist
	}
	return nil
}

// GetWishlist returns the user's wishlisted products, resolved for display.
func GetWishlist(db *gorm.DB, userID string) ([]models.Product, error) {
	if err := db.First(&models.User{}, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var items []models.WishlistItem
	if err := db.Where("user_id = ?", userID).Preload("Product").Find(&items).Error; err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		products = append(products, item.Product)
	}
	return products, nil
}

func validateRefs(db *gorm.DB, userID string, productID uint) error {
	if err := db.First(&models.User{}, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := db.First(&models.Product{}, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

// -------- Handlers --------

// POST /product/wishlist
func AddWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		if err := AddToWishlist(db, req.UserID, req.ProductID); err != nil {
			switch {
			case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			case errors.Is(err, ErrAlreadyInWishlist):
				c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update wishlist"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product added to wishlist"})
	}
}

// POST /product/remove-wishlist
func RemoveWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		if err := RemoveFromWishlist(db, req.UserID, req.ProductID); err != nil {
			switch {
			case errors.Is(err, ErrUserNotFound),
				errors.Is(err, ErrProductNotFound),
				errors.Is(err, ErrNotInWishlist):
				c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update wishlist"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from wishlist"})
	}
}

// GET /product/wishlist/:user_id
func GetWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "user_id is required"})
			return
		}
		products, err := GetWishlist(db, userID)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch wishlist"})
			return
		}
		if len(products) == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Wishlist is empty", "data": products})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist retrieved successfully", "data": products})
	}
}
