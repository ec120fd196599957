package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phamnguyendevv/fashion-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotInCart   = errors.New("product not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// -------- Request Structs --------

type AddCartRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type RemoveCartRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
}

type UpdateCartRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// -------- Core Logic --------

// AddCartItem puts a product into the user's cart, creating the cart on
// first use. Adding a product already in the cart increments its quantity;
// the increment is a single upsert so concurrent adds cannot lose updates.
func AddCartItem(db *gorm.DB, userID string, productID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if err := findUser(db, userID); err != nil {
		return nil, err
	}
	if err := db.First(&models.Product{}, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var cart models.Cart
	if err := db.Where("user_id = ?", userID).
		FirstOrCreate(&cart, models.Cart{UserID: userID}).Error; err != nil {
		return nil, err
	}

	item := models.CartItem{
		CartID:    cart.CartID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", quantity),
			"added_at": time.Now(),
		}),
	}).Create(&item).Error; err != nil {
		return nil, err
	}

	return loadCart(db, userID)
}

// RemoveCartItem deletes one line item from the user's cart.
func RemoveCartItem(db *gorm.DB, userID string, productID uint) (*models.Cart, error) {
	if err := findUser(db, userID); err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	res := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrItemNotInCart
	}

	return loadCart(db, userID)
}

// UpdateCartItem sets the quantity of an existing line item. The line is
// matched by product, never by position.
func UpdateCartItem(db *gorm.DB, userID string, productID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if err := findUser(db, userID); err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	res := db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrItemNotInCart
	}

	return loadCart(db, userID)
}

// GetCart returns the user's cart with products resolved. A user with no
// cart yet, or an emptied cart, gets an empty cart back — only an unknown
// user is an error.
func GetCart(db *gorm.DB, userID string) (*models.Cart, error) {
	if err := findUser(db, userID); err != nil {
		return nil, err
	}
	return loadCart(db, userID)
}

func findUser(db *gorm.DB, userID string) error {
	if err := db.First(&models.User{}, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func loadCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func statusForCartErr(err error) (int, string) {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrItemNotInCart):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, ErrInvalidQuantity):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "failed to update cart"
	}
}

// -------- Handlers --------

// POST /cart/add
func AddCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		cart, err := AddCartItem(db, req.UserID, req.ProductID, req.Quantity)
		if err != nil {
			status, msg := statusForCartErr(err)
			c.JSON(status, gin.H{"message": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart", "data": cart})
	}
}

// POST /cart/remove-item
func RemoveCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RemoveCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		cart, err := RemoveCartItem(db, req.UserID, req.ProductID)
		if err != nil {
			status, msg := statusForCartErr(err)
			c.JSON(status, gin.H{"message": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "data": cart})
	}
}

// POST /cart/update
func UpdateCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		cart, err := UpdateCartItem(db, req.UserID, req.ProductID, req.Quantity)
		if err != nil {
			status, msg := statusForCartErr(err)
			c.JSON(status, gin.H{"message": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "data": cart})
	}
}

// GET /cart/:user_id
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "user_id is required"})
			return
		}
		cart, err := GetCart(db, userID)
		if err != nil {
			status, msg := statusForCartErr(err)
			c.JSON(status, gin.H{"message": msg})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Cart is empty", "data": cart})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart retrieved successfully", "data": cart})
	}
}
