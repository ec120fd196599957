package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phamnguyendevv/fashion-api/models"
	"gorm.io/gorm"
)

// DefaultDeliveryFee applies when the client omits the fee.
const DefaultDeliveryFee = 25.0

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrder         = errors.New("order must contain at least one product")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidPayment     = errors.New("invalid payment kind")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidDeliveryFee = errors.New("delivery fee cannot be negative")
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price"` // cart snapshot, used only if the product is gone
}

type CreateOrderRequest struct {
	UserID          string                 `json:"userId" binding:"required"`
	CartItems       []OrderItemInput       `json:"cartItems" binding:"required"`
	DeliveryFee     *float64               `json:"deliveryFee"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress" binding:"required"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
	Payment         string                 `json:"payment" binding:"required"`
}

type UpdateOrderRequest struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// -------- Response Structs --------

// OrderResponse is the display form of an order: product references are
// resolved to name/image/price, with placeholders for deleted products.
type OrderResponse struct {
	ID              uint                   `json:"id"`
	OrderRef        string                 `json:"order_ref"`
	Status          models.OrderStatus     `json:"status"`
	TotalPrice      float64                `json:"totalPrice"`
	DeliveryFee     float64                `json:"deliveryFee"`
	Payment         models.PaymentKind     `json:"payment"`
	PaymentMethod   string                 `json:"paymentMethod"`
	CreatedAt       time.Time              `json:"createdAt"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	Products        []OrderLineResponse    `json:"products"`
}

type OrderLineResponse struct {
	ID           uint                 `json:"id"`
	Quantity     int                  `json:"quantity"`
	PriceAtOrder float64              `json:"priceAtOrder"`
	Product      ProductDisplayFields `json:"product"`
}

type ProductDisplayFields struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case "pending":
		return models.OrderStatusPending, nil
	case "processing":
		return models.OrderStatusProcessing, nil
	case "shipped":
		return models.OrderStatusShipped, nil
	case "delivered":
		return models.OrderStatusDelivered, nil
	case "cancelled":
		return models.OrderStatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

func mapPayment(payment string) (models.PaymentKind, error) {
	switch strings.ToLower(payment) {
	case "cash":
		return models.PaymentCash, nil
	case "paypal":
		return models.PaymentPayPal, nil
	default:
		return "", ErrInvalidPayment
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// CreateOrder converts the supplied cart line items into an immutable order.
// Everything runs in one transaction: the order insert (which also links the
// order to the user via user_id) and the cart clear commit together or not
// at all, so a failure can never leave an order without an emptied cart.
//
// Price at order time is snapshotted from the live product row; the caller's
// cart price is used only when the product has been deleted since it was
// carted.
func CreateOrder(db *gorm.DB, req CreateOrderRequest) (*models.Order, error) {
	if len(req.CartItems) == 0 {
		return nil, ErrEmptyOrder
	}
	payment, err := mapPayment(req.Payment)
	if err != nil {
		return nil, err
	}
	fee := DefaultDeliveryFee
	if req.DeliveryFee != nil {
		fee = *req.DeliveryFee
		if fee < 0 {
			return nil, ErrInvalidDeliveryFee
		}
	}

	var order models.Order
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, "id = ?", req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		items := make([]models.OrderItem, 0, len(req.CartItems))
		total := 0.0
		for _, in := range req.CartItems {
			if in.Quantity < 1 {
				return ErrInvalidQuantity
			}
			price := in.Price
			var product models.Product
			err := tx.First(&product, "id = ?", in.ProductID).Error
			switch {
			case err == nil:
				price = product.Price
			case errors.Is(err, gorm.ErrRecordNotFound):
				// product deleted since it was carted, keep the cart snapshot
			default:
				return err
			}
			items = append(items, models.OrderItem{
				ProductID:    in.ProductID,
				Quantity:     in.Quantity,
				PriceAtOrder: price,
			})
			total += float64(in.Quantity) * price
		}

		order = models.Order{
			OrderRef:        generateOrderRef(),
			UserID:          req.UserID,
			Items:           items,
			DeliveryFee:     fee,
			Payment:         payment,
			PaymentMethod:   req.PaymentMethod,
			TotalPrice:      total + fee,
			ShippingAddress: req.ShippingAddress,
			Status:          models.OrderStatusPending,
			CreatedAt:       time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Empty the cart; the cart row itself survives.
		var cart models.Cart
		err := tx.Where("user_id = ?", req.UserID).First(&cart).Error
		if err == nil {
			if err := tx.Where("cart_id = ?", cart.CartID).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrUserNotFound) || errors.Is(txErr, ErrInvalidQuantity) {
			return nil, txErr
		}
		return nil, fmt.Errorf("order creation failed: %w", txErr)
	}

	broadcastOrderEvent("order_created", order)
	return &order, nil
}

// UpdateOrderStatus overwrites the status field. The value must be a known
// status but any transition between known statuses is accepted.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status string) (models.OrderStatus, error) {
	newStatus, err := mapOrderStatus(status)
	if err != nil {
		return "", err
	}
	res := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", ErrOrderNotFound
	}

	var order models.Order
	if err := db.First(&order, orderID).Error; err == nil {
		broadcastOrderEvent("order_status_updated", order)
	}
	return newStatus, nil
}

// GetUserOrders returns all of a user's orders, newest first, in display
// form. An empty result is a success, not an error.
func GetUserOrders(db *gorm.DB, userID string) ([]OrderResponse, error) {
	if err := db.First(&models.User{}, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var orders []models.Order
	if err := db.Where("user_id = ?", userID).
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, formatOrder(o))
	}
	return out, nil
}

func formatOrder(o models.Order) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID,
		OrderRef:        o.OrderRef,
		Status:          o.Status,
		TotalPrice:      o.TotalPrice,
		DeliveryFee:     o.DeliveryFee,
		Payment:         o.Payment,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt,
		ShippingAddress: o.ShippingAddress,
		Products:        make([]OrderLineResponse, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		display := ProductDisplayFields{
			ID:    item.ProductID,
			Name:  item.Product.Name,
			Image: item.Product.Image,
			Price: item.Product.Price,
		}
		if item.Product.ID == 0 {
			// product deleted since the order was placed
			display.Name = "Unknown product"
			display.Image = ""
			display.Price = 0
		}
		resp.Products = append(resp.Products, OrderLineResponse{
			ID:           item.ID,
			Quantity:     item.Quantity,
			PriceAtOrder: item.PriceAtOrder,
			Product:      display,
		})
	}
	return resp
}

// -------- Handlers --------

// POST /order/add
func AddOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		order, err := CreateOrder(db, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			case errors.Is(err, ErrEmptyOrder),
				errors.Is(err, ErrInvalidQuantity),
				errors.Is(err, ErrInvalidPayment),
				errors.Is(err, ErrInvalidDeliveryFee):
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "order creation failed"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order created successfully", "data": order})
	}
}

// POST /order/update
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		status, err := UpdateOrderStatus(db, req.OrderID, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			case errors.Is(err, ErrInvalidStatus):
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update order"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully", "data": gin.H{"status": status}})
	}
}

// GET /order/:user_id
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "user_id is required"})
			return
		}
		orders, err := GetUserOrders(db, userID)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Orders retrieved successfully", "data": orders})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch orders"})
			return
		}
		out := make([]OrderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, formatOrder(o))
		}
		c.JSON(http.StatusOK, gin.H{"message": "Orders retrieved successfully", "data": out})
	}
}
