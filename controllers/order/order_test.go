package orderControllers

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	cartControllers "github.com/phamnguyendevv/fashion-api/controllers/cart"
	"github.com/phamnguyendevv/fashion-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "order_test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedCheckout(t *testing.T, db *gorm.DB) (models.User, models.Product) {
	t.Helper()
	user := models.User{ID: "user-1", Email: "user1@example.com", Name: "Minh"}
	require.NoError(t, db.Create(&user).Error)

	category := models.Category{Name: "Shoes"}
	require.NoError(t, db.Create(&category).Error)

	sneaker := models.Product{Name: "Sneaker", Price: 10.0, CategoryID: category.ID}
	require.NoError(t, db.Create(&sneaker).Error)

	return user, sneaker
}

func shippingAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Name:    "Minh",
		Phone:   "0901234567",
		City:    "Da Nang",
		Country: "Vietnam",
		Address: "12 Tran Phu",
		Type:    "Home",
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateOrderSuccess(t *testing.T) {
	db := newTestDB(t)
	user, sneaker := seedCheckout(t, db)

	_, err := cartControllers.AddCartItem(db, user.ID, sneaker.ID, 2)
	require.NoError(t, err)

	order, err := CreateOrder(db, CreateOrderRequest{
		UserID:          user.ID,
		CartItems:       []OrderItemInput{{ProductID: sneaker.ID, Quantity: 2, Price: 10.0}},
		DeliveryFee:     floatPtr(5.0),
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "Cash on delivery",
		Payment:         "Cash",
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 25.0, order.TotalPrice) // 2×10.0 + 5.0 fee
	assert.NotEmpty(t, order.OrderRef)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 10.0, order.Items[0].PriceAtOrder)

	// the cart survives but is empty
	cart, err := cartControllers.GetCart(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// the order is linked to the user
	var stored models.User
	require.NoError(t, db.Preload("Orders").First(&stored, "id = ?", user.ID).Error)
	require.Len(t, stored.Orders, 1)
	assert.Equal(t, order.ID, stored.Orders[0].ID)
}

func TestCreateOrderSnapshotsLivePrice(t *testing.T) {
	db := newTestDB(t)
	user, sneaker := seedCheckout(t, db)

	// price moved after the item was carted
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", sneaker.ID).Update("price", 12.5).Error)

	order, err := CreateOrder(db, CreateOrderRequest{
		UserID:          user.ID,
		CartItems:       []OrderItemInput{{ProductID: sneaker.ID, Quantity: 1, Price: 10.0}},
		DeliveryFee:     floatPtr(0),
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "Cash on delivery",
		Payment:         "Cash",
	})
	require.NoError(t, err)
	assert.Equal(t, 12.5, order.Items[0].PriceAtOrder)
	assert.Equal(t, 12.5, order.TotalPrice)
}

func TestCreateOrderFallsBackToCartPriceForDeletedProduct(t *testing.T) {
	db := newTestDB(t)
	user, sneaker := seedCheckout(t, db)

	require.NoError(t, db.Delete(&models.Product{}, sneaker.ID).Error)

	order, err := CreateOrder(db, CreateOrderRequest{
		UserID:          user.ID,
		CartItems:       []OrderItemInput{{ProductID: sneaker.ID, Quantity: 3, Price: 9.0}},
		DeliveryFee:     floatPtr(1.0),
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "PayPal checkout",
		Payment:         "PayPal",
	})
	require.NoError(t, err)
	assert.Equal(t, 9.0, order.Items[0].PriceAtOrder)
	assert.Equal(t, 28.0, order.TotalPrice)
}

func TestCreateOrderAppliesDefaultDeliveryFee(t *testing.T) {
	db := newTestDB(t)
	user, sneaker := seedCheckout(t, db)

	order, err := CreateOrder(db, CreateOrderRequest{
		UserID:          user.ID,
		CartItems:       []OrderItemInput{{ProductID: sneaker.ID, Quantity: 1}},
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "Cash on delivery",
		Payment:         "Cash",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultDeliveryFee, order.DeliveryFee)
	assert.Equal(t, 10.0+DefaultDeliveryFee, order.TotalPrice)
}

func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	user, sneaker := seedCheckout(t, db)

	_, err := CreateOrder(db, CreateOrderRequest{
		UserID:          user.ID,
		CartItems:       []OrderItemInput{},
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "Cash on delivery",
		Payment:         "Cash",
	})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = CreateOrder(db, CreateOrderRequest{
		UserID:          "no-such-user",
		CartItems:       []OrderItemInput{{ProductID: sneaker.ID, Quantity: 1}},
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "Cash on delivery",
		Payment:         "Cash",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = CreateOrder(db, CreateOrderRequest{
		UserID:          user.ID,
		CartItems:       []OrderItemInput{{ProductID: sneaker.ID, Quantity: 1}},
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "Bank wire",
		Payment:         "Bitcoin",
	})
	assert.ErrorIs(t, err, ErrInvalidPayment)

	_, err = CreateOrder(db, CreateOrderRequest{
		UserID:          user.ID,
		CartItems:       []OrderItemInput{{ProductID: sneaker.ID, Quantity: 1}},
		DeliveryFee:     floatPtr(-1),
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "Cash on delivery",
		Payment:         "Cash",
	})
	assert.ErrorIs(t, err, ErrInvalidDeliveryFee)

	// nothing was written along the way
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateOrderRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	user, sneaker := seedCheckout(t, db)

	_, err := cartControllers.AddCartItem(db, user.ID, sneaker.ID, 2)
	require.NoError(t, err)

	// fail the cart clear step so the transaction aborts after the order insert
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").
		Register("force_clear_failure", func(tx *gorm.DB) {
			if tx.Statement.Table == "cart_items" {
				tx.AddError(errors.New("simulated store failure"))
			}
		}))

	_, err = CreateOrder(db, CreateOrderRequest{
		UserID:          user.ID,
		CartItems:       []OrderItemInput{{ProductID: sneaker.ID, Quantity: 2, Price: 10.0}},
		DeliveryFee:     floatPtr(5.0),
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "Cash on delivery",
		Payment:         "Cash",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order creation failed")

	// no order exists and the cart kept its contents
	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 0, itemCount)

	var cartItems []models.CartItem
	require.NoError(t, db.Find(&cartItems).Error)
	require.Len(t, cartItems, 1)
	assert.Equal(t, 2, cartItems[0].Quantity)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	user, sneaker := seedCheckout(t, db)

	_, err := UpdateOrderStatus(db, 9999, "Shipped")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = UpdateOrderStatus(db, 9999, "Teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	order, err := CreateOrder(db, CreateOrderRequest{
		UserID:          user.ID,
		CartItems:       []OrderItemInput{{ProductID: sneaker.ID, Quantity: 1}},
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "Cash on delivery",
		Payment:         "Cash",
	})
	require.NoError(t, err)

	status, err := UpdateOrderStatus(db, order.ID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, status)

	orders, err := GetUserOrders(db, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusShipped, orders[0].Status)
}

func TestGetUserOrders(t *testing.T) {
	db := newTestDB(t)
	user, sneaker := seedCheckout(t, db)

	_, err := GetUserOrders(db, "no-such-user")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// no orders yet is a success, not an error
	orders, err := GetUserOrders(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = CreateOrder(db, CreateOrderRequest{
		UserID:          user.ID,
		CartItems:       []OrderItemInput{{ProductID: sneaker.ID, Quantity: 2}},
		DeliveryFee:     floatPtr(5.0),
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "Cash on delivery",
		Payment:         "Cash",
	})
	require.NoError(t, err)

	orders, err = GetUserOrders(db, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Products, 1)
	assert.Equal(t, "Sneaker", orders[0].Products[0].Product.Name)
	assert.Equal(t, 10.0, orders[0].Products[0].PriceAtOrder)
	assert.Equal(t, 25.0, orders[0].TotalPrice)
}

func TestGetUserOrdersSubstitutesDeletedProducts(t *testing.T) {
	db := newTestDB(t)
	user, sneaker := seedCheckout(t, db)

	_, err := CreateOrder(db, CreateOrderRequest{
		UserID:          user.ID,
		CartItems:       []OrderItemInput{{ProductID: sneaker.ID, Quantity: 1}},
		ShippingAddress: shippingAddress(),
		PaymentMethod:   "Cash on delivery",
		Payment:         "Cash",
	})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Product{}, sneaker.ID).Error)

	orders, err := GetUserOrders(db, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Products, 1)

	line := orders[0].Products[0]
	assert.Equal(t, "Unknown product", line.Product.Name)
	assert.Equal(t, 0.0, line.Product.Price)
	// the order's own snapshot is untouched
	assert.Equal(t, 10.0, line.PriceAtOrder)
}
