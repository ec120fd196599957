package models

import "time"

// WishlistItem is a (user, product) membership pair, unique per pair.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_wishlist_user_product,unique;not null" json:"user_id"`
	ProductID uint      `gorm:"index:idx_wishlist_user_product,unique;not null" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
