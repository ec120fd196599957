package models

import "time"

type User struct {
	ID        string        `gorm:"primaryKey" json:"id"`
	Email     string        `gorm:"unique;not null" json:"email"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Avatar    string        `json:"avatar"`
	Addresses []UserAddress `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Cart      Cart          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Orders    []Order       `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// UserAddress is a saved shipping address in the user's address book.
type UserAddress struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string `gorm:"index;not null" json:"user_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Address   string `json:"address"`
	Type      string `json:"type"` // e.g. "Home", "Office"
	IsDefault bool   `json:"is_default"`
}
