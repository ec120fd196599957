package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	Price          float64        `gorm:"not null;check:price >= 0" json:"price"`
	Image          string         `json:"image"`
	CarouselImages []string       `gorm:"serializer:json" json:"carouselImages"`
	IsNewProduct   bool           `json:"isNewProduct"`
	IsPopular      bool           `json:"isPopular"`
	IsMan          bool           `json:"isMan"`
	Rating         float64        `json:"rating"`
	Description    string         `json:"description"`
	CategoryID     uint           `gorm:"index" json:"category_id"`
	Category       Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
