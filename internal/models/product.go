package models

import "time"

// Product is a user-submitted product. Ownership (UserID) is set on
// creation and never updated afterwards.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Tagline     string    `json:"tagline" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Website     string    `json:"website" gorm:"not null"`
	Logo        string    `json:"logo"`
	Images      []string  `json:"images" gorm:"serializer:json"`
	Category    string    `json:"category" gorm:"index;not null"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// Request structs for API
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Tagline     string   `json:"tagline" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Website     string   `json:"website" binding:"required"`
	Logo        string   `json:"logo"`
	Images      []string `json:"images"`
	Category    string   `json:"category" binding:"required"`
}
