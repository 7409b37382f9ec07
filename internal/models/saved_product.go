package models

import "time"

// SavedProduct is an entry in a user's personal saved list. It is created
// as a side effect of voting (first vote saves the product) and removed
// when the vote is withdrawn. The same (user_id, product_id) uniqueness
// rule as Vote applies.
type SavedProduct struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_saved_user_product"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_saved_user_product;index"`
	CreatedAt time.Time `json:"created_at"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
