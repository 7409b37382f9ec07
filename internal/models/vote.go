package models

import "time"

// Vote is a user's upvote on a product. The (user_id, product_id) unique
// index allows at most one vote per user per product and doubles as the
// serialization point for concurrent toggles: the second of two racing
// inserts fails on the index, never creating a duplicate row.
type Vote struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_votes_user_product"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_votes_user_product;index"`
	CreatedAt time.Time `json:"created_at"`
}
