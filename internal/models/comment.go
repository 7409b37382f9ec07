package models

import "time"

// Comment belongs to a product. ParentID is nil for top-level comments.
// Nesting is capped at one level of replies: a ParentID always references
// a top-level comment on the same product, which the store enforces on
// insert. Comments are immutable once created.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	ParentID  *uint     `json:"parent_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// IsReply reports whether the comment sits under a top-level comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
