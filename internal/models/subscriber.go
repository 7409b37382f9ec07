package models

import "time"

// Subscriber is a newsletter signup. Unsubscribing flips Active off rather
// than deleting the row, so a later subscribe reactivates it.
type Subscriber struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Email            string    `json:"email" gorm:"unique;not null"`
	Active           bool      `json:"active" gorm:"default:true"`
	UnsubscribeToken string    `json:"-" gorm:"uniqueIndex;not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
