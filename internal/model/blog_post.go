package model

import "time"

// BlogPost represents a post owned by exactly one user. The owner is set at
// creation time and never reassigned.
type BlogPost struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	Title   string  `json:"title" gorm:"size:255;not null"`
	Content string  `json:"content" gorm:"type:text;not null"`
	Image   *string `json:"image" gorm:"size:255"`
	UserID  uint    `json:"user_id" gorm:"not null;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
