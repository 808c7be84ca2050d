package model

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account with an optional geo-tagged address.
// Latitude and Longitude are stored as a column pair; both are set together
// or not at all.
type User struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Name         string   `json:"name" gorm:"size:255;not null"`
	Email        string   `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string   `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string   `json:"role" gorm:"size:50;default:'user'"`
	Image        *string  `json:"image" gorm:"size:255"`
	Address      *string  `json:"address" gorm:"size:255"`
	Latitude     *float64 `json:"-" gorm:"type:double"`
	Longitude    *float64 `json:"-" gorm:"type:double"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	BlogPosts []BlogPost `json:"-" gorm:"foreignKey:UserID"`
}

// HasLocation reports whether both coordinates are set.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}
