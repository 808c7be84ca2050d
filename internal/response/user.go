package response

import (
	"time"

	"blogapi/internal/model"
)

// User is the outward shape of a user record. The stored location is
// flattened into separate latitude/longitude fields (null when absent), the
// password never appears, and token is present only when one was just
// issued.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Image     *string   `json:"image"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Token     string    `json:"token,omitempty"`
}

// NewUser formats a user without a token.
func NewUser(u *model.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Image:     u.Image,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Latitude:  u.Latitude,
		Longitude: u.Longitude,
	}
}

// NewUserWithToken formats a user together with a freshly issued token.
func NewUserWithToken(u *model.User, token string) User {
	out := NewUser(u)
	out.Token = token
	return out
}

// NewUsers formats a list of users.
func NewUsers(users []model.User) []User {
	out := make([]User, 0, len(users))
	for i := range users {
		out = append(out, NewUser(&users[i]))
	}
	return out
}
