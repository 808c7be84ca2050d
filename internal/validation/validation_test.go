package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerForm struct {
	Name                 string   `form:"name" validate:"required,max=255"`
	Email                string   `form:"email" validate:"required,email,max=255"`
	Password             string   `form:"password" validate:"required,min=8"`
	PasswordConfirmation string   `form:"password_confirmation" validate:"eqfield=Password"`
	Role                 string   `form:"role" validate:"required,oneof=user admin"`
	Latitude             *float64 `form:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude            *float64 `form:"longitude" validate:"omitempty,min=-180,max=180"`
}

func validForm() registerForm {
	return registerForm{
		Name:                 "Alice",
		Email:                "alice@example.com",
		Password:             "password123",
		PasswordConfirmation: "password123",
		Role:                 "user",
	}
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	t.Run("valid input passes", func(t *testing.T) {
		form := validForm()
		assert.NoError(t, v.Struct(&form))
	})

	tests := []struct {
		name    string
		mutate  func(*registerForm)
		message string
	}{
		{
			name:    "missing name reported first",
			mutate:  func(f *registerForm) { f.Name = ""; f.Email = ""; f.Password = "" },
			message: "The name field is required.",
		},
		{
			name:    "invalid email",
			mutate:  func(f *registerForm) { f.Email = "not-an-email" },
			message: "The email field must be a valid email address.",
		},
		{
			name:    "short password",
			mutate:  func(f *registerForm) { f.Password = "short"; f.PasswordConfirmation = "short" },
			message: "The password field must be at least 8 characters.",
		},
		{
			name:    "confirmation mismatch",
			mutate:  func(f *registerForm) { f.PasswordConfirmation = "different123" },
			message: "The password field confirmation does not match.",
		},
		{
			name:    "invalid role",
			mutate:  func(f *registerForm) { f.Role = "superuser" },
			message: "The selected role is invalid.",
		},
		{
			name:    "latitude below range",
			mutate:  func(f *registerForm) { lat := -91.0; f.Latitude = &lat },
			message: "The latitude field must be at least -90.",
		},
		{
			name:    "longitude above range",
			mutate:  func(f *registerForm) { lng := 181.0; f.Longitude = &lng },
			message: "The longitude field must not be greater than 180.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := v.Struct(&form)
			assert.Error(t, err)

			verr, ok := err.(*Error)
			assert.True(t, ok)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}
