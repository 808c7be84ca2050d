package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"blogapi/internal/response"
	"blogapi/internal/service"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request. Field order matches
// rule-declaration order so the first failing rule wins.
type RegisterRequest struct {
	Name                 string                `form:"name" validate:"required,max=255"`
	Email                string                `form:"email" validate:"required,email,max=255"`
	Password             string                `form:"password" validate:"required,min=8"`
	PasswordConfirmation string                `form:"password_confirmation" validate:"eqfield=Password"`
	Role                 string                `form:"role" validate:"required,oneof=user admin"`
	Image                *multipart.FileHeader `form:"image" validate:"omitempty,image_type=jpeg png jpg gif svg,image_kb=2048"`
	Address              *string               `form:"address" validate:"omitempty,max=255"`
	Latitude             *float64              `form:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude            *float64              `form:"longitude" validate:"omitempty,min=-180,max=180"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param password_confirmation formData string true "Password confirmation"
// @Param role formData string true "Role (user or admin)"
// @Param image formData file false "Profile image"
// @Param address formData string false "Address"
// @Param latitude formData number false "Latitude"
// @Param longitude formData number false "Longitude"
// @Success 201 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	req.Image, _ = c.FormFile("image")
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	user, token, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Image:     req.Image,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return fail(c, err)
	}

	return response.JSON(c, http.StatusCreated, "User registered successfully", response.NewUserWithToken(user, token))
}

// Login godoc
// @Summary Authenticate a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return response.JSON(c, http.StatusOK, "User logged in successfully", response.NewUserWithToken(user, token))
}

// Logout godoc
// @Summary Invalidate the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, _ := ClaimsFromContext(c)
	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return fail(c, err)
	}
	return response.JSON(c, http.StatusOK, "Successfully logged out", nil)
}
