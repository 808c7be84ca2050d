package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "blogapi/internal/errors"
	"blogapi/internal/response"
	"blogapi/internal/service"
)

// UserHandler handles profile detail, update and search.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest carries optionally supplied profile fields. A nil field
// was absent from the request and is left untouched.
type UpdateUserRequest struct {
	Name                 *string               `form:"name" validate:"omitempty,max=255"`
	Email                *string               `form:"email" validate:"omitempty,email,max=255"`
	Password             *string               `form:"password" validate:"omitempty,min=8"`
	PasswordConfirmation *string               `form:"password_confirmation" validate:"required_with=Password,omitempty,eqfield=Password"`
	Role                 *string               `form:"role" validate:"omitempty,oneof=user admin"`
	Image                *multipart.FileHeader `form:"image" validate:"omitempty,image_type=jpeg png jpg gif svg,image_kb=2048"`
	Address              *string               `form:"address" validate:"omitempty,max=255"`
	Latitude             *float64              `form:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude            *float64              `form:"longitude" validate:"omitempty,min=-180,max=180"`
}

// SearchUsersRequest carries the optional user search filters.
type SearchUsersRequest struct {
	Query string `query:"query" validate:"omitempty,max=255"`
	Role  string `query:"role" validate:"omitempty,oneof=user admin"`
}

// Detail godoc
// @Summary Get user details
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /user/{id} [get]
func (h *UserHandler) Detail(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrUserNotFound)
	if err != nil {
		return fail(c, err)
	}
	caller, _ := CallerFromContext(c)

	user, err := h.userService.Get(c.Request().Context(), caller, id)
	if err != nil {
		return fail(c, err)
	}
	return response.JSON(c, http.StatusOK, "User retrieved successfully", response.NewUser(user))
}

// Update godoc
// @Summary Update a user profile
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param name formData string false "Name"
// @Param email formData string false "Email"
// @Param password formData string false "Password"
// @Param password_confirmation formData string false "Password confirmation"
// @Param role formData string false "Role (user or admin)"
// @Param image formData file false "Profile image"
// @Param address formData string false "Address"
// @Param latitude formData number false "Latitude"
// @Param longitude formData number false "Longitude"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrUserNotFound)
	if err != nil {
		return fail(c, err)
	}
	caller, _ := CallerFromContext(c)

	// A missing or inaccessible target is reported before any payload errors.
	if _, err := h.userService.Get(c.Request().Context(), caller, id); err != nil {
		return fail(c, err)
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	req.Image, _ = c.FormFile("image")
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	user, err := h.userService.Update(c.Request().Context(), caller, id, service.UpdateUserInput{
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
	return response.JSON(c, http.StatusOK, "User updated successfully", response.NewUser(user))
}

// Search godoc
// @Summary Search users by name, email or role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param query query string false "Name or email substring"
// @Param role query string false "Role (user or admin)"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) Search(c echo.Context) error {
	var req SearchUsersRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	users, err := h.userService.Search(c.Request().Context(), req.Query, req.Role)
	if err != nil {
		return fail(c, err)
	}
	return response.JSON(c, http.StatusOK, "Users retrieved successfully", response.NewUsers(users))
}

// parseID reads the id path parameter. An unparsable id is indistinguishable
// from an unknown one, so it surfaces as the resource's not-found error.
func parseID(c echo.Context, notFound error) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, notFound
	}
	return uint(id), nil
}
