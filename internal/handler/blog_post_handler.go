package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "blogapi/internal/errors"
	"blogapi/internal/response"
	"blogapi/internal/service"
)

// BlogPostHandler handles blog post CRUD and search.
type BlogPostHandler struct {
	postService service.BlogPostService
}

// NewBlogPostHandler creates a new blog post handler.
func NewBlogPostHandler(postService service.BlogPostService) *BlogPostHandler {
	return &BlogPostHandler{postService: postService}
}

// PostRequest represents a blog post create or update payload. Title and
// content are required on both operations.
type PostRequest struct {
	Title   string                `form:"title" validate:"required,max=255"`
	Content string                `form:"content" validate:"required"`
	Image   *multipart.FileHeader `form:"image" validate:"omitempty,image_type=jpeg png jpg gif svg webp,image_kb=2048"`
}

// SearchPostsRequest carries the optional post search filters.
type SearchPostsRequest struct {
	Title string `query:"title" validate:"omitempty"`
	Page  int    `query:"page"`
}

// Create godoc
// @Summary Create a blog post
// @Tags posts
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param image formData file false "Post image"
// @Success 201 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /post [post]
func (h *BlogPostHandler) Create(c echo.Context) error {
	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	req.Image, _ = c.FormFile("image")
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	caller, _ := CallerFromContext(c)
	post, err := h.postService.Create(c.Request().Context(), caller, service.PostInput{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	})
	if err != nil {
		return fail(c, err)
	}
	return response.JSON(c, http.StatusCreated, "Blog post created successfully", post)
}

// Update godoc
// @Summary Update a blog post
// @Tags posts
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param image formData file false "Post image"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /post/{id} [put]
func (h *BlogPostHandler) Update(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrPostNotFound)
	if err != nil {
		return fail(c, err)
	}

	// A missing post is reported before any payload errors.
	if _, err := h.postService.Get(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	req.Image, _ = c.FormFile("image")
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	post, err := h.postService.Update(c.Request().Context(), id, service.PostInput{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	})
	if err != nil {
		return fail(c, err)
	}
	return response.JSON(c, http.StatusOK, "Blog post updated successfully", post)
}

// Detail godoc
// @Summary Get a blog post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /post/{id} [get]
func (h *BlogPostHandler) Detail(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrPostNotFound)
	if err != nil {
		return fail(c, err)
	}

	post, err := h.postService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return response.JSON(c, http.StatusOK, "Blog post retrieved successfully", post)
}

// Search godoc
// @Summary Search blog posts by title
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param title query string false "Title substring"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /posts [get]
func (h *BlogPostHandler) Search(c echo.Context) error {
	var req SearchPostsRequest
	if err := c.Bind(&req); err != nil {
		return failBind(c)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}
	if req.Page < 1 {
		req.Page = 1
	}

	posts, total, err := h.postService.Search(c.Request().Context(), req.Title, req.Page)
	if err != nil {
		return fail(c, err)
	}
	page := response.NewPage(posts, total, req.Page, service.PostsPerPage)
	return response.JSON(c, http.StatusOK, "Blog posts retrieved successfully", page)
}

// Destroy godoc
// @Summary Delete a blog post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /post/{id} [delete]
func (h *BlogPostHandler) Destroy(c echo.Context) error {
	id, err := parseID(c, apperrors.ErrPostNotFound)
	if err != nil {
		return fail(c, err)
	}

	if err := h.postService.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return response.JSON(c, http.StatusOK, "Blog post deleted successfully", nil)
}
