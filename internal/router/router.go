package router

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/handler"
	"blogapi/internal/response"
	"blogapi/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	postHandler *handler.BlogPostHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = validation.New()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// uploaded images are served from the public root
	e.Static("/storage", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Secured routes (require a valid, non-blacklisted bearer token)
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(cfg.JWTSecret),
			ErrorHandler: func(c echo.Context, err error) error {
				return response.Error(c, http.StatusUnauthorized, "Unauthenticated.")
			},
		}),
		requireIdentity(tokenStore),
	)

	secured.POST("/logout", authHandler.Logout)

	// User routes. No DELETE /user/:id: the upstream API declared the route
	// without a handler, so it is intentionally not exposed.
	secured.GET("/users", userHandler.Search)
	secured.GET("/user/:id", userHandler.Detail)
	secured.PUT("/user/:id", userHandler.Update)

	// Blog post routes
	secured.GET("/posts", postHandler.Search)
	secured.GET("/post/:id", postHandler.Detail)
	secured.POST("/post", postHandler.Create)
	secured.PUT("/post/:id", postHandler.Update)
	secured.DELETE("/post/:id", postHandler.Destroy)
}
