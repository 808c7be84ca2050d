package router

import (
	"net/http"
	"time"

	jwtv4 "github.com/golang-jwt/jwt/v4"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"blogapi/internal/auth"
	"blogapi/internal/handler"
	"blogapi/internal/response"
)

// requireIdentity runs after the JWT middleware. It rejects blacklisted
// tokens and turns the verified claims into an explicit caller identity for
// the handlers.
func requireIdentity(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwtv5.Token)
			if !ok {
				return unauthenticated(c)
			}
			claims, ok := token.Claims.(jwtv5.MapClaims)
			if !ok {
				return unauthenticated(c)
			}

			userID, _ := claims["user_id"].(float64)
			role, _ := claims["role"].(string)
			if userID == 0 || role == "" {
				return unauthenticated(c)
			}

			jti, _ := claims["jti"].(string)
			if jti != "" {
				blacklisted, _ := tokenStore.IsTokenBlacklisted(c.Request().Context(), jti)
				if blacklisted {
					return unauthenticated(c)
				}
			}

			handler.SetCaller(c, auth.Identity{ID: uint(userID), Role: role})

			verified := &auth.Claims{UserID: uint(userID), Role: role}
			verified.ID = jti
			if exp, ok := claims["exp"].(float64); ok {
				verified.ExpiresAt = jwtv4.NewNumericDate(time.Unix(int64(exp), 0))
			}
			handler.SetClaims(c, verified)

			return next(c)
		}
	}
}

func unauthenticated(c echo.Context) error {
	return response.Error(c, http.StatusUnauthorized, "Unauthenticated.")
}
