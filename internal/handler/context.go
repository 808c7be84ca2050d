package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"blogapi/internal/auth"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/response"
	"blogapi/internal/validation"
)

const (
	callerKey = "caller"
	claimsKey = "authClaims"
)

// SetCaller stores the authenticated caller for the request. Called by the
// auth middleware; handlers pass the identity on explicitly.
func SetCaller(c echo.Context, id auth.Identity) {
	c.Set(callerKey, id)
}

// CallerFromContext returns the authenticated caller, if any.
func CallerFromContext(c echo.Context) (auth.Identity, bool) {
	id, ok := c.Get(callerKey).(auth.Identity)
	return id, ok
}

// SetClaims stores the verified token claims for the request.
func SetClaims(c echo.Context, claims *auth.Claims) {
	c.Set(claimsKey, claims)
}

// ClaimsFromContext returns the verified token claims, if any.
func ClaimsFromContext(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*auth.Claims)
	return claims, ok
}

// fail renders any handler-level error as its enveloped HTTP response.
func fail(c echo.Context, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return response.Error(c, http.StatusUnprocessableEntity, verr.Message)
	}
	httpErr := apperrors.MapErrorToHTTP(err)
	return response.Error(c, httpErr.StatusCode, httpErr.Message)
}

// failBind renders a payload that could not be bound at all.
func failBind(c echo.Context) error {
	return response.Error(c, http.StatusUnprocessableEntity, "The given data was invalid.")
}
