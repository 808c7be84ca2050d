package response

import (
	"github.com/labstack/echo/v4"
)

// Envelope is the uniform wrapper around every JSON response.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

// JSON writes an enveloped response.
func JSON(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{StatusCode: status, Message: message, Data: data})
}

// Error writes an enveloped response with no data payload.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{StatusCode: status, Message: message})
}
