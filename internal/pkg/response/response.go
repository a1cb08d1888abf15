// internal/pkg/response/response.go
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes exposed in the error envelope.
const (
	CodeHTTPError       = "HTTP_ERROR"
	CodeValidationError = "VALIDATION_ERROR"
)

// ErrorBody is the inner error object of every non-2xx response.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse is the envelope for every non-2xx response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends a generic HTTP_ERROR response.
func Error(c *gin.Context, status int, message string) {
	c.Abort()
	c.JSON(status, ErrorResponse{Error: ErrorBody{
		Code:    CodeHTTPError,
		Message: message,
	}})
}

// ValidationError sends a 422 response carrying the structured list of
// field violations.
func ValidationError(c *gin.Context, details interface{}) {
	c.Abort()
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorBody{
		Code:    CodeValidationError,
		Message: "Validation error",
		Details: details,
	}})
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}
