package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GenerateDashlessUUID creates a new UUID v4 and returns its string representation
// with all dashes removed.
func GenerateDashlessUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")
}

// Error kinds reported in APIError.Kind.
const (
	KindValidation   = "validation_error"
	KindUnauthorized = "unauthorized"
	KindConflict     = "conflict"
	KindNotFound     = "not_found"
	KindInternal     = "internal_error"
)

// APIError is a standard structure for returning errors as JSON.
type APIError struct {
	Kind   string `json:"kind" example:"not_found"`
	Detail string `json:"detail" example:"Policy not found"`
}

// GinError sends a JSON error response with a specific status code.
// It logs the error server-side as well.
func GinError(c *gin.Context, statusCode int, kind, detail string) {
	event := log.Warn()
	if statusCode >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", statusCode).
		Str("kind", kind).
		Msg(detail)
	c.AbortWithStatusJSON(statusCode, APIError{Kind: kind, Detail: detail})
}

// GinValidationError sends a 422 Unprocessable Entity error response.
func GinValidationError(c *gin.Context, detail string) {
	GinError(c, http.StatusUnprocessableEntity, KindValidation, detail)
}

// GinUnauthorized sends a 401 Unauthorized error response with a Bearer challenge.
func GinUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	GinError(c, http.StatusUnauthorized, KindUnauthorized, detail)
}

// GinConflict sends a 400 Bad Request error response for duplicate resources.
func GinConflict(c *gin.Context, detail string) {
	GinError(c, http.StatusBadRequest, KindConflict, detail)
}

// GinNotFound sends a 404 Not Found error response.
func GinNotFound(c *gin.Context, detail string) {
	GinError(c, http.StatusNotFound, KindNotFound, detail)
}

// GinInternalServerError sends a 500 Internal Server Error response.
func GinInternalServerError(c *gin.Context, detail string) {
	GinError(c, http.StatusInternalServerError, KindInternal, detail)
}
