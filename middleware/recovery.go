package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"policyedge/utils"
)

// Recovery turns a panic into a 500 internal_error response.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("error", r).
					Str("request_id", c.Writer.Header().Get(RequestIDHeader)).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, utils.APIError{
					Kind:   utils.KindInternal,
					Detail: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
