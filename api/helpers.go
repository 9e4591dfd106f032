package api

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"policyedge/middleware"
	"policyedge/models"
	"policyedge/utils"
)

// requireUser fetches the user set by AuthMiddleware. A missing user means
// the route was registered without the middleware.
func requireUser(c *gin.Context) (models.User, bool) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.GinInternalServerError(c, "Authenticated user not found in context. Middleware issue?")
		return models.User{}, false
	}
	return user, true
}

// parseIDParam reads a positive-or-zero integer path parameter; anything
// else is a validation failure.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		utils.GinValidationError(c, fmt.Sprintf("Path parameter '%s' must be an integer, got '%s'.", name, raw))
		return 0, false
	}
	return id, true
}

// parseAPIKeys validates an optional JSON object body and returns the names
// of the key fields it carries.
func parseAPIKeys(raw []byte) ([]string, error) {
	supplied := make([]string, 0, len(apiKeyFields))
	if len(bytes.TrimSpace(raw)) == 0 {
		return supplied, nil
	}
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("request body must be valid JSON")
	}
	body := gjson.ParseBytes(raw)
	if !body.IsObject() {
		return nil, errors.New("request body must be a JSON object")
	}
	for _, field := range apiKeyFields {
		value := body.Get(field)
		switch {
		case !value.Exists(), value.Type == gjson.Null:
		case value.Type == gjson.String:
			supplied = append(supplied, field)
		default:
			return nil, fmt.Errorf("'%s' must be a string or null", field)
		}
	}
	return supplied, nil
}

// logger returns the global logger tagged with the request id.
func logger(c *gin.Context) *zerolog.Logger {
	l := log.With().Str("request_id", c.GetString(middleware.RequestIDHeader)).Logger()
	return &l
}
