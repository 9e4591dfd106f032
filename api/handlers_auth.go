package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"policyedge/config"
	"policyedge/db"
	"policyedge/models"
	"policyedge/utils"
)

// MessageResponse is the body of endpoints that only acknowledge.
type MessageResponse struct {
	Message string `json:"message" example:"User registered successfully"`
}

// --- Service info ---

// RootHandler greets the caller.
// @Summary      Welcome
// @Description  Returns a greeting. Useful as a quick "is anything listening" check.
// @Tags         Service
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       / [get]
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Welcome to PolicyEdgeAI API"})
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// HealthHandler reports that the process is serving requests.
// @Summary      Health check
// @Tags         Service
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

// APIKeysStatus says which AI provider keys the server was started with.
type APIKeysStatus struct {
	OpenAI    string `json:"openai" example:"Configured" enums:"Configured,Not configured"`
	Anthropic string `json:"anthropic" example:"Not configured" enums:"Configured,Not configured"`
}

// APIKeysInfoHandler reports whether OPENAI_API_KEY and ANTHROPIC_API_KEY are set.
// @Summary      AI provider key status
// @Description  Reports whether each provider key is present in the server environment. Key values are never returned.
// @Tags         Service
// @Produce      json
// @Success      200  {object}  APIKeysStatus
// @Router       /api-keys [get]
func APIKeysInfoHandler(c *gin.Context, cfg *config.Config) {
	c.JSON(http.StatusOK, APIKeysStatus{
		OpenAI:    configuredLabel(cfg.OpenAIConfigured),
		Anthropic: configuredLabel(cfg.AnthropicConfigured),
	})
}

func configuredLabel(present bool) string {
	if present {
		return "Configured"
	}
	return "Not configured"
}

// --- Login ---

// LoginForm is the OAuth2 password-flow form.
type LoginForm struct {
	Username string `form:"username" binding:"required"` // The account email
	Password string `form:"password" binding:"required"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"token_1_1718000000.123456"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// LoginHandler exchanges email and password for a bearer token.
// @Summary      Log in
// @Description  Form-encoded OAuth2 password flow: `username` is the account email. The password is compared exactly as stored.
// @Tags         Auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Account email"
// @Param        password  formData  string  true  "Account password"
// @Success      200  {object}  TokenResponse
// @Failure      401  {object}  utils.APIError "Unknown email or wrong password."
// @Failure      422  {object}  utils.APIError "Missing form fields."
// @Router       /token [post]
func LoginHandler(c *gin.Context, database *db.Database, issuer utils.TokenIssuer) {
	var form LoginForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		utils.GinValidationError(c, fmt.Sprintf("Invalid login form: %v", err))
		return
	}

	user, ok := database.Users.Authenticate(form.Username, form.Password)
	if !ok {
		utils.GinUnauthorized(c, "Incorrect email or password")
		return
	}

	token, err := issuer.Issue(user)
	if err != nil {
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to issue token: %v", err))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// --- Registration ---

// RegisterForm is the registration form.
type RegisterForm struct {
	Name     string  `form:"name" binding:"required"`
	Email    string  `form:"email" binding:"required"`
	Password string  `form:"password" binding:"required"`
	Company  *string `form:"company"`
}

// RegisterHandler creates an account.
// @Summary      Register
// @Description  Creates an account with the next sequential id. Emails are unique and matched exactly.
// @Tags         Auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        name      formData  string  true   "Display name"
// @Param        email     formData  string  true   "Login email"
// @Param        password  formData  string  true   "Password"
// @Param        company   formData  string  false  "Company"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  utils.APIError "The email is already registered."
// @Failure      422  {object}  utils.APIError "Missing form fields."
// @Router       /users [post]
func RegisterHandler(c *gin.Context, database *db.Database) {
	var form RegisterForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		utils.GinValidationError(c, fmt.Sprintf("Invalid registration form: %v", err))
		return
	}

	_, err := database.Users.Create(models.User{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Company:  form.Company,
	})
	if err != nil {
		if errors.Is(err, db.ErrEmailTaken) {
			utils.GinConflict(c, "Email already registered")
			return
		}
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to register user: %v", err))
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User registered successfully"})
}

// --- Current user ---

// GetCurrentUserHandler returns the authenticated user.
// @Summary      Who am I
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  utils.APIError
// @Router       /users/me [get]
func GetCurrentUserHandler(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// --- API keys ---

// UpdateAPIKeysRequest documents the accepted body of PUT /users/api-keys.
type UpdateAPIKeysRequest struct {
	OpenAIKey    *string `json:"openai_key"`
	AnthropicKey *string `json:"anthropic_key"`
}

// UpdateAPIKeysResponse acknowledges an API key update.
type UpdateAPIKeysResponse struct {
	Message string   `json:"message" example:"API keys updated successfully"`
	Keys    []string `json:"keys" example:"openai_key"`
}

var apiKeyFields = []string{"openai_key", "anthropic_key"}

// UpdateAPIKeysHandler accepts per-user provider keys.
// @Summary      Update AI provider keys
// @Description  Accepts `openai_key` and `anthropic_key` (strings or null, both optional). Keys are not stored; the response lists which fields were supplied.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        keys  body      UpdateAPIKeysRequest  false  "Provider keys"
// @Success      200   {object}  UpdateAPIKeysResponse
// @Failure      401   {object}  utils.APIError
// @Failure      422   {object}  utils.APIError "Body is not a JSON object, or a key is not a string."
// @Router       /users/api-keys [put]
func UpdateAPIKeysHandler(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		utils.GinValidationError(c, fmt.Sprintf("Failed to read request body: %v", err))
		return
	}

	supplied, err := parseAPIKeys(raw)
	if err != nil {
		utils.GinValidationError(c, err.Error())
		return
	}

	logger(c).Info().Int("user_id", user.ID).Strs("keys", supplied).Msg("api keys received, not persisted")
	c.JSON(http.StatusOK, UpdateAPIKeysResponse{Message: "API keys updated successfully", Keys: supplied})
}
