package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"policyedge/config"
	"policyedge/models"
)

// ErrInvalidToken is returned by every TokenVerifier for tokens it rejects.
var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer mints a bearer token for an authenticated user.
type TokenIssuer interface {
	Issue(user models.User) (string, error)
}

// TokenVerifier extracts the user id a bearer token was issued for.
// It does not check that the user still exists.
type TokenVerifier interface {
	Verify(token string) (int, error)
}

// TokenScheme is an issuer and verifier that understand the same tokens.
type TokenScheme interface {
	TokenIssuer
	TokenVerifier
}

// NewTokenScheme returns the scheme selected by cfg.Auth.TokenScheme.
func NewTokenScheme(cfg *config.Config) (TokenScheme, error) {
	switch cfg.Auth.TokenScheme {
	case config.TokenSchemeDemo:
		return NewDemoTokens(nil), nil
	case config.TokenSchemeJWT:
		return NewJWTTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime, nil)
	default:
		return nil, fmt.Errorf("unknown token scheme %q", cfg.Auth.TokenScheme)
	}
}

// --- Demo tokens ---

// DemoTokens issues unsigned tokens of the form token_<user id>_<unix time>.
// Anyone who knows a user id can forge one, and they never expire.
type DemoTokens struct {
	now func() time.Time
}

// NewDemoTokens returns the demo scheme. A nil clock means time.Now.
func NewDemoTokens(now func() time.Time) *DemoTokens {
	if now == nil {
		now = time.Now
	}
	return &DemoTokens{now: now}
}

// Issue builds token_<id>_<seconds.fraction>.
func (d *DemoTokens) Issue(user models.User) (string, error) {
	return fmt.Sprintf("token_%d_%s", user.ID, unixTimestamp(d.now())), nil
}

// Verify takes the second underscore-separated field as the user id.
// The prefix and the timestamp are not checked.
func (d *DemoTokens) Verify(token string) (int, error) {
	parts := strings.Split(token, "_")
	if len(parts) < 2 {
		return 0, fmt.Errorf("%w: missing user id segment", ErrInvalidToken)
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: user id segment %q is not an integer", ErrInvalidToken, parts[1])
	}
	return id, nil
}

// unixTimestamp renders t as fractional seconds, always with a decimal point.
func unixTimestamp(t time.Time) string {
	s := strconv.FormatFloat(float64(t.UnixMicro())/1e6, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// --- JWT tokens ---

const jwtIssuer = "policyedge"

// Claims defines the structure of the JWT claims.
type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTTokens issues HS256 signed tokens that expire after a fixed lifetime.
type JWTTokens struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewJWTTokens returns the jwt scheme. A nil clock means time.Now.
func NewJWTTokens(secret string, lifetime time.Duration, now func() time.Time) (*JWTTokens, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is not configured")
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("invalid token lifetime %s", lifetime)
	}
	if now == nil {
		now = time.Now
	}
	return &JWTTokens{secret: []byte(secret), lifetime: lifetime, now: now}, nil
}

// Issue creates a new JWT token for a given user.
func (j *JWTTokens) Issue(user models.User) (string, error) {
	issuedAt := j.now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.lifetime)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    jwtIssuer,
			Subject:   strconv.Itoa(user.ID),
			ID:        GenerateDashlessUUID(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses and validates a JWT token string.
func (j *JWTTokens) Verify(tokenString string) (int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithIssuer(jwtIssuer), jwt.WithTimeFunc(j.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, fmt.Errorf("%w: token has expired", ErrInvalidToken)
		}
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// --- Middleware ---

// contextUserKey is the gin context key holding the authenticated models.User.
const contextUserKey = "currentUser"

const (
	detailNotAuthenticated   = "Not authenticated"
	detailInvalidCredentials = "Invalid authentication credentials"
)

// UserLookup resolves a user id to a registered user.
type UserLookup interface {
	GetByID(id int) (models.User, bool)
}

// AuthMiddleware creates a Gin middleware function to protect routes.
// It resolves the bearer token to a registered user; anything else is a
// 401 with a Bearer challenge.
func AuthMiddleware(verifier TokenVerifier, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, _ := strings.Cut(c.GetHeader("Authorization"), " ")
		token = strings.TrimSpace(token)
		if !strings.EqualFold(scheme, "bearer") || token == "" {
			GinUnauthorized(c, detailNotAuthenticated)
			return
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			log.Debug().Err(err).Msg("bearer token rejected")
			GinUnauthorized(c, detailInvalidCredentials)
			return
		}

		user, found := users.GetByID(userID)
		if !found {
			log.Debug().Int("user_id", userID).Msg("bearer token names an unknown user")
			GinUnauthorized(c, detailInvalidCredentials)
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
