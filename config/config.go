package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Token schemes understood by the auth layer.
const (
	TokenSchemeDemo = "demo"
	TokenSchemeJWT  = "jwt"
)

// HTTPConfig holds listener settings.
type HTTPConfig struct {
	Address         string        `mapstructure:"address"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// AuthConfig selects and tunes the bearer token scheme.
type AuthConfig struct {
	TokenScheme   string        `mapstructure:"token_scheme"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenLifetime time.Duration `mapstructure:"token_lifetime"`
}

// CORSConfig lists allowed origins. Empty means every origin.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Config holds all configuration settings for the application.
type Config struct {
	Environment  string     `mapstructure:"environment"`
	HTTP         HTTPConfig `mapstructure:"http"`
	Auth         AuthConfig `mapstructure:"auth"`
	CORS         CORSConfig `mapstructure:"cors"`
	SeedDemoUser bool       `mapstructure:"seed_demo_user"`

	// Presence of the AI provider keys. The values are never read.
	OpenAIConfigured    bool `mapstructure:"-"`
	AnthropicConfigured bool `mapstructure:"-"`

	// ConfigFile is the file that was read, if any.
	ConfigFile string `mapstructure:"-"`
	// JWTSecretSource says where Auth.JWTSecret came from, for logging.
	JWTSecretSource string `mapstructure:"-"`
}

const (
	envPrefix            = "POLICYEDGE"
	defaultEnvironment   = "development"
	defaultAddress       = "0.0.0.0"
	defaultPort          = 8000
	defaultReadTimeout   = 10 * time.Second
	defaultWriteTimeout  = 15 * time.Second
	defaultShutdown      = 10 * time.Second
	defaultTokenScheme   = TokenSchemeDemo
	defaultTokenLifetime = 1 * time.Hour
	defaultSeedDemoUser  = true

	openAIKeyEnv    = "OPENAI_API_KEY"
	anthropicKeyEnv = "ANTHROPIC_API_KEY"
)

// LoadConfig loads configuration from defaults, an optional policyedge.yaml,
// environment variables and command-line flags, in increasing precedence.
// args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("policyedge", flag.ContinueOnError)
	configFile := fs.String("config", "", "Path to a YAML config file (default: ./policyedge.yaml or ./config/policyedge.yaml)")
	address := fs.String("address", "", "Server listen address (Env: POLICYEDGE_HTTP_ADDRESS)")
	port := fs.Int("port", 0, "Server listen port (Env: PORT or POLICYEDGE_HTTP_PORT)")
	tokenScheme := fs.String("token-scheme", "", "Bearer token scheme: demo or jwt (Env: POLICYEDGE_AUTH_TOKEN_SCHEME)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The bare PORT variable is honoured for compatibility with common hosting platforms.
	if err := v.BindEnv("http.port", envPrefix+"_HTTP_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("bind PORT: %w", err)
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("policyedge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// Flags override everything else, but only when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "address":
			v.Set("http.address", *address)
		case "port":
			v.Set("http.port", *port)
		case "token-scheme":
			v.Set("auth.token_scheme", *tokenScheme)
		}
	})

	cfg := &Config{}
	if err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	// Only presence matters: a variable that is set but empty still counts.
	_, cfg.OpenAIConfigured = os.LookupEnv(openAIKeyEnv)
	_, cfg.AnthropicConfigured = os.LookupEnv(anthropicKeyEnv)

	secretSource, err := resolveJWTSecret(cfg)
	if err != nil {
		return nil, err
	}
	cfg.JWTSecretSource = secretSource

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", defaultEnvironment)

	v.SetDefault("http.address", defaultAddress)
	v.SetDefault("http.port", defaultPort)
	v.SetDefault("http.read_timeout", defaultReadTimeout.String())
	v.SetDefault("http.write_timeout", defaultWriteTimeout.String())
	v.SetDefault("http.shutdown_timeout", defaultShutdown.String())

	v.SetDefault("auth.token_scheme", defaultTokenScheme)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime", defaultTokenLifetime.String())

	v.SetDefault("cors.allowed_origins", []string{})
	v.SetDefault("seed_demo_user", defaultSeedDemoUser)
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http.port %d: must be between 1 and 65535", c.HTTP.Port)
	}
	switch c.Auth.TokenScheme {
	case TokenSchemeDemo:
	case TokenSchemeJWT:
		if c.Auth.JWTSecret == "" {
			return errors.New("auth.jwt_secret is empty")
		}
		if c.Auth.TokenLifetime <= 0 {
			return fmt.Errorf("invalid auth.token_lifetime %s: must be positive", c.Auth.TokenLifetime)
		}
	default:
		return fmt.Errorf("invalid auth.token_scheme %q: expected %q or %q", c.Auth.TokenScheme, TokenSchemeDemo, TokenSchemeJWT)
	}
	return nil
}

// ListenAddr is the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Address, c.HTTP.Port)
}

// resolveJWTSecret generates an in-memory secret when the jwt scheme is
// selected without one. Tokens then stop validating after a restart.
func resolveJWTSecret(cfg *Config) (string, error) {
	cfg.Auth.JWTSecret = strings.TrimSpace(cfg.Auth.JWTSecret)
	if cfg.Auth.TokenScheme != TokenSchemeJWT {
		return "Not used", nil
	}
	if cfg.Auth.JWTSecret != "" {
		return "Configured", nil
	}

	secret, err := generateRandomKey(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	cfg.Auth.JWTSecret = secret
	return "Generated (In Memory)", nil
}

// LogConfiguration prints the loaded configuration settings without secrets.
// It is called once the logger has been set up for cfg.Environment.
func LogConfiguration(cfg *Config) {
	configFile := cfg.ConfigFile
	if configFile == "" {
		configFile = "none"
	}
	log.Info().
		Str("environment", cfg.Environment).
		Str("config_file", configFile).
		Str("listen", cfg.ListenAddr()).
		Str("token_scheme", cfg.Auth.TokenScheme).
		Str("jwt_secret", cfg.JWTSecretSource).
		Dur("token_lifetime", cfg.Auth.TokenLifetime).
		Bool("seed_demo_user", cfg.SeedDemoUser).
		Strs("cors_origins", cfg.CORS.AllowedOrigins).
		Bool("openai_key", cfg.OpenAIConfigured).
		Bool("anthropic_key", cfg.AnthropicConfigured).
		Msg("configuration loaded")
}

// generateRandomKey generates a cryptographically secure random key of the specified byte length
// and returns it as a hex-encoded string.
func generateRandomKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
