package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/provider/aggregator"
	"github.com/davidbz/shreegen/internal/provider/anthropic"
	"github.com/davidbz/shreegen/internal/provider/echo"
	"github.com/davidbz/shreegen/internal/provider/gemini"
	"github.com/davidbz/shreegen/internal/provider/openai"
)

// Store drivers.
const (
	StoreDriverMemory = "memory"
	StoreDriverRedis  = "redis"
)

// Config represents the router configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        LogConfig
	Admin      AdminConfig
	Store      StoreConfig
	Router     RouterConfig
	Telemetry  TelemetryConfig
	OpenAI     openai.Config `envPrefix:"OPENAI_"`
	XAI        openai.Config `envPrefix:"XAI_"`
	Anthropic  anthropic.Config
	Gemini     gemini.Config
	Aggregator aggregator.Config
	Echo       echo.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"200"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization,X-Request-Id"`
	ExposedHeaders   []string `env:"CORS_EXPOSED_HEADERS"   envSeparator:"," envDefault:"X-Request-Id,X-Trace-Id"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level       string `env:"LOG_LEVEL"       envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// AdminConfig guards the operator API. An empty token disables the admin routes.
type AdminConfig struct {
	Token string `env:"ADMIN_TOKEN"`
}

// StoreConfig selects and configures the registry store.
type StoreConfig struct {
	Driver         string `env:"STORE_DRIVER"          envDefault:"memory"`
	RedisAddr      string `env:"REDIS_ADDR"            envDefault:"localhost:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB"              envDefault:"0"`
	KeyPrefix      string `env:"STORE_KEY_PREFIX"      envDefault:"shreegen"`
	EncryptionKey  string `env:"STORE_ENCRYPTION_KEY"`
	EncryptionSalt string `env:"STORE_ENCRYPTION_SALT" envDefault:"shreegen-registry"`
	AuditLimit     int    `env:"STORE_AUDIT_LIMIT"     envDefault:"1000"`
	SeedDirect     bool   `env:"STORE_SEED_DIRECT"     envDefault:"true"`
}

// RouterConfig contains the dispatch policy settings.
//   - Categories: accepted category labels; empty uses the built-in set
//   - DefaultModels: category=model overrides for the default route
type RouterConfig struct {
	Categories        []string          `env:"ROUTER_CATEGORIES"         envSeparator:","`
	AttemptTimeout    time.Duration     `env:"ROUTER_ATTEMPT_TIMEOUT"    envDefault:"60s"`
	RequestTimeout    time.Duration     `env:"ROUTER_REQUEST_TIMEOUT"    envDefault:"3m"`
	DefaultVendor     string            `env:"ROUTER_DEFAULT_VENDOR"     envDefault:"google"`
	DefaultModel      string            `env:"ROUTER_DEFAULT_MODEL"      envDefault:"gemini-3-flash-preview"`
	DefaultModels     map[string]string `env:"ROUTER_DEFAULT_MODELS"     envKeyValSeparator:"="`
	DefaultAPIKey     string            `env:"ROUTER_DEFAULT_API_KEY"`
	TerminalMessage   string            `env:"ROUTER_TERMINAL_MESSAGE"`
	SystemInstruction string            `env:"ROUTER_SYSTEM_INSTRUCTION"`
	Temperature       float64           `env:"ROUTER_TEMPERATURE"        envDefault:"0.7"`
}

// TelemetryConfig sizes the in-memory attempt history.
type TelemetryConfig struct {
	AttemptHistory int `env:"TELEMETRY_ATTEMPT_HISTORY" envDefault:"100"`
}

// DepConfig is used for dependency injection with dig.
// The two OpenAI-compatible configs are told apart by name.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*LogConfig
	*AdminConfig
	*StoreConfig
	*RouterConfig
	*TelemetryConfig

	Anthropic  *anthropic.Config
	Gemini     *gemini.Config
	Aggregator *aggregator.Config
	Echo       *echo.Config
	OpenAI     *openai.Config `name:"openai"`
	XAI        *openai.Config `name:"xai"`
}

// Load loads environment files and parses configuration.
func Load() *Config {
	cfg, err := Parse()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Parse loads .env when present, then parses and validates the environment.
func Parse() (*Config, error) {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the router cannot run with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverRedis:
		if c.Store.EncryptionKey == "" {
			return errors.New("STORE_ENCRYPTION_KEY is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Router.AttemptTimeout < 0 || c.Router.RequestTimeout < 0 {
		return errors.New("router timeouts cannot be negative")
	}

	// The terminal result has to be written before the server drops the connection.
	if write := time.Duration(c.Server.WriteTimeout) * time.Second; write > 0 {
		if c.Router.RequestTimeout <= 0 || c.Router.RequestTimeout >= write {
			return fmt.Errorf("ROUTER_REQUEST_TIMEOUT (%s) must be positive and shorter than SERVER_WRITE_TIMEOUT (%s)",
				c.Router.RequestTimeout, write)
		}
	}

	for label := range c.Router.DefaultModels {
		if _, err := c.Router.CategorySet().Parse(label); err != nil {
			return fmt.Errorf("ROUTER_DEFAULT_MODELS: %w", err)
		}
	}

	return nil
}

// CategorySet returns the accepted categories.
func (c RouterConfig) CategorySet() domain.CategorySet {
	return domain.NewCategorySet(c.Categories)
}

// DispatchPolicy maps the router settings onto the orchestrator policy.
func (c RouterConfig) DispatchPolicy() domain.DispatchPolicy {
	models := make(map[domain.Category]string, len(c.DefaultModels))
	for label, model := range c.DefaultModels {
		models[domain.NormalizeCategory(label)] = model
	}

	return domain.DispatchPolicy{
		SystemInstruction: c.SystemInstruction,
		Temperature:       c.Temperature,
		AttemptTimeout:    c.AttemptTimeout,
		RequestTimeout:    c.RequestTimeout,
		TerminalMessage:   c.TerminalMessage,
		Default: domain.DefaultRoute{
			Vendor:         c.DefaultVendor,
			Model:          c.DefaultModel,
			CategoryModels: models,
			Credential:     c.DefaultAPIKey,
		},
	}
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:             dig.Out{},
		ServerConfig:    &cfg.Server,
		CORSConfig:      &cfg.CORS,
		LogConfig:       &cfg.Log,
		AdminConfig:     &cfg.Admin,
		StoreConfig:     &cfg.Store,
		RouterConfig:    &cfg.Router,
		TelemetryConfig: &cfg.Telemetry,
		Anthropic:       &cfg.Anthropic,
		Gemini:          &cfg.Gemini,
		Aggregator:      &cfg.Aggregator,
		Echo:            &cfg.Echo,
		OpenAI:          &cfg.OpenAI,
		XAI:             &cfg.XAI,
	}
}
