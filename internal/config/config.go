// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type ServerConfig struct {
	Port            int           `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

type DBConfig struct {
	Driver         string        `envconfig:"DRIVER" default:"sqlite" validate:"oneof=sqlite postgres"`
	URL            string        `envconfig:"URL" default:"./data/chama.db" validate:"required"`
	ConnectTimeout time.Duration `envconfig:"CONNECT_TIMEOUT" default:"30s"`
}

type AuthConfig struct {
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true" validate:"min=16"`
	JWTExpiry time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
}

type RefCheckConfig struct {
	// Endpoint of the hosted classifier flow. Empty selects the built-in
	// heuristic classifier.
	Endpoint  string        `envconfig:"ENDPOINT" validate:"omitempty,url"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"5s"`
	MinLength int           `envconfig:"MIN_LENGTH" default:"10" validate:"min=1"`
	Debounce  time.Duration `envconfig:"DEBOUNCE" default:"500ms"`

	// RatePerSecond and Burst throttle CheckReference calls per caller.
	RatePerSecond float64 `envconfig:"RATE" default:"5" validate:"gt=0"`
	Burst         int     `envconfig:"BURST" default:"10" validate:"min=1"`
}

type LoanConfig struct {
	EnforceBalance bool `envconfig:"ENFORCE_BALANCE" default:"true"`
}

type LiveConfig struct {
	Buffer int `envconfig:"BUFFER" default:"32" validate:"min=1"`
}

// Config is the complete server configuration.
type Config struct {
	Env      string         `envconfig:"APP_ENV" default:"development"`
	Server   ServerConfig   `envconfig:"SERVER"`
	Log      LogConfig      `envconfig:"LOG"`
	DB       DBConfig       `envconfig:"DATABASE"`
	Auth     AuthConfig     `envconfig:"AUTH"`
	RefCheck RefCheckConfig `envconfig:"REFCHECK"`
	Loan     LoanConfig     `envconfig:"LOAN"`
	Live     LiveConfig     `envconfig:"LIVE"`
}

// Load reads the configuration. A missing .env file is not an error.
func Load(logger *slog.Logger, envFilePath ...string) (*Config, error) {
	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		logger.Debug("No .env file loaded, using process environment")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("Config loaded",
		"env", cfg.Env,
		"port", cfg.Server.Port,
		"db_driver", cfg.DB.Driver,
		"db_url", MaskURL(cfg.DB.URL),
		"jwt_secret", MaskSecret(cfg.Auth.JWTSecret),
		"jwt_expiry", cfg.Auth.JWTExpiry,
		"refcheck_endpoint", MaskURL(cfg.RefCheck.Endpoint),
		"loan_enforce_balance", cfg.Loan.EnforceBalance,
	)
	return &cfg, nil
}

// MaskSecret hides all but the ends of a secret.
func MaskSecret(s string) string {
	if len(s) <= 6 {
		return "****"
	}
	return s[:2] + "****" + s[len(s)-2:]
}

// MaskURL hides the password and query string of a connection URL. Paths
// without a scheme (SQLite files) are returned unchanged.
func MaskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "[MASKED]")
	}
	if u.RawQuery != "" {
		u.RawQuery = "[MASKED]"
	}
	return u.String()
}
