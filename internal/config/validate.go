package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// All violations are reported together.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Auth.Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout must be > 0 (got %s)", c.Server.ShutdownTimeout))
	}

	if c.Database.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns))
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns must be in 0..max_conns (got %d)", c.Database.MinConns))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Validate checks the token settings on their own, for tools that mint
// tokens without the rest of the configuration.
func (a AuthConfig) Validate() error {
	var errs []error

	if len(a.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret)))
	}
	if strings.TrimSpace(a.Issuer) == "" {
		errs = append(errs, errors.New("auth.issuer must not be empty"))
	}
	if a.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.token_ttl must be > 0 (got %s)", a.TokenTTL))
	}

	return errors.Join(errs...)
}
