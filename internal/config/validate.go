package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid TCP port (got %d)", c.Server.Port)
	}

	return nil
}

func (r *ReportConfig) validate() error {
	if r.DefaultPageSize < 1 {
		return fmt.Errorf("default_page_size must be >= 1 (got %d)", r.DefaultPageSize)
	}
	if r.MaxPageSize < r.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", r.MaxPageSize, r.DefaultPageSize)
	}
	if r.MaxRangeDays < 1 {
		return fmt.Errorf("max_range_days must be >= 1 (got %d)", r.MaxRangeDays)
	}
	return nil
}
