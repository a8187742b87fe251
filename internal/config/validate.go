package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return errors.New("input.path is required")
	}
	if c.Output.Path == "" {
		return errors.New("output.path is required")
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must be >= 0, got %d", c.Output.Indent)
	}

	if c.Convert.USDToINR <= 0 {
		return fmt.Errorf("convert.usd_to_inr must be > 0, got %v", c.Convert.USDToINR)
	}

	if c.Errors.Policy != PolicyAbort && c.Errors.Policy != PolicySkip {
		return fmt.Errorf("errors.policy must be %q or %q, got %q", PolicyAbort, PolicySkip, c.Errors.Policy)
	}
	if c.Errors.Policy == PolicySkip && c.Errors.RejectsPath == "" {
		return errors.New("errors.rejects_path is required when errors.policy is skip")
	}

	if c.Sinks.Postgres.Enabled() {
		if err := c.Sinks.Postgres.validate("sinks.postgres"); err != nil {
			return err
		}
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("%s.port must be between 1 and 65535, got %d", prefix, db.Port)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
