package config

import (
	"github.com/thoreinstein/sklint/internal/errors"
)

// validOutputs are the accepted report formats.
var validOutputs = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.SkillsDir == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "skills_dir must not be empty")
	}
	if c.CharBudget <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "char_budget must be positive, got %d", c.CharBudget)
	}
	if !validOutputs[c.Output] {
		return errors.Wrapf(errors.ErrInvalidConfig, "output must be text or json, got %q", c.Output)
	}
	return nil
}
