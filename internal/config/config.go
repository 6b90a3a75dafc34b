// Package config manages sklint configuration via viper.
//
// Configuration is resolved in precedence order: command-line flags,
// SKLINT_* environment variables, the config file, then built-in defaults.
// The config file lives at $XDG_CONFIG_HOME/sklint/config.yaml.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/sklint/internal/errors"
	"github.com/thoreinstein/sklint/internal/paths"
)

// Default values.
const (
	// DefaultCharBudget is the character budget for all skill descriptions
	// combined. Descriptions are always loaded into the model context, so
	// their total size is bounded.
	DefaultCharBudget = 15000

	// DefaultOutput is the default report format.
	DefaultOutput = "text"
)

// Config holds the sklint configuration.
type Config struct {
	// SkillsDir is the directory scanned when no path argument is given.
	SkillsDir string `mapstructure:"skills_dir"`

	// CharBudget is the combined description character budget.
	CharBudget int `mapstructure:"char_budget"`

	// Strict treats warnings as errors.
	Strict bool `mapstructure:"strict"`

	// Output selects the report format: text or json.
	Output string `mapstructure:"output"`
}

// Dir returns the sklint config directory.
func Dir() string {
	return filepath.Join(paths.ConfigHome(), "sklint")
}

// File returns the config file path.
func File() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Init configures viper with defaults, env bindings, and the config file
// location. It must be called once before Load.
func Init() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix("SKLINT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("skills_dir", paths.DefaultSkillsDir())
	viper.SetDefault("char_budget", DefaultCharBudget)
	viper.SetDefault("strict", false)
	viper.SetDefault("output", DefaultOutput)

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return errors.Wrap(err, "reading config file")
		}
	}

	return nil
}

// Load unmarshals the resolved configuration and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
