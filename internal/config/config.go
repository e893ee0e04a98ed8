// Paprikasync - Paprika Recipe Sync Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/paprikasync

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces the environment variable layer:
// PAPRIKA_ACCOUNT_EMAIL -> account.email.
const EnvPrefix = "PAPRIKA_"

// ConfigPathEnvVar overrides the config file search.
const ConfigPathEnvVar = "PAPRIKA_CONFIG"

// Config is the full runtime configuration.
type Config struct {
	Account AccountConfig `koanf:"account"`
	Sync    SyncConfig    `koanf:"sync"`
	API     APIConfig     `koanf:"api"`
	Retry   RetryConfig   `koanf:"retry"`
	Logging LoggingConfig `koanf:"logging"`
}

type AccountConfig struct {
	Email string `koanf:"email" validate:"omitempty,email"`
}

type SyncConfig struct {
	// RecipeDir is where local recipe files live.
	RecipeDir string `koanf:"recipe_dir" validate:"required"`

	// StatePath locates the sync manifest database.
	StatePath string `koanf:"state_path" validate:"required"`
}

type APIConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`

	// MinRequestInterval spaces consecutive API requests; negative
	// disables pacing.
	MinRequestInterval time.Duration `koanf:"min_request_interval"`

	// Timeout bounds a single HTTP exchange.
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

type RetryConfig struct {
	MaxAttempts      int           `koanf:"max_attempts" validate:"min=1"`
	RateLimitBackoff time.Duration `koanf:"rate_limit_backoff" validate:"gt=0"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

// defaultConfig holds the values used before any file or environment
// layer is applied.
func defaultConfig() *Config {
	return &Config{
		Sync: SyncConfig{
			RecipeDir: "recipes",
			StatePath: defaultStatePath(),
		},
		API: APIConfig{
			BaseURL:            "https://www.paprikaapp.com",
			MinRequestInterval: 2 * time.Second,
			Timeout:            30 * time.Second,
		},
		Retry: RetryConfig{
			MaxAttempts:      3,
			RateLimitBackoff: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// defaultStatePath places the manifest under the user cache directory,
// falling back to the working directory when none is available.
func defaultStatePath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ".paprikasync-state.db"
	}
	return filepath.Join(cacheDir, "paprikasync", "state.db")
}

// defaultConfigPaths are searched in order when no explicit path is
// given.
func defaultConfigPaths() []string {
	paths := []string{"paprikasync.yaml", "paprikasync.yml"}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(configDir, "paprikasync", "config.yaml"),
			filepath.Join(configDir, "paprikasync", "config.yml"),
		)
	}
	return paths
}

// Load builds the configuration from defaults, the config file at path
// (or the first default path when path is empty, or none when no file
// exists), and the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	configPath, explicit := findConfigFile(path)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", configPath, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s not found", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile resolves which config file to read. The second return
// reports whether the caller named a specific file that must exist.
func findConfigFile(path string) (string, bool) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
		return "", true
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, true
		}
		return "", true
	}

	for _, candidate := range defaultConfigPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, false
		}
	}
	return "", false
}

// envTransform maps PAPRIKA_SECTION_KEY_NAME to section.key_name. The
// section is the token before the first underscore; the rest keeps its
// underscores.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return section
	}
	return section + "." + rest
}

// Validate checks field constraints and returns the first violation in
// a readable form.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.Split(field.Tag.Get("koanf"), ",")[0]
	})
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("config: validation: %w", err)
	}

	first := verrs[0]
	return fmt.Errorf("config: field %s fails %q constraint (value %v)",
		strings.ToLower(first.Namespace()), first.Tag(), first.Value())
}
