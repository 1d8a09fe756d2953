// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

// package config loads and writes Formkeeper's configuration. Values come
// from (highest precedence first) CLI flags, environment variables prefixed
// FORMKEEPER_, an explicit --config file, and the standard config locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`
	Auth struct {
		MinPasswordLength int    `mapstructure:"min_password_length" yaml:"min_password_length"`
		UsernamePattern   string `mapstructure:"username_pattern" yaml:"username_pattern"`
	} `mapstructure:"auth" yaml:"auth"`
	Language string `mapstructure:"language" yaml:"language"`
	Theme    string `mapstructure:"theme" yaml:"theme"`
	Debug    bool   `mapstructure:"debug" yaml:"debug"`
}

// Defaults returns the built-in default values, used when neither a config
// file nor flags nor environment variables provide a setting.
func Defaults() map[string]any {
	return map[string]any{
		"database.type":            "sqlite",
		"database.dsn":             "./formkeeper.db",
		"auth.min_password_length": 6,
		"auth.username_pattern":    "^[a-zA-Z0-9_]+$",
		"language":                 "en",
		"theme":                    "system",
		"debug":                    false,
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Formkeeper")
		default:
			configDir = "/etc/formkeeper"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "formkeeper")
	}

	return filepath.Join(configDir, "formkeeper.yaml"), nil
}

// DefaultConfigPath returns the user-level config file path. Callers use it
// to detect a first run before writing a default config.
func DefaultConfigPath() (string, error) {
	return getConfigPath(false)
}

// LoadConfig builds a T from defaults, config files, environment variables
// and the command's flags. An explicit config file path, when provided, has
// the highest precedence among file sources.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("formkeeper")
	v.SetConfigType("yaml")

	if configFilePath != nil && *configFilePath != "" {
		v.SetConfigFile(*configFilePath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("formkeeper")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// WriteConfigFile persists the given configuration as YAML to the standard
// user (or system) config location, creating the directory as needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}
