// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"drover-cli/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "drover"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "drover"
	// EnvPrefix is the prefix for environment variable bindings.
	EnvPrefix = "DROVER"
)

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
}

// ConfigDir returns the drover configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads configuration from the requested source. A missing config
// file is not an error; defaults and environment variables still apply.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("apps", defaults.Apps)
	v.SetDefault("source_roots", defaults.SourceRoots)
	v.SetDefault("task_modules", defaults.TaskModules)
	v.SetDefault("ignored_modules", defaults.IgnoredModules)
	v.SetDefault("processes", defaults.Processes)
	v.SetDefault("threads", defaults.Threads)

	// Environment bindings. The count overrides keep the names the worker
	// ecosystem already documents (NPROCS/NTHREADS) rather than deriving
	// them from the config keys.
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindEnv("processes", EnvPrefix+"_NPROCS"); err != nil {
		return nil, issue.WrapWithOperation(err, "bind environment")
	}
	if err := v.BindEnv("threads", EnvPrefix+"_NTHREADS"); err != nil {
		return nil, issue.WrapWithOperation(err, "bind environment")
	}

	if opts.ConfigFilePath != "" {
		v.SetConfigFile(opts.ConfigFilePath)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, issue.WrapWithContext(err, "read config file", v.ConfigFileUsed()).
				WithSuggestions("Check the YAML syntax of the config file")
		}
		// No config file anywhere: defaults + env apply.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.WrapWithContext(err, "parse config", v.ConfigFileUsed())
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.WrapWithContext(err, "validate config", v.ConfigFileUsed())
	}

	return cfg, nil
}
