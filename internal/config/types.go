// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAppName is returned when an entry in the apps list is not a
	// dotted module identifier.
	ErrInvalidAppName = errors.New("invalid app name")
	// ErrInvalidCount is returned when a process or thread count is negative.
	ErrInvalidCount = errors.New("invalid count")
)

// Config holds the resolved drover configuration.
type Config struct {
	// Apps is the ordered list of installed application components whose
	// task modules are discovered. Order determines discovery order.
	Apps []string `mapstructure:"apps"`

	// SourceRoots are the filesystem roots against which dotted module
	// paths are resolved. Roots are probed in order.
	SourceRoots []string `mapstructure:"source_roots"`

	// TaskModules are the submodule names probed on each app.
	TaskModules []string `mapstructure:"task_modules"`

	// IgnoredModules are ignore patterns: either an exact dotted module
	// path or a dotted prefix followed by ".*" to exclude a whole subtree.
	IgnoredModules []string `mapstructure:"ignored_modules"`

	// Processes is the worker process count. Zero means "auto" (one per
	// CPU). Overridable via DROVER_NPROCS and the --processes flag.
	Processes int `mapstructure:"processes"`

	// Threads is the per-process thread count. Zero means the built-in
	// default. Overridable via DROVER_NTHREADS and the --threads flag.
	Threads int `mapstructure:"threads"`
}

// DefaultConfig returns the built-in configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		SourceRoots: []string{"."},
		TaskModules: []string{"tasks"},
	}
}

// Validate checks the configuration for values that can never work.
func (c *Config) Validate() error {
	for _, app := range c.Apps {
		if strings.TrimSpace(app) == "" {
			return fmt.Errorf("%w: empty entry in apps", ErrInvalidAppName)
		}
	}
	if c.Processes < 0 {
		return fmt.Errorf("%w: processes = %d", ErrInvalidCount, c.Processes)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: threads = %d", ErrInvalidCount, c.Threads)
	}
	return nil
}
