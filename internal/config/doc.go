// SPDX-License-Identifier: MPL-2.0

// Package config loads drover configuration.
//
// Configuration is sourced, in increasing precedence, from built-in
// defaults, a drover.yaml file (working directory, then the platform
// config directory), and DROVER_* environment variables. Command-line
// flags override all of these; that last step happens in the cmd layer,
// which only applies a config value when the corresponding flag was not
// set explicitly.
package config
