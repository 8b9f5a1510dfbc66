// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for drover.
//
// This package implements the Cobra command hierarchy: the root command
// and the run command that discovers task modules and hands off to the
// dramatiq worker supervisor.
package cmd
