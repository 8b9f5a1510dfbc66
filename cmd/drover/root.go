// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"drover-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// cfgFile allows specifying a custom config file
	cfgFile string

	// logger emits diagnostics; the functional report lines go to stdout.
	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "drover",
		Short: "A launcher for dramatiq task workers",
		Long: TitleStyle.Render("drover") + SubtitleStyle.Render(" - a launcher for dramatiq task workers") + `

drover discovers the task modules of a project's installed application
components, filters them through configured ignore patterns, and hands
off to the dramatiq worker supervisor with the computed process/thread
topology and queue filters.

` + SubtitleStyle.Render("Quick Start:") + `
  1. List your application components under 'apps' in drover.yaml
  2. Declare tasks in each component's tasks module
  3. Launch the workers with: drover run

` + SubtitleStyle.Render("Examples:") + `
  drover run                       Launch workers with defaults
  drover run --reload              Restart workers on code changes
  drover run -p 4 -Q email         Four processes on the email queue`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./drover.yaml)")

	rootCmd.AddCommand(runCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// render their suggestions; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
