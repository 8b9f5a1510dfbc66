// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"drover-cli/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	prev := Version
	t.Cleanup(func() { Version = prev })

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version = "1.2.3"
	if got := getVersionString(); !strings.HasPrefix(got, "1.2.3") {
		t.Errorf("getVersionString() = %q, want 1.2.3 prefix", got)
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, false); got != "plain failure" {
		t.Errorf("formatErrorForDisplay(plain) = %q", got)
	}

	actionable := issue.WrapWithContext(errors.New("boom"), "load config", "drover.yaml").
		WithSuggestions("Check the YAML syntax")
	got := formatErrorForDisplay(actionable, false)
	if !strings.Contains(got, "Check the YAML syntax") {
		t.Errorf("formatErrorForDisplay(actionable) = %q, want suggestion rendered", got)
	}
}

func TestRunCommandRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "run" {
			return
		}
	}
	t.Error("run command not registered on root")
}
