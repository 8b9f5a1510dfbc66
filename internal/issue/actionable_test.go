// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load config"},
			expected: "failed to load config",
		},
		{
			name:     "operation and resource",
			err:      &ActionableError{Operation: "resolve tasks module", Resource: "app1.tasks"},
			expected: "failed to resolve tasks module: app1.tasks",
		},
		{
			name: "operation, resource and cause",
			err: &ActionableError{
				Operation: "resolve tasks module",
				Resource:  "app1.tasks",
				Cause:     errors.New("no such file"),
			},
			expected: "failed to resolve tasks module: app1.tasks: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapWithOperation(cause, "discover modules")

	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not find the wrapped cause")
	}
}

func TestWrapWithOperation_NilError(t *testing.T) {
	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil, ...) = %v, want nil", got)
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("permission denied")
	err := WrapWithContext(cause, "read source root", "/srv/project")

	want := "failed to read source root: /srv/project: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestActionableError_Format(t *testing.T) {
	err := WrapWithContext(errors.New("not found"), "resolve tasks module", "app1.tasks").
		WithSuggestions("Check the 'apps' list in drover.yaml")

	plain := err.Format(false)
	if !strings.Contains(plain, "• Check the 'apps' list in drover.yaml") {
		t.Errorf("Format(false) missing suggestion: %q", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Error("Format(false) should not include the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain: %q", verbose)
	}
	if !strings.Contains(verbose, "1. not found") {
		t.Errorf("Format(true) missing chain entry: %q", verbose)
	}
}
