// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package launch

import (
	"os"
	"os/exec"
	"syscall"

	"drover-cli/internal/issue"
)

func newLauncher() Launcher {
	return &execLauncher{}
}

type execLauncher struct{}

// Launch replaces the current process image with the worker supervisor.
// It returns only on failure; the returned code is meaningless then.
func (*execLauncher) Launch(spec *Spec) (int, error) {
	path, err := exec.LookPath(spec.Path)
	if err != nil {
		return 0, issue.WrapWithContext(err, "locate worker supervisor", spec.Path).
			WithSuggestions("Install dramatiq or put it on PATH")
	}

	if err := syscall.Exec(path, spec.Args, os.Environ()); err != nil {
		return 0, issue.WrapWithContext(err, "exec worker supervisor", path)
	}

	// Unreachable: Exec does not return on success.
	return 0, nil
}
