// SPDX-License-Identifier: MPL-2.0

//go:build windows

package launch

import (
	"os"
	"os/exec"

	"drover-cli/internal/issue"
)

func newLauncher() Launcher {
	return &spawnLauncher{}
}

type spawnLauncher struct{}

// Launch spawns the worker supervisor as a child process, waits for it to
// finish, and returns its exit code. Windows has no process-image
// replacement, so the caller exits with the returned code instead.
func (*spawnLauncher) Launch(spec *Spec) (int, error) {
	cmd := exec.Command(spec.Path, spec.Args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 0, issue.WrapWithContext(err, "run worker supervisor", spec.Path).
			WithSuggestions("Install dramatiq or put it on PATH")
	}

	return 0, nil
}
