// SPDX-License-Identifier: MPL-2.0

package launch

// Launcher hands control to the worker supervisor. On platforms that
// support process-image replacement, Launch does not return on success;
// elsewhere it spawns a child, waits, and returns its exit code.
type Launcher interface {
	Launch(spec *Spec) (int, error)
}

// New returns the launcher for the current platform.
func New() Launcher {
	return newLauncher()
}
