// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// ExecutableName is the thread-based worker supervisor binary.
	ExecutableName = "dramatiq"
	// GeventExecutableName is the greenlet-based worker supervisor binary.
	GeventExecutableName = "dramatiq-gevent"

	// DefaultThreads is the per-process thread count when nothing
	// overrides it.
	DefaultThreads = 8
	// DefaultShutdownTimeout is the worker shutdown timeout in
	// milliseconds.
	DefaultShutdownTimeout = 600000
)

type (
	// Options are the resolved worker-supervisor invocation parameters.
	Options struct {
		// Paths are the import paths handed to the supervisor.
		Paths []string
		// Processes is the worker process count.
		Processes int
		// Threads is the per-process thread count.
		Threads int
		// ShutdownTimeout is the worker shutdown timeout in milliseconds.
		ShutdownTimeout int
		// WatchDir enables autoreload over the given directory when set.
		WatchDir string
		// UsePollingWatcher selects a poll-based file watcher. Only
		// meaningful together with WatchDir; never emitted without it.
		UsePollingWatcher bool
		// UseGevent selects the greenlet-based supervisor binary.
		UseGevent bool
		// ForkFunctions are forked alongside the workers, in order.
		ForkFunctions []string
		// Verbosity is the number of -v flags to pass through.
		Verbosity int
		// Modules is the discovered task-module list, in load order.
		Modules []string
		// Queues restricts workers to a subset of queues when non-empty.
		Queues []string
		// PIDFile receives the master process PID when set.
		PIDFile string
		// LogFile receives all logs when set.
		LogFile string
		// SkipLogging suppresses the supervisor's logging setup.
		SkipLogging bool
	}

	// Spec is the planned invocation: the resolved executable and the full
	// argument vector. Constructed once by Plan, consumed once by Launch.
	Spec struct {
		// Path is the resolved executable: an absolute path when the
		// binary was found next to the current executable, otherwise the
		// bare name for search-path resolution.
		Path string
		// Args is the full argument vector. Args[0] is the bare
		// executable name.
		Args []string
	}
)

// CommandLine renders the argument vector for display.
func (s *Spec) CommandLine() string {
	return strings.Join(s.Args, " ")
}

// Plan builds the invocation spec for the worker supervisor. The argument
// order reproduces what dramatiq expects:
//
//	<name> --path P... --processes N --threads N
//	--worker-shutdown-timeout T [--watch DIR [--watch-use-polling]]
//	[--fork-function F]... [-v]... MODULE... [--queues Q...]
//	[--pid-file P] [--log-file L] [--skip-logging]
func Plan(opts Options) *Spec {
	name := ExecutableName
	if opts.UseGevent {
		name = GeventExecutableName
	}

	args := []string{name, "--path"}
	args = append(args, opts.Paths...)
	args = append(args,
		"--processes", strconv.Itoa(opts.Processes),
		"--threads", strconv.Itoa(opts.Threads),
		"--worker-shutdown-timeout", strconv.Itoa(opts.ShutdownTimeout),
	)

	if opts.WatchDir != "" {
		args = append(args, "--watch", opts.WatchDir)
		if opts.UsePollingWatcher {
			args = append(args, "--watch-use-polling")
		}
	}

	for _, fn := range opts.ForkFunctions {
		args = append(args, "--fork-function", fn)
	}

	for i := 0; i < opts.Verbosity; i++ {
		args = append(args, "-v")
	}

	args = append(args, opts.Modules...)

	if len(opts.Queues) > 0 {
		args = append(args, "--queues")
		args = append(args, opts.Queues...)
	}

	if opts.PIDFile != "" {
		args = append(args, "--pid-file", opts.PIDFile)
	}

	if opts.LogFile != "" {
		args = append(args, "--log-file", opts.LogFile)
	}

	if opts.SkipLogging {
		args = append(args, "--skip-logging")
	}

	return &Spec{
		Path: ResolveExecutable(name),
		Args: args,
	}
}

// ResolveExecutable locates the supervisor binary by probing the directory
// of the current executable and its Scripts subfolder (the virtualenv
// layout on windows). When neither contains it, the bare name is returned
// and search-path resolution happens at handoff.
func ResolveExecutable(name string) string {
	self, err := os.Executable()
	if err != nil {
		return name
	}

	binDir := filepath.Dir(self)
	for _, dir := range []string{binDir, filepath.Join(binDir, "Scripts")} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}

	return name
}
