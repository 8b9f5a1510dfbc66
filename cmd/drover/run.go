// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"runtime"

	"drover-cli/internal/config"
	"drover-cli/internal/discovery"
	"drover-cli/internal/launch"
	"drover-cli/internal/resolve"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	runSkipLogging     bool
	runReload          bool
	runWatchDir        string
	runUsePolling      bool
	runUseGevent       bool
	runProcesses       int
	runThreads         int
	runPaths           []string
	runQueues          []string
	runPIDFile         string
	runLogFile         string
	runForkFunctions   []string
	runShutdownTimeout int
	runVerbosity       int

	// launcherFactory is swapped in tests to capture the planned spec
	// instead of actually handing off the process.
	launcherFactory = launch.New

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Discover task modules and launch dramatiq workers",
		Long: `Discover the task modules of every configured application component and
launch the dramatiq worker supervisor over them.

The module list always starts with drover's own setup module. Components
are scanned in the order they appear under 'apps'; a component's tasks
package contributes each of its importable submodules. Modules matching
an ignore pattern (exact name, or 'prefix.*' for a subtree) are reported
and skipped.

On unix the current process is replaced by the worker supervisor. On
windows the supervisor runs as a child process and drover exits with its
status.`,
		RunE: runWorkers,
	}
)

func init() {
	flags := runCmd.Flags()

	flags.BoolVar(&runSkipLogging, "skip-logging", false, "do not set up supervisor logging")
	flags.BoolVar(&runReload, "reload", false, "enable autoreload; equivalent to '--watch .'")
	flags.StringVar(&runWatchDir, "watch", "", "reload workers when changes are detected in the given directory")
	flags.BoolVar(&runUsePolling, "reload-use-polling", false, "use a poll-based file watcher for autoreload (useful under Vagrant and Docker for Mac)")
	flags.BoolVar(&runUseGevent, "use-gevent", false, "use gevent for worker concurrency")
	flags.IntVarP(&runProcesses, "processes", "p", 0, "the number of processes to run (default: one per CPU)")
	flags.IntVarP(&runThreads, "threads", "t", 0, fmt.Sprintf("the number of threads per process to use (default: %d)", launch.DefaultThreads))
	flags.StringSliceVarP(&runPaths, "path", "P", []string{"."}, "the import path (repeatable)")
	flags.StringSliceVarP(&runQueues, "queues", "Q", nil, "listen to a subset of queues, or all when empty (repeatable)")
	flags.StringVar(&runPIDFile, "pid-file", "", "write the PID of the master process to this file")
	flags.StringVar(&runLogFile, "log-file", "", "write all logs to a file, or stderr when empty")
	flags.StringArrayVar(&runForkFunctions, "fork-function", nil, "fork a subprocess to run the given function (repeatable)")
	flags.IntVar(&runShutdownTimeout, "worker-shutdown-timeout", launch.DefaultShutdownTimeout, "timeout for worker shutdown, in milliseconds")
	flags.CountVarP(&runVerbosity, "verbose", "v", "increase supervisor verbosity (repeatable)")

	runCmd.MarkFlagsMutuallyExclusive("reload", "watch")
}

// resolveCount applies the count precedence: explicit flag, then the
// configured value (which already folds env over file over defaults), then
// the built-in fallback.
func resolveCount(flagChanged bool, flagValue, configValue, fallback int) int {
	if flagChanged {
		return flagValue
	}
	if configValue > 0 {
		return configValue
	}
	return fallback
}

func runWorkers(cmd *cobra.Command, _ []string) error {
	if runVerbosity > 0 {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return errors.New(formatErrorForDisplay(err, runVerbosity > 0))
	}

	watchDir := runWatchDir
	if runReload {
		watchDir = "."
	}

	processes := resolveCount(cmd.Flags().Changed("processes"), runProcesses, cfg.Processes, runtime.NumCPU())
	threads := resolveCount(cmd.Flags().Changed("threads"), runThreads, cfg.Threads, launch.DefaultThreads)
	logger.Debug("resolved worker topology", "processes", processes, "threads", threads)

	disc := discovery.New(resolve.NewFSResolver(cfg.SourceRoots))
	disc.Out = cmd.OutOrStdout()
	disc.Logger = logger

	comps := make([]discovery.Component, 0, len(cfg.Apps))
	for _, app := range cfg.Apps {
		comps = append(comps, discovery.Component{Name: app})
	}

	modules, err := disc.Discover(comps, cfg.TaskModules, discovery.NewPatternSet(cfg.IgnoredModules))
	if err != nil {
		return errors.New(formatErrorForDisplay(err, runVerbosity > 0))
	}

	spec := launch.Plan(launch.Options{
		Paths:             runPaths,
		Processes:         processes,
		Threads:           threads,
		ShutdownTimeout:   runShutdownTimeout,
		WatchDir:          watchDir,
		UsePollingWatcher: runUsePolling,
		UseGevent:         runUseGevent,
		ForkFunctions:     runForkFunctions,
		Verbosity:         runVerbosity,
		Modules:           modules,
		Queues:            runQueues,
		PIDFile:           runPIDFile,
		LogFile:           runLogFile,
		SkipLogging:       runSkipLogging,
	})

	fmt.Fprintf(cmd.OutOrStdout(), " * Running dramatiq: %q\n\n", spec.CommandLine())

	code, err := launcherFactory().Launch(spec)
	if err != nil {
		return errors.New(formatErrorForDisplay(err, runVerbosity > 0))
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
