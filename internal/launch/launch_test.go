// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"slices"
	"testing"
)

func TestPlan_MinimalOptions(t *testing.T) {
	spec := Plan(Options{
		Paths:           []string{"."},
		Processes:       4,
		Threads:         8,
		ShutdownTimeout: DefaultShutdownTimeout,
		Modules:         []string{"drover.setup", "app.tasks"},
	})

	want := []string{
		"dramatiq",
		"--path", ".",
		"--processes", "4",
		"--threads", "8",
		"--worker-shutdown-timeout", "600000",
		"drover.setup", "app.tasks",
	}
	if !slices.Equal(spec.Args, want) {
		t.Errorf("Args = %v, want %v", spec.Args, want)
	}
}

func TestPlan_AllOptions(t *testing.T) {
	spec := Plan(Options{
		Paths:             []string{".", "lib"},
		Processes:         2,
		Threads:           16,
		ShutdownTimeout:   1000,
		WatchDir:          "/srv/project",
		UsePollingWatcher: true,
		ForkFunctions:     []string{"app.forks.scheduler", "app.forks.beat"},
		Verbosity:         2,
		Modules:           []string{"drover.setup", "app.tasks"},
		Queues:            []string{"default", "email"},
		PIDFile:           "/run/drover.pid",
		LogFile:           "/var/log/drover.log",
		SkipLogging:       true,
	})

	want := []string{
		"dramatiq",
		"--path", ".", "lib",
		"--processes", "2",
		"--threads", "16",
		"--worker-shutdown-timeout", "1000",
		"--watch", "/srv/project",
		"--watch-use-polling",
		"--fork-function", "app.forks.scheduler",
		"--fork-function", "app.forks.beat",
		"-v", "-v",
		"drover.setup", "app.tasks",
		"--queues", "default", "email",
		"--pid-file", "/run/drover.pid",
		"--log-file", "/var/log/drover.log",
		"--skip-logging",
	}
	if !slices.Equal(spec.Args, want) {
		t.Errorf("Args = %v, want %v", spec.Args, want)
	}
}

func TestPlan_PollingRequiresWatchDir(t *testing.T) {
	// A polling watcher without a watch directory is meaningless and the
	// flag must not be emitted, whatever else is set.
	perms := []Options{
		{UsePollingWatcher: true},
		{UsePollingWatcher: true, SkipLogging: true, Verbosity: 3},
		{UsePollingWatcher: true, Queues: []string{"q"}},
	}
	for _, opts := range perms {
		opts.Paths = []string{"."}
		spec := Plan(opts)
		if slices.Contains(spec.Args, "--watch-use-polling") {
			t.Errorf("Args = %v contains --watch-use-polling without --watch", spec.Args)
		}
		if slices.Contains(spec.Args, "--watch") {
			t.Errorf("Args = %v contains --watch without a watch dir", spec.Args)
		}
	}
}

func TestPlan_WatchWithoutPolling(t *testing.T) {
	spec := Plan(Options{Paths: []string{"."}, WatchDir: "."})

	i := slices.Index(spec.Args, "--watch")
	if i < 0 || spec.Args[i+1] != "." {
		t.Fatalf("Args = %v missing --watch .", spec.Args)
	}
	if slices.Contains(spec.Args, "--watch-use-polling") {
		t.Errorf("Args = %v contains --watch-use-polling without the toggle", spec.Args)
	}
}

func TestPlan_GeventExecutable(t *testing.T) {
	spec := Plan(Options{Paths: []string{"."}, UseGevent: true})

	if spec.Args[0] != GeventExecutableName {
		t.Errorf("Args[0] = %q, want %q", spec.Args[0], GeventExecutableName)
	}
}

func TestPlan_VerbosityCount(t *testing.T) {
	for _, verbosity := range []int{0, 1, 3} {
		spec := Plan(Options{Paths: []string{"."}, Verbosity: verbosity})
		count := 0
		for _, arg := range spec.Args {
			if arg == "-v" {
				count++
			}
		}
		if count != verbosity {
			t.Errorf("verbosity %d: got %d -v flags", verbosity, count)
		}
	}
}

func TestPlan_NoQueuesFlagWhenEmpty(t *testing.T) {
	spec := Plan(Options{Paths: []string{"."}})
	if slices.Contains(spec.Args, "--queues") {
		t.Errorf("Args = %v contains --queues for an empty queue set", spec.Args)
	}
}

func TestSpec_CommandLine(t *testing.T) {
	spec := &Spec{Args: []string{"dramatiq", "--path", ".", "app.tasks"}}
	want := "dramatiq --path . app.tasks"
	if got := spec.CommandLine(); got != want {
		t.Errorf("CommandLine() = %q, want %q", got, want)
	}
}

func TestResolveExecutable_FallsBackToBareName(t *testing.T) {
	// The test binary's directory will not contain this name.
	name := "definitely-not-a-real-supervisor"
	if got := ResolveExecutable(name); got != name {
		t.Errorf("ResolveExecutable(%q) = %q, want bare name fallback", name, got)
	}
}
