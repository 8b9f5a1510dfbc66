// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"io"
	"os"

	"drover-cli/internal/issue"
	"drover-cli/internal/resolve"

	"github.com/charmbracelet/log"
)

const (
	// BuiltinComponent is drover's own component name. When it appears in
	// the configured app list it always uses the fixed "tasks" submodule
	// name, regardless of the configured task-module names, so drover's
	// own tasks are always found.
	BuiltinComponent = "drover"

	// SetupModule is the built-in setup module that every discovered list
	// starts with. The worker supervisor imports it first so broker and
	// middleware wiring happen before any task module loads.
	SetupModule = "drover.setup"

	builtinTaskModule = "tasks"
)

type (
	// Component is an installed application component, identified by its
	// dotted name. Components are supplied in discovery order.
	Component struct {
		Name string
	}

	// candidate pairs a component with one task-module name it exposes.
	candidate struct {
		component  string
		taskModule string
	}

	// Discoverer enumerates task modules across components.
	Discoverer struct {
		// Resolver locates modules by dotted path.
		Resolver resolve.Resolver
		// Out receives the per-module report lines. nil defaults to
		// os.Stdout.
		Out io.Writer
		// Logger receives debug diagnostics. nil defaults to the standard
		// logger.
		Logger *log.Logger
	}
)

// New creates a Discoverer over the given resolver.
func New(resolver resolve.Resolver) *Discoverer {
	return &Discoverer{Resolver: resolver}
}

func (d *Discoverer) out() io.Writer {
	if d.Out != nil {
		return d.Out
	}
	return os.Stdout
}

func (d *Discoverer) logger() *log.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return log.Default()
}

// Discover returns the ordered list of task modules to load: the built-in
// setup module first, then every accepted candidate (or, for packages, its
// accepted submodules) in component order.
//
// A component simply lacking a task-module name is skipped silently. A
// module the component claims to expose but that fails to resolve is a
// fatal error; there is no partial-success mode.
func (d *Discoverer) Discover(components []Component, taskModuleNames []string, ignored PatternSet) ([]string, error) {
	var candidates []candidate
	for _, comp := range components {
		if comp.Name == BuiltinComponent {
			candidates = append(candidates, candidate{comp.Name, builtinTaskModule})
			continue
		}
		for _, name := range taskModuleNames {
			if d.Resolver.Has(comp.Name + "." + name) {
				candidates = append(candidates, candidate{comp.Name, name})
			}
		}
	}
	d.logger().Debug("task module candidates", "count", len(candidates))

	modules := []string{SetupModule}

	for _, cand := range candidates {
		name := cand.component + "." + cand.taskModule
		if IsIgnored(name, ignored) {
			fmt.Fprintf(d.out(), " * Ignored tasks module: %q\n", name)
			continue
		}

		mod, err := d.Resolver.Resolve(name)
		if err != nil {
			return nil, issue.WrapWithContext(err, "resolve tasks module", name).
				WithSuggestions(
					"Check the 'apps' and 'source_roots' entries in the config",
					"Check the module is readable on disk",
				)
		}

		if !mod.IsPackage() {
			fmt.Fprintf(d.out(), " * Discovered tasks module: %q\n", name)
			modules = append(modules, name)
			continue
		}

		submodules, err := resolve.Walk(mod)
		if err != nil {
			return nil, issue.WrapWithContext(err, "walk tasks package", name)
		}

		for _, sub := range submodules {
			if IsIgnored(sub, ignored) {
				fmt.Fprintf(d.out(), " * Ignored tasks module: %q\n", sub)
			} else {
				fmt.Fprintf(d.out(), " * Discovered tasks module: %q\n", sub)
				modules = append(modules, sub)
			}
		}
	}

	return modules, nil
}
