// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// moduleExt is the filename extension of leaf module files.
const moduleExt = ".py"

// ErrModuleNotFound is the sentinel error wrapped by NotFoundError.
var ErrModuleNotFound = errors.New("module not found")

type (
	// Module is a resolved module handle. Exactly one of Dir and File is
	// set: Dir for a package, File for a leaf module.
	Module struct {
		// Name is the fully dotted module path.
		Name string
		// Dir is the package directory, empty for leaf modules.
		Dir string
		// File is the leaf module file, empty for packages.
		File string
	}

	// NotFoundError is returned when a dotted path resolves to nothing
	// under any source root. It wraps ErrModuleNotFound for errors.Is().
	NotFoundError struct {
		Name string
	}

	// Resolver locates modules by dotted path.
	//
	// Has is the cheap existence probe used to decide whether a component
	// exposes a given submodule at all; Resolve returns the handle and
	// fails when the module cannot be loaded.
	Resolver interface {
		Has(dotted string) bool
		Resolve(dotted string) (*Module, error)
	}

	// FSResolver resolves dotted paths against filesystem source roots,
	// probed in order. The zero value resolves nothing.
	FSResolver struct {
		// Roots are the source roots, tried in order.
		Roots []string
	}
)

// IsPackage reports whether the module is a package with sub-importable
// contents.
func (m *Module) IsPackage() bool {
	return m.Dir != ""
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("module %q not found under any source root", e.Name)
}

// Unwrap returns ErrModuleNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error {
	return ErrModuleNotFound
}

// NewFSResolver creates a filesystem resolver over the given source roots.
func NewFSResolver(roots []string) *FSResolver {
	return &FSResolver{Roots: roots}
}

// Has reports whether the dotted path names an existing module or package.
func (r *FSResolver) Has(dotted string) bool {
	m, err := r.Resolve(dotted)
	return err == nil && m != nil
}

// Resolve returns the module handle for a dotted path, probing each source
// root in order. A package directory wins over a leaf file within the same
// root, matching import semantics.
func (r *FSResolver) Resolve(dotted string) (*Module, error) {
	rel := filepath.Join(strings.Split(dotted, ".")...)

	for _, root := range r.Roots {
		base := filepath.Join(root, rel)

		if info, err := os.Stat(base); err == nil && info.IsDir() {
			return &Module{Name: dotted, Dir: base}, nil
		}

		file := base + moduleExt
		if info, err := os.Stat(file); err == nil && info.Mode().IsRegular() {
			return &Module{Name: dotted, File: file}, nil
		}
	}

	return nil, &NotFoundError{Name: dotted}
}
