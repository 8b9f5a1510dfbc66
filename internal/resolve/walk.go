// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"drover-cli/internal/issue"
)

// indexFile marks a directory's own module body and is never a submodule.
const indexFile = "__init__" + moduleExt

// Walk enumerates every importable submodule beneath a package, fully
// dotted, in depth-first lexical order. Subpackages are emitted as entries
// themselves and then recursed into. Calling Walk on a leaf module returns
// an empty list.
//
// The walk is restartable: it carries no state between calls and reads the
// filesystem fresh each time.
func Walk(pkg *Module) ([]string, error) {
	if !pkg.IsPackage() {
		return nil, nil
	}

	var names []string
	if err := walkDir(pkg.Dir, pkg.Name, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func walkDir(dir, prefix string, names *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return issue.WrapWithContext(err, "enumerate package", dir)
	}

	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			if strings.HasPrefix(name, ".") || name == "__pycache__" {
				continue
			}
			dotted := prefix + "." + name
			*names = append(*names, dotted)
			if err := walkDir(filepath.Join(dir, name), dotted, names); err != nil {
				return err
			}
			continue
		}

		if !strings.HasSuffix(name, moduleExt) || name == indexFile || strings.HasPrefix(name, ".") {
			continue
		}
		*names = append(*names, prefix+"."+strings.TrimSuffix(name, moduleExt))
	}

	return nil
}
