// SPDX-License-Identifier: MPL-2.0

// Package resolve locates task modules by dotted path.
//
// A dotted path such as "app1.tasks" is resolved against a set of source
// roots: a directory <root>/app1/tasks marks a package, a file
// <root>/app1/tasks.py a leaf module. Walk enumerates every importable
// submodule beneath a package, which is what the worker supervisor is
// ultimately told to import.
package resolve
