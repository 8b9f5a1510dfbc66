// SPDX-License-Identifier: MPL-2.0

// Package discovery finds task modules across installed application
// components.
//
// The discoverer walks each configured component in order, probes it for
// the configured task-module names, expands packages into their importable
// submodules, and filters everything through the ignore patterns. The
// resulting ordered module list is what the worker supervisor is told to
// import.
package discovery
