// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing error types.
//
// ActionableError carries what operation failed, which resource was
// involved, and suggestions for fixing the problem, so the CLI layer can
// render something more useful than a bare error string.
package issue
