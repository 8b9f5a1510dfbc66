// SPDX-License-Identifier: MPL-2.0

// Package launch plans and performs the handoff to the dramatiq worker
// supervisor.
//
// Plan composes the exact argument vector dramatiq parses; the flag names
// and their ordering are a wire contract and must not be rearranged. The
// Launcher then replaces the current process image on unix, or spawns and
// waits on windows.
package launch
