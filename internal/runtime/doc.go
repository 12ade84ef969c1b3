// SPDX-License-Identifier: MPL-2.0

// Package runtime executes resolved recipe commands on the host.
//
// A resolved command is spawned directly (no shell): the first element is the
// program and the rest are its arguments. The child inherits the process
// environment and runs in the directory of the recipe file. Its exit status is
// reported through Result so the CLI can exit with the same code.
package runtime
