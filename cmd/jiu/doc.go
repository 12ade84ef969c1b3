// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the jiu command line: it selects an action from the
// first argument, locates and loads the recipe file, resolves the requested
// recipe and runs the resulting command.
package cmd
