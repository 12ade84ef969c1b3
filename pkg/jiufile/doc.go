// SPDX-License-Identifier: MPL-2.0

// Package jiufile locates, reads and validates .jiu.toml recipe files.
//
// A recipe file is TOML. It is decoded with go-toml, checked against an
// embedded CUE schema (schema.cue) and then converted to a recipe.Config whose
// argument specs are already compiled. Commands from a recipe file run in the
// directory that contains it.
//
//	description = "Project tasks"
//	default = "build"
//
//	[[recipes]]
//	names = ["build", "b"]
//	description = "Build the project"
//	arguments = ["?profile", "*flags"]
//	command = ["go", "build", ["*flags"], "./..."]
package jiufile
