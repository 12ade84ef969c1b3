// SPDX-License-Identifier: MPL-2.0

// Package recipe resolves a recipe invocation into a concrete command vector.
//
// A recipe declares an ordered list of argument slots, each compiled from a spec
// string whose optional leading symbol selects the slot's quantifier:
//
//	name   required, exactly one value
//	?name  optional, zero or one value
//	*name  variadic, zero or more values
//	+name  variadic, one or more values
//
// Matching is a single greedy left-to-right pass without backtracking: optional
// slots take a value whenever one is left, and variadic slots take everything that
// remains. Slots declared after a variadic slot therefore always see no input.
//
// The matched bindings are then interpolated into the recipe's command template.
// Placeholders starting with '$' are environment lookups; any other placeholder
// names an argument slot.
//
// Everything in this package is a pure function of its inputs. Reading the recipe
// file and spawning the resolved command live in pkg/jiufile and internal/runtime.
package recipe
