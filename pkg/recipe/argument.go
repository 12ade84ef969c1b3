// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"fmt"
	"strings"
)

const (
	// Required slots consume exactly one argument.
	Required Quantifier = iota
	// Optional slots consume one argument when any is left (`?`).
	Optional
	// Variadic slots consume all remaining arguments (`*`).
	Variadic
	// RequiredVariadic slots consume all remaining arguments, at least one (`+`).
	RequiredVariadic
)

type (
	// Quantifier is the arity contract of an argument slot.
	Quantifier int

	// ArgumentSlot is one declared parameter of a recipe.
	ArgumentSlot struct {
		// Name is the binding key used by command placeholders.
		Name string
		// Quantifier selects how many arguments the slot consumes.
		Quantifier Quantifier
	}
)

// CompileSlot parses an argument spec string into a slot. Any string compiles:
// a recognized leading symbol selects the quantifier and is stripped from the
// name, everything else is a required slot named by the whole string.
func CompileSlot(spec string) ArgumentSlot {
	if spec == "" {
		return ArgumentSlot{Quantifier: Required}
	}
	q, ok := quantifierForSymbol(spec[0])
	if !ok {
		return ArgumentSlot{Name: spec, Quantifier: Required}
	}
	return ArgumentSlot{Name: spec[1:], Quantifier: q}
}

// CompileSlots compiles every spec in order.
func CompileSlots(specs []string) []ArgumentSlot {
	slots := make([]ArgumentSlot, 0, len(specs))
	for _, spec := range specs {
		slots = append(slots, CompileSlot(spec))
	}
	return slots
}

func quantifierForSymbol(b byte) (Quantifier, bool) {
	switch b {
	case '?':
		return Optional, true
	case '*':
		return Variadic, true
	case '+':
		return RequiredVariadic, true
	default:
		return Required, false
	}
}

// Symbol returns the spec prefix that selects this quantifier ("" for Required).
func (q Quantifier) Symbol() string {
	switch q {
	case Optional:
		return "?"
	case Variadic:
		return "*"
	case RequiredVariadic:
		return "+"
	default:
		return ""
	}
}

// IsVariadic reports whether the quantifier consumes all remaining arguments.
func (q Quantifier) IsVariadic() bool {
	return q == Variadic || q == RequiredVariadic
}

// String returns the quantifier's name.
func (q Quantifier) String() string {
	switch q {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Variadic:
		return "variadic"
	case RequiredVariadic:
		return "required variadic"
	default:
		return fmt.Sprintf("Quantifier(%d)", int(q))
	}
}

// String renders the slot back into spec form, so CompileSlot(s.String()) == s.
func (s ArgumentSlot) String() string {
	return s.Quantifier.Symbol() + s.Name
}

// UsageString renders the slot the way help output shows positional arguments.
func (s ArgumentSlot) UsageString() string {
	switch s.Quantifier {
	case Optional:
		return "[" + s.Name + "]"
	case Variadic:
		return "[" + s.Name + "]..."
	case RequiredVariadic:
		return "<" + s.Name + ">..."
	default:
		return "<" + s.Name + ">"
	}
}

// Usage renders the usage string for a slot sequence, e.g. "<env> [tag] [rest]...".
func Usage(slots []ArgumentSlot) string {
	parts := make([]string, 0, len(slots))
	for _, slot := range slots {
		parts = append(parts, slot.UsageString())
	}
	return strings.Join(parts, " ")
}
