// SPDX-License-Identifier: MPL-2.0

package recipe

import "slices"

type (
	// Value is what one slot bound during matching. Required and Optional slots
	// bind a single value (an unmatched Optional binds none); variadic slots bind
	// an ordered list that may be empty.
	Value struct {
		Quantifier Quantifier
		values     []string
	}

	// MatchResult maps every declared slot name to its bound value.
	MatchResult map[string]Value

	// MatchStep records what a single slot consumed. It is reported to the
	// observer passed to MatchObserved, in slot order.
	MatchStep struct {
		Slot     ArgumentSlot
		Consumed []string
		// Cursor is the position in the argument list after the step.
		Cursor int
	}
)

// Single returns the bound value of a non-variadic slot and whether one is present.
func (v Value) Single() (string, bool) {
	if v.Quantifier.IsVariadic() || len(v.values) == 0 {
		return "", false
	}
	return v.values[0], true
}

// Many returns the values bound to a variadic slot, in input order.
func (v Value) Many() []string {
	if !v.Quantifier.IsVariadic() {
		return nil
	}
	return slices.Clone(v.values)
}

// Elements returns the command elements this value expands to: one for a
// present single value, none for an absent optional, and one per value for
// variadic slots.
func (v Value) Elements() []string {
	return slices.Clone(v.values)
}

// IsMany reports whether the value came from a variadic slot.
func (v Value) IsMany() bool {
	return v.Quantifier.IsVariadic()
}

// Match binds args to slots. See MatchObserved.
func Match(slots []ArgumentSlot, args []string) (MatchResult, error) {
	return MatchObserved(slots, args, nil)
}

// MatchObserved binds args to slots in one greedy left-to-right pass and calls
// observe (when non-nil) after each slot. No partial result is returned on
// failure.
//
// A slot following a variadic slot always sees an empty input, and an optional
// slot takes a value even when a later required slot then starves. Both are
// reported as *MissingArgumentError for the starving slot.
func MatchObserved(slots []ArgumentSlot, args []string, observe func(MatchStep)) (MatchResult, error) {
	result := make(MatchResult, len(slots))
	cursor := 0

	for _, slot := range slots {
		remaining := args[cursor:]
		var consumed []string

		switch slot.Quantifier {
		case Required:
			if len(remaining) == 0 {
				return nil, &MissingArgumentError{Slot: slot}
			}
			consumed = remaining[:1]
		case Optional:
			if len(remaining) > 0 {
				consumed = remaining[:1]
			}
		case Variadic:
			consumed = remaining
		case RequiredVariadic:
			if len(remaining) == 0 {
				return nil, &MissingArgumentError{Slot: slot}
			}
			consumed = remaining
		}

		cursor += len(consumed)
		result[slot.Name] = Value{Quantifier: slot.Quantifier, values: slices.Clone(consumed)}

		if observe != nil {
			observe(MatchStep{Slot: slot, Consumed: slices.Clone(consumed), Cursor: cursor})
		}
	}

	if cursor < len(args) {
		return nil, &TooManyArgumentsError{Extra: slices.Clone(args[cursor:])}
	}

	return result, nil
}
