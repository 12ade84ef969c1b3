// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ActionDefault runs the default recipe, or lists recipes without one.
	ActionDefault ActionKind = iota
	// ActionHelp prints usage.
	ActionHelp
	// ActionVersion prints the version.
	ActionVersion
	// ActionList lists the recipes of the recipe file.
	ActionList
	// ActionRecipe runs the named recipe.
	ActionRecipe
)

// ErrUnknownOption is the sentinel error wrapped by UnknownOptionError.
var ErrUnknownOption = errors.New("unknown option")

type (
	// ActionKind selects what an invocation does.
	ActionKind int

	// Action is the parsed command line.
	Action struct {
		Kind ActionKind
		// Recipe is the requested recipe name (ActionRecipe only).
		Recipe string
		// Args are the words after the first one, passed verbatim to the matcher.
		Args []string
	}

	// UnknownOptionError is returned when the first word looks like an option
	// but is not one jiu understands.
	UnknownOptionError struct {
		Option string
	}
)

// Error implements the error interface.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Option)
}

// Unwrap returns ErrUnknownOption for errors.Is() compatibility.
func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }

// String returns the action name used in diagnostics.
func (k ActionKind) String() string {
	switch k {
	case ActionDefault:
		return "default"
	case ActionHelp:
		return "help"
	case ActionVersion:
		return "version"
	case ActionList:
		return "list"
	case ActionRecipe:
		return "recipe"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// ParseAction selects the action from the first word of args. Only the first
// word is inspected: everything after a recipe name belongs to the recipe,
// including words that start with "-".
func ParseAction(args []string) (Action, error) {
	if len(args) == 0 {
		return Action{Kind: ActionDefault}, nil
	}

	first, rest := args[0], args[1:]
	switch first {
	case "-h", "--help":
		return Action{Kind: ActionHelp, Args: rest}, nil
	case "-v", "--version":
		return Action{Kind: ActionVersion, Args: rest}, nil
	case "-l", "--list":
		return Action{Kind: ActionList, Args: rest}, nil
	}

	if strings.HasPrefix(first, "-") {
		return Action{}, &UnknownOptionError{Option: first}
	}
	return Action{Kind: ActionRecipe, Recipe: first, Args: rest}, nil
}

// Invocation returns the words handed to the resolver: the recipe name
// followed by its arguments, or nil for the default action.
func (a Action) Invocation() []string {
	if a.Kind != ActionRecipe {
		return nil
	}
	return append([]string{a.Recipe}, a.Args...)
}
