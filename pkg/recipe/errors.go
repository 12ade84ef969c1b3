// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownRecipe is returned when no recipe answers to the requested name.
	ErrUnknownRecipe = errors.New("unknown recipe")
	// ErrMissingArgument is returned when a slot that needs input finds none left.
	ErrMissingArgument = errors.New("missing argument")
	// ErrTooManyArguments is returned when input remains after every slot matched.
	ErrTooManyArguments = errors.New("too many arguments")
	// ErrUndefinedEnvironmentVariable is returned when a $VAR placeholder names an unset variable.
	ErrUndefinedEnvironmentVariable = errors.New("undefined environment variable")
	// ErrUnknownArgument is returned when a placeholder names a slot the recipe does not declare.
	ErrUnknownArgument = errors.New("unknown argument")
	// ErrArgumentKindMismatch is returned when a placeholder's quantifier symbol
	// disagrees with the declared slot.
	ErrArgumentKindMismatch = errors.New("argument kind mismatch")
	// ErrEmptyCommand is returned when interpolation leaves no program to run.
	ErrEmptyCommand = errors.New("command resolved to nothing")
)

type (
	// UnknownRecipeError names the recipe that could not be found.
	UnknownRecipeError struct {
		Name string
	}

	// MissingArgumentError names the first slot left without input.
	MissingArgumentError struct {
		Slot ArgumentSlot
	}

	// TooManyArgumentsError carries the arguments no slot consumed.
	TooManyArgumentsError struct {
		Extra []string
	}

	// UndefinedEnvironmentVariableError names the unset variable.
	UndefinedEnvironmentVariableError struct {
		Name string
	}

	// UnknownArgumentError names the placeholder that matched no declared slot.
	UnknownArgumentError struct {
		Name string
	}

	// ArgumentKindMismatchError describes a placeholder written as e.g. `*rest`
	// for a slot declared as `?rest`.
	ArgumentKindMismatchError struct {
		Name       string
		Declared   Quantifier
		Referenced Quantifier
	}
)

func (e *UnknownRecipeError) Error() string {
	return fmt.Sprintf("recipe %q not found", e.Name)
}

// Unwrap returns ErrUnknownRecipe for errors.Is.
func (e *UnknownRecipeError) Unwrap() error { return ErrUnknownRecipe }

func (e *MissingArgumentError) Error() string {
	if e.Slot.Quantifier == RequiredVariadic {
		return fmt.Sprintf("argument %q requires at least one value", e.Slot.Name)
	}
	return fmt.Sprintf("required argument %q not provided", e.Slot.Name)
}

// Unwrap returns ErrMissingArgument for errors.Is.
func (e *MissingArgumentError) Unwrap() error { return ErrMissingArgument }

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("unexpected argument(s): %s", strings.Join(e.Extra, " "))
}

// Unwrap returns ErrTooManyArguments for errors.Is.
func (e *TooManyArgumentsError) Unwrap() error { return ErrTooManyArguments }

func (e *UndefinedEnvironmentVariableError) Error() string {
	return fmt.Sprintf("environment variable %q is not set", e.Name)
}

// Unwrap returns ErrUndefinedEnvironmentVariable for errors.Is.
func (e *UndefinedEnvironmentVariableError) Unwrap() error { return ErrUndefinedEnvironmentVariable }

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("command references undeclared argument %q", e.Name)
}

// Unwrap returns ErrUnknownArgument for errors.Is.
func (e *UnknownArgumentError) Unwrap() error { return ErrUnknownArgument }

func (e *ArgumentKindMismatchError) Error() string {
	return fmt.Sprintf("argument %q is declared %s but referenced as %s", e.Name, e.Declared, e.Referenced)
}

// Unwrap returns ErrArgumentKindMismatch for errors.Is.
func (e *ArgumentKindMismatchError) Unwrap() error { return ErrArgumentKindMismatch }
