// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorAuto colors output when the terminal supports it.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces colored output.
	ColorAlways ColorMode = "always"
	// ColorNever disables colored output.
	ColorNever ColorMode = "never"
)

var (
	// ErrInvalidColorMode is returned when a ColorMode value is not recognized.
	ErrInvalidColorMode = errors.New("invalid color mode")
	// ErrInvalidSettings is the sentinel error wrapped by InvalidSettingsError.
	ErrInvalidSettings = errors.New("invalid settings")
)

type (
	// ColorMode selects whether styled output carries ANSI colors.
	ColorMode string

	// InvalidColorModeError is returned when a ColorMode value is not recognized.
	// It wraps ErrInvalidColorMode for errors.Is() compatibility.
	InvalidColorModeError struct {
		Value ColorMode
	}

	// InvalidSettingsError collects field-level validation errors.
	// It wraps ErrInvalidSettings for errors.Is() compatibility.
	InvalidSettingsError struct {
		FieldErrors []error
	}

	// Settings holds process-wide settings.
	Settings struct {
		// Debug enables diagnostic logging.
		Debug bool
		// Color selects colored output.
		Color ColorMode
		// RecipeFile, when set, is loaded instead of searching for .jiu.toml.
		RecipeFile string
	}
)

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{Color: ColorAuto}
}

// Error implements the error interface.
func (e *InvalidColorModeError) Error() string {
	return fmt.Sprintf("invalid color mode %q (valid: auto, always, never)", e.Value)
}

// Unwrap returns ErrInvalidColorMode for errors.Is() compatibility.
func (e *InvalidColorModeError) Unwrap() error { return ErrInvalidColorMode }

// Error implements the error interface.
func (e *InvalidSettingsError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return "invalid settings: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidSettings followed by the field errors, so errors.Is
// matches both the sentinel and each field's own sentinel.
func (e *InvalidSettingsError) Unwrap() []error {
	return append([]error{ErrInvalidSettings}, e.FieldErrors...)
}

// IsValid returns whether the ColorMode is recognized, and a list of
// validation errors if it is not. The zero value is treated as auto.
func (m ColorMode) IsValid() (bool, []error) {
	switch m {
	case ColorAuto, ColorAlways, ColorNever, "":
		return true, nil
	default:
		return false, []error{&InvalidColorModeError{Value: m}}
	}
}

// String returns the string representation of the ColorMode.
func (m ColorMode) String() string { return string(m) }

// Validate checks every field and returns an *InvalidSettingsError on failure.
func (s *Settings) Validate() error {
	var errs []error
	if ok, fieldErrs := s.Color.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if s.RecipeFile != "" && strings.TrimSpace(s.RecipeFile) == "" {
		errs = append(errs, fmt.Errorf("recipe file path must not be whitespace-only"))
	}
	if len(errs) > 0 {
		return &InvalidSettingsError{FieldErrors: errs}
	}
	return nil
}
