// SPDX-License-Identifier: MPL-2.0

package jiufile

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrConfigNotFound is returned when no recipe file exists in the start
	// directory or any of its parents.
	ErrConfigNotFound = errors.New("no " + FileName + " found")
	// ErrFileTooLarge is returned for recipe files above MaxFileSize.
	ErrFileTooLarge = errors.New("recipe file too large")
	// ErrInvalidCommandToken is returned for a command element that is neither a
	// string nor a one-element list of strings.
	ErrInvalidCommandToken = errors.New("invalid command token")
)

// ValidationError is a schema violation at a position inside the recipe file.
type ValidationError struct {
	// FilePath is the file being validated.
	FilePath string
	// Lines holds one "<path>: <message>" entry per violation.
	Lines []string
}

func (e *ValidationError) Error() string {
	if len(e.Lines) == 1 {
		return fmt.Sprintf("%s: %s", e.FilePath, e.Lines[0])
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.FilePath, strings.Join(e.Lines, "\n  "))
}

// formatCUEError turns a CUE error into a *ValidationError whose lines carry
// JSON-path prefixes such as "recipes[0].command".
func formatCUEError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	lines := make([]string, 0, len(cueErrs))
	for _, e := range cueErrs {
		pathStr := formatPath(cueerrors.Path(e))
		msg := e.Error()

		// CUE sometimes repeats the path in the message.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}

		if pathStr != "" {
			lines = append(lines, pathStr+": "+msg)
		} else {
			lines = append(lines, msg)
		}
	}

	return &ValidationError{FilePath: filePath, Lines: lines}
}

// formatPath converts ["recipes", "0", "command"] to "recipes[0].command".
// Definition names such as "#Config" are dropped.
func formatPath(path []string) string {
	var b strings.Builder
	for _, part := range path {
		if strings.HasPrefix(part, "#") {
			continue
		}
		if isIndex(part) && b.Len() > 0 {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
