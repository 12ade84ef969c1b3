// SPDX-License-Identifier: MPL-2.0

package recipe

import "strings"

const (
	// TokenLiteral is emitted verbatim.
	TokenLiteral TokenKind = iota
	// TokenPlaceholder is substituted from an environment variable or an argument binding.
	TokenPlaceholder
)

// envPrefix marks a placeholder as an environment variable lookup.
const envPrefix = "$"

type (
	// TokenKind tells literals and placeholders apart.
	TokenKind int

	// CommandToken is one element of a command template.
	CommandToken struct {
		Kind TokenKind
		// Text is the literal value, or the raw placeholder text ("$HOME", "files", "*files").
		Text string
	}

	// EnvLookup reports the value of an environment variable and whether it is set.
	// os.LookupEnv satisfies it.
	EnvLookup func(name string) (string, bool)
)

// Literal returns a literal command token.
func Literal(s string) CommandToken {
	return CommandToken{Kind: TokenLiteral, Text: s}
}

// Placeholder returns a placeholder command token.
func Placeholder(p string) CommandToken {
	return CommandToken{Kind: TokenPlaceholder, Text: p}
}

// IsEnv reports whether the token is a $VAR placeholder.
func (t CommandToken) IsEnv() bool {
	return t.Kind == TokenPlaceholder && strings.HasPrefix(t.Text, envPrefix)
}

func (t CommandToken) String() string {
	if t.Kind == TokenPlaceholder {
		return "[" + t.Text + "]"
	}
	return t.Text
}

// Interpolate expands a command template into a command vector.
//
// Literals are emitted verbatim. A placeholder starting with '$' emits the
// named environment variable (an empty value is still one element). Any other
// placeholder names a slot in bindings: single values emit one element, an
// absent optional emits nothing, and variadic values emit one element each.
//
// A slot placeholder may repeat the slot's quantifier symbol ("*files"); it is
// stripped for the lookup and must agree with the declared quantifier.
func Interpolate(command []CommandToken, bindings MatchResult, lookup EnvLookup) ([]string, error) {
	out := make([]string, 0, len(command))

	for _, tok := range command {
		if tok.Kind == TokenLiteral {
			out = append(out, tok.Text)
			continue
		}

		if tok.IsEnv() {
			name := strings.TrimPrefix(tok.Text, envPrefix)
			value, ok := lookupEnv(lookup, name)
			if !ok {
				return nil, &UndefinedEnvironmentVariableError{Name: name}
			}
			out = append(out, value)
			continue
		}

		ref := CompileSlot(tok.Text)
		value, ok := bindings[ref.Name]
		if !ok {
			return nil, &UnknownArgumentError{Name: ref.Name}
		}
		if ref.Quantifier != Required && ref.Quantifier != value.Quantifier {
			return nil, &ArgumentKindMismatchError{Name: ref.Name, Declared: value.Quantifier, Referenced: ref.Quantifier}
		}
		out = append(out, value.values...)
	}

	return out, nil
}

func lookupEnv(lookup EnvLookup, name string) (string, bool) {
	if lookup == nil {
		return "", false
	}
	return lookup(name)
}
