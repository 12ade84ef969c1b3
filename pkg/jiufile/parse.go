// SPDX-License-Identifier: MPL-2.0

package jiufile

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/PRO-2684/jiu/pkg/recipe"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
)

// MaxFileSize bounds how much of a recipe file is parsed.
const MaxFileSize = 5 * 1024 * 1024

//go:embed schema.cue
var schemaSource string

type (
	rawFile struct {
		Description string      `json:"description"`
		Default     string      `json:"default"`
		Recipes     []rawRecipe `json:"recipes"`
	}

	rawRecipe struct {
		Names       []string `json:"names"`
		Description string   `json:"description"`
		Arguments   []string `json:"arguments"`
		Command     []any    `json:"command"`
	}
)

// Parse decodes and validates recipe file content. filePath is used in error
// messages and to set Config.Dir.
func Parse(data []byte, filePath string) (*recipe.Config, error) {
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%s: %w: %d bytes exceeds maximum %d bytes", filePath, ErrFileTooLarge, len(data), MaxFileSize)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %w", filePath, row, col, err)
		}
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	if doc == nil {
		doc = map[string]any{}
	}

	raw, err := validate(doc, filePath)
	if err != nil {
		return nil, err
	}

	return build(raw, filePath)
}

// validate unifies the decoded document with #Config and decodes the result.
func validate(doc map[string]any, filePath string) (*rawFile, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schemaSource)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile recipe schema: %w", schemaValue.Err())
	}

	userValue := ctx.Encode(doc)
	if userValue.Err() != nil {
		return nil, formatCUEError(userValue.Err(), filePath)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err, filePath)
	}

	var raw rawFile
	if err := unified.Decode(&raw); err != nil {
		return nil, formatCUEError(err, filePath)
	}
	return &raw, nil
}

func build(raw *rawFile, filePath string) (*recipe.Config, error) {
	cfg := &recipe.Config{
		Description: raw.Description,
		Default:     raw.Default,
		Recipes:     make([]recipe.Recipe, 0, len(raw.Recipes)),
		Dir:         dirOf(filePath),
	}

	for i, r := range raw.Recipes {
		command := make([]recipe.CommandToken, 0, len(r.Command))
		for j, elem := range r.Command {
			tok, err := commandToken(elem)
			if err != nil {
				return nil, fmt.Errorf("%s: recipes[%d].command[%d]: %w", filePath, i, j, err)
			}
			command = append(command, tok)
		}

		cfg.Recipes = append(cfg.Recipes, recipe.Recipe{
			Names:       r.Names,
			Description: r.Description,
			Arguments:   recipe.CompileSlots(r.Arguments),
			Command:     command,
		})
	}

	return cfg, nil
}

func commandToken(elem any) (recipe.CommandToken, error) {
	switch v := elem.(type) {
	case string:
		return recipe.Literal(v), nil
	case []any:
		if len(v) != 1 {
			return recipe.CommandToken{}, fmt.Errorf("%w: placeholder list must hold exactly one name, got %d", ErrInvalidCommandToken, len(v))
		}
		name, ok := v[0].(string)
		if !ok {
			return recipe.CommandToken{}, fmt.Errorf("%w: placeholder name must be a string, got %T", ErrInvalidCommandToken, v[0])
		}
		return recipe.Placeholder(name), nil
	default:
		return recipe.CommandToken{}, fmt.Errorf("%w: %T", ErrInvalidCommandToken, elem)
	}
}
