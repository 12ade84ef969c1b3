// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"slices"
	"strings"
)

type (
	// Recipe is a named, invocable command definition. Recipes are built once
	// when the recipe file is loaded and never mutated afterwards.
	Recipe struct {
		// Names are the names the recipe answers to. The first one is canonical.
		Names []string
		// Description is shown in list mode.
		Description string
		// Arguments are the compiled slots, in declaration order.
		Arguments []ArgumentSlot
		// Command is the command template.
		Command []CommandToken
	}

	// Config is a loaded recipe file.
	Config struct {
		// Description is shown above the recipe list.
		Description string
		// Default is the recipe run for an empty invocation. Empty means list mode.
		Default string
		// Recipes in declaration order.
		Recipes []Recipe
		// Dir is the directory containing the recipe file; commands run there.
		Dir string
	}

	// Summary is what list mode shows for one recipe.
	Summary struct {
		Names       []string
		Arguments   []ArgumentSlot
		Description string
	}
)

// Name returns the recipe's canonical name.
func (r *Recipe) Name() string {
	if len(r.Names) == 0 {
		return ""
	}
	return r.Names[0]
}

// HasName reports whether the recipe answers to name.
func (r *Recipe) HasName(name string) bool {
	return slices.Contains(r.Names, name)
}

// Usage renders the recipe's positional argument usage.
func (r *Recipe) Usage() string {
	return Usage(r.Arguments)
}

// Find returns the first recipe answering to name.
func (c *Config) Find(name string) (*Recipe, error) {
	for i := range c.Recipes {
		if c.Recipes[i].HasName(name) {
			return &c.Recipes[i], nil
		}
	}
	return nil, &UnknownRecipeError{Name: name}
}

// HasDefault reports whether an empty invocation runs a recipe.
func (c *Config) HasDefault() bool {
	return c.Default != ""
}

// Summaries lists every recipe in declaration order.
func (c *Config) Summaries() []Summary {
	out := make([]Summary, 0, len(c.Recipes))
	for _, r := range c.Recipes {
		out = append(out, Summary{
			Names:       slices.Clone(r.Names),
			Arguments:   slices.Clone(r.Arguments),
			Description: r.Description,
		})
	}
	return out
}

// DuplicateNames returns, sorted, the names claimed by more than one recipe.
// Lookups still resolve such names to the first recipe declaring them.
func (c *Config) DuplicateNames() []string {
	owners := make(map[string]int)
	for i, r := range c.Recipes {
		seen := make(map[string]bool, len(r.Names))
		for _, name := range r.Names {
			if seen[name] {
				continue
			}
			seen[name] = true
			if _, ok := owners[name]; ok {
				owners[name] = -1
				continue
			}
			owners[name] = i
		}
	}

	var dups []string
	for name, owner := range owners {
		if owner < 0 {
			dups = append(dups, name)
		}
	}
	slices.Sort(dups)
	return dups
}

// Label joins the summary's names the way list mode prints them.
func (s Summary) Label() string {
	return strings.Join(s.Names, "/")
}
