// SPDX-License-Identifier: MPL-2.0

package recipe

import (
	"fmt"
	"log/slog"
)

type (
	// ResolvedCommand is a ready-to-run command vector and the directory to run it in.
	ResolvedCommand struct {
		// Recipe is the canonical name of the resolved recipe.
		Recipe string
		// Args holds the program name followed by its arguments. Never empty.
		Args []string
		// WorkDir is the directory containing the recipe file.
		WorkDir string
	}

	// Resolution is the outcome of an invocation: either a command to run, or
	// list mode when nothing was requested and no default is configured.
	Resolution struct {
		// List is set when the recipe list should be shown instead of running anything.
		List bool
		// Command is the resolved invocation. Nil when List is set.
		Command *ResolvedCommand
	}

	// Resolver drives the matcher and interpolator for one invocation.
	// The zero value resolves without environment variables and without diagnostics.
	Resolver struct {
		// LookupEnv resolves $VAR placeholders. A nil lookup treats every variable as unset.
		LookupEnv EnvLookup
		// Debug enables diagnostics on Logger about each matching step.
		Debug bool
		// Logger receives debug diagnostics. Ignored unless Debug is set.
		Logger *slog.Logger
	}
)

// Program returns the program to execute.
func (c *ResolvedCommand) Program() string {
	return c.Args[0]
}

// Resolve resolves an invocation (recipe name followed by its arguments).
// An empty invocation runs the config's default recipe with no arguments, or
// returns a list-mode Resolution when there is no default.
func (r *Resolver) Resolve(cfg *Config, invocation []string) (*Resolution, error) {
	if len(invocation) == 0 {
		if !cfg.HasDefault() {
			r.debug("no recipe requested and no default configured, listing recipes")
			return &Resolution{List: true}, nil
		}
		r.debug("no recipe requested, using default", "recipe", cfg.Default)
		cmd, err := r.ResolveRecipe(cfg, cfg.Default, nil)
		if err != nil {
			return nil, err
		}
		return &Resolution{Command: cmd}, nil
	}

	cmd, err := r.ResolveRecipe(cfg, invocation[0], invocation[1:])
	if err != nil {
		return nil, err
	}
	return &Resolution{Command: cmd}, nil
}

// ResolveRecipe resolves the named recipe against args. Errors from the
// matcher and interpolator are returned unchanged.
func (r *Resolver) ResolveRecipe(cfg *Config, name string, args []string) (*ResolvedCommand, error) {
	rec, err := cfg.Find(name)
	if err != nil {
		return nil, err
	}
	r.debug("found recipe", "recipe", rec.Name(), "requested", name, "args", args)

	var observe func(MatchStep)
	if r.debugEnabled() {
		observe = func(step MatchStep) {
			r.debug("matched argument",
				"slot", step.Slot.String(),
				"quantifier", step.Slot.Quantifier.String(),
				"consumed", step.Consumed,
				"cursor", step.Cursor)
		}
	}

	bindings, err := MatchObserved(rec.Arguments, args, observe)
	if err != nil {
		r.debug("argument matching failed", "recipe", rec.Name(), "error", err)
		return nil, err
	}

	vector, err := Interpolate(rec.Command, bindings, r.LookupEnv)
	if err != nil {
		r.debug("command interpolation failed", "recipe", rec.Name(), "error", err)
		return nil, err
	}
	if len(vector) == 0 {
		return nil, fmt.Errorf("recipe %q: %w", rec.Name(), ErrEmptyCommand)
	}

	r.debug("resolved command", "recipe", rec.Name(), "command", vector, "dir", cfg.Dir)

	return &ResolvedCommand{
		Recipe:  rec.Name(),
		Args:    vector,
		WorkDir: cfg.Dir,
	}, nil
}

func (r *Resolver) debugEnabled() bool {
	return r.Debug && r.Logger != nil
}

func (r *Resolver) debug(msg string, args ...any) {
	if r.debugEnabled() {
		r.Logger.Debug(msg, args...)
	}
}
