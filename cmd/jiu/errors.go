// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PRO-2684/jiu/internal/issue"
	"github.com/PRO-2684/jiu/internal/runtime"
	"github.com/PRO-2684/jiu/pkg/jiufile"
	"github.com/PRO-2684/jiu/pkg/recipe"
)

// recipeFileError adds context to a failure to locate or load the recipe file.
func recipeFileError(err error, path string) error {
	ctx := issue.NewErrorContext().Wrap(err)
	if errors.Is(err, jiufile.ErrConfigNotFound) {
		return ctx.
			WithOperation("find recipe file").
			WithIssue(issue.ConfigNotFoundId).
			WithSuggestion("Create a " + jiufile.FileName + " in this directory or one of its parents").
			BuildError()
	}

	ctx = ctx.WithOperation("load recipe file").
		WithResource(path).
		WithIssue(issue.ConfigParseErrorId)
	var verr *jiufile.ValidationError
	if errors.As(err, &verr) {
		ctx = ctx.WithSuggestion("Every recipe needs non-empty names and command lists")
	}
	return ctx.BuildError()
}

// resolveError adds context to a resolver failure, including the usage line of
// the recipe when the arguments did not fit.
func resolveError(err error, cfg *recipe.Config, name string) error {
	ctx := issue.NewErrorContext().
		WithOperation("resolve recipe").
		WithResource(name).
		Wrap(err)

	switch {
	case errors.Is(err, recipe.ErrUnknownRecipe):
		ctx = ctx.WithOperation("find recipe").
			WithIssue(issue.RecipeNotFoundId).
			WithSuggestion("Run '" + programName + " --list' to see the available recipes")
	case errors.Is(err, recipe.ErrMissingArgument), errors.Is(err, recipe.ErrTooManyArguments):
		ctx = ctx.WithIssue(issue.ArgumentMismatchId)
		if rec, findErr := cfg.Find(name); findErr == nil {
			ctx = ctx.WithSuggestion(strings.TrimSpace(fmt.Sprintf("Usage: %s %s %s", programName, name, rec.Usage())))
		}
	case errors.Is(err, recipe.ErrUndefinedEnvironmentVariable):
		ctx = ctx.WithIssue(issue.UndefinedEnvVarId)
	case errors.Is(err, recipe.ErrUnknownArgument),
		errors.Is(err, recipe.ErrArgumentKindMismatch),
		errors.Is(err, recipe.ErrEmptyCommand):
		ctx = ctx.WithIssue(issue.TemplateErrorId).
			WithSuggestion("Fix the recipe's command in " + jiufile.FileName)
	}

	return ctx.BuildError()
}

// spawnError adds context to a command that could not be started.
func spawnError(err error, cmd *recipe.ResolvedCommand) error {
	ctx := issue.NewErrorContext().
		WithOperation("run recipe").
		WithResource(cmd.Recipe).
		Wrap(err)
	if errors.Is(err, runtime.ErrSpawnFailed) {
		ctx = ctx.WithIssue(issue.CommandSpawnFailedId).
			WithSuggestion(fmt.Sprintf("Check that %q is installed and on your PATH", cmd.Program()))
	}
	return ctx.BuildError()
}

// renderError writes err to w. Actionable errors show their suggestions, and in
// debug mode the error chain and the catalog entry linked to the error.
func renderError(w io.Writer, st *styles, err error, debug bool) {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		fmt.Fprintln(w, st.Error.Render("error:"), err.Error())
		return
	}

	fmt.Fprintln(w, st.Error.Render("error:"), ae.Format(debug))

	if !debug || ae.IssueID == 0 {
		return
	}
	entry := issue.Get(ae.IssueID)
	if entry == nil {
		return
	}
	rendered, renderErr := entry.Render(st.glamourStyle())
	if renderErr != nil {
		slog.Warn("failed to render issue catalog entry", "issueID", ae.IssueID, "error", renderErr)
		return
	}
	fmt.Fprint(w, rendered)
}
