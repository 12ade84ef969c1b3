// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/PRO-2684/jiu/internal/config"
	"github.com/PRO-2684/jiu/internal/runtime"
	"github.com/PRO-2684/jiu/pkg/jiufile"
	"github.com/PRO-2684/jiu/pkg/recipe"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
)

// app carries the collaborators of one invocation. Tests substitute the
// filesystem, environment and runtime.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	fs        afero.Fs
	getwd     func() (string, error)
	lookupEnv recipe.EnvLookup
	settings  config.Provider
	runtime   runtime.Runtime
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		fs:        afero.NewOsFs(),
		getwd:     os.Getwd,
		lookupEnv: os.LookupEnv,
		settings:  config.NewProvider(),
		runtime:   runtime.NewNativeRuntime(),
	}
}

// newLogger creates the diagnostics logger: a charmbracelet/log handler behind
// slog, at debug level when debug is set and warn level otherwise.
func newLogger(w io.Writer, debug bool, color config.ColorMode) *slog.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
	if color == config.ColorNever {
		handler.SetColorProfile(termenv.Ascii)
	}
	return slog.New(handler)
}

// run executes one invocation. Failures are rendered on stderr here and
// reported to the caller as an *ExitError with a nil Err.
func (a *app) run(ctx context.Context, args []string) error {
	settings, err := a.settings.Load(ctx)
	if err != nil {
		renderError(a.stderr, newStyles(a.stderr, config.ColorAuto), err, false)
		return &ExitError{Code: 1}
	}

	out := newStyles(a.stdout, settings.Color)
	errOut := newStyles(a.stderr, settings.Color)
	logger := newLogger(a.stderr, settings.Debug, settings.Color)

	if err := a.dispatch(ctx, args, settings, logger, out); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.Err == nil {
			return exitErr
		}
		renderError(a.stderr, errOut, err, settings.Debug)
		return &ExitError{Code: 1}
	}
	return nil
}

func (a *app) dispatch(ctx context.Context, args []string, settings *config.Settings, logger *slog.Logger, out *styles) error {
	action, err := ParseAction(args)
	if err != nil {
		return err
	}
	logger.Debug("selected action", "action", action.Kind.String(), "args", args)

	switch action.Kind {
	case ActionHelp:
		fmt.Fprint(a.stdout, renderHelp(programName, out))
		return nil
	case ActionVersion:
		fmt.Fprint(a.stdout, renderVersion())
		return nil
	}

	cfg, err := a.loadRecipes(settings, logger)
	if err != nil {
		return err
	}

	if action.Kind == ActionList {
		fmt.Fprint(a.stdout, renderList(cfg, out))
		return nil
	}

	resolver := &recipe.Resolver{
		LookupEnv: a.lookupEnv,
		Debug:     settings.Debug,
		Logger:    logger,
	}
	resolution, err := resolver.Resolve(cfg, action.Invocation())
	if err != nil {
		name := action.Recipe
		if action.Kind == ActionDefault {
			name = cfg.Default
		}
		return resolveError(err, cfg, name)
	}
	if resolution.List {
		fmt.Fprint(a.stdout, renderList(cfg, out))
		return nil
	}

	return a.execute(ctx, resolution.Command, logger)
}

// loadRecipes reads the recipe file named by JIU_CONFIG, or the closest
// .jiu.toml above the working directory.
func (a *app) loadRecipes(settings *config.Settings, logger *slog.Logger) (*recipe.Config, error) {
	var (
		cfg  *recipe.Config
		path string
		err  error
	)
	if settings.RecipeFile != "" {
		path = settings.RecipeFile
		cfg, err = jiufile.Load(a.fs, path)
	} else {
		var wd string
		wd, err = a.getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		cfg, path, err = jiufile.Discover(a.fs, wd)
	}
	if err != nil {
		return nil, recipeFileError(err, path)
	}

	logger.Debug("loaded recipe file", "path", path, "recipes", len(cfg.Recipes), "dir", cfg.Dir)
	for _, name := range cfg.DuplicateNames() {
		logger.Debug("recipe name declared more than once, first declaration wins", "name", name)
	}
	return cfg, nil
}

func (a *app) execute(ctx context.Context, cmd *recipe.ResolvedCommand, logger *slog.Logger) error {
	execCtx := runtime.NewExecutionContext(ctx, cmd, runtime.IOContext{
		Stdin:  a.stdin,
		Stdout: a.stdout,
		Stderr: a.stderr,
	})
	execCtx.Logger = logger

	result := a.runtime.Execute(execCtx)
	if result.Error != nil {
		return spawnError(result.Error, cmd)
	}
	if !result.ExitCode.IsSuccess() {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}
