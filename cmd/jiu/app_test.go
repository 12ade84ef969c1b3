// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/PRO-2684/jiu/internal/config"
	"github.com/PRO-2684/jiu/internal/issue"
	"github.com/PRO-2684/jiu/internal/runtime"
	"github.com/PRO-2684/jiu/internal/testutil"
	"github.com/PRO-2684/jiu/pkg/recipe"
)

const testRecipeFile = `
description = "Project tasks"
default = "greet"

[[recipes]]
names = ["greet", "g"]
description = "Say hello"
arguments = ["?name"]
command = ["echo", "hello", ["?name"]]

[[recipes]]
names = ["copy"]
arguments = ["+src", "dst"]
command = ["cp", ["+src"], ["dst"]]

[[recipes]]
names = ["home"]
command = ["ls", ["$HOME"]]

[[recipes]]
names = ["g"]
command = ["shadowed"]
`

type (
	fakeSettings struct {
		settings *config.Settings
		err      error
	}

	fakeRuntime struct {
		result *runtime.Result
		calls  []*runtime.ExecutionContext
	}

	appHarness struct {
		app     *app
		stdout  *bytes.Buffer
		stderr  *bytes.Buffer
		runtime *fakeRuntime
	}
)

func (f *fakeSettings) Load(context.Context) (*config.Settings, error) {
	return f.settings, f.err
}

func (f *fakeRuntime) Name() string { return "fake" }

func (f *fakeRuntime) Execute(ctx *runtime.ExecutionContext) *runtime.Result {
	f.calls = append(f.calls, ctx)
	if f.result == nil {
		return runtime.NewSuccessResult()
	}
	return f.result
}

func newHarness(t *testing.T, files map[string]string, settings *config.Settings) *appHarness {
	t.Helper()

	fsys := testutil.NewMemFs(t, files)
	if settings == nil {
		settings = &config.Settings{Color: config.ColorNever}
	}

	h := &appHarness{
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		runtime: &fakeRuntime{},
	}
	h.app = &app{
		stdin:  strings.NewReader(""),
		stdout: h.stdout,
		stderr: h.stderr,
		fs:     fsys,
		getwd:  func() (string, error) { return "/work/sub/dir", nil },
		lookupEnv: func(name string) (string, bool) {
			if name == "HOME" {
				return "/home/jiu", true
			}
			return "", false
		},
		settings: &fakeSettings{settings: settings},
		runtime:  h.runtime,
	}
	return h
}

func (h *appHarness) run(t *testing.T, args ...string) error {
	t.Helper()
	return h.app.run(t.Context(), args)
}

func exitCode(t *testing.T, err error) runtime.ExitCode {
	t.Helper()
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("run() returned %T (%v), want *ExitError", err, err)
	}
	if exitErr.Err != nil {
		t.Errorf("run() should report errors itself, got ExitError.Err = %v", exitErr.Err)
	}
	return exitErr.Code
}

func TestApp_RunsRecipe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"by name", []string{"greet", "world"}, []string{"echo", "hello", "world"}},
		{"by alias, first declaration wins", []string{"g"}, []string{"echo", "hello"}},
		{"default recipe", nil, []string{"echo", "hello"}},
		{"required variadic before required", []string{"copy", "a", "b", "c"}, nil},
		{"environment placeholder", []string{"home"}, []string{"ls", "/home/jiu"}},
		{"option-like recipe arguments", []string{"greet", "--list"}, []string{"echo", "hello", "--list"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, map[string]string{"/work/.jiu.toml": testRecipeFile}, nil)
			err := h.run(t, tt.args...)

			if tt.want == nil {
				// +src swallows every argument and dst is left empty.
				if exitCode(t, err) != 1 {
					t.Fatalf("run(%q) should fail", tt.args)
				}
				if !strings.Contains(h.stderr.String(), `required argument "dst" not provided`) {
					t.Errorf("stderr = %q", h.stderr.String())
				}
				if !strings.Contains(h.stderr.String(), "Usage: jiu copy <src>... <dst>") {
					t.Errorf("stderr should include the recipe usage: %q", h.stderr.String())
				}
				return
			}

			if err != nil {
				t.Fatalf("run(%q) unexpected error: %v\nstderr: %s", tt.args, err, h.stderr.String())
			}
			if len(h.runtime.calls) != 1 {
				t.Fatalf("runtime called %d times, want 1", len(h.runtime.calls))
			}
			cmd := h.runtime.calls[0].Command
			if !slices.Equal(cmd.Args, tt.want) {
				t.Errorf("Args = %q, want %q", cmd.Args, tt.want)
			}
			if cmd.WorkDir != "/work" {
				t.Errorf("WorkDir = %q, want /work", cmd.WorkDir)
			}
		})
	}
}

func TestApp_ExitCodePropagation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, map[string]string{"/work/.jiu.toml": testRecipeFile}, nil)
	h.runtime.result = runtime.NewExitCodeResult(42)

	if got := exitCode(t, h.run(t, "greet")); got != 42 {
		t.Errorf("exit code = %d, want 42", got)
	}
	if h.stderr.Len() != 0 {
		t.Errorf("a failing child should not produce extra output, got %q", h.stderr.String())
	}
}

func TestApp_SpawnFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, map[string]string{"/work/.jiu.toml": testRecipeFile}, nil)
	h.runtime.result = runtime.NewErrorResult(1, runtime.ErrSpawnFailed)

	if got := exitCode(t, h.run(t, "greet")); got != 1 {
		t.Errorf("exit code = %d, want 1", got)
	}
	if !strings.Contains(h.stderr.String(), `Check that "echo" is installed`) {
		t.Errorf("stderr = %q", h.stderr.String())
	}
}

func TestApp_List(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"-l"}, {"--list"}} {
		h := newHarness(t, map[string]string{"/work/.jiu.toml": testRecipeFile}, nil)
		if err := h.run(t, args...); err != nil {
			t.Fatalf("run(%q) unexpected error: %v", args, err)
		}
		out := h.stdout.String()
		for _, want := range []string{"Project tasks", "greet/g ?name", "Say hello", "copy +src dst"} {
			if !strings.Contains(out, want) {
				t.Errorf("run(%q) output missing %q:\n%s", args, want, out)
			}
		}
		if len(h.runtime.calls) != 0 {
			t.Error("list must not execute anything")
		}
	}
}

func TestApp_ListWithoutDefault(t *testing.T) {
	t.Parallel()

	h := newHarness(t, map[string]string{"/work/.jiu.toml": `
[[recipes]]
names = ["only"]
command = ["true"]
`}, nil)

	if err := h.run(t); err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}
	if !strings.Contains(h.stdout.String(), "only") {
		t.Errorf("stdout = %q", h.stdout.String())
	}
	if len(h.runtime.calls) != 0 {
		t.Error("empty invocation without a default must not execute anything")
	}
}

func TestApp_HelpAndVersionWithoutRecipeFile(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil, nil)
	if err := h.run(t, "--help"); err != nil {
		t.Fatalf("--help: %v", err)
	}
	if !strings.Contains(h.stdout.String(), "Usage: jiu") {
		t.Errorf("help output = %q", h.stdout.String())
	}

	h.stdout.Reset()
	if err := h.run(t, "-v"); err != nil {
		t.Fatalf("-v: %v", err)
	}
	if !strings.HasPrefix(h.stdout.String(), "jiu ") {
		t.Errorf("version output = %q", h.stdout.String())
	}
}

func TestApp_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		files   map[string]string
		args    []string
		wantErr []string
	}{
		{
			name:    "unknown option",
			files:   map[string]string{"/work/.jiu.toml": testRecipeFile},
			args:    []string{"-x"},
			wantErr: []string{`unknown option "-x"`},
		},
		{
			name:    "no recipe file",
			args:    []string{"greet"},
			wantErr: []string{"failed to find recipe file", "no .jiu.toml found"},
		},
		{
			name:    "invalid recipe file",
			files:   map[string]string{"/work/.jiu.toml": "[[recipes]]\nnames = []\ncommand = [\"x\"]\n"},
			args:    []string{"-l"},
			wantErr: []string{"failed to load recipe file: /work/.jiu.toml"},
		},
		{
			name:    "unknown recipe",
			files:   map[string]string{"/work/.jiu.toml": testRecipeFile},
			args:    []string{"deploy"},
			wantErr: []string{"failed to find recipe: deploy", `recipe "deploy" not found`, "jiu --list"},
		},
		{
			name:    "too many arguments",
			files:   map[string]string{"/work/.jiu.toml": testRecipeFile},
			args:    []string{"greet", "a", "b"},
			wantErr: []string{"failed to resolve recipe: greet", "Usage: jiu greet [name]"},
		},
		{
			name: "undefined environment variable",
			files: map[string]string{"/work/.jiu.toml": `
[[recipes]]
names = ["env"]
command = ["echo", ["$JIU_TEST_UNSET"]]
`},
			args:    []string{"env"},
			wantErr: []string{"JIU_TEST_UNSET"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, tt.files, nil)
			if got := exitCode(t, h.run(t, tt.args...)); got != 1 {
				t.Errorf("exit code = %d, want 1", got)
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(h.stderr.String(), want) {
					t.Errorf("stderr missing %q:\n%s", want, h.stderr.String())
				}
			}
			if len(h.runtime.calls) != 0 {
				t.Error("nothing should run on error")
			}
		})
	}
}

func TestApp_ExplicitRecipeFile(t *testing.T) {
	t.Parallel()

	h := newHarness(t, map[string]string{"/elsewhere/tasks.toml": testRecipeFile}, &config.Settings{
		Color:      config.ColorNever,
		RecipeFile: "/elsewhere/tasks.toml",
	})

	if err := h.run(t, "greet", "you"); err != nil {
		t.Fatalf("run() unexpected error: %v\nstderr: %s", err, h.stderr.String())
	}
	if got := h.runtime.calls[0].Command.WorkDir; got != "/elsewhere" {
		t.Errorf("WorkDir = %q, want /elsewhere", got)
	}
}

func TestApp_SettingsError(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil, nil)
	h.app.settings = &fakeSettings{err: issue.NewErrorContext().
		WithOperation("load settings").
		WithSuggestion("Set JIU_COLOR to auto, always or never").
		Wrap(config.ErrInvalidColorMode).
		BuildError()}

	if got := exitCode(t, h.run(t, "greet")); got != 1 {
		t.Errorf("exit code = %d, want 1", got)
	}
	if !strings.Contains(h.stderr.String(), "Set JIU_COLOR") {
		t.Errorf("stderr = %q", h.stderr.String())
	}
}

func TestApp_DebugDiagnostics(t *testing.T) {
	t.Parallel()

	h := newHarness(t, map[string]string{"/work/.jiu.toml": testRecipeFile}, &config.Settings{
		Debug: true,
		Color: config.ColorNever,
	})

	if err := h.run(t, "greet", "world"); err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}
	for _, want := range []string{
		"loaded recipe file",
		"recipe name declared more than once",
		"matched argument",
		"resolved command",
	} {
		if !strings.Contains(h.stderr.String(), want) {
			t.Errorf("debug output missing %q:\n%s", want, h.stderr.String())
		}
	}
	if h.runtime.calls[0].Logger == nil {
		t.Error("runtime should receive the diagnostics logger")
	}
}

func TestApp_DebugErrorShowsChainAndHelp(t *testing.T) {
	t.Parallel()

	h := newHarness(t, map[string]string{"/work/.jiu.toml": testRecipeFile}, &config.Settings{
		Debug: true,
		Color: config.ColorNever,
	})

	if got := exitCode(t, h.run(t, "deploy")); got != 1 {
		t.Errorf("exit code = %d, want 1", got)
	}
	if !strings.Contains(h.stderr.String(), "Error chain:") {
		t.Errorf("debug error output should include the chain:\n%s", h.stderr.String())
	}
	if !strings.Contains(h.stderr.String(), "Recipe not found") {
		t.Errorf("debug error output should include the catalog entry:\n%s", h.stderr.String())
	}
}

func TestResolveError_Classification(t *testing.T) {
	t.Parallel()

	cfg := &recipe.Config{Recipes: []recipe.Recipe{{
		Names:     []string{"r"},
		Arguments: recipe.CompileSlots([]string{"a"}),
	}}}

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{"unknown recipe", &recipe.UnknownRecipeError{Name: "x"}, issue.RecipeNotFoundId},
		{"missing", &recipe.MissingArgumentError{Slot: recipe.CompileSlot("a")}, issue.ArgumentMismatchId},
		{"too many", &recipe.TooManyArgumentsError{Extra: []string{"b"}}, issue.ArgumentMismatchId},
		{"env", &recipe.UndefinedEnvironmentVariableError{Name: "X"}, issue.UndefinedEnvVarId},
		{"unknown argument", &recipe.UnknownArgumentError{Name: "z"}, issue.TemplateErrorId},
		{"empty command", recipe.ErrEmptyCommand, issue.TemplateErrorId},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := resolveError(tt.err, cfg, "r")
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("resolveError() = %T", err)
			}
			if ae.IssueID != tt.want {
				t.Errorf("IssueID = %d, want %d", ae.IssueID, tt.want)
			}
			if !errors.Is(err, tt.err) {
				t.Error("resolveError() must keep the original error in the chain")
			}
		})
	}
}
