// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/PRO-2684/jiu/pkg/recipe"
)

var (
	// ErrSpawnFailed is returned when the program of a resolved command could
	// not be started.
	ErrSpawnFailed = errors.New("failed to spawn command")

	// ErrNoCommand is returned when the execution context carries no command.
	ErrNoCommand = errors.New("no command to execute")
)

type (
	// IOContext holds the standard streams handed to the child process.
	IOContext struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// ExecutionContext contains everything needed to run a resolved command.
	ExecutionContext struct {
		// Context cancels the child process (it is killed when done).
		Context context.Context
		// Command is the resolved argument vector and its working directory.
		Command *recipe.ResolvedCommand
		IO      IOContext
		// Logger receives debug diagnostics. May be nil.
		Logger *slog.Logger
	}

	// Runtime runs resolved commands.
	Runtime interface {
		// Name returns the runtime identifier used in diagnostics.
		Name() string
		// Execute runs the command with the context's streams attached.
		Execute(ctx *ExecutionContext) *Result
	}
)

// NewExecutionContext creates an ExecutionContext for cmd with the given
// streams.
func NewExecutionContext(ctx context.Context, cmd *recipe.ResolvedCommand, streams IOContext) *ExecutionContext {
	return &ExecutionContext{
		Context: ctx,
		Command: cmd,
		IO:      streams,
	}
}

func (c *ExecutionContext) goContext() context.Context {
	if c.Context == nil {
		return context.Background()
	}
	return c.Context
}

func (c *ExecutionContext) debug(msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.Debug(msg, args...)
	}
}
