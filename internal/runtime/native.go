// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
	"os/exec"
)

// NativeRuntime spawns the resolved program directly on the host.
type NativeRuntime struct{}

// NewNativeRuntime creates a NativeRuntime.
func NewNativeRuntime() *NativeRuntime {
	return &NativeRuntime{}
}

// Name returns the runtime name.
func (r *NativeRuntime) Name() string { return "native" }

// Execute runs the command, streaming to ctx.IO.
func (r *NativeRuntime) Execute(ctx *ExecutionContext) *Result {
	cmd, err := r.prepare(ctx)
	if err != nil {
		return NewErrorResult(1, err)
	}
	cmd.Stdin = ctx.IO.Stdin
	cmd.Stdout = ctx.IO.Stdout
	cmd.Stderr = ctx.IO.Stderr

	result := extractExitCode(ctx.Command.Args, cmd.Run())
	ctx.debug("command exited", "exit_code", int(result.ExitCode))
	return result
}

func (r *NativeRuntime) prepare(ctx *ExecutionContext) (*exec.Cmd, error) {
	if ctx.Command == nil || len(ctx.Command.Args) == 0 {
		return nil, ErrNoCommand
	}
	args := ctx.Command.Args

	cmd := exec.CommandContext(ctx.goContext(), args[0], args[1:]...)
	if ctx.Command.WorkDir != "" {
		cmd.Dir = ctx.Command.WorkDir
	}

	ctx.debug("spawning command", "runtime", r.Name(), "args", args, "dir", cmd.Dir)
	return cmd, nil
}

// extractExitCode maps the error from exec.Cmd.Run to a Result. A child
// terminated by a signal has no exit code and is reported as 1.
func extractExitCode(args []string, err error) *Result {
	if err == nil {
		return NewSuccessResult()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := ExitCode(exitErr.ExitCode())
		if ok, _ := code.IsValid(); !ok {
			return NewExitCodeResult(1)
		}
		return NewExitCodeResult(code)
	}

	return NewErrorResult(1, fmt.Errorf("%w %q: %w", ErrSpawnFailed, args, err))
}
