package toolchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Runs invocations as real child processes via os/exec.
//
// The zero value is ready to use.
type ExecRunner struct{}

// Runs the invocation and waits for the process to exit.
//
// Stdout and stderr are connected to the invocation's writers, defaulting to
// the operator's own streams so that tool output is visible when no capture
// destination was configured. Cancelling the context kills the process.
func (ExecRunner) Run(ctx context.Context, inv Invocation) (*Result, error) {
	slog.Debug("exec", "tool", inv.Tool, "args", inv.Args, "dir", inv.Dir)

	cmd := exec.CommandContext(ctx, inv.Tool, inv.Args...)
	cmd.Dir = inv.Dir

	cmd.Stdout = inv.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = inv.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return &Result{ExitCode: 0}, nil
	}

	// A non-zero exit is a tool-level outcome, not a runner failure.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Result{ExitCode: exitErr.ExitCode()}, nil
	}

	return nil, fmt.Errorf("%w: %s: %w", ErrToolchain, inv.Tool, err)
}
