package toolchain

import (
	"context"
	"io"
)

// Describes a single external tool invocation.
type Invocation struct {
	Tool   string    // Executable name, resolved via PATH.
	Args   []string  // Arguments, not including the tool name itself.
	Dir    string    // Working directory for the process. Empty inherits the caller's.
	Stdout io.Writer // Destination for standard output. Nil falls through to the operator's stdout.
	Stderr io.Writer // Destination for standard error. Nil falls through to the operator's stderr.
}

// Result of a completed tool invocation.
type Result struct {
	ExitCode int // Exit code of the tool process.
}

// Executes tool invocations synchronously.
//
// Run blocks until the tool process terminates. A non-zero exit code is
// reported in the [Result], not as an error; errors are reserved for failing
// to run the tool at all (missing executable, cancelled context).
type Runner interface {
	Run(ctx context.Context, inv Invocation) (*Result, error)
}
