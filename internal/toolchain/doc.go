// Package toolchain runs external build tools as child processes.
//
// A [Runner] executes one [Invocation] at a time and blocks until the tool
// process terminates. The runner reports the tool's exit code; interpreting
// a non-zero exit is left to the caller. [ExecRunner] is the real
// implementation backed by os/exec; tests substitute their own Runner to
// exercise orchestration logic without a toolchain installed.
//
// Example usage:
//
//	runner := toolchain.ExecRunner{}
//
//	result, err := runner.Run(ctx, toolchain.Invocation{
//	    Tool: "xcodebuild",
//	    Args: []string{"-version"},
//	})
//	if err != nil {
//	    return err
//	}
//	if result.ExitCode != 0 {
//	    return fmt.Errorf("xcodebuild exited with %d", result.ExitCode)
//	}
package toolchain
