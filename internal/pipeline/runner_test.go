package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/framesmith/framesmith/internal/toolchain"
)

// Simulates the external tools and records every invocation.
//
// Successful build invocations create the framework directory at the path
// derived from the invocation's own arguments, mirroring the real tool's
// filesystem contract. Failures are keyed by "product/platform".
type fakeRunner struct {
	invocations []toolchain.Invocation
	failBuilds  map[string]bool // Builds that exit non-zero, keyed "product/platform".
	skipOutput  map[string]bool // Builds that exit zero without producing a framework.
	failMerge   bool            // Whether merge invocations exit non-zero.
	failZip     bool            // Whether compression invocations exit non-zero.
}

func (f *fakeRunner) Run(ctx context.Context, inv toolchain.Invocation) (*toolchain.Result, error) {
	f.invocations = append(f.invocations, inv)

	switch invocationKind(inv) {
	case "build":
		return f.runBuild(inv)
	case "merge":
		if f.failMerge {
			return &toolchain.Result{ExitCode: 70}, nil
		}
		return &toolchain.Result{ExitCode: 0}, nil
	case "zip":
		if f.failZip {
			return &toolchain.Result{ExitCode: 15}, nil
		}
		return &toolchain.Result{ExitCode: 0}, nil
	}

	return &toolchain.Result{ExitCode: 0}, nil
}

func (f *fakeRunner) runBuild(inv toolchain.Invocation) (*toolchain.Result, error) {
	product := argValue(inv.Args, "-scheme")
	platform := strings.TrimPrefix(argValue(inv.Args, "-destination"), "generic/platform=")

	fmt.Fprintf(inv.Stdout, "archiving %s for %s\n", product, platform)

	if f.failBuilds[product+"/"+platform] {
		fmt.Fprintf(inv.Stdout, "error: compilation failed for scheme %s on %s\n", product, platform)
		return &toolchain.Result{ExitCode: 65}, nil
	}

	if !f.skipOutput[product+"/"+platform] {
		framework := filepath.Join(argValue(inv.Args, "-archivePath"), archiveProductsDir, product+".framework")
		if err := os.MkdirAll(framework, 0755); err != nil {
			return nil, err
		}
	}

	return &toolchain.Result{ExitCode: 0}, nil
}

// Classifies an invocation as "build", "merge", or "zip".
func invocationKind(inv toolchain.Invocation) string {
	switch {
	case inv.Tool == "xcodebuild" && len(inv.Args) > 0 && inv.Args[0] == "archive":
		return "build"
	case inv.Tool == "xcodebuild" && len(inv.Args) > 0 && inv.Args[0] == "-create-xcframework":
		return "merge"
	case inv.Tool == "zip":
		return "zip"
	}
	return inv.Tool
}

// Returns the kinds of all recorded invocations, in order.
func (f *fakeRunner) kinds() []string {
	kinds := make([]string, 0, len(f.invocations))
	for _, inv := range f.invocations {
		kinds = append(kinds, invocationKind(inv))
	}
	return kinds
}

// Returns the number of recorded invocations of the given kind.
func (f *fakeRunner) count(kind string) int {
	n := 0
	for _, k := range f.kinds() {
		if k == kind {
			n++
		}
	}
	return n
}

// Returns the value following a flag in an argument list, or "".
func argValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// Returns every value following occurrences of a flag, in order.
func argValues(args []string, flag string) []string {
	var values []string
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			values = append(values, args[i+1])
		}
	}
	return values
}
