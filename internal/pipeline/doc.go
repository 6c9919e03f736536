// Package pipeline builds multi-platform framework bundles.
//
// A run cleans the output tree, builds every product for every declared
// platform with xcodebuild, merges each product's per-platform archives
// into a single XCFramework, and compresses the merged packages into one
// distribution archive. The first failure anywhere aborts the run; no
// packaging or archiving happens after a failed build.
//
// A build succeeds only when the tool exits zero and the expected framework
// directory exists inside the archive. Exit code alone is not trusted: a
// tool can exit zero without producing output, and a failed run can leave
// stale output behind.
//
// Tool invocations are delegated to the toolchain package, so tests drive
// the whole pipeline with a fake runner.
//
// Example usage:
//
//	report, err := pipeline.Run(ctx, toolchain.ExecRunner{}, pipeline.Options{
//	    Workspace: "Frameworks.xcworkspace",
//	    Products:  []string{"Core", "Messaging"},
//	    Platforms: []string{"iOS", "iOS Simulator", "macOS"},
//	})
//	if err != nil {
//	    return err
//	}
//
//	slog.Info("done", "archive", report.Archive)
package pipeline
