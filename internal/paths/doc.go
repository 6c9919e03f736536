// Provides output and cache paths for the build pipeline.
//
// Run outputs (archives, logs, packages, the final distribution archive)
// live under fixed directories relative to the working directory so that
// artifact locations are deterministic from run to run. The derived-data
// cache follows XDG conventions on Linux and platform-native conventions
// on macOS, under a "framesmith" subdirectory.
package paths
