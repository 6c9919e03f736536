// Parses flags and configures logging for the framesmith CLI.
//
// The CLI accepts the following flags:
//
//	-q, --quiet      Suppress informational output.
//	-v, --verbose    Enable verbose output.
//	-d, --debug      Enable debug output.
//	-m, --manifest   Manifest file path.
//
// Flags override build-time defaults set via linker flags. After parsing,
// the global logger is reconfigured to reflect the final level before the
// pipeline starts. The build command is the default, so a bare invocation
// runs the whole pipeline.
package cli
