package pipeline

// Platform identifiers with a fixed architecture mapping.
const (
	PlatformIOS              = "iOS"
	PlatformIOSSimulator     = "iOS Simulator"
	PlatformWatchOS          = "watchOS"
	PlatformWatchOSSimulator = "watchOS Simulator"
	PlatformMacOS            = "macOS"
)

// Returns the instruction-set architectures to build for a platform.
//
// The mapping is a static table rather than a toolchain query, keeping
// builds reproducible. Unrecognized platforms fall back to the iOS device
// set. A fresh slice is returned on every call.
func Architectures(platform string) []string {
	switch platform {
	case PlatformIOS:
		return []string{"arm64", "arm64e"}
	case PlatformIOSSimulator:
		return []string{"x86_64", "arm64", "arm64e"}
	case PlatformWatchOS:
		return []string{"arm64_32"}
	case PlatformWatchOSSimulator:
		return []string{"x86_64", "arm64"}
	case PlatformMacOS:
		return []string{"x86_64", "arm64"}
	default:
		return []string{"arm64", "arm64e"}
	}
}
