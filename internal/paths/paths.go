package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "framesmith"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Relative roots for run outputs, resolved against the working directory.
//
// BuildRoot and DistDir are fully reset at the start of every run;
// ArtifactsDir only ever gains the final archive file.
const (
	buildRoot    = "build"
	distDir      = "dist"
	artifactsDir = "artifacts"
)

// Path to the root directory for per-platform build output.
//
// Archives are written below it as <product>/<platform>.xcarchive.
func BuildRoot() string {
	return buildRoot
}

// Path to the directory receiving merged multi-platform packages.
func DistDir() string {
	return distDir
}

// Path to the directory receiving the final distribution archive.
func ArtifactsDir() string {
	return artifactsDir
}

// Path to the derived-data cache shared across runs.
//
//	Linux:   ~/.cache/framesmith/DerivedData
//	macOS:   ~/Library/Caches/framesmith/DerivedData
func DerivedData() string {
	return filepath.Join(xdg.CacheHome, toolName, "DerivedData")
}
