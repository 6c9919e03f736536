package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/framesmith/framesmith/internal/pipeline"
)

var ErrManifest = errors.New("invalid manifest")

// Describes what a run builds.
type Manifest struct {
	Workspace string   `toml:"workspace"` // Xcode workspace to build from.
	Products  []string `toml:"products"`  // Library products, in build order.
	Platforms []string `toml:"platforms"` // Target platforms, in build and merge order.
	Archive   string   `toml:"archive"`   // Filename of the distribution archive.
}

// Returns the built-in manifest used when no file exists.
func Default() Manifest {
	return Manifest{
		Workspace: "Frameworks.xcworkspace",
		Products:  []string{"Core"},
		Platforms: []string{
			pipeline.PlatformIOS,
			pipeline.PlatformIOSSimulator,
			pipeline.PlatformWatchOS,
			pipeline.PlatformWatchOSSimulator,
			pipeline.PlatformMacOS,
		},
		Archive: "frameworks.zip",
	}
}

// Reads a manifest from the given path.
//
// A missing file is not an error; the built-in default table applies. After
// decoding, unset fields are filled from the defaults so a partial file
// only overrides what it names.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: %s: %w", ErrManifest, path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: %s: %w", ErrManifest, path, err)
	}

	m.applyDefaults()
	return m, nil
}

// Fills unset fields from the built-in defaults.
func (m *Manifest) applyDefaults() {
	def := Default()
	if m.Workspace == "" {
		m.Workspace = def.Workspace
	}
	if len(m.Products) == 0 {
		m.Products = def.Products
	}
	if len(m.Platforms) == 0 {
		m.Platforms = def.Platforms
	}
	if m.Archive == "" {
		m.Archive = def.Archive
	}
}
