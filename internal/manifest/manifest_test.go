package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	def := Default()
	if m.Workspace != def.Workspace {
		t.Fatalf("Workspace = %q, want %q", m.Workspace, def.Workspace)
	}
	if len(m.Platforms) != len(def.Platforms) {
		t.Fatalf("len(Platforms) = %d, want %d", len(m.Platforms), len(def.Platforms))
	}
}

func TestLoadDecodesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "framesmith.toml")
	contents := `
workspace = "Libs.xcworkspace"
products = ["Auth", "Storage"]
platforms = ["iOS", "macOS"]
archive = "libs.zip"
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if m.Workspace != "Libs.xcworkspace" {
		t.Fatalf("Workspace = %q", m.Workspace)
	}
	if len(m.Products) != 2 || m.Products[0] != "Auth" || m.Products[1] != "Storage" {
		t.Fatalf("Products = %v", m.Products)
	}
	if len(m.Platforms) != 2 || m.Platforms[0] != "iOS" || m.Platforms[1] != "macOS" {
		t.Fatalf("Platforms = %v", m.Platforms)
	}
	if m.Archive != "libs.zip" {
		t.Fatalf("Archive = %q", m.Archive)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "framesmith.toml")
	if err := os.WriteFile(path, []byte(`products = ["Auth"]`), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(m.Products) != 1 || m.Products[0] != "Auth" {
		t.Fatalf("Products = %v", m.Products)
	}

	def := Default()
	if m.Workspace != def.Workspace {
		t.Fatalf("Workspace = %q, want default %q", m.Workspace, def.Workspace)
	}
	if len(m.Platforms) != len(def.Platforms) {
		t.Fatalf("Platforms = %v, want defaults", m.Platforms)
	}
	if m.Archive != def.Archive {
		t.Fatalf("Archive = %q, want default %q", m.Archive, def.Archive)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "framesmith.toml")
	if err := os.WriteFile(path, []byte(`products = not toml`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed manifest")
	}
	if !errors.Is(err, ErrManifest) {
		t.Fatalf("err = %v, want ErrManifest", err)
	}
}
