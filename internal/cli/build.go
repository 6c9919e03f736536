package cli

import (
	"context"
	"log/slog"

	"github.com/framesmith/framesmith/internal/manifest"
	"github.com/framesmith/framesmith/internal/pipeline"
	"github.com/framesmith/framesmith/internal/toolchain"
)

// Represents the 'framesmith build' command.
type BuildCmd struct{}

// Executes the build command.
//
// Loads the manifest (or the built-in defaults when no file exists) and
// runs the whole pipeline: clean, build every product for every platform,
// merge, archive. Any failure aborts the run and is returned to main,
// which exits non-zero.
func (c *BuildCmd) Run(ctx context.Context) error {
	m, err := manifest.Load(RootCmd.Manifest)
	if err != nil {
		return err
	}

	report, err := pipeline.Run(ctx, toolchain.ExecRunner{}, pipeline.Options{
		Workspace:   m.Workspace,
		Products:    m.Products,
		Platforms:   m.Platforms,
		ArchiveName: m.Archive,
	})
	if err != nil {
		return err
	}

	slog.Info("pipeline complete",
		"builds", len(report.Built),
		"packages", len(report.Packages),
		"archive", report.Archive,
	)
	return nil
}
