package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/framesmith/framesmith/internal/paths"
	"github.com/framesmith/framesmith/internal/toolchain"
)

// Compresses every merged package into the distribution archive.
//
// Runs exactly once, after all products were merged. The compression tool
// runs with its working directory set to the dist directory via the
// invocation, so no process-wide directory change is needed; the archive
// destination is absolute for the same reason. Success is judged by exit
// code alone, and failure is fatal to the run.
func (p *pipeline) archiveAll(ctx context.Context) error {
	if err := os.MkdirAll(p.artifactsDir, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	dest, err := filepath.Abs(filepath.Join(p.artifactsDir, p.archiveName))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}

	slog.Info("archiving", "dest", dest, "packages", len(p.report.Packages))

	result, err := p.runner.Run(ctx, toolchain.Invocation{
		Tool: "zip",
		Args: []string{"-r", "-q", dest, "."},
		Dir:  p.distDir,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%w: exit code %d", ErrArchive, result.ExitCode)
	}

	p.report.Archive = dest

	return nil
}
