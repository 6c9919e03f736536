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

// Merges a product's per-platform archives into one XCFramework.
//
// Frameworks are listed in platform declaration order. A debug-symbol
// bundle is an optional companion: when one exists next to an archive it is
// passed along as an absolute path, since the merge tool must not depend on
// the working directory. A missing bundle is simply omitted. Success is
// judged by exit code alone.
func (p *pipeline) merge(ctx context.Context, product string) error {
	slog.Info("packaging", "product", product, "platforms", len(p.platforms))

	args := []string{"-create-xcframework"}
	for _, platform := range p.platforms {
		args = append(args, "-framework", p.frameworkPath(product, platform))
		if dsym := p.debugSymbolsPath(product, platform); dsym != "" {
			args = append(args, "-debug-symbols", dsym)
		}
	}

	if err := os.MkdirAll(p.distDir, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	output := filepath.Join(p.distDir, product+".xcframework")
	args = append(args, "-output", output)

	result, err := p.runner.Run(ctx, toolchain.Invocation{
		Tool: "xcodebuild",
		Args: args,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPackage, product, err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%w: %s (exit code %d)", ErrPackage, product, result.ExitCode)
	}

	p.report.Packages = append(p.report.Packages, output)

	return nil
}

// Returns the absolute path of the product's debug-symbol bundle for a
// platform, or "" when the build produced none.
func (p *pipeline) debugSymbolsPath(product, platform string) string {
	dsym := filepath.Join(p.archivePath(product, platform), "dSYMs", product+".framework.dSYM")
	if !dirExists(dsym) {
		return ""
	}

	abs, err := filepath.Abs(dsym)
	if err != nil {
		return dsym
	}
	return abs
}
