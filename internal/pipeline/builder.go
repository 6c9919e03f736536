package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/flytam/filenamify"
	"github.com/framesmith/framesmith/internal/paths"
	"github.com/framesmith/framesmith/internal/toolchain"
)

// Layout of the framework inside a build archive, fixed by the build tool.
const archiveProductsDir = "Products/usr/local/lib"

// Builds one product for one platform.
//
// The build tool's combined output is captured to a log file keyed by the
// product and sanitized platform name. The build succeeds only when the
// tool exits zero and the framework directory exists at its deterministic
// path; either condition failing dumps the captured log to the operator
// output and fails the run.
func (p *pipeline) build(ctx context.Context, product, platform string) error {
	archs := Architectures(platform)

	slog.Info("building", "product", product, "platform", platform, "archs", archs)

	logPath := p.logPath(product, platform)
	if err := os.MkdirAll(filepath.Dir(logPath), paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	logFile, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, paths.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	defer logFile.Close()

	result, err := p.runner.Run(ctx, toolchain.Invocation{
		Tool:   "xcodebuild",
		Args:   p.archiveArgs(product, platform, archs),
		Stdout: logFile,
		Stderr: logFile,
	})
	if err != nil {
		p.dumpLog(product, platform, logPath)
		return fmt.Errorf("%w: %s for %s: %w", ErrBuild, product, platform, err)
	}

	// Exit code alone is not trusted: the tool can exit zero without
	// producing output, and a nonzero exit can leave stale output from a
	// previous run. Both gates must hold.
	framework := p.frameworkPath(product, platform)
	if result.ExitCode != 0 || !dirExists(framework) {
		p.dumpLog(product, platform, logPath)
		return fmt.Errorf("%w: %s for %s (exit code %d)", ErrBuild, product, platform, result.ExitCode)
	}

	p.report.Built = append(p.report.Built, Build{
		Product:  product,
		Platform: platform,
		Path:     framework,
	})

	return nil
}

// Returns the build tool argument list for one (product, platform) build.
func (p *pipeline) archiveArgs(product, platform string, archs []string) []string {
	return []string{
		"archive",
		"-workspace", p.workspace,
		"-scheme", product,
		"-destination", "generic/platform=" + platform,
		"-archivePath", p.archivePath(product, platform),
		"-derivedDataPath", p.derivedData,
		"-configuration", "Release",
		"SKIP_INSTALL=NO",
		"BUILD_LIBRARY_FOR_DISTRIBUTION=YES",
		"ARCHS=" + strings.Join(archs, " "),
	}
}

// Returns the path of the build archive for a (product, platform) pair.
func (p *pipeline) archivePath(product, platform string) string {
	return filepath.Join(p.buildRoot, product, platform+".xcarchive")
}

// Returns the path where a successful build leaves the framework.
func (p *pipeline) frameworkPath(product, platform string) string {
	return filepath.Join(p.archivePath(product, platform), archiveProductsDir, product+".framework")
}

// Returns the log file path for a (product, platform) build.
func (p *pipeline) logPath(product, platform string) string {
	return filepath.Join(p.buildRoot, "logs", fmt.Sprintf("%s-%s.log", product, platformSlug(platform)))
}

// Converts a platform name to a filesystem-safe slug.
//
// Platform names can contain whitespace (e.g., "iOS Simulator").
func platformSlug(platform string) string {
	slug, err := filenamify.FilenamifyV2(platform, func(o *filenamify.Options) {
		o.Replacement = "-"
	})
	if err != nil {
		slug = platform
	}
	return strings.ReplaceAll(slug, " ", "-")
}

// Echoes a failed build's captured log to the operator output in full.
func (p *pipeline) dumpLog(product, platform, logPath string) {
	data, err := os.ReadFile(logPath)
	if err != nil {
		slog.Warn("no build log captured", "product", product, "platform", platform, "err", err)
		return
	}

	banner := color.New(color.FgRed, color.Bold)
	banner.Fprintf(p.out, "build failed: %s (%s)\n", product, platform)
	p.out.Write(data)
}
