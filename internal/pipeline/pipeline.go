package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/framesmith/framesmith/internal/paths"
	"github.com/framesmith/framesmith/internal/toolchain"
)

// Controls pipeline execution.
type Options struct {
	Workspace   string   // Xcode workspace passed to every build invocation.
	Products    []string // Library products (schemes) to build, in declaration order.
	Platforms   []string // Target platforms, in declaration and merge order.
	ArchiveName string   // Filename of the distribution archive. Defaults to "frameworks.zip".

	BuildRoot    string    // Root for per-platform archives and logs. Defaults per the paths package.
	DistDir      string    // Directory for merged packages. Defaults per the paths package.
	ArtifactsDir string    // Directory for the distribution archive. Defaults per the paths package.
	DerivedData  string    // Derived-data cache passed to the build tool. Defaults per the paths package.
	Out          io.Writer // Operator-facing output for failed build logs. Defaults to stdout.
}

// Identifies one completed (product, platform) build.
type Build struct {
	Product  string // Product that was built.
	Platform string // Platform it was built for.
	Path     string // Location of the framework inside the archive.
}

// Records progress through a run.
//
// A report is returned for failed runs too, so callers can observe which
// builds and packages completed before the abort.
type Report struct {
	State    State    // State the run ended in: StateDone or StateFailed.
	Built    []Build  // Successfully completed builds, in execution order.
	Packages []string // Paths of the merged multi-platform packages.
	Archive  string   // Path of the distribution archive, set once archiving completed.
}

// Holds shared state for one pipeline run.
type pipeline struct {
	runner      toolchain.Runner // Runner for external tool invocations.
	workspace   string           // Workspace passed to the build tool.
	products    []string         // Products to build, in order.
	platforms   []string         // Platforms to build and merge, in order.
	archiveName string           // Filename of the distribution archive.

	buildRoot    string    // Root directory for archives and logs.
	distDir      string    // Directory for merged packages.
	artifactsDir string    // Directory for the distribution archive.
	derivedData  string    // Derived-data cache directory.
	out          io.Writer // Operator-facing output for failure logs.

	state  State   // Current run state.
	report *Report // Progress, shared with the caller.
}

// Builds, merges, and archives every product for every platform.
//
// Products and platforms are processed strictly in declaration order, one
// at a time. A product is merged only after all of its platform builds
// succeeded, and the distribution archive is written only after every
// product was merged. The first failure aborts the run; the returned
// report is non-nil either way and records how far the run got.
func Run(ctx context.Context, runner toolchain.Runner, opts Options) (*Report, error) {
	opts = opts.withDefaults()

	slog.Info("starting pipeline",
		"workspace", opts.Workspace,
		"products", opts.Products,
		"platforms", opts.Platforms,
	)

	return newPipeline(runner, opts).run(ctx)
}

// Fills unset optional fields with their defaults.
func (o Options) withDefaults() Options {
	if o.ArchiveName == "" {
		o.ArchiveName = "frameworks.zip"
	}
	if o.BuildRoot == "" {
		o.BuildRoot = paths.BuildRoot()
	}
	if o.DistDir == "" {
		o.DistDir = paths.DistDir()
	}
	if o.ArtifactsDir == "" {
		o.ArtifactsDir = paths.ArtifactsDir()
	}
	if o.DerivedData == "" {
		o.DerivedData = paths.DerivedData()
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	return o
}

// Creates a new [pipeline] from the given options.
func newPipeline(runner toolchain.Runner, opts Options) *pipeline {
	return &pipeline{
		runner:       runner,
		workspace:    opts.Workspace,
		products:     opts.Products,
		platforms:    opts.Platforms,
		archiveName:  opts.ArchiveName,
		buildRoot:    opts.BuildRoot,
		distDir:      opts.DistDir,
		artifactsDir: opts.ArtifactsDir,
		derivedData:  opts.DerivedData,
		out:          opts.Out,
		state:        StateIdle,
		report:       &Report{State: StateIdle},
	}
}

// Drives the run through its states.
func (p *pipeline) run(ctx context.Context) (*Report, error) {
	p.transition(StateCleaning)
	if err := p.clean(); err != nil {
		return p.fail(err)
	}

	for _, product := range p.products {
		p.transition(StateBuilding)
		for _, platform := range p.platforms {
			if err := p.build(ctx, product, platform); err != nil {
				return p.fail(err)
			}
		}

		p.transition(StatePackaging)
		if err := p.merge(ctx, product); err != nil {
			return p.fail(err)
		}
	}

	p.transition(StateArchiving)
	if err := p.archiveAll(ctx); err != nil {
		return p.fail(err)
	}

	p.transition(StateDone)
	return p.report, nil
}

// Removes all output from previous runs.
//
// The build root and dist directory are deleted entirely; there is no
// incremental reuse. Removal of a missing directory is not an error.
func (p *pipeline) clean() error {
	for _, dir := range []string{p.buildRoot, p.distDir} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
	}
	return nil
}

// Marks the run as failed and hands the report back with the error.
func (p *pipeline) fail(err error) (*Report, error) {
	p.transition(StateFailed)
	return p.report, err
}

// Reports whether a directory exists at the given path.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
