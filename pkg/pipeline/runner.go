package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spokeplot/pkg/dataset"
	"github.com/matzehuels/spokeplot/pkg/observability"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/layout"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/sink"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/styles"
)

// Runner executes pipeline stages with logging and instrumentation.
//
// The Runner holds no diagram state: every Ingest re-reads its file and every
// Render recomputes the geometry. Multiple goroutines can share a Runner as
// long as they write to different destinations.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Ingest reads the dataset at path. It returns a fresh Dataset on every call
// and nothing on error.
func (r *Runner) Ingest(ctx context.Context, path string) (dataset.Dataset, error) {
	ds, _, err := r.ingest(ctx, path)
	return ds, err
}

func (r *Runner) ingest(ctx context.Context, path string) (dataset.Dataset, dataset.LocaleGuess, error) {
	hooks := observability.Pipeline()
	hooks.OnIngestStart(ctx, path)

	start := time.Now()
	ds, guess, err := dataset.ReadWithLocale(path)
	elapsed := time.Since(start)
	hooks.OnIngestComplete(ctx, path, len(ds), elapsed, err)
	if err != nil {
		return nil, guess, err
	}

	r.Logger.Debug("ingested dataset",
		"path", path,
		"records", len(ds),
		"format", dataset.DetectFormat(path),
		"duration", elapsed)
	return ds, guess, nil
}

// Layout computes the geometry of ds under style s.
func (r *Runner) Layout(ctx context.Context, ds dataset.Dataset, s styles.Style) layout.Geometry {
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(ds))

	start := time.Now()
	g := layout.Build(ds, s)
	elapsed := time.Since(start)
	hooks.OnLayoutComplete(ctx, len(g.Primitives), elapsed)

	r.Logger.Debug("computed layout",
		"records", g.Len(),
		"delta_angle", g.DeltaAngle,
		"duration", elapsed)
	return g
}

// Render lays out ds with style s and writes the SVG document to dest,
// returning the written path. The style is validated first.
func (r *Runner) Render(ctx context.Context, ds dataset.Dataset, s styles.Style, dest string) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	g := r.Layout(ctx, ds, s)

	formats := []string{FormatSVG}
	hooks := observability.Pipeline()
	hooks.OnWriteStart(ctx, dest, formats)

	start := time.Now()
	err := sink.WriteSVG(dest, g)
	hooks.OnWriteComplete(ctx, dest, formats, time.Since(start), err)
	if err != nil {
		return "", err
	}

	r.Logger.Debug("wrote diagram", "path", dest, "records", g.Len())
	return dest, nil
}

// Execute runs the complete ingest → layout → write pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Artifacts: make(map[string]string, len(opts.Formats))}

	// Stage 1: Ingest
	ingestStart := time.Now()
	ds, guess, err := r.ingest(ctx, opts.Input)
	if err != nil {
		return nil, err
	}
	result.Dataset = ds
	result.Locale = guess
	result.Stats.Records = len(ds)
	result.Stats.IngestTime = time.Since(ingestStart)

	r.Logger.Info("ingested dataset",
		"records", len(ds),
		"duration", result.Stats.IngestTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	g := r.Layout(ctx, ds, opts.Style)
	result.Geometry = g
	result.Stats.Primitives = len(g.Primitives)
	result.Stats.LayoutTime = time.Since(layoutStart)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Write
	hooks := observability.Pipeline()
	hooks.OnWriteStart(ctx, opts.Output, opts.Formats)
	writeStart := time.Now()
	err = r.write(g, opts, result.Artifacts)
	result.Stats.WriteTime = time.Since(writeStart)
	hooks.OnWriteComplete(ctx, opts.Output, opts.Formats, result.Stats.WriteTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("wrote outputs",
		"formats", opts.Formats,
		"duration", result.Stats.WriteTime)

	return result, nil
}

func (r *Runner) write(g layout.Geometry, opts Options, paths map[string]string) error {
	artifacts, err := RenderArtifacts(g, opts)
	if err != nil {
		return err
	}
	for _, format := range opts.Formats {
		path := opts.OutputPath(format)
		if err := sink.WriteFile(path, artifacts[format]); err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
		paths[format] = path
	}
	return nil
}
