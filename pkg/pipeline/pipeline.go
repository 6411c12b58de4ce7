// Package pipeline provides the ingest → layout → write pipeline for spokeplot.
//
// Every entry point (the render command, the interactive preview, or another
// shell embedding the library) drives diagrams through a [Runner] so that
// logging, instrumentation and output naming behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Ingest: read a two-column dataset from a tabular or delimited file
//  2. Layout: compute the radial spoke geometry for a style
//  3. Write: serialize the geometry (SVG, JSON, PNG, PDF) and replace the
//     output files atomically
//
// # Usage
//
// A shell that only needs the SVG calls the two collaborator methods:
//
//	runner := pipeline.NewRunner(logger)
//	ds, err := runner.Ingest(ctx, "countries.csv")
//	if err != nil {
//	    return err
//	}
//	path, err := runner.Render(ctx, ds, styles.Default(), "countries.svg")
//
// Batch use goes through Execute:
//
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "countries.csv",
//	    Output:  "out/countries",
//	    Formats: []string{"svg", "json"},
//	    Style:   styles.Default(),
//	})
//	fmt.Println(result.Artifacts["svg"]) // out/countries.svg
package pipeline

import (
	"strings"
	"time"

	"github.com/matzehuels/spokeplot/pkg/dataset"
	"github.com/matzehuels/spokeplot/pkg/errors"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/layout"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/styles"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultScale is the PNG scale factor used when Options.Scale is zero.
const DefaultScale = 2.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Input is the dataset file (.txt, .tsv, .tab or .csv).
	Input string

	// Output is the destination path without extension. Each format is
	// written to Output + "." + format.
	Output string

	// Formats lists the documents to produce. Defaults to svg.
	Formats []string

	// Style is validated before layout.
	Style styles.Style

	// Labels attaches each record label to its node as an SVG <title>.
	Labels bool

	// Scale is the PNG resolution factor. Defaults to DefaultScale.
	Scale float64
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the ingested dataset.
	Dataset dataset.Dataset

	// Locale is the sniffed convention for delimited input.
	Locale dataset.LocaleGuess

	// Geometry is the computed diagram.
	Geometry layout.Geometry

	// Artifacts maps each written format to its path.
	Artifacts map[string]string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records    int
	Primitives int
	IngestTime time.Duration
	LayoutTime time.Duration
	WriteTime  time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates. The result is validated.
func ParseFormats(s string) ([]string, error) {
	var formats []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}
	return formats, nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input is required")
	}
	if o.Output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return o.Style.Validate()
}

// OutputPath returns the destination for format.
func (o *Options) OutputPath(format string) string {
	return o.Output + "." + format
}
