// Package pkg provides the core libraries for spokeplot.
//
// # Overview
//
// Spokeplot turns a two-column (label, value) dataset into a radial spoke
// diagram: one spoke per record, its length proportional to the value, with a
// circle at the tip. The pkg directory is organized as:
//
//  1. [dataset] - Reading tabular and delimited files, locale sniffing
//  2. [render] - Spoke styles, layout and output sinks
//  3. [pipeline] - Orchestration (ingest → layout → write)
//  4. [errors] - Structured error codes shared by every stage
//  5. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow:
//
//	countries.csv
//	      ↓
//	 [dataset] package (Read → Dataset)
//	      ↓
//	 [render/spoke/layout] package (Build → Geometry)
//	      ↓
//	 [render/spoke/sink] package (RenderSVG, WriteSVG)
//	      ↓
//	 SVG/JSON/PNG/PDF output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/spokeplot/pkg/dataset"
//	    "github.com/matzehuels/spokeplot/pkg/render/spoke/layout"
//	    "github.com/matzehuels/spokeplot/pkg/render/spoke/sink"
//	    "github.com/matzehuels/spokeplot/pkg/render/spoke/styles"
//	)
//
//	ds, err := dataset.Read("countries.csv")
//	if err != nil {
//	    return err
//	}
//	g := layout.Build(ds, styles.Default().WithNormalizeCircleRadius(true))
//	if err := sink.WriteSVG("countries.svg", g); err != nil {
//	    return err
//	}
//
// [dataset]: github.com/matzehuels/spokeplot/pkg/dataset
// [render]: github.com/matzehuels/spokeplot/pkg/render
// [pipeline]: github.com/matzehuels/spokeplot/pkg/pipeline
// [errors]: github.com/matzehuels/spokeplot/pkg/errors
// [observability]: github.com/matzehuels/spokeplot/pkg/observability
// [render/spoke/layout]: github.com/matzehuels/spokeplot/pkg/render/spoke/layout
// [render/spoke/sink]: github.com/matzehuels/spokeplot/pkg/render/spoke/sink
package pkg
