// Package render holds rendering helpers shared by the diagram packages.
//
// # Overview
//
// The spoke diagram itself lives in subpackages:
//
//   - [spoke/styles]: immutable rendering parameters and TOML style files
//   - [spoke/layout]: geometry computation
//   - [spoke/sink]: SVG and JSON documents, atomic file writes
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(g)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// When the tool is missing the error has code UNAVAILABLE; [Available]
// checks beforehand.
//
// [spoke/styles]: github.com/matzehuels/spokeplot/pkg/render/spoke/styles
// [spoke/layout]: github.com/matzehuels/spokeplot/pkg/render/spoke/layout
// [spoke/sink]: github.com/matzehuels/spokeplot/pkg/render/spoke/sink
package render
