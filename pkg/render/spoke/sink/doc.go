// Package sink provides output formats for spoke diagrams.
//
// # Overview
//
// A "sink" transforms a computed [layout.Geometry] into a document:
//
//   - SVG: [RenderSVG] and [WriteSVG]
//   - JSON: [RenderJSON], the geometry in machine-readable form
//   - PDF and PNG: [render.ToPDF] and [render.ToPNG] applied to the SVG bytes
//
// # SVG Output
//
// The document has a fixed view box of -250 -250 500 500 and contains, for each
// record, a <line> followed by a <circle>, in dataset order:
//
//	<svg xmlns="http://www.w3.org/2000/svg" viewBox="-250.00 -250.00 500.00 500.00" width="500.00" height="500.00">
//	  <line x1="0.00" y1="0.00" x2="0.00" y2="-105.00" stroke="black" stroke-width="1.00"/>
//	  <circle cx="0.00" cy="-105.00" r="5.25" stroke="black" stroke-width="1.00" fill="blue"/>
//	  ...
//	</svg>
//
// Coordinates are written with two decimals, so rendering is deterministic
// and writing the same geometry twice produces identical files.
//
// # Writing Files
//
// [WriteFile] writes through a temporary file and an atomic rename, so a viewer
// watching the destination never observes a half-written document, even when
// the write fails.
//
// [layout.Geometry]: github.com/matzehuels/spokeplot/pkg/render/spoke/layout.Geometry
// [render.ToPDF]: github.com/matzehuels/spokeplot/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/spokeplot/pkg/render.ToPNG
package sink
