// Package styles defines the rendering parameters of a spoke diagram.
//
// # Overview
//
// A [Style] is an immutable value. A shell that lets users tweak the diagram
// builds a new Style for every change and passes it wholesale to the layout
// engine:
//
//	s := styles.Default().
//	    WithLineLength(200).
//	    WithNormalizeCircleRadius(true).
//	    WithLineColor(styles.Red)
//	if err := s.Validate(); err != nil {
//	    return err
//	}
//
// # Parameters
//
//   - LineLength (10..250): spoke length of the largest value
//   - LineWidth (1..10): stroke width of spokes and circle outlines
//   - CircleRadius (1..30): circle radius, scaled by value when normalized
//   - LineColor: black, red, green or blue
//
// Circle outlines use the spoke color and width, and circles are always filled
// blue. [Style.WithLineColor] updates both color fields together.
//
// # Style Files
//
// [LoadFile] and [Decode] read TOML files whose keys override a base style:
//
//	line_length = 120
//	normalize_circle_radius = true
//	line_color = "green"
//
// Files ending in .yaml or .yml go through [DecodeYAML] with the same keys.
// Unknown keys are an error in both formats.
package styles
