// Package layout computes the geometry of a spoke diagram.
//
// # Overview
//
// [Build] turns a [dataset.Dataset] and a [styles.Style] into a [Geometry]:
// for every record, a [Spoke] from the origin and a [Node] circle at its end.
// Spokes are equally spaced, starting at 12 o'clock and turning clockwise:
//
//	Δ      = 2π / n
//	ratio  = value / max(values)
//	x      =  lineLength · ratio · sin(i·Δ)
//	y      = -lineLength · ratio · cos(i·Δ)
//	radius =  circleRadius · (ratio if normalized, else 1)
//
// Dataset order fixes each spoke's angle, so reordering records changes the
// picture even when the values are identical.
//
// # Degenerate Input
//
//   - No records: an empty geometry with only the view box.
//   - Maximum value 0 (or below): every ratio is 0, all spokes have zero
//     length and normalized circles have radius 0.
//   - Negative values: clamped to ratio 0.
//
// # View Box
//
// Every geometry uses the same square view box of side [ViewSize] centered on
// the origin, so spokes never need rescaling: the longest spoke plus the
// largest circle (250 + 30) may extend slightly past the edge, which matches
// the fixed-canvas behavior of the desktop viewer.
//
// [dataset.Dataset]: github.com/matzehuels/spokeplot/pkg/dataset.Dataset
// [styles.Style]: github.com/matzehuels/spokeplot/pkg/render/spoke/styles.Style
package layout
