package layout

import (
	"math"

	"github.com/matzehuels/spokeplot/pkg/dataset"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/styles"
)

// ViewSize is the side of the square drawing area centered on the origin.
const ViewSize = 500.0

// Point is a position in diagram coordinates. Y grows downwards, as in SVG.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ViewBox is the visible area of the diagram.
type ViewBox struct {
	MinX   float64 `json:"min_x"`
	MinY   float64 `json:"min_y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultViewBox returns the fixed [-250,250]×[-250,250] area.
func DefaultViewBox() ViewBox {
	return ViewBox{MinX: -ViewSize / 2, MinY: -ViewSize / 2, Width: ViewSize, Height: ViewSize}
}

// Primitive is a drawable shape. It is implemented by [Spoke] and [Node] only.
type Primitive interface {
	primitive()
}

// Spoke is a line from the origin to the end of a record's ray.
type Spoke struct {
	From        Point        `json:"from"`
	To          Point        `json:"to"`
	Stroke      styles.Color `json:"stroke"`
	StrokeWidth float64      `json:"stroke_width"`
}

// Node is the circle drawn at the end of a spoke.
type Node struct {
	Center      Point        `json:"center"`
	Radius      float64      `json:"radius"`
	Stroke      styles.Color `json:"stroke"`
	StrokeWidth float64      `json:"stroke_width"`
	Fill        styles.Color `json:"fill"`
	Label       string       `json:"label"`
}

func (Spoke) primitive() {}
func (Node) primitive()  {}

// Geometry is the complete drawing: the view box plus one Spoke followed by
// one Node per record, in dataset order.
type Geometry struct {
	ViewBox    ViewBox     `json:"view_box"`
	DeltaAngle float64     `json:"delta_angle"`
	Primitives []Primitive `json:"primitives"`
}

// Len returns the number of records drawn.
func (g Geometry) Len() int { return len(g.Primitives) / 2 }

// Spokes returns the spokes in order.
func (g Geometry) Spokes() []Spoke {
	out := make([]Spoke, 0, g.Len())
	for _, p := range g.Primitives {
		if s, ok := p.(Spoke); ok {
			out = append(out, s)
		}
	}
	return out
}

// Nodes returns the nodes in order.
func (g Geometry) Nodes() []Node {
	out := make([]Node, 0, g.Len())
	for _, p := range g.Primitives {
		if n, ok := p.(Node); ok {
			out = append(out, n)
		}
	}
	return out
}

// Build lays out ds with style s.
//
// Records are spread clockwise from 12 o'clock at equal angles of 2π/n.
// Each spoke has length s.LineLength·value/max. When the maximum value is
// not positive every ratio is 0, and negative values are clamped to 0, so
// those spokes collapse to the origin. An empty dataset yields a geometry with
// only the view box.
//
// Build does not validate s; callers should run [styles.Style.Validate] first.
func Build(ds dataset.Dataset, s styles.Style) Geometry {
	g := Geometry{ViewBox: DefaultViewBox()}
	n := len(ds)
	if n == 0 {
		g.Primitives = []Primitive{}
		return g
	}

	g.DeltaAngle = 2 * math.Pi / float64(n)
	maxValue := ds.Max()
	width := float64(s.LineWidth)

	g.Primitives = make([]Primitive, 0, 2*n)
	for i, r := range ds {
		ratio := Ratio(r.Value, maxValue)
		angle := float64(i) * g.DeltaAngle
		length := float64(s.LineLength) * ratio
		end := Point{
			X: length * math.Sin(angle),
			Y: -length * math.Cos(angle),
		}

		radius := float64(s.CircleRadius)
		if s.NormalizeCircleRadius {
			radius *= ratio
		}

		g.Primitives = append(g.Primitives,
			Spoke{
				From:        Point{},
				To:          end,
				Stroke:      s.LineColor,
				StrokeWidth: width,
			},
			Node{
				Center:      end,
				Radius:      radius,
				Stroke:      s.CircleStrokeColor,
				StrokeWidth: width,
				Fill:        s.CircleFillColor,
				Label:       r.Label,
			},
		)
	}
	return g
}

// Ratio returns value/maxValue limited to [0, 1] for non-negative values.
// A non-positive maximum yields 0.
func Ratio(value, maxValue float64) float64 {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	return value / maxValue
}
