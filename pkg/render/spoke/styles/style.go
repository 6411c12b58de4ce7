package styles

import (
	"fmt"
	"strings"

	"github.com/matzehuels/spokeplot/pkg/errors"
)

// Color is one of the named stroke and fill colors.
type Color string

// Supported colors.
const (
	Black Color = "black"
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"
)

// Colors lists the supported colors in menu order.
var Colors = []Color{Black, Red, Green, Blue}

// ParseColor converts a case-insensitive color name.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", errors.New(errors.ErrCodeInvalidStyle, "invalid color: %q (must be one of: %s)", s, colorList())
	}
	return c, nil
}

// Valid reports whether c is a supported color.
func (c Color) Valid() bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

// Next returns the color after c in [Colors], wrapping around.
func (c Color) Next() Color {
	for i, known := range Colors {
		if c == known {
			return Colors[(i+1)%len(Colors)]
		}
	}
	return Colors[0]
}

func colorList() string {
	names := make([]string, len(Colors))
	for i, c := range Colors {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Bounds for the integer style parameters.
const (
	MinLineLength   = 10
	MaxLineLength   = 250
	MinLineWidth    = 1
	MaxLineWidth    = 10
	MinCircleRadius = 1
	MaxCircleRadius = 30
)

// Defaults used by [Default].
const (
	DefaultLineLength   = 200
	DefaultLineWidth    = 1
	DefaultCircleRadius = 10
	DefaultLineColor    = Black
	DefaultFillColor    = Blue
)

// Style holds every rendering parameter of a spoke diagram.
//
// A Style is a value: the With* methods return modified copies and never touch
// the receiver. CircleStrokeColor follows LineColor and CircleFillColor stays
// blue; neither is exposed through the config file or CLI flags.
type Style struct {
	LineLength            int   `json:"line_length"`
	LineWidth             int   `json:"line_width"`
	CircleRadius          int   `json:"circle_radius"`
	NormalizeCircleRadius bool  `json:"normalize_circle_radius"`
	LineColor             Color `json:"line_color"`
	CircleStrokeColor     Color `json:"circle_stroke_color"`
	CircleFillColor       Color `json:"circle_fill_color"`
}

// Default returns the initial style.
func Default() Style {
	return Style{
		LineLength:        DefaultLineLength,
		LineWidth:         DefaultLineWidth,
		CircleRadius:      DefaultCircleRadius,
		LineColor:         DefaultLineColor,
		CircleStrokeColor: DefaultLineColor,
		CircleFillColor:   DefaultFillColor,
	}
}

// WithLineLength returns a copy with the spoke length for the maximum value.
func (s Style) WithLineLength(n int) Style { s.LineLength = n; return s }

// WithLineWidth returns a copy with the stroke width of spokes and circles.
func (s Style) WithLineWidth(n int) Style { s.LineWidth = n; return s }

// WithCircleRadius returns a copy with the base circle radius.
func (s Style) WithCircleRadius(n int) Style { s.CircleRadius = n; return s }

// WithNormalizeCircleRadius returns a copy that scales circle radii by value when on is true.
func (s Style) WithNormalizeCircleRadius(on bool) Style { s.NormalizeCircleRadius = on; return s }

// WithLineColor returns a copy with c as spoke color and circle stroke color.
func (s Style) WithLineColor(c Color) Style {
	s.LineColor = c
	s.CircleStrokeColor = c
	return s
}

// Validate checks every field against its documented range.
func (s Style) Validate() error {
	if err := checkRange("line length", s.LineLength, MinLineLength, MaxLineLength); err != nil {
		return err
	}
	if err := checkRange("line width", s.LineWidth, MinLineWidth, MaxLineWidth); err != nil {
		return err
	}
	if err := checkRange("circle radius", s.CircleRadius, MinCircleRadius, MaxCircleRadius); err != nil {
		return err
	}
	colors := []struct {
		name  string
		color Color
	}{
		{"line color", s.LineColor},
		{"circle stroke color", s.CircleStrokeColor},
		{"circle fill color", s.CircleFillColor},
	}
	for _, c := range colors {
		if !c.color.Valid() {
			return errors.New(errors.ErrCodeInvalidStyle, "invalid %s: %q (must be one of: %s)", c.name, c.color, colorList())
		}
	}
	return nil
}

// String returns a compact one-line description.
func (s Style) String() string {
	return fmt.Sprintf("length=%d width=%d radius=%d normalize=%t color=%s",
		s.LineLength, s.LineWidth, s.CircleRadius, s.NormalizeCircleRadius, s.LineColor)
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return errors.New(errors.ErrCodeInvalidStyle, "%s %d out of range [%d, %d]", name, v, lo, hi)
	}
	return nil
}

// Clamp returns v limited to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
