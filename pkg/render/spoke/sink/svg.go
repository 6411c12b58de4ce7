package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/spokeplot/pkg/render/spoke/layout"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels bool
	size   float64
}

// WithLabels adds each node's label as a <title> tooltip.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithSize sets the width and height attributes of the root element in pixels.
// The view box is unaffected.
func WithSize(px float64) SVGOption { return func(r *svgRenderer) { r.size = px } }

// RenderSVG serializes g as an SVG document. The output is deterministic: the
// same geometry and options always produce the same bytes.
func RenderSVG(g layout.Geometry, opts ...SVGOption) []byte {
	r := svgRenderer{size: g.ViewBox.Width}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	vb := g.ViewBox
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(vb.MinX), num(vb.MinY), num(vb.Width), num(vb.Height), num(r.size), num(r.size))

	for _, p := range g.Primitives {
		switch p := p.(type) {
		case layout.Spoke:
			renderSpoke(&buf, p)
		case layout.Node:
			r.renderNode(&buf, p)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSpoke(buf *bytes.Buffer, s layout.Spoke) {
	fmt.Fprintf(buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		num(s.From.X), num(s.From.Y), num(s.To.X), num(s.To.Y), s.Stroke, num(s.StrokeWidth))
}

func (r *svgRenderer) renderNode(buf *bytes.Buffer, n layout.Node) {
	fmt.Fprintf(buf, `  <circle cx="%s" cy="%s" r="%s" stroke="%s" stroke-width="%s" fill="%s"`,
		num(n.Center.X), num(n.Center.Y), num(n.Radius), n.Stroke, num(n.StrokeWidth), n.Fill)
	if r.labels && n.Label != "" {
		fmt.Fprintf(buf, "><title>%s</title></circle>\n", escapeXML(n.Label))
		return
	}
	buf.WriteString("/>\n")
}

// num formats v with two decimals. Values that round to zero print as "0.00"
// rather than "-0.00".
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
