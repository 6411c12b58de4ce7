package sink

import (
	"encoding/json"

	"github.com/matzehuels/spokeplot/pkg/render/spoke/layout"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/styles"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style *styles.Style
}

// WithJSONStyle records the style that produced the geometry, so the
// diagram can be re-rendered later from the JSON alone.
func WithJSONStyle(s styles.Style) JSONOption {
	return func(r *jsonRenderer) { r.style = &s }
}

type jsonOutput struct {
	ViewBox    layout.ViewBox `json:"view_box"`
	DeltaAngle float64        `json:"delta_angle"`
	Style      *styles.Style  `json:"style,omitempty"`
	Primitives []any          `json:"primitives"`
}

type jsonSpoke struct {
	Type string `json:"type"`
	layout.Spoke
}

type jsonNode struct {
	Type string `json:"type"`
	layout.Node
}

// RenderJSON serializes g as indented JSON. Each primitive carries a "type"
// field of "spoke" or "node"; order matches the geometry.
func RenderJSON(g layout.Geometry, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		ViewBox:    g.ViewBox,
		DeltaAngle: g.DeltaAngle,
		Style:      r.style,
		Primitives: make([]any, 0, len(g.Primitives)),
	}
	for _, p := range g.Primitives {
		switch p := p.(type) {
		case layout.Spoke:
			out.Primitives = append(out.Primitives, jsonSpoke{Type: "spoke", Spoke: p})
		case layout.Node:
			out.Primitives = append(out.Primitives, jsonNode{Type: "node", Node: p})
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
