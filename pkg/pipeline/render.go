package pipeline

import (
	"fmt"

	"github.com/matzehuels/spokeplot/pkg/render"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/layout"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/sink"
)

// RenderArtifacts generates documents for the requested formats.
// PNG and PDF are converted from the SVG and need rsvg-convert.
func RenderArtifacts(g layout.Geometry, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	svgBytes := func() []byte {
		if svg == nil {
			svg = sink.RenderSVG(g, svgOpts...)
		}
		return svg
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svgBytes()
		case FormatPNG:
			data, err = render.ToPNG(svgBytes(), opts.Scale)
		case FormatPDF:
			data, err = render.ToPDF(svgBytes())
		case FormatJSON:
			data, err = sink.RenderJSON(g, sink.WithJSONStyle(opts.Style))
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	return svgOpts
}
