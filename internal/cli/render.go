package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/spokeplot/pkg/pipeline"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/styles"
)

// styleFlags holds the style overrides shared by render and preview.
type styleFlags struct {
	file         string // TOML style file applied before the flags
	lineLength   int    // spoke length for the maximum value
	lineWidth    int    // stroke width of spokes and circles
	circleRadius int    // base circle radius
	normalize    bool   // scale circle radius by value
	color        string // spoke and circle stroke color
}

func (f *styleFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.file, "style-file", "", "TOML file with style settings")
	fs.IntVar(&f.lineLength, "line-length", styles.DefaultLineLength, "spoke length for the largest value (10-250)")
	fs.IntVar(&f.lineWidth, "line-width", styles.DefaultLineWidth, "stroke width (1-10)")
	fs.IntVar(&f.circleRadius, "circle-radius", styles.DefaultCircleRadius, "circle radius (1-30)")
	fs.BoolVar(&f.normalize, "normalize", false, "scale circle radius by value")
	fs.StringVar(&f.color, "color", string(styles.DefaultLineColor), "line color: black, red, green, blue")
}

// resolve builds the effective style. Precedence from low to high: defaults,
// the style file, flags set on the command line.
func (f *styleFlags) resolve(fs *pflag.FlagSet) (styles.Style, error) {
	s := styles.Default()
	if f.file != "" {
		var err error
		if s, err = styles.LoadFile(f.file, s); err != nil {
			return styles.Style{}, err
		}
	}

	if fs.Changed("line-length") {
		s = s.WithLineLength(f.lineLength)
	}
	if fs.Changed("line-width") {
		s = s.WithLineWidth(f.lineWidth)
	}
	if fs.Changed("circle-radius") {
		s = s.WithCircleRadius(f.circleRadius)
	}
	if fs.Changed("normalize") {
		s = s.WithNormalizeCircleRadius(f.normalize)
	}
	if fs.Changed("color") {
		c, err := styles.ParseColor(f.color)
		if err != nil {
			return styles.Style{}, err
		}
		s = s.WithLineColor(c)
	}

	return s, s.Validate()
}

// renderCommand creates the render command for writing diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		labels     bool
		scale      float64
		sf         styleFlags
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a dataset as a spoke diagram",
		Long: `Render a dataset as a spoke diagram.

The input is a .txt/.tsv/.tab file with one "label<TAB>value" record per line,
or a .csv file whose decimal and delimiter convention is sniffed
(see 'spokeplot sniff').

Style settings are resolved from defaults, then --style-file, then explicit
flags. PNG and PDF output require rsvg-convert.`,
		Example: `  spokeplot render countries.csv
  spokeplot render data.txt -o out/diagram.svg --normalize --color red
  spokeplot render data.txt -f svg,json --style-file style.toml`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDataset,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(formatsStr)
			if err != nil {
				return err
			}
			s, err := sf.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), pipeline.Options{
				Input:   args[0],
				Output:  basePath(output, args[0]),
				Formats: formats,
				Style:   s,
				Labels:  labels,
				Scale:   scale,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&labels, "labels", false, "attach record labels as SVG titles")
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	sf.register(cmd.Flags())

	return cmd
}

// runRender executes the pipeline and reports the written files.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	logger.Debug("resolved style", "style", opts.Style.String())

	prog := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Rendered", "input", opts.Input, "records", result.Stats.Records, "formats", strings.Join(opts.Formats, ","))

	if len(result.Dataset) == 0 {
		printWarning("%s has no records; wrote an empty diagram", opts.Input)
	}
	printSuccess("Rendered %d records", result.Stats.Records)
	for _, format := range opts.Formats {
		printFile(result.Artifacts[format])
	}
	return nil
}

// parseFormats parses the --format flag. Empty means svg.
func parseFormats(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return []string{pipeline.FormatSVG}, nil
	}
	return pipeline.ParseFormats(s)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .json, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
