package styles

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/spokeplot/pkg/errors"
)

// fileStyle mirrors the keys accepted in a style file. Pointer fields tell
// "absent" apart from a zero value so that absent keys keep the base style.
type fileStyle struct {
	LineLength            *int    `toml:"line_length" yaml:"line_length"`
	LineWidth             *int    `toml:"line_width" yaml:"line_width"`
	CircleRadius          *int    `toml:"circle_radius" yaml:"circle_radius"`
	NormalizeCircleRadius *bool   `toml:"normalize_circle_radius" yaml:"normalize_circle_radius"`
	LineColor             *string `toml:"line_color" yaml:"line_color"`
}

// LoadFile reads a style file and applies it on top of base. Files ending in
// .yaml or .yml are decoded with [DecodeYAML], everything else as TOML.
//
// Example file:
//
//	line_length = 200
//	line_width = 2
//	circle_radius = 10
//	normalize_circle_radius = true
//	line_color = "red"
func LoadFile(path string, base Style) (Style, error) {
	if err := errors.ValidatePath(path); err != nil {
		return base, err
	}
	f, err := os.Open(path)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeIO, err, "open style file %s", path)
	}
	defer f.Close()

	decode := Decode
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decode = DecodeYAML
	}

	s, err := decode(f, base)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidStyle, err, "style file %s", path)
	}
	return s, nil
}

// Decode reads TOML style settings from r and applies them on top of base.
// Unknown keys are rejected. The result is validated.
func Decode(r io.Reader, base Style) (Style, error) {
	var fs fileStyle
	md, err := toml.NewDecoder(r).Decode(&fs)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidStyle, err, "decode style")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, errors.New(errors.ErrCodeInvalidStyle, "unknown style keys: %s", strings.Join(keys, ", "))
	}
	return fs.apply(base)
}

// DecodeYAML is like [Decode] for YAML input:
//
//	line_length: 120
//	line_color: green
func DecodeYAML(r io.Reader, base Style) (Style, error) {
	var fs fileStyle
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fs); err != nil && err != io.EOF {
		return base, errors.Wrap(errors.ErrCodeInvalidStyle, err, "decode style")
	}
	return fs.apply(base)
}

func (fs fileStyle) apply(base Style) (Style, error) {
	s := base
	if fs.LineLength != nil {
		s = s.WithLineLength(*fs.LineLength)
	}
	if fs.LineWidth != nil {
		s = s.WithLineWidth(*fs.LineWidth)
	}
	if fs.CircleRadius != nil {
		s = s.WithCircleRadius(*fs.CircleRadius)
	}
	if fs.NormalizeCircleRadius != nil {
		s = s.WithNormalizeCircleRadius(*fs.NormalizeCircleRadius)
	}
	if fs.LineColor != nil {
		c, err := ParseColor(*fs.LineColor)
		if err != nil {
			return base, err
		}
		s = s.WithLineColor(c)
	}
	if err := s.Validate(); err != nil {
		return base, err
	}
	return s, nil
}

// Encode writes s as a TOML style file.
func Encode(w io.Writer, s Style) error {
	lineColor := string(s.LineColor)
	fs := fileStyle{
		LineLength:            &s.LineLength,
		LineWidth:             &s.LineWidth,
		CircleRadius:          &s.CircleRadius,
		NormalizeCircleRadius: &s.NormalizeCircleRadius,
		LineColor:             &lineColor,
	}
	return toml.NewEncoder(w).Encode(fs)
}
