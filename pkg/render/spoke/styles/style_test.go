package styles

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/spokeplot/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if s.CircleStrokeColor != s.LineColor {
		t.Errorf("CircleStrokeColor = %q, want line color %q", s.CircleStrokeColor, s.LineColor)
	}
	if s.CircleFillColor != Blue {
		t.Errorf("CircleFillColor = %q, want %q", s.CircleFillColor, Blue)
	}
}

func TestWithMethodsReturnCopies(t *testing.T) {
	base := Default()
	changed := base.
		WithLineLength(120).
		WithLineWidth(3).
		WithCircleRadius(25).
		WithNormalizeCircleRadius(true).
		WithLineColor(Red)

	if base != Default() {
		t.Errorf("base style was mutated: %+v", base)
	}
	if changed.LineLength != 120 || changed.LineWidth != 3 || changed.CircleRadius != 25 {
		t.Errorf("changed = %+v", changed)
	}
	if !changed.NormalizeCircleRadius {
		t.Error("NormalizeCircleRadius = false, want true")
	}
	if changed.LineColor != Red || changed.CircleStrokeColor != Red {
		t.Errorf("colors = %q/%q, want red/red", changed.LineColor, changed.CircleStrokeColor)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		style   Style
		wantErr bool
	}{
		{"default", Default(), false},
		{"min bounds", Default().WithLineLength(10).WithLineWidth(1).WithCircleRadius(1), false},
		{"max bounds", Default().WithLineLength(250).WithLineWidth(10).WithCircleRadius(30), false},
		{"line length low", Default().WithLineLength(9), true},
		{"line length high", Default().WithLineLength(251), true},
		{"line width zero", Default().WithLineWidth(0), true},
		{"line width high", Default().WithLineWidth(11), true},
		{"circle radius zero", Default().WithCircleRadius(0), true},
		{"circle radius high", Default().WithCircleRadius(31), true},
		{"unknown line color", Default().WithLineColor("purple"), true},
		{"zero value", Style{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.style.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidStyle) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidStyle)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"black", Black, false},
		{"Red", Red, false},
		{" GREEN ", Green, false},
		{"blue", Blue, false},
		{"purple", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorNext(t *testing.T) {
	c := Black
	seen := []Color{c}
	for i := 0; i < len(Colors); i++ {
		c = c.Next()
		seen = append(seen, c)
	}
	want := []Color{Black, Red, Green, Blue, Black}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("cycle[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
	if got := Color("purple").Next(); got != Black {
		t.Errorf("unknown.Next() = %q, want %q", got, Black)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, MinLineLength, MaxLineLength); got != MinLineLength {
		t.Errorf("Clamp(5) = %d, want %d", got, MinLineLength)
	}
	if got := Clamp(300, MinLineLength, MaxLineLength); got != MaxLineLength {
		t.Errorf("Clamp(300) = %d, want %d", got, MaxLineLength)
	}
	if got := Clamp(100, MinLineLength, MaxLineLength); got != 100 {
		t.Errorf("Clamp(100) = %d, want 100", got)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		check   func(t *testing.T, s Style)
		wantErr bool
	}{
		{
			name:  "empty keeps base",
			input: "",
			check: func(t *testing.T, s Style) {
				if s != Default() {
					t.Errorf("Decode(empty) = %+v, want default", s)
				}
			},
		},
		{
			name: "all keys",
			input: `line_length = 150
line_width = 4
circle_radius = 20
normalize_circle_radius = true
line_color = "green"
`,
			check: func(t *testing.T, s Style) {
				if s.LineLength != 150 || s.LineWidth != 4 || s.CircleRadius != 20 {
					t.Errorf("numbers = %d/%d/%d", s.LineLength, s.LineWidth, s.CircleRadius)
				}
				if !s.NormalizeCircleRadius {
					t.Error("NormalizeCircleRadius = false")
				}
				if s.LineColor != Green || s.CircleStrokeColor != Green {
					t.Errorf("colors = %q/%q, want green", s.LineColor, s.CircleStrokeColor)
				}
				if s.CircleFillColor != Blue {
					t.Errorf("CircleFillColor = %q, want blue", s.CircleFillColor)
				}
			},
		},
		{
			name:  "partial override",
			input: "line_width = 2\n",
			check: func(t *testing.T, s Style) {
				if s.LineWidth != 2 || s.LineLength != DefaultLineLength {
					t.Errorf("Decode() = %+v", s)
				}
			},
		},
		{name: "out of range", input: "line_length = 500\n", wantErr: true},
		{name: "bad color", input: `line_color = "purple"`, wantErr: true},
		{name: "unknown key", input: "fill = \"red\"\n", wantErr: true},
		{name: "wrong type", input: "line_width = \"wide\"\n", wantErr: true},
		{name: "syntax error", input: "line_width = \n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode(strings.NewReader(tt.input), Default())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidStyle) {
					t.Errorf("Decode() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidStyle)
				}
				if s != Default() {
					t.Errorf("Decode() on error returned %+v, want base", s)
				}
				return
			}
			tt.check(t, s)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := Default().WithLineLength(90).WithLineWidth(5).WithCircleRadius(7).
		WithNormalizeCircleRadius(true).WithLineColor(Blue)

	var buf bytes.Buffer
	if err := Encode(&buf, want); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := Decode(&buf, Default())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "style.toml")
		if err := os.WriteFile(path, []byte("line_color = \"red\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		s, err := LoadFile(path, Default())
		if err != nil {
			t.Fatalf("LoadFile() error: %v", err)
		}
		if s.LineColor != Red {
			t.Errorf("LineColor = %q, want red", s.LineColor)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.toml"), Default())
		if !errors.Is(err, errors.ErrCodeIO) {
			t.Errorf("LoadFile() error = %v, want %s", err, errors.ErrCodeIO)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		if err := os.WriteFile(path, []byte("circle_radius = 99\n"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFile(path, Default())
		if !errors.Is(err, errors.ErrCodeInvalidStyle) {
			t.Errorf("LoadFile() error = %v, want %s", err, errors.ErrCodeInvalidStyle)
		}
		if !strings.Contains(err.Error(), path) {
			t.Errorf("error %q should mention %s", err, path)
		}
	})
}

func TestDecodeYAML(t *testing.T) {
	s, err := DecodeYAML(strings.NewReader("line_length: 120\nnormalize_circle_radius: true\nline_color: Red\n"), Default())
	if err != nil {
		t.Fatalf("DecodeYAML() error: %v", err)
	}
	want := Default().WithLineLength(120).WithNormalizeCircleRadius(true).WithLineColor(Red)
	if s != want {
		t.Errorf("DecodeYAML() = %+v, want %+v", s, want)
	}

	if s, err := DecodeYAML(strings.NewReader(""), Default()); err != nil || s != Default() {
		t.Errorf("DecodeYAML(empty) = %+v, %v", s, err)
	}

	for _, bad := range []string{"fill: red\n", "line_width: wide\n", "circle_radius: 0\n", "line_length: [1\n"} {
		_, err := DecodeYAML(strings.NewReader(bad), Default())
		if !errors.Is(err, errors.ErrCodeInvalidStyle) {
			t.Errorf("DecodeYAML(%q) error = %v, want %s", bad, err, errors.ErrCodeInvalidStyle)
		}
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.YML")
	if err := os.WriteFile(path, []byte("line_width: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFile(path, Default())
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if s.LineWidth != 3 {
		t.Errorf("LineWidth = %d, want 3", s.LineWidth)
	}
}
