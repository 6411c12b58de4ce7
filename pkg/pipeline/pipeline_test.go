package pipeline

import (
	"testing"

	"github.com/matzehuels/spokeplot/pkg/errors"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/styles"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_INPUT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{"svg", []string{"svg"}, false},
		{"svg,json", []string{"svg", "json"}, false},
		{" SVG , json,svg ", []string{"svg", "json"}, false},
		{"", nil, false},
		{"svg,gif", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseFormats(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormats(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Input: "in.txt", Output: "out", Style: styles.Default()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if got := opts.OutputPath(FormatJSON); got != "out.json" {
		t.Errorf("OutputPath(json) = %q", got)
	}

	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing input", Options{Output: "out", Style: styles.Default()}, errors.ErrCodeInvalidInput},
		{"missing output", Options{Input: "in.txt", Style: styles.Default()}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Input: "in.txt", Output: "out", Formats: []string{"bmp"}, Style: styles.Default()}, errors.ErrCodeInvalidInput},
		{"bad style", Options{Input: "in.txt", Output: "out", Style: styles.Default().WithLineLength(5)}, errors.ErrCodeInvalidStyle},
		{"zero style", Options{Input: "in.txt", Output: "out"}, errors.ErrCodeInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}
