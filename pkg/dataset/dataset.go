package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Record is one (label, value) pair.
type Record struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Dataset is an ordered sequence of records. Each call to [Read] returns a new
// slice owned by the caller.
type Dataset []Record

// Len returns the number of records.
func (d Dataset) Len() int { return len(d) }

// Max returns the largest value in the dataset, or 0 if it is empty.
func (d Dataset) Max() float64 {
	if len(d) == 0 {
		return 0
	}
	m := d[0].Value
	for _, r := range d[1:] {
		if r.Value > m {
			m = r.Value
		}
	}
	return m
}

// Format identifies a parse strategy.
type Format int

const (
	// FormatUnknown is returned for unrecognized extensions.
	FormatUnknown Format = iota
	// FormatTabular is tab-separated plain text.
	FormatTabular
	// FormatDelimited is delimited text whose locale is sniffed.
	FormatDelimited
)

func (f Format) String() string {
	switch f {
	case FormatTabular:
		return "tabular"
	case FormatDelimited:
		return "delimited"
	default:
		return "unknown"
	}
}

var formatByExt = map[string]Format{
	".txt": FormatTabular,
	".tsv": FormatTabular,
	".tab": FormatTabular,
	".csv": FormatDelimited,
}

// DetectFormat returns the parse strategy for path based on its extension.
// Matching is case-insensitive.
func DetectFormat(path string) Format {
	return formatByExt[strings.ToLower(filepath.Ext(path))]
}

// Extensions returns the recognized file extensions, tabular first.
func Extensions() []string {
	return []string{".txt", ".tsv", ".tab", ".csv"}
}

// ParseError describes a line that could not be turned into a Record.
type ParseError struct {
	Path string // File path, empty when reading from a stream
	Line int    // 1-based line number
	Text string // Offending line with terminators stripped
	Err  error  // Underlying reason
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("%s: %q: %v", loc, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
