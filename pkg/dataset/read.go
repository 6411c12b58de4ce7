package dataset

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/spokeplot/pkg/errors"
)

// Reasons attached to a ParseError.
var (
	ErrMissingSeparator = stderrors.New("missing tab separator")
	ErrEmptyLabel       = stderrors.New("empty label")
	ErrInvalidValue     = stderrors.New("value is not a number")
	ErrNonFiniteValue   = stderrors.New("value is not finite")
	ErrFieldCount       = stderrors.New("expected exactly a label and a value")
	ErrBlankLine        = stderrors.New("blank line")
)

// Read loads the dataset stored at path. The parse strategy is chosen by
// [DetectFormat]; delimited files are sniffed with [SniffReader] first.
//
// The file is re-read on every call. On error the returned Dataset is nil.
func Read(path string) (Dataset, error) {
	ds, _, err := ReadWithLocale(path)
	return ds, err
}

// ReadWithLocale is like [Read] and also reports the locale guess used for a
// delimited file. For tabular files the guess is [DotDecimalCommaDelimited].
func ReadWithLocale(path string) (Dataset, LocaleGuess, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, DotDecimalCommaDelimited, err
	}

	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, DotDecimalCommaDelimited, errors.New(errors.ErrCodeUnsupportedFormat,
			"unsupported file extension %q for %s (want one of %s)",
			filepath.Ext(path), path, strings.Join(Extensions(), ", "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, DotDecimalCommaDelimited, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}

	switch format {
	case FormatTabular:
		ds, err := readTabular(bytes.NewReader(data), path)
		return ds, DotDecimalCommaDelimited, err
	default:
		stats, err := SniffReader(bytes.NewReader(data))
		if err != nil {
			return nil, DotDecimalCommaDelimited, errors.Wrap(errors.ErrCodeIO, err, "sniff %s", path)
		}
		guess := stats.Guess()
		ds, err := readDelimited(bytes.NewReader(data), guess, path)
		return ds, guess, err
	}
}

// ReadTabular parses tab-separated records from r. Each line is split on its
// first tab; a line without one, including a blank line in the middle of the
// input, is malformed. Blank lines at the end of the input are ignored.
func ReadTabular(r io.Reader) (Dataset, error) {
	return readTabular(r, "")
}

// ReadDelimited parses delimited records from r using the convention of
// guess. Every line must split on the delimiter into exactly a label and a
// value. Quotes have no special meaning, so a label containing the delimiter
// is malformed. Blank lines are treated as in [ReadTabular].
func ReadDelimited(r io.Reader, guess LocaleGuess) (Dataset, error) {
	return readDelimited(r, guess, "")
}

func readTabular(r io.Reader, path string) (Dataset, error) {
	return readLines(r, path, func(line string) (Record, error) {
		label, value, ok := strings.Cut(line, "\t")
		if !ok {
			return Record{}, ErrMissingSeparator
		}
		return newRecord(label, value, '.')
	})
}

func readDelimited(r io.Reader, guess LocaleGuess, path string) (Dataset, error) {
	sep := string(guess.Delimiter())
	return readLines(r, path, func(line string) (Record, error) {
		fields := strings.Split(line, sep)
		if len(fields) != 2 {
			return Record{}, ErrFieldCount
		}
		return newRecord(fields[0], fields[1], guess.DecimalSeparator())
	})
}

// readLines turns every line of r into one Record with parse. Blank lines
// are only accepted as a trailing run; one followed by a record is reported
// at its own line number.
func readLines(r io.Reader, path string, parse func(line string) (Record, error)) (Dataset, error) {
	ds := Dataset{}
	blank := 0
	err := eachLine(r, func(n int, line string) error {
		if line == "" {
			if blank == 0 {
				blank = n
			}
			return nil
		}
		if blank != 0 {
			return malformed(path, blank, "", ErrBlankLine)
		}
		rec, err := parse(line)
		if err != nil {
			return malformed(path, n, line, err)
		}
		ds = append(ds, rec)
		return nil
	})
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", displayPath(path))
	}
	return ds, nil
}

// newRecord validates a label and converts value, whose decimal separator is
// decimal, into a finite float64.
func newRecord(label, value string, decimal byte) (Record, error) {
	if label == "" {
		return Record{}, ErrEmptyLabel
	}
	v := strings.TrimSpace(value)
	if decimal != '.' {
		v = strings.ReplaceAll(v, string(decimal), ".")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidValue, value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Record{}, fmt.Errorf("%w: %q", ErrNonFiniteValue, value)
	}
	return Record{Label: label, Value: f}, nil
}

func malformed(path string, line int, text string, reason error) error {
	pe := &ParseError{Path: path, Line: line, Text: text, Err: reason}
	return errors.Wrap(errors.ErrCodeMalformedRecord, pe, "malformed record")
}

func displayPath(path string) string {
	if path == "" {
		return "input"
	}
	return path
}
