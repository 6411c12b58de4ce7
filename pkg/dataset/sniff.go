package dataset

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/spokeplot/pkg/errors"
)

// LocaleGuess is the sniffed delimiter and decimal convention of a delimited file.
type LocaleGuess int

const (
	// DotDecimalCommaDelimited is "France,10.5". It is also the default for empty files.
	DotDecimalCommaDelimited LocaleGuess = iota
	// CommaDecimalSemicolonDelimited is "France;10,5".
	CommaDecimalSemicolonDelimited
)

func (g LocaleGuess) String() string {
	if g == CommaDecimalSemicolonDelimited {
		return "comma-decimal/semicolon-delimited"
	}
	return "dot-decimal/comma-delimited"
}

// Delimiter returns the field separator for the guess.
func (g LocaleGuess) Delimiter() rune {
	if g == CommaDecimalSemicolonDelimited {
		return ';'
	}
	return ','
}

// DecimalSeparator returns the decimal separator for the guess.
func (g LocaleGuess) DecimalSeparator() byte {
	if g == CommaDecimalSemicolonDelimited {
		return ','
	}
	return '.'
}

// SniffStats holds the counts behind a guess.
type SniffStats struct {
	Lines          int // N: total lines
	SemicolonLines int // S: lines containing at least one ';'
}

// Guess applies the majority rule: semicolons win only when S > N/2 using
// integer division, so an exact half falls back to the comma convention.
func (s SniffStats) Guess() LocaleGuess {
	if s.Lines == 0 {
		return DotDecimalCommaDelimited
	}
	if s.SemicolonLines > s.Lines/2 {
		return CommaDecimalSemicolonDelimited
	}
	return DotDecimalCommaDelimited
}

// Sniff scans the file at path once and guesses its locale.
func Sniff(path string) (LocaleGuess, error) {
	stats, err := SniffFile(path)
	if err != nil {
		return DotDecimalCommaDelimited, err
	}
	return stats.Guess(), nil
}

// SniffFile is like [Sniff] but returns the raw counts.
func SniffFile(path string) (SniffStats, error) {
	if err := errors.ValidatePath(path); err != nil {
		return SniffStats{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return SniffStats{}, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	stats, err := SniffReader(f)
	if err != nil {
		return SniffStats{}, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	return stats, nil
}

// SniffReader counts lines and semicolon lines in r.
func SniffReader(r io.Reader) (SniffStats, error) {
	var stats SniffStats
	err := eachLine(r, func(_ int, line string) error {
		stats.Lines++
		if strings.IndexByte(line, ';') >= 0 {
			stats.SemicolonLines++
		}
		return nil
	})
	return stats, err
}

// eachLine calls fn for every line of r with its 1-based number and without
// its "\n" or "\r\n" terminator. A final line without terminator is included;
// a trailing terminator does not start a new line.
func eachLine(r io.Reader, fn func(n int, line string) error) error {
	br := bufio.NewReader(r)
	n := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			n++
			if ferr := fn(n, trimTerminator(line)); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
