// Package dataset reads two-column (label, value) datasets from disk.
//
// # Overview
//
// A [Dataset] is an ordered slice of [Record] values. Order matters: it decides
// the angular position of each spoke in the rendered diagram, so the reader
// never sorts or deduplicates. Duplicate labels are allowed.
//
// [Read] picks a parse strategy from the file extension:
//
//   - Plain tabular (.txt, .tsv, .tab): one record per line, label and value
//     separated by a single horizontal tab, dot-decimal value.
//   - Delimited text (.csv): the delimiter and decimal separator are not
//     declared anywhere, so [Sniff] guesses them before parsing. Each line is
//     split on the delimiter into exactly two fields. There is no quoting.
//
// Blank lines are accepted only at the end of a file; anywhere else they are
// malformed records.
//
// # Locale Sniffing
//
// European spreadsheet exports commonly write "France;10,5" while others write
// "France,10.5". [Sniff] counts the lines containing at least one semicolon and
// chooses [CommaDecimalSemicolonDelimited] when they form a strict majority:
//
//	guess, err := dataset.Sniff("countries.csv")
//	if guess == dataset.CommaDecimalSemicolonDelimited {
//	    // values use a decimal comma
//	}
//
// The vote looks at raw semicolon presence, so a file whose labels contain
// semicolons can be misclassified, and a label containing the chosen delimiter
// makes its line malformed. This is a known limitation of the heuristic.
//
// # Errors
//
// All failures are [errors.Error] values from pkg/errors:
//
//   - UNSUPPORTED_FORMAT for an unrecognized extension
//   - MALFORMED_RECORD for a line that is not exactly a label and a finite number
//   - IO_FAILURE when the file cannot be read
//
// Malformed lines are reported through a [*ParseError] cause carrying the path,
// the 1-based line number and the offending text. Ingestion is all-or-nothing:
// on error no partial dataset is returned.
//
// [errors.Error]: github.com/matzehuels/spokeplot/pkg/errors.Error
package dataset
