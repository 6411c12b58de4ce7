package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spokeplot/pkg/dataset"
)

// sniffCommand creates the sniff command for reporting a file's locale guess.
func (c *CLI) sniffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sniff [file]",
		Short: "Guess the decimal and delimiter convention of a file",
		Long: `Guess the decimal and delimiter convention of a file.

A file is read as comma-decimal/semicolon-delimited when more than half of
its lines contain a semicolon, and as dot-decimal/comma-delimited otherwise.
Labels containing ';' can tip the vote.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDataset,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSniff(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func (c *CLI) runSniff(ctx context.Context, w io.Writer, path string) error {
	logger := loggerFromContext(ctx)

	stats, err := dataset.SniffFile(path)
	if err != nil {
		return err
	}
	guess := stats.Guess()
	logger.Debug("sniffed", "path", path, "lines", stats.Lines, "semicolon_lines", stats.SemicolonLines)

	fmt.Fprintln(w, StyleTitle.Render(guess.String()))
	fmt.Fprintln(w, keyValue("lines", strconv.Itoa(stats.Lines)))
	fmt.Fprintln(w, keyValue("with ';'", strconv.Itoa(stats.SemicolonLines)))
	fmt.Fprintln(w, keyValue("delimiter", strconv.QuoteRune(guess.Delimiter())))
	fmt.Fprintln(w, keyValue("decimal", strconv.QuoteRune(rune(guess.DecimalSeparator()))))
	return nil
}
