package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spokeplot/pkg/dataset"
	"github.com/matzehuels/spokeplot/pkg/errors"
)

// Export formats accepted by show --as.
const (
	showTable    = "table"
	showText     = "text"
	showMarkdown = "markdown"
	showCSV      = "csv"
	showHTML     = "html"
)

// showCommand creates the show command for printing a dataset.
func (c *CLI) showCommand() *cobra.Command {
	var (
		limit int
		as    string
	)

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print a dataset as a table",
		Long: `Print a dataset as a table.

The default output is a styled terminal table with the record count, the
largest value and, for CSV input, the sniffed locale. --as text, markdown,
csv or html prints only the records in that format, suitable for piping.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDataset,
		RunE: func(cmd *cobra.Command, args []string) error {
			if as != showTable {
				return c.runExport(cmd.Context(), cmd.OutOrStdout(), args[0], as)
			}
			return c.runShow(cmd.Context(), args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n records (0 shows all)")
	cmd.Flags().StringVar(&as, "as", showTable, "output: table, text, markdown, csv, html")

	return cmd
}

func (c *CLI) runShow(ctx context.Context, path string, limit int) error {
	ds, err := c.newRunner().Ingest(ctx, path)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(path))
	if dataset.DetectFormat(path) == dataset.FormatDelimited {
		guess, err := dataset.Sniff(path)
		if err != nil {
			return err
		}
		printKeyValue("locale", guess.String())
	}
	printKeyValue("records", strconv.Itoa(ds.Len()))
	if ds.Len() == 0 {
		printInfo("no records")
		return nil
	}
	printKeyValue("max", formatValue(ds.Max()))
	fmt.Println(datasetTable(ds, limit))
	return nil
}

func (c *CLI) runExport(ctx context.Context, w io.Writer, path, as string) error {
	if err := validateExportFormat(as); err != nil {
		return err
	}
	ds, err := c.newRunner().Ingest(ctx, path)
	if err != nil {
		return err
	}
	return writeDataset(w, ds, as)
}

func validateExportFormat(as string) error {
	switch as {
	case showText, showMarkdown, showCSV, showHTML:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput,
		"invalid --as: %q (must be one of: table, text, markdown, csv, html)", as)
}

// writeDataset renders ds to w in one of the plain export formats.
func writeDataset(w io.Writer, ds dataset.Dataset, as string) error {
	if err := validateExportFormat(as); err != nil {
		return err
	}
	t := prettytable.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(prettytable.StyleLight)
	t.AppendHeader(prettytable.Row{"Label", "Value"})
	for _, r := range ds {
		t.AppendRow(prettytable.Row{r.Label, formatValue(r.Value)})
	}

	switch as {
	case showMarkdown:
		t.RenderMarkdown()
	case showCSV:
		t.RenderCSV()
	case showHTML:
		t.RenderHTML()
	default:
		t.Render()
	}
	return nil
}
