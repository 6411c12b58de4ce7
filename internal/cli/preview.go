package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spokeplot/pkg/dataset"
	"github.com/matzehuels/spokeplot/pkg/errors"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/sink"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/styles"
)

const (
	previewRows       = 12 // dataset rows shown in the preview table
	previewLengthStep = 10 // line length change per key press
)

var (
	previewHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	previewStatusStyle = lipgloss.NewStyle().Foreground(colorGreen)
	previewPanelStyle  = lipgloss.NewStyle().PaddingLeft(2)
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output string
		watch  bool
		sf     styleFlags
	)

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Edit the diagram style interactively",
		Long: `Edit the diagram style interactively.

The dataset and current style are shown in the terminal. Every key that
changes the style re-renders the SVG at --output, so an image viewer that
watches the file shows the result live. With --watch the dataset is reloaded
whenever the input file changes.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDataset,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sf.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			dest := output
			if dest == "" {
				dest = basePath("", args[0]) + ".svg"
			}
			return c.runPreview(cmd.Context(), args[0], dest, s, watch)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "SVG file rewritten on every change")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the dataset when the input file changes")
	sf.register(cmd.Flags())

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input, dest string, s styles.Style, watch bool) error {
	runner := c.newRunner()

	ds, err := runner.Ingest(ctx, input)
	if err != nil {
		return err
	}

	m := newPreviewModel(ds, s, dest)
	m.render = func(ds dataset.Dataset, s styles.Style) (string, error) {
		return runner.Render(ctx, ds, s, dest)
	}
	m.reload = func() (dataset.Dataset, error) {
		return runner.Ingest(ctx, input)
	}
	m = m.rerender()
	if m.err != nil {
		return m.err
	}

	p := tea.NewProgram(m)
	if watch {
		stop, err := watchInput(ctx, input, p.Send)
		if err != nil {
			return err
		}
		defer stop()
	}

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(previewModel); ok {
		printSuccess("Final style: %s", fm.style)
		printFile(dest)
	}
	return nil
}

// =============================================================================
// previewModel - Interactive style editor
// =============================================================================

// previewModel is the bubbletea model for the preview command. Each style
// change produces a new immutable Style and triggers a render.
type previewModel struct {
	ds      dataset.Dataset
	style   styles.Style
	dest    string
	status  string
	err     error
	renders int

	render func(dataset.Dataset, styles.Style) (string, error)
	reload func() (dataset.Dataset, error)
}

func newPreviewModel(ds dataset.Dataset, s styles.Style, dest string) previewModel {
	return previewModel{ds: ds, style: s, dest: dest}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(datasetChangedMsg); ok {
		return m.reloadDataset(), nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	s := m.style
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "+", "=", "up":
		s = s.WithLineLength(styles.Clamp(s.LineLength+previewLengthStep, styles.MinLineLength, styles.MaxLineLength))
	case "-", "_", "down":
		s = s.WithLineLength(styles.Clamp(s.LineLength-previewLengthStep, styles.MinLineLength, styles.MaxLineLength))
	case "w":
		s = s.WithLineWidth(styles.Clamp(s.LineWidth+1, styles.MinLineWidth, styles.MaxLineWidth))
	case "W":
		s = s.WithLineWidth(styles.Clamp(s.LineWidth-1, styles.MinLineWidth, styles.MaxLineWidth))
	case "r":
		s = s.WithCircleRadius(styles.Clamp(s.CircleRadius+1, styles.MinCircleRadius, styles.MaxCircleRadius))
	case "R":
		s = s.WithCircleRadius(styles.Clamp(s.CircleRadius-1, styles.MinCircleRadius, styles.MaxCircleRadius))
	case "n":
		s = s.WithNormalizeCircleRadius(!s.NormalizeCircleRadius)
	case "c":
		s = s.WithLineColor(s.LineColor.Next())
	case "l":
		return m.reloadDataset(), nil
	case "s":
		return m.saveStyle(), nil
	default:
		return m, nil
	}

	if s == m.style {
		return m, nil
	}
	m.style = s
	return m.rerender(), nil
}

func (m previewModel) rerender() previewModel {
	if m.render == nil {
		return m
	}
	path, err := m.render(m.ds, m.style)
	m.renders++
	m.err = err
	if err == nil {
		m.status = "wrote " + path
	}
	return m
}

// reloadDataset re-reads the input. On failure the previous dataset stays.
func (m previewModel) reloadDataset() previewModel {
	if m.reload == nil {
		return m
	}
	ds, err := m.reload()
	if err != nil {
		m.err = err
		return m
	}
	m.ds = ds
	return m.rerender()
}

// saveStyle writes the current style as TOML next to the output.
func (m previewModel) saveStyle() previewModel {
	path := strings.TrimSuffix(m.dest, filepath.Ext(m.dest)) + ".toml"

	var buf bytes.Buffer
	if err := styles.Encode(&buf, m.style); err != nil {
		m.err = errors.Wrap(errors.ErrCodeInternal, err, "encode style")
		return m
	}
	if err := sink.WriteFile(path, buf.Bytes()); err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.status = "saved style to " + path
	return m
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Spoke Preview"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d records", m.ds.Len())))
	b.WriteString("\n\n")

	left := StyleDim.Render("no records")
	if m.ds.Len() > 0 {
		left = datasetTable(m.ds, previewRows)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, previewPanelStyle.Render(styleSummary(m.style))))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(StyleError.Render(errors.UserMessage(m.err)))
	case m.status != "":
		b.WriteString(previewStatusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("+/- length  w/W width  r/R radius  n normalize  c color  l reload  s save style  q quit"))
	b.WriteString("\n")

	return b.String()
}
