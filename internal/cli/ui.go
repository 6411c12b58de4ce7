package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/spokeplot/pkg/dataset"
	"github.com/matzehuels/spokeplot/pkg/render/spoke/styles"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Exported styles are shared with cmd/spokeplot for error output.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	StyleError   = lipgloss.NewStyle().Foreground(colorRed)
)

var (
	styleKey    = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// swatches maps spoke colors to terminal colors for the style summary.
var swatches = map[styles.Color]lipgloss.Color{
	styles.Black: colorWhite,
	styles.Red:   lipgloss.Color("196"),
	styles.Green: lipgloss.Color("34"),
	styles.Blue:  lipgloss.Color("33"),
}

// =============================================================================
// Status lines
// =============================================================================

// statusLine is one "<icon> message" line of command output.
type statusLine struct {
	icon      string
	iconStyle lipgloss.Style
	msgStyle  *lipgloss.Style
}

var (
	lineSuccess = statusLine{icon: "✓", iconStyle: StyleSuccess}
	lineWarning = statusLine{icon: "!", iconStyle: StyleWarning, msgStyle: &StyleWarning}
	lineInfo    = statusLine{icon: "›", iconStyle: lipgloss.NewStyle().Foreground(colorGray)}
)

func (l statusLine) render(format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	if l.msgStyle != nil {
		msg = l.msgStyle.Render(msg)
	}
	return l.iconStyle.Render(l.icon) + " " + msg
}

func printSuccess(format string, args ...any) { fmt.Println(lineSuccess.render(format, args...)) }
func printWarning(format string, args ...any) { fmt.Println(lineWarning.render(format, args...)) }
func printInfo(format string, args ...any)    { fmt.Println(lineInfo.render(format, args...)) }

// printFile lists a written artifact under a success line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(keyValue(key, value))
}

func keyValue(key, value string) string {
	return styleKey.Render(key) + " " + StyleValue.Render(value)
}

// =============================================================================
// Dataset & Style Display
// =============================================================================

// datasetTable renders up to limit records as a bordered table. A limit of
// zero or less shows every record.
func datasetTable(ds dataset.Dataset, limit int) string {
	n := len(ds)
	if limit > 0 && n > limit {
		n = limit
	}

	rows := make([][]string, 0, n+1)
	for i := 0; i < n; i++ {
		rows = append(rows, []string{strconv.Itoa(i + 1), ds[i].Label, formatValue(ds[i].Value)})
	}
	if n < len(ds) {
		rows = append(rows, []string{"", fmt.Sprintf("… %d more", len(ds)-n), ""})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Label", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleDim
			case col == 2:
				return StyleNumber.Align(lipgloss.Right)
			}
			return StyleValue
		})

	return t.Render()
}

// styleSummary renders the style as aligned key/value lines.
func styleSummary(s styles.Style) string {
	lines := []string{
		keyValue("line length", strconv.Itoa(s.LineLength)),
		keyValue("line width", strconv.Itoa(s.LineWidth)),
		keyValue("radius", strconv.Itoa(s.CircleRadius)),
		keyValue("normalize", strconv.FormatBool(s.NormalizeCircleRadius)),
		styleKey.Render("color") + " " + colorSwatch(s.LineColor),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// colorSwatch renders c's name preceded by a block in that color.
func colorSwatch(c styles.Color) string {
	block := lipgloss.NewStyle().Foreground(swatches[c]).Render("■")
	return block + " " + StyleValue.Render(string(c))
}
