package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/segaxis/pkg/config"
	"github.com/matzehuels/segaxis/pkg/layout"
	"github.com/matzehuels/segaxis/pkg/pipeline"
	"github.com/matzehuels/segaxis/pkg/render/sink"
)

const (
	previewMargin   = 4  // columns left free on each side for edge labels
	previewMinWidth = 10 // narrowest axis the preview will lay out
	ruleMajor       = '┼'
	ruleMinor       = '┬'
	ruleLine        = '─'
)

var (
	previewRuleStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	previewLabelStyle = lipgloss.NewStyle().Foreground(colorWhite)
)

// previewCommand creates the interactive terminal preview.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [axis.toml]",
		Short: "Preview an axis in the terminal",
		Long: `Preview an axis in the terminal.

The axis is laid out against the terminal width and relaid out whenever the
window is resized. Press + or - to change the number of minor ticks per major
interval and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(newPreviewModel(args[0], cfg, 80), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// PreviewModel - Terminal axis preview
// =============================================================================

// PreviewModel is the bubbletea model for the axis preview.
type PreviewModel struct {
	Title  string
	Config *config.Axis
	Minor  int
	Width  int
	Layout layout.Layout
}

func newPreviewModel(title string, cfg *config.Axis, width int) PreviewModel {
	m := PreviewModel{Title: title, Config: cfg, Minor: cfg.MinorSplitNumber, Width: width}
	m.relayout()
	return m
}

// axisColumns is the number of columns the axis spans at the current width.
func (m PreviewModel) axisColumns() int {
	return max(m.Width-2*previewMargin, previewMinWidth)
}

func (m *PreviewModel) relayout() {
	m.Layout = pipeline.ComputeLayout(m.Config, pipeline.Options{
		AxisLength:       float64(m.axisColumns() - 1),
		MinorSplitNumber: m.Minor,
	})
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			if m.Config.Segments.CheckMinorTicks(m.Minor+1) == nil {
				m.Minor++
				m.relayout()
			}
		case "-", "_":
			if m.Minor > 1 {
				m.Minor--
				m.relayout()
			}
		}
	case tea.WindowSizeMsg:
		if msg.Width != m.Width {
			m.Width = msg.Width
			m.relayout()
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("+/- minor ticks  q quit"))
	b.WriteString("\n\n")

	rule, labels := drawRule(m.Layout, m.axisColumns())
	pad := strings.Repeat(" ", previewMargin)
	b.WriteString(pad + previewRuleStyle.Render(rule) + "\n")
	b.WriteString(previewLabelStyle.Render(labels) + "\n\n")

	b.WriteString(segmentTable(m.Layout))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  axis %d cols · %d minor per interval · %d ticks",
		m.axisColumns(), m.Minor, len(m.Layout.Ticks))))
	return b.String()
}

// drawRule draws the axis, values ascending left to right, as a one-line rule of the given width with major
// and minor tick marks, plus a label line offset by previewMargin. Labels
// that would overlap the previous one are skipped.
func drawRule(l layout.Layout, width int) (string, string) {
	rule := []rune(strings.Repeat(string(ruleLine), width))
	column := func(coord float64) int {
		return int(math.Round(math.Abs(coord - l.Extent[0])))
	}

	for _, group := range l.MinorTicks {
		for _, t := range group {
			if col := column(t.Coord); col >= 0 && col < width {
				rule[col] = ruleMinor
			}
		}
	}

	labels := []rune(strings.Repeat(" ", width+2*previewMargin))
	next := 0
	for _, t := range l.Ticks {
		col := column(t.Coord)
		if col < 0 || col >= width {
			continue
		}
		rule[col] = ruleMajor

		text := []rune(sink.FormatLabel(t.Value))
		start := previewMargin + col - len(text)/2
		if start < next || start < 0 || start+len(text) > len(labels) {
			continue
		}
		copy(labels[start:], text)
		next = start + len(text) + 1
	}
	return string(rule), strings.TrimRight(string(labels), " ")
}
