package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nilesh-iiita/hiveplot/pkg/graph"
)

// List styles shared by interactive models.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// groupPalette is the set of color tokens the picker cycles through.
// Matplotlib tab10 plus a few extras, all valid axis colors.
var groupPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// colorsCommand creates the colors command for interactively assigning
// group colors in a graph file.
func (c *CLI) colorsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "colors [graph.json]",
		Short: "Interactively assign colors to node groups",
		Long: `Interactively assign colors to the node groups of a graph file.

Use up/down to select a group and left/right to cycle its color through
the palette. Enter saves the updated graph; q quits without saving.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runColors(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

// runColors loads the graph, runs the picker, and writes the result.
func (c *CLI) runColors(input, output string) error {
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	if len(g.Groups) == 0 {
		return fmt.Errorf("graph %s has no groups", input)
	}

	model := newColorPickerModel(g)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	result := final.(colorPickerModel)
	if !result.saved {
		printInfo("No changes saved")
		return nil
	}

	outputPath := output
	if outputPath == "" {
		outputPath = input
	}
	if err := graph.WriteGraphFile(result.graph, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Colors saved")
	printFile(outputPath)
	return nil
}

// colorPickerModel is the bubbletea model for the group color picker.
type colorPickerModel struct {
	graph  graph.Graph
	cursor int
	saved  bool
}

func newColorPickerModel(g graph.Graph) colorPickerModel {
	// Give colorless groups a starting token so cycling has a base.
	for i := range g.Groups {
		if g.Groups[i].Color == "" {
			g.Groups[i].Color = groupPalette[i%len(groupPalette)]
		}
	}
	return colorPickerModel{graph: g}
}

func (m colorPickerModel) Init() tea.Cmd {
	return nil
}

func (m colorPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.graph.Groups)-1 {
				m.cursor++
			}
		case "left", "h":
			m.cycleColor(-1)
		case "right", "l":
			m.cycleColor(1)
		case "enter":
			m.saved = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// cycleColor moves the selected group's color through the palette.
func (m *colorPickerModel) cycleColor(dir int) {
	spec := &m.graph.Groups[m.cursor]
	idx := 0
	for i, token := range groupPalette {
		if token == spec.Color {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(groupPalette)) % len(groupPalette)
	spec.Color = groupPalette[idx]
}

func (m colorPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Assign Group Colors"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ group  ←/→ color  ⏎ save  q quit"))
	b.WriteString("\n\n")

	for i, spec := range m.graph.Groups {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(spec.Color)).Render("██")
		line := fmt.Sprintf("%s%s %-20s %s (%d nodes)",
			cursor, swatch, spec.Name, spec.Color, len(spec.Nodes))

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
