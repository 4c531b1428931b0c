package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mkuchta/orbit/pkg/menu"
)

// Canvas styles
var (
	canvasAnchorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	canvasSatelliteStyle = lipgloss.NewStyle().Foreground(colorWhite)
	canvasFrameStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the preview command for terminal plan inspection.
func (c *CLI) previewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [plan.json]",
		Short: "Preview a plan on an interactive terminal canvas",
		Long: `Preview a plan on an interactive terminal canvas.

The anchor is drawn as @ and satellites as their 1-based placement index.
Press l to toggle the label legend, q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := menu.ReadPlanFile(args[0])
			if err != nil {
				return fmt.Errorf("load plan %s: %w", args[0], err)
			}
			_, err = tea.NewProgram(newPreviewModel(plan)).Run()
			return err
		},
	}
	return cmd
}

// =============================================================================
// PreviewModel - Terminal Plan Canvas
// =============================================================================

// PreviewModel is the bubbletea model for the plan canvas.
type PreviewModel struct {
	Plan       menu.Plan
	Width      int
	Height     int
	ShowLegend bool
}

// newPreviewModel creates a preview model with a default canvas size;
// tea.WindowSizeMsg resizes it to the terminal.
func newPreviewModel(p menu.Plan) PreviewModel {
	return PreviewModel{
		Plan:       p,
		Width:      64,
		Height:     20,
		ShowLegend: true,
	}
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
		case "l":
			m.ShowLegend = !m.ShowLegend
		}
	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.Width = msg.Width - 4
		}
		if msg.Height > 12 {
			m.Height = msg.Height - 8
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("orbit preview · %s · %d placements", m.Plan.Mode, m.Plan.Count())))
	b.WriteString("\n\n")
	b.WriteString(m.renderCanvas())
	b.WriteString("\n")

	if m.ShowLegend && m.Plan.Count() > 0 {
		for i, pl := range m.Plan.Placements {
			label := pl.Label
			if label == "" {
				label = pl.ItemID
			}
			b.WriteString(StyleDim.Render(fmt.Sprintf("  %d %s (%.1f, %.1f)", i+1, label, pl.Point.X, pl.Point.Y)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("l: toggle legend · q: quit"))
	b.WriteString("\n")
	return b.String()
}

// renderCanvas maps the plan's extent onto a character grid. The anchor
// is always inside the extent, so it lands on the grid too.
func (m PreviewModel) renderCanvas() string {
	minX, minY := m.Plan.Center.X, m.Plan.Center.Y
	maxX, maxY := minX, minY
	for _, pl := range m.Plan.Placements {
		minX = math.Min(minX, pl.Point.X)
		maxX = math.Max(maxX, pl.Point.X)
		minY = math.Min(minY, pl.Point.Y)
		maxY = math.Max(maxY, pl.Point.Y)
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	cell := func(x, y float64) (int, int) {
		cx := int(math.Round((x - minX) / spanX * float64(m.Width-1)))
		cy := int(math.Round((y - minY) / spanY * float64(m.Height-1)))
		return cx, cy
	}

	grid := make([][]string, m.Height)
	for i := range grid {
		grid[i] = make([]string, m.Width)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	ax, ay := cell(m.Plan.Center.X, m.Plan.Center.Y)
	grid[ay][ax] = canvasAnchorStyle.Render("@")

	for i, pl := range m.Plan.Placements {
		x, y := cell(pl.Point.X, pl.Point.Y)
		marker := fmt.Sprintf("%d", (i+1)%10)
		grid[y][x] = canvasSatelliteStyle.Render(marker)
	}

	var b strings.Builder
	border := canvasFrameStyle.Render("+" + strings.Repeat("-", m.Width) + "+")
	b.WriteString(border)
	b.WriteString("\n")
	for _, row := range grid {
		b.WriteString(canvasFrameStyle.Render("|"))
		b.WriteString(strings.Join(row, ""))
		b.WriteString(canvasFrameStyle.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(border)
	return b.String()
}
