package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/truncate"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bfdbfe"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimBorder    = lipgloss.Color("#475569")
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	s := m.current()
	layout := computeLayout(m.width, m.height, len(s.canvases))

	columns := []string{m.renderPalette(s, layout)}
	for i := range s.canvases {
		columns = append(columns, m.renderColumn(s, layout, i))
	}

	var result strings.Builder
	result.WriteString(m.renderTitle(s))
	result.WriteString("\n")
	result.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	result.WriteString("\n")
	result.WriteString(m.renderStatus(s))
	return result.String()
}

func (m model) renderTitle(s *screen) string {
	title := fmt.Sprintf("axisdrop · %s view · %d item(s)", s.kind, s.TotalItems())
	return titleStyle.Render(padLine(title, m.width))
}

func (m model) renderPalette(s *screen, layout screenLayout) string {
	innerW := layout.palette.W - 2
	lines := []string{lipgloss.NewStyle().Bold(true).Render(padLine("Palette", innerW))}

	armed := ""
	if c := s.canvas(m.active); c != nil {
		if session, ok := c.Session(); ok && session.Source == SourcePalette {
			armed = session.Label
		}
	}
	for i := 0; i < layout.paletteRows; i++ {
		if i >= len(s.palette) {
			lines = append(lines, strings.Repeat(" ", innerW))
			continue
		}
		entry := s.palette[i]
		prefix := "  "
		if i == m.paletteIndex {
			prefix = "› "
		}
		size := fmt.Sprintf("%4.2f", entry.ItemSize())
		name := truncate.StringWithTail(entry.Label, uint(innerW-2-len(size)-1), "…")
		line := prefix + padLine(name, innerW-2-len(size)) + size
		if entry.Label == armed {
			line = lipgloss.NewStyle().Reverse(true).Render(line)
		}
		lines = append(lines, line)
	}
	return boxStyle(dimBorder).Render(strings.Join(lines, "\n"))
}

func (m model) renderColumn(s *screen, layout screenLayout, i int) string {
	c := s.canvases[i]
	col := layout.columns[i]

	border := dimBorder
	if i == m.active {
		border = lipgloss.Color(c.Accent)
	}

	selected := uuid.Nil
	if item, ok := s.selectedItem(i); ok {
		selected = item.ID
	}
	grid := newChartGrid(BuildScene(c), col.chart.W-2, col.chart.H-2, selected)
	chart := boxStyle(border).Render(grid.Styled())

	innerW := col.list.W - 2
	lines := []string{lipgloss.NewStyle().Bold(true).Render(padLine(fmt.Sprintf("Placed (%d)", c.Len()), innerW))}
	items := c.Items()
	offset := listOffset(s.selected[i], col.listRows)
	for row := 0; row < col.listRows; row++ {
		idx := offset + row
		if idx >= len(items) {
			lines = append(lines, strings.Repeat(" ", innerW))
			continue
		}
		item := items[idx]
		text := truncate.StringWithTail(item.Name+"  "+itemCoordinates(item), uint(innerW-removeButtonW), "…")
		line := lipgloss.NewStyle().Foreground(lipgloss.Color(markerColor(item.ID))).Render(padLine(text, innerW-removeButtonW)) + " ✕ "
		if idx == s.selected[i] {
			line = lipgloss.NewStyle().Reverse(true).Render(padLine(text, innerW-removeButtonW)) + " ✕ "
		}
		lines = append(lines, line)
	}
	list := boxStyle(border).Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, chart, list)
}

func (m model) renderStatus(s *screen) string {
	switch {
	case m.mode == ModeConfirm:
		return errorStyle.Render(fmt.Sprintf("Remove %q? (y/n)", m.confirmItem.Name))
	case m.errorMessage != "":
		return errorStyle.Render("Error: " + m.errorMessage)
	case m.successMessage != "":
		return successStyle.Render(m.successMessage)
	}

	var parts []string
	if m.hovering {
		if c := s.canvas(m.hoverCanvas); c != nil {
			parts = append(parts, fmt.Sprintf("%s  X: %.2f  Y: %.2f", c.Title, m.hoverX, m.hoverY))
		}
	}
	if item, ok := s.selectedItem(m.active); ok {
		parts = append(parts, item.Name+" "+itemCoordinates(item))
	}
	parts = append(parts, "?: help")
	return helpStyle.Render(strings.Join(parts, " | "))
}

func (m model) helpView() string {
	lines := []string{
		"axisdrop help",
		"=============",
		"",
		"Mouse:",
		"  Drag a palette entry onto the active canvas to place it",
		"  Drag a marker on the chart to move it live",
		"  Drag a row of the placed list onto the chart to reposition it",
		"  Click ✕ on a row to remove the item",
		"",
		"Keys:",
		"  tab              Next canvas",
		"  [ / ]            Previous / next palette entry",
		"  enter            Place palette entry at (2.0, 5.0)",
		"  n / N            Next / previous placed item",
		"  h/j/k/l, arrows  Nudge selected item by 0.1 (shift: 0.2)",
		"  d, delete        Remove selected item",
		"  y                Copy selected item's coordinates",
		"  p / s / t        Export active canvas as PNG / SVG / TXT",
		"  v                Switch single / dual view",
		"  ?                Toggle this help",
		"  q, ctrl+c        Quit",
	}
	return strings.Join(lines, "\n")
}

func boxStyle(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border)
}

// padLine pads or cuts s to exactly w cells.
func padLine(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) > w {
		s = truncate.String(s, uint(w))
	}
	return s + strings.Repeat(" ", w-lipgloss.Width(s))
}

// listOffset scrolls a list so the selected row stays visible.
func listOffset(selected, rows int) int {
	if rows <= 0 || selected < rows {
		return 0
	}
	return selected - rows + 1
}
