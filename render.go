package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/truncate"
)

type cell struct {
	ch    rune
	color string
	bold  bool
	dim   bool
}

// chartGrid lays a scene out on a character grid: a title row, the surface
// with its y-axis gutter, and a row of x-axis labels.
type chartGrid struct {
	cells [][]cell
}

func newChartGrid(scene Scene, innerW, innerH int, selected uuid.UUID) chartGrid {
	if innerW < axisGutter+1 {
		innerW = axisGutter + 1
	}
	if innerH < 3 {
		innerH = 3
	}
	g := chartGrid{cells: make([][]cell, innerH)}
	for y := range g.cells {
		g.cells[y] = make([]cell, innerW)
		for x := range g.cells[y] {
			g.cells[y][x] = cell{ch: ' '}
		}
	}

	g.text(0, 0, truncate.StringWithTail(scene.Title, uint(innerW), "…"), scene.Accent, true)

	w, h := innerW-axisGutter, innerH-2
	axis := scene.Axis

	// grid lines
	for _, gx := range axis.gridLines(axis.XMin, axis.XMax) {
		col := axis.Column(gx, w)
		for row := 0; row < h; row++ {
			g.set(axisGutter+col, 1+row, cell{ch: '┊', dim: true})
		}
	}
	for _, gy := range axis.gridLines(axis.YMin, axis.YMax) {
		row := axis.Row(gy, h)
		for col := 0; col < w; col++ {
			ch := '┄'
			if g.cells[1+row][axisGutter+col].ch == '┊' {
				ch = '┼'
			}
			g.set(axisGutter+col, 1+row, cell{ch: ch, dim: true})
		}
		g.text(0, 1+row, fmt.Sprintf("%5.1f", gy), "", false)
	}
	for row := 0; row < h; row++ {
		g.set(axisGutter-1, 1+row, cell{ch: '│', dim: true})
	}
	g.set(axisGutter-1, innerH-1, cell{ch: '└', dim: true})

	// x-axis labels, skipping any that would overlap the previous one
	next := 0
	for _, gx := range axis.gridLines(axis.XMin, axis.XMax) {
		col := axis.Column(gx, w)
		label := fmt.Sprintf("%g", gx)
		if col+len(label) > w {
			col = w - len(label)
		}
		if col < next {
			continue
		}
		g.text(axisGutter+col, innerH-1, label, "", false)
		next = col + len(label) + 1
	}

	// markers span X..X2 with the label to the right
	for _, m := range scene.Markers {
		row := 1 + axis.Row(m.Y, h)
		from := axis.Column(m.X, w)
		to := axis.Column(m.X2, w)
		if to <= from {
			to = from + 1
		}
		glyph := '■'
		isSelected := m.ID == selected
		if isSelected {
			glyph = '█'
		}
		for col := from; col < to && col < w; col++ {
			g.set(axisGutter+col, row, cell{ch: glyph, color: m.Color, bold: isSelected})
		}
		g.text(axisGutter+to+1, row, m.Label, m.Color, isSelected)
	}
	return g
}

func (g chartGrid) set(x, y int, c cell) {
	if y < 0 || y >= len(g.cells) || x < 0 || x >= len(g.cells[y]) {
		return
	}
	g.cells[y][x] = c
}

func (g chartGrid) text(x, y int, s, color string, bold bool) {
	for _, r := range s {
		g.set(x, y, cell{ch: r, color: color, bold: bold})
		x++
	}
}

// Plain returns the grid without styling.
func (g chartGrid) Plain() []string {
	lines := make([]string, len(g.cells))
	for y, row := range g.cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.ch)
		}
		lines[y] = b.String()
	}
	return lines
}

// Styled renders the grid with lipgloss colours, one style run at a time.
func (g chartGrid) Styled() string {
	lines := make([]string, len(g.cells))
	for y, row := range g.cells {
		var b strings.Builder
		for start := 0; start < len(row); {
			end := start
			var run strings.Builder
			for end < len(row) && sameStyle(row[start], row[end]) {
				run.WriteRune(row[end].ch)
				end++
			}
			b.WriteString(cellStyle(row[start]).Render(run.String()))
			start = end
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b cell) bool {
	return a.color == b.color && a.bold == b.bold && a.dim == b.dim
}

func cellStyle(c cell) lipgloss.Style {
	switch {
	case c.color != "":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c.color)).Bold(c.bold)
	case c.dim:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#334155"))
	}
	return lipgloss.NewStyle().Bold(c.bold)
}
