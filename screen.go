package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// screen is one view variant: a palette plus one or two canvases. Mouse
// reporting is acquired when the screen is mounted and released when it is
// torn down.
type screen struct {
	kind     ViewKind
	palette  []PaletteItem
	canvases []*Canvas
	selected []int
	mounted  bool
}

func newScreen(kind ViewKind, axis AxisConfig) *screen {
	s := &screen{kind: kind}
	if kind == ViewDual {
		s.palette = sizedPalette
		s.canvases = []*Canvas{
			NewCanvas("Canvas A (Blue)", "#60a5fa", axis),
			NewCanvas("Canvas B (Purple)", "#d946ef", axis),
		}
	} else {
		s.palette = valuePalette
		s.canvases = []*Canvas{
			NewCanvas("Axis Position Canvas", "#bfdbfe", axis),
		}
	}
	s.selected = make([]int, len(s.canvases))
	for i := range s.selected {
		s.selected[i] = -1
	}
	return s
}

func (s *screen) mount() tea.Cmd {
	if s.mounted {
		return nil
	}
	s.mounted = true
	log.Printf("%s view mounted", s.kind)
	return tea.EnableMouseAllMotion
}

// teardown cancels in-flight drags and releases mouse reporting.
func (s *screen) teardown() tea.Cmd {
	if !s.mounted {
		return nil
	}
	for _, c := range s.canvases {
		c.Cancel()
	}
	s.mounted = false
	log.Printf("%s view torn down", s.kind)
	return tea.DisableMouse
}

func (s *screen) TotalItems() int {
	total := 0
	for _, c := range s.canvases {
		total += c.Len()
	}
	return total
}

func (s *screen) canvas(i int) *Canvas {
	if i < 0 || i >= len(s.canvases) {
		return nil
	}
	return s.canvases[i]
}

// selectedItem returns the selected placed item of canvas i.
func (s *screen) selectedItem(i int) (PlacedItem, bool) {
	c := s.canvas(i)
	if c == nil {
		return PlacedItem{}, false
	}
	idx := s.selected[i]
	items := c.Items()
	if idx < 0 || idx >= len(items) {
		return PlacedItem{}, false
	}
	return items[idx], true
}

// fixSelection keeps the selection on the same item after the item at
// index removed is gone from canvas i.
func (s *screen) fixSelection(i, removed int) {
	c := s.canvas(i)
	if c == nil {
		return
	}
	if removed < s.selected[i] {
		s.selected[i]--
	}
	if s.selected[i] >= c.Len() {
		s.selected[i] = c.Len() - 1
	}
}
