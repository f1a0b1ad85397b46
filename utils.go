package main

import (
	"fmt"

	"github.com/atotto/clipboard"
)

func (m *model) current() *screen {
	return m.screens[m.view]
}

func (m *model) getCanvas() *Canvas {
	return m.current().canvas(m.active)
}

func itemCoordinates(item PlacedItem) string {
	return fmt.Sprintf("X: %.2f → %.2f | Y: %.2f | Size: %.1f", item.X, item.X2, item.Y, item.Size)
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (m *model) copySelection() {
	item, ok := m.current().selectedItem(m.active)
	if !ok {
		m.errorMessage = "no item selected"
		return
	}
	text := fmt.Sprintf("%s %s", item.Name, itemCoordinates(item))
	if err := writeClipboard(text); err != nil {
		m.errorMessage = fmt.Sprintf("copy: %v", err)
		return
	}
	m.successMessage = "Copied " + item.Name
}
