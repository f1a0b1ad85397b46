package main

func (m *model) handleNavigation(key string, speed float64) {
	s := m.current()
	c := m.getCanvas()
	item, ok := s.selectedItem(m.active)
	if c == nil || !ok || c.Dragging() {
		return
	}
	x, y := item.X, item.Y
	switch key {
	case "h", "left", "H", "shift+left":
		x -= nudgeStep * speed
	case "l", "right", "L", "shift+right":
		x += nudgeStep * speed
	case "k", "up", "K", "shift+up":
		y += nudgeStep * speed
	case "j", "down", "J", "shift+down":
		y -= nudgeStep * speed
	}
	c.Move(item.ID, x, y)
}

func (m *model) getMoveSpeed(key string) float64 {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) cycleSelection(delta int) {
	s := m.current()
	c := m.getCanvas()
	if c == nil || c.Len() == 0 {
		return
	}
	next := s.selected[m.active] + delta
	if next < 0 {
		next = c.Len() - 1
	}
	if next >= c.Len() {
		next = 0
	}
	s.selected[m.active] = next
}

func (m *model) cyclePalette(delta int) {
	n := len(m.current().palette)
	if n == 0 {
		return
	}
	m.paletteIndex = (m.paletteIndex + delta + n) % n
}
