package main

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newModel(config *Config) model {
	return model{
		width:  100,
		height: 32,
		config: config,
		screens: map[ViewKind]*screen{
			ViewSingle: newScreen(ViewSingle, config.Axis),
			ViewDual:   newScreen(ViewDual, config.Axis),
		},
		view: config.View,
	}
}

func (m model) Init() tea.Cmd {
	return m.current().mount()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	s := m.current()
	if !s.mounted {
		return m, nil
	}
	layout := computeLayout(m.width, m.height, len(s.canvases))

	// a release always ends the drag, even with an overlay open
	if msg.Action == tea.MouseActionRelease {
		m.pointerUp(s, layout, msg.X, msg.Y)
		return m, nil
	}
	if m.help || m.mode != ModeNormal {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.errorMessage = ""
		m.successMessage = ""
		m.pointerDown(s, layout, msg.X, msg.Y)
	case tea.MouseActionMotion:
		m.pointerMove(s, layout, msg.X, msg.Y)
	}
	return m, nil
}

func (m *model) pointerDown(s *screen, layout screenLayout, x, y int) {
	if row := layout.paletteRowAt(x, y); row >= 0 {
		if row >= len(s.palette) {
			return
		}
		m.paletteIndex = row
		if err := m.getCanvas().BeginPaletteDrag(s.palette[row]); err != nil {
			m.errorMessage = err.Error()
		}
		return
	}

	if i := layout.surfaceAt(x, y); i >= 0 {
		m.active = i
		c := s.canvases[i]
		if c.BeginPointerDrag(float64(x), float64(y), layout.columns[i].surface.toRect()) {
			session, _ := c.Session()
			m.selectItem(i, session.ItemID)
		}
		return
	}

	i := layout.columnAt(x, y)
	if i < 0 {
		return
	}
	m.active = i
	row, onRemove := layout.listRowAt(i, x, y)
	if row < 0 {
		return
	}
	items := s.canvases[i].Items()
	idx := listOffset(s.selected[i], layout.columns[i].listRows) + row
	if idx >= len(items) {
		return
	}
	item := items[idx]
	if onRemove {
		m.removeItem(i, item)
		return
	}
	s.selected[i] = idx
	if err := s.canvases[i].BeginItemDrag(item.ID); err != nil {
		m.errorMessage = err.Error()
	}
}

func (m *model) pointerMove(s *screen, layout screenLayout, x, y int) {
	m.hovering = false
	if i := layout.surfaceAt(x, y); i >= 0 {
		m.hovering = true
		m.hoverCanvas = i
		m.hoverX, m.hoverY = s.canvases[i].Axis().MapPointer(float64(x), float64(y), layout.columns[i].surface.toRect(), 0)
	}
	for i, c := range s.canvases {
		c.Track(float64(x), float64(y), layout.columns[i].surface.toRect())
	}
}

func (m *model) pointerUp(s *screen, layout screenLayout, x, y int) {
	for i, c := range s.canvases {
		session, ok := c.Session()
		if !ok {
			continue
		}
		if session.Style == StylePointer {
			c.EndPointerDrag()
			continue
		}
		surface := layout.columns[i].surface
		onSurface := surface.contains(x, y)
		item, placed := c.Drop(float64(x), float64(y), surface.toRect(), onSurface)
		switch {
		case placed:
			m.active = i
			m.selectItem(i, item.ID)
			m.successMessage = fmt.Sprintf("%s %s", item.Name, itemCoordinates(item))
		case !onSurface:
			m.successMessage = fmt.Sprintf("Dropped %q outside %s", session.Label, c.Title)
		}
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	s := m.current()

	if m.help {
		switch key {
		case "esc", "q", "?":
			m.help = false
		}
		return m, nil
	}

	if m.mode == ModeConfirm {
		if key == "y" || key == "Y" {
			m.removeItem(m.confirmCanvas, m.confirmItem)
		}
		m.mode = ModeNormal
		return m, nil
	}

	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "ctrl+c", "q":
		return m, tea.Sequence(s.teardown(), tea.Quit)
	case "?":
		m.help = true
	case "esc":
		m.getCanvas().Cancel()
	case "tab":
		m.active = (m.active + 1) % len(s.canvases)
	case "[":
		m.cyclePalette(-1)
	case "]":
		m.cyclePalette(1)
	case "enter":
		m.placeFromPalette()
	case "n":
		m.cycleSelection(1)
	case "N":
		m.cycleSelection(-1)
	case "d", "delete":
		m.requestRemove()
	case "y":
		m.copySelection()
	case "p":
		m.export(ExportPNG)
	case "s":
		m.export(ExportSVG)
	case "t":
		m.export(ExportTXT)
	case "v":
		return m, m.switchView()
	case "h", "j", "k", "l", "left", "right", "up", "down",
		"H", "J", "K", "L", "shift+left", "shift+right", "shift+up", "shift+down":
		m.handleNavigation(key, m.getMoveSpeed(key))
	}
	return m, nil
}

// switchView tears the current screen down before the other one acquires
// the mouse.
func (m *model) switchView() tea.Cmd {
	old := m.current()
	if m.view == ViewSingle {
		m.view = ViewDual
	} else {
		m.view = ViewSingle
	}
	m.active = 0
	m.paletteIndex = 0
	m.hovering = false
	return tea.Sequence(old.teardown(), m.current().mount())
}

func (m *model) placeFromPalette() {
	s := m.current()
	if m.paletteIndex >= len(s.palette) {
		return
	}
	entry := s.palette[m.paletteIndex]
	item, err := m.getCanvas().Add(entry.Label, entry.ItemSize(), defaultDropX, defaultDropY)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.selectItem(m.active, item.ID)
}

func (m *model) requestRemove() {
	item, ok := m.current().selectedItem(m.active)
	if !ok {
		return
	}
	if m.config.Confirmations {
		m.mode = ModeConfirm
		m.confirmItem = item
		m.confirmCanvas = m.active
		return
	}
	m.removeItem(m.active, item)
}

func (m *model) removeItem(i int, item PlacedItem) {
	s := m.current()
	c := s.canvas(i)
	if c == nil {
		return
	}
	idx := c.index(item.ID)
	if idx < 0 || !c.Remove(item.ID) {
		return
	}
	s.fixSelection(i, idx)
	m.successMessage = "Removed " + item.Name
}

func (m *model) selectItem(i int, id uuid.UUID) {
	s := m.current()
	for idx, item := range s.canvases[i].Items() {
		if item.ID == id {
			s.selected[i] = idx
			return
		}
	}
}

func (m *model) export(format ExportFormat) {
	c := m.getCanvas()
	filename, err := m.config.GetSavePath(exportFilename(c.Title, format))
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	if err := exportScene(BuildScene(c), format, filename); err != nil {
		if errors.Is(err, ErrNothingToExport) {
			m.errorMessage = "nothing to export"
			return
		}
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = "Saved " + filename
}
