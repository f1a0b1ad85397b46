package main

import "github.com/google/uuid"

type PlacedItem struct {
	ID   uuid.UUID
	Name string
	Size float64 // extent along X
	X    float64 // left edge
	Y    float64
	X2   float64 // X + Size
}

type PaletteItem struct {
	Label string
	Value float64
	Size  float64
}

// ItemSize is the X extent an entry gets when placed. Entries that only
// carry a nominal value use value/20.
func (p PaletteItem) ItemSize() float64 {
	if p.Size > 0 {
		return p.Size
	}
	return p.Value / 20
}

type AxisConfig struct {
	XMin     float64
	XMax     float64
	YMin     float64
	YMax     float64
	GridSize float64
}

// Rect is the bounding rectangle of a drawing surface in pointer units.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

type DragSession struct {
	Source SourceKind
	Style  DragStyle
	ItemID uuid.UUID
	Label  string
	Size   float64
}

// cellRect is a layout rectangle in terminal cells.
type cellRect struct {
	X, Y, W, H int
}

func (r cellRect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r cellRect) toRect() Rect {
	return Rect{Left: float64(r.X), Top: float64(r.Y), Width: float64(r.W), Height: float64(r.H)}
}

type model struct {
	width          int
	height         int
	config         *Config
	screens        map[ViewKind]*screen
	view           ViewKind
	active         int
	paletteIndex   int
	mode           Mode
	help           bool
	confirmItem    PlacedItem
	confirmCanvas  int
	hovering       bool
	hoverCanvas    int
	hoverX         float64
	hoverY         float64
	errorMessage   string
	successMessage string
}
