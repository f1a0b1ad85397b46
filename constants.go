package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeConfirm
)

type ViewKind int

const (
	ViewSingle ViewKind = iota
	ViewDual
)

func (v ViewKind) String() string {
	if v == ViewDual {
		return "dual"
	}
	return "single"
}

type SourceKind int

const (
	SourcePalette SourceKind = iota
	SourcePlaced
)

func (s SourceKind) String() string {
	if s == SourcePlaced {
		return "placed-item"
	}
	return "palette"
}

// DragStyle separates native drag-and-drop (drop decides the position)
// from continuous pointer drags (every motion moves the item).
type DragStyle int

const (
	StyleDrop DragStyle = iota
	StylePointer
)

type ExportFormat int

const (
	ExportPNG ExportFormat = iota
	ExportSVG
	ExportTXT
)

func (f ExportFormat) Extension() string {
	switch f {
	case ExportSVG:
		return ".svg"
	case ExportTXT:
		return ".txt"
	default:
		return ".png"
	}
}

const (
	hitThreshold = 0.5 // domain units, strict
	nudgeStep    = 0.1
	defaultDropX = 2.0
	defaultDropY = 5.0
)

// Terminal layout, in cells.
const (
	paletteWidth  = 26
	axisGutter    = 6
	listHeight    = 9
	minChartH     = 8
	minColumnW    = 24
	removeButtonW = 3
)

// Palette of the single-canvas screen: size is derived from the nominal value.
var valuePalette = []PaletteItem{
	{Label: "Cube A", Value: 45},
	{Label: "Block B", Value: 72},
	{Label: "Shape C", Value: 38},
	{Label: "Object D", Value: 91},
	{Label: "Element E", Value: 62},
	{Label: "Module F", Value: 55},
	{Label: "Component G", Value: 88},
	{Label: "Widget H", Value: 41},
}

// Palette of the dual-canvas screen: explicit extents along X.
var sizedPalette = []PaletteItem{
	{Label: "Cube A", Size: 2.0},
	{Label: "Block B", Size: 1.5},
	{Label: "Shape C", Size: 2.5},
	{Label: "Object D", Size: 1.0},
	{Label: "Element E", Size: 3.0},
	{Label: "Module F", Size: 1.8},
}
