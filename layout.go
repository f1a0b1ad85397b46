package main

// screenLayout positions every interactive region in terminal cells. View
// renders into these rectangles and Update hit-tests against them.
type screenLayout struct {
	palette     cellRect
	paletteRows int
	columns     []columnLayout
}

type columnLayout struct {
	chart    cellRect // outer box, border included
	surface  cellRect
	list     cellRect // outer box, border included
	listRows int
}

func computeLayout(width, height, canvases int) screenLayout {
	if canvases < 1 {
		canvases = 1
	}
	top := 1 // title row
	avail := height - 2
	if avail < minChartH+listHeight {
		avail = minChartH + listHeight
	}

	l := screenLayout{
		palette: cellRect{X: 0, Y: top, W: paletteWidth, H: avail},
		// border and header line above, border below
		paletteRows: avail - 3,
	}

	colW := (width - paletteWidth) / canvases
	if colW < minColumnW {
		colW = minColumnW
	}
	chartH := avail - listHeight
	for i := 0; i < canvases; i++ {
		x := paletteWidth + i*colW
		col := columnLayout{
			chart: cellRect{X: x, Y: top, W: colW, H: chartH},
			// inside the border: title row on top, x-axis labels below
			surface: cellRect{
				X: x + 1 + axisGutter,
				Y: top + 2,
				W: colW - 2 - axisGutter,
				H: chartH - 4,
			},
			list:     cellRect{X: x, Y: top + chartH, W: colW, H: listHeight},
			listRows: listHeight - 3,
		}
		l.columns = append(l.columns, col)
	}
	return l
}

// paletteRowAt returns the palette row under (x, y), or -1.
func (l screenLayout) paletteRowAt(x, y int) int {
	if x <= l.palette.X || x >= l.palette.X+l.palette.W-1 {
		return -1
	}
	row := y - (l.palette.Y + 2)
	if row < 0 || row >= l.paletteRows {
		return -1
	}
	return row
}

// listRowAt returns the list row of column i under (x, y), or -1. onRemove
// is set when the pointer sits on the row's remove button.
func (l screenLayout) listRowAt(i, x, y int) (row int, onRemove bool) {
	r := l.columns[i].list
	if x <= r.X || x >= r.X+r.W-1 {
		return -1, false
	}
	row = y - (r.Y + 2)
	if row < 0 || row >= l.columns[i].listRows {
		return -1, false
	}
	return row, x >= r.X+r.W-1-removeButtonW
}

// surfaceAt returns the column whose surface contains (x, y), or -1.
func (l screenLayout) surfaceAt(x, y int) int {
	for i, col := range l.columns {
		if col.surface.contains(x, y) {
			return i
		}
	}
	return -1
}

// columnAt returns the column containing (x, y), or -1.
func (l screenLayout) columnAt(x, y int) int {
	for i, col := range l.columns {
		if col.chart.contains(x, y) || col.list.contains(x, y) {
			return i
		}
	}
	return -1
}
