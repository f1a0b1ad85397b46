package main

import (
	"fmt"
	"math"
)

func defaultAxis() AxisConfig {
	return AxisConfig{XMin: 0, XMax: 10, YMin: 0, YMax: 10, GridSize: 1}
}

func (a AxisConfig) Validate() error {
	if !(a.XMax > a.XMin) {
		return fmt.Errorf("x range [%g, %g] is empty", a.XMin, a.XMax)
	}
	if !(a.YMax > a.YMin) {
		return fmt.Errorf("y range [%g, %g] is empty", a.YMin, a.YMax)
	}
	if !(a.GridSize > 0) {
		return fmt.Errorf("grid size %g must be positive", a.GridSize)
	}
	return nil
}

// MapPointer converts a pointer position inside rect into domain units.
// Screen Y grows downward, domain Y grows upward. The result is rounded to
// two decimals and clamped so an item of the given size stays on the axis.
func (a AxisConfig) MapPointer(px, py float64, rect Rect, size float64) (float64, float64) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return a.ClampX(a.XMin, size), a.ClampY(a.YMin)
	}
	x := (px-rect.Left)/rect.Width*(a.XMax-a.XMin) + a.XMin
	y := (rect.Height-(py-rect.Top))/rect.Height*(a.YMax-a.YMin) + a.YMin
	return a.ClampX(round2(x), size), a.ClampY(round2(y))
}

// ClampX keeps the far edge x+size at or below XMax. An item wider than
// the axis is pinned to XMin.
func (a AxisConfig) ClampX(x, size float64) float64 {
	hi := a.XMax - size
	if hi < a.XMin {
		hi = a.XMin
	}
	return clamp(round2(x), a.XMin, hi)
}

func (a AxisConfig) ClampY(y float64) float64 {
	return clamp(round2(y), a.YMin, a.YMax)
}

// Column is the inverse of MapPointer along X for a surface width cells wide.
func (a AxisConfig) Column(x float64, width int) int {
	if width <= 0 {
		return 0
	}
	col := int(math.Floor((x-a.XMin)/(a.XMax-a.XMin)*float64(width) + 0.05))
	return clampInt(col, 0, width-1)
}

// Row is the inverse of MapPointer along Y for a surface height cells tall.
func (a AxisConfig) Row(y float64, height int) int {
	if height <= 0 {
		return 0
	}
	row := int(math.Round(float64(height) - (y-a.YMin)/(a.YMax-a.YMin)*float64(height)))
	return clampInt(row, 0, height-1)
}

// gridLines returns the axis values at which grid lines are drawn.
func (a AxisConfig) gridLines(lo, hi float64) []float64 {
	var lines []float64
	if a.GridSize <= 0 {
		return lines
	}
	start := math.Ceil(lo/a.GridSize) * a.GridSize
	for v := start; v <= hi+1e-9; v += a.GridSize {
		lines = append(lines, round2(v))
	}
	return lines
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
