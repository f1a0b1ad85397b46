package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var ErrNothingToExport = errors.New("nothing to export")

func exportScene(scene Scene, format ExportFormat, filename string) error {
	var err error
	switch format {
	case ExportSVG:
		err = exportChartSVG(scene, filename)
	case ExportTXT:
		err = exportVisualTXT(scene, filename, 80, 24)
	default:
		err = exportPNG(scene, filename)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", filename, err)
	}
	log.Printf("exported %q to %s", scene.Title, filename)
	return nil
}

func exportFilename(title string, format ExportFormat) string {
	name := strings.ToLower(title)
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, name)
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}
	return strings.Trim(name, "-") + format.Extension()
}

// exportVisualTXT writes the chart exactly as the terminal shows it,
// without colours or selection.
func exportVisualTXT(scene Scene, filename string, width, height int) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range newChartGrid(scene, width, height, uuid.Nil).Plain() {
		fmt.Fprintln(file, strings.TrimRight(line, " "))
	}
	return nil
}

func exportPNG(scene Scene, filename string) error {
	if len(scene.Markers) == 0 {
		return ErrNothingToExport
	}

	const (
		imageWidth  = 800
		imageHeight = 600
		margin      = 50.0
	)
	axis := scene.Axis
	plotW := imageWidth - 2*margin
	plotH := imageHeight - 2*margin
	toPixel := func(x, y float64) (float64, float64) {
		px := margin + (x-axis.XMin)/(axis.XMax-axis.XMin)*plotW
		py := margin + plotH - (y-axis.YMin)/(axis.YMax-axis.YMin)*plotH
		return px, py
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    11,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// dashed grid and axis labels
	dc.SetColor(color.RGBA{0x94, 0xa3, 0xb8, 0xff})
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	for _, gx := range axis.gridLines(axis.XMin, axis.XMax) {
		x1, y1 := toPixel(gx, axis.YMin)
		x2, y2 := toPixel(gx, axis.YMax)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
		dc.DrawStringAnchored(fmt.Sprintf("%g", gx), x1, y1+14, 0.5, 0)
	}
	for _, gy := range axis.gridLines(axis.YMin, axis.YMax) {
		x1, y1 := toPixel(axis.XMin, gy)
		x2, y2 := toPixel(axis.XMax, gy)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
		dc.DrawStringAnchored(fmt.Sprintf("%g", gy), x1-8, y1, 1, 0.35)
	}
	dc.SetDash()

	dc.SetColor(color.Black)
	dc.DrawStringAnchored(scene.Title, imageWidth/2, margin/2, 0.5, 0.5)

	// markers span X..X2, label to the right
	for _, m := range scene.Markers {
		c, err := colorful.Hex(m.Color)
		if err != nil {
			c = colorful.Color{R: 0.38, G: 0.65, B: 0.98}
		}
		x1, y := toPixel(m.X, m.Y)
		x2, _ := toPixel(m.X2, m.Y)
		dc.SetRGBA(c.R, c.G, c.B, 0.7)
		dc.DrawRectangle(x1, y-8, x2-x1, 16)
		dc.Fill()
		dc.SetRGB(c.R, c.G, c.B)
		dc.DrawStringAnchored(m.Label, x2+6, y, 0, 0.35)
	}

	return dc.SavePNG(filename)
}

// exportChartSVG hands the scene to gonum/plot: a box-glyph scatter with
// one label per marker, on fixed axis ranges.
func exportChartSVG(scene Scene, filename string) error {
	if len(scene.Markers) == 0 {
		return ErrNothingToExport
	}

	p := plot.New()
	p.Title.Text = scene.Title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.X.Min, p.X.Max = scene.Axis.XMin, scene.Axis.XMax
	p.Y.Min, p.Y.Max = scene.Axis.YMin, scene.Axis.YMax
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(scene.Markers))
	labels := make([]string, len(scene.Markers))
	colors := make([]color.Color, len(scene.Markers))
	for i, m := range scene.Markers {
		xys[i] = plotter.XY{X: m.X, Y: m.Y}
		labels[i] = m.Label
		c, err := colorful.Hex(m.Color)
		if err != nil {
			colors[i] = color.Black
			continue
		}
		colors[i] = c
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("could not create scatter: %w", err)
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: colors[i], Radius: vg.Points(5), Shape: draw.BoxGlyph{}}
	}
	p.Add(scatter)

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return fmt.Errorf("could not create labels: %w", err)
	}
	for i := range names.TextStyle {
		names.TextStyle[i].XAlign = text.XLeft
	}
	names.Offset = vg.Point{X: vg.Points(8)}
	p.Add(names)

	return p.Save(16*vg.Centimeter, 16*vg.Centimeter, filename)
}
