package main

import (
	"hash/fnv"

	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Scene is the declarative description handed to a renderer. It is rebuilt
// from scratch after every mutation.
type Scene struct {
	Title   string
	Accent  string
	Axis    AxisConfig
	Markers []Marker
}

type Marker struct {
	ID    uuid.UUID
	X     float64
	Y     float64
	X2    float64
	Label string
	Color string // #rrggbb
}

func BuildScene(c *Canvas) Scene {
	scene := Scene{
		Title:   c.Title,
		Accent:  c.Accent,
		Axis:    c.axis,
		Markers: make([]Marker, 0, len(c.items)),
	}
	for _, item := range c.items {
		scene.Markers = append(scene.Markers, Marker{
			ID:    item.ID,
			X:     item.X,
			Y:     item.Y,
			X2:    item.X2,
			Label: item.Name,
			Color: markerColor(item.ID),
		})
	}
	return scene
}

// markerColor derives a stable hue from the item id.
func markerColor(id uuid.UUID) string {
	h := fnv.New32a()
	h.Write(id[:])
	hue := float64(h.Sum32() % 360)
	return colorful.Hsl(hue, 0.7, 0.5).Hex()
}
