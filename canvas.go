package main

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
)

var ErrInvalidSize = errors.New("item size must be positive")

// Canvas is one independent drag-and-drop surface. It owns its items and
// its drag session; nothing is shared between canvases.
type Canvas struct {
	Title   string
	Accent  string
	axis    AxisConfig
	items   []PlacedItem
	session *DragSession
}

func NewCanvas(title, accent string, axis AxisConfig) *Canvas {
	return &Canvas{
		Title:  title,
		Accent: accent,
		axis:   axis,
		items:  make([]PlacedItem, 0),
	}
}

func (c *Canvas) Axis() AxisConfig {
	return c.axis
}

func (c *Canvas) Add(name string, size, x, y float64) (PlacedItem, error) {
	if !(size > 0) {
		return PlacedItem{}, fmt.Errorf("add %q: %w", name, ErrInvalidSize)
	}
	item := PlacedItem{
		ID:   uuid.New(),
		Name: name,
		Size: size,
	}
	c.place(&item, x, y)
	c.items = append(c.items, item)
	return item, nil
}

// Move repositions the item in place. Unknown ids are ignored.
func (c *Canvas) Move(id uuid.UUID, x, y float64) bool {
	idx := c.index(id)
	if idx < 0 {
		return false
	}
	c.place(&c.items[idx], x, y)
	return true
}

// Remove drops the item from the collection. Unknown ids are ignored.
func (c *Canvas) Remove(id uuid.UUID) bool {
	kept := c.items[:0:0]
	for _, item := range c.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(c.items) {
		return false
	}
	c.items = kept
	if c.session != nil && c.session.Source == SourcePlaced && c.session.ItemID == id {
		c.session = nil
	}
	return true
}

func (c *Canvas) Item(id uuid.UUID) (PlacedItem, bool) {
	idx := c.index(id)
	if idx < 0 {
		return PlacedItem{}, false
	}
	return c.items[idx], true
}

// Items returns a copy in insertion order.
func (c *Canvas) Items() []PlacedItem {
	out := make([]PlacedItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Canvas) Len() int {
	return len(c.items)
}

// ItemAt returns the placed item nearest to (x, y) in domain units, if it
// lies strictly closer than hitThreshold. Ties keep collection order.
func (c *Canvas) ItemAt(x, y float64) (PlacedItem, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, item := range c.items {
		d := math.Hypot(item.X-x, item.Y-y)
		if d < hitThreshold && d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return PlacedItem{}, false
	}
	return c.items[best], true
}

func (c *Canvas) index(id uuid.UUID) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Canvas) place(item *PlacedItem, x, y float64) {
	item.X = c.axis.ClampX(x, item.Size)
	item.Y = c.axis.ClampY(y)
	item.X2 = round2(item.X + item.Size)
	log.Printf("%s: %s at %s", c.Title, item.Name, itemCoordinates(*item))
}
