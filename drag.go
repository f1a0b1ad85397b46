package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
)

var (
	ErrDragActive  = errors.New("a drag is already in progress")
	ErrUnknownItem = errors.New("no such item")
)

func (c *Canvas) Dragging() bool {
	return c.session != nil
}

// Session returns a copy of the armed session.
func (c *Canvas) Session() (DragSession, bool) {
	if c.session == nil {
		return DragSession{}, false
	}
	return *c.session, true
}

// BeginPaletteDrag arms the canvas with a catalog entry that has no
// identity yet; the drop creates the item.
func (c *Canvas) BeginPaletteDrag(entry PaletteItem) error {
	if c.session != nil {
		return ErrDragActive
	}
	size := entry.ItemSize()
	if !(size > 0) {
		return fmt.Errorf("drag %q: %w", entry.Label, ErrInvalidSize)
	}
	c.arm(DragSession{Source: SourcePalette, Style: StyleDrop, Label: entry.Label, Size: size})
	return nil
}

// BeginItemDrag arms the canvas with an already placed item for a
// drag-and-drop re-grab.
func (c *Canvas) BeginItemDrag(id uuid.UUID) error {
	if c.session != nil {
		return ErrDragActive
	}
	item, ok := c.Item(id)
	if !ok {
		return fmt.Errorf("drag %s: %w", id, ErrUnknownItem)
	}
	c.arm(DragSession{Source: SourcePlaced, Style: StyleDrop, ItemID: id, Label: item.Name, Size: item.Size})
	return nil
}

// BeginPointerDrag hit-tests the pointer against the placed items and arms
// a continuous drag on the nearest one. It reports whether anything was
// armed.
func (c *Canvas) BeginPointerDrag(px, py float64, rect Rect) bool {
	if c.session != nil {
		return false
	}
	x, y := c.axis.MapPointer(px, py, rect, 0)
	item, ok := c.ItemAt(x, y)
	if !ok {
		return false
	}
	c.arm(DragSession{Source: SourcePlaced, Style: StylePointer, ItemID: item.ID, Label: item.Name, Size: item.Size})
	return true
}

// Track moves the item of an armed pointer drag to the pointer position.
func (c *Canvas) Track(px, py float64, rect Rect) bool {
	if c.session == nil || c.session.Style != StylePointer {
		return false
	}
	x, y := c.axis.MapPointer(px, py, rect, c.session.Size)
	return c.Move(c.session.ItemID, x, y)
}

func (c *Canvas) EndPointerDrag() {
	if c.session != nil && c.session.Style == StylePointer {
		c.disarm("released")
	}
}

// Drop consumes a drag-and-drop session. Palette sessions create an item,
// placed-item sessions move theirs. The session always clears; a drop off
// the surface leaves the store untouched.
func (c *Canvas) Drop(px, py float64, rect Rect, onSurface bool) (PlacedItem, bool) {
	s := c.session
	if s == nil || s.Style != StyleDrop {
		return PlacedItem{}, false
	}
	c.disarm("dropped")
	if !onSurface {
		return PlacedItem{}, false
	}
	x, y := c.axis.MapPointer(px, py, rect, s.Size)
	if s.Source == SourcePalette {
		item, err := c.Add(s.Label, s.Size, x, y)
		if err != nil {
			log.Printf("%s: drop: %v", c.Title, err)
			return PlacedItem{}, false
		}
		return item, true
	}
	if !c.Move(s.ItemID, x, y) {
		return PlacedItem{}, false
	}
	item, _ := c.Item(s.ItemID)
	return item, true
}

// Cancel discards any armed session.
func (c *Canvas) Cancel() {
	if c.session != nil {
		c.disarm("cancelled")
	}
}

func (c *Canvas) arm(s DragSession) {
	c.session = &s
	log.Printf("%s: armed %s drag of %q", c.Title, s.Source, s.Label)
}

func (c *Canvas) disarm(reason string) {
	log.Printf("%s: drag of %q %s", c.Title, c.session.Label, reason)
	c.session = nil
}
