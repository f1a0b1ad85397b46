package main

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

// 100x100 surface at the origin: one pointer unit is 0.1 domain units.
var testRect = Rect{Width: 100, Height: 100}

func TestPaletteDrop_CreatesItem(t *testing.T) {
	c := newTestCanvas()
	if err := c.BeginPaletteDrag(PaletteItem{Label: "Cube A", Size: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	session, ok := c.Session()
	if !ok || session.Source != SourcePalette || session.Style != StyleDrop || session.ItemID != uuid.Nil {
		t.Fatalf("unexpected session %+v", session)
	}

	item, ok := c.Drop(30, 60, testRect, true)
	if !ok {
		t.Fatal("expected drop to place an item")
	}
	if item.X != 3 || item.Y != 4 || item.X2 != 5 || item.Name != "Cube A" {
		t.Errorf("expected Cube A at x=3 y=4 x2=5, got %+v", item)
	}
	if c.Dragging() {
		t.Error("session should be idle after drop")
	}
}

func TestPaletteDrop_ValueDerivedSize(t *testing.T) {
	c := newTestCanvas()
	c.BeginPaletteDrag(PaletteItem{Label: "Object D", Value: 91})
	item, _ := c.Drop(0, 0, testRect, true)
	if item.Size != 4.55 {
		t.Errorf("expected size 91/20, got %v", item.Size)
	}
}

func TestPaletteDrop_ClampsFarEdge(t *testing.T) {
	c := newTestCanvas()
	c.BeginPaletteDrag(PaletteItem{Label: "Cube A", Size: 2})
	item, _ := c.Drop(90, 50, testRect, true)
	if item.X != 8 || item.X2 != 10 {
		t.Errorf("expected x=8 x2=10, got %+v", item)
	}
}

func TestItemDrop_MovesExisting(t *testing.T) {
	c := newTestCanvas()
	item, _ := c.Add("A", 1, 1, 1)
	if err := c.BeginItemDrag(item.ID); err != nil {
		t.Fatal(err)
	}
	moved, ok := c.Drop(50, 30, testRect, true)
	if !ok || moved.ID != item.ID {
		t.Fatalf("expected the same item back, got %+v", moved)
	}
	if moved.X != 5 || moved.Y != 7 || moved.X2 != 6 {
		t.Errorf("expected x=5 y=7 x2=6, got %+v", moved)
	}
	if c.Len() != 1 {
		t.Errorf("re-drag must not create items, have %d", c.Len())
	}
}

func TestInvalidDrop_KeepsPositionAndClears(t *testing.T) {
	c := newTestCanvas()
	item, _ := c.Add("A", 1, 1, 1)
	c.BeginItemDrag(item.ID)
	if _, ok := c.Drop(50, 30, testRect, false); ok {
		t.Error("drop off the surface should not report a placement")
	}
	if c.Dragging() {
		t.Error("session should clear on an invalid drop")
	}
	if got, _ := c.Item(item.ID); got != item {
		t.Errorf("item moved on an invalid drop: %+v", got)
	}

	c.BeginPaletteDrag(PaletteItem{Label: "B", Size: 1})
	c.Drop(50, 30, testRect, false)
	if c.Len() != 1 {
		t.Errorf("invalid palette drop created an item")
	}
}

func TestDrop_WithoutSessionIgnored(t *testing.T) {
	c := newTestCanvas()
	if _, ok := c.Drop(10, 10, testRect, true); ok {
		t.Error("drop without a session should be ignored")
	}
	if c.Track(10, 10, testRect) {
		t.Error("track without a session should be ignored")
	}
	c.EndPointerDrag()
	c.Cancel()
	if c.Len() != 0 {
		t.Error("store changed")
	}
}

func TestBeginItemDrag_UnknownItem(t *testing.T) {
	c := newTestCanvas()
	if err := c.BeginItemDrag(uuid.New()); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("expected ErrUnknownItem, got %v", err)
	}
	if c.Dragging() {
		t.Error("no session expected")
	}
}

func TestRearm_Rejected(t *testing.T) {
	c := newTestCanvas()
	item, _ := c.Add("A", 1, 5, 5)
	c.BeginPaletteDrag(PaletteItem{Label: "Cube A", Size: 2})

	if err := c.BeginPaletteDrag(PaletteItem{Label: "Block B", Size: 1.5}); !errors.Is(err, ErrDragActive) {
		t.Errorf("expected ErrDragActive, got %v", err)
	}
	if err := c.BeginItemDrag(item.ID); !errors.Is(err, ErrDragActive) {
		t.Errorf("expected ErrDragActive, got %v", err)
	}
	if c.BeginPointerDrag(50, 50, testRect) {
		t.Error("pointer drag must not re-arm an armed canvas")
	}
	session, _ := c.Session()
	if session.Label != "Cube A" {
		t.Errorf("session replaced: %+v", session)
	}
}

func TestPointerDrag_Lifecycle(t *testing.T) {
	c := newTestCanvas()
	item, _ := c.Add("A", 2, 3, 4)

	if !c.BeginPointerDrag(31, 61, testRect) {
		t.Fatal("expected hit on A")
	}
	session, _ := c.Session()
	if session.Style != StylePointer || session.Source != SourcePlaced || session.ItemID != item.ID {
		t.Fatalf("unexpected session %+v", session)
	}

	// drop events do not end a pointer drag
	if _, ok := c.Drop(10, 10, testRect, true); ok {
		t.Error("drop must not consume a pointer drag")
	}

	for _, px := range []float64{40, 50, 95} {
		if !c.Track(px, 20, testRect) {
			t.Fatalf("track to %v failed", px)
		}
	}
	got, _ := c.Item(item.ID)
	if got.X != 8 || got.Y != 8 || got.X2 != 10 {
		t.Errorf("expected clamped x=8 y=8 x2=10, got %+v", got)
	}

	c.EndPointerDrag()
	if c.Dragging() {
		t.Error("release should disarm")
	}
	if c.Track(10, 10, testRect) {
		t.Error("track after release should be ignored")
	}
}

func TestPointerDrag_Miss(t *testing.T) {
	c := newTestCanvas()
	c.Add("A", 2, 3, 4)
	if c.BeginPointerDrag(35, 60, testRect) {
		t.Error("distance 0.5 must not hit")
	}
	if c.Dragging() {
		t.Error("miss must leave the canvas idle")
	}
}

func TestBeginPaletteDrag_InvalidSize(t *testing.T) {
	c := newTestCanvas()
	if err := c.BeginPaletteDrag(PaletteItem{Label: "empty"}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}
