package canvas

import (
	"bytes"
	"image/png"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	c := New(0, -1)
	w, h := c.Size()
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
	x, y := c.Cursor()
	if x != w/2 || y != h/2 {
		t.Errorf("cursor = %d,%d, want centre", x, y)
	}
}

func TestStrokeInksPath(t *testing.T) {
	c := New(10, 10)
	c.TogglePen()
	c.Move(3, 0)
	c.Move(0, 2)

	if got := c.InkedCells(); got != 6 {
		t.Errorf("inked cells = %d, want 6", got)
	}
	if !c.Inked(8, 7) {
		t.Error("end of stroke should be inked")
	}
	if c.Strokes() != 1 {
		t.Errorf("strokes = %d, want 1", c.Strokes())
	}
}

func TestPenUpDoesNotInk(t *testing.T) {
	c := New(10, 10)
	c.Move(2, 2)
	if c.InkedCells() != 0 {
		t.Error("moving with the pen up should not ink")
	}
	c.Dot()
	if c.InkedCells() != 1 || c.Strokes() != 1 {
		t.Errorf("after dot: cells=%d strokes=%d", c.InkedCells(), c.Strokes())
	}
}

func TestMoveClamps(t *testing.T) {
	c := New(5, 5)
	c.Move(-100, 100)
	x, y := c.Cursor()
	if x != 0 || y != 4 {
		t.Errorf("cursor = %d,%d, want 0,4", x, y)
	}
}

func TestClearKeepsGuide(t *testing.T) {
	c := New(6, 6)
	c.SetGuide("क")
	c.TogglePen()
	c.Move(1, 1)
	c.Clear()
	if c.InkedCells() != 0 || c.Strokes() != 0 || c.PenDown() {
		t.Error("Clear should wipe strokes and lift the pen")
	}
	if c.Guide() != "क" {
		t.Errorf("guide = %q, want क", c.Guide())
	}
}

func TestRows(t *testing.T) {
	c := New(3, 2)
	c.Move(-1, -1)
	c.Dot()
	c.Move(1, 0)
	rows := c.Rows("#", "+", ".")
	if len(rows) != 2 || rows[0] != "#+." || rows[1] != "..." {
		t.Errorf("rows = %q", rows)
	}
}

func TestExportImage(t *testing.T) {
	c := New(4, 3)
	c.Dot()
	raw, err := c.ExportImage()
	if err != nil {
		t.Fatalf("ExportImage: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 4*cellPixels || b.Dy() != 3*cellPixels {
		t.Errorf("bounds = %v", b)
	}
	x, y := c.Cursor()
	r, _, _, _ := img.At(x*cellPixels, y*cellPixels).RGBA()
	if r>>8 != uint32(inkColor.R) {
		t.Errorf("inked pixel red = %d, want %d", r>>8, inkColor.R)
	}
}
