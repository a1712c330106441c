// Package canvas is a small cell-grid drawing surface for tracing letters in
// the terminal.
package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
)

// Default surface size in cells.
const (
	DefaultWidth  = 24
	DefaultHeight = 12
)

// cellPixels is the side of one cell in exported images.
const cellPixels = 16

var (
	inkColor   = color.RGBA{R: 0x5b, G: 0x21, B: 0xb6, A: 0xff}
	paperColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Canvas is a grid of cells a pen can ink. The reference glyph is shown by
// the UI behind the grid and is not part of the exported image.
type Canvas struct {
	width, height int
	cells         []bool
	x, y          int
	penDown       bool
	guide         string
	strokes       int
}

// New creates an empty canvas. Non-positive sizes fall back to the defaults.
func New(width, height int) *Canvas {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	c := &Canvas{width: width, height: height, cells: make([]bool, width*height)}
	c.Clear()
	return c
}

// SetGuide sets the reference glyph shown behind the strokes.
func (c *Canvas) SetGuide(glyph string) { c.guide = glyph }

// Guide returns the reference glyph.
func (c *Canvas) Guide() string { return c.guide }

// Size returns the canvas size in cells.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Cursor returns the pen position.
func (c *Canvas) Cursor() (x, y int) { return c.x, c.y }

// PenDown reports whether moving the pen inks cells.
func (c *Canvas) PenDown() bool { return c.penDown }

// Clear wipes every stroke, lifts the pen and centres the cursor. The guide
// glyph is kept.
func (c *Canvas) Clear() {
	clear(c.cells)
	c.x, c.y = c.width/2, c.height/2
	c.penDown = false
	c.strokes = 0
}

// TogglePen lowers or lifts the pen. Lowering it inks the cell under the
// cursor and starts a new stroke.
func (c *Canvas) TogglePen() {
	c.penDown = !c.penDown
	if c.penDown {
		c.strokes++
		c.ink()
	}
}

// Move shifts the cursor by dx, dy, clamped to the surface, inking the path
// when the pen is down.
func (c *Canvas) Move(dx, dy int) {
	steps := max(abs(dx), abs(dy))
	for i := 0; i < steps; i++ {
		c.x = clamp(c.x+sign(dx)*boolInt(i < abs(dx)), 0, c.width-1)
		c.y = clamp(c.y+sign(dy)*boolInt(i < abs(dy)), 0, c.height-1)
		if c.penDown {
			c.ink()
		}
	}
}

// Dot inks the cell under the cursor as a one-cell stroke.
func (c *Canvas) Dot() {
	c.strokes++
	c.ink()
}

func (c *Canvas) ink() {
	c.cells[c.y*c.width+c.x] = true
}

// Inked reports whether the cell at x, y holds ink.
func (c *Canvas) Inked(x, y int) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	return c.cells[y*c.width+x]
}

// Strokes returns the number of strokes since the last Clear.
func (c *Canvas) Strokes() int { return c.strokes }

// InkedCells returns the number of inked cells.
func (c *Canvas) InkedCells() int {
	n := 0
	for _, v := range c.cells {
		if v {
			n++
		}
	}
	return n
}

// Rows renders the grid as text, one string per row, using ink for inked
// cells, cursor for the pen position and blank elsewhere.
func (c *Canvas) Rows(ink, cursor, blank string) []string {
	rows := make([]string, c.height)
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		b.Reset()
		for x := 0; x < c.width; x++ {
			switch {
			case x == c.x && y == c.y:
				b.WriteString(cursor)
			case c.cells[y*c.width+x]:
				b.WriteString(ink)
			default:
				b.WriteString(blank)
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// ExportImage renders the strokes as a PNG.
func (c *Canvas) ExportImage() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, c.width*cellPixels, c.height*cellPixels))
	for py := 0; py < img.Bounds().Dy(); py++ {
		for px := 0; px < img.Bounds().Dx(); px++ {
			col := paperColor
			if c.cells[(py/cellPixels)*c.width+px/cellPixels] {
				col = inkColor
			}
			img.SetRGBA(px, py, col)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
