// SPDX-License-Identifier: MIT
// Package: lvhelix/preview
//
// frame.go - depth-tested character cell buffer.

package preview

import (
	"github.com/katalvlaran/lvhelix/scene"
)

// Glyphs used for each primitive.
const (
	RuneStrand    = '█'
	RuneMarker    = '●'
	RuneConnector = '·'
	RuneHub       = 'o'
)

// Cell is one terminal cell. A zero Rune means empty.
type Cell struct {
	Rune  rune
	Color scene.Color
	Depth float64
}

// Frame is a Width×Height grid of cells, row-major.
type Frame struct {
	Width, Height int
	cells         []Cell
}

// NewFrame returns an empty frame. Negative sizes are treated as zero.
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)

	return &Frame{Width: width, Height: height, cells: make([]Cell, width*height)}
}

// At returns the cell at (x, y), or an empty cell outside the frame.
func (f *Frame) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Cell{}
	}

	return f.cells[y*f.Width+x]
}

// Plot writes c at (x, y) when the cell is empty or c is not farther than
// its content; on equal depth the later write wins. It reports whether the
// cell changed.
func (f *Frame) Plot(x, y int, c Cell) bool {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height || c.Rune == 0 {
		return false
	}
	cur := &f.cells[y*f.Width+x]
	if cur.Rune != 0 && cur.Depth < c.Depth {
		return false
	}
	*cur = c

	return true
}

// Filled counts non-empty cells.
func (f *Frame) Filled() int {
	n := 0
	for _, c := range f.cells {
		if c.Rune != 0 {
			n++
		}
	}

	return n
}

// Clear empties every cell.
func (f *Frame) Clear() {
	clear(f.cells)
}
