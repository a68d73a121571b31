package terminal

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Frame is the compositor for one paint: staged surfaces are copied in call order
// Later stages overwrite earlier ones except where the staged cell is transparent
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame creates a frame with the specified dimensions
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize adjusts frame dimensions, reallocates only if capacity insufficient
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(f.cells) < size {
		f.cells = make([]Cell, size)
	} else {
		f.cells = f.cells[:size]
	}
	f.width = width
	f.height = height
	f.Clear()
}

// Clear resets all cells to empty
func (f *Frame) Clear() {
	clear(f.cells)
}

// Size returns frame dimensions
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// Stage composites a surface at its origin, clipped to the frame
func (f *Frame) Stage(s *Surface) {
	if s == nil || s.destroyed {
		return
	}
	for sy := 0; sy < s.h; sy++ {
		y := s.y + sy
		if y < 0 || y >= f.height {
			continue
		}
		for sx := 0; sx < s.w; sx++ {
			x := s.x + sx
			if x < 0 || x >= f.width {
				continue
			}
			c := s.cells[sy*s.w+sx]
			if c.Rune == 0 {
				continue
			}
			f.cells[y*f.width+x] = c
		}
	}
}

// Cell returns the composed cell at an absolute position
func (f *Frame) Cell(x, y int) Cell {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Cell{}
	}
	return f.cells[y*f.width+x]
}

// Covered reports whether (x, y) is the empty trailing column of a double-width rune
func (f *Frame) Covered(x, y int) bool {
	if x < 1 || f.Cell(x, y).Rune != 0 {
		return false
	}
	return runewidth.RuneWidth(f.Cell(x-1, y).Rune) == 2
}

// Row returns one frame row as text, empty cells read as spaces
// Columns covered by a double-width rune are omitted
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	var sb strings.Builder
	sb.Grow(f.width)
	for x := 0; x < f.width; x++ {
		if f.Covered(x, y) {
			continue
		}
		r := f.cells[y*f.width+x].Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// String renders the whole frame, one line per row
func (f *Frame) String() string {
	rows := make([]string, f.height)
	for y := range rows {
		rows[y] = f.Row(y)
	}
	return strings.Join(rows, "\n")
}
