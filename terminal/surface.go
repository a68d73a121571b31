package terminal

// Surface is a rectangular cell buffer positioned on the screen
// Coordinates passed to drawing methods are relative to the surface origin
type Surface struct {
	x, y      int
	w, h      int
	cells     []Cell
	destroyed bool
}

// NewSurface creates a surface of w x h at (x, y)
// Degenerate sizes are clamped to 1x1
func NewSurface(x, y, w, h int) *Surface {
	w, h = clampSize(w, h)
	return &Surface{
		x:     x,
		y:     y,
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
}

func clampSize(w, h int) (int, int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Origin returns the absolute position of the top-left cell
func (s *Surface) Origin() (x, y int) {
	return s.x, s.y
}

// Size returns surface dimensions
func (s *Surface) Size() (w, h int) {
	return s.w, s.h
}

// Move repositions the surface, content is kept
func (s *Surface) Move(x, y int) {
	if s.destroyed {
		return
	}
	s.x = x
	s.y = y
}

// Resize changes surface dimensions and clears its content
// Reallocates only if capacity insufficient
func (s *Surface) Resize(w, h int) {
	if s.destroyed {
		return
	}
	w, h = clampSize(w, h)
	size := w * h
	if cap(s.cells) < size {
		s.cells = make([]Cell, size)
	} else {
		s.cells = s.cells[:size]
	}
	s.w = w
	s.h = h
	s.Clear()
}

// Clear resets every cell to transparent
func (s *Surface) Clear() {
	clear(s.cells)
}

// Destroy releases the cell buffer; a destroyed surface draws and stages nothing
func (s *Surface) Destroy() {
	s.destroyed = true
	s.cells = nil
}

// Destroyed reports whether Destroy was called
func (s *Surface) Destroyed() bool {
	return s.destroyed
}

// Set writes a single cell with bounds checking
func (s *Surface) Set(x, y int, ch rune, attr Attr) {
	if s.destroyed || x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.cells[y*s.w+x] = Cell{Rune: ch, Attrs: attr}
}

// Cell returns the cell at a surface-relative position, zero Cell if out of bounds
func (s *Surface) Cell(x, y int) Cell {
	if s.destroyed || x < 0 || x >= s.w || y < 0 || y >= s.h {
		return Cell{}
	}
	return s.cells[y*s.w+x]
}

// Fill sets every cell to ch
func (s *Surface) Fill(ch rune, attr Attr) {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ch, Attrs: attr}
	}
}

// Text renders a single line at position, truncates at surface edge
// Returns the number of cells written
func (s *Surface) Text(x, y int, str string, attr Attr) int {
	if y < 0 || y >= s.h {
		return 0
	}
	col := 0
	written := 0
	for _, ch := range str {
		if x+col >= s.w {
			break
		}
		if x+col >= 0 {
			s.Set(x+col, y, ch, attr)
			written++
		}
		col++
	}
	return written
}

// HLine draws n cells of ch rightwards from (x, y)
func (s *Surface) HLine(x, y, n int, ch rune, attr Attr) {
	for i := 0; i < n; i++ {
		s.Set(x+i, y, ch, attr)
	}
}

// VLine draws n cells of ch downwards from (x, y)
func (s *Surface) VLine(x, y, n int, ch rune, attr Attr) {
	for i := 0; i < n; i++ {
		s.Set(x, y+i, ch, attr)
	}
}

// Border draws border around surface edge, interior is left untouched
func (s *Surface) Border(line LineType, attr Attr) {
	if s.w < 2 || s.h < 2 {
		return
	}
	g := GlyphsFor(line)

	// Corners
	s.Set(0, 0, g.TL, attr)
	s.Set(s.w-1, 0, g.TR, attr)
	s.Set(0, s.h-1, g.BL, attr)
	s.Set(s.w-1, s.h-1, g.BR, attr)

	// Edges
	s.HLine(1, 0, s.w-2, g.H, attr)
	s.HLine(1, s.h-1, s.w-2, g.H, attr)
	s.VLine(0, 1, s.h-2, g.V, attr)
	s.VLine(s.w-1, 1, s.h-2, g.V, attr)
}
