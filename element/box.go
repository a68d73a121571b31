package element

import "github.com/lixenwraith/hawktui/terminal"

// Default box geometry when the caller has no layout of its own
const (
	DefaultWidth  = 10
	DefaultHeight = 5
)

// Box is a bordered rectangle, its interior is transparent unless Filled
type Box struct {
	Base
	line   terminal.LineType
	attr   terminal.Attr
	filled bool
}

// NewBox creates a box at (x, y) sized w by h, degenerate sizes clamp to 1x1
func NewBox(x, y, w, h int, opts ...Option) *Box {
	o := buildOptions(opts)
	b := &Box{line: o.line, attr: o.attr, filled: o.filled}
	b.init(b, KindBox, o.flags, terminal.NewSurface(x, y, w, h))
	return b
}

// SetLine changes the border style
func (b *Box) SetLine(line terminal.LineType) {
	b.line = line
}

// Resize changes the box size, keeping its origin
func (b *Box) Resize(w, h int) {
	b.surface.Resize(w, h)
}

func (b *Box) Render(s terminal.Stager) {
	b.surface.Clear()
	if b.filled {
		b.surface.Fill(' ', b.attr)
	}
	b.surface.Border(b.line, b.attr)
	b.stage(s)
}
