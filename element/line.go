package element

import "github.com/lixenwraith/hawktui/terminal"

// Line is an orthogonal connector: a horizontal run from the start to the
// end column, then a vertical run to the end, with a corner glyph at the elbow
// Lines are decorative and never resolve as pointer targets
type Line struct {
	Base
	from, to Point
	line     terminal.LineType
	attr     terminal.Attr
	// anchor recomputes the ends before each render when the line follows other elements
	// ok false hides the line for that render
	anchor func() (from, to Point, ok bool)
}

// NewLine creates a connector between two absolute points
func NewLine(from, to Point, opts ...Option) *Line {
	o := buildOptions(opts)
	l := &Line{line: o.line, attr: o.attr}
	l.init(l, KindLine, o.flags, terminal.NewSurface(from.X, from.Y, 1, 1))
	l.SetEnds(from, to)
	return l
}

// Ends returns the start and end points
func (l *Line) Ends() (from, to Point) {
	return l.from, l.to
}

// SetEnds moves both ends and refits the surface to their bounding rectangle
func (l *Line) SetEnds(from, to Point) {
	l.from, l.to = from, to
	l.surface.Move(min(from.X, to.X), min(from.Y, to.Y))
	l.surface.Resize(abs(to.X-from.X)+1, abs(to.Y-from.Y)+1)
}

// MoveTo shifts both ends so the bounding rectangle starts at (x, y)
func (l *Line) MoveTo(x, y int) {
	r := l.Bounds()
	dx, dy := x-r.X, y-r.Y
	l.SetEnds(Point{l.from.X + dx, l.from.Y + dy}, Point{l.to.X + dx, l.to.Y + dy})
}

func (l *Line) Render(s terminal.Stager) {
	if l.anchor != nil {
		from, to, ok := l.anchor()
		if !ok {
			return
		}
		if from != l.from || to != l.to {
			l.SetEnds(from, to)
		}
	}
	l.surface.Clear()

	g := terminal.GlyphsFor(l.line)
	ox, oy := l.surface.Origin()
	fx, fy := l.from.X-ox, l.from.Y-oy
	tx, ty := l.to.X-ox, l.to.Y-oy

	switch {
	case fy == ty:
		l.surface.HLine(min(fx, tx), fy, abs(tx-fx)+1, g.H, l.attr)
	case fx == tx:
		l.surface.VLine(fx, min(fy, ty), abs(ty-fy)+1, g.V, l.attr)
	default:
		l.surface.HLine(min(fx, tx), fy, abs(tx-fx)+1, g.H, l.attr)
		l.surface.VLine(tx, min(fy, ty), abs(ty-fy)+1, g.V, l.attr)
		l.surface.Set(tx, fy, elbow(g, tx > fx, ty > fy), l.attr)
	}
	l.stage(s)
}

// elbow picks the corner joining a horizontal run with a vertical one
func elbow(g terminal.Glyphs, right, down bool) rune {
	switch {
	case right && down:
		return g.TR
	case right:
		return g.BR
	case down:
		return g.TL
	default:
		return g.BL
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
