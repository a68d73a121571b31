package element

import (
	"weak"

	"github.com/lixenwraith/hawktui/terminal"
)

// nodeLink refers to its target without keeping it alive
type nodeLink struct {
	to   weak.Pointer[Node]
	line *Line
}

// target returns the linked node while it is still live, nil once it was
// collected or destroyed
func (l nodeLink) target() *Node {
	t := l.to.Value()
	if t == nil || t.box.Surface().Destroyed() {
		return nil
	}
	return t
}

// Node is a draggable titled Box that can be linked to other nodes
// Each link is an owned Line that follows both nodes while they move
type Node struct {
	Base
	box   *Box
	title *Text
	line  terminal.LineType
	attr  terminal.Attr
	links []nodeLink
}

// NewNode creates a node whose box is at (x, y) sized w by h, the title sits on the top border
func NewNode(title string, x, y, w, h int, opts ...Option) *Node {
	o := buildOptions(opts)
	n := &Node{line: o.line, attr: o.attr}
	n.init(n, KindNode, o.flags.Set(Draggable), nil)

	boxOpts := []Option{WithLine(o.line), WithAttr(o.attr)}
	if o.filled {
		boxOpts = append(boxOpts, Filled())
	}
	n.box = NewBox(x, y, w, h, boxOpts...)
	n.title = NewText(title, x+2, y, WithAttr(o.attr|terminal.AttrBold))
	mustAdd(&n.Base, n.box)
	mustAdd(&n.Base, n.title)
	return n
}

// Title returns the node title
func (n *Node) Title() string {
	return n.title.Text()
}

// SetTitle replaces the node title
func (n *Node) SetTitle(s string) {
	n.title.SetText(s)
}

// Link connects this node to other and returns the connector, linking twice returns the existing one
// The connector is dropped on the next render after other is destroyed
func (n *Node) Link(other *Node) *Line {
	if other == nil || other == n || other.box.Surface().Destroyed() {
		return nil
	}
	for _, l := range n.links {
		if l.to.Value() == other {
			return l.line
		}
	}

	link := nodeLink{to: weak.Make(other)}
	line := NewLine(Point{}, Point{}, WithLine(n.line), WithAttr(n.attr|terminal.AttrDim))
	line.anchor = func() (Point, Point, bool) {
		t := link.target()
		if t == nil {
			return Point{}, Point{}, false
		}
		// Hidden while only one end is on a screen
		if attached(&n.Base) != attached(&t.Base) {
			return Point{}, Point{}, false
		}
		from, to := linkEnds(n.box.Bounds(), t.box.Bounds())
		return from, to, true
	}
	line.SetEnds(linkEnds(n.box.Bounds(), other.box.Bounds()))
	mustAdd(&n.Base, line)
	link.line = line
	n.links = append(n.links, link)
	return line
}

// Unlink removes and destroys the connector to other
func (n *Node) Unlink(other *Node) bool {
	for i, l := range n.links {
		if l.to.Value() != other {
			continue
		}
		n.drop(i)
		return true
	}
	return false
}

func (n *Node) drop(i int) {
	l := n.links[i]
	n.Remove(l.line)
	l.line.Destroy()
	n.links = append(n.links[:i:i], n.links[i+1:]...)
}

// Links returns the live nodes this node is linked to, in link order
func (n *Node) Links() []*Node {
	out := make([]*Node, 0, len(n.links))
	for _, l := range n.links {
		if t := l.target(); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Render drops links whose target is gone; the box, title and live links render themselves
func (n *Node) Render(terminal.Stager) {
	for i := len(n.links) - 1; i >= 0; i-- {
		if n.links[i].target() == nil {
			n.drop(i)
		}
	}
}

// linkEnds joins the facing side edges of two boxes at their vertical centres
func linkEnds(a, b Rect) (from, to Point) {
	ay, by := a.Y+a.H/2, b.Y+b.H/2
	if b.X+b.W/2 >= a.X+a.W/2 {
		return Point{a.X + a.W, ay}, Point{b.X - 1, by}
	}
	return Point{a.X - 1, ay}, Point{b.X + b.W, by}
}
