package element

import (
	"slices"

	"github.com/lixenwraith/hawktui/terminal"
)

// Base carries identity, capability flags, ownership and the optional surface
// Concrete elements embed Base and call init with themselves
type Base struct {
	id       ID
	kind     Kind
	flags    Flags
	self     Element
	parent   Element
	children []Element
	surface  *terminal.Surface
	// rooted is set while the element sits in a screen's root list
	rooted bool
}

// owned is satisfied by every element embedding Base
type owned interface {
	base() *Base
}

func (b *Base) base() *Base {
	return b
}

func (b *Base) init(self Element, kind Kind, flags Flags, surface *terminal.Surface) {
	b.id = nextID()
	b.kind = kind
	b.flags = flags
	b.self = self
	b.surface = surface
}

func (b *Base) ID() ID {
	return b.id
}

func (b *Base) Kind() Kind {
	return b.kind
}

func (b *Base) Flags() Flags {
	return b.flags
}

// SetFlags replaces the capability set
func (b *Base) SetFlags(f Flags) {
	b.flags = f
}

func (b *Base) Children() []Element {
	return b.children
}

func (b *Base) Surface() *terminal.Surface {
	return b.surface
}

// Parent returns the owning element, nil for roots and detached elements
func (b *Base) Parent() Element {
	return b.parent
}

// Bounds returns the own surface rectangle, composites delegate to their first child
func (b *Base) Bounds() Rect {
	if b.surface != nil {
		x, y := b.surface.Origin()
		w, h := b.surface.Size()
		return Rect{X: x, Y: y, W: w, H: h}
	}
	if len(b.children) > 0 {
		return b.children[0].Bounds()
	}
	return Rect{}
}

// MoveTo positions the element origin at (x, y), children move by the same delta
func (b *Base) MoveTo(x, y int) {
	r := b.self.Bounds()
	dx, dy := x-r.X, y-r.Y
	if dx == 0 && dy == 0 {
		return
	}
	b.shift(dx, dy)
}

func (b *Base) shift(dx, dy int) {
	if b.surface != nil {
		x, y := b.surface.Origin()
		b.surface.Move(x+dx, y+dy)
	}
	for _, child := range b.children {
		r := child.Bounds()
		child.MoveTo(r.X+dx, r.Y+dy)
	}
}

// Add appends child to the owned list
func (b *Base) Add(child Element) error {
	if child == nil {
		return ErrInvalid
	}
	o, ok := child.(owned)
	if !ok {
		return ErrInvalid
	}
	cb := o.base()
	if cb == b {
		return ErrCycle
	}
	if cb.parent != nil || cb.rooted {
		return ErrOwned
	}
	for a := b.self; a != nil; a = a.(owned).base().parent {
		if a == child {
			return ErrCycle
		}
	}

	cb.parent = b.self
	// Clip so slices handed out by Children are never written through
	b.children = append(slices.Clip(b.children), child)
	return nil
}

// Remove detaches child by identity and reports whether it was owned
// The child keeps its surface until destroyed
func (b *Base) Remove(child Element) bool {
	i := slices.Index(b.children, child)
	if i < 0 {
		return false
	}
	next := make([]Element, 0, len(b.children)-1)
	next = append(next, b.children[:i]...)
	b.children = append(next, b.children[i+1:]...)
	child.(owned).base().parent = nil
	return true
}

// Destroy releases the surface of the element and its whole subtree
func (b *Base) Destroy() {
	if b.surface != nil {
		b.surface.Destroy()
	}
	for _, child := range b.children {
		child.Destroy()
	}
}

// stage hands a live surface to the stager
func (b *Base) stage(s terminal.Stager) {
	if b.surface == nil || b.surface.Destroyed() {
		return
	}
	s.Stage(b.surface)
}

// Root marks e as a top-level element of a screen
// A rooted element is exclusively held by the root list and cannot be owned
func Root(e Element) error {
	if e == nil {
		return ErrInvalid
	}
	o, ok := e.(owned)
	if !ok {
		return ErrInvalid
	}
	b := o.base()
	if b.parent != nil || b.rooted {
		return ErrOwned
	}
	b.rooted = true
	return nil
}

// Unroot releases the root mark set by Root
func Unroot(e Element) {
	if o, ok := e.(owned); ok {
		o.base().rooted = false
	}
}

// Rooted reports whether e is held by a root list
func Rooted(e Element) bool {
	if o, ok := e.(owned); ok {
		return o.base().rooted
	}
	return false
}

// attached reports whether the top element above b is a screen root
func attached(b *Base) bool {
	for b.parent != nil {
		b = b.parent.(owned).base()
	}
	return b.rooted
}

// Parent returns the owner of e, nil when e is a root, detached or not built on Base
func Parent(e Element) Element {
	if o, ok := e.(owned); ok {
		return o.base().parent
	}
	return nil
}

// Find returns the element with id in the forest, depth-first, or nil
func Find(roots []Element, id ID) Element {
	for _, e := range roots {
		if e.ID() == id {
			return e
		}
		if found := Find(e.Children(), id); found != nil {
			return found
		}
	}
	return nil
}
