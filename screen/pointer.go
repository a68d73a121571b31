package screen

import (
	"log"

	"github.com/lixenwraith/hawktui/element"
	"github.com/lixenwraith/hawktui/event"
	"github.com/lixenwraith/hawktui/terminal"
)

// pointer is the state of one press/release sequence
// Elements are held by ID and re-resolved on every event
type pointer struct {
	pos     element.Point
	grab    element.ID
	leaf    element.ID
	offset  element.Point
	buttons terminal.ButtonMask
}

func (p *pointer) release() {
	p.grab = 0
	p.leaf = 0
	p.offset = element.Point{}
}

// HitTest returns the first hittable primitive containing p, depth-first in
// root order with children before their parent, and the element that owns
// the hit: its nearest composite ancestor, or the primitive itself
func (s *Screen) HitTest(p element.Point) (leaf, owner element.Element) {
	for _, r := range s.roots {
		if leaf, owner = hit(r, nil, p); leaf != nil {
			return leaf, owner
		}
	}
	return nil, nil
}

func hit(e, owner element.Element, p element.Point) (element.Element, element.Element) {
	if e.Kind().Composite() {
		owner = e
	}
	for _, c := range e.Children() {
		if leaf, o := hit(c, owner, p); leaf != nil {
			return leaf, o
		}
	}
	if !e.Kind().Hittable() {
		return nil, nil
	}
	if sf := e.Surface(); sf == nil || sf.Destroyed() || !e.Bounds().Contains(p) {
		return nil, nil
	}
	if owner == nil {
		owner = e
	}
	return e, owner
}

// handleMouse runs one mouse record through the pointer state machine:
// mousemove, drag, then press or release edges of the primary button
func (s *Screen) handleMouse(ev terminal.Event) {
	p := &s.ptr
	p.pos = element.Point{X: ev.MouseX, Y: ev.MouseY}
	pressed := ev.Buttons.Has(terminal.ButtonPrimary) && !p.buttons.Has(terminal.ButtonPrimary)
	released := !ev.Buttons.Has(terminal.ButtonPrimary) && p.buttons.Has(terminal.ButtonPrimary)
	p.buttons = ev.Buttons

	m := &s.mouse
	m.X, m.Y, m.Buttons = p.pos.X, p.pos.Y, ev.Buttons
	s.resolveGrab()

	event.Dispatch(s.bus, MouseMove, m)

	if m.Element != nil && m.Element.Flags().Has(element.Draggable) {
		m.Element.MoveTo(p.pos.X-p.offset.X, p.pos.Y-p.offset.Y)
	}

	if pressed {
		s.press()
	}
	if released {
		event.Dispatch(s.bus, MouseUp, m)
		event.Dispatch(s.bus, Click, m)
		m.Element, m.Leaf = nil, nil
		p.release()
	}
}

// resolveGrab attaches the grabbed element to the payload, dropping grabs that left the tree
func (s *Screen) resolveGrab() {
	p := &s.ptr
	m := &s.mouse
	if p.grab == 0 {
		m.Element, m.Leaf = nil, nil
		return
	}
	m.Element = element.Find(s.roots, p.grab)
	m.Leaf = element.Find(s.roots, p.leaf)
	if m.Element == nil {
		log.Printf("screen: grabbed element %d left the tree, grab dropped", p.grab)
		m.Leaf = nil
		p.release()
	}
}

func (s *Screen) press() {
	p := &s.ptr
	m := &s.mouse

	leaf, owner := s.HitTest(p.pos)
	if leaf != nil {
		origin := owner.Bounds().Origin()
		p.grab, p.leaf = owner.ID(), leaf.ID()
		p.offset = element.Point{X: p.pos.X - origin.X, Y: p.pos.Y - origin.Y}
		m.Element, m.Leaf = owner, leaf
	}
	s.setFocus(owner, leaf)

	event.Dispatch(s.bus, MouseDown, m)
}

// setFocus gives keyboard focus to the first editable of owner and leaf, or clears it
func (s *Screen) setFocus(candidates ...element.Element) {
	s.focus = 0
	for _, e := range candidates {
		if e == nil || !e.Flags().Has(element.Editable) {
			continue
		}
		if _, ok := e.(element.Editor); ok {
			s.focus = e.ID()
			return
		}
	}
}
