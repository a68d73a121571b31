package element

import "github.com/lixenwraith/hawktui/terminal"

// Button is a Box with a centred Text label
// Pointer hits on either part resolve to the Button
type Button struct {
	Base
	box     *Box
	label   *Text
	attr    terminal.Attr
	pressed bool
}

// NewButton creates a button whose box is at (x, y) sized w by h
func NewButton(label string, x, y, w, h int, opts ...Option) *Button {
	o := buildOptions(opts)
	b := &Button{attr: o.attr}
	b.init(b, KindButton, o.flags, nil)

	b.box = NewBox(x, y, w, h, WithLine(o.line), WithAttr(o.attr))
	b.label = NewText(label, x, y, WithAttr(o.attr))
	mustAdd(&b.Base, b.box)
	mustAdd(&b.Base, b.label)
	b.center()
	return b
}

// Label returns the button caption
func (b *Button) Label() string {
	return b.label.Text()
}

// SetLabel replaces the caption and re-centres it
func (b *Button) SetLabel(s string) {
	b.label.SetText(s)
	b.center()
}

// Pressed reports the visual pressed state
func (b *Button) Pressed() bool {
	return b.pressed
}

// SetPressed toggles reverse video on the caption
func (b *Button) SetPressed(pressed bool) {
	b.pressed = pressed
	attr := b.attr
	if pressed {
		attr |= terminal.AttrReverse
	}
	b.label.SetAttr(attr)
}

func (b *Button) center() {
	r := b.box.Bounds()
	lr := b.label.Bounds()
	b.label.MoveTo(r.X+max(0, (r.W-lr.W)/2), r.Y+max(0, (r.H-lr.H)/2))
}

// Render is a no-op, the box and label render themselves
func (b *Button) Render(terminal.Stager) {}

// mustAdd owns a freshly constructed child, which cannot fail
func mustAdd(b *Base, child Element) {
	if err := b.Add(child); err != nil {
		panic(err)
	}
}
