package screen

import (
	"github.com/lixenwraith/hawktui/element"
	"github.com/lixenwraith/hawktui/event"
	"github.com/lixenwraith/hawktui/terminal"
)

// ResizeEvent carries the viewport size after a resize signal
type ResizeEvent struct {
	Width, Height int
}

// MouseEvent is the pointer payload shared by one press/release sequence
// The same instance is dispatched for every mouse event; Element stays
// attached from mousedown through click and is cleared afterwards
type MouseEvent struct {
	X, Y    int
	Buttons terminal.ButtonMask

	// Element is the grabbed target: the nearest composite owning the hit, or the hit itself
	Element element.Element
	// Leaf is the primitive the pointer actually hit
	Leaf element.Element
}

// KeyEvent is the payload of KeyPress
type KeyEvent struct {
	Key       terminal.Key
	Rune      rune
	Modifiers terminal.Modifier

	// Handled stops focus editing and the quit binding; ctrl+c still quits
	Handled bool
}

// String returns the key name, e.g. "q", "ctrl+c", "shift+tab"
func (k KeyEvent) String() string {
	return terminal.KeyName(terminal.Event{
		Type:      terminal.EventKey,
		Key:       k.Key,
		Rune:      k.Rune,
		Modifiers: k.Modifiers,
	})
}

// Event keys dispatched by Screen
var (
	Resize    = event.NewKey[ResizeEvent]("resize")
	MouseMove = event.NewKey[MouseEvent]("mousemove")
	MouseDown = event.NewKey[MouseEvent]("mousedown")
	MouseUp   = event.NewKey[MouseEvent]("mouseup")
	Click     = event.NewKey[MouseEvent]("click")
	KeyPress  = event.NewKey[KeyEvent]("keypress")
)
