package terminal

import "errors"

// ErrNotTerminal is returned when the process is not attached to a terminal
var ErrNotTerminal = errors.New("terminal: not a terminal")

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Cell represents a single terminal cell
// Rune 0 marks a transparent cell that is skipped when staged
type Cell struct {
	Rune  rune
	Attrs Attr
}

// Stager accepts surfaces for the frame being built
type Stager interface {
	// Stage copies the surface's visible cells into the pending frame
	// Destroyed surfaces are ignored
	Stage(s *Surface)
}

// Driver is the capability set consumed from the display driver
type Driver interface {
	Stager

	// Init acquires the session: raw mode, mouse reporting, hidden cursor
	Init() error

	// Fini restores the terminal's prior modes. Safe to call multiple times
	Fini()

	// Size returns current viewport dimensions
	Size() (width, height int)

	// BeginFrame prepares an empty frame for staging
	BeginFrame()

	// Commit writes the staged frame to the physical screen
	Commit()

	// PollEvent blocks until the next input event
	PollEvent() Event

	// Pending reports whether PollEvent would return without blocking
	Pending() bool

	// PostEvent injects a synthetic event; safe from any goroutine
	PostEvent(ev Event) error

	// SetMouseMode selects which mouse events are reported
	SetMouseMode(mode MouseMode) error

	// SetCursorVisible shows/hides cursor
	SetCursorVisible(visible bool)
}
