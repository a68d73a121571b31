package terminal

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// TcellDriver implements Driver using a tcell screen
type TcellDriver struct {
	screen tcell.Screen
	frame  *Frame

	mu            sync.Mutex
	mouseMode     MouseMode
	cursorVisible bool
	initialized   bool
	finalized     bool

	// Simulation screens start at tcell's default size, resized after Init
	simW, simH int
}

// NewTcell creates a driver on the controlling terminal
// Returns ErrNotTerminal when stdin is not a terminal
func NewTcell() (*TcellDriver, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return newTcellDriver(s), nil
}

// NewSimulation creates a driver over tcell's simulation screen sized w x h
// The returned SimulationScreen injects input and exposes the committed cells
func NewSimulation(w, h int) (*TcellDriver, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	d := newTcellDriver(sim)
	d.simW, d.simH = w, h
	return d, sim
}

func newTcellDriver(s tcell.Screen) *TcellDriver {
	return &TcellDriver{
		screen:    s,
		frame:     NewFrame(0, 0),
		mouseMode: MouseModeAll,
	}
}

// Init enters raw mode, enables mouse reporting, hides cursor
func (d *TcellDriver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}

	if sim, ok := d.screen.(tcell.SimulationScreen); ok && d.simW > 0 {
		sim.SetSize(d.simW, d.simH)
	}

	d.screen.SetStyle(tcell.StyleDefault)
	d.screen.Clear()
	d.applyMouseMode()
	d.applyCursor()

	w, h := d.screen.Size()
	d.frame.Resize(w, h)

	d.initialized = true
	markSessionActive(true)
	return nil
}

// Fini restores terminal state
func (d *TcellDriver) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.finalized {
		return
	}

	// Disable mouse before other cleanup
	d.screen.DisableMouse()
	d.screen.Fini()

	d.finalized = true
	markSessionActive(false)
}

// Size returns current terminal dimensions
func (d *TcellDriver) Size() (int, int) {
	return d.screen.Size()
}

// BeginFrame clears the frame, resizing it if the viewport changed
func (d *TcellDriver) BeginFrame() {
	w, h := d.screen.Size()
	if fw, fh := d.frame.Size(); fw != w || fh != h {
		d.frame.Resize(w, h)
		return
	}
	d.frame.Clear()
}

// Stage composites a surface into the pending frame
func (d *TcellDriver) Stage(s *Surface) {
	d.frame.Stage(s)
}

// Commit writes the frame to tcell's back buffer and shows it
// tcell diffs against the front buffer, so unchanged cells are not re-sent
func (d *TcellDriver) Commit() {
	if !d.initialized || d.finalized {
		return
	}

	w, h := d.frame.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := d.frame.Cell(x, y)
			r := c.Rune
			if r == 0 {
				// Left to the wide glyph drawn in the previous column
				if d.frame.Covered(x, y) {
					continue
				}
				r = ' '
			}
			d.screen.SetContent(x, y, r, nil, styleFor(c.Attrs))
		}
	}
	d.screen.Show()
}

// Frame exposes the last composed frame
func (d *TcellDriver) Frame() *Frame {
	return d.frame
}

// PollEvent blocks until next input event
// Events without a hawktui equivalent (focus, paste markers) are skipped
func (d *TcellDriver) PollEvent() Event {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out, ok := convertEvent(ev); ok {
			return out
		}
	}
}

// Pending reports whether an event is queued
func (d *TcellDriver) Pending() bool {
	return d.screen.HasPendingEvent()
}

// PostEvent injects a synthetic event, wrapped in a tcell interrupt
func (d *TcellDriver) PostEvent(ev Event) error {
	return d.screen.PostEvent(tcell.NewEventInterrupt(ev))
}

// SetMouseMode enables or disables mouse mode
func (d *TcellDriver) SetMouseMode(mode MouseMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.mouseMode = mode
	if d.initialized && !d.finalized {
		d.applyMouseMode()
	}
	return nil
}

// SetCursorVisible shows/hides cursor
func (d *TcellDriver) SetCursorVisible(visible bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cursorVisible = visible
	if d.initialized && !d.finalized {
		d.applyCursor()
	}
}

func (d *TcellDriver) applyMouseMode() {
	markMouse(d.mouseMode)
	if d.mouseMode == MouseModeNone {
		d.screen.DisableMouse()
		return
	}
	var flags []tcell.MouseFlags
	if d.mouseMode&MouseModeClick != 0 {
		flags = append(flags, tcell.MouseButtonEvents)
	}
	if d.mouseMode&MouseModeDrag != 0 {
		flags = append(flags, tcell.MouseDragEvents)
	}
	if d.mouseMode&MouseModeMotion != 0 {
		flags = append(flags, tcell.MouseMotionEvents)
	}
	d.screen.EnableMouse(flags...)
}

func (d *TcellDriver) applyCursor() {
	markCursorHidden(!d.cursorVisible)
	if d.cursorVisible {
		d.screen.ShowCursor(0, 0)
		return
	}
	d.screen.HideCursor()
}

// styleFor converts Attr to a tcell style on the default colors
func styleFor(a Attr) tcell.Style {
	st := tcell.StyleDefault
	if a == AttrNone {
		return st
	}
	return st.
		Bold(a&AttrBold != 0).
		Dim(a&AttrDim != 0).
		Italic(a&AttrItalic != 0).
		Underline(a&AttrUnderline != 0).
		Blink(a&AttrBlink != 0).
		Reverse(a&AttrReverse != 0)
}
