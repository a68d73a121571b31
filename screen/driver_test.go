package screen

import (
	"errors"
	"sync"

	"github.com/lixenwraith/hawktui/terminal"
)

// fakeDriver is a scripted terminal.Driver
// Queued events are returned by PollEvent in order; PollEvent blocks when the queue is empty
type fakeDriver struct {
	mu     sync.Mutex
	w, h   int
	events chan terminal.Event
	frame  *terminal.Frame

	initErr  error
	mouseErr error

	inits     int
	finis     int
	commits   int
	mouseMode terminal.MouseMode
	cursor    bool

	// onCommit runs after each commit with the commit count
	onCommit func(n int)
}

func newFakeDriver(w, h int) *fakeDriver {
	return &fakeDriver{
		w:      w,
		h:      h,
		events: make(chan terminal.Event, 256),
		frame:  terminal.NewFrame(w, h),
		cursor: true,
	}
}

func (d *fakeDriver) Init() error {
	d.inits++
	return d.initErr
}

func (d *fakeDriver) Fini() {
	d.finis++
}

func (d *fakeDriver) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.w, d.h
}

func (d *fakeDriver) setSize(w, h int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.w, d.h = w, h
}

func (d *fakeDriver) BeginFrame() {
	w, h := d.Size()
	d.frame.Resize(w, h)
}

func (d *fakeDriver) Stage(s *terminal.Surface) {
	d.frame.Stage(s)
}

func (d *fakeDriver) Commit() {
	d.commits++
	if d.onCommit != nil {
		d.onCommit(d.commits)
	}
}

func (d *fakeDriver) PollEvent() terminal.Event {
	return <-d.events
}

func (d *fakeDriver) Pending() bool {
	return len(d.events) > 0
}

func (d *fakeDriver) PostEvent(ev terminal.Event) error {
	select {
	case d.events <- ev:
		return nil
	default:
		return errors.New("event queue full")
	}
}

func (d *fakeDriver) SetMouseMode(mode terminal.MouseMode) error {
	d.mouseMode = mode
	return d.mouseErr
}

func (d *fakeDriver) SetCursorVisible(visible bool) {
	d.cursor = visible
}

// push queues events for PollEvent
func (d *fakeDriver) push(evs ...terminal.Event) {
	for _, ev := range evs {
		d.events <- ev
	}
}

func mouseAt(x, y int, buttons terminal.ButtonMask) terminal.Event {
	return terminal.Event{Type: terminal.EventMouse, MouseX: x, MouseY: y, Buttons: buttons}
}

func runeKey(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func specialKey(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

// click queues a primary press and release at (x, y)
func click(x, y int) []terminal.Event {
	return []terminal.Event{
		mouseAt(x, y, terminal.ButtonPrimary),
		mouseAt(x, y, terminal.ButtonNone),
	}
}
