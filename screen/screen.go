package screen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/lixenwraith/hawktui/element"
	"github.com/lixenwraith/hawktui/event"
	"github.com/lixenwraith/hawktui/render"
	"github.com/lixenwraith/hawktui/terminal"
)

const tracerName = "github.com/lixenwraith/hawktui/screen"

var (
	// ErrSessionInit is returned by New when the driver session cannot be acquired
	ErrSessionInit = errors.New("screen: session init failed")
	// ErrClosed is returned by Run after Close
	ErrClosed = errors.New("screen: closed")
)

// noCopy flags accidental copies in go vet's copylocks check
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// DefaultQuit quits on q and ctrl+c
var DefaultQuit = key.NewBinding(
	key.WithKeys("q", "ctrl+c"),
	key.WithHelp("q", "quit"),
)

// Screen binds one driver session to a root element list and an event bus
type Screen struct {
	noCopy noCopy

	drv      terminal.Driver
	bus      *event.Bus
	renderer *render.Renderer
	tracer   trace.Tracer

	roots   []element.Element
	width   int
	height  int
	running bool
	closed  bool

	ptr   pointer
	mouse MouseEvent
	focus element.ID

	quit      key.Binding
	mouseMode terminal.MouseMode
}

// Option configures a Screen
type Option func(*Screen)

// WithQuit replaces the quit key binding; ctrl+c always quits
func WithQuit(b key.Binding) Option {
	return func(s *Screen) { s.quit = b }
}

// WithMouseMode selects which mouse events the driver reports
func WithMouseMode(mode terminal.MouseMode) Option {
	return func(s *Screen) { s.mouseMode = mode }
}

// WithTracer overrides the tracer taken from the global provider
func WithTracer(t trace.Tracer) Option {
	return func(s *Screen) { s.tracer = t }
}

// WithBus shares an existing event bus
func WithBus(b *event.Bus) Option {
	return func(s *Screen) { s.bus = b }
}

// New acquires the driver session and returns a screen bound to it
// On failure no session is left open
func New(drv terminal.Driver, opts ...Option) (*Screen, error) {
	if drv == nil {
		return nil, fmt.Errorf("%w: nil driver", ErrSessionInit)
	}

	s := &Screen{
		drv:       drv,
		tracer:    otel.Tracer(tracerName),
		quit:      DefaultQuit,
		mouseMode: terminal.MouseModeAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bus == nil {
		s.bus = event.NewBus()
	}
	s.renderer = render.New(drv, render.WithTracer(s.tracer))

	if err := drv.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionInit, err)
	}
	if err := drv.SetMouseMode(s.mouseMode); err != nil {
		drv.Fini()
		return nil, fmt.Errorf("%w: mouse mode: %w", ErrSessionInit, err)
	}
	drv.SetCursorVisible(false)

	s.width, s.height = drv.Size()
	log.Printf("screen: session started %dx%d", s.width, s.height)
	return s, nil
}

// Events returns the bus screen events are dispatched on
func (s *Screen) Events() *event.Bus {
	return s.bus
}

// Size returns the cached viewport dimensions, updated only by resize signals
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// Add appends a root element; later roots paint over earlier ones
func (s *Screen) Add(e element.Element) error {
	if err := element.Root(e); err != nil {
		return err
	}
	s.roots = append(slices.Clip(s.roots), e)
	return nil
}

// Remove detaches a root element by identity
// The element is not destroyed; grabs and focus on it lapse on the next event
func (s *Screen) Remove(e element.Element) bool {
	i := slices.Index(s.roots, e)
	if i < 0 {
		return false
	}
	next := make([]element.Element, 0, len(s.roots)-1)
	next = append(next, s.roots[:i]...)
	s.roots = append(next, s.roots[i+1:]...)
	element.Unroot(e)
	return true
}

// Roots returns the root list in paint order, callers must not modify the slice
func (s *Screen) Roots() []element.Element {
	return s.roots
}

// Focused returns the element receiving typed input, nil if none
func (s *Screen) Focused() element.Element {
	if s.focus == 0 {
		return nil
	}
	return element.Find(s.roots, s.focus)
}

// OnClick subscribes fn to clicks whose target is e
func (s *Screen) OnClick(e element.Element, fn func(*MouseEvent)) event.SubscriptionID {
	id := e.ID()
	return event.Subscribe(s.bus, Click, func(m *MouseEvent) {
		if m.Element != nil && m.Element.ID() == id {
			fn(m)
		}
	})
}

// Render paints the whole tree in one batch
func (s *Screen) Render() {
	s.renderer.Batch(context.Background(), s.roots)
}

// Frames returns the number of committed paints
func (s *Screen) Frames() uint64 {
	return s.renderer.Frames()
}

// Close ends the driver session and restores the terminal. Safe to call multiple times
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.running = false
	s.drv.Fini()
	log.Printf("screen: session closed")
}
