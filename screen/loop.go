package screen

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/lixenwraith/hawktui/terminal"
)

// stopRequest is the interrupt payload posted by Interrupt
type stopRequest struct{}

// Run paints the tree and processes input until a quit key, Stop, Interrupt,
// context cancellation or closed input
// Each cycle blocks for one event, drains every pending event, then paints once;
// a stop request ends the loop after the cycle it arrived in
// A panicking callback closes the session before the panic propagates
func (s *Screen) Run(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}

	defer func() {
		if r := recover(); r != nil {
			s.Close()
			panic(r)
		}
	}()

	stop := context.AfterFunc(ctx, s.Interrupt)
	defer stop()

	s.running = true
	s.renderer.Batch(ctx, s.roots)

	for s.running {
		ev := s.drv.PollEvent()
		cctx, span := s.tracer.Start(ctx, "screen.cycle")

		s.HandleEvent(ev)
		n := 1
		for s.running && s.drv.Pending() {
			s.HandleEvent(s.drv.PollEvent())
			n++
		}
		s.renderer.Batch(cctx, s.roots)

		span.SetAttributes(attribute.Int("hawktui.screen.events", n))
		span.End()
	}

	return ctx.Err()
}

// Stop ends Run after the current dispatch and paint cycle
func (s *Screen) Stop() {
	s.running = false
}

// Running reports whether Run is processing events
func (s *Screen) Running() bool {
	return s.running
}

// Interrupt wakes Run from another goroutine and makes it return
func (s *Screen) Interrupt() {
	if err := s.drv.PostEvent(terminal.Event{Type: terminal.EventInterrupt, Data: stopRequest{}}); err != nil {
		log.Printf("screen: interrupt: %v", err)
	}
}
