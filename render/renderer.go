package render

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lixenwraith/hawktui/element"
	"github.com/lixenwraith/hawktui/terminal"
)

const tracerName = "github.com/lixenwraith/hawktui/render"

// Renderer paints the element tree through a driver, one commit per batch
type Renderer struct {
	drv    terminal.Driver
	tracer trace.Tracer
	frames uint64
}

// Option configures a Renderer
type Option func(*Renderer)

// WithTracer overrides the tracer taken from the global provider
func WithTracer(t trace.Tracer) Option {
	return func(r *Renderer) { r.tracer = t }
}

// New creates a renderer for the driver
func New(drv terminal.Driver, opts ...Option) *Renderer {
	r := &Renderer{
		drv:    drv,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderTree renders every element post-order and returns the number visited
// Surfaces are staged, nothing reaches the physical screen until Commit
func (r *Renderer) RenderTree(roots []element.Element) int {
	n := 0
	Walk(roots, func(e element.Element) {
		e.Render(r.drv)
		n++
	})
	return n
}

// Batch executes the render pipeline: begin frame, render tree, commit once
func (r *Renderer) Batch(ctx context.Context, roots []element.Element) {
	_, span := r.tracer.Start(ctx, "render.Batch")
	defer span.End()

	r.drv.BeginFrame()
	n := r.RenderTree(roots)
	r.drv.Commit()

	r.frames++
	span.SetAttributes(
		attribute.Int("hawktui.render.elements", n),
		attribute.Int64("hawktui.render.frame", int64(r.frames)),
	)
}

// Frames returns the number of committed batches
func (r *Renderer) Frames() uint64 {
	return r.frames
}
