package render

import (
	"context"
	"slices"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/lixenwraith/hawktui/element"
	"github.com/lixenwraith/hawktui/terminal"
)

// recordingDriver logs the call sequence and composes into a frame
type recordingDriver struct {
	calls []string
	frame *terminal.Frame
}

func newRecordingDriver(w, h int) *recordingDriver {
	return &recordingDriver{frame: terminal.NewFrame(w, h)}
}

func (d *recordingDriver) Init() error { return nil }
func (d *recordingDriver) Fini() {}
func (d *recordingDriver) Size() (int, int) {
	return d.frame.Size()
}
func (d *recordingDriver) BeginFrame() {
	d.calls = append(d.calls, "begin")
	d.frame.Clear()
}
func (d *recordingDriver) Stage(s *terminal.Surface) {
	d.calls = append(d.calls, "stage")
	d.frame.Stage(s)
}
func (d *recordingDriver) Commit() { d.calls = append(d.calls, "commit") }
func (d *recordingDriver) PollEvent() terminal.Event { return terminal.Event{Type: terminal.EventClosed} }
func (d *recordingDriver) Pending() bool { return false }
func (d *recordingDriver) PostEvent(terminal.Event) error { return nil }
func (d *recordingDriver) SetMouseMode(terminal.MouseMode) error { return nil }
func (d *recordingDriver) SetCursorVisible(bool) {}

// TestWalkPostOrder tests that every node is visited once and children precede parents
func TestWalkPostOrder(t *testing.T) {
	outer := element.NewBox(0, 0, 20, 10)
	inner := element.NewBox(1, 1, 8, 4)
	leaf := element.NewText("leaf", 2, 2)
	button := element.NewButton("ok", 10, 1, 6, 3)
	node := element.NewNode("n", 0, 12, 6, 3)

	if err := inner.Add(leaf); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := outer.Add(inner); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := outer.Add(button); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	roots := []element.Element{outer, node}

	var order []element.ID
	pos := make(map[element.ID]int)
	Walk(roots, func(e element.Element) {
		if _, dup := pos[e.ID()]; dup {
			t.Errorf("Element %d visited twice", e.ID())
		}
		pos[e.ID()] = len(order)
		order = append(order, e.ID())
	})

	// outer, inner, leaf, button with box and label, node with box and title
	if len(order) != 9 {
		t.Errorf("Expected 9 visits, got %d", len(order))
	}

	var check func(e element.Element)
	check = func(e element.Element) {
		for _, c := range e.Children() {
			if pos[c.ID()] >= pos[e.ID()] {
				t.Errorf("Child %v visited after parent %v", c.Kind(), e.Kind())
			}
			check(c)
		}
	}
	for _, r := range roots {
		check(r)
	}

	if order[len(order)-1] != node.ID() {
		t.Error("Expected last root visited last")
	}
	if pos[outer.ID()] >= pos[node.ID()] {
		t.Error("Expected roots visited in list order")
	}
}

// TestBatchCommitsOnce tests the begin, stage, commit sequence
func TestBatchCommitsOnce(t *testing.T) {
	d := newRecordingDriver(20, 6)
	r := New(d)

	roots := []element.Element{
		element.NewBox(0, 0, 4, 3),
		element.NewButton("b", 5, 0, 5, 3),
		element.NewText("t", 12, 0),
	}
	r.Batch(context.Background(), roots)

	// Box, button box, button label, text; composites stage nothing
	want := []string{"begin", "stage", "stage", "stage", "stage", "commit"}
	if !slices.Equal(d.calls, want) {
		t.Errorf("Expected %v, got %v", want, d.calls)
	}
	if r.Frames() != 1 {
		t.Errorf("Expected 1 frame, got %d", r.Frames())
	}

	d.calls = nil
	r.Batch(context.Background(), nil)
	if want := []string{"begin", "commit"}; !slices.Equal(d.calls, want) {
		t.Errorf("Expected %v for empty tree, got %v", want, d.calls)
	}
}

// TestBatchComposition tests that a border painted after its content keeps the content visible
func TestBatchComposition(t *testing.T) {
	d := newRecordingDriver(8, 3)
	r := New(d)

	box := element.NewBox(0, 0, 8, 3)
	if err := box.Add(element.NewText("inner", 1, 1)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	r.Batch(context.Background(), []element.Element{box})

	if got := d.frame.Row(1); got != "│inner │" {
		t.Errorf("Expected %q, got %q", "│inner │", got)
	}
}

// TestBatchSpan tests that each batch records one span with frame attributes
func TestBatchSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer tp.Shutdown(context.Background())

	r := New(newRecordingDriver(4, 4), WithTracer(tp.Tracer("test")))
	r.Batch(context.Background(), []element.Element{element.NewBox(0, 0, 2, 2)})
	r.Batch(context.Background(), nil)

	spans := rec.Ended()
	if len(spans) != 2 {
		t.Fatalf("Expected 2 spans, got %d", len(spans))
	}
	if spans[0].Name() != "render.Batch" {
		t.Errorf("Expected span render.Batch, got %q", spans[0].Name())
	}

	found := false
	for _, kv := range spans[0].Attributes() {
		if string(kv.Key) == "hawktui.render.elements" {
			found = true
			if kv.Value.AsInt64() != 1 {
				t.Errorf("Expected 1 element, got %d", kv.Value.AsInt64())
			}
		}
	}
	if !found {
		t.Error("Expected element count attribute")
	}
}
