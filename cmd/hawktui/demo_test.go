package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hawktui/element"
	"github.com/lixenwraith/hawktui/screen"
	"github.com/lixenwraith/hawktui/terminal"
)

type countingFeedback struct {
	clicks, releases int
}

func (f *countingFeedback) PlayClick()   { f.clicks++ }
func (f *countingFeedback) PlayRelease() { f.releases++ }

func newDemo(t *testing.T, sound feedback) (*demo, *terminal.TcellDriver, tcell.SimulationScreen) {
	t.Helper()
	drv, sim := terminal.NewSimulation(80, 24)
	scr, err := screen.New(drv)
	if err != nil {
		t.Fatalf("screen.New failed: %v", err)
	}
	t.Cleanup(scr.Close)

	d, err := buildDemo(scr, sound)
	if err != nil {
		t.Fatalf("buildDemo failed: %v", err)
	}
	return d, drv, sim
}

func mouse(x, y int, buttons terminal.ButtonMask) terminal.Event {
	return terminal.Event{Type: terminal.EventMouse, MouseX: x, MouseY: y, Buttons: buttons}
}

// TestDemoInitialFrame tests the stats box and quit button placement
func TestDemoInitialFrame(t *testing.T) {
	d, drv, _ := newDemo(t, nil)
	d.scr.Render()
	f := drv.Frame()

	if row := f.Row(2); !strings.Contains(row, "screen 80x24") {
		t.Errorf("Expected stats row to show screen size, got %q", row)
	}
	if row := f.Row(21); !strings.Contains(row, "Quit") {
		t.Errorf("Expected quit label on row 21, got %q", row)
	}
	if got := d.quit.Bounds().Origin(); got != (element.Point{X: 68, Y: 20}) {
		t.Errorf("Expected quit button at (68,20), got %v", got)
	}
	if row := f.Row(23); !strings.HasPrefix(strings.TrimSpace(row), "drag nodes") {
		t.Errorf("Expected help line on last row, got %q", row)
	}
}

// TestDemoMouseStats tests that pointer motion updates the stats text
func TestDemoMouseStats(t *testing.T) {
	d, drv, _ := newDemo(t, nil)

	d.scr.HandleEvent(mouse(10, 15, terminal.ButtonNone))
	d.scr.Render()

	if row := drv.Frame().Row(3); !strings.Contains(row, "mouse  10,15") {
		t.Errorf("Expected pointer position in stats, got %q", row)
	}
}

// TestDemoResize tests that resize moves the quit button and updates the stats
func TestDemoResize(t *testing.T) {
	d, drv, sim := newDemo(t, nil)

	sim.SetSize(100, 30)
	d.scr.HandleEvent(terminal.Event{Type: terminal.EventResize, Width: 100, Height: 30})
	d.scr.Render()

	if got := d.quit.Bounds().Origin(); got != (element.Point{X: 88, Y: 26}) {
		t.Errorf("Expected quit button at (88,26), got %v", got)
	}
	if got := d.help.Bounds().Origin(); got != (element.Point{X: 2, Y: 29}) {
		t.Errorf("Expected help line at (2,29), got %v", got)
	}
	if row := drv.Frame().Row(2); !strings.Contains(row, "screen 100x30") {
		t.Errorf("Expected resized stats, got %q", row)
	}
}

// TestDemoDragNode tests that dragging a node body moves the node and keeps its offset
func TestDemoDragNode(t *testing.T) {
	d, _, _ := newDemo(t, nil)
	alpha := d.nodes[0]

	d.scr.HandleEvent(mouse(5, 8, terminal.ButtonPrimary))
	d.scr.HandleEvent(mouse(7, 9, terminal.ButtonPrimary))
	d.scr.HandleEvent(mouse(7, 9, terminal.ButtonNone))

	if got := alpha.Bounds().Origin(); got != (element.Point{X: 6, Y: 8}) {
		t.Errorf("Expected alpha at (6,8), got %v", got)
	}

	d.scr.HandleEvent(mouse(9, 12, terminal.ButtonNone))
	if got := alpha.Bounds().Origin(); got != (element.Point{X: 6, Y: 8}) {
		t.Errorf("Expected alpha to stay at (6,8) after release, got %v", got)
	}
}

// TestDemoRubberBand tests the temporary line drawn while dragging on empty space
func TestDemoRubberBand(t *testing.T) {
	sound := &countingFeedback{}
	d, drv, _ := newDemo(t, sound)
	roots := len(d.scr.Roots())

	d.scr.HandleEvent(mouse(60, 10, terminal.ButtonPrimary))
	if d.band == nil {
		t.Fatal("Expected rubber band after press on empty space")
	}
	if len(d.scr.Roots()) != roots+1 {
		t.Errorf("Expected %d roots, got %d", roots+1, len(d.scr.Roots()))
	}

	d.scr.HandleEvent(mouse(66, 14, terminal.ButtonPrimary))
	d.scr.Render()
	if c := drv.Frame().Cell(63, 10); c.Rune != '─' {
		t.Errorf("Expected horizontal run at (63,10), got %q", c.Rune)
	}

	band := d.band
	d.scr.HandleEvent(mouse(66, 14, terminal.ButtonNone))
	if d.band != nil {
		t.Error("Expected rubber band cleared after release")
	}
	if len(d.scr.Roots()) != roots {
		t.Errorf("Expected %d roots after release, got %d", roots, len(d.scr.Roots()))
	}
	if !band.Surface().Destroyed() {
		t.Error("Expected rubber band surface destroyed")
	}
	if sound.clicks != 1 || sound.releases != 1 {
		t.Errorf("Expected 1 click and 1 release tone, got %d and %d", sound.clicks, sound.releases)
	}
}

// TestDemoNotesEditing tests focus and typing into the editable notes
func TestDemoNotesEditing(t *testing.T) {
	d, _, _ := newDemo(t, nil)

	d.scr.HandleEvent(mouse(30, 2, terminal.ButtonPrimary))
	d.scr.HandleEvent(mouse(30, 2, terminal.ButtonNone))
	if d.scr.Focused() != element.Element(d.notes) {
		t.Fatalf("Expected notes focused, got %v", d.scr.Focused())
	}

	d.scr.HandleEvent(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: '!'})
	d.scr.HandleEvent(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'})
	if got := d.notes.Text(); got != "type here!q" {
		t.Errorf("Expected %q, got %q", "type here!q", got)
	}
}

// TestDemoQuitButton tests press feedback and that a click stops the running screen
func TestDemoQuitButton(t *testing.T) {
	d, drv, _ := newDemo(t, nil)

	d.scr.HandleEvent(mouse(70, 21, terminal.ButtonPrimary))
	if !d.quit.Pressed() {
		t.Error("Expected quit button pressed")
	}
	d.scr.HandleEvent(mouse(70, 21, terminal.ButtonNone))
	if d.quit.Pressed() {
		t.Error("Expected quit button released")
	}

	for _, ev := range []terminal.Event{
		mouse(70, 21, terminal.ButtonPrimary),
		mouse(70, 21, terminal.ButtonNone),
	} {
		if err := drv.PostEvent(ev); err != nil {
			t.Fatalf("PostEvent failed: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.scr.Run(ctx); err != nil {
		t.Fatalf("Expected clean stop, got %v", err)
	}
	if d.scr.Running() {
		t.Error("Expected screen stopped")
	}
}
