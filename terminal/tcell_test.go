package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// pollUntil returns the next event of type want, skipping others (e.g. the initial resize)
func pollUntil(t *testing.T, d *TcellDriver, want EventType) Event {
	t.Helper()
	for i := 0; i < 8; i++ {
		ev := d.PollEvent()
		if ev.Type == want {
			return ev
		}
	}
	t.Fatalf("Expected event type %d, not received", want)
	return Event{}
}

func newSimDriver(t *testing.T, w, h int) (*TcellDriver, tcell.SimulationScreen) {
	t.Helper()
	d, sim := NewSimulation(w, h)
	if err := d.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(d.Fini)
	return d, sim
}

// TestSimulationSize tests that the simulation driver reports the requested size
func TestSimulationSize(t *testing.T) {
	d, _ := newSimDriver(t, 40, 12)

	w, h := d.Size()
	if w != 40 || h != 12 {
		t.Errorf("Expected 40x12, got %dx%d", w, h)
	}
}

// TestSimulationCommit tests that staged surfaces reach the screen on Commit
func TestSimulationCommit(t *testing.T) {
	d, sim := newSimDriver(t, 10, 4)

	s := NewSurface(1, 1, 4, 3)
	s.Border(LineSingle, AttrNone)
	s.Text(1, 1, "ok", AttrBold)

	d.BeginFrame()
	d.Stage(s)
	d.Commit()

	cells, w, _ := sim.GetContents()
	at := func(x, y int) rune {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			return 0
		}
		return c.Runes[0]
	}

	if got := at(1, 1); got != '┌' {
		t.Errorf("Expected top-left corner, got %q", got)
	}
	if got := at(2, 2); got != 'o' {
		t.Errorf("Expected 'o', got %q", got)
	}
	if got := at(0, 0); got != ' ' {
		t.Errorf("Expected blank outside surface, got %q", got)
	}

	_, _, style, _ := sim.GetContent(2, 2)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute on text cell")
	}
}

// TestSimulationBeginFrameClears tests that a moved surface leaves no trail
func TestSimulationBeginFrameClears(t *testing.T) {
	d, _ := newSimDriver(t, 6, 1)

	s := NewSurface(0, 0, 1, 1)
	s.Set(0, 0, '@', AttrNone)

	d.BeginFrame()
	d.Stage(s)
	d.Commit()

	s.Move(3, 0)
	d.BeginFrame()
	d.Stage(s)
	d.Commit()

	if got := d.Frame().Row(0); got != "   @  " {
		t.Errorf("Expected %q, got %q", "   @  ", got)
	}
}

// TestSimulationMouseEvent tests tcell mouse translation
func TestSimulationMouseEvent(t *testing.T) {
	d, sim := newSimDriver(t, 20, 10)

	sim.InjectMouse(6, 3, tcell.Button1, tcell.ModNone)
	ev := pollUntil(t, d, EventMouse)

	if ev.MouseX != 6 || ev.MouseY != 3 {
		t.Errorf("Expected (6,3), got (%d,%d)", ev.MouseX, ev.MouseY)
	}
	if !ev.Buttons.Has(ButtonPrimary) {
		t.Errorf("Expected primary button, got %v", ev.Buttons)
	}

	sim.InjectMouse(7, 3, tcell.ButtonNone, tcell.ModNone)
	ev = pollUntil(t, d, EventMouse)
	if ev.Buttons != ButtonNone {
		t.Errorf("Expected no buttons on release, got %v", ev.Buttons)
	}
}

// TestSimulationKeyEvent tests tcell key translation
func TestSimulationKeyEvent(t *testing.T) {
	d, sim := newSimDriver(t, 20, 10)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ev := pollUntil(t, d, EventKey)
	if ev.Key != KeyRune || ev.Rune != 'q' {
		t.Errorf("Expected rune 'q', got key=%v rune=%q", ev.Key, ev.Rune)
	}

	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	ev = pollUntil(t, d, EventKey)
	if KeyName(ev) != "ctrl+c" {
		t.Errorf("Expected ctrl+c, got %q", KeyName(ev))
	}

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	ev = pollUntil(t, d, EventKey)
	if ev.Key != KeyEnter {
		t.Errorf("Expected KeyEnter, got %v", ev.Key)
	}
}

// TestSimulationPostEvent tests that posted events round-trip through PollEvent
func TestSimulationPostEvent(t *testing.T) {
	d, _ := newSimDriver(t, 20, 10)

	if err := d.PostEvent(Event{Type: EventInterrupt, Data: "wake"}); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
	ev := pollUntil(t, d, EventInterrupt)
	if ev.Data != "wake" {
		t.Errorf("Expected data %q, got %v", "wake", ev.Data)
	}
}

// TestFiniIdempotent tests that Fini may be called repeatedly
func TestFiniIdempotent(t *testing.T) {
	d, _ := NewSimulation(10, 5)
	if err := d.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	d.Fini()
	d.Fini()

	// Commit after Fini is ignored
	d.BeginFrame()
	d.Commit()
}

// TestSimulationWideRune tests that a wide rune and the cell after its trailing column survive commit
func TestSimulationWideRune(t *testing.T) {
	d, sim := newSimDriver(t, 6, 1)

	s := NewSurface(0, 0, 3, 1)
	s.Set(0, 0, '日', AttrNone)
	s.Set(2, 0, 'x', AttrNone)

	d.BeginFrame()
	d.Stage(s)
	d.Commit()

	cells, _, _ := sim.GetContents()
	if len(cells[0].Runes) == 0 || cells[0].Runes[0] != '日' {
		t.Errorf("Expected '日' at column 0, got %v", cells[0].Runes)
	}
	if len(cells[2].Runes) == 0 || cells[2].Runes[0] != 'x' {
		t.Errorf("Expected 'x' at column 2, got %v", cells[2].Runes)
	}
}
