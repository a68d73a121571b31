package main

import (
	"fmt"

	"github.com/lixenwraith/hawktui/element"
	"github.com/lixenwraith/hawktui/event"
	"github.com/lixenwraith/hawktui/screen"
	"github.com/lixenwraith/hawktui/terminal"
)

const (
	quitWidth  = 10
	quitHeight = 3
	helpText   = "drag nodes to move them, drag on empty space to stretch a line, click Quit or press q"
)

// feedback is the audible press/release hook, satisfied by *audio.Feedback
type feedback interface {
	PlayClick()
	PlayRelease()
}

// demo is the element tree of the demo application and its event wiring
type demo struct {
	scr   *screen.Screen
	sound feedback

	stats     *element.Node
	statsText *element.Text
	quit      *element.Button
	notes     *element.Text
	help      *element.Text
	nodes     []*element.Node

	band     *element.Line
	bandFrom element.Point

	width, height int
	mouseX        int
	mouseY        int
}

// buildDemo adds the demo tree to scr and subscribes its handlers
// sound may be nil
func buildDemo(scr *screen.Screen, sound feedback) (*demo, error) {
	d := &demo{scr: scr, sound: sound}
	d.width, d.height = scr.Size()

	d.stats = element.NewNode("stats", 2, 1, 24, 4)
	d.statsText = element.NewText("", 4, 2)
	if err := d.stats.Add(d.statsText); err != nil {
		return nil, err
	}

	notesBox := element.NewBox(28, 1, 30, 4)
	d.notes = element.NewText("type here", 30, 2, element.WithFlags(element.Editable))
	if err := notesBox.Add(d.notes); err != nil {
		return nil, err
	}

	alpha := element.NewNode("alpha", 4, 7, 14, 4)
	beta := element.NewNode("beta", 32, 7, 14, 4)
	gamma := element.NewNode("gamma", 18, 13, 14, 4)
	alpha.Link(beta)
	beta.Link(gamma)
	d.nodes = []*element.Node{alpha, beta, gamma}

	d.quit = element.NewButton("Quit", 0, 0, quitWidth, quitHeight)
	d.help = element.NewText(helpText, 2, 0, element.WithAttr(terminal.AttrDim))
	d.layout()

	for _, e := range []element.Element{d.help, notesBox, alpha, beta, gamma, d.stats, d.quit} {
		if err := scr.Add(e); err != nil {
			return nil, fmt.Errorf("demo: add %s: %w", e.Kind(), err)
		}
	}

	bus := scr.Events()
	event.Subscribe(bus, screen.Resize, d.onResize)
	event.Subscribe(bus, screen.MouseMove, d.onMouseMove)
	event.Subscribe(bus, screen.MouseDown, d.onMouseDown)
	event.Subscribe(bus, screen.MouseUp, d.onMouseUp)
	scr.OnClick(d.quit, func(*screen.MouseEvent) { scr.Stop() })

	d.updateStats()
	return d, nil
}

// layout pins the quit button and help line to the bottom of the viewport
func (d *demo) layout() {
	d.quit.MoveTo(max(0, d.width-quitWidth-2), max(0, d.height-quitHeight-1))
	d.help.MoveTo(2, max(0, d.height-1))
}

func (d *demo) updateStats() {
	d.statsText.SetText(fmt.Sprintf("screen %dx%d\nmouse  %d,%d", d.width, d.height, d.mouseX, d.mouseY))
}

func (d *demo) onResize(ev *screen.ResizeEvent) {
	d.width, d.height = ev.Width, ev.Height
	d.layout()
	d.updateStats()
}

func (d *demo) onMouseMove(ev *screen.MouseEvent) {
	d.mouseX, d.mouseY = ev.X, ev.Y
	d.updateStats()
	if d.band != nil {
		d.band.SetEnds(d.bandFrom, element.Point{X: ev.X, Y: ev.Y})
	}
}

func (d *demo) onMouseDown(ev *screen.MouseEvent) {
	if d.sound != nil {
		d.sound.PlayClick()
	}

	switch ev.Element {
	case nil:
		d.bandFrom = element.Point{X: ev.X, Y: ev.Y}
		d.band = element.NewLine(d.bandFrom, d.bandFrom, element.WithAttr(terminal.AttrDim))
		if err := d.scr.Add(d.band); err != nil {
			d.band = nil
		}
	case d.quit:
		d.quit.SetPressed(true)
	}
}

func (d *demo) onMouseUp(*screen.MouseEvent) {
	if d.sound != nil {
		d.sound.PlayRelease()
	}

	d.quit.SetPressed(false)
	if d.band != nil {
		d.scr.Remove(d.band)
		d.band.Destroy()
		d.band = nil
	}
}
