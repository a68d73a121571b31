package element

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/hawktui/terminal"
)

// Text is a multi-line label whose surface tracks the display width of its content
type Text struct {
	Base
	lines []string
	attr  terminal.Attr
}

// NewText creates a label with its top-left corner at (x, y)
func NewText(s string, x, y int, opts ...Option) *Text {
	o := buildOptions(opts)
	t := &Text{attr: o.attr}
	t.init(t, KindText, o.flags, terminal.NewSurface(x, y, 1, 1))
	t.SetText(s)
	return t
}

// Text returns the content with lines joined by newlines
func (t *Text) Text() string {
	return strings.Join(t.lines, "\n")
}

// SetText replaces the content and resizes the surface
func (t *Text) SetText(s string) {
	t.lines = strings.Split(s, "\n")
	t.fit()
}

// SetAttr changes the drawing attributes
func (t *Text) SetAttr(attr terminal.Attr) {
	t.attr = attr
}

// Attr returns the drawing attributes
func (t *Text) Attr() terminal.Attr {
	return t.attr
}

// InsertRune appends r at the end of the content, newline starts a new line
func (t *Text) InsertRune(r rune) {
	if r == '\n' {
		t.lines = append(t.lines, "")
	} else {
		t.lines[len(t.lines)-1] += string(r)
	}
	t.fit()
}

// DeleteBackward removes the last rune, joining lines when the last one is empty
func (t *Text) DeleteBackward() {
	last := len(t.lines) - 1
	if t.lines[last] == "" {
		if last > 0 {
			t.lines = t.lines[:last]
			t.fit()
		}
		return
	}
	_, size := utf8.DecodeLastRuneInString(t.lines[last])
	t.lines[last] = t.lines[last][:len(t.lines[last])-size]
	t.fit()
}

// fit sizes the surface to the widest line and the line count
func (t *Text) fit() {
	w := 1
	for _, line := range t.lines {
		w = max(w, runewidth.StringWidth(line))
	}
	t.surface.Resize(w, len(t.lines))
}

func (t *Text) Render(s terminal.Stager) {
	t.surface.Clear()
	for y, line := range t.lines {
		col := 0
		for _, r := range line {
			rw := runewidth.RuneWidth(r)
			if rw == 0 {
				continue
			}
			t.surface.Set(col, y, r, t.attr)
			col += rw
		}
	}
	t.stage(s)
}
