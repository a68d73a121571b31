package element

import (
	"errors"
	"sync/atomic"

	"github.com/lixenwraith/hawktui/terminal"
)

var (
	// ErrOwned is returned when adding an element that already has an owner
	ErrOwned = errors.New("element: already owned")
	// ErrCycle is returned when adding an element would make it its own ancestor
	ErrCycle = errors.New("element: ownership cycle")
	// ErrInvalid is returned for nil children and elements not built on Base
	ErrInvalid = errors.New("element: invalid child")
)

// ID identifies an element for the lifetime of the process
// Used for non-owning references such as the grabbed or focused element
type ID uint64

var lastID atomic.Uint64

func nextID() ID {
	return ID(lastID.Add(1))
}

// Kind is the closed set of element variants
type Kind uint8

const (
	KindBox Kind = iota
	KindText
	KindButton
	KindLine
	KindNode
)

var kindNames = [...]string{
	KindBox:    "box",
	KindText:   "text",
	KindButton: "button",
	KindLine:   "line",
	KindNode:   "node",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Composite reports whether the kind is built from child elements and owns no surface
func (k Kind) Composite() bool {
	return k == KindButton || k == KindNode
}

// Hittable reports whether the kind can be resolved as a pointer target
func (k Kind) Hittable() bool {
	return k == KindBox || k == KindText
}

// Flags is the capability set consulted by pointer and keyboard routing
type Flags uint8

const (
	Draggable Flags = 1 << iota
	Editable
)

// Has reports whether all bits of f are set
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Set returns fl with f added
func (fl Flags) Set(f Flags) Flags {
	return fl | f
}

// Clear returns fl with f removed
func (fl Flags) Clear(f Flags) Flags {
	return fl &^ f
}

// Point is an absolute cell coordinate
type Point struct {
	X, Y int
}

// Rect is an absolute origin and size
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies within [origin, origin+size], inclusive on both ends
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Origin returns the top-left corner
func (r Rect) Origin() Point {
	return Point{r.X, r.Y}
}

// Element is a node of the UI tree
type Element interface {
	ID() ID
	Kind() Kind
	Flags() Flags
	// Children returns owned elements in paint order, callers must not modify the slice
	Children() []Element
	// Surface returns the own drawable surface, nil for composites
	Surface() *terminal.Surface
	Bounds() Rect
	MoveTo(x, y int)
	// Render draws the own visual state and stages the surface, children are rendered by the caller
	Render(s terminal.Stager)
	Destroy()
}

// Editor is implemented by elements that accept typed input while focused
type Editor interface {
	Element
	InsertRune(r rune)
	DeleteBackward()
}
