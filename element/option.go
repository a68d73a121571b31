package element

import "github.com/lixenwraith/hawktui/terminal"

// Option configures an element at construction
type Option func(*options)

type options struct {
	flags  Flags
	line   terminal.LineType
	attr   terminal.Attr
	filled bool
}

func buildOptions(opts []Option) options {
	o := options{line: terminal.LineSingle}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFlags adds capability flags
func WithFlags(f Flags) Option {
	return func(o *options) { o.flags = o.flags.Set(f) }
}

// WithLine sets the border or connector line style
func WithLine(line terminal.LineType) Option {
	return func(o *options) { o.line = line }
}

// WithAttr sets the drawing attributes
func WithAttr(attr terminal.Attr) Option {
	return func(o *options) { o.attr = attr }
}

// Filled makes a box paint its interior with spaces, hiding whatever is staged beneath
func Filled() Option {
	return func(o *options) { o.filled = true }
}
