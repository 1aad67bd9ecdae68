// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"fmt"

	"github.com/asciitosvg/a2s/internal/logging"
)

// DefaultFont is the font family used for text.
const DefaultFont = "Consolas,Monaco,Anonymous Pro,Anonymous,Bitstream Sans Mono,monospace"

// DefaultTabWidth is the number of columns a tab expands to.
const DefaultTabWidth = 8

// canvasPadding leaves room around the diagram for drop shadows and blur.
const canvasPadding = 30

type options struct {
	scale    Scale
	tabWidth int
	blur     bool
	font     string
	objects  ObjectProvider
}

func defaultOptions() options {
	return options{
		scale:    DefaultScale,
		tabWidth: DefaultTabWidth,
		blur:     true,
		font:     DefaultFont,
	}
}

// An Option configures Parse.
type Option func(*options)

// WithScale sets the size in rendering units of one grid cell.
func WithScale(x, y float64) Option {
	return func(o *options) {
		o.scale = Scale{X: x, Y: y}
	}
}

// WithTabWidth sets how many columns a tab expands to.
func WithTabWidth(n int) Option {
	return func(o *options) {
		o.tabWidth = n
	}
}

// WithBlur enables or disables the blurred drop shadow on boxes.
func WithBlur(blur bool) Option {
	return func(o *options) {
		o.blur = blur
	}
}

// WithFont sets the font family for text. An empty name keeps DefaultFont.
func WithFont(font string) Option {
	return func(o *options) {
		if font != "" {
			o.font = font
		}
	}
}

// WithObjects sets the provider consulted for boxes tagged with "a2s:type".
func WithObjects(p ObjectProvider) Option {
	return func(o *options) {
		o.objects = p
	}
}

// Diagram is a parsed ASCII diagram: boxes, lines and text, grouped in render order.
type Diagram struct {
	groups  objects
	refs    References
	scale   Scale
	cols    int
	rows    int
	font    string
	objects ObjectProvider
}

// Parse recognizes the boxes, lines and text in data. data is interpreted as a newline-delimited
// grid; trailing reference blocks supply styling.
func Parse(data []byte, opts ...Option) (*Diagram, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale.X <= 0 || o.scale.Y <= 0 {
		return nil, fmt.Errorf("invalid scale %gx%g", o.scale.X, o.scale.Y)
	}

	refs, body := parseReferences(data)
	g := newGrid(body, o.tabWidth)

	d := &detector{
		grid:  g,
		scale: o.scale,
		refs:  refs,
		blur:  o.blur,
		objs:  newObjects(0.95*o.scale.Y, o.font),
	}
	d.findBoxes()
	d.findLines()
	d.clearCorners()
	d.findText()
	d.injectCommands()

	logging.Debug("parsed diagram",
		"boxes", len(d.objs.group(GroupBoxes).Objects),
		"lines", len(d.objs.group(GroupLines).Objects),
		"text", len(d.objs.group(GroupText).Objects),
		"refs", len(refs))

	return &Diagram{
		groups:  d.objs,
		refs:    refs,
		scale:   o.scale,
		cols:    g.width(),
		rows:    len(g),
		font:    o.font,
		objects: o.objects,
	}, nil
}

// Groups returns the object groups in render order: boxes, lines, then text.
func (d *Diagram) Groups() []*Group {
	return d.groups
}

// Boxes returns the closed paths.
func (d *Diagram) Boxes() []Object {
	return d.groups.group(GroupBoxes).Objects
}

// Lines returns the open paths.
func (d *Diagram) Lines() []Object {
	return d.groups.group(GroupLines).Objects
}

// Text returns the text runs.
func (d *Diagram) Text() []Object {
	return d.groups.group(GroupText).Objects
}

// References returns the reference blocks found at the bottom of the diagram.
func (d *Diagram) References() References {
	return d.refs
}

// Scale returns the size of one grid cell.
func (d *Diagram) Scale() Scale {
	return d.scale
}

// Width returns the width of the canvas in rendering units.
func (d *Diagram) Width() float64 {
	return float64(d.cols)*d.scale.X + canvasPadding
}

// Height returns the height of the canvas in rendering units.
func (d *Diagram) Height() float64 {
	return float64(d.rows)*d.scale.Y + canvasPadding
}

// detector holds the state of a single parse. Every pass mutates the grid.
type detector struct {
	grid    grid
	scale   Scale
	refs    References
	blur    bool
	objs    objects
	corners []cell
	ids     int
}

// point builds a point for the grid cell (col, row).
func (d *detector) point(col, row int, flags PointFlags) Point {
	return d.scale.Point(float64(col), float64(row), flags)
}

// commit adds o to g and assigns its identifier.
func (d *detector) commit(g *Group, o Object) {
	switch t := o.(type) {
	case *Path:
		t.id = fmt.Sprintf("path%d", d.ids)
	case *Text:
		t.id = fmt.Sprintf("text%d", d.ids)
	}
	d.ids++
	g.add(o)
}

// injectCommands applies references that target an object by its starting grid position, written
// as "row,col". This allows styling of lines and text as well as boxes.
func (d *detector) injectCommands() {
	byCell := d.refs.cellRefs()
	if len(byCell) == 0 {
		return
	}
	for _, g := range d.objs {
		for _, o := range g.Objects {
			var at cell
			switch t := o.(type) {
			case *Path:
				r, c := t.points[0].cell()
				at = cell{r, c}
			case *Text:
				at = cell{t.row, t.col}
			}
			if opts, ok := byCell[at]; ok {
				o.SetOptions(opts)
				logging.Debug("applied positional reference", "id", o.ID(), "row", at.row, "col", at.col)
			}
		}
	}
}
