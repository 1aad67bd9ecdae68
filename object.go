// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import "fmt"

// Object is an interface for working with open paths (lines), closed paths (boxes), or text.
type Object interface {
	fmt.Stringer
	// ID returns the identifier of the rendered element.
	ID() string
	// Points returns the vertices of a path, or the anchor of a text run.
	Points() []Point
	// HasPoint returns true if the object contains the rendering coordinate (x, y).
	HasPoint(x, y float64) bool
	// IsClosed is true if the object is composed of a closed path.
	IsClosed() bool
	// IsText returns true if the object is textual and does not represent a path.
	IsText() bool
	// Text returns the text associated with this Object if textual, and "" otherwise.
	Text() string
	// Options returns the object's rendering options.
	Options() Options
	// Option returns a single rendering option.
	Option(name string) string
	// SetOptions merges rendering options into the object.
	SetOptions(Options)
}

// Text is a run of characters placed at an anchor point.
type Text struct {
	id       string
	anchor   Point
	row, col int
	text     string
	options  Options
}

func newText(anchor Point, s string) *Text {
	return &Text{anchor: anchor, text: s, options: Options{}}
}

func (t *Text) ID() string                 { return t.id }
func (t *Text) Points() []Point            { return []Point{t.anchor} }
func (t *Text) HasPoint(x, y float64) bool { return false }
func (t *Text) IsClosed() bool             { return false }
func (t *Text) IsText() bool               { return true }
func (t *Text) Text() string               { return t.text }
func (t *Text) Options() Options           { return t.options }
func (t *Text) Option(name string) string  { return t.options[name] }

// Anchor returns the point the text is drawn from.
func (t *Text) Anchor() Point {
	return t.anchor
}

func (t *Text) SetOption(name, value string) {
	t.options[name] = value
}

func (t *Text) SetOptions(o Options) {
	for k, v := range o {
		t.options[k] = v
	}
}

func (t *Text) String() string {
	return fmt.Sprintf("Text{%s %q}", t.anchor, t.text)
}

// Group names, in render order.
const (
	GroupBoxes = "boxes"
	GroupLines = "lines"
	GroupText  = "text"
)

// Group is a named set of objects sharing default rendering options.
type Group struct {
	Name    string
	Options Options
	Objects []Object
}

func (g *Group) add(o Object) {
	g.Objects = append(g.Objects, o)
}

// paths returns the group's objects as paths, skipping anything else.
func (g *Group) paths() []*Path {
	var out []*Path
	for _, o := range g.Objects {
		if p, ok := o.(*Path); ok {
			out = append(out, p)
		}
	}
	return out
}

// objects is the ordered collection of groups produced by a parse.
type objects []*Group

func newObjects(fontSize float64, font string) objects {
	return objects{
		{Name: GroupBoxes, Options: Options{"stroke": "black", "stroke-width": "2", "fill": "none"}},
		{Name: GroupLines, Options: Options{"stroke": "black", "stroke-width": "2", "fill": "none"}},
		{Name: GroupText, Options: Options{
			"fill":  "black",
			"style": fmt.Sprintf("font-family:%s;font-size:%gpx", font, fontSize),
		}},
	}
}

func (o objects) group(name string) *Group {
	for _, g := range o {
		if g.Name == name {
			return g
		}
	}
	panic(fmt.Sprintf("unknown group %q", name))
}
