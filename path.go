// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"fmt"
	"sort"
	"strings"
)

// Options are rendering attributes attached to an object. Keys prefixed with "a2s:" are
// directives for the renderer and are never emitted as attributes.
type Options map[string]string

// Keys returns the option names in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Attributes returns the options as name="value" pairs, sorted by name, without directives.
func (o Options) Attributes() []string {
	var out []string
	for _, k := range o.Keys() {
		if isDirective(k) {
			continue
		}
		out = append(out, k+"=\""+escape(o[k])+"\"")
	}
	return out
}

func (o Options) clone() Options {
	c := make(Options, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

func isDirective(name string) bool {
	return strings.HasPrefix(name, "a2s:")
}

// Path is a line or a polygon: an ordered sequence of points plus rendering options.
type Path struct {
	id      string
	points  []Point
	closed  bool
	options Options
}

// NewPath returns an empty open path.
func NewPath() *Path {
	return &Path{options: Options{}}
}

// AddPoint appends p. Adding the first point again closes the path. It returns true when p was
// already on the path, in which case nothing is appended.
func (p *Path) AddPoint(pt Point) bool {
	if len(p.points) > 0 {
		if p.points[0].same(pt) {
			p.closed = true
			return true
		}
		for _, o := range p.points {
			if o.same(pt) {
				return true
			}
		}
	}
	p.points = append(p.points, pt)
	return false
}

// AddMarker appends a marker point unconditionally.
func (p *Path) AddMarker(pt Point) {
	p.points = append(p.points, pt)
}

// PopPoint removes the last point. Recursive walkers use it to undo a speculative step.
func (p *Path) PopPoint() {
	if len(p.points) > 0 {
		p.points = p.points[:len(p.points)-1]
	}
}

// orderPoints rotates the points so that the top-most, then left-most, point comes first. It only
// makes sense on closed paths.
func (p *Path) orderPoints() {
	if len(p.points) == 0 {
		return
	}
	first := 0
	for i, pt := range p.points {
		m := p.points[first]
		if pt.Row < m.Row || pt.Row == m.Row && pt.Col < m.Col {
			first = i
		}
	}
	if first != 0 {
		ordered := make([]Point, 0, len(p.points))
		ordered = append(ordered, p.points[first:]...)
		p.points = append(ordered, p.points[:first]...)
	}
}

// ID returns the identifier used for the rendered element.
func (p *Path) ID() string {
	return p.id
}

// Points returns the path's vertices in order.
func (p *Path) Points() []Point {
	return p.points
}

// IsClosed returns true if the path is a polygon.
func (p *Path) IsClosed() bool {
	return p.closed
}

// IsText implements Object.
func (p *Path) IsText() bool {
	return false
}

// Text implements Object.
func (p *Path) Text() string {
	return ""
}

// Options returns the path's rendering options.
func (p *Path) Options() Options {
	return p.options
}

// Option returns the named option, or "" if unset.
func (p *Path) Option(name string) string {
	return p.options[name]
}

// SetOption sets a single rendering option.
func (p *Path) SetOption(name, value string) {
	p.options[name] = value
}

// SetOptions merges o into the path's options.
func (p *Path) SetOptions(o Options) {
	for k, v := range o {
		p.options[k] = v
	}
}

// IsDashed returns true if the path is drawn with a dash pattern.
func (p *Path) IsDashed() bool {
	return p.options["stroke-dasharray"] != ""
}

func (p *Path) String() string {
	if p.closed {
		return fmt.Sprintf("Box{%v}", p.points)
	}
	return fmt.Sprintf("Line{%v}", p.points)
}

// HasPoint determines whether the rendering coordinate (x, y) lives inside the polygon. Since we
// support complex convex and concave polygons, we need to do a full point-in-polygon test. The
// algorithm implemented comes from the more efficient, less-clever version at
// http://alienryderflex.com/polygon/. Open paths contain nothing.
func (p *Path) HasPoint(x, y float64) bool {
	if !p.closed {
		return false
	}
	odd := false
	pts := p.points
	j := len(pts) - 1
	for i := range pts {
		if (pts[i].Y < y && pts[j].Y >= y || pts[j].Y < y && pts[i].Y >= y) && (pts[i].X <= x || pts[j].X <= x) {
			if pts[i].X+(y-pts[i].Y)/(pts[j].Y-pts[i].Y)*(pts[j].X-pts[i].X) < x {
				odd = !odd
			}
		}
		j = i
	}
	return odd
}

// bounds returns the bounding box of the path in rendering coordinates.
func (p *Path) bounds() (minX, minY, maxX, maxY float64) {
	for i, pt := range p.points {
		if i == 0 || pt.X < minX {
			minX = pt.X
		}
		if i == 0 || pt.X > maxX {
			maxX = pt.X
		}
		if i == 0 || pt.Y < minY {
			minY = pt.Y
		}
		if i == 0 || pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return
}
