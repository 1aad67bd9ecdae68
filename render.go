// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"strconv"
	"strings"

	"github.com/asciitosvg/a2s/internal/logging"
)

// curveOffset is the distance from a curved corner at which its quadratic curve starts and ends.
const curveOffset = 10

// Marker references emitted for arrowheads.
const (
	startPointer = "url(#iPointer)"
	endPointer   = "url(#Pointer)"
)

// shape is one drawable element: a path's own outline, or one sub-path of a custom object.
type shape struct {
	id      string
	cmds    []PathCommand
	options Options
}

func (s shape) data() string {
	return joinCommands(s.cmds)
}

func joinCommands(cmds []PathCommand) string {
	parts := make([]string, len(cmds))
	for i, c := range cmds {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Commands returns the SVG path data for p's own geometry.
func (p *Path) Commands() string {
	return joinCommands(p.draw())
}

// draw turns the points into drawing commands. Curves are only correct when points run
// clockwise, which box detection guarantees.
func (p *Path) draw() []PathCommand {
	pts := p.points
	if len(pts) == 0 {
		return nil
	}
	start := pts[0]
	var out []PathCommand
	if start.Flags&Control != 0 {
		out = append(out,
			PathCommand{Op: 'M', Args: []float64{start.X, start.Y + curveOffset}},
			PathCommand{Op: 'Q', Args: []float64{start.X, start.Y, start.X + curveOffset, start.Y}})
	} else {
		out = append(out, PathCommand{Op: 'M', Args: []float64{start.X, start.Y}})
	}

	prev := start
	for i := 1; i < len(pts); i++ {
		pt := pts[i]
		next := start
		if i < len(pts)-1 {
			next = pts[i+1]
		}
		if sx, sy, ex, ey, ok := curve(prev, pt, next); pt.Flags&Control != 0 && ok {
			out = append(out,
				PathCommand{Op: 'L', Args: []float64{sx, sy}},
				PathCommand{Op: 'Q', Args: []float64{pt.X, pt.Y, ex, ey}})
		} else {
			out = append(out, PathCommand{Op: 'L', Args: []float64{pt.X, pt.Y}})
		}
		prev = pt
	}

	if p.closed {
		out = append(out, PathCommand{Op: 'Z'})
	}
	return out
}

// curve computes where the quadratic curve around the corner pt starts and ends. The start is
// offset toward prev and the end toward next. ok is false when prev is not axis-aligned with pt.
func curve(prev, pt, next Point) (sx, sy, ex, ey float64, ok bool) {
	switch {
	case prev.X == pt.X:
		sx, sy = pt.X, pt.Y+curveOffset
		if prev.Y < pt.Y {
			sy = pt.Y - curveOffset
		}
		ex, ey = pt.X+curveOffset, pt.Y
		if next.X < pt.X {
			ex = pt.X - curveOffset
		}
		return sx, sy, ex, ey, true
	case prev.Y == pt.Y:
		sx, sy = pt.X+curveOffset, pt.Y
		if prev.X < pt.X {
			sx = pt.X - curveOffset
		}
		ex, ey = pt.X, pt.Y+curveOffset
		if next.Y <= pt.Y {
			ey = pt.Y - curveOffset
		}
		return sx, sy, ex, ey, true
	}
	return 0, 0, 0, 0, false
}

// markerRef maps a point's marker flag to the arrowhead it is drawn with.
func markerRef(f PointFlags) string {
	switch {
	case f&StartMarker != 0:
		return startPointer
	case f&EndMarker != 0:
		return endPointer
	}
	return ""
}

// renderOptions returns the attributes p is drawn with: its own options plus arrowheads, and a
// white fill on closed paths so the drop shadow does not show through.
func (p *Path) renderOptions() Options {
	o := p.options.clone()
	if n := len(p.points); n > 0 {
		if m := markerRef(p.points[0].Flags); m != "" {
			o["marker-start"] = m
		}
		if m := markerRef(p.points[n-1].Flags); m != "" {
			o["marker-end"] = m
		}
	}
	if _, ok := o["fill"]; p.closed && !ok {
		o["fill"] = "#fff"
	}
	return o
}

// shapes returns what is drawn for p. A path tagged with "a2s:type" naming an object known to
// objs is replaced by that object's templates, fitted to the path's bounding box.
func (p *Path) shapes(objs ObjectProvider) []shape {
	if subs, ok := p.custom(objs); ok {
		out := make([]shape, len(subs))
		for i, cmds := range subs {
			out[i] = shape{id: p.id, cmds: cmds}
			if i > 0 {
				out[i].id = p.id + "-" + strconv.Itoa(i)
			}
		}
		o := p.options.clone()
		if _, ok := o["fill"]; !ok {
			o["fill"] = "#fff"
		}
		out[0].options = o
		return out
	}
	return []shape{{id: p.id, cmds: p.draw(), options: p.renderOptions()}}
}

// custom remaps the templates of the object named by p's "a2s:type" option into p's bounding box.
func (p *Path) custom(objs ObjectProvider) ([][]PathCommand, bool) {
	name := p.options["a2s:type"]
	if name == "" || objs == nil || len(p.points) == 0 {
		return nil, false
	}
	templates, ok := objs.Object(name)
	if !ok {
		logging.Debug("unknown custom object, drawing outline", "id", p.id, "type", name)
		return nil, false
	}
	minX, minY, maxX, maxY := p.bounds()
	w, h := maxX-minX, maxY-minY
	out := make([][]PathCommand, 0, len(templates))
	for _, t := range templates {
		cmds := make([]PathCommand, len(t.Commands))
		for i, c := range t.Commands {
			cmds[i] = t.remap(c, minX, minY, w, h)
		}
		out = append(out, cmds)
	}
	return out, true
}
