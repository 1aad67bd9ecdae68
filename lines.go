// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import "github.com/asciitosvg/a2s/internal/logging"

// arrows maps each direction to the marker glyph pointing that way.
var arrows = map[direction]char{
	dirUp:    '^',
	dirDown:  'v',
	dirLeft:  '<',
	dirRight: '>',
}

// markerHeading is the direction a line leaves a marker glyph: away from where it points.
var markerHeading = map[char]direction{
	'^': dirDown,
	'v': dirUp,
	'<': dirRight,
	'>': dirLeft,
}

// walkOrder is the turn priority at a corner once going straight is not possible.
var walkOrder = []direction{dirUp, dirDown, dirRight, dirLeft}

// findLines scans the grid for the start of lines. Lines are not intrinsically marked with
// starting points, and for markers to work we need to begin at the correct end, so the grid is
// scanned vertically first, then horizontally. Once a line is found it is cleared immediately,
// keeping corners in case of intersections.
func (d *detector) findLines() {
	lines := d.objs.group(GroupLines)
	cols := d.grid.width()
	for c := 0; c < cols; c++ {
		for r := range d.grid {
			if c >= len(d.grid[r]) {
				continue
			}
			dir, marker := d.lineStart(r, c)
			if dir == dirNone {
				continue
			}

			line := NewPath()
			if d.grid.at(r, c).isDashed() {
				line.SetOption("stroke-dasharray", "5 5")
			}
			if marker {
				line.AddMarker(d.point(c, r, StartMarker))
			} else {
				line.AddPoint(d.point(c, r, 0))
			}
			dr, dc := dir.step()
			d.walk(line, r+dr, c+dc, dir)

			d.clearObject(line)
			d.commit(lines, line)
			logging.Debug("found line", "id", line.id, "points", len(line.points), "heading", dir)
		}
	}
}

// lineStart decides whether the cell at r, c begins a line, and in which direction the line
// leaves it.
func (d *detector) lineStart(r, c int) (dir direction, marker bool) {
	cur := d.grid.at(r, c)
	neighbor := func(to direction) char {
		dr, dc := to.step()
		return d.grid.at(r+dr, c+dc)
	}

	switch {
	case cur.isMarker():
		// Markers basically guarantee the start of a line when backed by line material.
		to := markerHeading[cur]
		if n := neighbor(to); n.isEdge(to) || n.isCorner() {
			return to, true
		}

	case cur.isVertical():
		// A vertical edge starts a line when line material continues on exactly one side:
		//
		// +-----      +-----     +---    | (s)
		// |           |          |       |
		// |   | (s)   +---+      |(s)    |
		// +---+           | (s)
		return edgeStart(neighbor, dirDown, dirUp), false

	case cur.isHorizontal():
		return edgeStart(neighbor, dirLeft, dirRight), false

	case cur.isCorner():
		// A corner starts a line when exactly one side shows edge material.
		for _, to := range []direction{dirLeft, dirRight, dirDown, dirUp} {
			if !axisEdge(neighbor(to), to) {
				continue
			}
			alone := true
			for _, o := range []direction{dirLeft, dirRight, dirDown, dirUp} {
				if o != to && axisEdge(neighbor(o), o) {
					alone = false
					break
				}
			}
			if alone {
				return to, false
			}
		}
	}
	return dirNone, false
}

// edgeStart tests the two headings along an edge glyph's axis, first then second.
func edgeStart(neighbor func(direction) char, first, second direction) direction {
	for _, to := range []direction{first, second} {
		ahead, behind := neighbor(to), neighbor(to.reverse())
		if axisMaterial(ahead, to) && !axisMaterial(behind, to) && behind != arrows[to.reverse()] {
			return to
		}
	}
	return dirNone
}

// axisEdge returns true if c is a plain or dashed edge glyph on dir's axis.
func axisEdge(c char, dir direction) bool {
	if dir.vertical() {
		return c.isVertical()
	}
	return c.isHorizontal()
}

// axisMaterial is axisEdge or any corner.
func axisMaterial(c char, dir direction) bool {
	return axisEdge(c, dir) || c.isCorner()
}

// walk follows a line from r, c heading dir. Lines are assumed to want to keep going the way they
// are already heading.
func (d *detector) walk(path *Path, r, c int, dir direction) {
	dr, dc := dir.step()
	cur := d.grid.at(r, c)
	for cur.isEdge(dir) {
		if cur.isDashed() {
			path.SetOption("stroke-dasharray", "5 5")
		}
		r += dr
		c += dc
		cur = d.grid.at(r, c)
	}

	switch {
	case cur.isCorner():
		var flags PointFlags
		if cur.isCurved() {
			flags = Control
		}
		if path.AddPoint(d.point(c, r, flags)) {
			// Looped back onto the line; lines never close.
			path.closed = false
			return
		}

		if next := d.grid.at(r+dr, c+dc); next.canEnter(dir) {
			d.walk(path, r+dr, c+dc, dir)
			return
		}
		for _, to := range walkOrder {
			if to == dir || to == dir.reverse() {
				continue
			}
			tr, tc := to.step()
			next := d.grid.at(r+tr, c+tc)
			if !next.canEnter(to) || to.vertical() && cur.foldsInto(next) {
				continue
			}
			d.walk(path, r+tr, c+tc, to)
			return
		}

	case cur.isMarker():
		path.AddMarker(d.point(c, r, EndMarker))

	default:
		// Not a corner, not a marker, and we already ate edges: the line ends here.
		path.AddPoint(d.point(c, r, 0))
	}
}
