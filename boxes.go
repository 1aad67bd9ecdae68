// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"strings"

	"github.com/asciitosvg/a2s/internal/logging"
)

// cell is a grid coordinate used to key the visited set.
type cell struct {
	row, col int
}

// findBoxes scans the grid for corners and attempts to close a polygon from each. Since the
// approach is first horizontal, then vertical, shapes are completed in clockwise order, which
// the curve generation depends on.
func (d *detector) findBoxes() {
	boxes := d.objs.group(GroupBoxes)
	for r, row := range d.grid {
		for c, ch := range row {
			if !ch.isCorner() {
				continue
			}
			path := NewPath()
			var flags PointFlags
			if ch.isCurved() {
				flags = Control
			}
			path.AddPoint(d.point(c, r, flags))
			d.wallFollow(path, r, c+1, dirRight, map[cell]direction{}, 0)
			if !path.IsClosed() {
				continue
			}
			path.orderPoints()

			// The walk can find the same box from a different edge:
			//
			// +---+   +---+
			// |   |   |   |
			// |   +---+   |
			// +-----------+
			if d.seen(boxes, path) {
				logging.Debug("skipping rediscovered box", "at", path.points[0])
				continue
			}

			if d.dashedOutline(path) {
				path.SetOption("stroke-dasharray", "5 5")
			}
			if d.blur {
				path.SetOption("filter", "url(#dsFilter)")
			} else {
				path.SetOption("filter", "url(#dsFilterNoBlur)")
			}
			d.commit(boxes, path)
			d.findCommands(path)
			logging.Debug("found box", "id", path.id, "points", len(path.points))
		}
	}

	// Boxes are removed only once all are found so that shared walls stay visible to every
	// traversal. Corners are kept until lines are found.
	for _, b := range boxes.paths() {
		d.clearObject(b)
	}
}

// seen returns true if an accepted box has exactly the vertices of p.
func (d *detector) seen(boxes *Group, p *Path) bool {
	for _, b := range boxes.paths() {
		if len(b.points) != len(p.points) {
			continue
		}
		shared := 0
		for _, pp := range p.points {
			for _, bp := range b.points {
				if pp.same(bp) {
					shared++
					break
				}
			}
		}
		if shared == len(b.points) {
			return true
		}
	}
	return false
}

// wallFollow attempts to follow an edge and complete it into a closed polygon. It assumes it was
// called from a top-left point heading right, so the polygon can be found by moving clockwise
// along its edges. At every corner it first attempts the clockwise turn, then any direction other
// than the one it came from. If no direction closes the polygon the corner is popped from the path
// and the caller continues with its own alternatives.
//
// visited holds, per corner on the current branch, the set of directions already tried from it.
// Entries are removed on return so sibling branches see the same set they started with.
func (d *detector) wallFollow(path *Path, r, c int, dir direction, visited map[cell]direction, depth int) {
	depth++

	dr, dc := dir.step()
	cur := d.grid.at(r, c)
	for cur.isBoxEdge(dir) {
		r += dr
		c += dc
		cur = d.grid.at(r, c)
	}

	key := cell{r, c}
	if _, ok := visited[key]; ok {
		return
	}
	// Markers belong to lines; anything else is text or whitespace.
	if !cur.isBoxCorner() {
		return
	}
	visited[key] = dirNone
	defer delete(visited, key)

	var flags PointFlags
	if cur.isCurved() {
		flags = Control
	}
	if path.AddPoint(d.point(c, r, flags)) || path.IsClosed() {
		return
	}

	// Two stacked rounded corners on the first turn cannot both be top corners; keep looking
	// along the top edge without counting this as a turn.
	if depth == 1 && cur == '.' && d.grid.at(r+1, c) == '.' {
		d.wallFollow(path, r, c+1, dir, visited, 0)
		if !path.IsClosed() {
			path.PopPoint()
		}
		return
	}

	canTurn := func(to direction) bool {
		if visited[key].has(to) {
			return false
		}
		tr, tc := to.step()
		next := d.grid.at(r+tr, c+tc)
		if !next.canEnterBox(to) {
			return false
		}
		// A rounded top edge cannot turn into another top edge, nor a bottom into a bottom.
		return !(to.vertical() && cur.foldsInto(next))
	}
	turn := func(to direction) bool {
		visited[key] |= to
		tr, tc := to.step()
		d.wallFollow(path, r+tr, c+tc, to, visited, depth)
		return path.IsClosed()
	}

	if pref := dir.clockwise(); canTurn(pref) {
		if turn(pref) {
			return
		}
	} else if dir == dirRight && depth == 1 {
		// No right hand turn from the top edge; this isn't a valid start.
		path.PopPoint()
		return
	}

	for _, to := range []direction{dirLeft, dirRight, dirUp, dirDown} {
		if to == dir.reverse() || !canTurn(to) {
			continue
		}
		if turn(to) {
			return
		}
	}

	// The path doesn't close in any direction from this point; it's probably a line extension.
	path.PopPoint()
}

// clearObject erases every edge and marker cell along obj's segments. Corners are queued and only
// cleared once both boxes and lines have been found, since they may be shared.
func (d *detector) clearObject(obj *Path) {
	obj.eachCell(d.clearCell)
}

// dashedOutline returns true if any wall of box is drawn with a dashed glyph.
func (d *detector) dashedOutline(box *Path) bool {
	dashed := false
	box.eachCell(func(r, c int) {
		if d.grid.at(r, c).isDashed() {
			dashed = true
		}
	})
	return dashed
}

// eachCell calls fn for every grid cell covered by the path's axis-aligned segments. The segment
// closing a polygon is included.
func (p *Path) eachCell(fn func(r, c int)) {
	pts := p.points
	n := len(pts)
	segments := n - 1
	if p.closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		pr, pc := pts[i].cell()
		qr, qc := pts[(i+1)%n].cell()
		switch {
		case pc == qc:
			for r := min(pr, qr); r <= max(pr, qr); r++ {
				fn(r, pc)
			}
		case pr == qr:
			for c := min(pc, qc); c <= max(pc, qc); c++ {
				fn(pr, c)
			}
		}
	}
}

func (d *detector) clearCell(r, c int) {
	ch := d.grid.at(r, c)
	switch {
	case ch.isEdge(dirNone) || ch.isMarker():
		d.grid.clear(r, c)
	case ch.isCorner():
		d.corners = append(d.corners, cell{r, c})
	}
}

// clearCorners erases the corners retained by clearObject.
func (d *detector) clearCorners() {
	for _, k := range d.corners {
		d.grid.clear(k.row, k.col)
	}
	d.corners = nil
}

// findCommands looks for a [ref] token on the first line inside the box, touching the left wall,
// and applies the reference's options to the box. The token is blanked out, or replaced by the
// reference's a2s:label.
func (d *detector) findCommands(box *Path) {
	tl := box.points[0]
	r, c := tl.cell()
	r++
	c++
	if !d.grid.at(r, c).isObjectStartTag() {
		return
	}
	var ref strings.Builder
	end := c + 1
	for ; !d.grid.at(r, end).isObjectEndTag(); end++ {
		ch := d.grid.at(r, end)
		if ch == absent {
			// Unterminated; leave it as text.
			return
		}
		ref.WriteByte(byte(ch))
	}
	name := ref.String()
	opts, ok := d.refs[name]

	label, hasLabel := opts["a2s:label"]
	_, delRef := opts["a2s:delref"]
	if !hasLabel && !delRef {
		d.grid.clear(r, c)
		d.grid.clear(r, end)
	} else {
		span := len(name) + 2
		for i := 0; i < span; i++ {
			if i < len(label) {
				d.grid.set(r, c+i, char(label[i]))
			} else {
				d.grid.clear(r, c+i)
			}
		}
	}

	if !ok {
		logging.Debug("box references unknown name", "ref", name)
		return
	}
	applied := Options{}
	for k, v := range opts {
		if k != "a2s:label" && k != "a2s:delref" {
			applied[k] = v
		}
	}
	box.SetOptions(applied)
	logging.Debug("applied reference", "ref", name, "id", box.id)
}
