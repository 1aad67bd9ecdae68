// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

// char is a single grid cell. Input is interpreted byte-wise.
type char rune

// absent is returned for any lookup outside the grid. It compares unequal to every glyph class.
const absent char = 0

func (c char) isSpace() bool {
	return c == ' ' || c == absent
}

func (c char) isObjectStartTag() bool {
	return c == '['
}

func (c char) isObjectEndTag() bool {
	return c == ']'
}

func (c char) isDashedHorizontal() bool {
	return c == '='
}

func (c char) isDashedVertical() bool {
	return c == ':'
}

func (c char) isDashed() bool {
	return c.isDashedHorizontal() || c.isDashedVertical()
}

// isJunction is the omnidirectional wall glyph.
func (c char) isJunction() bool {
	return c == '*'
}

func (c char) isHorizontal() bool {
	return c == '-' || c.isDashedHorizontal()
}

func (c char) isVertical() bool {
	return c == '|' || c.isDashedVertical()
}

// isEdge returns true if c is line material that can be followed in dir. dirNone accepts any edge
// glyph.
func (c char) isEdge(dir direction) bool {
	if c.isJunction() {
		return true
	}
	switch {
	case dir == dirNone:
		return c.isHorizontal() || c.isVertical()
	case dir.vertical():
		return c.isVertical()
	default:
		return c.isHorizontal()
	}
}

// isBoxEdge is the edge set used while a polygon is still open.
func (c char) isBoxEdge(dir direction) bool {
	return c.isEdge(dir)
}

func (c char) isCorner() bool {
	return c == '+' || c.isCurved()
}

// isBoxCorner returns true on corners that can turn a polygon outline.
func (c char) isBoxCorner() bool {
	return c == '+' || c.isRoundedCorner()
}

func (c char) isRoundedCorner() bool {
	return c == '.' || c == '\''
}

func (c char) isDiagonal() bool {
	return c == '/' || c == '\\'
}

// isCurved corners produce control points.
func (c char) isCurved() bool {
	return c.isRoundedCorner() || c.isDiagonal()
}

func (c char) isMarker() bool {
	return c == '<' || c == '>' || c == '^' || c == 'v'
}

// foldsInto returns true when turning from corner c onto next would run a rounded corner into
// another copy of itself, e.g. a top edge '.' directly above another '.'.
func (c char) foldsInto(next char) bool {
	return c.isRoundedCorner() && c == next
}

// canEnter returns true if c can continue a path heading dir.
func (c char) canEnter(dir direction) bool {
	return c.isCorner() || c.isEdge(dir)
}

// canEnterBox is canEnter restricted to glyphs valid while following a polygon wall.
func (c char) canEnterBox(dir direction) bool {
	return c.isBoxCorner() || c.isBoxEdge(dir)
}
