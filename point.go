// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"fmt"
	"strings"
)

// PointFlags suggest ways the renderer may represent a point.
type PointFlags uint8

const (
	// Control marks a curved corner; a quadratic curve is drawn through it.
	Control PointFlags = 1 << iota
	// StartMarker marks an arrowhead pointing away from the path, as in "<--".
	StartMarker
	// EndMarker marks an arrowhead pointing along the path, as in "-->".
	EndMarker
)

func (f PointFlags) String() string {
	var s []string
	if f&Control != 0 {
		s = append(s, "control")
	}
	if f&StartMarker != 0 {
		s = append(s, "start")
	}
	if f&EndMarker != 0 {
		s = append(s, "end")
	}
	return strings.Join(s, "|")
}

// Scale is the size in rendering units of one grid cell.
type Scale struct {
	X float64
	Y float64
}

// DefaultScale matches a 9x16 pixel monospace cell.
var DefaultScale = Scale{X: 9, Y: 16}

// Point builds a point at the center of the grid cell (col, row).
func (s Scale) Point(col, row float64, flags PointFlags) Point {
	return Point{
		Col:   col,
		Row:   row,
		X:     col*s.X + s.X/2,
		Y:     row*s.Y + s.Y/2,
		Flags: flags,
	}
}

// A Point is a grid coordinate and its rendered coordinate. The grid has (0, 0) at the top-left of
// the diagram.
type Point struct {
	// Col and Row are the grid coordinates. Text anchors use fractional values.
	Col, Row float64
	// X and Y are rendering coordinates.
	X, Y  float64
	Flags PointFlags
}

// String implements fmt.Stringer on Point.
func (p Point) String() string {
	if p.Flags != 0 {
		return fmt.Sprintf("(%g,%g %s)", p.Col, p.Row, p.Flags)
	}
	return fmt.Sprintf("(%g,%g)", p.Col, p.Row)
}

// same returns true if p and o are at the same grid position.
func (p Point) same(o Point) bool {
	return p.Col == o.Col && p.Row == o.Row
}

func (p Point) cell() (row, col int) {
	return int(p.Row), int(p.Col)
}
