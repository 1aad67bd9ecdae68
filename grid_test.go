// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"testing"

	"github.com/maruel/ut"
)

func TestNewGrid(t *testing.T) {
	t.Parallel()
	data := []struct {
		input    string
		tabWidth int
		expected string
		width    int
	}{
		// 0 Ragged rows
		{"+-+\n|\n+-+-+", 8, "+-+\n|\n+-+-+", 5},
		// 1 CRLF line endings
		{"ab\r\ncd\r\n", 8, "ab\ncd\n", 2},
		// 2 Tab at the start of a line
		{"\t+", 4, "    +", 5},
		// 3 Tab stops are column aligned
		{"ab\tc", 4, "ab  c", 5},
		// 4 Tab width 0 keeps tabs
		{"a\tb", 0, "a\tb", 3},
	}
	for i, line := range data {
		g := newGrid([]byte(line.input), line.tabWidth)
		ut.AssertEqualIndex(t, i, line.expected, g.String())
		ut.AssertEqualIndex(t, i, line.width, g.width())
	}
}

func TestGridAt(t *testing.T) {
	t.Parallel()
	g := newGrid([]byte("+-+\n|"), 8)
	ut.AssertEqual(t, char('+'), g.at(0, 0))
	ut.AssertEqual(t, char('|'), g.at(1, 0))
	ut.AssertEqual(t, absent, g.at(1, 1))
	ut.AssertEqual(t, absent, g.at(-1, 0))
	ut.AssertEqual(t, absent, g.at(0, -1))
	ut.AssertEqual(t, absent, g.at(2, 0))

	g.clear(0, 1)
	g.set(5, 5, 'x')
	ut.AssertEqual(t, "+ +\n|", g.String())
}

func TestCharClasses(t *testing.T) {
	t.Parallel()
	data := []struct {
		c                  char
		horizontal         bool
		vertical           bool
		corner, boxCorner  bool
		curved, marker     bool
		dashed, edgeAnyDir bool
	}{
		// 0 Plain horizontal
		{'-', true, false, false, false, false, false, false, true},
		// 1 Dashed horizontal
		{'=', true, false, false, false, false, false, true, true},
		// 2 Plain vertical
		{'|', false, true, false, false, false, false, false, true},
		// 3 Dashed vertical
		{':', false, true, false, false, false, false, true, true},
		// 4 Junction
		{'*', false, false, false, false, false, false, false, true},
		// 5 Square corner
		{'+', false, false, true, true, false, false, false, false},
		// 6 Rounded corners
		{'.', false, false, true, true, true, false, false, false},
		{'\'', false, false, true, true, true, false, false, false},
		// 8 Diagonal corners only bend lines
		{'/', false, false, true, false, true, false, false, false},
		{'\\', false, false, true, false, true, false, false, false},
		// 10 Markers
		{'v', false, false, false, false, false, true, false, false},
		{'<', false, false, false, false, false, true, false, false},
		// 12 Text and absent cells
		{'x', false, false, false, false, false, false, false, false},
		{absent, false, false, false, false, false, false, false, false},
	}
	for i, line := range data {
		ut.AssertEqualIndex(t, i, line.horizontal, line.c.isHorizontal())
		ut.AssertEqualIndex(t, i, line.vertical, line.c.isVertical())
		ut.AssertEqualIndex(t, i, line.corner, line.c.isCorner())
		ut.AssertEqualIndex(t, i, line.boxCorner, line.c.isBoxCorner())
		ut.AssertEqualIndex(t, i, line.curved, line.c.isCurved())
		ut.AssertEqualIndex(t, i, line.marker, line.c.isMarker())
		ut.AssertEqualIndex(t, i, line.dashed, line.c.isDashed())
		ut.AssertEqualIndex(t, i, line.edgeAnyDir, line.c.isEdge(dirNone))
	}
}

func TestCharEdgeDirection(t *testing.T) {
	t.Parallel()
	ut.AssertEqual(t, true, char('-').isEdge(dirLeft))
	ut.AssertEqual(t, false, char('-').isEdge(dirUp))
	ut.AssertEqual(t, true, char(':').isEdge(dirDown))
	ut.AssertEqual(t, false, char(':').isEdge(dirRight))
	ut.AssertEqual(t, true, char('*').isEdge(dirUp))
	ut.AssertEqual(t, true, char('*').isEdge(dirRight))
	ut.AssertEqual(t, true, char('+').canEnter(dirUp))
	ut.AssertEqual(t, false, char('/').canEnterBox(dirRight))
	ut.AssertEqual(t, true, char('.').foldsInto('.'))
	ut.AssertEqual(t, false, char('.').foldsInto('\''))
	ut.AssertEqual(t, false, char('+').foldsInto('+'))
}

func TestDirection(t *testing.T) {
	t.Parallel()
	data := []struct {
		d         direction
		name      string
		dRow      int
		dCol      int
		reverse   direction
		clockwise direction
	}{
		// 0 Up
		{dirUp, "up", -1, 0, dirDown, dirRight},
		// 1 Right
		{dirRight, "right", 0, 1, dirLeft, dirDown},
		// 2 Down
		{dirDown, "down", 1, 0, dirUp, dirLeft},
		// 3 Left
		{dirLeft, "left", 0, -1, dirRight, dirUp},
	}
	for i, line := range data {
		dr, dc := line.d.step()
		ut.AssertEqualIndex(t, i, line.name, line.d.String())
		ut.AssertEqualIndex(t, i, line.dRow, dr)
		ut.AssertEqualIndex(t, i, line.dCol, dc)
		ut.AssertEqualIndex(t, i, line.reverse, line.d.reverse())
		ut.AssertEqualIndex(t, i, line.clockwise, line.d.clockwise())
	}
	ut.AssertEqual(t, "none", dirNone.String())
	set := dirUp | dirLeft
	ut.AssertEqual(t, true, set.has(dirUp))
	ut.AssertEqual(t, false, set.has(dirDown))
	ut.AssertEqual(t, false, set.has(dirNone))
}
