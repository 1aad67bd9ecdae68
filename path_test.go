// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"testing"

	"github.com/maruel/ut"
)

func pathOf(closed bool, cells ...[2]int) *Path {
	p := NewPath()
	for _, c := range cells {
		p.AddPoint(DefaultScale.Point(float64(c[0]), float64(c[1]), 0))
	}
	p.closed = closed
	return p
}

func TestPathAddPoint(t *testing.T) {
	t.Parallel()
	p := NewPath()
	ut.AssertEqual(t, false, p.AddPoint(DefaultScale.Point(0, 0, 0)))
	ut.AssertEqual(t, false, p.AddPoint(DefaultScale.Point(3, 0, 0)))
	ut.AssertEqual(t, false, p.AddPoint(DefaultScale.Point(3, 2, 0)))
	ut.AssertEqual(t, false, p.IsClosed())

	// Revisiting a middle point does not close the path.
	ut.AssertEqual(t, true, p.AddPoint(DefaultScale.Point(3, 0, 0)))
	ut.AssertEqual(t, false, p.IsClosed())
	ut.AssertEqual(t, 3, len(p.Points()))

	// Revisiting the first point closes it without duplicating the point.
	ut.AssertEqual(t, true, p.AddPoint(DefaultScale.Point(0, 0, Control)))
	ut.AssertEqual(t, true, p.IsClosed())
	ut.AssertEqual(t, 3, len(p.Points()))
	ut.AssertEqual(t, "Box{[(0,0) (3,0) (3,2)]}", p.String())

	p.PopPoint()
	ut.AssertEqual(t, 2, len(p.Points()))
	p.PopPoint()
	p.PopPoint()
	p.PopPoint()
	ut.AssertEqual(t, 0, len(p.Points()))
}

func TestPathAddMarker(t *testing.T) {
	t.Parallel()
	p := NewPath()
	p.AddMarker(DefaultScale.Point(0, 0, StartMarker))
	p.AddPoint(DefaultScale.Point(2, 0, 0))
	p.AddMarker(DefaultScale.Point(2, 0, EndMarker))
	ut.AssertEqual(t, "Line{[(0,0 start) (2,0) (2,0 end)]}", p.String())
}

func TestPathOrderPoints(t *testing.T) {
	t.Parallel()
	data := []struct {
		in       [][2]int
		expected string
	}{
		// 0 Already ordered
		{[][2]int{{0, 0}, {3, 0}, {3, 2}, {0, 2}}, "Box{[(0,0) (3,0) (3,2) (0,2)]}"},
		// 1 Rotated
		{[][2]int{{3, 2}, {0, 2}, {0, 0}, {3, 0}}, "Box{[(0,0) (3,0) (3,2) (0,2)]}"},
		// 2 Top row has two points; left-most wins
		{[][2]int{{9, 0}, {9, 2}, {0, 2}, {4, 0}}, "Box{[(4,0) (9,0) (9,2) (0,2)]}"},
		// 3 Concave, top-most is not the first column
		{
			[][2]int{{14, 4}, {0, 4}, {0, 2}, {4, 2}, {4, 0}, {9, 0}, {9, 2}, {14, 2}},
			"Box{[(4,0) (9,0) (9,2) (14,2) (14,4) (0,4) (0,2) (4,2)]}",
		},
	}
	for i, line := range data {
		p := pathOf(true, line.in...)
		p.orderPoints()
		ut.AssertEqualIndex(t, i, line.expected, p.String())
	}
}

func TestPathHasPoint(t *testing.T) {
	t.Parallel()
	rect := pathOf(true, [2]int{0, 0}, [2]int{3, 0}, [2]int{3, 2}, [2]int{0, 2})
	// The L shaped polygon:
	//
	// +----+
	// |    |
	// |    +---+
	// |        |
	// +--------+
	concave := pathOf(true, [2]int{0, 0}, [2]int{5, 0}, [2]int{5, 2}, [2]int{9, 2}, [2]int{9, 4}, [2]int{0, 4})
	data := []struct {
		p        *Path
		col, row float64
		expected bool
	}{
		// 0 Inside the rectangle
		{rect, 1, 1, true},
		// 1 Right of the rectangle
		{rect, 4, 1, false},
		// 2 Above the rectangle
		{rect, 1, -1, false},
		// 3 Inside the concave polygon, upper part
		{concave, 2, 1, true},
		// 4 Inside the concave polygon, lower part
		{concave, 7, 3, true},
		// 5 In the notch of the concave polygon
		{concave, 7, 1, false},
		// 6 Below everything
		{concave, 2, 5, false},
		// 7 An open path contains nothing
		{pathOf(false, [2]int{0, 0}, [2]int{3, 0}, [2]int{3, 2}, [2]int{0, 2}), 1, 1, false},
	}
	for i, line := range data {
		pt := DefaultScale.Point(line.col, line.row, 0)
		ut.AssertEqualIndex(t, i, line.expected, line.p.HasPoint(pt.X, pt.Y))
	}
}

func TestOptionsAttributes(t *testing.T) {
	t.Parallel()
	o := Options{
		"fill":        "#000",
		"a2s:label":   "hidden",
		"stroke":      `a"b`,
		"font-family": "A&B",
	}
	ut.AssertEqual(t, []string{"a2s:label", "fill", "font-family", "stroke"}, o.Keys())
	ut.AssertEqual(t, []string{`fill="#000"`, `font-family="A&amp;B"`, `stroke="a&#34;b"`}, o.Attributes())
}

func TestPointFlagsString(t *testing.T) {
	t.Parallel()
	ut.AssertEqual(t, "", PointFlags(0).String())
	ut.AssertEqual(t, "control", Control.String())
	ut.AssertEqual(t, "control|end", (Control | EndMarker).String())
}
