// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maruel/ut"
)

func TestWritePNG(t *testing.T) {
	t.Parallel()
	d := mustParse(t, []string{
		".-----.",
		"|Hi   |",
		"'-----'",
		"",
		"<==>",
	})
	b := &bytes.Buffer{}
	ut.AssertEqual(t, nil, d.WritePNG(b, DefaultPNGOptions()))

	img, err := png.Decode(b)
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, 93, img.Bounds().Dx())
	ut.AssertEqual(t, 110, img.Bounds().Dy())

	// The margin is background, the top wall is stroked.
	r, g, bl, _ := img.At(1, 1).RGBA()
	ut.AssertEqual(t, true, r > 0xf000 && g > 0xf000 && bl > 0xf000)
	r, _, _, _ = img.At(30, 7).RGBA()
	ut.AssertEqual(t, true, r < 0x8000)
}

func TestWritePNGCustomObject(t *testing.T) {
	t.Parallel()
	objs := MapProvider{
		"disk": {
			{Width: 10, Height: 10, Commands: mustPathData(t, "M 0 5 A 5 5 0 0 1 10 5 c 0 2 -10 2 -10 0 Z")},
			{Width: 10, Height: 10, Commands: mustPathData(t, "M 0 5 s 5 5 10 0 q 0 2 -5 2 t -5 -2")},
		},
	}
	d := mustParse(t, []string{
		"+---+",
		"|[d]|",
		"+---+",
		"",
		`[d]: {"a2s:type":"disk","fill":"steelblue"}`,
	}, WithObjects(objs))
	b := &bytes.Buffer{}
	ut.AssertEqual(t, nil, d.WritePNG(b, PNGOptions{FontSize: 12}))
	img, err := png.Decode(b)
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, 75, img.Bounds().Dx())
}

func TestWritePNGResolution(t *testing.T) {
	t.Parallel()
	d := mustParse(t, []string{
		".-----.",
		"|Hi   |",
		"'-----'",
	})
	b := &bytes.Buffer{}
	ut.AssertEqual(t, nil, d.WritePNG(b, PNGOptions{Resolution: 2}))
	img, err := png.Decode(b)
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, 186, img.Bounds().Dx())
	ut.AssertEqual(t, 2*int(d.Height()), img.Bounds().Dy())
	r, _, _, _ := img.At(60, 15).RGBA()
	ut.AssertEqual(t, true, r < 0x8000)
}

func TestBuildPath(t *testing.T) {
	t.Parallel()
	data := []struct {
		input    string
		expected pathEnds
	}{
		// 0 Closed square, y is mirrored
		{
			"M 0 0 L 10 0 L 10 10 Z",
			pathEnds{start: [2]float64{0, 10}, startDir: [2]float64{10, 10}, end: [2]float64{0, 10}, endDir: [2]float64{10, 0}},
		},
		// 1 Relative commands
		{
			"m 1 1 l 2 0 h 3 v 4",
			pathEnds{start: [2]float64{1, 9}, startDir: [2]float64{3, 9}, end: [2]float64{6, 5}, endDir: [2]float64{6, 9}},
		},
		// 2 Quadratic curves leave and arrive through their control point
		{
			"M 0 0 Q 5 10 10 0",
			pathEnds{start: [2]float64{0, 10}, startDir: [2]float64{5, 0}, end: [2]float64{10, 10}, endDir: [2]float64{5, 0}},
		},
		// 3 Cubic curves use one control point per end
		{
			"M 0 0 C 0 5 10 5 10 0",
			pathEnds{start: [2]float64{0, 10}, startDir: [2]float64{0, 5}, end: [2]float64{10, 10}, endDir: [2]float64{10, 5}},
		},
		// 4 Arcs are treated as chords
		{
			"M 0 0 A 5 5 0 0 1 10 0",
			pathEnds{start: [2]float64{0, 10}, startDir: [2]float64{10, 10}, end: [2]float64{10, 10}, endDir: [2]float64{0, 10}},
		},
	}
	for i, line := range data {
		p, ends := buildPath(mustPathData(t, line.input), 10)
		ut.AssertEqualIndex(t, i, true, p != nil)
		if diff := cmp.Diff(line.expected, ends, cmp.AllowUnexported(pathEnds{})); diff != "" {
			t.Errorf("%d: buildPath() mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestBuildPathEmpty(t *testing.T) {
	t.Parallel()
	p, _ := buildPath(mustPathData(t, "M 1 1"), 10)
	ut.AssertEqual(t, true, p == nil)
	p, _ = buildPath(nil, 10)
	ut.AssertEqual(t, true, p == nil)
}

func TestParseDash(t *testing.T) {
	t.Parallel()
	data := []struct {
		input    string
		expected []float64
	}{
		// 0 Pairs
		{"5 5", []float64{5, 5}},
		// 1 Odd counts repeat
		{"3", []float64{3, 3}},
		// 2 Commas
		{"1,2", []float64{1, 2}},
		// 3 Invalid
		{"a", nil},
		// 4 Zero length
		{"0 0", nil},
		// 5 Empty
		{"", nil},
	}
	for i, line := range data {
		ut.AssertEqualIndex(t, i, line.expected, parseDash(line.input))
	}
}

func TestPaint(t *testing.T) {
	t.Parallel()
	_, ok := paint("none")
	ut.AssertEqual(t, false, ok)
	_, ok = paint("")
	ut.AssertEqual(t, false, ok)
	_, ok = paint("bogus")
	ut.AssertEqual(t, false, ok)
	c, ok := paint("#f00")
	ut.AssertEqual(t, true, ok)
	r, g, b, a := c.RGBA()
	ut.AssertEqual(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
}
