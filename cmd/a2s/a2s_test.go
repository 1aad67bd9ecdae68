// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maruel/ut"
)

func TestParseScale(t *testing.T) {
	t.Parallel()
	data := []struct {
		input string
		x, y  float64
		err   bool
	}{
		// 0 Default
		{"9,16", 9, 16, false},
		// 1 Spaces and fractions
		{" 4.5 , 8 ", 4.5, 8, false},
		// 2 Single value
		{"9", 0, 0, true},
		// 3 Too many values
		{"9,16,2", 0, 0, true},
		// 4 Not a number
		{"nine,16", 0, 0, true},
		// 5 Zero
		{"0,16", 0, 0, true},
		// 6 Negative
		{"9,-16", 0, 0, true},
	}
	for i, line := range data {
		x, y, err := parseScale(line.input)
		ut.AssertEqualIndex(t, i, line.err, err != nil)
		ut.AssertEqualIndex(t, i, line.x, x)
		ut.AssertEqualIndex(t, i, line.y, y)
	}
}

func TestReadInputStripsBOM(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("\xef\xbb\xbf+--+"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := readInput(path)
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, "+--+", string(b))
}
