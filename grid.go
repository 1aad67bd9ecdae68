// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"bytes"
	"strings"
)

// grid is the character matrix of a diagram. Rows may have different lengths. (0, 0) is the
// top-left cell.
type grid [][]char

// newGrid splits data into rows, expanding tabs to tabWidth columns.
func newGrid(data []byte, tabWidth int) grid {
	lines := bytes.Split(data, []byte("\n"))
	g := make(grid, len(lines))
	for r, line := range lines {
		line = bytes.TrimSuffix(line, []byte("\r"))
		row := make([]char, 0, len(line))
		for _, b := range line {
			if b == '\t' && tabWidth > 0 {
				n := tabWidth - len(row)%tabWidth
				for ; n > 0; n-- {
					row = append(row, ' ')
				}
				continue
			}
			row = append(row, char(b))
		}
		g[r] = row
	}
	return g
}

// at returns the char at row, col or absent when the cell lies outside the grid.
func (g grid) at(row, col int) char {
	if row < 0 || col < 0 || row >= len(g) || col >= len(g[row]) {
		return absent
	}
	return g[row][col]
}

// set stores c at row, col. Out of range writes are ignored.
func (g grid) set(row, col int, c char) {
	if row < 0 || col < 0 || row >= len(g) || col >= len(g[row]) {
		return
	}
	g[row][col] = c
}

// clear blanks the cell at row, col.
func (g grid) clear(row, col int) {
	g.set(row, col, ' ')
}

// width returns the length of the longest row.
func (g grid) width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

func (g grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(rune(c))
		}
	}
	return b.String()
}
