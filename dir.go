// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

// direction is a heading on the grid. Values are bit flags so that a set of tried directions fits
// in one direction value.
type direction uint8

const (
	dirNone direction = 0
	dirUp   direction = 1 << iota
	dirDown
	dirLeft
	dirRight
)

type dirInfo struct {
	name     string
	dRow     int
	dCol     int
	reverse  direction
	vertical bool
	// clockwise is the preferred turn when following a wall clockwise.
	clockwise direction
}

var dirTable = map[direction]dirInfo{
	dirUp:    {"up", -1, 0, dirDown, true, dirRight},
	dirDown:  {"down", 1, 0, dirUp, true, dirLeft},
	dirLeft:  {"left", 0, -1, dirRight, false, dirUp},
	dirRight: {"right", 0, 1, dirLeft, false, dirDown},
}

func (d direction) String() string {
	if i, ok := dirTable[d]; ok {
		return i.name
	}
	return "none"
}

// step returns the row and column increments for one move in d.
func (d direction) step() (dRow, dCol int) {
	i := dirTable[d]
	return i.dRow, i.dCol
}

func (d direction) reverse() direction {
	return dirTable[d].reverse
}

func (d direction) vertical() bool {
	return dirTable[d].vertical
}

func (d direction) clockwise() direction {
	return dirTable[d].clockwise
}

// has returns true if every direction in o is set in d.
func (d direction) has(o direction) bool {
	return o != dirNone && d&o == o
}
