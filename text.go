// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"strings"

	"github.com/asciitosvg/a2s/internal/logging"
)

// Text anchors sit slightly left of and below the cell center so that a monospace run lines up
// with the grid.
const (
	textOffsetX = -0.6
	textOffsetY = 0.3
)

// findText picks up everything left on the grid once boxes, lines and corners are gone. Text
// inside a box with a dark fill gets a light fill.
func (d *detector) findText() {
	boxes := d.objs.group(GroupBoxes).paths()
	texts := d.objs.group(GroupText)

	for r, row := range d.grid {
		for c := 0; c < len(row); {
			if row[c].isSpace() {
				c++
				continue
			}
			start := c

			// A run eats at most one space between characters.
			var b strings.Builder
			b.WriteByte(byte(row[c]))
			c++
			for c < len(row) && !row[c].isSpace() {
				b.WriteByte(byte(row[c]))
				c++
				if d.grid.at(r, c) == ' ' {
					b.WriteByte(' ')
					c++
				}
			}

			anchor := d.scale.Point(float64(start)+textOffsetX, float64(r)+textOffsetY, 0)
			t := newText(anchor, strings.TrimRight(b.String(), " "))
			t.row, t.col = r, start
			d.contrast(t, boxes)
			d.commit(texts, t)
			logging.Debug("found text", "id", t.id, "text", t.text)
		}
	}
}

// contrast sets a light fill on t when it sits inside a box whose fill is too dark for black
// text. Boxes are evaluated in discovery order; a later containing box overrides an earlier one.
func (d *detector) contrast(t *Text, boxes []*Path) {
	for _, b := range boxes {
		if !b.HasPoint(t.anchor.X, t.anchor.Y) {
			continue
		}
		light, ok := needsLightText(b.Option("fill"))
		if !ok {
			continue
		}
		if light {
			t.SetOption("fill", "#fff")
		} else {
			delete(t.options, "fill")
		}
	}
}
