// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package a2s recognizes boxes, lines and text in ASCII art diagrams and renders them as SVG or
// PNG. Polygons, line segments and text can be styled through references written at the bottom
// of the diagram.
//
// A Diagram is parsed from a byte slice. The byte slice is interpreted as a newline-delimited
// file, each line representing a row of the diagram. Tabs within the diagram are expanded to
// spaces based on a tab width, 8 by default.
//
// Example usage:
//
//	d, err := a2s.Parse(diagram, a2s.WithScale(9, 16), a2s.WithBlur(false))
//	if err != nil {
//		return err
//	}
//	if err := d.WriteSVG(w); err != nil {
//		return err
//	}
//
// Boxes tagged with an "a2s:type" option are drawn with the templates of a custom object,
// supplied by an ObjectProvider such as DirProvider.
package a2s
