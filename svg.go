// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// shadowMatrix darkens the offset copy of a box into its shadow.
var shadowMatrix = [20]float64{
	0.2, 0, 0, 0, 0,
	0, 0.2, 0, 0, 0,
	0, 0, 0.2, 0, 0,
	0, 0, 0, 1, 0,
}

// WriteSVG writes the diagram as an SVG 1.1 document.
func (d *Diagram) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(d.Width(), d.Height(), `version="1.1"`)
	canvas.Desc("Created with ASCIIToSVG")
	writeDefs(canvas)

	// Groups render in order so that text and lines draw on top of box fills.
	for _, g := range d.groups {
		canvas.Group(append([]string{`id="` + escape(g.Name) + `"`}, g.Options.Attributes()...)...)
		for _, o := range g.Objects {
			switch t := o.(type) {
			case *Path:
				d.writePath(canvas, t)
			case *Text:
				writeText(canvas, t)
			}
		}
		canvas.Gend()
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func writeDefs(canvas *svg.SVG) {
	canvas.Def()

	canvas.Filter("dsFilter", `width="150%"`, `height="150%"`)
	canvas.FeOffset(svg.Filterspec{In: "SourceGraphic", Result: "offOut"}, 3, 3)
	canvas.FeColorMatrix(svg.Filterspec{In: "offOut", Result: "matrixOut"}, shadowMatrix)
	canvas.FeGaussianBlur(svg.Filterspec{In: "matrixOut", Result: "blurOut"}, 3, 3)
	canvas.FeBlend(svg.Filterspec{In: "SourceGraphic", In2: "blurOut"}, "normal")
	canvas.Fend()

	canvas.Filter("dsFilterNoBlur", `width="150%"`, `height="150%"`)
	canvas.FeOffset(svg.Filterspec{In: "SourceGraphic", Result: "offOut"}, 3, 3)
	canvas.FeColorMatrix(svg.Filterspec{In: "offOut", Result: "matrixOut"}, shadowMatrix)
	canvas.FeBlend(svg.Filterspec{In: "SourceGraphic", In2: "matrixOut"}, "normal")
	canvas.Fend()

	arrow := []string{`viewBox="0 0 10 10"`, `markerUnits="strokeWidth"`, `orient="auto"`}
	canvas.Marker("iPointer", 5, 5, 8, 7, arrow...)
	canvas.Path("M 10 0 L 10 10 L 0 5 z")
	canvas.MarkerEnd()
	canvas.Marker("Pointer", 0, 5, 8, 7, arrow...)
	canvas.Path("M 0 0 L 10 5 L 0 10 z")
	canvas.MarkerEnd()

	canvas.DefEnd()
}

func (d *Diagram) writePath(canvas *svg.SVG, p *Path) {
	shapes := p.shapes(d.objects)
	if len(shapes) > 1 {
		canvas.Group()
		defer canvas.Gend()
	}
	for _, s := range shapes {
		canvas.Path(s.data(), append([]string{`id="` + escape(s.id) + `"`}, s.options.Attributes()...)...)
	}
}

func writeText(canvas *svg.SVG, t *Text) {
	attrs := append([]string{`id="` + escape(t.id) + `"`}, t.options.Attributes()...)
	canvas.Text(t.anchor.X, t.anchor.Y, t.text, attrs...)
}

// errWriter records the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}

func escape(s string) string {
	b := &bytes.Buffer{}
	if err := xml.EscapeText(b, []byte(s)); err != nil {
		panic(err)
	}
	return b.String()
}
