// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// PNGOptions configures raster output.
type PNGOptions struct {
	// Resolution is the number of pixels per rendering unit.
	Resolution float64
	// FontSize in rendering units; 0 derives it from the cell height.
	FontSize float64
	// Background fills the canvas before anything is drawn.
	Background color.Color
}

// DefaultPNGOptions returns one pixel per unit on a white background.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Resolution: 1,
		Background: color.White,
	}
}

// shadowOffset matches the feOffset of the SVG drop shadow.
const shadowOffset = 3

var shadowColor = color.RGBA{0, 0, 0, 80}

// WritePNG rasterizes the diagram and encodes it as PNG.
func (d *Diagram) WritePNG(w io.Writer, opts PNGOptions) error {
	if opts.Resolution <= 0 {
		opts.Resolution = 1
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	width := math.Ceil(d.Width())
	height := math.Ceil(d.Height())

	c := canvas.New(width, height)
	r := &raster{ctx: canvas.NewContext(c), height: height}
	r.background(width, opts.Background)

	var texts []*Text
	var textStyles []Options
	for _, g := range d.groups {
		for _, o := range g.Objects {
			switch t := o.(type) {
			case *Path:
				for _, sh := range t.shapes(d.objects) {
					style := g.Options.clone()
					for k, v := range sh.options {
						style[k] = v
					}
					r.shape(sh.cmds, style)
				}
			case *Text:
				style := g.Options.clone()
				for k, v := range t.options {
					style[k] = v
				}
				texts = append(texts, t)
				textStyles = append(textStyles, style)
			}
		}
	}

	img := rasterizer.Draw(c, canvas.DPMM(opts.Resolution), canvas.DefaultColorSpace)

	size := opts.FontSize
	if size <= 0 {
		size = 0.95 * d.scale.Y
	}
	face, err := monoFace(size * opts.Resolution)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	defer face.Close()
	for i, t := range texts {
		drawText(img, face, t, textStyles[i], opts.Resolution)
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

func monoFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// raster draws diagram shapes onto a canvas. The canvas has its origin at the bottom left, so
// every y coordinate is mirrored against height.
type raster struct {
	ctx    *canvas.Context
	height float64
}

func (r *raster) background(width float64, c color.Color) {
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(width, 0)
	p.LineTo(width, r.height)
	p.LineTo(0, r.height)
	p.Close()
	r.ctx.SetFillColor(c)
	r.ctx.SetStrokeColor(canvas.Transparent)
	r.ctx.DrawPath(0, 0, p)
}

func (r *raster) shape(cmds []PathCommand, style Options) {
	p, ends := buildPath(cmds, r.height)
	if p == nil {
		return
	}

	r.ctx.Push()
	defer r.ctx.Pop()
	r.ctx.SetStrokeColor(canvas.Transparent)

	if fill, ok := paint(style["fill"]); ok {
		if style["filter"] != "" {
			r.ctx.SetFillColor(shadowColor)
			r.ctx.DrawPath(shadowOffset, -shadowOffset, p)
		}
		r.ctx.SetFillColor(fill)
		r.ctx.DrawPath(0, 0, p)
	}

	stroke, ok := paint(style["stroke"])
	if !ok {
		return
	}
	sw := 1.0
	if v, err := strconv.ParseFloat(style["stroke-width"], 64); err == nil && v > 0 {
		sw = v
	}
	r.ctx.SetFillColor(canvas.Transparent)
	r.ctx.SetStrokeColor(stroke)
	r.ctx.SetStrokeWidth(sw)
	if dash := parseDash(style["stroke-dasharray"]); len(dash) > 0 {
		r.ctx.SetDashes(0, dash...)
	}
	r.ctx.DrawPath(0, 0, p)

	if style["marker-start"] != "" {
		r.arrow(ends.startDir, ends.start, sw, stroke)
	}
	if style["marker-end"] != "" {
		r.arrow(ends.endDir, ends.end, sw, stroke)
	}
}

// arrow fills an arrowhead centered on to, pointing away from from. Both points are in canvas
// coordinates.
func (r *raster) arrow(from, to [2]float64, w float64, c color.Color) {
	dx, dy := to[0]-from[0], to[1]-from[1]
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	ux, uy := dx/n, dy/n
	length, half := 4*w, 1.75*w
	baseX, baseY := to[0]-ux*length/2, to[1]-uy*length/2

	p := &canvas.Path{}
	p.MoveTo(to[0]+ux*length/2, to[1]+uy*length/2)
	p.LineTo(baseX-uy*half, baseY+ux*half)
	p.LineTo(baseX+uy*half, baseY-ux*half)
	p.Close()
	r.ctx.SetStrokeColor(canvas.Transparent)
	r.ctx.SetFillColor(c)
	r.ctx.DrawPath(0, 0, p)
}

// pathEnds holds the end points of a path and, for each, a neighbouring point giving the
// direction the path arrives from.
type pathEnds struct {
	start, startDir [2]float64
	end, endDir     [2]float64
}

// buildPath converts path commands into a canvas path, mirroring y against height. Relative
// commands and the reflected control points of S and T are resolved to absolute coordinates.
// It returns nil if cmds draw nothing.
func buildPath(cmds []PathCommand, height float64) (*canvas.Path, pathEnds) {
	p := &canvas.Path{}
	var ends pathEnds
	var x, y, startX, startY float64
	var lastCtrlX, lastCtrlY float64
	var lastOp byte
	drawn := false

	pt := func(px, py float64) [2]float64 { return [2]float64{px, height - py} }
	// segment records a drawing command from the current point to (ex, ey). (c1x, c1y) is the
	// point the command leaves towards and (c2x, c2y) the one it arrives from.
	segment := func(c1x, c1y, c2x, c2y, ex, ey float64) {
		if !drawn {
			ends.start = pt(x, y)
			ends.startDir = pt(c1x, c1y)
			drawn = true
		}
		ends.endDir = pt(c2x, c2y)
		ends.end = pt(ex, ey)
		x, y = ex, ey
	}

	for _, c := range cmds {
		a := c.Args
		var ox, oy float64
		if isRelative(c.Op) {
			ox, oy = x, y
		}
		op := upper(c.Op)
		switch op {
		case 'M':
			x, y = a[0]+ox, a[1]+oy
			startX, startY = x, y
			p.MoveTo(x, height-y)
		case 'L', 'H', 'V':
			ex, ey := a[0]+ox, y
			switch op {
			case 'L':
				ey = a[1] + oy
			case 'V':
				ex, ey = x, a[0]+oy
			}
			p.LineTo(ex, height-ey)
			segment(ex, ey, x, y, ex, ey)
		case 'Q', 'T':
			var cx, cy, ex, ey float64
			if op == 'Q' {
				cx, cy, ex, ey = a[0]+ox, a[1]+oy, a[2]+ox, a[3]+oy
			} else {
				cx, cy = x, y
				if lastOp == 'Q' || lastOp == 'T' {
					cx, cy = 2*x-lastCtrlX, 2*y-lastCtrlY
				}
				ex, ey = a[0]+ox, a[1]+oy
			}
			p.QuadTo(cx, height-cy, ex, height-ey)
			segment(cx, cy, cx, cy, ex, ey)
			lastCtrlX, lastCtrlY = cx, cy
		case 'C', 'S':
			var c1x, c1y, c2x, c2y, ex, ey float64
			if op == 'C' {
				c1x, c1y, c2x, c2y, ex, ey = a[0]+ox, a[1]+oy, a[2]+ox, a[3]+oy, a[4]+ox, a[5]+oy
			} else {
				c1x, c1y = x, y
				if lastOp == 'C' || lastOp == 'S' {
					c1x, c1y = 2*x-lastCtrlX, 2*y-lastCtrlY
				}
				c2x, c2y, ex, ey = a[0]+ox, a[1]+oy, a[2]+ox, a[3]+oy
			}
			p.CubeTo(c1x, height-c1y, c2x, height-c2y, ex, height-ey)
			segment(c1x, c1y, c2x, c2y, ex, ey)
			lastCtrlX, lastCtrlY = c2x, c2y
		case 'A':
			ex, ey := a[5]+ox, a[6]+oy
			// Mirroring y reverses the sweep and the rotation.
			p.ArcTo(a[0], a[1], -a[2], a[3] != 0, a[4] == 0, ex, height-ey)
			segment(ex, ey, x, y, ex, ey)
		case 'Z':
			if x != startX || y != startY {
				segment(startX, startY, x, y, startX, startY)
			}
			p.Close()
			x, y = startX, startY
		}
		lastOp = op
	}
	if !drawn {
		return nil, ends
	}
	return p, ends
}

func drawText(img *image.RGBA, face font.Face, t *Text, style Options, res float64) {
	c, ok := paint(style["fill"])
	if !ok {
		return
	}
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(t.anchor.X * res * 64),
			Y: fixed.Int26_6(t.anchor.Y * res * 64),
		},
	}
	dr.DrawString(t.text)
}

// paint resolves an SVG paint value. "none" and unknown colors are not painted.
func paint(s string) (color.Color, bool) {
	if s == "" || s == "none" {
		return nil, false
	}
	r, g, b, err := colorToRGB(s)
	if err != nil {
		return nil, false
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 0xff}, true
}

// parseDash parses a stroke-dasharray value. Odd counts are repeated, as SVG does.
func parseDash(s string) []float64 {
	var out []float64
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' }) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v < 0 {
			return nil
		}
		out = append(out, v)
	}
	if len(out)%2 == 1 {
		out = append(out, out...)
	}
	total := 0.0
	for _, v := range out {
		total += v
	}
	if total == 0 {
		return nil
	}
	return out
}
