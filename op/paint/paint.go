// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"encoding/binary"
	"image/color"
	"math"

	"recallui.org/f32"
	"recallui.org/internal/opconst"
	"recallui.org/op"
)

// FillOp fills a rectangle with rounded corners.
type FillOp struct {
	Rect   f32.Rectangle
	Radius float32
	Color  color.NRGBA
}

// StrokeOp outlines a rectangle with rounded corners.
type StrokeOp struct {
	Rect   f32.Rectangle
	Radius float32
	Width  float32
	Color  color.NRGBA
}

// LineOp draws the line segment from A to B.
type LineOp struct {
	A, B  f32.Point
	Width float32
	Color color.NRGBA
}

func (f FillOp) Add(o *op.Ops) {
	data := o.Write(opconst.TypeFillLen)
	data[0] = byte(opconst.TypeFill)
	putRect(data[1:], f.Rect)
	putFloat(data[17:], f.Radius)
	putColor(data[21:], f.Color)
}

func (s StrokeOp) Add(o *op.Ops) {
	data := o.Write(opconst.TypeStrokeLen)
	data[0] = byte(opconst.TypeStroke)
	putRect(data[1:], s.Rect)
	putFloat(data[17:], s.Radius)
	putFloat(data[21:], s.Width)
	putColor(data[25:], s.Color)
}

func (l LineOp) Add(o *op.Ops) {
	data := o.Write(opconst.TypeLineLen)
	data[0] = byte(opconst.TypeLine)
	putRect(data[1:], f32.Rectangle{Min: l.A, Max: l.B})
	putFloat(data[17:], l.Width)
	putColor(data[21:], l.Color)
}

// Fill is a shorthand for adding a FillOp.
func Fill(o *op.Ops, r f32.Rectangle, radius float32, c color.NRGBA) {
	FillOp{Rect: r, Radius: radius, Color: c}.Add(o)
}

func putRect(data []byte, r f32.Rectangle) {
	putFloat(data[0:], r.Min.X)
	putFloat(data[4:], r.Min.Y)
	putFloat(data[8:], r.Max.X)
	putFloat(data[12:], r.Max.Y)
}

func putFloat(data []byte, v float32) {
	binary.LittleEndian.PutUint32(data, math.Float32bits(v))
}

func putColor(data []byte, c color.NRGBA) {
	data[0] = c.R
	data[1] = c.G
	data[2] = c.B
	data[3] = c.A
}
