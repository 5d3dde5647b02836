// SPDX-License-Identifier: Unlicense OR MIT

package ops

import (
	"encoding/binary"
	"image/color"
	"math"

	"recallui.org/f32"
	"recallui.org/internal/opconst"
	"recallui.org/op"
	"recallui.org/op/paint"
)

// Reader parses an ops list.
type Reader struct {
	pc  int
	ops *op.Ops
}

// EncodedOp represents an encoded op returned by
// Reader.
type EncodedOp struct {
	Type opconst.OpType
	Data []byte
}

// Reset start reading from the op list.
func (r *Reader) Reset(ops *op.Ops) {
	r.pc = 0
	r.ops = ops
}

func (r *Reader) Decode() (EncodedOp, bool) {
	if r.ops == nil {
		return EncodedOp{}, false
	}
	data := r.ops.Data()[r.pc:]
	if len(data) == 0 {
		return EncodedOp{}, false
	}
	t := opconst.OpType(data[0])
	n := t.Size()
	r.pc += n
	return EncodedOp{Type: t, Data: data[:n]}, true
}

// DecodeFill decodes a FillOp.
func DecodeFill(data []byte) paint.FillOp {
	if opconst.OpType(data[0]) != opconst.TypeFill {
		panic("invalid op")
	}
	return paint.FillOp{
		Rect:   decodeRect(data[1:]),
		Radius: decodeFloat(data[17:]),
		Color:  decodeColor(data[21:]),
	}
}

// DecodeStroke decodes a StrokeOp.
func DecodeStroke(data []byte) paint.StrokeOp {
	if opconst.OpType(data[0]) != opconst.TypeStroke {
		panic("invalid op")
	}
	return paint.StrokeOp{
		Rect:   decodeRect(data[1:]),
		Radius: decodeFloat(data[17:]),
		Width:  decodeFloat(data[21:]),
		Color:  decodeColor(data[25:]),
	}
}

// DecodeLine decodes a LineOp.
func DecodeLine(data []byte) paint.LineOp {
	if opconst.OpType(data[0]) != opconst.TypeLine {
		panic("invalid op")
	}
	r := decodeRect(data[1:])
	return paint.LineOp{
		A:     r.Min,
		B:     r.Max,
		Width: decodeFloat(data[17:]),
		Color: decodeColor(data[21:]),
	}
}

// DecodeClip decodes the rectangle of a clip push.
func DecodeClip(data []byte) f32.Rectangle {
	if opconst.OpType(data[0]) != opconst.TypeClip {
		panic("invalid op")
	}
	return decodeRect(data[1:])
}

// Fills returns every FillOp in ops, in order.
func Fills(ops *op.Ops) []paint.FillOp {
	var fills []paint.FillOp
	var r Reader
	r.Reset(ops)
	for encOp, ok := r.Decode(); ok; encOp, ok = r.Decode() {
		if encOp.Type == opconst.TypeFill {
			fills = append(fills, DecodeFill(encOp.Data))
		}
	}
	return fills
}

// Count returns the number of ops of type t in ops.
func Count(ops *op.Ops, t opconst.OpType) int {
	n := 0
	var r Reader
	r.Reset(ops)
	for encOp, ok := r.Decode(); ok; encOp, ok = r.Decode() {
		if encOp.Type == t {
			n++
		}
	}
	return n
}

func decodeRect(data []byte) f32.Rectangle {
	return f32.Rectangle{
		Min: f32.Point{X: decodeFloat(data[0:]), Y: decodeFloat(data[4:])},
		Max: f32.Point{X: decodeFloat(data[8:]), Y: decodeFloat(data[12:])},
	}
}

func decodeFloat(data []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data))
}

func decodeColor(data []byte) color.NRGBA {
	return color.NRGBA{R: data[0], G: data[1], B: data[2], A: data[3]}
}
