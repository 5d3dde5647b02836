// SPDX-License-Identifier: Unlicense OR MIT

package clip

import (
	"encoding/binary"
	"math"

	"recallui.org/f32"
	"recallui.org/internal/opconst"
	"recallui.org/op"
)

// Rect represents the clip area of a rectangle.
type Rect f32.Rectangle

// Stack represents a Rect on the clip stack.
type Stack struct {
	ops *op.Ops
	id  op.StackID
}

// Push the clip area on the clip stack.
func (r Rect) Push(o *op.Ops) Stack {
	id := o.PushClip()
	data := o.Write(opconst.TypeClipLen)
	data[0] = byte(opconst.TypeClip)
	bo := binary.LittleEndian
	bo.PutUint32(data[1:], math.Float32bits(r.Min.X))
	bo.PutUint32(data[5:], math.Float32bits(r.Min.Y))
	bo.PutUint32(data[9:], math.Float32bits(r.Max.X))
	bo.PutUint32(data[13:], math.Float32bits(r.Max.Y))
	return Stack{ops: o, id: id}
}

// Pop the clip area off the clip stack.
func (s Stack) Pop() {
	s.ops.PopClip(s.id)
	data := s.ops.Write(opconst.TypePopClipLen)
	data[0] = byte(opconst.TypePopClip)
}
