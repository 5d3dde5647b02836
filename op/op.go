// SPDX-License-Identifier: Unlicense OR MIT

/*

Package op implements operations for updating a user interface.

Widgets describe their appearance by adding operations to an Ops
list; a rendering backend outside this module replays the list
and rasterizes it. Drawing operations live in package paint and
clipping in package clip.

Drawing a rounded, filled rectangle:

	ops := new(op.Ops)
	paint.FillOp{Rect: r, Radius: 4, Color: c}.Add(ops)

The list is reset at the start of every frame:

	ops.Reset()

InvalidateOp asks the frame driver for another frame, for example
while a kinetic scroll is still moving.

*/
package op

import (
	"recallui.org/internal/opconst"
)

// Ops holds a list of operations. Operations are stored in
// serialized form to avoid garbage during construction of
// the ops list.
type Ops struct {
	// data contains the serialized operations.
	data []byte

	clipStack stack
}

// InvalidateOp requests an immediate redraw.
type InvalidateOp struct{}

// stack tracks the integer identities of push/pop pairs to
// ensure correct nesting.
type stack struct {
	currentID int
	nextID    int
}

// StackID identifies one push on a stack.
type StackID struct {
	id   int
	prev int
}

// Reset the Ops, preparing it for re-use.
func (o *Ops) Reset() {
	o.clipStack = stack{}
	o.data = o.data[:0]
}

// Data is for internal use only.
func (o *Ops) Data() []byte {
	return o.data
}

// Write is for internal use only.
func (o *Ops) Write(n int) []byte {
	o.data = append(o.data, make([]byte, n)...)
	return o.data[len(o.data)-n:]
}

// PushClip is for internal use only.
func (o *Ops) PushClip() StackID {
	return o.clipStack.push()
}

// PopClip is for internal use only.
func (o *Ops) PopClip(id StackID) {
	o.clipStack.pop(id)
}

func (r InvalidateOp) Add(o *Ops) {
	data := o.Write(opconst.TypeInvalidateLen)
	data[0] = byte(opconst.TypeInvalidate)
}

func (s *stack) push() StackID {
	s.nextID++
	sid := StackID{
		id:   s.nextID,
		prev: s.currentID,
	}
	s.currentID = s.nextID
	return sid
}

func (s *stack) check(sid StackID) {
	if s.currentID != sid.id {
		panic("unbalanced operation")
	}
}

func (s *stack) pop(sid StackID) {
	s.check(sid)
	s.currentID = sid.prev
}
