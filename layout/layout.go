// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"log"
	"os"

	"recallui.org/f32"
	"recallui.org/gesture"
	"recallui.org/id"
	"recallui.org/io/input"
	"recallui.org/memory"
	"recallui.org/op"
	"recallui.org/unit"
)

var logger = log.New(os.Stderr, "recallui: ", log.LstdFlags)

// Root owns the state of one UI context and starts its frames.
type Root struct {
	// Memory is created on the first frame if nil.
	Memory *memory.Memory
	// Style defaults to DefaultStyle.
	Style  *Style
	Metric unit.Metric

	frame FrameState
}

// Frame starts a new frame covering screen and returns the
// outermost layout context. Ops are appended to ops.
func (r *Root) Frame(in *input.Frame, screen f32.Rectangle, ops *op.Ops) *Context {
	if r.Memory == nil {
		r.Memory = new(memory.Memory)
	}
	if r.Style == nil {
		r.Style = DefaultStyle()
	}
	r.frame.Begin()
	memory.Data[gesture.Interaction](&r.Memory.Temp).Begin(in)
	return &Context{
		Memory:  r.Memory,
		Frame:   &r.frame,
		Input:   in,
		Style:   r.Style,
		Metric:  r.Metric,
		Ops:     ops,
		id:      id.Root,
		maxRect: screen,
		cursor:  screen.Min,
		clip:    screen,
		minRect: f32.RectFromMinSize(screen.Min, f32.Point{}),
	}
}

// RepaintRequested reports whether the last frame asked for another
// one.
func (r *Root) RepaintRequested() bool {
	return r.frame.RepaintRequested()
}

// Inset adds space around a widget.
type Inset struct {
	Top, Right, Bottom, Left unit.Value
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v unit.Value) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Layout a widget inside the inset area and allocate the result,
// insets included, in gtx.
func (in Inset) Layout(gtx *Context, w Widget) f32.Rectangle {
	top := gtx.Px(in.Top)
	right := gtx.Px(in.Right)
	bottom := gtx.Px(in.Bottom)
	left := gtx.Px(in.Left)
	avail := gtx.AvailableRect()
	inner := f32.Rectangle{
		Min: avail.Min.Add(f32.Pt(left, top)),
		Max: avail.Max.Sub(f32.Pt(right, bottom)),
	}
	if inner.Max.X < inner.Min.X {
		inner.Max.X = inner.Min.X
	}
	if inner.Max.Y < inner.Min.Y {
		inner.Max.Y = inner.Min.Y
	}
	child := gtx.Child(inner)
	w(child)
	used := child.MinRect()
	outer := f32.Rectangle{
		Min: avail.Min,
		Max: used.Max.Add(f32.Pt(right, bottom)),
	}
	gtx.AllocateRect(outer)
	return outer
}
