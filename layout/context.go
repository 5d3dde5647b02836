// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"time"

	"recallui.org/anim"
	"recallui.org/f32"
	"recallui.org/gesture"
	"recallui.org/id"
	"recallui.org/io/input"
	"recallui.org/memory"
	"recallui.org/op"
	"recallui.org/unit"
)

// Context carries the state needed by almost all layouts and widgets.
//
// A Context places widgets top to bottom starting at its cursor.
// Nested layouts such as scroll areas and grids create child
// contexts that share the memory, frame state, input and op list of
// their parent.
type Context struct {
	// Memory is the state that survives between frames.
	Memory *memory.Memory
	// Frame is the state that lives for the current frame only.
	Frame *FrameState
	// Input is the input of the current frame.
	Input *input.Frame
	Style *Style
	unit.Metric
	*op.Ops

	id      id.ID
	maxRect f32.Rectangle
	cursor  f32.Point
	clip    f32.Rectangle
	// minRect bounds everything allocated so far.
	minRect f32.Rectangle
}

// Widget is a function scope for drawing, processing events and
// allocating space for a user interface element.
type Widget func(gtx *Context)

// ID returns the ID of the context.
func (c *Context) ID() id.ID {
	return c.id
}

// MakePersistentID derives the ID of a widget from source, unique
// within this context.
func (c *Context) MakePersistentID(source any) id.ID {
	return c.id.With(source)
}

// MaxRect returns the area widgets may use. Its bottom edge may be
// infinite.
func (c *Context) MaxRect() f32.Rectangle {
	return c.maxRect
}

// Cursor returns where the next widget will be placed.
func (c *Context) Cursor() f32.Point {
	return c.cursor
}

// Clip returns the visible area of the context.
func (c *Context) Clip() f32.Rectangle {
	return c.clip
}

// SetClip replaces the visible area of the context.
func (c *Context) SetClip(r f32.Rectangle) {
	c.clip = r
}

// MinRect returns the bounds of all space allocated in the context.
func (c *Context) MinRect() f32.Rectangle {
	return c.minRect
}

// MinSize returns the size of MinRect.
func (c *Context) MinSize() f32.Point {
	return c.minRect.Size()
}

// AvailableRect returns the space left between the cursor and the
// bottom right corner of MaxRect.
func (c *Context) AvailableRect() f32.Rectangle {
	return f32.Rectangle{Min: c.cursor, Max: c.maxRect.Max}
}

// AvailableSize returns the size of AvailableRect.
func (c *Context) AvailableSize() f32.Point {
	return c.AvailableRect().Size()
}

// AvailableRectFinite is like AvailableRect, except that infinite
// edges are replaced by the edges of the allocated space.
func (c *Context) AvailableRectFinite() f32.Rectangle {
	r := c.AvailableRect()
	if r.Max.X == f32.Inf {
		r.Max.X = c.minRect.Max.X
	}
	if r.Max.Y == f32.Inf {
		r.Max.Y = c.minRect.Max.Y
	}
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

// Allocate reserves a rectangle of the given size at the cursor
// and moves the cursor below it.
func (c *Context) Allocate(size f32.Point) f32.Rectangle {
	r := f32.RectFromMinSize(c.cursor, size)
	c.AllocateRect(r)
	return r
}

// AllocateRect marks r as used and moves the cursor below it.
func (c *Context) AllocateRect(r f32.Rectangle) {
	c.minRect = c.minRect.Union(r)
	if y := r.Max.Y + c.Style.Spacing.ItemSpacing.Y; y > c.cursor.Y {
		c.cursor.Y = y
	}
}

// Child returns a context for laying out widgets inside maxRect.
// The child starts at the top left corner of maxRect with nothing
// allocated.
func (c *Context) Child(maxRect f32.Rectangle) *Context {
	return &Context{
		Memory:  c.Memory,
		Frame:   c.Frame,
		Input:   c.Input,
		Style:   c.Style,
		Metric:  c.Metric,
		Ops:     c.Ops,
		id:      c.id,
		maxRect: maxRect,
		cursor:  maxRect.Min,
		clip:    c.clip,
		minRect: f32.RectFromMinSize(maxRect.Min, f32.Point{}),
	}
}

// Now returns the time of the current frame.
func (c *Context) Now() time.Duration {
	return c.Input.Now
}

// ContainsPointer reports whether the pointer is inside the visible
// part of r.
func (c *Context) ContainsPointer(r f32.Rectangle) bool {
	p := c.Input.Pointer
	return p.HasPos && r.Contains(p.Pos) && c.clip.Contains(p.Pos)
}

// Interact computes the response of the widget key occupying r.
func (c *Context) Interact(r f32.Rectangle, key id.ID, s gesture.Sense) gesture.Response {
	c.RegisterID(key, r)
	it := memory.Data[gesture.Interaction](&c.Memory.Temp)
	return it.Interact(c.Input, c.clip, r, key, s)
}

// AnimateBool returns a value moving between 0 and 1 following
// target, and requests another frame while it is in transit.
func (c *Context) AnimateBool(key id.ID, target bool) float32 {
	m := memory.Data[anim.Manager](&c.Memory.Temp)
	v := m.Bool(key, target, c.Now(), c.Style.AnimationTime)
	if m.Active(key, c.Now(), c.Style.AnimationTime) {
		c.RequestRepaint()
	}
	return v
}

// SnapBool ends any transition of the animation for key at target.
func (c *Context) SnapBool(key id.ID, target bool) {
	memory.Data[anim.Manager](&c.Memory.Temp).Snap(key, target, c.Now())
}

// RequestRepaint asks the frame driver for another frame.
func (c *Context) RequestRepaint() {
	if !c.Frame.RepaintRequested() {
		op.InvalidateOp{}.Add(c.Ops)
	}
	c.Frame.RequestRepaint()
}

// ScrollTo asks the innermost scroll area containing the current
// widget to scroll so that position y, in the coordinates of this
// frame's layout, lies centerRatio of the way down its visible area.
func (c *Context) ScrollTo(y, centerRatio float32) {
	c.Frame.SetScrollTarget(&ScrollTarget{Y: y, CenterRatio: centerRatio})
}

// ScrollToCursor is ScrollTo for the cursor position.
func (c *Context) ScrollToCursor(centerRatio float32) {
	c.ScrollTo(c.cursor.Y, centerRatio)
}

// RegisterID records that key was used this frame. With
// Style.Debug.WarnIDClash set, a second registration of the same key
// is logged.
func (c *Context) RegisterID(key id.ID, r f32.Rectangle) {
	prev, clash := c.Frame.registerID(key, r)
	if clash && c.Style.Debug.WarnIDClash {
		logger.Printf("ID clash: %s used at %v and %v", key.Short(), prev, r)
	}
}
