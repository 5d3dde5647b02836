// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"recallui.org/f32"
	"recallui.org/gesture"
	"recallui.org/id"
	"recallui.org/internal/emath"
	"recallui.org/internal/fling"
	"recallui.org/layout"
	"recallui.org/memory"
	"recallui.org/op/clip"
	"recallui.org/op/paint"
)

// ScrollArea shows a vertically scrollable view of content taller
// than the space given to it.
type ScrollArea struct {
	// MaxHeight limits the height of the area. Zero means the area
	// may use all the available height.
	MaxHeight float32
	// AlwaysShowScroll keeps the scroll bar visible even when the
	// content fits.
	AlwaysShowScroll bool
	// IDSource tells sibling scroll areas apart. It defaults to
	// "scroll_area".
	IDSource any
}

// ScrollState is the state of a scroll area kept between frames.
type ScrollState struct {
	// Offset is how far the content is scrolled, in pixels. Only Y
	// is used.
	Offset f32.Point `yaml:"offset"`
	// ShowScroll records whether the scroll bar was shown in the
	// previous frame.
	ShowScroll bool `yaml:"show_scroll"`
	// Vel is the kinetic scroll velocity in pixels per second.
	Vel f32.Point `yaml:"-"`
}

// ScrollRegion is a scroll area in the middle of being laid out.
type ScrollRegion struct {
	// Content lays out the scrolled widgets. Its maximum height is
	// unbounded.
	Content *layout.Context

	parent *layout.Context
	id     id.ID
	state  ScrollState
	always bool
	// bar is the scroll bar width at the start of the frame.
	bar   float32
	inner f32.Rectangle
	clip  clip.Stack
	ended bool
}

const (
	// handleInset is the gap between the scroll track and handle.
	handleInset = 2
)

// Begin starts the scroll area at the cursor of gtx. Lay out the
// content in the returned region's Content, then call End.
func (s ScrollArea) Begin(gtx *layout.Context) *ScrollRegion {
	src := s.IDSource
	if src == nil {
		src = "scroll_area"
	}
	sid := gtx.MakePersistentID(src)
	state := *memory.GetOrDefault[ScrollState](&gtx.Memory.IDData, sid)

	maxBar := maxScrollBarWidth(gtx)
	var bar float32
	if s.AlwaysShowScroll {
		bar = maxBar
	} else {
		bar = maxBar * gtx.AnimateBool(sid, state.ShowScroll)
	}

	avail := gtx.AvailableRect()
	h := avail.Dy()
	if s.MaxHeight > 0 && s.MaxHeight < h {
		h = s.MaxHeight
	}
	w := avail.Dx() - bar
	inner := f32.RectFromMinSize(avail.Min, f32.Pt(max(w, 0), max(h, 0)))

	content := gtx.Child(f32.Rectangle{
		Min: inner.Min.Sub(state.Offset),
		Max: f32.Pt(inner.Max.X-state.Offset.X, f32.Inf),
	})
	cl := inner.Expand(gtx.Style.Visuals.ClipMargin).Intersect(gtx.Clip())
	// Leave room for the scroll bar even if the area was squeezed.
	if x := gtx.Clip().Max.X - bar; cl.Max.X > x {
		cl.Max.X = x
	}
	content.SetClip(cl)

	return &ScrollRegion{
		Content: content,
		parent:  gtx,
		id:      sid,
		state:   state,
		always:  s.AlwaysShowScroll,
		bar:     bar,
		inner:   inner,
		clip:    clip.Rect(cl).Push(gtx.Ops),
	}
}

// Layout lays out w in the scroll area and returns the final state.
func (s ScrollArea) Layout(gtx *layout.Context, w layout.Widget) ScrollState {
	r := s.Begin(gtx)
	w(r.Content)
	r.End()
	return r.State()
}

// ID returns the ID the region's state is stored under.
func (r *ScrollRegion) ID() id.ID {
	return r.id
}

// State returns the state of the region. After End it is the state
// saved for the next frame.
func (r *ScrollRegion) State() ScrollState {
	return r.state
}

// End processes input, paints the scroll bar, allocates the area in
// the parent context and saves the state.
func (r *ScrollRegion) End() {
	if r.ended {
		panic("widget: ScrollRegion.End called twice")
	}
	r.ended = true
	r.clip.Pop()

	gtx := r.parent
	in := gtx.Input
	content := r.Content
	contentSize := content.MinSize()
	state := r.state

	inner := r.inner
	if w := inner.Min.X + contentSize.X; w > inner.Max.X {
		inner.Max.X = w
	}
	if inner.Max.Y == f32.Inf {
		// An area without a height limit in an unbounded parent is
		// as tall as its content.
		inner.Max.Y = inner.Min.Y + contentSize.Y
	}
	outer := inner
	outer.Max.X += r.bar

	targeted := false
	if t := gtx.Frame.ScrollTarget(); t != nil {
		top := content.MinRect().Min.Y
		state.Offset.Y = t.Y - top - content.Clip().Dy()*t.CenterRatio
		state.Vel = f32.Point{}
		gtx.Frame.SetScrollTarget(nil)
		targeted = true
	}

	tooSmall := contentSize.Y > inner.Dy()
	if !targeted {
		if tooSmall {
			resp := gtx.Interact(inner, r.id.With("area"), gesture.SenseDrag)
			if resp.Active {
				state.Offset.Y -= in.Pointer.Delta.Y
				state.Vel = in.Pointer.Velocity
			} else {
				var moving bool
				state.Vel, moving = fling.Default.Step(state.Vel, in.Dt)
				if moving {
					state.Offset.Y -= state.Vel.Y * in.Dt
					gtx.RequestRepaint()
				}
			}
		}
		if gtx.ContainsPointer(outer) {
			state.Offset.Y -= in.Scroll.Y
		}
	}

	show := tooSmall || r.always
	maxBar := maxScrollBarWidth(gtx)
	bar := r.bar
	if show && bar <= 0 {
		// Appear at full width on the first frame instead of
		// growing in.
		bar = maxBar
		gtx.SnapBool(r.id, true)
		// Make room for the bar the way the next frame will. The
		// content runs under the bar until then.
		inner.Max.X = max(r.inner.Max.X-bar, inner.Min.X+contentSize.X, inner.Min.X)
		outer.Max.X = inner.Max.X + bar
	}

	if bar > 0 {
		margin := bar / maxBar * gtx.Style.Spacing.ItemSpacing.X
		left := inner.Max.X + margin
		right := outer.Max.X
		radius := (right - left) / 2
		top, bottom := inner.Min.Y, inner.Max.Y
		fromContent := func(y float32) float32 {
			return emath.RemapClamp(y, 0, contentSize.Y, top, bottom)
		}
		handleRect := func() f32.Rectangle {
			return f32.Rect(left, fromContent(state.Offset.Y), right, fromContent(state.Offset.Y+inner.Dy()))
		}
		track := f32.Rect(left, top, right, bottom)
		handle := handleRect()

		resp := gtx.Interact(track, r.id.With("vertical"), gesture.SenseClickAndDrag)
		if p := in.Pointer; !targeted && resp.Active && p.HasPos {
			if handle.Contains(p.Pos) {
				if top <= p.Pos.Y && p.Pos.Y <= bottom && inner.Dy() > 0 {
					state.Offset.Y += p.Delta.Y * contentSize.Y / inner.Dy()
				}
			} else {
				// Center the handle on the pointer.
				handleTop := p.Pos.Y - handle.Dy()/2
				state.Offset.Y = emath.Remap(handleTop, top, bottom, 0, contentSize.Y)
			}
		}
		state.Offset.Y = clampOffset(state.Offset.Y, contentSize.Y, inner.Dy())

		handle = handleRect()
		minHandle := max(2*radius, gtx.Px(gtx.Style.Spacing.ScrollHandleMin))
		if handle.Dy() < minHandle {
			handle = f32.RectFromCenterSize(handle.Center(), f32.Pt(handle.Dx(), minHandle))
		}

		v := gtx.Style.Interact(resp)
		paint.FillOp{Rect: track, Radius: radius, Color: gtx.Style.Visuals.DarkBg}.Add(gtx.Ops)
		handle = handle.Expand(-handleInset)
		paint.FillOp{Rect: handle, Radius: radius, Color: v.FgFill}.Add(gtx.Ops)
		if v.FgStroke.Width > 0 {
			paint.StrokeOp{Rect: handle, Radius: radius, Width: v.FgStroke.Width, Color: v.FgStroke.Color}.Add(gtx.Ops)
		}
	}

	gtx.AllocateRect(f32.RectFromMinSize(outer.Min, f32.Pt(outer.Dx(), min(outer.Dy(), contentSize.Y))))

	if show != state.ShowScroll {
		gtx.RequestRepaint()
	}
	state.Offset.Y = clampOffset(state.Offset.Y, contentSize.Y, inner.Dy())
	state.ShowScroll = show
	memory.Insert(&gtx.Memory.IDData, r.id, state)
	r.state = state
}

// clampOffset limits a scroll offset to the scrollable range. The
// range is empty when the content fits, and the offset is then 0.
func clampOffset(off, content, visible float32) float32 {
	return emath.Clamp(off, 0, content-visible)
}

func maxScrollBarWidth(gtx *layout.Context) float32 {
	return gtx.Style.Spacing.ItemSpacing.X + gtx.Px(gtx.Style.Spacing.ScrollBarWidth)
}
