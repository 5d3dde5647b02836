// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"golang.org/x/exp/maps"

	"recallui.org/f32"
	"recallui.org/id"
)

// ScrollTarget is a request to scroll content position Y into view.
type ScrollTarget struct {
	// Y is the target position in layout coordinates, typically an
	// edge of a widget rectangle.
	Y float32
	// CenterRatio places the target within the visible area: 0 at
	// the top, 0.5 in the middle, 1 at the bottom.
	CenterRatio float32
}

// FrameState holds values derived during one frame. It is reset by
// Begin at the start of every frame.
type FrameState struct {
	scrollTarget *ScrollTarget
	repaint      bool
	ids          map[id.ID]f32.Rectangle
}

// Begin resets the state for a new frame.
func (f *FrameState) Begin() {
	f.scrollTarget = nil
	f.repaint = false
	maps.Clear(f.ids)
}

// SetScrollTarget replaces the pending scroll request. A nil target
// clears it. Requests do not queue: the latest one wins.
func (f *FrameState) SetScrollTarget(t *ScrollTarget) {
	if t == nil {
		f.scrollTarget = nil
		return
	}
	tt := *t
	f.scrollTarget = &tt
}

// ScrollTarget returns a copy of the pending scroll request, or nil.
// A scroll area that acts on the request clears it so that
// enclosing areas do not act on it too.
func (f *FrameState) ScrollTarget() *ScrollTarget {
	if f.scrollTarget == nil {
		return nil
	}
	t := *f.scrollTarget
	return &t
}

// RequestRepaint records that the UI has not settled and needs
// another frame.
func (f *FrameState) RequestRepaint() {
	f.repaint = true
}

// RepaintRequested reports whether a repaint was requested during
// the frame.
func (f *FrameState) RepaintRequested() bool {
	return f.repaint
}

func (f *FrameState) registerID(key id.ID, r f32.Rectangle) (f32.Rectangle, bool) {
	if prev, ok := f.ids[key]; ok {
		return prev, true
	}
	if f.ids == nil {
		f.ids = make(map[id.ID]f32.Rectangle)
	}
	f.ids[key] = r
	return f32.Rectangle{}, false
}
