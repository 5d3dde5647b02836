// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Widgets call Interact once per frame with the rectangle they occupy
and the gestures they care about. Which widget owns the pointer
between frames is kept in an Interaction value stored in the UI
memory, since the widgets themselves do not survive the frame.
*/
package gesture

import (
	"recallui.org/f32"
	"recallui.org/id"
	"recallui.org/io/input"
)

// Sense is the set of gestures a widget responds to.
type Sense struct {
	Click bool
	Drag  bool
}

var (
	// SenseHover only detects hovering.
	SenseHover = Sense{}
	// SenseClick detects clicks.
	SenseClick = Sense{Click: true}
	// SenseDrag detects drags.
	SenseDrag = Sense{Drag: true}
	// SenseClickAndDrag detects both.
	SenseClickAndDrag = Sense{Click: true, Drag: true}
)

// Response is the result of interacting with a widget during one
// frame.
type Response struct {
	ID    id.ID
	Rect  f32.Rectangle
	Sense Sense
	// Hovered reports whether the pointer is over the widget.
	Hovered bool
	// Active reports whether the widget owns the pointer, that is
	// it was pressed and the pointer is still held.
	Active bool
	// Pressed reports whether the press started this frame.
	Pressed bool
	// Clicked reports a press and release over the widget.
	Clicked bool
}

// Interaction is the pointer ownership shared by all widgets of a
// UI context.
type Interaction struct {
	active    id.ID
	hasActive bool
}

// Begin prepares the interaction state for a new frame: ownership
// ends once the pointer is up and its release has been reported.
func (it *Interaction) Begin(in *input.Frame) {
	if !in.Pointer.Down && !in.Pointer.Released {
		it.hasActive = false
	}
}

// Active returns the widget that owns the pointer, if any.
func (it *Interaction) Active() (id.ID, bool) {
	return it.active, it.hasActive
}

// Interact computes the response of widget key occupying r, visible
// through clip.
func (it *Interaction) Interact(in *input.Frame, clip, r f32.Rectangle, key id.ID, s Sense) Response {
	resp := Response{ID: key, Rect: r, Sense: s}
	p := in.Pointer
	over := p.HasPos && r.Contains(p.Pos) && clip.Contains(p.Pos)
	if it.hasActive && it.active != key {
		// Another widget owns the pointer.
		return resp
	}
	resp.Hovered = over
	if !s.Click && !s.Drag {
		return resp
	}
	if p.Pressed && over && !it.hasActive {
		it.active, it.hasActive = key, true
		resp.Pressed = true
	}
	if !it.hasActive {
		return resp
	}
	if p.Down {
		resp.Active = true
		return resp
	}
	if p.Released {
		resp.Clicked = s.Click && over
	}
	it.hasActive = false
	return resp
}
