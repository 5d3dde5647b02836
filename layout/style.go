// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"
	"time"

	"golang.org/x/image/colornames"

	"recallui.org/anim"
	"recallui.org/f32"
	"recallui.org/gesture"
	"recallui.org/unit"
)

// Style controls the spacing and look of widgets.
type Style struct {
	Spacing Spacing
	Visuals Visuals
	Debug   Debug
	// AnimationTime is the duration of boolean transitions such as a
	// scroll bar appearing.
	AnimationTime time.Duration
}

// Spacing holds the distances between and sizes of widgets, in
// logical pixels unless otherwise noted.
type Spacing struct {
	// ItemSpacing is the gap between consecutive widgets.
	ItemSpacing f32.Point
	// InteractSize is the minimum size of an interactive widget.
	InteractSize f32.Point
	// ScrollBarWidth is the width of a scroll bar, excluding the
	// margin to the content.
	ScrollBarWidth unit.Value
	// ScrollHandleMin is the minimum length of a scroll handle.
	ScrollHandleMin unit.Value
}

// Visuals holds colors.
type Visuals struct {
	// Dark selects the dark variant of light/dark color pairs.
	Dark bool
	// ClipMargin expands content clip rectangles so that focus rings
	// at the edges stay visible.
	ClipMargin float32
	// DarkBg is the background of recessed areas such as scroll
	// bar tracks.
	DarkBg  color.NRGBA
	Widgets Widgets
}

// Widgets holds the colors of interactive widgets by state.
type Widgets struct {
	Inactive WidgetVisuals
	Hovered  WidgetVisuals
	Active   WidgetVisuals
}

// WidgetVisuals are the colors of a widget in one interaction state.
type WidgetVisuals struct {
	BgFill   color.NRGBA
	FgFill   color.NRGBA
	FgStroke Stroke
}

// Stroke is a line width and color.
type Stroke struct {
	Width float32
	Color color.NRGBA
}

// Debug enables layout diagnostics.
type Debug struct {
	// ShowExpandWidth marks grid cells wider than predicted.
	ShowExpandWidth bool
	// ShowExpandHeight marks grid cells taller than predicted.
	ShowExpandHeight bool
	// WarnIDClash logs widgets that share an ID within a frame.
	WarnIDClash bool
}

// DefaultStyle returns the dark default style.
func DefaultStyle() *Style {
	return &Style{
		Spacing: Spacing{
			ItemSpacing:     f32.Pt(8, 4),
			InteractSize:    f32.Pt(40, 20),
			ScrollBarWidth:  unit.Dp(16),
			ScrollHandleMin: unit.Dp(8),
		},
		Visuals: Visuals{
			Dark:       true,
			ClipMargin: 1,
			DarkBg:     nrgba(colornames.Black, 0xff),
			Widgets: Widgets{
				Inactive: WidgetVisuals{
					BgFill:   nrgba(colornames.Dimgray, 0xff),
					FgFill:   nrgba(colornames.Gray, 0xff),
					FgStroke: Stroke{Width: 1, Color: nrgba(colornames.Darkgray, 0xff)},
				},
				Hovered: WidgetVisuals{
					BgFill:   nrgba(colornames.Gray, 0xff),
					FgFill:   nrgba(colornames.Silver, 0xff),
					FgStroke: Stroke{Width: 1.5, Color: nrgba(colornames.Lightgray, 0xff)},
				},
				Active: WidgetVisuals{
					BgFill:   nrgba(colornames.Darkgray, 0xff),
					FgFill:   nrgba(colornames.White, 0xff),
					FgStroke: Stroke{Width: 2, Color: nrgba(colornames.White, 0xff)},
				},
			},
		},
		AnimationTime: anim.DefaultDuration,
	}
}

// Interact returns the visuals for a widget in the state described
// by r.
func (s *Style) Interact(r gesture.Response) WidgetVisuals {
	switch {
	case r.Active:
		return s.Visuals.Widgets.Active
	case r.Hovered:
		return s.Visuals.Widgets.Hovered
	default:
		return s.Visuals.Widgets.Inactive
	}
}

func nrgba(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
