// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"recallui.org/f32"
	"recallui.org/gesture"
	"recallui.org/layout"
	"recallui.org/memory"
	"recallui.org/op/paint"
)

// ZoomRotateState is the zoom and rotation of a ZoomRotate view.
type ZoomRotateState struct {
	Zoom float32 `yaml:"zoom"`
	// Rotation is in radians, positive clockwise.
	Rotation float32 `yaml:"rotation"`
}

// Default implements memory.Defaulter.
func (ZoomRotateState) Default() ZoomRotateState {
	return ZoomRotateState{Zoom: 1}
}

// ZoomRotate is a canvas showing an arrow that follows pinch and
// rotate gestures of two or more fingers. The arrow returns to rest
// when the fingers are lifted.
type ZoomRotate struct {
	// IDSource tells sibling views apart. It defaults to
	// "zoom_rotate".
	IDSource any
	// Size of the canvas. Zero means the available space.
	Size f32.Point
}

const (
	// zoomRotateHalfLife is the time in seconds for half of the zoom
	// and rotation to return to rest.
	zoomRotateHalfLife = 1.
	// zoomRotateRest is the distance from rest below which the
	// arrow snaps to rest.
	zoomRotateRest = 1e-3
)

// Layout draws the canvas and returns the updated state.
func (z ZoomRotate) Layout(gtx *layout.Context) ZoomRotateState {
	src := z.IDSource
	if src == nil {
		src = "zoom_rotate"
	}
	sid := gtx.MakePersistentID(src)
	size := z.Size
	if size == (f32.Point{}) {
		size = gtx.AvailableRectFinite().Size()
	}
	r := gtx.Allocate(size)
	// Claim the pointer so that the first finger does not also drag
	// an enclosing scroll area.
	gtx.Interact(r, sid, gesture.SenseDrag)

	st := *memory.GetOrDefault[ZoomRotateState](&gtx.Memory.IDData, sid)
	width := float32(1)
	col := nrgba(colornames.Gray)
	if mt := gtx.Input.Touch; mt != nil && r.Contains(mt.Center) {
		st.Zoom *= mt.ZoomDelta
		st.Rotation += mt.RotationDelta
		width += 10 * mt.Force
		col = touchColor(mt.NumTouches)
		gtx.RequestRepaint()
	} else {
		f := float32(math.Exp(-math.Ln2 / zoomRotateHalfLife * float64(gtx.Input.Dt)))
		st.Zoom = 1 + (st.Zoom-1)*f
		st.Rotation *= f
		if abs(st.Zoom-1) < zoomRotateRest && abs(st.Rotation) < zoomRotateRest {
			st = st.Default()
		} else {
			gtx.RequestRepaint()
		}
	}
	memory.Insert(&gtx.Memory.IDData, sid, st)

	paint.Fill(gtx.Ops, r, 0, gtx.Style.Visuals.DarkBg)
	// One unit is half the shorter side of the canvas.
	scale := min(r.Dx(), r.Dy()) / 2
	tr := func(p f32.Point) f32.Point {
		sin, cos := math.Sincos(float64(st.Rotation))
		s, c := float32(sin), float32(cos)
		return f32.Pt(p.X*c-p.Y*s, p.X*s+p.Y*c).Mul(st.Zoom * scale)
	}
	start := r.Center().Add(tr(f32.Pt(-.5, .5)))
	dir := tr(f32.Pt(1, -1))
	arrow(gtx, start, dir, width, col)
	return st
}

// arrow draws a line from start along dir with a head at the end.
func arrow(gtx *layout.Context, start, dir f32.Point, width float32, c color.NRGBA) {
	end := start.Add(dir)
	line := func(a, b f32.Point) {
		paint.LineOp{A: a, B: b, Width: width, Color: c}.Add(gtx.Ops)
	}
	line(start, end)
	tip := dir.Mul(-.25)
	for _, a := range [...]float64{math.Pi / 5, -math.Pi / 5} {
		sin, cos := math.Sincos(a)
		s, co := float32(sin), float32(cos)
		line(end, end.Add(f32.Pt(tip.X*co-tip.Y*s, tip.X*s+tip.Y*co)))
	}
}

func touchColor(n int) color.NRGBA {
	switch n {
	case 2:
		return nrgba(colornames.Green)
	case 3:
		return nrgba(colornames.Blue)
	case 4:
		return nrgba(colornames.Yellow)
	default:
		return nrgba(colornames.Red)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
