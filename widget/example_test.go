// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"fmt"
	"time"

	"recallui.org/f32"
	"recallui.org/io/input"
	"recallui.org/layout"
	"recallui.org/memory"
	"recallui.org/op"
	"recallui.org/widget"
)

func ExampleGrid() {
	var root layout.Root
	var ops op.Ops
	label := func(w float32) layout.Widget {
		return func(gtx *layout.Context) {
			gtx.Allocate(f32.Pt(w, 14))
		}
	}
	// The grid measures its cells in the first frame and lays them
	// out with the measured sizes from then on.
	for frame := 0; frame < 2; frame++ {
		ops.Reset()
		in := &input.Frame{Now: time.Duration(frame) * time.Second / 60, Dt: 1. / 60}
		gtx := root.Frame(in, f32.Rect(0, 0, 640, 480), &ops)
		widget.Grid{IDSource: "settings", Striped: true}.Layout(gtx, func(l *widget.GridLayout) {
			l.Cell(label(60))
			l.Cell(label(120))
			l.EndRow()
			l.Cell(label(85))
			l.Cell(label(30))
			l.EndRow()
		})
		s, _ := memory.Get[widget.GridState](&gtx.Memory.IDData, gtx.MakePersistentID("settings"))
		fmt.Println(s.ColWidths, root.RepaintRequested())
	}

	// Output:
	// [85 120] true
	// [85 120] false
}

func ExampleScrollArea() {
	var root layout.Root
	var ops op.Ops
	in := &input.Frame{Dt: 1. / 60}
	gtx := root.Frame(in, f32.Rect(0, 0, 640, 480), &ops)
	r := widget.ScrollArea{MaxHeight: 100}.Begin(gtx)
	for i := 0; i < 20; i++ {
		if i == 7 {
			// Bring the eighth row to the top of the area.
			r.Content.ScrollToCursor(0)
		}
		r.Content.Allocate(f32.Pt(200, 16))
	}
	r.End()
	fmt.Println(r.State().Offset.Y, r.State().ShowScroll)

	// Output:
	// 140 true
}
