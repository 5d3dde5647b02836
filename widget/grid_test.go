// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image/color"
	"testing"

	"golang.org/x/exp/slices"

	"recallui.org/f32"
	"recallui.org/internal/opconst"
	"recallui.org/internal/ops"
	"recallui.org/io/input"
	"recallui.org/layout"
	"recallui.org/memory"
	"recallui.org/widget"
)

func box(w, h float32) layout.Widget {
	return func(gtx *layout.Context) {
		gtx.Allocate(f32.Pt(w, h))
	}
}

// table fills a 2x2 grid with the cell widths [40, 60] and [50, 30].
func table(l *widget.GridLayout) {
	l.Cell(box(40, 10))
	l.Cell(box(60, 10))
	l.EndRow()
	l.Cell(box(50, 30))
	l.Cell(box(30, 10))
	l.EndRow()
}

func gridState(t *testing.T, gtx *layout.Context, l *widget.GridLayout) widget.GridState {
	t.Helper()
	s, ok := memory.Get[widget.GridState](&gtx.Memory.IDData, l.ID())
	if !ok {
		t.Fatal("grid state not saved")
	}
	return *s
}

func TestGridColumnWidths(t *testing.T) {
	u := newUI()
	gtx := u.frame(input.Pointer{}, f32.Point{})
	l := widget.Grid{}.Begin(gtx)
	table(l)
	l.End()
	s := gridState(t, gtx, l)
	if want := []float32{50, 60}; !slices.Equal(s.ColWidths, want) {
		t.Errorf("column widths %v, want %v", s.ColWidths, want)
	}
	// Rows are at least the interact height of 20.
	if want := []float32{20, 30}; !slices.Equal(s.RowHeights, want) {
		t.Errorf("row heights %v, want %v", s.RowHeights, want)
	}
	if !u.root.RepaintRequested() {
		t.Error("new grid sizes did not request a repaint")
	}

	gtx = u.frame(input.Pointer{}, f32.Point{})
	widget.Grid{}.Layout(gtx, table)
	if u.root.RepaintRequested() {
		t.Error("unchanged grid requested a repaint")
	}
	if got, want := gtx.MinSize(), f32.Pt(118, 54); got != want {
		t.Errorf("grid size %v, want %v", got, want)
	}
}

func TestGridAvailableRect(t *testing.T) {
	u := newUI()
	g := widget.Grid{MaxRowHeight: 25}
	gtx := u.frame(input.Pointer{}, f32.Point{})
	l := g.Begin(gtx)
	if got, want := l.AvailableRect(), f32.Rect(0, 0, 40, 25); got != want {
		t.Errorf("first cell offered %v, want %v", got, want)
	}
	l.Cell(box(70, 10))
	l.EndRow()
	// Without history the width measured above is the prediction.
	if got := l.AvailableRect().Dx(); got != 70 {
		t.Errorf("second row offered width %v, want 70", got)
	}
	l.Cell(box(90, 10))
	l.End()

	gtx = u.frame(input.Pointer{}, f32.Point{})
	l = g.Begin(gtx)
	if got := l.AvailableRect().Dx(); got != 90 {
		t.Errorf("next frame offered width %v, want 90", got)
	}
	l.End()
}

func TestGridMaxColWidth(t *testing.T) {
	u := newUI()
	g := widget.Grid{MaxColWidth: 33}
	gtx := u.frame(input.Pointer{}, f32.Point{})
	l := g.Begin(gtx)
	table(l)
	l.End()
	if s := gridState(t, gtx, l); s.ColWidths[0] != 50 {
		t.Fatalf("first column measured %v, want 50", s.ColWidths[0])
	}

	l = g.Begin(u.frame(input.Pointer{}, f32.Point{}))
	// The limit takes precedence over the width measured last frame.
	if got := l.AvailableRect().Dx(); got != 33 {
		t.Errorf("cell offered width %v, want 33", got)
	}
	table(l)
	l.End()
}

func TestGridMonotone(t *testing.T) {
	u := newUI()
	var prev []float32
	for frame := 0; frame < 6; frame++ {
		gtx := u.frame(input.Pointer{}, f32.Point{})
		l := widget.Grid{}.Begin(gtx)
		l.Cell(box(50+float32(frame)*10, 10))
		// A cell that fills the width it is offered.
		l.Cell(func(gtx *layout.Context) {
			gtx.Allocate(f32.Pt(gtx.AvailableSize().X, 10))
		})
		l.EndRow()
		l.Cell(box(45, 10))
		l.Cell(box(80, 10))
		l.End()
		s := gridState(t, gtx, l)
		for i := range prev {
			if s.ColWidths[i] < prev[i] {
				t.Fatalf("frame %d: column %d shrank from %v to %v", frame, i, prev[i], s.ColWidths[i])
			}
		}
		prev = s.ColWidths
	}
}

func TestGridPaintOrder(t *testing.T) {
	blue := color.NRGBA{B: 0xff, A: 0xff}
	green := color.NRGBA{G: 0xff, A: 0xff}
	red := color.NRGBA{R: 0xff, A: 0xff}
	g := widget.Grid{
		Striped:   true,
		HeaderRow: true,
		ColumnColors: []widget.ColumnColor{
			{Color: widget.SingleColor(blue), Pred: func(col int) bool { return col == 1 }},
		},
		CellColors: []widget.CellColor{
			{Color: widget.SingleColor(green), Pred: func(row, col int) bool { return row == 1 && col == 0 }},
		},
		Colors: map[widget.Cell]widget.Color{
			{Row: 1, Col: 1}: widget.SingleColor(red),
		},
	}
	u := newUI()
	g.Layout(u.frame(input.Pointer{}, f32.Point{}), table)
	if n := len(ops.Fills(&u.ops)); n != 0 {
		t.Errorf("first frame painted %d backgrounds without history", n)
	}

	g.Layout(u.frame(input.Pointer{}, f32.Point{}), table)
	fills := ops.Fills(&u.ops)
	white := func(a uint8) color.NRGBA { return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: a} }
	want := []struct {
		c color.NRGBA
		r f32.Rectangle
	}{
		{white(2), f32.Rect(-4, -2, 122, 22)},
		{white(19), f32.Rect(-4, -2, 122, 22)},
		{blue, f32.Rect(54, -2, 122, 56)},
		{green, f32.Rect(-4, 22, 54, 56)},
		{red, f32.Rect(54, 22, 122, 56)},
	}
	if len(fills) != len(want) {
		t.Fatalf("got %d fills, want %d", len(fills), len(want))
	}
	for i, w := range want {
		if fills[i].Color != w.c || fills[i].Rect != w.r {
			t.Errorf("fill %d: got %v %v, want %v %v", i, fills[i].Color, fills[i].Rect, w.c, w.r)
		}
	}
}

func TestGridLightColors(t *testing.T) {
	u := newUI()
	u.root.Style.Visuals.Dark = false
	g := widget.Grid{Striped: true}
	g.Layout(u.frame(input.Pointer{}, f32.Point{}), table)
	g.Layout(u.frame(input.Pointer{}, f32.Point{}), table)
	fills := ops.Fills(&u.ops)
	// Rows 0 and 2; row 2 has no history and is not painted.
	if len(fills) != 1 {
		t.Fatalf("got %d fills, want 1", len(fills))
	}
	if got, want := fills[0].Color, (color.NRGBA{A: 19}); got != want {
		t.Errorf("stripe color %v, want %v", got, want)
	}
}

func TestGridDebugOverlay(t *testing.T) {
	u := newUI()
	u.root.Style.Debug.ShowExpandWidth = true
	widget.Grid{}.Layout(u.frame(input.Pointer{}, f32.Point{}), table)
	// 60 and 50 exceed the minimum width predicted for new columns.
	if n := ops.Count(&u.ops, opconst.TypeStroke); n != 2 {
		t.Errorf("got %d outlines, want 2", n)
	}
	if n := ops.Count(&u.ops, opconst.TypeLine); n != 6 {
		t.Errorf("got %d lines, want 6", n)
	}
	widget.Grid{}.Layout(u.frame(input.Pointer{}, f32.Point{}), table)
	if n := ops.Count(&u.ops, opconst.TypeStroke); n != 0 {
		t.Errorf("settled grid drew %d outlines", n)
	}
}
