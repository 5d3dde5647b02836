// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"golang.org/x/exp/slices"
	"golang.org/x/image/colornames"

	"recallui.org/f32"
	"recallui.org/id"
	"recallui.org/internal/emath"
	"recallui.org/layout"
	"recallui.org/memory"
	"recallui.org/op/paint"
)

// GridState holds the measured size of every column and row of a
// grid. The sizes of one frame predict the layout of the next.
type GridState struct {
	ColWidths  []float32 `yaml:"col_widths"`
	RowHeights []float32 `yaml:"row_heights"`
}

// Clone implements memory.Cloner.
func (s GridState) Clone() GridState {
	return GridState{
		ColWidths:  slices.Clone(s.ColWidths),
		RowHeights: slices.Clone(s.RowHeights),
	}
}

// Equal reports whether s and o hold the same sizes.
func (s GridState) Equal(o GridState) bool {
	return slices.Equal(s.ColWidths, o.ColWidths) && slices.Equal(s.RowHeights, o.RowHeights)
}

// FullWidth returns the width of all columns separated by spacing.
func (s GridState) FullWidth(spacing float32) float32 {
	return span(s.ColWidths, spacing)
}

// FullHeight returns the height of all rows separated by spacing.
func (s GridState) FullHeight(spacing float32) float32 {
	return span(s.RowHeights, spacing)
}

func (s GridState) colWidth(col int) (float32, bool) {
	if col < len(s.ColWidths) {
		return s.ColWidths[col], true
	}
	return 0, false
}

func (s GridState) rowHeight(row int) (float32, bool) {
	if row < len(s.RowHeights) {
		return s.RowHeights[row], true
	}
	return 0, false
}

func (s *GridState) setMinColWidth(col int, w float32) {
	s.ColWidths = growMax(s.ColWidths, col, w)
}

func (s *GridState) setMinRowHeight(row int, h float32) {
	s.RowHeights = growMax(s.RowHeights, row, h)
}

// growMax raises v[i] to at least x, extending v with zeros as needed.
func growMax(v []float32, i int, x float32) []float32 {
	if n := i + 1 - len(v); n > 0 {
		v = append(v, make([]float32, n)...)
	}
	if x > v[i] {
		v[i] = x
	}
	return v
}

func span(sizes []float32, spacing float32) float32 {
	if len(sizes) == 0 {
		return 0
	}
	sum := spacing * float32(len(sizes)-1)
	for _, s := range sizes {
		sum += s
	}
	return sum
}

// Color is a background color that may differ between light and
// dark styles.
type Color struct {
	Light, Dark color.NRGBA
}

// SingleColor returns the Color c in both light and dark styles.
func SingleColor(c color.NRGBA) Color {
	return Color{Light: c, Dark: c}
}

// ColorPair returns a Color with separate light and dark variants.
func ColorPair(light, dark color.NRGBA) Color {
	return Color{Light: light, Dark: dark}
}

func (c Color) resolve(dark bool) color.NRGBA {
	if dark {
		return c.Dark
	}
	return c.Light
}

// RowColor paints the background of the rows matching Pred.
type RowColor struct {
	Color Color
	Pred  func(row int) bool
}

// ColumnColor paints the background of the columns matching Pred.
type ColumnColor struct {
	Color Color
	Pred  func(col int) bool
}

// CellColor paints the background of the cells matching Pred.
type CellColor struct {
	Color Color
	Pred  func(row, col int) bool
}

// Cell is the position of a grid cell.
type Cell struct {
	Row, Col int
}

// Grid lays out cells left to right, top to bottom. Column widths
// and row heights are those measured in the previous frame, so the
// grid settles one frame after a cell changes size.
//
// Backgrounds are painted before the cells of each row, using the
// geometry of the previous frame: row colors first, then column
// colors, then cell colors, then the Colors overrides.
type Grid struct {
	// IDSource tells sibling grids apart. It defaults to "grid".
	IDSource any
	// MinColWidth and MinRowHeight are the smallest cell sizes.
	// Zero means Style.Spacing.InteractSize.
	MinColWidth  float32
	MinRowHeight float32
	// MaxColWidth, if non-zero, is the width offered to every cell.
	MaxColWidth float32
	// MaxRowHeight, if non-zero, limits the height offered to cells.
	MaxRowHeight float32
	// Spacing is the gap between cells. Nil means
	// Style.Spacing.ItemSpacing.
	Spacing *f32.Point
	// Striped shades every other row, starting with the first.
	Striped bool
	// HeaderRow shades the first row.
	HeaderRow bool

	RowColors    []RowColor
	ColumnColors []ColumnColor
	CellColors   []CellColor
	Colors       map[Cell]Color
}

var (
	stripeColor = ColorPair(
		color.NRGBA{A: 19},
		color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 2},
	)
	headerColor = ColorPair(
		color.NRGBA{A: 191},
		color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 19},
	)
)

// GridLayout is a grid in the middle of being laid out.
type GridLayout struct {
	gtx     *layout.Context
	id      id.ID
	prev    GridState
	curr    GridState
	spacing f32.Point
	minCell f32.Point
	maxCell f32.Point

	rows  []RowColor
	cols  []ColumnColor
	cells []CellColor
	over  map[Cell]Color

	initialX float32
	cursor   f32.Point
	col, row int
	bounds   f32.Rectangle
	filled   bool
	ended    bool
}

// Begin starts the grid at the cursor of gtx and paints the
// backgrounds of the first row.
func (g Grid) Begin(gtx *layout.Context) *GridLayout {
	src := g.IDSource
	if src == nil {
		src = "grid"
	}
	gid := gtx.MakePersistentID(src)
	st := gtx.Style.Spacing
	minCell := st.InteractSize
	if g.MinColWidth != 0 {
		minCell.X = g.MinColWidth
	}
	if g.MinRowHeight != 0 {
		minCell.Y = g.MinRowHeight
	}
	maxCell := f32.Pt(f32.Inf, f32.Inf)
	if g.MaxColWidth != 0 {
		maxCell.X = g.MaxColWidth
	}
	if g.MaxRowHeight != 0 {
		maxCell.Y = g.MaxRowHeight
	}
	spacing := st.ItemSpacing
	if g.Spacing != nil {
		spacing = *g.Spacing
	}
	rows := slices.Clone(g.RowColors)
	if g.Striped {
		rows = append(rows, RowColor{Color: stripeColor, Pred: func(row int) bool { return row%2 == 0 }})
	}
	if g.HeaderRow {
		rows = append(rows, RowColor{Color: headerColor, Pred: func(row int) bool { return row == 0 }})
	}
	l := &GridLayout{
		gtx:      gtx,
		id:       gid,
		prev:     memory.GetOrDefault[GridState](&gtx.Memory.IDData, gid).Clone(),
		spacing:  spacing,
		minCell:  minCell,
		maxCell:  maxCell,
		rows:     rows,
		cols:     g.ColumnColors,
		cells:    g.CellColors,
		over:     g.Colors,
		initialX: gtx.Cursor().X,
		cursor:   gtx.Cursor(),
	}
	l.paint()
	return l
}

// Layout is a shorthand for Begin, w and End.
func (g Grid) Layout(gtx *layout.Context, w func(l *GridLayout)) {
	l := g.Begin(gtx)
	w(l)
	l.End()
}

// ID returns the ID the grid's state is stored under.
func (l *GridLayout) ID() id.ID {
	return l.id
}

// Pos returns the row and column of the next cell.
func (l *GridLayout) Pos() Cell {
	return Cell{Row: l.row, Col: l.col}
}

// State returns the sizes measured so far in this frame.
func (l *GridLayout) State() GridState {
	return l.curr
}

// AvailableRect returns the space offered to the next cell. Its
// width is the column's width in the previous frame, the width
// measured so far in this frame, or the minimum width, whichever is
// known first.
func (l *GridLayout) AvailableRect() f32.Rectangle {
	var w float32
	if l.maxCell.X != f32.Inf {
		w = l.maxCell.X
	} else if pw, ok := l.prev.colWidth(l.col); ok {
		w = pw
	} else if cw, ok := l.curr.colWidth(l.col); ok {
		w = cw
	} else {
		w = l.minCell.X
	}
	maxY := l.gtx.MaxRect().Max.Y
	if maxY == f32.Inf {
		maxY = l.gtx.MinRect().Max.Y
	}
	h := emath.Clamp(maxY-l.cursor.Y, l.minCell.Y, l.maxCell.Y)
	return f32.RectFromMinSize(l.cursor, f32.Pt(w, h))
}

// Cell lays out w in the next cell and advances past it. It returns
// the rectangle w used.
func (l *GridLayout) Cell(w layout.Widget) f32.Rectangle {
	child := l.gtx.Child(l.AvailableRect())
	w(child)
	r := child.MinRect()
	l.Advance(r)
	return r
}

// Advance records the measured rectangle of the current cell and
// moves to the next column.
func (l *GridLayout) Advance(measured f32.Rectangle) {
	l.debugOverlay(measured)
	l.curr.setMinColWidth(l.col, max(measured.Dx(), l.minCell.X))
	l.curr.setMinRowHeight(l.row, max(measured.Dy(), l.minCell.Y))

	frame := l.nextCell(measured.Size())
	if l.filled {
		l.bounds = l.bounds.Union(frame)
	} else {
		l.bounds, l.filled = frame, true
	}
	l.col++
	l.cursor.X += frame.Dx() + l.spacing.X
}

// nextCell returns the frame of the current cell: the measured size,
// grown to the column and row sizes of the previous frame.
func (l *GridLayout) nextCell(size f32.Point) f32.Rectangle {
	w, _ := l.prev.colWidth(l.col)
	return f32.RectFromMinSize(l.cursor, size.Max(f32.Pt(w, l.prevRowHeight(l.row))))
}

// EndRow moves to the first column of the next row and paints its
// backgrounds.
func (l *GridLayout) EndRow() {
	l.cursor.X = l.initialX
	l.cursor.Y += l.prevRowHeight(l.row) + l.spacing.Y
	l.col = 0
	l.row++
	l.paint()
}

// End saves the measured sizes and allocates the grid in the parent
// context. A change of sizes requests another frame.
func (l *GridLayout) End() {
	if l.ended {
		panic("widget: GridLayout.End called twice")
	}
	l.ended = true
	gtx := l.gtx
	if !l.curr.Equal(l.prev) {
		memory.Insert(&gtx.Memory.IDData, l.id, l.curr.Clone())
		gtx.RequestRepaint()
	}
	if l.filled {
		gtx.AllocateRect(l.bounds)
	}
}

func (l *GridLayout) prevColWidth(col int) float32 {
	if w, ok := l.prev.colWidth(col); ok {
		return w
	}
	return l.minCell.X
}

func (l *GridLayout) prevRowHeight(row int) float32 {
	if h, ok := l.prev.rowHeight(row); ok {
		return h
	}
	return l.minCell.Y
}

// colX returns the left edge of col in the previous frame.
func (l *GridLayout) colX(col int) float32 {
	x := l.initialX
	for _, w := range l.prev.ColWidths[:col] {
		x += w + l.spacing.X
	}
	return x
}

// paint fills the backgrounds of the row about to start.
func (l *GridLayout) paint() {
	top := l.cursor.Y
	if h, ok := l.prev.rowHeight(l.row); ok {
		for _, c := range l.rows {
			if c.Pred(l.row) {
				l.fill(f32.Rect(l.initialX, top, l.initialX+l.prev.FullWidth(l.spacing.X), top+h), c.Color)
			}
		}
	}
	ncols := len(l.prev.ColWidths)
	if l.row == 0 {
		full := l.prev.FullHeight(l.spacing.Y)
		for _, c := range l.cols {
			for col := 0; col < ncols; col++ {
				if c.Pred(col) {
					x := l.colX(col)
					l.fill(f32.Rect(x, top, x+l.prev.ColWidths[col], top+full), c.Color)
				}
			}
		}
	}
	h := l.prevRowHeight(l.row)
	for col := 0; col < ncols; col++ {
		x := l.colX(col)
		r := f32.Rect(x, top, x+l.prev.ColWidths[col], top+h)
		for _, c := range l.cells {
			if c.Pred(l.row, col) {
				l.fill(r, c.Color)
			}
		}
		if c, ok := l.over[Cell{Row: l.row, Col: col}]; ok {
			l.fill(r, c)
		}
	}
}

// fill paints r grown to cover half the spacing around it.
func (l *GridLayout) fill(r f32.Rectangle, c Color) {
	r = r.Expand2(l.spacing.Mul(.5))
	paint.FillOp{Rect: r, Radius: 2, Color: c.resolve(l.gtx.Style.Visuals.Dark)}.Add(l.gtx.Ops)
}

// debugOverlay marks cells larger than predicted.
func (l *GridLayout) debugOverlay(r f32.Rectangle) {
	dbg := l.gtx.Style.Debug
	wide := dbg.ShowExpandWidth && r.Dx() > l.prevColWidth(l.col)
	high := dbg.ShowExpandHeight && r.Dy() > l.prevRowHeight(l.row)
	if !wide && !high {
		return
	}
	o := l.gtx.Ops
	paint.StrokeOp{Rect: r, Width: 1, Color: nrgba(colornames.Lightblue)}.Add(o)
	red := nrgba(colornames.Red)
	line := func(a, b f32.Point) {
		paint.LineOp{A: a, B: b, Width: 2.5, Color: red}.Add(o)
	}
	c := r.Center()
	if wide {
		line(r.Min, f32.Pt(r.Min.X, r.Max.Y))
		line(f32.Pt(r.Min.X, c.Y), f32.Pt(r.Max.X, c.Y))
		line(f32.Pt(r.Max.X, r.Min.Y), r.Max)
	}
	if high {
		line(r.Min, f32.Pt(r.Max.X, r.Min.Y))
		line(f32.Pt(c.X, r.Min.Y), f32.Pt(c.X, r.Max.Y))
		line(f32.Pt(r.Min.X, r.Max.Y), r.Max)
	}
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
