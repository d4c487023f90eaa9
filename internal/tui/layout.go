package tui

import "github.com/abacus-calc/abacus/internal/calc"

// Cell is one key on the keypad grid. Col and Span are in grid columns.
type Cell struct {
	ID   string
	Row  int
	Col  int
	Span int
}

// Layout places the keypad keys on a grid of GridColumns columns. A short
// last row widens its first key to fill the row, which gives the wide "0".
type Layout struct {
	Rows [][]Cell
}

// NewLayout lays out ids row by row.
func NewLayout(ids []string) Layout {
	var l Layout
	for start := 0; start < len(ids); start += GridColumns {
		end := min(start+GridColumns, len(ids))
		row := make([]Cell, 0, end-start)
		extra := GridColumns - (end - start)
		col := 0
		for i, id := range ids[start:end] {
			span := 1
			if i == 0 {
				span += extra
			}
			row = append(row, Cell{ID: id, Row: len(l.Rows), Col: col, Span: span})
			col += span
		}
		l.Rows = append(l.Rows, row)
	}
	return l
}

// DefaultLayout is the keypad of the calculator.
func DefaultLayout() Layout {
	return NewLayout(calc.ButtonIDs)
}

// Width is the width of the keypad in terminal cells.
func (l Layout) Width() int {
	return spanWidth(GridColumns)
}

func spanWidth(span int) int {
	return span*ButtonWidth + (span-1)*ButtonGap
}

// gridTop is the screen row of the first key row.
func gridTop() int {
	return DefaultPaddingY + DisplayHeight + DisplayGap
}

// Rect returns the screen rectangle of c.
func (l Layout) Rect(c Cell) (x, y, w, h int) {
	x = DefaultPaddingX + c.Col*(ButtonWidth+ButtonGap)
	y = gridTop() + c.Row*(ButtonHeight+ButtonGap)
	return x, y, spanWidth(c.Span), ButtonHeight
}

// CellAt returns the key under the screen position x, y. Gaps between keys
// belong to no key.
func (l Layout) CellAt(x, y int) (Cell, bool) {
	for _, row := range l.Rows {
		for _, c := range row {
			cx, cy, w, h := l.Rect(c)
			if x >= cx && x < cx+w && y >= cy && y < cy+h {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// Cell returns the key at row and index within the row, clamped to the grid.
func (l Layout) Cell(row, idx int) Cell {
	row = clamp(row, 0, len(l.Rows)-1)
	idx = clamp(idx, 0, len(l.Rows[row])-1)
	return l.Rows[row][idx]
}

// Move returns the row and index reached from the key at row, idx by moving
// dRow rows and dIdx keys. Vertical moves keep the grid column where possible.
func (l Layout) Move(row, idx, dRow, dIdx int) (int, int) {
	from := l.Cell(row, idx)
	if dRow == 0 {
		return from.Row, clamp(idx+dIdx, 0, len(l.Rows[from.Row])-1)
	}

	target := clamp(from.Row+dRow, 0, len(l.Rows)-1)
	for i, c := range l.Rows[target] {
		if from.Col >= c.Col && from.Col < c.Col+c.Span {
			return target, i
		}
	}
	return target, len(l.Rows[target]) - 1
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
