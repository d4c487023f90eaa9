package tui

import "testing"

func TestDefaultLayout_Rows(t *testing.T) {
	l := DefaultLayout()
	if len(l.Rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(l.Rows))
	}
	last := l.Rows[4]
	if len(last) != 3 {
		t.Fatalf("last row has %d keys, want 3", len(last))
	}
	zero := last[0]
	if zero.ID != "0" || zero.Span != 2 || zero.Col != 0 {
		t.Errorf("zero key = %+v, want wide key at column 0", zero)
	}
	if last[1].ID != "." || last[1].Col != 2 {
		t.Errorf("point key = %+v, want column 2", last[1])
	}
	if got := l.Rows[0][3].ID; got != "÷" {
		t.Errorf("top right key = %q, want ÷", got)
	}
}

func TestLayout_CellAt(t *testing.T) {
	l := DefaultLayout()
	for _, row := range l.Rows {
		for _, c := range row {
			x, y, w, h := l.Rect(c)
			for _, p := range [][2]int{{x, y}, {x + w - 1, y + h - 1}} {
				got, ok := l.CellAt(p[0], p[1])
				if !ok || got != c {
					t.Errorf("CellAt(%d, %d) = %+v, %v, want %+v", p[0], p[1], got, ok, c)
				}
			}
		}
	}

	x, y, w, _ := l.Rect(l.Rows[0][0])
	if _, ok := l.CellAt(x+w, y); ok {
		t.Errorf("gap column at x=%d should not hit a key", x+w)
	}
	if _, ok := l.CellAt(0, 0); ok {
		t.Error("display area should not hit a key")
	}
}

func TestLayout_WideKeyRect(t *testing.T) {
	l := DefaultLayout()
	_, _, w, _ := l.Rect(l.Rows[4][0])
	if want := 2*ButtonWidth + ButtonGap; w != want {
		t.Errorf("wide key width = %d, want %d", w, want)
	}
	if l.Width() != 4*ButtonWidth+3*ButtonGap {
		t.Errorf("Width() = %d", l.Width())
	}
}

func TestLayout_Move(t *testing.T) {
	l := DefaultLayout()
	tests := []struct {
		name             string
		row, idx, dr, di int
		wantRow, wantIdx int
	}{
		{"left edge clamps", 0, 0, 0, -1, 0, 0},
		{"right", 1, 0, 0, 1, 1, 1},
		{"right edge clamps", 1, 3, 0, 1, 1, 3},
		{"top clamps", 0, 2, -1, 0, 0, 2},
		{"down keeps column", 2, 2, 1, 0, 3, 2},
		{"onto wide key", 3, 1, 1, 0, 4, 0},
		{"off wide key", 4, 0, -1, 0, 3, 0},
		{"point up", 4, 1, -1, 0, 3, 2},
		{"equals up", 4, 2, -1, 0, 3, 3},
		{"bottom clamps", 4, 2, 1, 0, 4, 2},
	}
	for _, tt := range tests {
		r, i := l.Move(tt.row, tt.idx, tt.dr, tt.di)
		if r != tt.wantRow || i != tt.wantIdx {
			t.Errorf("%s: Move(%d, %d, %d, %d) = %d, %d, want %d, %d",
				tt.name, tt.row, tt.idx, tt.dr, tt.di, r, i, tt.wantRow, tt.wantIdx)
		}
	}
}
