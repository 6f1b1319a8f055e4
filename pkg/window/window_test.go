package window

import (
	"math/rand"
	"strings"
	"testing"

	"src.ked.sh/pkg/buffer"
)

// 10 rows of text, 10 columns of which 5 are sidebar.
var smallRect = Rect{Top: 0, Left: 0, Height: 10, Width: 10}

func lines(n int, line string) string {
	return strings.Repeat(line+"\n", n)
}

func TestMoveRow_ScrollsDown(t *testing.T) {
	w := New(buffer.FromString("", lines(30, "x")), smallRect, DefaultSidebar)
	w.MoveRow(9)
	checkState(t, w, buffer.Pos{Row: 9}, buffer.Pos{})
	w.MoveRow(1)
	checkState(t, w, buffer.Pos{Row: 9}, buffer.Pos{Row: 1})
	w.MoveRow(100)
	checkState(t, w, buffer.Pos{Row: 9}, buffer.Pos{Row: 20})
}

func TestMoveRow_ScrollsUp(t *testing.T) {
	w := New(buffer.FromString("", lines(30, "x")), smallRect, DefaultSidebar)
	w.SetRow(29)
	w.MoveRow(-9)
	checkState(t, w, buffer.Pos{Row: 0}, buffer.Pos{Row: 20})
	w.MoveRow(-3)
	checkState(t, w, buffer.Pos{Row: 0}, buffer.Pos{Row: 17})
	w.MoveRow(-100)
	checkState(t, w, buffer.Pos{Row: 0}, buffer.Pos{Row: 0})
}

func TestMoveCol_ClampsToLineAndScrolls(t *testing.T) {
	w := New(buffer.FromString("", "0123456789abc\nxy\n"), smallRect, DefaultSidebar)
	w.MoveCol(3)
	checkState(t, w, buffer.Pos{Col: 3}, buffer.Pos{})
	// Column extent is 10 - 5 - 1 = 4.
	w.MoveCol(3)
	checkState(t, w, buffer.Pos{Col: 4}, buffer.Pos{Col: 2})
	w.MoveToEndOfLine()
	checkState(t, w, buffer.Pos{Col: 4}, buffer.Pos{Col: 9})
	if got := w.Pos(); got != (buffer.Pos{Row: 0, Col: 13}) {
		t.Errorf("Pos() = %v", got)
	}
	// Moving to a shorter line pulls the column back.
	w.MoveRow(1)
	if got := w.Pos(); got != (buffer.Pos{Row: 1, Col: 2}) {
		t.Errorf("Pos() after moving down = %v", got)
	}
	w.ZeroCol()
	checkState(t, w, buffer.Pos{Row: 1}, buffer.Pos{})
}

func TestMove_BufferShrankUnderOffset(t *testing.T) {
	buf := buffer.FromString("", lines(30, "x"))
	w := New(buf, smallRect, DefaultSidebar)
	w.SetRow(25)
	for i := 0; i < 28; i++ {
		buf.DeleteLine(0)
	}
	w.MoveRow(0)
	if got := w.Pos(); got.Row != 1 {
		t.Errorf("Pos() = %v, want row 1", got)
	}
	checkInvariant(t, w)
}

func TestMove_RandomDeltasKeepInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString(strings.Repeat("x", r.Intn(30)))
		sb.WriteByte('\n')
	}
	for _, rect := range []Rect{smallRect, {Height: 1, Width: 6}, {Height: 40, Width: 80}} {
		w := New(buffer.FromString("", sb.String()), rect, DefaultSidebar)
		for i := 0; i < 2000; i++ {
			delta := r.Intn(41) - 20
			switch r.Intn(6) {
			case 0:
				w.MoveRow(delta)
			case 1:
				w.MoveCol(delta)
			case 2:
				w.SetRow(r.Intn(60) - 5)
			case 3:
				w.MoveToEndOfLine()
			case 4:
				w.DeleteLine()
			case 5:
				w.TypeChar('\n')
			}
			checkInvariant(t, w)
			if t.Failed() {
				return
			}
		}
	}
}

func TestSetRect_KeepsCursorInView(t *testing.T) {
	w := New(buffer.FromString("", lines(30, "x")), smallRect, DefaultSidebar)
	w.SetRow(9)
	w.SetRect(Rect{Height: 4, Width: 10})
	checkState(t, w, buffer.Pos{Row: 3}, buffer.Pos{Row: 6})
}

func TestScreenPos(t *testing.T) {
	w := New(buffer.FromString("", "abc"), Rect{Top: 3, Left: 20, Height: 5, Width: 20}, DefaultSidebar)
	w.MoveCol(2)
	if line, col := w.ScreenPos(); line != 3 || col != 27 {
		t.Errorf("ScreenPos() = (%d, %d), want (3, 27)", line, col)
	}
}

func checkState(t *testing.T, w *Window, cursor, offset buffer.Pos) {
	t.Helper()
	if w.Cursor() != cursor || w.Offset() != offset {
		t.Errorf("cursor %v, offset %v; want %v, %v", w.Cursor(), w.Offset(), cursor, offset)
	}
}

func checkInvariant(t *testing.T, w *Window) {
	t.Helper()
	pos := w.Pos()
	buf := w.Buffer()
	if pos.Row < 0 || pos.Row >= buf.LineCount() {
		t.Errorf("row %d out of [0, %d)", pos.Row, buf.LineCount())
		return
	}
	if pos.Col < 0 || pos.Col > buf.LineLen(pos.Row) {
		t.Errorf("col %d out of [0, %d]", pos.Col, buf.LineLen(pos.Row))
	}
	c := w.Cursor()
	if c.Row < 0 || c.Row > w.rowExtent() || c.Col < 0 || c.Col > w.colExtent() {
		t.Errorf("cursor %v outside window %v", c, w.Rect())
	}
}
