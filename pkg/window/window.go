// Package window couples a buffer with a cursor, a scroll offset and a screen
// rectangle.
//
// The cursor is relative to the screen rectangle; adding the offset gives the
// position in the buffer. All movement goes through one clamp-and-scroll
// procedure per axis, which keeps the buffer position valid: the row always
// addresses an existing line, and the column is within [0, len(line)].
package window

import (
	"src.ked.sh/pkg/buffer"
)

// DefaultSidebar is the default width of the sidebar, including the gap
// between line numbers and text.
const DefaultSidebar = 5

// Rect is a rectangle on the screen. Height counts text rows; the status line
// occupies one more row below them.
type Rect struct {
	Top, Left, Height, Width int
}

// Bottom returns the row just below the status line.
func (r Rect) Bottom() int { return r.Top + r.Height + 1 }

// Right returns the column just right of the rectangle.
func (r Rect) Right() int { return r.Left + r.Width }

// Window shows a buffer in a rectangle of the screen.
type Window struct {
	buf     *buffer.Buffer
	cursor  buffer.Pos
	offset  buffer.Pos
	rect    Rect
	sidebar int
}

// New creates a Window showing buf, with the cursor at the start of the
// buffer.
func New(buf *buffer.Buffer, rect Rect, sidebar int) *Window {
	return &Window{buf: buf, rect: rect, sidebar: sidebar}
}

// Buffer returns the buffer shown in the window.
func (w *Window) Buffer() *buffer.Buffer { return w.buf }

// SetBuffer replaces the buffer and moves the cursor to its start.
func (w *Window) SetBuffer(buf *buffer.Buffer) {
	w.buf = buf
	w.cursor = buffer.Pos{}
	w.offset = buffer.Pos{}
}

// Rect returns the rectangle of the window.
func (w *Window) Rect() Rect { return w.rect }

// SetRect moves or resizes the window, scrolling as needed to keep the cursor
// in view.
func (w *Window) SetRect(r Rect) {
	w.rect = r
	w.MoveRow(0)
}

// Sidebar returns the width of the sidebar.
func (w *Window) Sidebar() int { return w.sidebar }

// Cursor returns the cursor relative to the window.
func (w *Window) Cursor() buffer.Pos { return w.cursor }

// Offset returns the scroll offset.
func (w *Window) Offset() buffer.Pos { return w.offset }

// Pos returns the cursor position in buffer coordinates.
func (w *Window) Pos() buffer.Pos {
	return buffer.Pos{Row: w.offset.Row + w.cursor.Row, Col: w.offset.Col + w.cursor.Col}
}

// ScreenPos returns the position of the cursor on the screen.
func (w *Window) ScreenPos() (line, col int) {
	return w.rect.Top + w.cursor.Row, w.rect.Left + w.sidebar + w.cursor.Col
}

func (w *Window) rowExtent() int { return max(w.rect.Height-1, 0) }

func (w *Window) colExtent() int { return max(w.rect.Width-w.sidebar-1, 0) }

// MoveRow moves the cursor delta rows down (up if negative), scrolling when
// the cursor would leave the window. The column is then validated against the
// new line.
func (w *Window) MoveRow(delta int) {
	target := min(w.offset.Row+w.cursor.Row+delta, w.buf.LineCount()-1)
	w.cursor.Row, w.offset.Row = scroll(target, w.offset.Row, w.rowExtent())
	w.MoveCol(0)
}

// MoveCol moves the cursor delta columns right (left if negative), scrolling
// when the cursor would leave the window.
func (w *Window) MoveCol(delta int) {
	row := w.offset.Row + w.cursor.Row
	if row >= w.buf.LineCount() {
		// The buffer shrank under the cursor.
		w.MoveRow(0)
		row = w.offset.Row + w.cursor.Row
	}
	target := min(w.offset.Col+w.cursor.Col+delta, w.buf.LineLen(row))
	w.cursor.Col, w.offset.Col = scroll(target, w.offset.Col, w.colExtent())
}

// Computes the cursor and offset that address target on one axis, given the
// current offset and the largest cursor value the window can show.
func scroll(target, offset, extent int) (cursor, newOffset int) {
	tentative := target - offset
	switch {
	case tentative < 0:
		return 0, max(offset+tentative, 0)
	case tentative > extent:
		return extent, offset + tentative - extent
	default:
		return tentative, offset
	}
}

// SetRow moves the cursor to the given buffer row.
func (w *Window) SetRow(row int) { w.MoveRow(row - w.Pos().Row) }

// SetCol moves the cursor to the given buffer column.
func (w *Window) SetCol(col int) { w.MoveCol(col - w.Pos().Col) }

// ZeroCol moves the cursor to the start of the line.
func (w *Window) ZeroCol() { w.SetCol(0) }

// MoveToEndOfLine moves the cursor past the last character of the line.
func (w *Window) MoveToEndOfLine() { w.SetCol(w.buf.LineLen(w.Pos().Row)) }
