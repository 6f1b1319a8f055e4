package window

// TypeChar inserts r at the cursor and moves past it. A '\n' splits the line
// and moves to the start of the new line.
func (w *Window) TypeChar(r rune) {
	if r == '\n' {
		w.buf.SplitLine(w.Pos())
		w.MoveRow(1)
		w.ZeroCol()
		return
	}
	w.buf.InsertChar(w.Pos(), r)
	w.MoveCol(1)
}

// DeleteChars deletes n characters before the cursor. At the start of a line,
// the line is joined with the previous one.
func (w *Window) DeleteChars(n int) {
	for range n {
		pos := w.Pos()
		if pos.Col > 0 {
			w.buf.DeleteCharBefore(pos)
			w.MoveCol(-1)
			continue
		}
		if pos.Row == 0 {
			continue
		}
		prevLen := w.buf.LineLen(pos.Row - 1)
		w.buf.JoinWithPrevious(pos.Row)
		w.MoveRow(-1)
		w.SetCol(prevLen)
	}
}

// NewLineBelow inserts an empty line below the cursor and moves to it.
func (w *Window) NewLineBelow() {
	w.buf.InsertBlankBelow(w.Pos().Row)
	w.MoveRow(1)
}

// NewLineAbove inserts an empty line above the cursor and moves to it.
func (w *Window) NewLineAbove() {
	// The new line takes the row of the cursor.
	w.buf.InsertBlankAbove(w.Pos().Row)
	w.MoveRow(0)
}

// DeleteLine deletes the line under the cursor.
func (w *Window) DeleteLine() {
	w.buf.DeleteLine(w.Pos().Row)
	w.MoveRow(0)
}

// ChangeLine empties the line under the cursor.
func (w *Window) ChangeLine() {
	w.buf.ClearLine(w.Pos().Row)
	w.MoveRow(0)
}
