package term

import (
	"fmt"
	"strings"
)

// Cell is one column of the screen. Style is an SGR parameter string.
type Cell struct {
	Text  string
	Style string
}

// Pos is a line/column position.
type Pos struct {
	Line, Col int
}

// CursorShape is the shape of the terminal cursor.
type CursorShape int

// Possible values of CursorShape.
const (
	BlockCursor CursorShape = iota
	BarCursor
)

// Buffer is the content of a rectangle of the screen, plus where the cursor
// (the dot) is and how it looks. Writer diffs successive Buffers to decide
// what to send to the terminal.
type Buffer struct {
	Width int
	Lines [][]Cell
	Dot   Pos
	Shape CursorShape
}

// NewBuffer returns a Buffer with the given dimensions, filled with unstyled
// spaces.
func NewBuffer(height, width int) *Buffer {
	lines := make([][]Cell, height)
	for i := range lines {
		lines[i] = makeSpacing(width)
	}
	return &Buffer{Width: width, Lines: lines}
}

func makeSpacing(n int) []Cell {
	s := make([]Cell, n)
	for i := range s {
		s[i].Text = " "
	}
	return s
}

// firstDiff returns the first index at which two lines differ, or -1 if they
// are equal.
func firstDiff(a, b []Cell) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// Blit copies all lines of src into b, with the top-left corner of src placed
// at (top, left). Cells falling outside b are dropped. The dot of b is not
// changed.
func (b *Buffer) Blit(top, left int, src *Buffer) {
	for i, line := range src.Lines {
		y := top + i
		if y < 0 || y >= len(b.Lines) {
			continue
		}
		for j, cell := range line {
			x := left + j
			if x < 0 || x >= len(b.Lines[y]) {
				continue
			}
			b.Lines[y][x] = cell
		}
	}
}

// PlainText returns the content of the buffer without styles, one line per
// line of the buffer, with trailing spaces removed.
func (b *Buffer) PlainText() string {
	var sb strings.Builder
	for _, line := range b.Lines {
		var lb strings.Builder
		for _, cell := range line {
			lb.WriteString(cell.Text)
		}
		sb.WriteString(strings.TrimRight(lb.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TTYString shows the buffer inside a box, with styles as SGR sequences. It
// is meant for test failure messages.
func (b *Buffer) TTYString() string {
	if b == nil {
		return "nil"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Width = %d, Dot = (%d, %d)\n", b.Width, b.Dot.Line, b.Dot.Col)
	edge := strings.Repeat("─", b.Width)
	sb.WriteString("┌" + edge + "┐\n")
	for _, line := range b.Lines {
		sb.WriteString("│")
		style := ""
		for _, c := range line {
			if c.Style != style {
				sb.WriteString("\033[0;" + c.Style + "m")
				style = c.Style
			}
			sb.WriteString(c.Text)
		}
		if style != "" {
			sb.WriteString("\033[m")
		}
		sb.WriteString(strings.Repeat(" ", max(b.Width-len(line), 0)) + "│\n")
	}
	sb.WriteString("└" + edge + "┘\n")
	return sb.String()
}
