package window

import (
	"fmt"
	"strconv"

	"src.ked.sh/pkg/cli/term"
	"src.ked.sh/pkg/ui"
)

var (
	lineNumberStyle = ui.Style{Fg: ui.DarkGrey}
	fillerStyle     = ui.Style{Fg: ui.DarkGrey}
	dividerStyle    = ui.Style{Fg: ui.Black, Bg: ui.DarkGrey}
	statusStyle     = ui.Style{Bg: ui.DarkGrey}
)

// Render draws the window. The result has Height+1 lines of Width cells: the
// text rows followed by the status line. Each text row starts with the
// sidebar holding the line number; windows not at the left edge of the screen
// draw a divider in the first column of the sidebar.
func (w *Window) Render() *term.Buffer {
	bb := term.NewBufferBuilder(w.rect.Width)
	// A window narrower than its sidebar shows no text.
	textWidth := max(w.rect.Width-w.sidebar, 0)
	for i := 0; i < w.rect.Height; i++ {
		if i > 0 {
			bb.Newline()
		}
		if w.rect.Left > 0 {
			bb.Write("│", dividerStyle)
		}
		row := w.offset.Row + i
		if row >= w.buf.LineCount() {
			bb.Write("~", fillerStyle).PadToWidth(ui.Style{})
			continue
		}
		if room := w.sidebar - bb.Col; room > 0 {
			// Numbers too wide for the sidebar keep their last digits, so
			// that the text stays aligned with ScreenPos.
			num := strconv.Itoa(row + 1)
			num = num[max(len(num)-(room-1), 0):]
			bb.Write(fmt.Sprintf("%*s ", room-1, num), lineNumberStyle)
		}
		line := []rune(w.buf.Line(row))
		if w.offset.Col < len(line) {
			line = line[w.offset.Col:]
			if len(line) > textWidth {
				line = line[:textWidth]
			}
			bb.WritePlain(string(line))
		}
		bb.PadToWidth(ui.Style{})
	}
	bb.Newline()
	w.renderStatus(bb)
	return bb.Buffer()
}

func (w *Window) renderStatus(bb *term.BufferBuilder) {
	name := w.buf.Name()
	if name == "" {
		name = "[No Name]"
	}
	if w.buf.Dirty() {
		name += " [+]"
	}
	pos := w.Pos()
	loc := fmt.Sprintf("%d:%d", pos.Row+1, pos.Col+1)
	padding := w.rect.Width - len([]rune(name)) - len(loc)
	if padding < 1 {
		// Keep the location visible.
		name = string([]rune(name)[:max(w.rect.Width-len(loc)-1, 0)])
		padding = w.rect.Width - len([]rune(name)) - len(loc)
	}
	bb.Write(name, statusStyle).WriteSpaces(padding, statusStyle).Write(loc, statusStyle)
}
