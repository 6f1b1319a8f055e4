package edit

import (
	"src.ked.sh/pkg/cli/term"
	"src.ked.sh/pkg/ui"
)

var errorStyle = ui.Style{Fg: ui.Red}

// Render draws the whole screen: all windows, followed by the message line.
func (ed *Editor) Render(height, width int) *term.Buffer {
	buf := term.NewBuffer(height, width)
	for _, w := range ed.layout.Windows() {
		r := w.Rect()
		buf.Blit(r.Top, r.Left, w.Render())
	}
	if height == 0 {
		return buf
	}

	bb := term.NewBufferBuilder(width)
	switch {
	case ed.mode == Command:
		bb.WritePlain(":")
		text := ed.cmdline.text
		bb.WritePlain(string(text[:ed.cmdline.dot])).SetDotHere()
		bb.WritePlain(string(text[ed.cmdline.dot:]))
	case ed.message.Error:
		bb.Write(ed.message.Text, errorStyle)
	default:
		bb.WritePlain(ed.message.Text)
	}
	msg := bb.PadToWidth(ui.Style{}).Buffer()
	buf.Blit(height-1, 0, msg)

	if ed.mode == Command {
		buf.Dot = term.Pos{Line: height - 1, Col: msg.Dot.Col}
	} else {
		line, col := ed.Active().ScreenPos()
		buf.Dot = term.Pos{Line: line, Col: col}
	}
	if ed.mode == Insert {
		buf.Shape = term.BarCursor
	}
	return buf
}
