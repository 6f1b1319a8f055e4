package term

import (
	"strings"

	"src.ked.sh/pkg/ui"
)

// BufferBuilder supports building of Buffer. Lines never wrap: text written
// past the width is dropped.
type BufferBuilder struct {
	Width, Col int
	// Dot of the Buffer being built.
	Dot Pos
	// Lines of the Buffer being built.
	Lines [][]Cell
}

// NewBufferBuilder makes a new BufferBuilder, initially with one empty line.
func NewBufferBuilder(width int) *BufferBuilder {
	return &BufferBuilder{Width: width, Lines: [][]Cell{make([]Cell, 0, width)}}
}

// Cursor returns the current position of the builder.
func (bb *BufferBuilder) Cursor() Pos {
	return Pos{len(bb.Lines) - 1, bb.Col}
}

// SetDotHere sets the dot of the Buffer to the current position. It returns
// the receiver.
func (bb *BufferBuilder) SetDotHere() *BufferBuilder {
	bb.Dot = bb.Cursor()
	return bb
}

// Newline starts a new line. It returns the receiver.
func (bb *BufferBuilder) Newline() *BufferBuilder {
	bb.Lines = append(bb.Lines, make([]Cell, 0, bb.Width))
	bb.Col = 0
	return bb
}

// WriteRuneSGR writes a single rune to a buffer with an SGR style. Runes
// written past the width are dropped. Control characters are written as one
// cell showing the matching caret-notation letter in inverse video. A '\n'
// starts a new line.
func (bb *BufferBuilder) WriteRuneSGR(r rune, style string) *BufferBuilder {
	if r == '\n' {
		return bb.Newline()
	}
	if bb.Col >= bb.Width {
		return bb
	}
	text := string(r)
	if r < 0x20 || r == 0x7f {
		text = string(r ^ 0x40)
		if style != "" {
			style += ";7"
		} else {
			style = "7"
		}
	}
	last := len(bb.Lines) - 1
	bb.Lines[last] = append(bb.Lines[last], Cell{text, style})
	bb.Col++
	return bb
}

// WriteStringSGR writes a string to a buffer with an SGR style.
func (bb *BufferBuilder) WriteStringSGR(text, style string) *BufferBuilder {
	for _, r := range text {
		bb.WriteRuneSGR(r, style)
	}
	return bb
}

// WritePlain writes a string without style.
func (bb *BufferBuilder) WritePlain(text string) *BufferBuilder {
	return bb.WriteStringSGR(text, "")
}

// Write writes a string with a style.
func (bb *BufferBuilder) Write(text string, style ui.Style) *BufferBuilder {
	return bb.WriteStringSGR(text, style.SGR())
}

// WriteSpaces writes n spaces with a style.
func (bb *BufferBuilder) WriteSpaces(n int, style ui.Style) *BufferBuilder {
	return bb.Write(strings.Repeat(" ", max(n, 0)), style)
}

// PadToWidth fills the rest of the current line with spaces of a style.
func (bb *BufferBuilder) PadToWidth(style ui.Style) *BufferBuilder {
	return bb.WriteSpaces(bb.Width-bb.Col, style)
}

// Buffer returns a Buffer built by the BufferBuilder.
func (bb *BufferBuilder) Buffer() *Buffer {
	return &Buffer{Width: bb.Width, Lines: bb.Lines, Dot: bb.Dot}
}
