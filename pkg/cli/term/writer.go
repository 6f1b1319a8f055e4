package term

import (
	"bytes"
	"fmt"
	"io"

	"src.ked.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[cli/term] ")

// Writer draws Buffers on a full-screen terminal.
type Writer interface {
	// UpdateBuffer makes the screen show buf. Unless full is true, only the
	// cells that differ from the previous buffer are written.
	UpdateBuffer(buf *Buffer, full bool) error
	// ResetBuffer forgets the previous buffer.
	ResetBuffer()
}

type writer struct {
	out  io.Writer
	prev *Buffer
}

// NewWriter returns a Writer that writes VT100 sequences to out.
func NewWriter(out io.Writer) Writer {
	return &writer{out, &Buffer{}}
}

func (w *writer) ResetBuffer() { w.prev = &Buffer{} }

const (
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
	seqClearScreen = "\033[H\033[2J"
	seqClearLine   = "\033[K"
	seqClearBelow  = "\033[J"
)

// DECSCUSR sequences.
var seqShape = map[CursorShape]string{
	BlockCursor: "\033[2 q",
	BarCursor:   "\033[6 q",
}

// frame accumulates the output of one update, so that it reaches the
// terminal in a single write.
type frame struct {
	bytes.Buffer
	style string
}

func (f *frame) moveTo(line, col int) {
	fmt.Fprintf(f, "\033[%d;%dH", line+1, col+1)
}

func (f *frame) setStyle(style string) {
	if style != f.style {
		fmt.Fprintf(f, "\033[0;%sm", style)
		f.style = style
	}
}

func (f *frame) cells(cs []Cell) {
	for _, c := range cs {
		f.setStyle(c.Style)
		f.WriteString(c.Text)
	}
}

func (w *writer) UpdateBuffer(buf *Buffer, full bool) error {
	prev := w.prev.Lines
	if prev != nil && buf.Width != w.prev.Width {
		full = true
	}
	if full {
		prev = nil
	}

	var f frame
	f.WriteString(seqHideCursor)
	if full {
		f.WriteString(seqClearScreen)
	}
	for i, line := range buf.Lines {
		if i >= len(prev) {
			f.moveTo(i, 0)
			f.cells(line)
			continue
		}
		j := firstDiff(line, prev[i])
		if j < 0 {
			continue
		}
		f.moveTo(i, j)
		// Nothing to erase when the old line is a prefix of the new one.
		if j < len(prev[i]) {
			f.setStyle("")
			f.WriteString(seqClearLine)
		}
		f.cells(line[j:])
	}
	f.setStyle("")
	if len(prev) > len(buf.Lines) {
		f.moveTo(len(buf.Lines), 0)
		f.WriteString(seqClearBelow)
	}
	if full || buf.Shape != w.prev.Shape {
		f.WriteString(seqShape[buf.Shape])
	}
	f.moveTo(buf.Dot.Line, buf.Dot.Col)
	f.WriteString(seqShowCursor)

	if _, err := w.out.Write(f.Bytes()); err != nil {
		logger.Printf("writing %d bytes: %v", f.Len(), err)
		return err
	}
	w.prev = buf
	return nil
}
