// Package buffer implements the line-oriented text storage of the editor.
//
// A Buffer is an ordered list of lines together with the name of its backing
// file, a dirty flag and a flag recording whether the source ended with a
// newline. A Buffer always has at least one line.
//
// Columns are counted in runes; each byte of an invalid UTF-8 sequence counts
// as one rune. Edits splice the original bytes, so invalid sequences are
// written back unchanged.
package buffer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"src.ked.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[buffer] ")

// Pos is a position in buffer coordinates. Col may be equal to the length of
// the line, addressing the position past its last rune.
type Pos struct {
	Row, Col int
}

// Buffer stores the text of a file.
type Buffer struct {
	lines           []string
	name            string
	dirty           bool
	trailingNewline bool
}

// ErrNoFileName is returned when writing a buffer that has no backing file.
var ErrNoFileName = errors.New("no file name")

// CannotOpenError is returned by Load when a file exists but cannot be read.
type CannotOpenError struct {
	Path string
	Err  error
}

func (e *CannotOpenError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *CannotOpenError) Unwrap() error { return e.Err }

// New returns an unnamed buffer with one empty line.
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// FromString creates a buffer from text, naming it name. The text is split on
// '\n'. If it ends with '\n', the final empty fragment is dropped and the
// trailing newline flag is set.
func FromString(name, text string) *Buffer {
	lines := strings.Split(text, "\n")
	trailing := false
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
		trailing = true
	}
	return &Buffer{lines: lines, name: name, trailingNewline: trailing}
}

// Load reads the named file into a new buffer. If the file doesn't exist, it
// returns an empty buffer with the given name, which will be created with a
// trailing newline when written. Other errors are returned as
// *CannotOpenError.
func Load(path string) (*Buffer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Printf("%s does not exist, starting new file", path)
			return &Buffer{lines: []string{""}, name: path, trailingNewline: true}, nil
		}
		return nil, &CannotOpenError{path, err}
	}
	b := FromString(path, string(content))
	logger.Printf("loaded %s, %d lines", path, len(b.lines))
	return b, nil
}

// Write writes the buffer to its backing file, replacing the file's content,
// and clears the dirty flag. It returns ErrNoFileName if the buffer is
// unnamed.
func (b *Buffer) Write() error {
	if b.name == "" {
		return ErrNoFileName
	}
	return b.writeTo(b.name)
}

// WriteAs writes the buffer to the named file, and makes it the backing file
// if the write succeeds.
func (b *Buffer) WriteAs(name string) error {
	if err := b.writeTo(name); err != nil {
		return err
	}
	b.name = name
	return nil
}

func (b *Buffer) writeTo(name string) error {
	if err := os.WriteFile(name, []byte(b.String()), 0644); err != nil {
		return err
	}
	b.dirty = false
	return nil
}

// String returns the content of the buffer in the same form it would be
// written to a file.
func (b *Buffer) String() string {
	s := strings.Join(b.lines, "\n")
	if b.trailingNewline {
		s += "\n"
	}
	return s
}

// Name returns the name of the backing file, or "" for an unnamed buffer.
func (b *Buffer) Name() string { return b.name }

// Dirty reports whether the buffer has been modified since it was last loaded
// or written.
func (b *Buffer) Dirty() bool { return b.dirty }

// TrailingNewline reports whether a newline is added after the last line when
// writing.
func (b *Buffer) TrailingNewline() bool { return b.trailingNewline }

// Lines returns a copy of all the lines.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the line at row.
func (b *Buffer) Line(row int) string { return b.lines[row] }

// LineLen returns the number of runes in the line at row.
func (b *Buffer) LineLen(row int) int {
	return utf8.RuneCountInString(b.lines[row])
}

// InsertChar inserts r at pos.
func (b *Buffer) InsertChar(pos Pos, r rune) {
	line := b.lines[pos.Row]
	i := byteOffset(line, pos.Col)
	b.lines[pos.Row] = line[:i] + string(r) + line[i:]
	b.dirty = true
}

// DeleteCharBefore deletes the rune before pos. It does nothing at column 0.
func (b *Buffer) DeleteCharBefore(pos Pos) {
	line := b.lines[pos.Row]
	i := byteOffset(line, pos.Col)
	if i == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(line[:i])
	b.lines[pos.Row] = line[:i-size] + line[i:]
	b.dirty = true
}

// SplitLine moves the part of the line from pos onward into a new line
// inserted after it.
func (b *Buffer) SplitLine(pos Pos) {
	line := b.lines[pos.Row]
	i := byteOffset(line, pos.Col)
	b.lines[pos.Row] = line[:i]
	b.insertLine(pos.Row+1, line[i:])
}

// JoinWithPrevious appends the line at row to the previous line and removes
// it. It does nothing for row 0.
func (b *Buffer) JoinWithPrevious(row int) {
	if row <= 0 || row >= len(b.lines) {
		return
	}
	b.lines[row-1] += b.lines[row]
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.dirty = true
}

// DeleteLine removes the line at row. Deleting the only line leaves one empty
// line.
func (b *Buffer) DeleteLine(row int) {
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	b.dirty = true
}

// ClearLine empties the line at row.
func (b *Buffer) ClearLine(row int) {
	b.lines[row] = ""
	b.dirty = true
}

// InsertBlankAbove inserts an empty line before row.
func (b *Buffer) InsertBlankAbove(row int) { b.insertLine(row, "") }

// InsertBlankBelow inserts an empty line after row.
func (b *Buffer) InsertBlankBelow(row int) { b.insertLine(row+1, "") }

func (b *Buffer) insertLine(i int, s string) {
	b.lines = append(b.lines, "")
	copy(b.lines[i+1:], b.lines[i:])
	b.lines[i] = s
	b.dirty = true
}

// byteOffset returns the offset in s of the rune at col, clamping col to
// [0, number of runes].
func byteOffset(s string, col int) int {
	n := 0
	for i := range s {
		if n >= col {
			return i
		}
		n++
	}
	return len(s)
}
