package term

import (
	"errors"
	"fmt"
	"os"
)

// Reader decodes key events from a terminal.
type Reader interface {
	// ReadEvent blocks until a complete event is read.
	ReadEvent() (Event, error)
	// Close frees the Reader's resources. A blocked ReadEvent returns
	// ErrStopped.
	Close()
}

// ErrStopped is returned by a ReadEvent call interrupted by Close.
var ErrStopped = errors.New("stopped")

var errTimeout = errors.New("timed out")

// seqError reports an escape sequence that could not be decoded.
type seqError struct {
	msg string
	seq string
}

func (err seqError) Error() string {
	return fmt.Sprintf("%s: %q", err.msg, err.seq)
}

// NewReader returns a Reader that reads from a terminal file in raw mode.
func NewReader(f *os.File) (Reader, error) {
	return newReader(f)
}

// IsReadErrorRecoverable reports whether reading can continue after the
// Reader returned err.
func IsReadErrorRecoverable(err error) bool {
	var se seqError
	return errors.As(err, &se) || err == ErrStopped || err == errTimeout
}
