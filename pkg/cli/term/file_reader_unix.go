//go:build unix

package term

import (
	"io"
	"os"
	"sync"
	"syscall"
	"time"
	"unicode/utf8"

	"src.ked.sh/pkg/sys/eunix"
)

// Reads single bytes. A negative timeout waits forever.
type byteReaderWithTimeout interface {
	ReadByteWithTimeout(timeout time.Duration) (byte, error)
}

type fileReader interface {
	byteReaderWithTimeout
	// Stop makes pending and future reads return ErrStopped. It waits for a
	// pending read to return.
	Stop() error
	// Close frees the pipe used by Stop. The file itself stays open. Reads
	// after Close return ErrStopped.
	Close()
}

// stoppableReader waits on both the file and a pipe. Stop leaves a byte in
// the pipe, so that every later wait returns at once.
type stoppableReader struct {
	file *os.File
	// Held for the duration of a read, and by Close.
	reading sync.Mutex
	closed  bool

	stopR, stopW *os.File
}

func newFileReader(file *os.File) (fileReader, error) {
	stopR, stopW, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	return &stoppableReader{file: file, stopR: stopR, stopW: stopW}, nil
}

func (r *stoppableReader) ReadByteWithTimeout(timeout time.Duration) (byte, error) {
	r.reading.Lock()
	defer r.reading.Unlock()
	if r.closed {
		return 0, ErrStopped
	}

	ready, err := eunix.WaitForRead(timeout, r.file, r.stopR)
	for err == syscall.EINTR {
		ready, err = eunix.WaitForRead(timeout, r.file, r.stopR)
	}
	switch {
	case err != nil:
		return 0, err
	case ready[1]:
		return 0, ErrStopped
	case !ready[0]:
		return 0, errTimeout
	}
	var b [1]byte
	n, err := r.file.Read(b[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.ErrNoProgress
	}
	return b[0], nil
}

func (r *stoppableReader) Stop() error {
	_, err := r.stopW.Write([]byte{0})
	// Wait for the pending read, if any.
	r.reading.Lock()
	r.reading.Unlock()
	return err
}

// Close doesn't wait forever for a pending read as long as Stop has been
// called.
func (r *stoppableReader) Close() {
	r.reading.Lock()
	defer r.reading.Unlock()
	if !r.closed {
		r.closed = true
		r.stopR.Close()
		r.stopW.Close()
	}
}

// readRune reads one UTF-8 encoded rune, applying timeout to each byte. An
// invalid leading byte is returned as utf8.RuneError.
func readRune(rd byteReaderWithTimeout, timeout time.Duration) (rune, error) {
	b, err := rd.ReadByteWithTimeout(timeout)
	if err != nil {
		return utf8.RuneError, err
	}
	if b < utf8.RuneSelf {
		return rune(b), nil
	}
	p := []byte{b}
	for !utf8.FullRune(p) {
		b, err := rd.ReadByteWithTimeout(timeout)
		if err != nil {
			return utf8.RuneError, err
		}
		p = append(p, b)
	}
	r, _ := utf8.DecodeRune(p)
	return r, nil
}
