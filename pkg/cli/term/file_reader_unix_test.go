//go:build unix

package term

import (
	"io"
	"os"
	"testing"
	"time"

	"src.ked.sh/pkg/must"
	"src.ked.sh/pkg/testutil"
)

// Returns a fileReader on a pipe, and the write end of the pipe.
func setupFileReader(t *testing.T) (fileReader, *os.File) {
	pr, pw := must.OK2(os.Pipe())
	r := must.OK1(newFileReader(pr))
	t.Cleanup(func() {
		r.Close()
		pr.Close()
		pw.Close()
	})
	return r, pw
}

func TestFileReader_ReadByteWithTimeout(t *testing.T) {
	r, w := setupFileReader(t)
	content := "ked\x1b[A"
	w.WriteString(content)
	for i := range len(content) {
		b, err := r.ReadByteWithTimeout(-1)
		if b != content[i] || err != nil {
			t.Errorf("byte %d: got (%q, %v), want (%q, nil)", i, b, err, content[i])
		}
	}
}

func TestFileReader_EOF(t *testing.T) {
	r, w := setupFileReader(t)
	w.Close()
	if _, err := r.ReadByteWithTimeout(-1); err != io.EOF {
		t.Errorf("got err %v, want %v", err, io.EOF)
	}
}

func TestFileReader_Timeout(t *testing.T) {
	r, _ := setupFileReader(t)
	if _, err := r.ReadByteWithTimeout(testutil.Scaled(time.Millisecond)); err != errTimeout {
		t.Errorf("got err %v, want %v", err, errTimeout)
	}
}

func TestFileReader_Stop(t *testing.T) {
	r, w := setupFileReader(t)
	errCh := make(chan error, 1)
	go func() {
		_, err := r.ReadByteWithTimeout(-1)
		errCh <- err
	}()
	r.Stop()
	if err := <-errCh; err != ErrStopped {
		t.Errorf("got err %v, want %v", err, ErrStopped)
	}

	// Later reads are stopped too, even with input available.
	w.WriteString("x")
	if _, err := r.ReadByteWithTimeout(-1); err != ErrStopped {
		t.Errorf("after Stop: got err %v, want %v", err, ErrStopped)
	}
}

func TestFileReader_ReadAfterClose(t *testing.T) {
	r, w := setupFileReader(t)
	r.Stop()
	r.Close()
	w.WriteString("x")
	if _, err := r.ReadByteWithTimeout(-1); err != ErrStopped {
		t.Errorf("after Close: got err %v, want %v", err, ErrStopped)
	}
}

func TestReadRune(t *testing.T) {
	r, w := setupFileReader(t)
	w.WriteString("a世\xff")
	for _, want := range []rune{'a', '世', '�'} {
		if got, err := readRune(r, -1); got != want || err != nil {
			t.Errorf("readRune -> (%q, %v), want (%q, nil)", got, err, want)
		}
	}

	// Truncated multi-byte sequence.
	w.WriteString("\xe4")
	if _, err := readRune(r, testutil.Scaled(time.Millisecond)); err != errTimeout {
		t.Errorf("got err %v, want %v", err, errTimeout)
	}
}
