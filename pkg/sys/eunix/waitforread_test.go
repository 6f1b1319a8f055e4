//go:build unix

package eunix

import (
	"os"
	"slices"
	"testing"
	"time"

	"src.ked.sh/pkg/must"
)

func pipe(t *testing.T) (r, w *os.File) {
	r, w = must.OK2(os.Pipe())
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r, w
}

func TestWaitForRead(t *testing.T) {
	r0, w0 := pipe(t)
	r1, _ := pipe(t)

	w0.WriteString("x")
	ready, err := WaitForRead(-1, r0, r1)
	if want := []bool{true, false}; !slices.Equal(ready, want) || err != nil {
		t.Errorf("WaitForRead -> (%v, %v), want (%v, nil)", ready, err, want)
	}
}

func TestWaitForRead_Timeout(t *testing.T) {
	r, _ := pipe(t)
	ready, err := WaitForRead(time.Millisecond, r)
	if ready[0] || err != nil {
		t.Errorf("WaitForRead -> (%v, %v), want ([false], nil)", ready, err)
	}
}

func TestWaitForRead_ClosedWriter(t *testing.T) {
	r, w := pipe(t)
	w.Close()
	ready, err := WaitForRead(-1, r)
	if !ready[0] || err != nil {
		t.Errorf("WaitForRead -> (%v, %v), want ([true], nil)", ready, err)
	}
}

func TestSelectTimeout(t *testing.T) {
	if tv := selectTimeout(-1); tv != nil {
		t.Errorf("selectTimeout(-1) -> %v, want nil", tv)
	}
	if tv := selectTimeout(1500 * time.Millisecond); tv.Sec != 1 || tv.Usec != 500000 {
		t.Errorf("selectTimeout(1.5s) -> %v", tv)
	}
}
