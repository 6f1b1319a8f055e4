// Package clitest has a fake terminal for testing programs built on cli.App.
package clitest

import (
	"os"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"src.ked.sh/pkg/cli"
	"src.ked.sh/pkg/cli/term"
	"src.ked.sh/pkg/testutil"
)

// Size of a new fake terminal.
const (
	FakeTTYHeight = 20
	FakeTTYWidth  = 50
)

// Capacity of the channels carrying events, signals and buffers. Tests never
// come close to it, so nothing blocks on them.
const fakeTTYChanSize = 4096

type fakeTTY struct {
	mu        sync.Mutex
	setup     func() (func() error, error)
	h, w      int
	bufs      []*term.Buffer
	eventsEnd bool

	eventCh chan term.Event
	sigCh   chan os.Signal
	bufCh   chan *term.Buffer
}

// NewFakeTTY returns a fake terminal of FakeTTYHeight rows and FakeTTYWidth
// columns, and a TTYCtrl for it.
func NewFakeTTY() (cli.TTY, TTYCtrl) {
	t := &fakeTTY{
		h:       FakeTTYHeight,
		w:       FakeTTYWidth,
		eventCh: make(chan term.Event, fakeTTYChanSize),
		sigCh:   make(chan os.Signal, fakeTTYChanSize),
		bufCh:   make(chan *term.Buffer, fakeTTYChanSize),
	}
	return t, TTYCtrl{t}
}

func (t *fakeTTY) Setup() (func() error, error) {
	t.mu.Lock()
	setup := t.setup
	t.mu.Unlock()
	if setup == nil {
		return func() error { return nil }, nil
	}
	return setup()
}

func (t *fakeTTY) Size() (h, w int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.h, t.w
}

func (t *fakeTTY) ReadEvent() (term.Event, error) {
	if ev, ok := <-t.eventCh; ok {
		return ev, nil
	}
	return nil, term.ErrStopped
}

func (t *fakeTTY) CloseReader() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.eventsEnd {
		t.eventsEnd = true
		close(t.eventCh)
	}
}

func (t *fakeTTY) UpdateBuffer(buf *term.Buffer, _ bool) error {
	t.record(buf)
	return nil
}

// ResetBuffer shows up as a nil entry in the buffer history.
func (t *fakeTTY) ResetBuffer() { t.record(nil) }

func (t *fakeTTY) record(buf *term.Buffer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bufs = append(t.bufs, buf)
	t.bufCh <- buf
}

func (t *fakeTTY) NotifySignals() <-chan os.Signal { return t.sigCh }

func (t *fakeTTY) StopSignals() { close(t.sigCh) }

// TTYCtrl controls a fake terminal and inspects what was drawn on it.
type TTYCtrl struct{ *fakeTTY }

// GetTTYCtrl returns the TTYCtrl of a terminal created by NewFakeTTY. The
// second return value is false for other terminals.
func GetTTYCtrl(t cli.TTY) (TTYCtrl, bool) {
	fake, ok := t.(*fakeTTY)
	return TTYCtrl{fake}, ok
}

// SetSetup makes Setup return restore and err.
func (c TTYCtrl) SetSetup(restore func() error, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setup = func() (func() error, error) { return restore, err }
}

// SetSize changes the size reported by the terminal. It doesn't send
// SIGWINCH.
func (c TTYCtrl) SetSize(h, w int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.h, c.w = h, w
}

// Inject queues events to be read. Events injected after the reader is
// closed are dropped.
func (c TTYCtrl) Inject(events ...term.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.eventsEnd {
		return
	}
	for _, ev := range events {
		c.eventCh <- ev
	}
}

// InjectSignal queues signals to be delivered.
func (c TTYCtrl) InjectSignal(sigs ...os.Signal) {
	for _, sig := range sigs {
		c.sigCh <- sig
	}
}

// TestBuffer fails the test unless b is drawn soon.
func (c TTYCtrl) TestBuffer(t *testing.T, b *term.Buffer) {
	t.Helper()
	c.TestBufferFunc(t, b.TTYString(), func(buf *term.Buffer) bool {
		return cmp.Equal(buf, b)
	})
}

// TestPlainText fails the test unless a buffer with the given plain text is
// drawn soon.
func (c TTYCtrl) TestPlainText(t *testing.T, text string) {
	t.Helper()
	c.TestBufferFunc(t, text, func(buf *term.Buffer) bool {
		return buf != nil && buf.PlainText() == text
	})
}

// TestBufferFunc fails the test unless a buffer satisfying f is drawn within
// 100ms, scaled by testutil.Scaled. Buffers drawn before the call count too,
// as long as they haven't been consumed by an earlier Test* call. desc
// describes the wanted buffer in the failure message.
func (c TTYCtrl) TestBufferFunc(t *testing.T, desc string, f func(*term.Buffer) bool) {
	t.Helper()
	deadline := time.After(testutil.Scaled(100 * time.Millisecond))
	for {
		select {
		case buf := <-c.bufCh:
			if f(buf) {
				return
			}
		case <-deadline:
			t.Logf("buffer not drawn:\n%s", desc)
			if last := c.LastBuffer(); last != nil {
				t.Logf("last buffer:\n%s", last.TTYString())
			}
			t.FailNow()
		}
	}
}

// BufferHistory returns every buffer drawn so far, oldest first.
func (c TTYCtrl) BufferHistory() []*term.Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.bufs)
}

// LastBuffer returns the buffer drawn last, or nil.
func (c TTYCtrl) LastBuffer() *term.Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.bufs) == 0 {
		return nil
	}
	return c.bufs[len(c.bufs)-1]
}
