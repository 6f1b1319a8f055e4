package cli

import (
	"os"

	"src.ked.sh/pkg/cli/term"
	"src.ked.sh/pkg/sys"
)

// TTY is the type the terminal dependency of App needs to satisfy.
type TTY interface {
	// Setup sets up the terminal for the App, and starts reading events. It
	// returns a function that restores the terminal.
	Setup() (restore func() error, err error)

	// ReadEvent reads a terminal event.
	ReadEvent() (term.Event, error)
	// CloseReader releases resources allocated for reading terminal events.
	CloseReader()

	// Size returns the height and width of the terminal.
	Size() (h, w int)

	// UpdateBuffer updates the terminal display to reflect the buffer.
	UpdateBuffer(buf *term.Buffer, full bool) error
	// ResetBuffer forgets the current buffer, so that the next update is
	// done from scratch.
	ResetBuffer()

	// NotifySignals starts relaying signals relevant to the App and returns
	// a channel on which they are delivered.
	NotifySignals() <-chan os.Signal
	// StopSignals stops the relaying of signals. After this function returns,
	// the channel returned by NotifySignals is closed.
	StopSignals()
}

type aTTY struct {
	in, out *os.File
	r       term.Reader
	term.Writer
	sigCh chan os.Signal
}

// NewTTY returns a new TTY from input and output terminal files.
func NewTTY(in, out *os.File) TTY {
	return &aTTY{in: in, out: out, Writer: term.NewWriter(out)}
}

func (t *aTTY) Setup() (func() error, error) {
	restore, err := term.Setup(t.in, t.out)
	if err != nil {
		return nil, err
	}
	r, err := term.NewReader(t.in)
	if err != nil {
		restore()
		return nil, err
	}
	t.r = r
	t.ResetBuffer()
	return restore, nil
}

func (t *aTTY) Size() (h, w int) {
	return sys.WinSize(t.out)
}

func (t *aTTY) ReadEvent() (term.Event, error) {
	return t.r.ReadEvent()
}

func (t *aTTY) CloseReader() {
	if t.r != nil {
		t.r.Close()
	}
}

func (t *aTTY) NotifySignals() <-chan os.Signal {
	t.sigCh = sys.NotifySignals()
	return t.sigCh
}

func (t *aTTY) StopSignals() {
	sys.StopSignals(t.sigCh)
	close(t.sigCh)
	t.sigCh = nil
}
