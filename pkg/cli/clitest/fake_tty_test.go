package clitest

import (
	"os"
	"testing"

	"src.ked.sh/pkg/cli/term"
	"src.ked.sh/pkg/ui"
)

func TestFakeTTY_Setup(t *testing.T) {
	tty, ttyCtrl := NewFakeTTY()
	restoreCalled := 0
	ttyCtrl.SetSetup(func() error { restoreCalled++; return nil }, nil)

	restore, err := tty.Setup()
	if err != nil {
		t.Errorf("Setup -> error %v, want nil", err)
	}
	restore()
	if restoreCalled != 1 {
		t.Errorf("Setup did not return restore")
	}
}

func TestFakeTTY_Size(t *testing.T) {
	tty, ttyCtrl := NewFakeTTY()
	if h, w := tty.Size(); h != FakeTTYHeight || w != FakeTTYWidth {
		t.Errorf("initial Size -> (%v, %v)", h, w)
	}
	ttyCtrl.SetSize(20, 30)
	if h, w := tty.Size(); h != 20 || w != 30 {
		t.Errorf("Size -> (%v, %v), want (20, 30)", h, w)
	}
}

func TestFakeTTY_Events(t *testing.T) {
	tty, ttyCtrl := NewFakeTTY()
	ttyCtrl.Inject(term.K('a'), term.K(ui.Escape))
	if event, err := tty.ReadEvent(); event != term.K('a') || err != nil {
		t.Errorf("Got (%v, %v), want (%v, nil)", event, err, term.K('a'))
	}
	if event, err := tty.ReadEvent(); event != term.K(ui.Escape) || err != nil {
		t.Errorf("Got (%v, %v), want (%v, nil)", event, err, term.K(ui.Escape))
	}
	tty.CloseReader()
	if _, err := tty.ReadEvent(); err != term.ErrStopped {
		t.Errorf("ReadEvent after CloseReader -> error %v, want ErrStopped", err)
	}
	// Injecting after CloseReader is a no-op.
	ttyCtrl.Inject(term.K('b'))
}

func TestFakeTTY_Signals(t *testing.T) {
	tty, ttyCtrl := NewFakeTTY()
	signals := tty.NotifySignals()
	ttyCtrl.InjectSignal(os.Interrupt, os.Kill)
	if sig := <-signals; sig != os.Interrupt {
		t.Errorf("Got signal %v, want %v", sig, os.Interrupt)
	}
	if sig := <-signals; sig != os.Kill {
		t.Errorf("Got signal %v, want %v", sig, os.Kill)
	}
	tty.StopSignals()
	if _, ok := <-signals; ok {
		t.Errorf("signal channel not closed by StopSignals")
	}
}

func TestFakeTTY_Buffer(t *testing.T) {
	buf1 := term.NewBufferBuilder(10).WritePlain("buf 1").Buffer()
	buf2 := term.NewBufferBuilder(10).WritePlain("buf 2").Buffer()

	tty, ttyCtrl := NewFakeTTY()
	if ttyCtrl.LastBuffer() != nil {
		t.Errorf("LastBuffer -> %v, want nil", ttyCtrl.LastBuffer())
	}

	tty.UpdateBuffer(buf1, true)
	if ttyCtrl.LastBuffer() != buf1 {
		t.Errorf("LastBuffer -> %v, want %v", ttyCtrl.LastBuffer(), buf1)
	}
	ttyCtrl.TestBuffer(t, buf1)

	tty.ResetBuffer()
	if ttyCtrl.LastBuffer() != nil {
		t.Errorf("LastBuffer -> %v, want nil", ttyCtrl.LastBuffer())
	}

	tty.UpdateBuffer(buf2, false)
	ttyCtrl.TestPlainText(t, "buf 2\n")

	history := ttyCtrl.BufferHistory()
	if len(history) != 3 || history[0] != buf1 || history[1] != nil || history[2] != buf2 {
		t.Errorf("BufferHistory -> %v", history)
	}
}

func TestGetTTYCtrl_FakeTTY(t *testing.T) {
	tty, ttyCtrl := NewFakeTTY()
	if got, ok := GetTTYCtrl(tty); got != ttyCtrl || !ok {
		t.Errorf("GetTTYCtrl -> %v, %v", got, ok)
	}
}
