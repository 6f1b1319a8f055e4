//go:build unix

package sys

import (
	"os"
	"testing"

	"github.com/creack/pty"

	"src.ked.sh/pkg/must"
)

func TestWinSize(t *testing.T) {
	ptmx, tty := must.OK2(pty.Open())
	defer ptmx.Close()
	defer tty.Close()

	must.OK(pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}))
	if row, col := WinSize(tty); row != 30 || col != 100 {
		t.Errorf("WinSize() = (%d, %d), want (30, 100)", row, col)
	}

	// Zero sizes are replaced with defaults.
	must.OK(pty.Setsize(ptmx, &pty.Winsize{}))
	if row, col := WinSize(tty); row != 24 || col != 80 {
		t.Errorf("WinSize() = (%d, %d), want (24, 80)", row, col)
	}
}

func TestWinSize_NotTerminal(t *testing.T) {
	r, w := must.OK2(os.Pipe())
	defer r.Close()
	defer w.Close()
	if row, col := WinSize(r); row != -1 || col != -1 {
		t.Errorf("WinSize(pipe) = (%d, %d), want (-1, -1)", row, col)
	}
}

func TestIsATTY(t *testing.T) {
	ptmx, tty := must.OK2(pty.Open())
	defer ptmx.Close()
	defer tty.Close()
	if !IsATTY(tty.Fd()) {
		t.Errorf("IsATTY(pty) = false")
	}

	r, w := must.OK2(os.Pipe())
	defer r.Close()
	defer w.Close()
	if IsATTY(r.Fd()) {
		t.Errorf("IsATTY(pipe) = true")
	}
}
