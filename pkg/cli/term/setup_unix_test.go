//go:build unix

package term

import (
	"os"
	"strings"
	"testing"

	"github.com/creack/pty"
	xterm "golang.org/x/term"

	"src.ked.sh/pkg/must"
)

func TestSetup(t *testing.T) {
	ptmx, tty := must.OK2(pty.Open())
	defer ptmx.Close()
	defer tty.Close()
	fd := int(tty.Fd())
	before := must.OK1(xterm.GetState(fd))

	restore, err := Setup(tty, tty)
	if err != nil {
		t.Fatal(err)
	}
	if raw := must.OK1(xterm.GetState(fd)); *raw == *before {
		t.Errorf("terminal state unchanged after Setup")
	}
	must.OK(restore())
	if after := must.OK1(xterm.GetState(fd)); *after != *before {
		t.Errorf("terminal state not restored")
	}

	var out strings.Builder
	buf := make([]byte, 256)
	for !strings.Contains(out.String(), leaveAltScreen) {
		n, err := ptmx.Read(buf)
		if err != nil {
			t.Fatalf("read %q, then error %v", out.String(), err)
		}
		out.Write(buf[:n])
	}
	if !strings.HasPrefix(out.String(), enterAltScreen) {
		t.Errorf("output %q doesn't start with %q", out.String(), enterAltScreen)
	}
}

func TestSetup_NotTerminal(t *testing.T) {
	r, w := must.OK2(os.Pipe())
	defer r.Close()
	defer w.Close()
	if _, err := Setup(r, w); err == nil {
		t.Errorf("Setup on a pipe returns no error")
	}
}
