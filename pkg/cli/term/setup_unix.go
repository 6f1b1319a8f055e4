//go:build unix

package term

import (
	"fmt"
	"os"

	xterm "golang.org/x/term"

	"src.ked.sh/pkg/errutil"
)

const (
	enterAltScreen = "\033[?1049h"
	leaveAltScreen = "\033[?1049l"
	disableWrap    = "\033[?7l"
	enableWrap     = "\033[?7h"
	// Restores the cursor shape configured by the user.
	defaultShape = "\033[0 q"
)

// Setup puts the terminal in raw mode, switches to the alternate screen and
// disables autowrap. It returns a function that undoes all of that.
func Setup(in, out *os.File) (func() error, error) {
	fd := int(in.Fd())
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("can't set up terminal: %w", err)
	}
	_, err = out.WriteString(enterAltScreen + disableWrap)
	if err != nil {
		xterm.Restore(fd, state)
		return nil, err
	}
	return func() error {
		_, errWrite := out.WriteString(defaultShape + enableWrap + leaveAltScreen)
		return errutil.Multi(errWrite, xterm.Restore(fd, state))
	}, nil
}
