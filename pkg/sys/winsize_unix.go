//go:build unix

package sys

import (
	"os"

	"golang.org/x/sys/unix"
)

const sigWINCH = unix.SIGWINCH

const (
	fallbackRows = 24
	fallbackCols = 80
)

func winSize(file *os.File) (int, int) {
	ws, err := unix.IoctlGetWinsize(int(file.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return -1, -1
	}
	rows, cols := int(ws.Row), int(ws.Col)
	// Serial consoles may report a zero size.
	if rows == 0 {
		rows = fallbackRows
	}
	if cols == 0 {
		cols = fallbackCols
	}
	return rows, cols
}
