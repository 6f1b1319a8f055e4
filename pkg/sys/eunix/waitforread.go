//go:build unix

// Package eunix has Unix-only helpers for the terminal reader.
package eunix

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// WaitForRead blocks until at least one of files can be read without
// blocking, or timeout passes. A negative timeout waits forever. The i-th
// element of ready tells whether files[i] is readable; a file whose other end
// is closed counts as readable.
//
// It uses select rather than poll, since poll doesn't support terminal
// devices on macOS.
func WaitForRead(timeout time.Duration, files ...*os.File) (ready []bool, err error) {
	var set unix.FdSet
	nfd := 0
	for _, f := range files {
		fd := int(f.Fd())
		set.Set(fd)
		nfd = max(nfd, fd+1)
	}
	_, err = unix.Select(nfd, &set, nil, nil, selectTimeout(timeout))
	ready = make([]bool, len(files))
	for i, f := range files {
		ready[i] = set.IsSet(int(f.Fd()))
	}
	return ready, err
}

func selectTimeout(d time.Duration) *unix.Timeval {
	if d < 0 {
		return nil
	}
	tv := unix.NsecToTimeval(d.Nanoseconds())
	return &tv
}
