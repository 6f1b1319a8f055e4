// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingCmd is the error returned when a PrevCmd or NextCmd query
// completes with no result.
var ErrNoMatchingCmd = errors.New("no matching command line")

// ErrNoPos is returned by Pos when no position has been recorded for a file.
var ErrNoPos = errors.New("no recorded position")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextCmdSeq() (int, error)
	AddCmd(text string) (int, error)
	Cmd(seq int) (string, error)
	CmdsWithSeq(from, upto int) ([]Cmd, error)
	NextCmd(from int, prefix string) (Cmd, error)
	PrevCmd(upto int, prefix string) (Cmd, error)

	SetPos(path string, pos Pos) error
	Pos(path string) (Pos, error)
}

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}

// Pos is the last cursor position in a file.
type Pos struct {
	Row, Col int
}
