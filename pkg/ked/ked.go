// Package ked is the entry point for the terminal editor.
package ked

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"src.ked.sh/pkg/buffer"
	"src.ked.sh/pkg/cli"
	"src.ked.sh/pkg/config"
	"src.ked.sh/pkg/edit"
	"src.ked.sh/pkg/errutil"
	"src.ked.sh/pkg/fsutil"
	"src.ked.sh/pkg/logutil"
	"src.ked.sh/pkg/prog"
	"src.ked.sh/pkg/store"
	"src.ked.sh/pkg/store/storedefs"
	"src.ked.sh/pkg/sys"
)

var logger = logutil.GetLogger("[ked] ")

// ErrNotTerminal is returned when ked is started without a terminal.
var ErrNotTerminal = errors.New("standard input and output must be a terminal")

// Program is the editor subprogram.
type Program struct {
	// The terminal to run on. When nil, stdin and stdout of the program are
	// used, and they must be a terminal.
	TTY cli.TTY
}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 1 {
		return prog.BadUsage("at most one file can be edited")
	}
	tty := p.TTY
	if tty == nil {
		if !sys.IsATTY(fds[0].Fd()) || !sys.IsATTY(fds[1].Fd()) {
			return ErrNotTerminal
		}
		tty = cli.NewTTY(fds[0], fds[1])
	}

	cfg, err := config.Load(f.Config)
	if err != nil {
		return err
	}
	st, closeStore := openStore(fds[2], f.DB)

	buf, openErr := loadBuffer(args)
	height, width := tty.Size()
	opts := cfg.Options()
	opts.Store = st
	ed, err := edit.NewEditor(buf, height, width, opts)
	if err != nil {
		return errutil.Multi(err, closeStore())
	}
	if openErr != nil {
		ed.NotifyError(openErr)
	}

	err = cli.NewApp(cli.AppSpec{TTY: tty, Handler: ed}).Run()
	return errutil.Multi(err, ed.Close(), closeStore())
}

// Loads the file named by args, if any. When the file cannot be opened, an
// empty unnamed buffer is returned along with the error.
func loadBuffer(args []string) (*buffer.Buffer, error) {
	if len(args) == 0 {
		return buffer.New(), nil
	}
	buf, err := buffer.Load(args[0])
	if err != nil {
		logger.Println("starting with empty buffer:", err)
		return buffer.New(), err
	}
	return buf, nil
}

// Opens the store at the given path, or at the default path if it is empty.
// When the database can't be opened, a warning is written to w and an
// in-memory store is used instead.
func openStore(w io.Writer, path string) (storedefs.Store, func() error) {
	db, err := openDBStore(path)
	if err != nil {
		fmt.Fprintln(w, "Warning:", err)
		fmt.Fprintln(w, "Command history and cursor positions will not be saved.")
		return store.NewMemStore(), func() error { return nil }
	}
	return db, db.Close
}

func openDBStore(path string) (store.DBStore, error) {
	if path == "" {
		dir, err := fsutil.DataDir()
		if err != nil {
			return nil, err
		}
		err = os.MkdirAll(dir, 0700)
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "db.bolt")
	}
	logger.Println("opening store at", path)
	return store.NewStore(path)
}
