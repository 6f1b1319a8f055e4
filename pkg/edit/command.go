package edit

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"src.ked.sh/pkg/buffer"
	"src.ked.sh/pkg/errutil"
	"src.ked.sh/pkg/store/storedefs"
	"src.ked.sh/pkg/window"
)

// Errors from commands. Their messages follow the wording of vi.
var (
	ErrTrailingCharacters = errors.New("Trailing characters")
	ErrOneFileName        = errors.New("Only one file name allowed")
	ErrUnsavedChanges     = errors.New("No write since last change (add ! to override)")
)

// UnknownCommandError is returned when running a command that doesn't exist.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "Not an editor command: " + e.Name
}

type commandSpec struct {
	// Whether the command accepts a file name argument.
	takesFile bool
	fn        func(ed *Editor, file string) error
}

var commands = map[string]commandSpec{
	"w":   {true, cmdWrite},
	"q":   {false, cmdQuit},
	"q!":  {false, cmdForceQuit},
	"wq":  {true, cmdWriteQuit},
	"x":   {true, cmdWriteQuit},
	"e":   {true, cmdEdit},
	"e!":  {true, cmdForceEdit},
	"vne": {true, cmdVsplit},
	"new": {true, cmdSplit},
	"clo": {false, cmdClose},
}

// RunCommand runs a command line, such as "w foo.txt". The command name is
// separated from its argument by the first space.
func (ed *Editor) RunCommand(text string) error {
	text = strings.TrimSpace(text)
	name, arg, _ := strings.Cut(text, " ")
	arg = strings.TrimSpace(arg)
	spec, ok := commands[name]
	if !ok {
		return &UnknownCommandError{name}
	}
	if arg != "" {
		if !spec.takesFile {
			return ErrTrailingCharacters
		}
		if strings.ContainsAny(arg, " \t") {
			return ErrOneFileName
		}
	}
	logger.Printf("running command %q with argument %q", name, arg)
	return spec.fn(ed, arg)
}

func cmdWrite(ed *Editor, file string) error { return ed.write(file) }

func cmdQuit(ed *Editor, _ string) error {
	for _, w := range ed.layout.Windows() {
		if w.Buffer().Dirty() {
			return ErrUnsavedChanges
		}
	}
	return cmdForceQuit(ed, "")
}

func cmdForceQuit(ed *Editor, _ string) error {
	ed.quit = true
	return nil
}

func cmdWriteQuit(ed *Editor, file string) error {
	if file != "" || ed.Active().Buffer().Dirty() {
		if err := ed.write(file); err != nil {
			return err
		}
	}
	return cmdForceQuit(ed, "")
}

func cmdEdit(ed *Editor, file string) error {
	if ed.Active().Buffer().Dirty() {
		return ErrUnsavedChanges
	}
	return cmdForceEdit(ed, file)
}

func cmdForceEdit(ed *Editor, file string) error {
	w := ed.Active()
	if file == "" {
		// Reload the current file.
		file = w.Buffer().Name()
		if file == "" {
			return buffer.ErrNoFileName
		}
	}
	ed.savePos(w)
	if err := w.Load(file); err != nil {
		return err
	}
	ed.restorePos(w)
	return nil
}

func cmdVsplit(ed *Editor, file string) error {
	return ed.split(file, ed.layout.SplitVertical)
}

func cmdSplit(ed *Editor, file string) error {
	return ed.split(file, ed.layout.SplitHorizontal)
}

// Splits the active window. The new window shows the named file, or the same
// buffer when file is empty.
func (ed *Editor) split(file string, f func(*buffer.Buffer) error) error {
	buf := ed.Active().Buffer()
	if file != "" {
		var err error
		buf, err = buffer.Load(file)
		if err != nil {
			return err
		}
	}
	if err := f(buf); err != nil {
		return err
	}
	if file != "" {
		ed.restorePos(ed.Active())
	}
	return nil
}

func cmdClose(ed *Editor, _ string) error {
	w := ed.Active()
	if err := ed.layout.Close(); err != nil {
		return err
	}
	ed.savePos(w)
	return nil
}

// Writes the buffer of the active window, to file if it is not empty.
func (ed *Editor) write(file string) error {
	w := ed.Active()
	buf := w.Buffer()
	var err error
	if file == "" {
		err = buf.Write()
	} else {
		err = buf.WriteAs(file)
	}
	if err != nil {
		return err
	}
	ed.savePos(w)
	content := buf.String()
	ed.notifyf("%q %dL, %dB written", buf.Name(), strings.Count(content, "\n"), len(content))
	return nil
}

// Close records the cursor positions of all windows showing files. It should
// be called when the editor exits.
func (ed *Editor) Close() error {
	var errs []error
	for _, w := range ed.layout.Windows() {
		errs = append(errs, ed.savePosErr(w))
	}
	return errutil.Multi(errs...)
}

func (ed *Editor) savePos(w *window.Window) {
	if err := ed.savePosErr(w); err != nil {
		logger.Println("failed to save position:", err)
	}
}

func (ed *Editor) savePosErr(w *window.Window) error {
	name := w.Buffer().Name()
	if name == "" {
		return nil
	}
	path, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	pos := w.Pos()
	if err := ed.store.SetPos(path, storedefs.Pos{Row: pos.Row, Col: pos.Col}); err != nil {
		return fmt.Errorf("save position of %s: %w", name, err)
	}
	return nil
}

// Moves the cursor of w to the recorded position of its file, if any.
func (ed *Editor) restorePos(w *window.Window) {
	name := w.Buffer().Name()
	if name == "" {
		return
	}
	path, err := filepath.Abs(name)
	if err != nil {
		return
	}
	pos, err := ed.store.Pos(path)
	if err != nil {
		if !errors.Is(err, storedefs.ErrNoPos) {
			logger.Println("failed to restore position:", err)
		}
		return
	}
	w.SetRow(pos.Row)
	w.SetCol(pos.Col)
}
