package edit

import (
	"fmt"
	"sort"

	"src.ked.sh/pkg/layout"
)

// Action is an operation on the editor, executed when its key sequence is
// typed.
type Action interface {
	Execute(ed *Editor) error
}

// ActionFunc adapts a function to an Action.
type ActionFunc func(ed *Editor) error

// Execute calls f(ed).
func (f ActionFunc) Execute(ed *Editor) error { return f(ed) }

// Returns an Action that calls f, for actions that cannot fail.
func simple(f func(ed *Editor)) Action {
	return ActionFunc(func(ed *Editor) error { f(ed); return nil })
}

// Returns an Action that applies f to the active window, then switches to
// Insert mode.
func enterInsert(f func(ed *Editor)) Action {
	return simple(func(ed *Editor) {
		f(ed)
		ed.setMode(Insert)
		ed.notifyf("-- INSERT --")
	})
}

func focus(d layout.Direction) Action {
	return simple(func(ed *Editor) { ed.layout.Navigate(d) })
}

var actions = map[string]Action{
	"move-left":    simple(func(ed *Editor) { ed.Active().MoveCol(-1) }),
	"move-right":   simple(func(ed *Editor) { ed.Active().MoveCol(1) }),
	"move-up":      simple(func(ed *Editor) { ed.Active().MoveRow(-1) }),
	"move-down":    simple(func(ed *Editor) { ed.Active().MoveRow(1) }),
	"line-start":   simple(func(ed *Editor) { ed.Active().ZeroCol() }),
	"line-end":     simple(func(ed *Editor) { ed.Active().MoveToEndOfLine() }),
	"buffer-start": simple(func(ed *Editor) { ed.Active().SetRow(0) }),
	"buffer-end":   simple(bufferEnd),

	"insert":            enterInsert(func(*Editor) {}),
	"insert-line-start": enterInsert(func(ed *Editor) { ed.Active().ZeroCol() }),
	"append":            enterInsert(func(ed *Editor) { ed.Active().MoveCol(1) }),
	"append-line-end":   enterInsert(func(ed *Editor) { ed.Active().MoveToEndOfLine() }),
	"open-below":        enterInsert(func(ed *Editor) { ed.Active().NewLineBelow() }),
	"open-above":        enterInsert(func(ed *Editor) { ed.Active().NewLineAbove() }),
	"change-line":       enterInsert(func(ed *Editor) { ed.Active().ChangeLine() }),
	"delete-line":       simple(func(ed *Editor) { ed.Active().DeleteLine() }),

	"leave-insert":  simple(leaveInsert),
	"command":       simple(func(ed *Editor) { ed.enterCommand() }),
	"leave-command": simple(func(ed *Editor) { ed.leaveCommand() }),

	"write":            ActionFunc(func(ed *Editor) error { return ed.write("") }),
	"write-quit":       ActionFunc(func(ed *Editor) error { return cmdWriteQuit(ed, "") }),
	"quit":             ActionFunc(func(ed *Editor) error { return cmdQuit(ed, "") }),
	"focus-left":       focus(layout.Left),
	"focus-down":       focus(layout.Down),
	"focus-up":         focus(layout.Up),
	"focus-right":      focus(layout.Right),
	"split-vertical":   ActionFunc(func(ed *Editor) error { return cmdVsplit(ed, "") }),
	"split-horizontal": ActionFunc(func(ed *Editor) error { return cmdSplit(ed, "") }),
	"close-window":     ActionFunc(func(ed *Editor) error { return cmdClose(ed, "") }),
}

func bufferEnd(ed *Editor) {
	w := ed.Active()
	w.SetRow(w.Buffer().LineCount() - 1)
}

func leaveInsert(ed *Editor) {
	ed.setMode(Normal)
	ed.Active().MoveCol(-1)
	ed.message = Message{}
}

// ActionNames returns the names of all built-in actions, sorted.
func ActionNames() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupAction(name string) (Action, error) {
	a, ok := actions[name]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}
