package edit

import (
	"unicode"

	"src.ked.sh/pkg/trie"
	"src.ked.sh/pkg/ui"
)

// HandleKey processes one key.
//
// Shift is ignored and Ctrl-modified keys are dropped. Arrow keys move the
// cursor directly, and other function keys are ignored; none of them become
// part of the pending sequence. Other keys are echoed in Insert and Command
// mode, appended to the pending sequence and looked up in the keymap of the
// current mode:
//
//   - When a suffix of the pending sequence is bound, the characters echoed
//     for that suffix are retracted, the action is executed and the pending
//     sequence is cleared.
//   - When the pending sequence may still become bound, nothing happens.
//   - Otherwise the first key of the pending sequence is dropped.
//
// Errors from actions are shown on the message line. The returned error is
// reserved for failures the editor cannot recover from; there are none at
// the moment.
func (ed *Editor) HandleKey(k ui.Key) error {
	ed.lastKeyTime = ed.now()
	k.Mod &^= ui.Shift
	if k.Mod&ui.Ctrl != 0 {
		return nil
	}
	if k.IsFunctionKey() && k.Rune != ui.Escape {
		ed.handleFunctionKey(k)
		return nil
	}

	echoed := 0
	switch ed.mode {
	case Insert:
		echoed = ed.echoInsert(k)
	case Command:
		var done bool
		echoed, done = ed.echoCommand(k)
		if done {
			return nil
		}
	}

	ed.pending = append(ed.pending, pendingKey{k, echoed})
	r := ed.keymaps[ed.mode].FetchWithLeadingDiscard(ed.Pending())
	switch r.Verdict {
	case trie.Matched:
		ed.retract(r.Discarded)
		ed.pending = nil
		if err := r.Value.Execute(ed); err != nil {
			ed.notifyError(err)
		}
	case trie.NoMatch:
		ed.pending = ed.pending[1:]
	}
	return nil
}

// Deletes what was echoed for the pending keys starting from index i.
func (ed *Editor) retract(i int) {
	n := 0
	for _, p := range ed.pending[i:] {
		n += p.echoed
	}
	switch ed.mode {
	case Insert:
		ed.Active().DeleteChars(n)
	case Command:
		for range n {
			ed.cmdline.backspace()
		}
	}
}

func (ed *Editor) handleFunctionKey(k ui.Key) {
	w := ed.Active()
	switch k.Rune {
	case ui.Left:
		if ed.mode == Command {
			ed.cmdline.moveDot(-1)
		} else {
			w.MoveCol(-1)
		}
	case ui.Right:
		if ed.mode == Command {
			ed.cmdline.moveDot(1)
		} else {
			w.MoveCol(1)
		}
	case ui.Up:
		if ed.mode == Command {
			ed.historyPrev()
		} else {
			w.MoveRow(-1)
		}
	case ui.Down:
		if ed.mode == Command {
			ed.historyNext()
		} else {
			w.MoveRow(1)
		}
	}
}

// Echoes a key in Insert mode and returns the number of characters inserted.
func (ed *Editor) echoInsert(k ui.Key) int {
	if k.Mod != 0 {
		return 0
	}
	w := ed.Active()
	switch k.Rune {
	case ui.Escape:
		return 0
	case ui.Enter:
		w.TypeChar('\n')
		return 1
	case ui.Backspace:
		w.DeleteChars(1)
		return 0
	case ui.Tab:
		for range ed.tabWidth {
			w.TypeChar(' ')
		}
		return ed.tabWidth
	}
	if unicode.IsPrint(k.Rune) {
		w.TypeChar(k.Rune)
		return 1
	}
	return 0
}

// Echoes a key in Command mode and returns the number of characters inserted.
// It also reports whether the key left Command mode, in which case the key has
// been fully handled.
func (ed *Editor) echoCommand(k ui.Key) (echoed int, done bool) {
	if k.Mod != 0 {
		return 0, false
	}
	switch k.Rune {
	case ui.Enter:
		ed.submitCommand()
		return 0, true
	case ui.Backspace:
		if ed.cmdline.empty() {
			ed.leaveCommand()
			return 0, true
		}
		ed.cmdline.backspace()
		ed.resetHistoryWalk()
	default:
		if unicode.IsPrint(k.Rune) {
			ed.cmdline.insert(k.Rune)
			ed.resetHistoryWalk()
			return 1, false
		}
	}
	return 0, false
}
