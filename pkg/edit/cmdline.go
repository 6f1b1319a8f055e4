package edit

import (
	"errors"

	"src.ked.sh/pkg/store/storedefs"
)

// The line edited in Command mode.
type cmdline struct {
	text []rune
	dot  int

	// State of walking the command history with Up and Down. When walking,
	// prefix is the text typed before the walk started and seq is the
	// sequence number of the shown history entry.
	walking bool
	prefix  string
	seq     int
}

func (c *cmdline) empty() bool { return len(c.text) == 0 }

func (c *cmdline) set(s string) {
	c.text = []rune(s)
	c.dot = len(c.text)
}

func (c *cmdline) insert(r rune) {
	c.text = append(c.text[:c.dot], append([]rune{r}, c.text[c.dot:]...)...)
	c.dot++
}

func (c *cmdline) backspace() {
	if c.dot == 0 {
		return
	}
	c.text = append(c.text[:c.dot-1], c.text[c.dot:]...)
	c.dot--
}

func (c *cmdline) moveDot(delta int) {
	c.dot = max(0, min(c.dot+delta, len(c.text)))
}

// CommandText returns the text of the command line.
func (ed *Editor) CommandText() string { return string(ed.cmdline.text) }

// CommandDot returns the position of the cursor in the command line, in runes.
func (ed *Editor) CommandDot() int { return ed.cmdline.dot }

func (ed *Editor) enterCommand() {
	ed.setMode(Command)
	ed.cmdline = cmdline{}
	ed.message = Message{}
}

func (ed *Editor) leaveCommand() {
	ed.setMode(Normal)
	ed.cmdline = cmdline{}
}

func (ed *Editor) submitCommand() {
	text := ed.CommandText()
	ed.leaveCommand()
	if text == "" {
		return
	}
	if _, err := ed.store.AddCmd(text); err != nil {
		logger.Println("failed to add command to history:", err)
	}
	if err := ed.RunCommand(text); err != nil {
		ed.notifyError(err)
	}
}

func (ed *Editor) resetHistoryWalk() {
	ed.cmdline.walking = false
}

func (ed *Editor) historyPrev() {
	c := &ed.cmdline
	if !c.walking {
		next, err := ed.store.NextCmdSeq()
		if err != nil {
			logger.Println("failed to get next command sequence:", err)
			return
		}
		c.walking, c.prefix, c.seq = true, string(c.text), next
	}
	cmd, err := ed.store.PrevCmd(c.seq, c.prefix)
	if err != nil {
		if !errors.Is(err, storedefs.ErrNoMatchingCmd) {
			logger.Println("failed to walk history:", err)
		}
		return
	}
	c.seq = cmd.Seq
	c.set(cmd.Text)
}

func (ed *Editor) historyNext() {
	c := &ed.cmdline
	if !c.walking {
		return
	}
	cmd, err := ed.store.NextCmd(c.seq+1, c.prefix)
	if err != nil {
		if !errors.Is(err, storedefs.ErrNoMatchingCmd) {
			logger.Println("failed to walk history:", err)
			return
		}
		// Past the newest entry: back to what was typed.
		c.walking = false
		c.set(c.prefix)
		return
	}
	c.seq = cmd.Seq
	c.set(cmd.Text)
}
