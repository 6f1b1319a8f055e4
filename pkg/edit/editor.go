// Package edit implements the modal editor core.
//
// An Editor owns the window layout, the current mode, the pending key sequence
// and the command line. Keys are fed one at a time with HandleKey; in Insert
// and Command mode they are echoed immediately, and retracted when they turn
// out to complete a binding.
package edit

import (
	"fmt"
	"time"

	"src.ked.sh/pkg/buffer"
	"src.ked.sh/pkg/layout"
	"src.ked.sh/pkg/logutil"
	"src.ked.sh/pkg/store"
	"src.ked.sh/pkg/store/storedefs"
	"src.ked.sh/pkg/trie"
	"src.ked.sh/pkg/ui"
	"src.ked.sh/pkg/window"
)

var logger = logutil.GetLogger("[edit] ")

// Mode is the editing mode.
type Mode int

// Possible values for Mode.
const (
	Normal Mode = iota
	Insert
	Command
)

var modeNames = [...]string{"normal", "insert", "command"}

func (m Mode) String() string {
	if 0 <= m && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the name of a mode, as returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Message is the content of the message line.
type Message struct {
	Text  string
	Error bool
}

// Mapping binds a key sequence to a named action in one mode.
type Mapping struct {
	Mode   Mode
	Keys   string
	Action string
}

// Options configures an Editor.
type Options struct {
	// Number of spaces inserted for Tab. Defaults to 4.
	TabWidth int
	// Width of the line number sidebar. Defaults to window.DefaultSidebar.
	Sidebar int
	// Additional mappings. They take precedence over the default ones.
	Mappings []Mapping
	// Store for command history and cursor positions. Defaults to an
	// in-memory store.
	Store storedefs.Store
}

const defaultTabWidth = 4

type pendingKey struct {
	key ui.Key
	// Number of characters inserted when the key was echoed.
	echoed int
}

// Editor is the state of the editor.
type Editor struct {
	layout  *layout.Layout
	keymaps map[Mode]*trie.Trie[ui.Key, Action]
	store   storedefs.Store

	mode    Mode
	pending []pendingKey
	cmdline cmdline
	message Message
	quit    bool

	tabWidth    int
	lastKeyTime time.Time
	now         func() time.Time
}

// NewEditor creates an Editor showing buf on a screen of the given size. The
// last row of the screen is the message line.
func NewEditor(buf *buffer.Buffer, height, width int, opts Options) (*Editor, error) {
	if opts.TabWidth <= 0 {
		opts.TabWidth = defaultTabWidth
	}
	if opts.Sidebar <= 0 {
		opts.Sidebar = window.DefaultSidebar
	}
	if opts.Store == nil {
		opts.Store = store.NewMemStore()
	}
	keymaps, err := buildKeymaps(opts.Mappings)
	if err != nil {
		return nil, err
	}
	ed := &Editor{
		layout:   layout.New(buf, max(height-1, 0), width, opts.Sidebar),
		keymaps:  keymaps,
		store:    opts.Store,
		tabWidth: opts.TabWidth,
		now:      time.Now,
	}
	ed.restorePos(ed.Active())
	return ed, nil
}

// Layout returns the window layout.
func (ed *Editor) Layout() *layout.Layout { return ed.layout }

// Active returns the active window.
func (ed *Editor) Active() *window.Window { return ed.layout.Active() }

// Mode returns the current mode.
func (ed *Editor) Mode() Mode { return ed.mode }

// Message returns the content of the message line, not counting the command
// line shown in Command mode.
func (ed *Editor) Message() Message { return ed.message }

// Pending returns the keys typed since the last resolved binding.
func (ed *Editor) Pending() []ui.Key {
	keys := make([]ui.Key, len(ed.pending))
	for i, p := range ed.pending {
		keys[i] = p.key
	}
	return keys
}

// LastKeyTime returns when the last key was handled. It can be used to expire
// a pending sequence after a period of inactivity.
func (ed *Editor) LastKeyTime() time.Time { return ed.lastKeyTime }

// Quitting reports whether a quit has been requested.
func (ed *Editor) Quitting() bool { return ed.quit }

// Resize adapts the layout to a new screen size.
func (ed *Editor) Resize(height, width int) {
	ed.layout.Resize(max(height-1, 0), width)
}

func (ed *Editor) setMode(m Mode) {
	ed.mode = m
	ed.pending = nil
}

func (ed *Editor) notifyf(format string, args ...any) {
	ed.message = Message{Text: fmt.Sprintf(format, args...)}
}

func (ed *Editor) notifyError(err error) {
	logger.Println("error:", err)
	ed.message = Message{Text: err.Error(), Error: true}
}

// NotifyError shows an error on the message line.
func (ed *Editor) NotifyError(err error) { ed.notifyError(err) }
