// Package keymap parses human-readable key sequences and builds key tries from
// them.
//
// The syntax of a key sequence is a mix of literal characters and tokens in
// angle brackets:
//
//	jk          the keys j and k
//	<space>w    Space followed by w
//	<C-x>       Ctrl-X
//	<lt>        a literal <
//
// Recognized token names are case-insensitive: space, cr, enter, return, bs,
// backspace, esc, tab, lt, up, down, left, right, home, end, del. A token may
// carry modifiers in the form <C-x>, <A-x>, <M-x> or <S-Tab>.
package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"src.ked.sh/pkg/trie"
	"src.ked.sh/pkg/ui"
)

// Sequence is an ordered list of keys.
type Sequence []ui.Key

var tokenKeys = map[string]rune{
	"space": ' ', "lt": '<',
	"cr": ui.Enter, "enter": ui.Enter, "return": ui.Enter,
	"bs": ui.Backspace, "backspace": ui.Backspace,
	"esc": ui.Escape, "tab": ui.Tab,
	"up": ui.Up, "down": ui.Down, "left": ui.Left, "right": ui.Right,
	"home": ui.Home, "end": ui.End, "del": ui.Delete,
}

var tokenNames = map[rune]string{
	' ': "space", '<': "lt", ui.Enter: "CR", ui.Backspace: "BS",
	ui.Escape: "Esc", ui.Tab: "Tab",
	ui.Up: "Up", ui.Down: "Down", ui.Left: "Left", ui.Right: "Right",
	ui.Home: "Home", ui.End: "End", ui.Delete: "Del",
}

var tokenMods = map[string]ui.Mod{
	"c": ui.Ctrl, "a": ui.Alt, "m": ui.Alt, "s": ui.Shift,
}

// Errors returned by Parse.
var (
	ErrEmpty        = errors.New("empty key sequence")
	ErrUnterminated = errors.New("unterminated <")
	ErrInvalidUTF8  = errors.New("invalid UTF-8 in key sequence")
)

// Parse parses a key sequence.
func Parse(s string) (Sequence, error) {
	if s == "" {
		return nil, ErrEmpty
	}
	var seq Sequence
	for s != "" {
		if s[0] != '<' {
			r, size := utf8.DecodeRuneInString(s)
			if r == utf8.RuneError && size == 1 {
				return nil, ErrInvalidUTF8
			}
			seq = append(seq, ui.K(r))
			s = s[size:]
			continue
		}
		end := strings.IndexByte(s, '>')
		if end == -1 {
			return nil, ErrUnterminated
		}
		k, err := parseToken(s[1:end])
		if err != nil {
			return nil, err
		}
		seq = append(seq, k)
		s = s[end+1:]
	}
	return seq, nil
}

// MustParse is like Parse but panics on errors.
func MustParse(s string) Sequence {
	seq, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return seq
}

func parseToken(tok string) (ui.Key, error) {
	var mod ui.Mod
	for len(tok) > 2 && tok[1] == '-' {
		m, ok := tokenMods[strings.ToLower(tok[:1])]
		if !ok {
			return ui.Key{}, fmt.Errorf("bad modifier in <%s>", tok)
		}
		mod |= m
		tok = tok[2:]
	}
	if r, ok := tokenKeys[strings.ToLower(tok)]; ok {
		return ui.Key{Rune: r, Mod: mod}, nil
	}
	if mod != 0 {
		r, size := utf8.DecodeRuneInString(tok)
		if r == utf8.RuneError && size == 1 {
			return ui.Key{}, ErrInvalidUTF8
		}
		if size == len(tok) {
			if mod&ui.Ctrl != 0 && 'a' <= r && r <= 'z' {
				r -= 'a' - 'A'
			}
			return ui.Key{Rune: r, Mod: mod}, nil
		}
	}
	return ui.Key{}, fmt.Errorf("unknown key <%s>", tok)
}

// String returns the sequence in the syntax accepted by Parse.
func (seq Sequence) String() string {
	var sb strings.Builder
	for _, k := range seq {
		name, named := tokenNames[k.Rune]
		if k.Mod == 0 && !named {
			sb.WriteRune(k.Rune)
			continue
		}
		sb.WriteByte('<')
		if k.Mod&ui.Ctrl != 0 {
			sb.WriteString("C-")
		}
		if k.Mod&ui.Alt != 0 {
			sb.WriteString("A-")
		}
		if k.Mod&ui.Shift != 0 {
			sb.WriteString("S-")
		}
		if named {
			sb.WriteString(name)
		} else {
			sb.WriteRune(k.Rune)
		}
		sb.WriteByte('>')
	}
	return sb.String()
}

// Binding associates a key sequence, in the syntax accepted by Parse, with a
// value.
type Binding[V any] struct {
	Keys  string
	Value V
}

// Build parses the key sequences of the bindings and inserts them into a new
// trie in order. When the same sequence appears more than once, the first
// binding wins.
func Build[V any](bindings []Binding[V]) (*trie.Trie[ui.Key, V], error) {
	t := &trie.Trie[ui.Key, V]{}
	for _, b := range bindings {
		seq, err := Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Keys, err)
		}
		t.Insert(seq, b.Value)
	}
	return t, nil
}
