// Package ui contains types shared by the editor core and the terminal layer.
package ui

import (
	"fmt"
	"strings"
)

// Key represents a single keyboard input, typically assembled from an escape
// sequence.
type Key struct {
	Rune rune
	Mod  Mod
}

// K constructs a new Key.
func K(r rune, mods ...Mod) Key {
	var mod Mod
	for _, m := range mods {
		mod |= m
	}
	return Key{r, mod}
}

// Mod represents a modifier key.
type Mod byte

// Values for Mod.
const (
	// Shift is the shift modifier. It is only applied to special keys (e.g.
	// Shift-F1). For instance 'A' and '@' which are typically entered with the
	// shift key pressed, are not considered to be shift-modified.
	Shift Mod = 1 << iota
	// Alt is the alt modifier, traditionally known as the meta modifier.
	Alt
	Ctrl
)

// Special negative runes to represent function keys, used in the Rune field of
// the Key struct.
const (
	F1 rune = -iota - 1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	Up
	Down
	Right
	Left

	Home
	Insert
	Delete
	End
	PageUp
	PageDown

	Escape

	// Some function key names are just aliases for their ASCII representation

	Tab       = '\t'
	Enter     = '\n'
	Backspace = 0x7f
)

// IsFunctionKey returns whether the key is a function key, i.e. one with no
// character representation.
func (k Key) IsFunctionKey() bool { return k.Rune < 0 }

// IsArrow returns whether the key is one of the four arrow keys.
func (k Key) IsArrow() bool {
	switch k.Rune {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Functional key names. The index of a name is the negated rune of the key.
var functionKeyNames = [...]string{
	"(Invalid)",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"Up", "Down", "Right", "Left",
	"Home", "Insert", "Delete", "End", "PageUp", "PageDown",
	"Escape",
}

// Keys with special names that are not function keys.
var keyNames = map[rune]string{
	Tab: "Tab", Enter: "Enter", Backspace: "Backspace", ' ': "Space",
}

func (k Key) String() string {
	var b strings.Builder
	if k.Mod&Ctrl != 0 {
		b.WriteString("Ctrl-")
	}
	if k.Mod&Alt != 0 {
		b.WriteString("Alt-")
	}
	if k.Mod&Shift != 0 {
		b.WriteString("Shift-")
	}
	switch {
	case k.Rune >= 0:
		if name, ok := keyNames[k.Rune]; ok {
			b.WriteString(name)
		} else {
			b.WriteRune(k.Rune)
		}
	case int(-k.Rune) < len(functionKeyNames):
		b.WriteString(functionKeyNames[-k.Rune])
	default:
		fmt.Fprintf(&b, "(bad function key %d)", k.Rune)
	}
	return b.String()
}

// Modifier names, matched case-insensitively by ParseKey.
var modByName = map[string]Mod{
	"s": Shift, "shift": Shift,
	"a": Alt, "alt": Alt,
	"m": Alt, "meta": Alt,
	"c": Ctrl, "ctrl": Ctrl,
}

// Runes of the keys that have a name, keyed by that name.
var runeByName = func() map[string]rune {
	m := make(map[string]rune)
	for r, name := range keyNames {
		m[name] = r
	}
	for i, name := range functionKeyNames {
		if i > 0 {
			m[name] = rune(-i)
		}
	}
	return m
}()

// ParseKey parses a key written as zero or more modifiers, each followed by
// '-' or '+', and then either a single rune or a key name, such as "Ctrl-w",
// "Alt+Enter" or "F5". A Ctrl-modified lower case letter is turned into upper
// case, which is what the terminal reader produces.
func ParseKey(s string) (Key, error) {
	var k Key
	for {
		i := strings.IndexAny(s, "+-")
		if i <= 0 {
			break
		}
		mod, ok := modByName[strings.ToLower(s[:i])]
		if !ok {
			return Key{}, fmt.Errorf("bad modifier: %s", strings.ToLower(s[:i]))
		}
		k.Mod |= mod
		s = s[i+1:]
	}

	if rs := []rune(s); len(rs) == 1 {
		k.Rune = rs[0]
		if k.Mod&Ctrl != 0 && 'a' <= k.Rune && k.Rune <= 'z' {
			k.Rune += 'A' - 'a'
		}
		return k, nil
	}
	r, ok := runeByName[s]
	if !ok {
		return Key{}, fmt.Errorf("bad key: %s", s)
	}
	k.Rune = r
	return k, nil
}
