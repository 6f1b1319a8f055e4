//go:build unix

package term

import (
	"os"
	"time"

	"src.ked.sh/pkg/ui"
)

type reader struct {
	fr fileReader
}

func newReader(f *os.File) (*reader, error) {
	fr, err := newFileReader(f)
	if err != nil {
		return nil, err
	}
	return &reader{fr}, nil
}

func (rd *reader) ReadEvent() (Event, error) { return decodeEvent(rd.fr) }

func (rd *reader) Close() {
	rd.fr.Stop()
	rd.fr.Close()
}

const esc = 0x1b

// Returned by seqDecoder.next when the current sequence has no more runes.
const runeEndOfSeq rune = -1

// How long to wait for each rune after the first one of an escape sequence.
// Terminal emulators write a whole sequence at once, so this only needs to
// cover slow links.
var keySeqTimeout = 10 * time.Millisecond

// decodeEvent blocks for one rune, and decodes it together with the rest of
// the escape sequence it starts, if any.
func decodeEvent(rd byteReaderWithTimeout) (Event, error) {
	r, err := readRune(rd, -1)
	if err != nil {
		return nil, err
	}
	if r != esc {
		return KeyEvent(ctrlKey(r)), nil
	}
	d := &seqDecoder{rd: rd, seq: []rune{r}}
	return d.escape()
}

type seqDecoder struct {
	rd  byteReaderWithTimeout
	seq []rune
}

func (d *seqDecoder) next() rune {
	r, err := readRune(d.rd, keySeqTimeout)
	if err != nil {
		return runeEndOfSeq
	}
	d.seq = append(d.seq, r)
	return r
}

func (d *seqDecoder) fail(msg string) error {
	return seqError{msg, string(d.seq)}
}

func (d *seqDecoder) escape() (Event, error) {
	r := d.next()
	// rxvt signals Alt on CSI and G3 sequences with an extra leading ESC.
	alt := false
	if r == esc {
		alt = true
		r = d.next()
	}

	var k ui.Key
	var err error
	switch r {
	case runeEndOfSeq:
		return K(ui.Escape), nil
	case '[':
		k, err = d.csi()
	case 'O':
		k, err = d.g3()
	default:
		k = ctrlKey(r)
		k.Mod |= ui.Alt
		return KeyEvent(k), nil
	}
	if err != nil {
		return nil, err
	}
	if alt {
		k.Mod |= ui.Alt
	}
	return KeyEvent(k), nil
}

// csi decodes the part after "\e[": numeric parameters separated by ';',
// then a final rune.
func (d *seqDecoder) csi() (ui.Key, error) {
	r := d.next()
	if r == runeEndOfSeq {
		return ui.K('[', ui.Alt), nil
	}
	var params []int
	for ; ; r = d.next() {
		switch {
		case r == ';':
			params = append(params, 0)
		case '0' <= r && r <= '9':
			if len(params) == 0 {
				params = append(params, 0)
			}
			last := len(params) - 1
			params[last] = params[last]*10 + int(r-'0')
		case r == runeEndOfSeq:
			return ui.Key{}, d.fail("incomplete CSI")
		default:
			if k := parseCSI(params, r); k != (ui.Key{}) {
				return k, nil
			}
			return ui.Key{}, d.fail("bad CSI")
		}
	}
}

// g3 decodes the rune after "\eO".
func (d *seqDecoder) g3() (ui.Key, error) {
	r := d.next()
	if r == runeEndOfSeq {
		return ui.K('O', ui.Alt), nil
	}
	if k, ok := g3Keys[r]; ok {
		return k, nil
	}
	return ui.Key{}, d.fail("bad G3")
}

// ctrlKey maps a rune read in raw mode to a key. Control characters become
// Ctrl-modified keys, except the ones that double as Tab, Enter and
// Backspace.
func ctrlKey(r rune) ui.Key {
	switch {
	case r == 0:
		return ui.K('`', ui.Ctrl)
	case r == 0x1e:
		return ui.K('6', ui.Ctrl)
	case r == 0x1f:
		return ui.K('/', ui.Ctrl)
	case r == '\r':
		return ui.K(ui.Enter)
	case r == ui.Tab || r == ui.Enter:
		return ui.K(r)
	case 0x1 <= r && r <= 0x1d:
		return ui.K(r+0x40, ui.Ctrl)
	}
	return ui.K(r)
}

// Keys sent as "\eO" plus one rune.
var g3Keys = map[rune]ui.Key{
	'A': ui.K(ui.Up), 'B': ui.K(ui.Down), 'C': ui.K(ui.Right), 'D': ui.K(ui.Left),
	'H': ui.K(ui.Home), 'F': ui.K(ui.End), 'M': ui.K(ui.Insert),
	'a': ui.K(ui.Up, ui.Ctrl), 'b': ui.K(ui.Down, ui.Ctrl),
	'c': ui.K(ui.Right, ui.Ctrl), 'd': ui.K(ui.Left, ui.Ctrl),
	'P': ui.K(ui.F1), 'Q': ui.K(ui.F2), 'R': ui.K(ui.F3), 'S': ui.K(ui.F4),
}

// CSI keys named by their final rune. xterm adds the parameters "1;<mod>"
// when a modifier is held.
var csiKeysByFinal = map[rune]ui.Key{
	'A': ui.K(ui.Up), 'B': ui.K(ui.Down), 'C': ui.K(ui.Right), 'D': ui.K(ui.Left),
	'a': ui.K(ui.Up, ui.Shift), 'b': ui.K(ui.Down, ui.Shift),
	'c': ui.K(ui.Right, ui.Shift), 'd': ui.K(ui.Left, ui.Shift),
	'H': ui.K(ui.Home), 'F': ui.K(ui.End),
	'Z': ui.K(ui.Tab, ui.Shift),
}

// CSI keys named by their first parameter, as in "\e[3~" for Delete. xterm
// puts the modifier in a second parameter, while urxvt replaces '~' with one
// of the runes in urxvtMods.
var csiKeysByParam = map[int]rune{
	1: ui.Home, 2: ui.Insert, 3: ui.Delete, 4: ui.End,
	5: ui.PageUp, 6: ui.PageDown, 7: ui.Home, 8: ui.End,
	11: ui.F1, 12: ui.F2, 13: ui.F3, 14: ui.F4,
	15: ui.F5, 17: ui.F6, 18: ui.F7, 19: ui.F8,
	20: ui.F9, 21: ui.F10, 23: ui.F11, 24: ui.F12,
}

var urxvtMods = map[rune]ui.Mod{
	'$': ui.Shift, '^': ui.Ctrl, '@': ui.Shift | ui.Ctrl,
}

// parseCSI returns the zero Key for sequences it doesn't know.
func parseCSI(params []int, final rune) ui.Key {
	if k, ok := csiKeysByFinal[final]; ok {
		switch {
		case len(params) == 0:
			return k
		case len(params) == 2 && params[0] == 1:
			return xtermModify(k, params[1])
		}
		return ui.Key{}
	}
	if len(params) == 0 {
		return ui.Key{}
	}
	r, ok := csiKeysByParam[params[0]]
	if !ok {
		return ui.Key{}
	}
	if final == '~' {
		switch len(params) {
		case 1:
			return ui.K(r)
		case 2:
			return xtermModify(ui.K(r), params[1])
		}
	} else if mod, ok := urxvtMods[final]; ok && len(params) == 1 {
		return ui.K(r, mod)
	}
	return ui.Key{}
}

// xterm encodes modifiers as 1 plus a bit mask. The last bit is Meta, which
// is not told apart from Alt.
var xtermModBits = [...]ui.Mod{ui.Shift, ui.Alt, ui.Ctrl, ui.Alt}

func xtermModify(k ui.Key, code int) ui.Key {
	if code < 0 || code > 16 {
		return ui.Key{}
	}
	for i, mod := range xtermModBits {
		if code > 0 && (code-1)&(1<<i) != 0 {
			k.Mod |= mod
		}
	}
	return k
}
