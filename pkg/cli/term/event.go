package term

import "src.ked.sh/pkg/ui"

// Event represents an event that can be read from the terminal.
type Event interface {
	isEvent()
}

// KeyEvent represents a key press.
type KeyEvent ui.Key

// K constructs a new KeyEvent.
func K(r rune, mods ...ui.Mod) KeyEvent {
	return KeyEvent(ui.K(r, mods...))
}

// NonfatalErrorEvent represents an error that can be gradually recovered.
type NonfatalErrorEvent struct{ Err error }

// FatalErrorEvent represents an error that affects the Reader's ability to
// continue reading events. After sending a FatalError, the Reader makes no
// more attempts at continuing to read events and wait for Stop to be called.
type FatalErrorEvent struct{ Err error }

func (KeyEvent) isEvent()           {}
func (NonfatalErrorEvent) isEvent() {}
func (FatalErrorEvent) isEvent()    {}
