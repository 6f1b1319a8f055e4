package cli

import "sync/atomic"

// Events queued before the loop falls behind and Input starts blocking. Key
// repeat and pasted text arrive in bursts much smaller than this.
const inputChSize = 128

// An event handled by the loop: a term.Event from the reader or an os.Signal.
type event any

type redrawFlag uint

// fullRedraw asks for the whole screen to be rewritten instead of updated.
const fullRedraw redrawFlag = 1

// A serial event loop. Events and redraw requests may come from any
// goroutine, but handle and redraw are only ever called from Run, one at a
// time, so the state they touch needs no locking.
type loop struct {
	handle func(event)
	redraw func(redrawFlag)

	inputCh  chan event
	redrawCh chan struct{}
	wantFull atomic.Bool
	returnCh chan error
}

func newLoop(handle func(event), redraw func(redrawFlag)) *loop {
	return &loop{
		handle:   handle,
		redraw:   redraw,
		inputCh:  make(chan event, inputChSize),
		redrawCh: make(chan struct{}, 1),
		returnCh: make(chan error, 1),
	}
}

// Redraw requests a redraw, a full one if full is true. Requests made before
// the loop gets to them are merged. It never blocks.
func (lp *loop) Redraw(full bool) {
	if full {
		lp.wantFull.Store(true)
	}
	select {
	case lp.redrawCh <- struct{}{}:
	default:
	}
}

// Input queues an event. It blocks when the queue is full.
func (lp *loop) Input(ev event) {
	lp.inputCh <- ev
}

// Return makes Run return err once the current event has been handled. Only
// the first call has an effect. It never blocks.
func (lp *loop) Return(err error) {
	select {
	case lp.returnCh <- err:
	default:
	}
}

// HasReturned reports whether Return has been called.
func (lp *loop) HasReturned() bool {
	return len(lp.returnCh) == 1
}

// Run draws, then handles queued events until Return is called. All events
// already queued are handled before the next redraw, so a burst of keys
// causes one redraw. Nothing is drawn after Return.
func (lp *loop) Run() error {
	for {
		var flag redrawFlag
		if lp.wantFull.Swap(false) {
			flag |= fullRedraw
		}
		lp.redraw(flag)

		select {
		case ev := <-lp.inputCh:
			if done, err := lp.handleQueued(ev); done {
				return err
			}
		case err := <-lp.returnCh:
			return err
		case <-lp.redrawCh:
		}
	}
}

// Handles ev and every event queued after it. It stops early when an event
// causes a Return.
func (lp *loop) handleQueued(ev event) (bool, error) {
	for {
		lp.handle(ev)
		select {
		case err := <-lp.returnCh:
			return true, err
		default:
		}
		select {
		case ev = <-lp.inputCh:
		default:
			return false, nil
		}
	}
}
