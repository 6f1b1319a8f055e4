// Package cli implements a generic full-screen terminal application.
//
// An App reads events from a TTY and feeds keys to a Handler, redrawing the
// whole screen from the Handler after each batch of events. All Handler
// methods are called from one goroutine.
package cli

import (
	"fmt"
	"os"
	"sync"
	"syscall"

	"src.ked.sh/pkg/cli/term"
	"src.ked.sh/pkg/logutil"
	"src.ked.sh/pkg/sys"
	"src.ked.sh/pkg/ui"
)

var logger = logutil.GetLogger("[cli] ")

// Handler is the state driven by an App.
type Handler interface {
	// HandleKey handles a key. A non-nil error terminates the App.
	HandleKey(k ui.Key) error
	// Render renders the whole screen.
	Render(height, width int) *term.Buffer
	// Resize is called when the size of the terminal changes.
	Resize(height, width int)
	// Quitting reports whether the App should terminate.
	Quitting() bool
	// NotifyError shows an error that doesn't terminate the App.
	NotifyError(err error)
}

// AppSpec specifies the configuration of an App.
type AppSpec struct {
	TTY     TTY
	Handler Handler
}

// App represents a full-screen terminal application.
type App interface {
	// Run runs the event loop until the Handler quits, an unrecoverable error
	// occurs, or a terminating signal arrives. This function is not
	// re-entrant.
	Run() error
	// Redraw requests a redraw. It never blocks.
	Redraw()
	// RedrawFull requests a full redraw. It never blocks.
	RedrawFull()
}

// SignalError is returned by App.Run when a terminating signal arrives.
type SignalError struct {
	Signal os.Signal
}

func (e SignalError) Error() string {
	return fmt.Sprintf("received signal %v", e.Signal)
}

type app struct {
	loop    *loop
	reqRead chan struct{}

	TTY     TTY
	Handler Handler
}

// NewApp creates a new App from the given specification.
func NewApp(spec AppSpec) App {
	a := &app{TTY: spec.TTY, Handler: spec.Handler}
	if a.TTY == nil {
		a.TTY = NewTTY(os.Stdin, os.Stdout)
	}
	a.loop = newLoop(a.handle, a.redraw)
	return a
}

func (a *app) handle(e event) {
	switch e := e.(type) {
	case os.Signal:
		switch e {
		case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM:
			a.loop.Return(SignalError{e})
		case sys.SIGWINCH:
			a.resize()
			a.RedrawFull()
		}
	case term.Event:
		switch e := e.(type) {
		case term.KeyEvent:
			if err := a.Handler.HandleKey(ui.Key(e)); err != nil {
				a.loop.Return(err)
			} else if a.Handler.Quitting() {
				a.loop.Return(nil)
			}
		case term.NonfatalErrorEvent:
			logger.Println("nonfatal read error:", e.Err)
		case term.FatalErrorEvent:
			a.loop.Return(e.Err)
		}
		if !a.loop.HasReturned() {
			a.reqRead <- struct{}{}
		}
	}
}

func (a *app) redraw(flag redrawFlag) {
	height, width := a.TTY.Size()
	if height <= 0 || width <= 0 {
		return
	}
	buf := a.Handler.Render(height, width)
	if err := a.TTY.UpdateBuffer(buf, flag&fullRedraw != 0); err != nil {
		logger.Println("failed to update terminal:", err)
	}
}

func (a *app) resize() {
	if height, width := a.TTY.Size(); height > 0 && width > 0 {
		a.Handler.Resize(height, width)
	}
}

func (a *app) Run() (err error) {
	restore, err := a.TTY.Setup()
	if err != nil {
		return err
	}
	defer func() {
		if errRestore := restore(); err == nil {
			err = errRestore
		}
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	// Relay input events.
	a.reqRead = make(chan struct{}, 1)
	a.reqRead <- struct{}{}
	defer close(a.reqRead)
	defer a.TTY.CloseReader()
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range a.reqRead {
			event, err := a.TTY.ReadEvent()
			if err == nil {
				a.loop.Input(event)
			} else if err == term.ErrStopped {
				return
			} else if term.IsReadErrorRecoverable(err) {
				a.loop.Input(term.NonfatalErrorEvent{Err: err})
			} else {
				a.loop.Input(term.FatalErrorEvent{Err: err})
				return
			}
		}
	}()

	// Relay signals.
	sigCh := a.TTY.NotifySignals()
	defer a.TTY.StopSignals()
	wg.Add(1)
	go func() {
		for sig := range sigCh {
			a.loop.Input(sig)
		}
		wg.Done()
	}()

	a.resize()
	a.RedrawFull()
	return a.loop.Run()
}

func (a *app) Redraw() {
	a.loop.Redraw(false)
}

func (a *app) RedrawFull() {
	a.loop.Redraw(true)
}
