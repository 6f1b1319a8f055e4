// Package prog is ked's entry point. It parses the command line, sets up
// logging and profiling, and hands over to the first subprogram that accepts
// the flags.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"src.ked.sh/pkg/logutil"
)

// Program is a subprogram run by Run.
type Program interface {
	// Run runs the subprogram, or returns ErrNotSuitable if the flags are not
	// meant for it.
	Run(fds [3]*os.File, f *Flags, args []string) error
}

// Flags holds the parsed command-line flags.
type Flags struct {
	Log        string
	CPUProfile string
	Help       bool
	Version    bool

	DB     string
	Config string
}

func (f *Flags) flagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("ked", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "write debug log to `file`")
	fs.StringVar(&f.CPUProfile, "cpuprofile", "", "write CPU profile to `file`")
	fs.BoolVar(&f.Help, "help", false, "show this help and quit")
	fs.BoolVar(&f.Version, "version", false, "show the version and quit")
	fs.StringVar(&f.DB, "db", "", "`path` of the command history and cursor position database")
	fs.StringVar(&f.Config, "config", "", "`path` of the configuration file")
	return fs
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprint(w, "Usage: ked [flags] [file]\nSupported flags:\n")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// Run runs ked with the given command line and returns its exit status.
func Run(fds [3]*os.File, args []string, programs ...Program) int {
	stdout, stderr := fds[1], fds[2]

	var f Flags
	fs := f.flagSet()
	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			// Parse treats an undefined -h as a help request; ked doesn't.
			err = errors.New("flag provided but not defined: -h")
		}
		fmt.Fprintln(stderr, err)
		printUsage(stderr, fs)
		return 2
	}

	if f.CPUProfile != "" {
		if stop, err := startCPUProfile(f.CPUProfile); err != nil {
			fmt.Fprintln(stderr, "Warning: cannot create CPU profile:", err)
			fmt.Fprintln(stderr, "Continuing without CPU profiling.")
		} else {
			defer stop()
		}
	}
	if f.Log != "" {
		if err := logutil.SetOutputFile(f.Log); err != nil {
			fmt.Fprintln(stderr, err)
		}
		defer logutil.SetOutputFile("")
	}

	if f.Help {
		printUsage(stdout, fs)
		return 0
	}

	err := Composite(programs...).Run(fds, &f, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(stderr, msg)
	}
	var exit exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	if errors.As(err, new(badUsageError)) {
		printUsage(stderr, fs)
	}
	return 2
}

func startCPUProfile(name string) (stop func(), err error) {
	file, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		file.Close()
	}, nil
}

// ErrNotSuitable is returned by a Program that doesn't handle the given
// flags, so that Composite moves on to the next one.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// Composite returns a Program that runs each of programs in turn until one
// returns something other than ErrNotSuitable.
func Composite(programs ...Program) Program { return composite(programs) }

type composite []Program

func (c composite) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range c {
		if err := p.Run(fds, f, args); err != ErrNotSuitable {
			return err
		}
	}
	return ErrNotSuitable
}

// BadUsage returns an error that makes Run print msg followed by the usage,
// and exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns an error that makes Run exit with code silently. Exit(0) is
// nil.
func Exit(code int) error {
	if code == 0 {
		return nil
	}
	return exitError{code}
}

type exitError struct{ code int }

func (exitError) Error() string { return "" }
