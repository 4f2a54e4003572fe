// Package cli is the entry point shared by the sample commands: it parses
// flags, loads config, installs the logger and runs a sample in a window or
// headless.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/jakecoffman/cpdraw"
	"github.com/jakecoffman/cpdraw/examples"
	"github.com/jakecoffman/cpdraw/internal/config"
)

// Build makes the sample to run from the loaded config.
type Build func(c config.Config) (examples.App, examples.Settings)

// Windowed runs an app on screen until it is closed.
type Windowed func(app examples.App, s examples.Settings) error

type options struct {
	envFile  string
	headless bool
	frames   int
	out      string
}

var ErrUsage = errors.New("cli: bad arguments")

func parse(name string, args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.envFile, "env", ".env", "dotenv file with CPDRAW_ settings")
	fs.BoolVar(&o.headless, "headless", false, "render off-screen instead of opening a window")
	fs.IntVar(&o.frames, "frames", 120, "frames to run when headless")
	fs.StringVar(&o.out, "out", name+".png", "PNG written when headless")
	if err := fs.Parse(args); err != nil {
		return o, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("%w: unexpected %q", ErrUsage, fs.Arg(0))
	}
	if o.frames < 0 {
		return o, fmt.Errorf("%w: -frames must not be negative", ErrUsage)
	}
	return o, nil
}

// NewLogger returns a text logger on w at level and hands it to the
// libraries that log.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	cpdraw.SetLogger(l)
	gg.SetLogger(l)
	return l
}

// Run runs the sample build makes with the command line args, through win
// unless -headless is given.
func Run(name string, args []string, build Build, win Windowed) error {
	o, err := parse(name, args, os.Stderr)
	if err != nil {
		return err
	}
	c, err := config.Load(o.envFile)
	if err != nil {
		return err
	}
	log := NewLogger(os.Stderr, c.LogLevel)

	app, s := build(c)
	if !o.headless {
		return win(app, s)
	}

	dc, err := examples.RunHeadless(app, s, o.frames)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := examples.SaveFrame(dc, o.out); err != nil {
		return err
	}
	log.Info("cli: wrote frame", slog.String("path", o.out), slog.Int("frames", o.frames))
	return nil
}

// Main calls Run and exits non-zero on error.
func Main(name string, build Build, win Windowed) {
	if err := Run(name, os.Args[1:], build, win); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}
