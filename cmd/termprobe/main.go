// termprobe pokes a terminal emulator to find out what it can actually
// do, as opposed to what it claims.
//
// Usage:
//
//	termprobe [flags] [name of the emulator under test]
//
// The arguments are echoed at the top of the survey so captured outputs
// can be told apart later.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/lixenwraith/termprobe/capability"
	"github.com/lixenwraith/termprobe/probe"
	"github.com/lixenwraith/termprobe/terminal"
)

var (
	idleFlag  = flag.Duration("idle", 0, "reply framing window (0 = pick by transport)")
	termFlag  = flag.StringP("term", "t", "", "terminfo entry to resolve instead of $TERM")
	traceFlag = flag.String("trace", "", "write a transaction trace to this file")
)

func main() {
	// Panic recovery: the terminal must come back usable even when the
	// survey crashes mid-probe.
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// \r\n in case the reset did not fully take
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMPROBE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	// Tracing goes to a file, never to the terminal under test.
	logger := slog.New(slog.DiscardHandler)
	if *traceFlag != "" {
		tf, err := os.Create(*traceFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open trace file: %v\n", err)
			os.Exit(1)
		}
		defer tf.Close()
		logger = slog.New(slog.NewTextHandler(tf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	termName := *termFlag
	if termName == "" {
		termName = os.Getenv("TERM")
	}
	caps, err := capability.Lookup(termName)
	if err != nil {
		// A survey without terminfo still has plenty to say.
		logger.Warn("terminfo resolution failed", "term", termName, "error", err)
	} else {
		logger.Debug("terminfo resolved", "name", caps.Name(), "colours", caps.Colors())
	}

	sess, err := terminal.Open(terminal.Options{IdleWindow: *idleFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer sess.Restore()

	// An interrupt must restore the line discipline too.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		sess.Restore()
		terminal.EmergencyReset(os.Stdout)
		os.Exit(130)
	}()

	runner := probe.New(probe.Config{
		Terminal: sess,
		Caps:     caps,
		Log:      logger,
		TermName: termName,
		Environ:  os.Environ(),
		Argv:     flag.Args(),
	})

	err = runner.Run()
	sess.Restore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Survey aborted: %v\n", err)
		os.Exit(1)
	}
}
