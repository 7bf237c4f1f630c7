package probe

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lixenwraith/termprobe/capability"
	"github.com/lixenwraith/termprobe/protocol"
)

// Transactor is the slice of a terminal session the probes drive: one
// request-response exchange at a time, plus geometry and raw output.
type Transactor interface {
	io.Writer
	Transact(req []byte, waitFirst bool) ([]byte, error)
	Size() (cols, rows int)
	RefreshSize() (cols, rows int)
}

// Config assembles a Runner.
type Config struct {
	Terminal Transactor
	Caps     *capability.Entry // nil when terminfo resolution failed
	Log      *slog.Logger      // nil discards trace output
	TermName string
	Environ  []string
	Argv     []string // echoed verbatim before the first prompt
}

// Runner executes the probe sections in order against one terminal. All
// findings go to the terminal itself so they can be read, or captured, in
// place.
type Runner struct {
	tty  Transactor
	caps *capability.Entry
	log  *slog.Logger
	term string
	env  []string
	argv []string

	// Set by the mode reporting section, read by everything after it.
	decrqm bool
}

// New builds a Runner. Terminal is the only required field.
func New(cfg Config) *Runner {
	logger := cfg.Log
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		tty:  cfg.Terminal,
		caps: cfg.Caps,
		log:  logger,
		term: cfg.TermName,
		env:  cfg.Environ,
		argv: cfg.Argv,
	}
}

// Run walks every probe section in order. The first transport error stops
// the survey; parse failures and missing features are findings, not
// errors.
func (r *Runner) Run() error {
	r.printf("%s\n", strings.Join(r.argv, " "))

	if _, err := r.transact([]byte("-- Press any key to start\n"), true); err != nil {
		return err
	}

	steps := []func() error{
		r.identification,
		r.modeReporting,
		r.colours,
		r.colourChange,
		r.blink,
		r.italic,
		r.barCursor,
		r.overlayHints,
		r.sixel,
		r.mouse,
		r.selection,
		r.bracketedPaste,
		r.focusEvents,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	_, err := r.transact([]byte("-- Finished\n"), true)
	return err
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.tty, format, args...)
}

func (r *Runner) section(name string) {
	r.printf("-- %s\n", name)
}

// transact logs the exchange when tracing and passes it through otherwise.
func (r *Runner) transact(req []byte, waitFirst bool) ([]byte, error) {
	resp, err := r.tty.Transact(req, waitFirst)
	if err != nil {
		r.log.Debug("transact failed", "request", strconv.Quote(string(req)), "error", err)
		return nil, err
	}
	r.log.Debug("transact", "request", strconv.Quote(string(req)), "reply", strconv.Quote(string(resp)))
	return resp, nil
}

// ask writes a control sequence followed by a prompt and waits for the
// operator's reaction.
func (r *Runner) ask(seq []byte, prompt string) ([]byte, error) {
	req := make([]byte, 0, len(seq)+len(prompt))
	req = append(req, seq...)
	req = append(req, prompt...)
	return r.transact(req, true)
}

// modeStatus queries one DEC private mode and renders the answer the way
// the reports show it. Unparseable replies read as "?".
func (r *Runner) modeStatus(mode int) (string, error) {
	resp, err := r.transact(protocol.ModeQuery(mode), false)
	if err != nil {
		return "", err
	}
	rep, ok := protocol.ParseModeReport(resp)
	if !ok {
		return "?", nil
	}
	return rep.Status.String(), nil
}

// bit renders a boolean the way the reports format support flags.
func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
