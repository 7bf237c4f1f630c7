//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Errors the probing loop can branch on. Everything else out of this
// package wraps a syscall failure and is fatal to the run.
var (
	ErrNotTerminal = errors.New("not a terminal")
	ErrOverflow    = errors.New("response exceeds buffer")
)

// Idle windows framing a response. The default suits a local tty; replies
// that cross a network transport need more headroom between bursts.
const (
	DefaultIdleWindow = 50 * time.Millisecond
	RemoteIdleWindow  = 200 * time.Millisecond
)

// Options configures Open. Zero values select stdin/stdout and an idle
// window picked from the environment.
type Options struct {
	Input      *os.File
	Output     *os.File
	IdleWindow time.Duration
}

// Session owns the controlling terminal for the duration of a probe run:
// cbreak mode on the input side, the cached window geometry, and the idle
// window that frames responses.
type Session struct {
	in    *os.File
	out   *os.File
	inFd  int
	saved *unix.Termios

	idle time.Duration
	cols int
	rows int

	restored atomic.Bool
}

// Open verifies the input is a terminal and switches it to cbreak mode:
// echo and canonical processing off, reads returning after one byte with no
// inter-byte timer. The new state is read back and checked; a terminal that
// did not fully apply it is rolled back and refused, because probing
// through a half-raw line produces garbage framing.
func Open(opts Options) (*Session, error) {
	in, out := opts.Input, opts.Output
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	s := &Session{in: in, out: out, inFd: int(in.Fd())}

	if !term.IsTerminal(s.inFd) {
		return nil, fmt.Errorf("input: %w", ErrNotTerminal)
	}

	saved, err := unix.IoctlGetTermios(s.inFd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("read termios: %w", err)
	}
	s.saved = saved

	// Leave OPOST alone so "\n" still lands as a newline plus return.
	raw := *saved
	raw.Lflag &^= unix.ECHO | unix.ICANON
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(s.inFd, unix.TCSETSF, &raw); err != nil {
		return nil, fmt.Errorf("set cbreak: %w", err)
	}

	check, err := unix.IoctlGetTermios(s.inFd, unix.TCGETS)
	if err != nil {
		unix.IoctlSetTermios(s.inFd, unix.TCSETSF, saved)
		return nil, fmt.Errorf("verify cbreak: %w", err)
	}
	if check.Lflag&(unix.ECHO|unix.ICANON) != 0 ||
		check.Cc[unix.VMIN] != 1 || check.Cc[unix.VTIME] != 0 {
		unix.IoctlSetTermios(s.inFd, unix.TCSETSF, saved)
		return nil, errors.New("cbreak not fully applied")
	}

	s.idle = opts.IdleWindow
	if s.idle <= 0 {
		s.idle = DefaultIdleWindow
		if RemoteTransport() {
			s.idle = RemoteIdleWindow
		}
	}

	s.RefreshSize()
	return s, nil
}

// Restore puts the terminal back into its saved mode. Safe to call more
// than once and from a signal handler; every exit path is expected to
// reach it.
func (s *Session) Restore() {
	if s.saved == nil || !s.restored.CompareAndSwap(false, true) {
		return
	}
	unix.IoctlSetTermios(s.inFd, unix.TCSETSF, s.saved)
}

// Size returns the cached window geometry in cells.
func (s *Session) Size() (cols, rows int) {
	return s.cols, s.rows
}

// RefreshSize re-reads the window size. Geometry moves only on explicit
// calls so a resize mid-probe cannot flip mouse classification between
// transactions. An ioctl failure keeps the previous values.
func (s *Session) RefreshSize() (cols, rows int) {
	ws, err := unix.IoctlGetWinsize(s.inFd, unix.TIOCGWINSZ)
	if err == nil {
		s.cols = int(ws.Col)
		s.rows = int(ws.Row)
	}
	return s.cols, s.rows
}

// Write sends bytes straight to the terminal, satisfying io.Writer so
// report output can target the session directly.
func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}
