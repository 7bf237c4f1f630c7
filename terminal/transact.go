//go:build unix

package terminal

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// MaxResponse caps a single captured response. Anything bigger than this
// is not a reply to a probe, it is a stream.
const MaxResponse = 999

// IdleWindow returns the silence that currently ends a response frame.
func (s *Session) IdleWindow() time.Duration {
	return s.idle
}

// SetIdleWindow overrides the response framing window.
func (s *Session) SetIdleWindow(d time.Duration) {
	if d > 0 {
		s.idle = d
	}
}

// Transact writes a request and captures everything the terminal sends
// back until the line stays silent for one idle window. There is no
// terminator to wait for: replies to different queries end differently or
// not at all, so silence is the only usable frame boundary. An empty
// request skips the write and just listens. With waitFirst the initial
// poll blocks without timeout, for prompts a human has to answer. An
// empty capture is a valid outcome meaning the terminal stayed quiet.
func (s *Session) Transact(req []byte, waitFirst bool) ([]byte, error) {
	return s.TransactTimeout(req, waitFirst, s.idle)
}

// TransactTimeout is Transact with a one-off framing window, for probes
// known to answer slower than the session default. window <= 0 falls back
// to the session's.
func (s *Session) TransactTimeout(req []byte, waitFirst bool, window time.Duration) ([]byte, error) {
	if len(req) > 0 {
		n, err := s.out.Write(req)
		if err != nil {
			return nil, fmt.Errorf("request write: %w", err)
		}
		if n < len(req) {
			return nil, fmt.Errorf("request write: %w", io.ErrShortWrite)
		}
	}

	if waitFirst {
		if err := s.waitReadable(); err != nil {
			return nil, err
		}
	}

	if window <= 0 {
		window = s.idle
	}
	idle := int(window / time.Millisecond)
	if idle < 1 {
		idle = 1
	}

	buf := make([]byte, 0, 256)
	var chunk [256]byte
	for {
		fds := []unix.PollFd{
			{Fd: int32(s.inFd), Events: unix.POLLIN},
		}
		n, err := unix.Poll(fds, idle)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, fmt.Errorf("poll: %w", err)
		}
		if n == 0 {
			// Line went quiet, frame complete
			return buf, nil
		}

		if len(buf) >= MaxResponse {
			return nil, fmt.Errorf("after %d bytes: %w", MaxResponse, ErrOverflow)
		}
		space := MaxResponse - len(buf)
		if space > len(chunk) {
			space = len(chunk)
		}

		rn, err := unix.Read(s.inFd, chunk[:space])
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, fmt.Errorf("response read: %w", err)
		}
		if rn == 0 {
			return nil, fmt.Errorf("response read: %w", io.EOF)
		}
		buf = append(buf, chunk[:rn]...)
	}
}

// waitReadable blocks until input arrives, retrying interrupted polls.
func (s *Session) waitReadable() error {
	for {
		fds := []unix.PollFd{
			{Fd: int32(s.inFd), Events: unix.POLLIN},
		}
		n, err := unix.Poll(fds, -1)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return fmt.Errorf("poll: %w", err)
		}
		if n > 0 {
			return nil
		}
	}
}
