// Package terminal owns the controlling tty for a probe run.
//
// Features:
//   - cbreak acquisition with read-back verification and rollback
//   - request/response transactions framed by line silence
//   - cached window geometry, refreshed only on request
//   - environment sniffing for transport latency and color claims
//   - emergency reset for crash paths
//
// The transaction model is the heart of it: terminals answer probe queries
// with no uniform terminator, so the only workable frame boundary is
// silence on the line. Transact writes a request and collects bytes until
// one idle window passes without any.
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences and reading the tty through poll(2). Target environments:
// Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
