// Package probe runs an interactive capability survey against a live
// terminal.
//
// A Runner walks a fixed sequence of probe sections, writing requests and
// prompts through a transactional session and reporting what came back.
// Probes that need a human (clicking, pasting, switching focus) say so on
// screen and wait; everything else settles in one silence-framed exchange.
//
// Features:
//   - Identification from the environment and the terminfo database
//   - DECRQM support detection, gating the later mode status reports
//   - Colour, blink and italic demonstrations through terminfo and raw SGR
//   - Mouse protocol discrimination across the four extended encodings
//   - OSC 52 selection, bracketed paste and focus reporting checks
package probe
