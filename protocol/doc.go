// Package protocol implements the reply grammars spoken by terminal
// emulators in response to capability probes, one small dedicated parser
// per response shape:
//
//   - DECRPM mode reports
//   - mouse events in the legacy, SGR, and urxvt encodings
//   - OSC 4 palette query replies
//   - OSC 52 selection replies, including a degraded vendor form
//   - focus markers and bracketed paste markers
//
// Every parser is total: it either returns a structured result or reports
// "no match", never a partial decode. Ambiguities that cannot be resolved
// from the wire bytes alone (legacy versus UTF-8 mouse coordinates, cell
// versus pixel SGR addressing) are surfaced on the result instead of being
// guessed away.
//
// The package also renders the request side of each probe so that the byte
// sequences going out and the grammars coming back live next to each other.
package protocol
