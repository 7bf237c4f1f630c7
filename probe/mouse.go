package probe

import (
	"fmt"

	"github.com/lixenwraith/termprobe/protocol"
)

// Discriminating the legacy encodings needs the full single-byte
// coordinate range on screen: byte 255 encodes column 223.
const minMouseWidth = 223

// mouseModes are probed in numeric order. Each one answers in whichever
// encoding the terminal actually honours, which is the point.
var mouseModes = []int{
	protocol.ModeMouseUTF8,
	protocol.ModeMouseSGR,
	protocol.ModeMouseUrxvt,
	protocol.ModeMouseSGRPixel,
}

// disarmAll turns off every tracking extension and leaves plain clicks on,
// the state each probe starts from.
var disarmAll = []byte("\x1b[?1002l\x1b[?1003l\x1b[?1005l\x1b[?1006l\x1b[?1015l\x1b[?1016l\x1b[?1000h")

// probePhase tracks one mouse probe through its transaction sequence, for
// the trace log.
type probePhase uint8

const (
	phaseIdle probePhase = iota
	phaseArmed
	phaseCaptured
	phaseDraining
	phaseDone
)

func (p probePhase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseArmed:
		return "armed"
	case phaseCaptured:
		return "captured"
	case phaseDraining:
		return "draining"
	case phaseDone:
		return "done"
	}
	return "invalid"
}

func (r *Runner) mouse() error {
	r.section("Mouse protocol")
	if r.caps != nil && r.caps.HasMouse() {
		r.printf("Terminfo: kmous present.\n")
	}

	// The tracking granularity modes only get their status read; arming
	// them would flood the probes below with motion events.
	if r.decrqm {
		for _, mode := range []int{protocol.ModeMouseDrag, protocol.ModeMouseMotion} {
			status, err := r.modeStatus(mode)
			if err != nil {
				return err
			}
			r.printf("DECRQM(%d): %s\n", mode, status)
		}
	}

	for {
		cols, _ := r.tty.RefreshSize()
		// No geometry at all also proceeds, discrimination just degrades.
		if cols >= minMouseWidth || cols == 0 {
			break
		}
		if _, err := r.transact([]byte("Your terminal needs to be at least 223 columns wide.\nPress a key once you've made it wide enough.\n"), true); err != nil {
			return err
		}
	}
	r.printf("Click the rightmost column, if it's possible.\n")

	for _, mode := range mouseModes {
		if r.decrqm {
			status, err := r.modeStatus(mode)
			if err != nil {
				return err
			}
			r.printf("DECRQM(%d): %s\n", mode, status)
		}
		if err := r.probeMouseMode(mode); err != nil {
			return err
		}
	}

	_, err := r.transact(protocol.SetPrivateMode(protocol.ModeMouseClick, false), false)
	return err
}

// probeMouseMode arms one extension on top of plain clicks, waits for the
// operator's click and classifies whatever encoding came back.
func (r *Runner) probeMouseMode(mode int) error {
	phase := phaseIdle
	cols, rows := r.tty.RefreshSize()
	r.log.Debug("mouse probe", "mode", mode, "phase", phase.String(), "cols", cols, "rows", rows)

	if _, err := r.transact(disarmAll, false); err != nil {
		return err
	}
	phase = phaseArmed
	r.log.Debug("mouse probe", "mode", mode, "phase", phase.String())

	resp, err := r.ask(protocol.SetPrivateMode(mode, true), fmt.Sprintf("%d: ", mode))
	if err != nil {
		return err
	}
	phase = phaseCaptured
	r.log.Debug("mouse probe", "mode", mode, "phase", phase.String(), "bytes", len(resp))

	if ev, ok := protocol.ParseMouse(resp, cols, rows); ok {
		r.printMouseEvent(ev)
	} else {
		r.printf("Failed to parse.\n")
	}

	// Release events may still be in flight.
	phase = phaseDraining
	r.log.Debug("mouse probe", "mode", mode, "phase", phase.String())
	if _, err := r.transact([]byte("Waiting for button up events, press a key if hanging.\n"), true); err != nil {
		return err
	}
	phase = phaseDone
	r.log.Debug("mouse probe", "mode", mode, "phase", phase.String())
	return nil
}

// printMouseEvent renders a classified click under the mode numbers that
// could have produced its encoding.
func (r *Runner) printMouseEvent(ev protocol.MouseEvent) {
	switch ev.Protocol {
	case protocol.MouseUTF8:
		r.printf("%s\n", ev.Protocol.ModeNumbers())
	case protocol.MouseSGR, protocol.MouseSGRPixel:
		release := byte('m')
		if ev.Pressed {
			release = 'M'
		}
		r.printf("%s (%d%c @ %d,%d)\n", ev.Protocol.ModeNumbers(), ev.Button, release, ev.Col, ev.Row)
	default:
		r.printf("%s (%d @ %d,%d)\n", ev.Protocol.ModeNumbers(), ev.Button, ev.Col, ev.Row)
	}
}
