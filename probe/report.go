package probe

import (
	"github.com/lixenwraith/termprobe/protocol"
	"github.com/lixenwraith/termprobe/terminal"
)

// identification echoes what the environment says this terminal is.
func (r *Runner) identification() error {
	r.section("Identification")
	r.printf("TERM=%s\n", r.term)
	r.printf("Version env var candidates: ")
	for _, kv := range terminal.VersionCandidates(r.env, r.term) {
		r.printf("%s ", kv)
	}
	r.printf("\n")
	return nil
}

// modeReporting finds out whether DECRQM works at all. Later sections only
// print mode statuses when it does, otherwise every mode would read as
// unsupported on terminals that simply never answer.
func (r *Runner) modeReporting() error {
	r.printf("-- DECRQM: ")
	resp, err := r.transact(protocol.ModeQuery(protocol.ModeMouseClick), false)
	if err != nil {
		return err
	}
	_, ok := protocol.ParseModeReport(resp)
	r.decrqm = ok
	r.printf("%d\n", bit(ok))
	return nil
}

// overlayHints reports what w3mimgdisplay would have to work with.
func (r *Runner) overlayHints() error {
	r.section("w3mimgdisplay")
	if id, ok := terminal.WindowID(); ok {
		r.printf("WINDOWID=%s\n", id)
	}
	return nil
}

// sixel asks for device attributes with a tiny sixel image in the same
// burst. Capable terminals draw the image and advertise code 4.
func (r *Runner) sixel() error {
	r.section("Sixel graphics")
	resp, err := r.transact(protocol.SixelProbe(), false)
	if err != nil {
		return err
	}
	attrs, ok := protocol.ParsePrimaryDA(resp)
	switch {
	case !ok:
		r.printf("No device attributes reply.\n")
	case attrs.Has(protocol.SixelCode):
		r.printf("Device attributes advertise sixel.\n")
	default:
		r.printf("Device attributes don't advertise sixel.\n")
	}
	return nil
}
