// Package pipeline composes a scancode decoder, a modifier tracker, and a
// layout into the full byte-stream-to-text path a caller would otherwise
// wire by hand.
package pipeline

import (
	"github.com/Alia5/KEYDEC/keycode"
	"github.com/Alia5/KEYDEC/layout"
	"github.com/Alia5/KEYDEC/scancode"
	"github.com/Alia5/KEYDEC/tracker"
)

// Pipeline owns one decoder, one tracker, and one layout for a single
// ordered byte stream. Like its parts it is single-owner: one goroutine (or
// interrupt context) per instance.
type Pipeline struct {
	dec   scancode.Decoder
	track *tracker.Tracker
	lay   layout.Layout
	ctrl  layout.ControlHandling
}

// New builds a pipeline. A nil tracker gets the power-on default
// (num-lock engaged, XOR caps rule).
func New(dec scancode.Decoder, lay layout.Layout, track *tracker.Tracker, ctrl layout.ControlHandling) *Pipeline {
	if track == nil {
		track = tracker.New()
	}
	return &Pipeline{dec: dec, track: track, lay: lay, ctrl: ctrl}
}

// AddByte feeds one raw byte to the decoder. The returned event, if any,
// has already updated the modifier tracker. An unknown-scancode error is
// per-byte recoverable; keep feeding bytes.
func (p *Pipeline) AddByte(b byte) (keycode.KeyEvent, bool, error) {
	ev, ok, err := p.dec.Advance(b)
	if err != nil || !ok {
		return keycode.KeyEvent{}, false, err
	}
	p.track.Observe(ev)
	return ev, true, nil
}

// ProcessEvent translates a key event under the current modifier snapshot.
// Only presses produce output; releases return ok=false.
func (p *Pipeline) ProcessEvent(ev keycode.KeyEvent) (keycode.DecodedKey, bool) {
	if ev.State != keycode.Pressed {
		return keycode.DecodedKey{}, false
	}
	return p.lay.MapKeycode(ev.Code, p.track.Snapshot(), p.ctrl), true
}

// AddBytes feeds a whole byte sequence and collects every decoded key.
// Unknown scancodes are skipped and reported together with the results.
func (p *Pipeline) AddBytes(data []byte) ([]keycode.DecodedKey, []error) {
	var keys []keycode.DecodedKey
	var errs []error
	for _, b := range data {
		ev, ok, err := p.AddByte(b)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !ok {
			continue
		}
		if key, ok := p.ProcessEvent(ev); ok {
			keys = append(keys, key)
		}
	}
	return keys, errs
}

// Tracker exposes the pipeline's modifier tracker, e.g. for LED mirroring.
func (p *Pipeline) Tracker() *tracker.Tracker {
	return p.track
}
