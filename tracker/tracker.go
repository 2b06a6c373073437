// Package tracker maintains modifier-key state across key events and
// produces the layout.Modifiers snapshots translation consumes. It is the
// collaborator that sits between a scancode decoder and a layout: feed it
// every decoded event, then snapshot before translating.
package tracker

import (
	"github.com/Alia5/KEYDEC/keycode"
	"github.com/Alia5/KEYDEC/layout"
)

// CapsRule computes the caps effect used for letter case from the caps-lock
// toggle and the held shift state.
type CapsRule func(caps, shift bool) bool

// XORCapsRule is the conventional behavior: shift inverts caps-lock.
func XORCapsRule(caps, shift bool) bool {
	return caps != shift
}

// Tracker accumulates held and toggled modifier state. The zero value has
// all modifiers released, caps-lock and scroll-lock off, and num-lock off;
// use New for the common num-lock-on power-up state.
//
// Not safe for concurrent use; like the decoders, it belongs to a single
// input stream.
type Tracker struct {
	// Caps overrides the default XOR caps/shift interaction when set.
	Caps CapsRule

	lshift, rshift bool
	lctrl, rctrl   bool
	lalt, altGr    bool
	capsLock       bool
	numLock        bool
	scrollLock     bool
}

// New returns a tracker with num-lock engaged, matching the usual keyboard
// power-on default.
func New() *Tracker {
	return &Tracker{numLock: true}
}

// Observe updates held/toggle state from one key event. Held modifiers
// follow both transitions; lock keys toggle on Pressed only.
func (t *Tracker) Observe(ev keycode.KeyEvent) {
	down := ev.State == keycode.Pressed
	switch ev.Code {
	case keycode.KeyLeftShift:
		t.lshift = down
	case keycode.KeyRightShift:
		t.rshift = down
	case keycode.KeyLeftCtrl:
		t.lctrl = down
	case keycode.KeyRightCtrl:
		t.rctrl = down
	case keycode.KeyLeftAlt:
		t.lalt = down
	case keycode.KeyRightAlt:
		t.altGr = down
	case keycode.KeyCapsLock:
		if down {
			t.capsLock = !t.capsLock
		}
	case keycode.KeyNumLock:
		if down {
			t.numLock = !t.numLock
		}
	case keycode.KeyScrollLock:
		if down {
			t.scrollLock = !t.scrollLock
		}
	}
}

// Snapshot derives the modifier view for the next translation call.
func (t *Tracker) Snapshot() layout.Modifiers {
	shift := t.lshift || t.rshift
	rule := t.Caps
	if rule == nil {
		rule = XORCapsRule
	}
	return layout.Modifiers{
		Shift:      shift,
		CapsEffect: rule(t.capsLock, shift),
		Ctrl:       t.lctrl || t.rctrl,
		NumLock:    t.numLock,
		AltGr:      t.altGr,
	}
}

// CapsLock reports the caps-lock toggle, for LED mirroring.
func (t *Tracker) CapsLock() bool { return t.capsLock }

// NumLock reports the num-lock toggle, for LED mirroring.
func (t *Tracker) NumLock() bool { return t.numLock }

// ScrollLock reports the scroll-lock toggle, for LED mirroring.
func (t *Tracker) ScrollLock() bool { return t.scrollLock }
