// Package layout translates key codes into application-visible characters
// or pass-through key identifiers, under a snapshot of the current modifier
// state. Layouts are pure functions: no internal state, no I/O, safe to call
// concurrently.
package layout

import (
	"sort"

	"github.com/Alia5/KEYDEC/keycode"
)

// Modifiers is a read-only snapshot of the modifier state at the moment a
// key is translated. It is owned by the caller (typically rebuilt from a
// tracker.Tracker after every key event) and passed by value, so translation
// stays a pure function of (key code, snapshot).
type Modifiers struct {
	// Shift is true while either physical shift key is held.
	Shift bool
	// CapsEffect is the caps-lock/shift interaction used for letter case.
	// The formula belongs to whoever builds the snapshot; layouts only
	// consume the resulting boolean.
	CapsEffect bool
	// Ctrl is true while either control key is held.
	Ctrl bool
	// NumLock selects digit output on the numeric keypad.
	NumLock bool
	// AltGr is true while the right Alt key is held; selects the third
	// glyph tier on layouts that have one.
	AltGr bool
}

// ControlHandling selects whether letter keys produce C0 control codes
// while control is asserted.
type ControlHandling uint8

const (
	// ControlIgnored translates letters by case only.
	ControlIgnored ControlHandling = iota
	// ControlMapsLetters makes Ctrl+letter produce the matching C0 control
	// code (Ctrl+A = 0x01), overriding case selection.
	ControlMapsLetters
)

// Layout maps a key code plus a modifier snapshot to a decoded key.
//
// MapKeycode is total: every key code resolves to some DecodedKey, falling
// back to keycode.Raw for keys the layout does not translate. Decoders may
// fail on unknown bytes; layouts never fail on known keys.
type Layout interface {
	Name() string
	MapKeycode(code keycode.KeyCode, m Modifiers, ctrl ControlHandling) keycode.DecodedKey
}

var builtin = map[string]Layout{
	"us": US104{},
	"uk": UK105{},
}

// ByName looks up a built-in layout by its registry name ("us", "uk").
func ByName(name string) (Layout, bool) {
	l, ok := builtin[name]
	return l, ok
}

// Names returns the registry names of all built-in layouts, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// twoTier picks the shifted glyph when shift is asserted.
func twoTier(m Modifiers, normal, shifted rune) keycode.DecodedKey {
	if m.Shift {
		return keycode.Rune(shifted)
	}
	return keycode.Rune(normal)
}

// letter applies the letter contract: C0 control code when control mapping
// is on and control is held, else case by the caps effect.
func letter(m Modifiers, ctrl ControlHandling, lower rune) keycode.DecodedKey {
	if ctrl == ControlMapsLetters && m.Ctrl {
		return keycode.Rune(lower - 'a' + 1)
	}
	if m.CapsEffect {
		return keycode.Rune(lower - 'a' + 'A')
	}
	return keycode.Rune(lower)
}
