package scancode

import "github.com/Alia5/KEYDEC/keycode"

// Set1Decoder decodes scancode Set 1 (IBM PC XT), the set most keyboard
// controllers present after their built-in Set 2 translation. Key releases
// carry the break bit (0x80); extended keys are prefixed with 0xE0.
//
// The zero value is ready to use. Each instance owns its own state, so any
// number of independent keyboards can be decoded side by side.
type Set1Decoder struct {
	state State
}

// State returns the decoder's current sequence state.
func (d *Set1Decoder) State() State {
	return d.state
}

// Reset returns the decoder to Start, discarding any pending prefix.
func (d *Set1Decoder) Reset() {
	d.state = Start
}

// Advance consumes one raw byte. See Decoder for the contract.
func (d *Set1Decoder) Advance(b byte) (keycode.KeyEvent, bool, error) {
	switch d.state {
	case Extended:
		// Back to Start before the lookup so an unknown byte can never
		// leave the decoder stuck mid-sequence.
		d.state = Start
		if b >= set1BreakBit {
			return set1Event(set1ExtendedMap, b&^byte(set1BreakBit), keycode.Released, true)
		}
		return set1Event(set1ExtendedMap, b, keycode.Pressed, true)
	default:
		if b == extendedPrefix {
			d.state = Extended
			return keycode.KeyEvent{}, false, nil
		}
		if b >= set1BreakBit {
			return set1Event(set1Map, b&^byte(set1BreakBit), keycode.Released, false)
		}
		return set1Event(set1Map, b, keycode.Pressed, false)
	}
}

func set1Event(table map[byte]keycode.KeyCode, b byte, state keycode.KeyState, extended bool) (keycode.KeyEvent, bool, error) {
	code, err := set1Lookup(table, b, extended)
	if err != nil {
		return keycode.KeyEvent{}, false, err
	}
	return keycode.KeyEvent{Code: code, State: state}, true, nil
}

// set1Lookup resolves a payload byte against a Set 1 table. The base table
// additionally accepts the legacy duplicate range 0x81-0xD8, folding it back
// onto 0x01-0x58 before giving up.
func set1Lookup(table map[byte]keycode.KeyCode, b byte, extended bool) (keycode.KeyCode, error) {
	if code, ok := table[b]; ok {
		return code, nil
	}
	if !extended && b >= 0x81 && b <= 0xD8 {
		if code, ok := table[b-0x80]; ok {
			return code, nil
		}
	}
	return 0, keycode.UnknownScancodeError{Byte: b, Extended: extended, Set: 1}
}

// Set 1 make codes, 0x01-0x58. Break codes are the same values with the
// 0x80 bit set and are handled before lookup.
var set1Map = map[byte]keycode.KeyCode{
	0x01: keycode.KeyEscape,
	0x02: keycode.Key1,
	0x03: keycode.Key2,
	0x04: keycode.Key3,
	0x05: keycode.Key4,
	0x06: keycode.Key5,
	0x07: keycode.Key6,
	0x08: keycode.Key7,
	0x09: keycode.Key8,
	0x0A: keycode.Key9,
	0x0B: keycode.Key0,
	0x0C: keycode.KeyMinus,
	0x0D: keycode.KeyEqual,
	0x0E: keycode.KeyBackspace,
	0x0F: keycode.KeyTab,
	0x10: keycode.KeyQ,
	0x11: keycode.KeyW,
	0x12: keycode.KeyE,
	0x13: keycode.KeyR,
	0x14: keycode.KeyT,
	0x15: keycode.KeyY,
	0x16: keycode.KeyU,
	0x17: keycode.KeyI,
	0x18: keycode.KeyO,
	0x19: keycode.KeyP,
	0x1A: keycode.KeyLeftBrace,
	0x1B: keycode.KeyRightBrace,
	0x1C: keycode.KeyEnter,
	0x1D: keycode.KeyLeftCtrl,
	0x1E: keycode.KeyA,
	0x1F: keycode.KeyS,
	0x20: keycode.KeyD,
	0x21: keycode.KeyF,
	0x22: keycode.KeyG,
	0x23: keycode.KeyH,
	0x24: keycode.KeyJ,
	0x25: keycode.KeyK,
	0x26: keycode.KeyL,
	0x27: keycode.KeySemicolon,
	0x28: keycode.KeyApostrophe,
	0x29: keycode.KeyGrave,
	0x2A: keycode.KeyLeftShift,
	0x2B: keycode.KeyBackslash,
	0x2C: keycode.KeyZ,
	0x2D: keycode.KeyX,
	0x2E: keycode.KeyC,
	0x2F: keycode.KeyV,
	0x30: keycode.KeyB,
	0x31: keycode.KeyN,
	0x32: keycode.KeyM,
	0x33: keycode.KeyComma,
	0x34: keycode.KeyPeriod,
	0x35: keycode.KeySlash,
	0x36: keycode.KeyRightShift,
	0x37: keycode.KeyKpAsterisk,
	0x38: keycode.KeyLeftAlt,
	0x39: keycode.KeySpace,
	0x3A: keycode.KeyCapsLock,
	0x3B: keycode.KeyF1,
	0x3C: keycode.KeyF2,
	0x3D: keycode.KeyF3,
	0x3E: keycode.KeyF4,
	0x3F: keycode.KeyF5,
	0x40: keycode.KeyF6,
	0x41: keycode.KeyF7,
	0x42: keycode.KeyF8,
	0x43: keycode.KeyF9,
	0x44: keycode.KeyF10,
	0x45: keycode.KeyNumLock,
	0x46: keycode.KeyScrollLock,
	0x47: keycode.KeyKp7,
	0x48: keycode.KeyKp8,
	0x49: keycode.KeyKp9,
	0x4A: keycode.KeyKpMinus,
	0x4B: keycode.KeyKp4,
	0x4C: keycode.KeyKp5,
	0x4D: keycode.KeyKp6,
	0x4E: keycode.KeyKpPlus,
	0x4F: keycode.KeyKp1,
	0x50: keycode.KeyKp2,
	0x51: keycode.KeyKp3,
	0x52: keycode.KeyKp0,
	0x53: keycode.KeyKpDot,
	0x54: keycode.KeySysRq,
	0x56: keycode.KeyNonUSBackslash,
	0x57: keycode.KeyF11,
	0x58: keycode.KeyF12,
}

// Set 1 extended (0xE0-prefixed) make codes.
var set1ExtendedMap = map[byte]keycode.KeyCode{
	0x10: keycode.KeyMediaPrevious,
	0x19: keycode.KeyMediaNext,
	0x1C: keycode.KeyKpEnter,
	0x1D: keycode.KeyRightCtrl,
	0x20: keycode.KeyMute,
	0x21: keycode.KeyCalculator,
	0x22: keycode.KeyMediaPlayPause,
	0x24: keycode.KeyMediaStop,
	0x2E: keycode.KeyVolumeDown,
	0x30: keycode.KeyVolumeUp,
	0x32: keycode.KeyWWWHome,
	0x35: keycode.KeyKpSlash,
	0x37: keycode.KeyPrintScreen,
	0x38: keycode.KeyRightAlt,
	0x47: keycode.KeyHome,
	0x48: keycode.KeyUp,
	0x49: keycode.KeyPageUp,
	0x4B: keycode.KeyLeft,
	0x4D: keycode.KeyRight,
	0x4F: keycode.KeyEnd,
	0x50: keycode.KeyDown,
	0x51: keycode.KeyPageDown,
	0x52: keycode.KeyInsert,
	0x53: keycode.KeyDelete,
	0x5B: keycode.KeyLeftGUI,
	0x5C: keycode.KeyRightGUI,
	0x5D: keycode.KeyApplication,
	0x5E: keycode.KeyPower,
	0x5F: keycode.KeySleep,
	0x63: keycode.KeyWake,
	0x65: keycode.KeyWWWSearch,
	0x66: keycode.KeyWWWFavorites,
	0x67: keycode.KeyWWWRefresh,
	0x68: keycode.KeyWWWStop,
	0x69: keycode.KeyWWWForward,
	0x6A: keycode.KeyWWWBack,
	0x6B: keycode.KeyMyComputer,
	0x6C: keycode.KeyEmail,
	0x6D: keycode.KeyMediaSelect,
}
