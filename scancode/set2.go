package scancode

import "github.com/Alia5/KEYDEC/keycode"

// Set2Decoder decodes scancode Set 2 (IBM PC AT), the set keyboards emit
// natively on the wire. Key releases are prefixed with 0xF0; extended keys
// with 0xE0, giving four sequence states instead of Set 1's two.
//
// The zero value is ready to use.
type Set2Decoder struct {
	state State
}

// State returns the decoder's current sequence state.
func (d *Set2Decoder) State() State {
	return d.state
}

// Reset returns the decoder to Start, discarding any pending prefix.
func (d *Set2Decoder) Reset() {
	d.state = Start
}

// Advance consumes one raw byte. See Decoder for the contract.
func (d *Set2Decoder) Advance(b byte) (keycode.KeyEvent, bool, error) {
	switch d.state {
	case Extended:
		if b == releasePrefix {
			d.state = ExtendedRelease
			return keycode.KeyEvent{}, false, nil
		}
		d.state = Start
		return set2Event(set2ExtendedMap, b, keycode.Pressed, true)
	case Release:
		d.state = Start
		return set2Event(set2Map, b, keycode.Released, false)
	case ExtendedRelease:
		d.state = Start
		return set2Event(set2ExtendedMap, b, keycode.Released, true)
	default:
		switch b {
		case extendedPrefix:
			d.state = Extended
			return keycode.KeyEvent{}, false, nil
		case releasePrefix:
			d.state = Release
			return keycode.KeyEvent{}, false, nil
		}
		return set2Event(set2Map, b, keycode.Pressed, false)
	}
}

func set2Event(table map[byte]keycode.KeyCode, b byte, state keycode.KeyState, extended bool) (keycode.KeyEvent, bool, error) {
	code, ok := table[b]
	if !ok {
		return keycode.KeyEvent{}, false, keycode.UnknownScancodeError{Byte: b, Extended: extended, Set: 2}
	}
	return keycode.KeyEvent{Code: code, State: state}, true, nil
}

// Set 2 make codes. Break codes are the same values after a 0xF0 prefix.
var set2Map = map[byte]keycode.KeyCode{
	0x01: keycode.KeyF9,
	0x03: keycode.KeyF5,
	0x04: keycode.KeyF3,
	0x05: keycode.KeyF1,
	0x06: keycode.KeyF2,
	0x07: keycode.KeyF12,
	0x09: keycode.KeyF10,
	0x0A: keycode.KeyF8,
	0x0B: keycode.KeyF6,
	0x0C: keycode.KeyF4,
	0x0D: keycode.KeyTab,
	0x0E: keycode.KeyGrave,
	0x11: keycode.KeyLeftAlt,
	0x12: keycode.KeyLeftShift,
	0x14: keycode.KeyLeftCtrl,
	0x15: keycode.KeyQ,
	0x16: keycode.Key1,
	0x1A: keycode.KeyZ,
	0x1B: keycode.KeyS,
	0x1C: keycode.KeyA,
	0x1D: keycode.KeyW,
	0x1E: keycode.Key2,
	0x21: keycode.KeyC,
	0x22: keycode.KeyX,
	0x23: keycode.KeyD,
	0x24: keycode.KeyE,
	0x25: keycode.Key4,
	0x26: keycode.Key3,
	0x29: keycode.KeySpace,
	0x2A: keycode.KeyV,
	0x2B: keycode.KeyF,
	0x2C: keycode.KeyT,
	0x2D: keycode.KeyR,
	0x2E: keycode.Key5,
	0x31: keycode.KeyN,
	0x32: keycode.KeyB,
	0x33: keycode.KeyH,
	0x34: keycode.KeyG,
	0x35: keycode.KeyY,
	0x36: keycode.Key6,
	0x3A: keycode.KeyM,
	0x3B: keycode.KeyJ,
	0x3C: keycode.KeyU,
	0x3D: keycode.Key7,
	0x3E: keycode.Key8,
	0x41: keycode.KeyComma,
	0x42: keycode.KeyK,
	0x43: keycode.KeyI,
	0x44: keycode.KeyO,
	0x45: keycode.Key0,
	0x46: keycode.Key9,
	0x49: keycode.KeyPeriod,
	0x4A: keycode.KeySlash,
	0x4B: keycode.KeyL,
	0x4C: keycode.KeySemicolon,
	0x4D: keycode.KeyP,
	0x4E: keycode.KeyMinus,
	0x52: keycode.KeyApostrophe,
	0x54: keycode.KeyLeftBrace,
	0x55: keycode.KeyEqual,
	0x58: keycode.KeyCapsLock,
	0x59: keycode.KeyRightShift,
	0x5A: keycode.KeyEnter,
	0x5B: keycode.KeyRightBrace,
	0x5D: keycode.KeyBackslash,
	0x61: keycode.KeyNonUSBackslash,
	0x66: keycode.KeyBackspace,
	0x69: keycode.KeyKp1,
	0x6B: keycode.KeyKp4,
	0x6C: keycode.KeyKp7,
	0x70: keycode.KeyKp0,
	0x71: keycode.KeyKpDot,
	0x72: keycode.KeyKp2,
	0x73: keycode.KeyKp5,
	0x74: keycode.KeyKp6,
	0x75: keycode.KeyKp8,
	0x76: keycode.KeyEscape,
	0x77: keycode.KeyNumLock,
	0x78: keycode.KeyF11,
	0x79: keycode.KeyKpPlus,
	0x7A: keycode.KeyKp3,
	0x7B: keycode.KeyKpMinus,
	0x7C: keycode.KeyKpAsterisk,
	0x7D: keycode.KeyKp9,
	0x7E: keycode.KeyScrollLock,
	0x83: keycode.KeyF7,
	0x84: keycode.KeySysRq,
}

// Set 2 extended (0xE0-prefixed) make codes.
var set2ExtendedMap = map[byte]keycode.KeyCode{
	0x10: keycode.KeyWWWSearch,
	0x11: keycode.KeyRightAlt,
	0x14: keycode.KeyRightCtrl,
	0x15: keycode.KeyMediaPrevious,
	0x18: keycode.KeyWWWFavorites,
	0x1F: keycode.KeyLeftGUI,
	0x20: keycode.KeyWWWRefresh,
	0x21: keycode.KeyVolumeDown,
	0x23: keycode.KeyMute,
	0x27: keycode.KeyRightGUI,
	0x28: keycode.KeyWWWStop,
	0x2B: keycode.KeyCalculator,
	0x2F: keycode.KeyApplication,
	0x30: keycode.KeyWWWForward,
	0x32: keycode.KeyVolumeUp,
	0x34: keycode.KeyMediaPlayPause,
	0x37: keycode.KeyPower,
	0x38: keycode.KeyWWWBack,
	0x3A: keycode.KeyWWWHome,
	0x3B: keycode.KeyMediaStop,
	0x3F: keycode.KeySleep,
	0x40: keycode.KeyMyComputer,
	0x48: keycode.KeyEmail,
	0x4A: keycode.KeyKpSlash,
	0x4D: keycode.KeyMediaNext,
	0x50: keycode.KeyMediaSelect,
	0x5A: keycode.KeyKpEnter,
	0x5E: keycode.KeyWake,
	0x69: keycode.KeyEnd,
	0x6B: keycode.KeyLeft,
	0x6C: keycode.KeyHome,
	0x70: keycode.KeyInsert,
	0x71: keycode.KeyDelete,
	0x72: keycode.KeyDown,
	0x74: keycode.KeyRight,
	0x75: keycode.KeyUp,
	0x7A: keycode.KeyPageDown,
	0x7C: keycode.KeyPrintScreen,
	0x7D: keycode.KeyPageUp,
}
