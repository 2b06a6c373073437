package layout

import (
	"fmt"

	"github.com/Alia5/KEYDEC/keycode"
)

// CharToKey maps ASCII characters to the US-layout key that produces them.
// For shifted characters (uppercase, symbols), use with NeedsShift.
var CharToKey = map[rune]keycode.KeyCode{
	// Lowercase letters
	'a': keycode.KeyA, 'b': keycode.KeyB, 'c': keycode.KeyC, 'd': keycode.KeyD,
	'e': keycode.KeyE, 'f': keycode.KeyF, 'g': keycode.KeyG, 'h': keycode.KeyH,
	'i': keycode.KeyI, 'j': keycode.KeyJ, 'k': keycode.KeyK, 'l': keycode.KeyL,
	'm': keycode.KeyM, 'n': keycode.KeyN, 'o': keycode.KeyO, 'p': keycode.KeyP,
	'q': keycode.KeyQ, 'r': keycode.KeyR, 's': keycode.KeyS, 't': keycode.KeyT,
	'u': keycode.KeyU, 'v': keycode.KeyV, 'w': keycode.KeyW, 'x': keycode.KeyX,
	'y': keycode.KeyY, 'z': keycode.KeyZ,

	// Uppercase letters (same keys, need shift)
	'A': keycode.KeyA, 'B': keycode.KeyB, 'C': keycode.KeyC, 'D': keycode.KeyD,
	'E': keycode.KeyE, 'F': keycode.KeyF, 'G': keycode.KeyG, 'H': keycode.KeyH,
	'I': keycode.KeyI, 'J': keycode.KeyJ, 'K': keycode.KeyK, 'L': keycode.KeyL,
	'M': keycode.KeyM, 'N': keycode.KeyN, 'O': keycode.KeyO, 'P': keycode.KeyP,
	'Q': keycode.KeyQ, 'R': keycode.KeyR, 'S': keycode.KeyS, 'T': keycode.KeyT,
	'U': keycode.KeyU, 'V': keycode.KeyV, 'W': keycode.KeyW, 'X': keycode.KeyX,
	'Y': keycode.KeyY, 'Z': keycode.KeyZ,

	// Numbers (top row)
	'1': keycode.Key1, '2': keycode.Key2, '3': keycode.Key3, '4': keycode.Key4,
	'5': keycode.Key5, '6': keycode.Key6, '7': keycode.Key7, '8': keycode.Key8,
	'9': keycode.Key9, '0': keycode.Key0,

	// Shifted number row symbols
	'!': keycode.Key1, '@': keycode.Key2, '#': keycode.Key3, '$': keycode.Key4,
	'%': keycode.Key5, '^': keycode.Key6, '&': keycode.Key7, '*': keycode.Key8,
	'(': keycode.Key9, ')': keycode.Key0,

	// Unshifted symbols
	'-':  keycode.KeyMinus,
	'=':  keycode.KeyEqual,
	'[':  keycode.KeyLeftBrace,
	']':  keycode.KeyRightBrace,
	'\\': keycode.KeyBackslash,
	';':  keycode.KeySemicolon,
	'\'': keycode.KeyApostrophe,
	'`':  keycode.KeyGrave,
	',':  keycode.KeyComma,
	'.':  keycode.KeyPeriod,
	'/':  keycode.KeySlash,

	// Shifted symbols
	'_': keycode.KeyMinus,
	'+': keycode.KeyEqual,
	'{': keycode.KeyLeftBrace,
	'}': keycode.KeyRightBrace,
	'|': keycode.KeyBackslash,
	':': keycode.KeySemicolon,
	'"': keycode.KeyApostrophe,
	'~': keycode.KeyGrave,
	'<': keycode.KeyComma,
	'>': keycode.KeyPeriod,
	'?': keycode.KeySlash,

	// Whitespace
	' ':  keycode.KeySpace,
	'\n': keycode.KeyEnter,
	'\r': keycode.KeyEnter,
	'\t': keycode.KeyTab,
}

// ShiftChars defines which characters require the Shift modifier.
var ShiftChars = map[rune]bool{
	// Uppercase letters
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,

	// Shifted number row
	'!': true, '@': true, '#': true, '$': true, '%': true,
	'^': true, '&': true, '*': true, '(': true, ')': true,

	// Shifted symbols
	'_': true, '+': true, '{': true, '}': true, '|': true,
	':': true, '"': true, '~': true, '<': true, '>': true, '?': true,
}

// NeedsShift returns true if the character requires the Shift modifier.
func NeedsShift(r rune) bool {
	return ShiftChars[r]
}

// Keystrokes converts a string into the key event sequence a typist would
// produce on the US layout, wrapping shifted characters in left-shift
// press/release pairs.
func Keystrokes(text string) ([]keycode.KeyEvent, error) {
	var events []keycode.KeyEvent
	for _, r := range text {
		code, ok := CharToKey[r]
		if !ok {
			return nil, fmt.Errorf("character %q has no key on the us layout", r)
		}
		if NeedsShift(r) {
			events = append(events,
				keycode.KeyEvent{Code: keycode.KeyLeftShift, State: keycode.Pressed},
				keycode.KeyEvent{Code: code, State: keycode.Pressed},
				keycode.KeyEvent{Code: code, State: keycode.Released},
				keycode.KeyEvent{Code: keycode.KeyLeftShift, State: keycode.Released},
			)
			continue
		}
		events = append(events,
			keycode.KeyEvent{Code: code, State: keycode.Pressed},
			keycode.KeyEvent{Code: code, State: keycode.Released},
		)
	}
	return events, nil
}
