// Package keycode defines the protocol-independent identity of physical
// keyboard keys and the event/result types shared between the scancode
// decoders and the layout translators.
package keycode

// KeyCode identifies a physical key position, independent of the scancode
// set that produced it. Both Set 1 and Set 2 map their byte values onto this
// one enumeration.
type KeyCode uint8

const (
	// Letters A-Z
	KeyA KeyCode = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Numbers 1-0 (top row)
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0

	// Special keys
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyMinus      // - and _
	KeyEqual      // = and +
	KeyLeftBrace  // [ and {
	KeyRightBrace // ] and }
	KeyBackslash  // \ and |
	KeyNonUSHash  // Non-US # and ~ (key left of Enter on 105-key boards)
	KeySemicolon  // ; and :
	KeyApostrophe // ' and "
	KeyGrave      // ` and ~
	KeyComma      // , and <
	KeyPeriod     // . and >
	KeySlash      // / and ?
	KeyCapsLock

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Control keys
	KeyPrintScreen
	KeySysRq
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown

	// Arrow keys
	KeyRight
	KeyLeft
	KeyDown
	KeyUp

	// Numpad
	KeyNumLock
	KeyKpSlash    // Keypad /
	KeyKpAsterisk // Keypad *
	KeyKpMinus    // Keypad -
	KeyKpPlus     // Keypad +
	KeyKpEnter    // Keypad Enter
	KeyKp1        // Keypad 1 and End
	KeyKp2        // Keypad 2 and Down
	KeyKp3        // Keypad 3 and PageDn
	KeyKp4        // Keypad 4 and Left
	KeyKp5        // Keypad 5
	KeyKp6        // Keypad 6 and Right
	KeyKp7        // Keypad 7 and Home
	KeyKp8        // Keypad 8 and Up
	KeyKp9        // Keypad 9 and PageUp
	KeyKp0        // Keypad 0 and Insert
	KeyKpDot      // Keypad . and Delete

	// Modifier keys
	KeyLeftCtrl
	KeyLeftShift
	KeyLeftAlt
	KeyLeftGUI // Windows/Command key
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt // AltGr on international layouts
	KeyRightGUI

	// Additional keys
	KeyNonUSBackslash // Non-US \ and | (key right of left Shift on 105-key boards)
	KeyApplication    // Application (Windows Menu key)
	KeyPower
	KeySleep
	KeyWake

	// Media control keys
	KeyMute
	KeyVolumeUp
	KeyVolumeDown
	KeyMediaPlayPause
	KeyMediaStop
	KeyMediaNext
	KeyMediaPrevious
	KeyMediaSelect
	KeyCalculator
	KeyMyComputer
	KeyEmail
	KeyWWWHome
	KeyWWWSearch
	KeyWWWFavorites
	KeyWWWRefresh
	KeyWWWStop
	KeyWWWForward
	KeyWWWBack
)

// KeyName maps key codes to human-readable key names.
var KeyName = map[KeyCode]string{
	// Letters
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	// Numbers
	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	// Special keys
	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeySpace:      "Space",
	KeyMinus:      "Minus",
	KeyEqual:      "Equal",
	KeyLeftBrace:  "LeftBrace",
	KeyRightBrace: "RightBrace",
	KeyBackslash:  "Backslash",
	KeyNonUSHash:  "NonUSHash",
	KeySemicolon:  "Semicolon",
	KeyApostrophe: "Apostrophe",
	KeyGrave:      "Grave",
	KeyComma:      "Comma",
	KeyPeriod:     "Period",
	KeySlash:      "Slash",
	KeyCapsLock:   "CapsLock",

	// Function keys
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",

	// Control keys
	KeyPrintScreen: "PrintScreen",
	KeySysRq:       "SysRq",
	KeyScrollLock:  "ScrollLock",
	KeyPause:       "Pause",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyPageUp:      "PageUp",
	KeyDelete:      "Delete",
	KeyEnd:         "End",
	KeyPageDown:    "PageDown",

	// Arrow keys
	KeyRight: "Right",
	KeyLeft:  "Left",
	KeyDown:  "Down",
	KeyUp:    "Up",

	// Numpad
	KeyNumLock:    "NumLock",
	KeyKpSlash:    "Kp/",
	KeyKpAsterisk: "Kp*",
	KeyKpMinus:    "Kp-",
	KeyKpPlus:     "Kp+",
	KeyKpEnter:    "KpEnter",
	KeyKp1:        "Kp1",
	KeyKp2:        "Kp2",
	KeyKp3:        "Kp3",
	KeyKp4:        "Kp4",
	KeyKp5:        "Kp5",
	KeyKp6:        "Kp6",
	KeyKp7:        "Kp7",
	KeyKp8:        "Kp8",
	KeyKp9:        "Kp9",
	KeyKp0:        "Kp0",
	KeyKpDot:      "Kp.",

	// Modifiers
	KeyLeftCtrl:   "LeftCtrl",
	KeyLeftShift:  "LeftShift",
	KeyLeftAlt:    "LeftAlt",
	KeyLeftGUI:    "LeftGUI",
	KeyRightCtrl:  "RightCtrl",
	KeyRightShift: "RightShift",
	KeyRightAlt:   "RightAlt",
	KeyRightGUI:   "RightGUI",

	// Additional
	KeyNonUSBackslash: "NonUSBackslash",
	KeyApplication:    "Application",
	KeyPower:          "Power",
	KeySleep:          "Sleep",
	KeyWake:           "Wake",

	// Media control
	KeyMute:           "Mute",
	KeyVolumeUp:       "VolumeUp",
	KeyVolumeDown:     "VolumeDown",
	KeyMediaPlayPause: "MediaPlayPause",
	KeyMediaStop:      "MediaStop",
	KeyMediaNext:      "MediaNext",
	KeyMediaPrevious:  "MediaPrevious",
	KeyMediaSelect:    "MediaSelect",
	KeyCalculator:     "Calculator",
	KeyMyComputer:     "MyComputer",
	KeyEmail:          "Email",
	KeyWWWHome:        "WWWHome",
	KeyWWWSearch:      "WWWSearch",
	KeyWWWFavorites:   "WWWFavorites",
	KeyWWWRefresh:     "WWWRefresh",
	KeyWWWStop:        "WWWStop",
	KeyWWWForward:     "WWWForward",
	KeyWWWBack:        "WWWBack",
}

// String returns the human-readable name of the key code.
func (c KeyCode) String() string {
	if name, ok := KeyName[c]; ok {
		return name
	}
	return "Unknown"
}

// ParseKey resolves a human-readable key name back to its KeyCode.
// Names match the KeyName table exactly (case-sensitive).
func ParseKey(name string) (KeyCode, bool) {
	code, ok := keyByName[name]
	return code, ok
}

// All returns every defined key code in enumeration order.
func All() []KeyCode {
	codes := make([]KeyCode, 0, len(KeyName))
	for c := KeyA; int(c) < len(KeyName); c++ {
		codes = append(codes, c)
	}
	return codes
}

var keyByName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, len(KeyName))
	for code, name := range KeyName {
		m[name] = code
	}
	return m
}()
