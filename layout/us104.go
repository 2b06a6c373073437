package layout

import "github.com/Alia5/KEYDEC/keycode"

// US104 is the 104-key United States layout. It is the base layout other
// layouts compose over.
type US104 struct{}

// Name implements Layout.
func (US104) Name() string { return "us" }

// MapKeycode implements Layout.
func (US104) MapKeycode(code keycode.KeyCode, m Modifiers, ctrl ControlHandling) keycode.DecodedKey {
	if code >= keycode.KeyA && code <= keycode.KeyZ {
		return letter(m, ctrl, 'a'+rune(code-keycode.KeyA))
	}

	switch code {
	// Number row
	case keycode.Key1:
		return twoTier(m, '1', '!')
	case keycode.Key2:
		return twoTier(m, '2', '@')
	case keycode.Key3:
		return twoTier(m, '3', '#')
	case keycode.Key4:
		return twoTier(m, '4', '$')
	case keycode.Key5:
		return twoTier(m, '5', '%')
	case keycode.Key6:
		return twoTier(m, '6', '^')
	case keycode.Key7:
		return twoTier(m, '7', '&')
	case keycode.Key8:
		return twoTier(m, '8', '*')
	case keycode.Key9:
		return twoTier(m, '9', '(')
	case keycode.Key0:
		return twoTier(m, '0', ')')

	// Punctuation
	case keycode.KeyGrave:
		return twoTier(m, '`', '~')
	case keycode.KeyMinus:
		return twoTier(m, '-', '_')
	case keycode.KeyEqual:
		return twoTier(m, '=', '+')
	case keycode.KeyLeftBrace:
		return twoTier(m, '[', '{')
	case keycode.KeyRightBrace:
		return twoTier(m, ']', '}')
	case keycode.KeyBackslash:
		return twoTier(m, '\\', '|')
	case keycode.KeyNonUSHash:
		return twoTier(m, '#', '~')
	case keycode.KeySemicolon:
		return twoTier(m, ';', ':')
	case keycode.KeyApostrophe:
		return twoTier(m, '\'', '"')
	case keycode.KeyComma:
		return twoTier(m, ',', '<')
	case keycode.KeyPeriod:
		return twoTier(m, '.', '>')
	case keycode.KeySlash:
		return twoTier(m, '/', '?')
	case keycode.KeyNonUSBackslash:
		return twoTier(m, '\\', '|')

	// Fixed-mapping keys, modifiers ignored
	case keycode.KeyEscape:
		return keycode.Rune(0x1B)
	case keycode.KeyBackspace:
		return keycode.Rune(0x08)
	case keycode.KeyTab:
		return keycode.Rune('\t')
	case keycode.KeyEnter, keycode.KeyKpEnter:
		return keycode.Rune('\n')
	case keycode.KeySpace:
		return keycode.Rune(' ')
	case keycode.KeyDelete:
		return keycode.Rune(0x7F)
	case keycode.KeyKpSlash:
		return keycode.Rune('/')
	case keycode.KeyKpAsterisk:
		return keycode.Rune('*')
	case keycode.KeyKpMinus:
		return keycode.Rune('-')
	case keycode.KeyKpPlus:
		return keycode.Rune('+')

	// Numeric keypad: digits with num-lock, navigation identities without
	case keycode.KeyKp0:
		return numpad(m, '0', keycode.KeyInsert)
	case keycode.KeyKp1:
		return numpad(m, '1', keycode.KeyEnd)
	case keycode.KeyKp2:
		return numpad(m, '2', keycode.KeyDown)
	case keycode.KeyKp3:
		return numpad(m, '3', keycode.KeyPageDown)
	case keycode.KeyKp4:
		return numpad(m, '4', keycode.KeyLeft)
	case keycode.KeyKp5:
		return numpad(m, '5', keycode.KeyKp5)
	case keycode.KeyKp6:
		return numpad(m, '6', keycode.KeyRight)
	case keycode.KeyKp7:
		return numpad(m, '7', keycode.KeyHome)
	case keycode.KeyKp8:
		return numpad(m, '8', keycode.KeyUp)
	case keycode.KeyKp9:
		return numpad(m, '9', keycode.KeyPageUp)
	case keycode.KeyKpDot:
		return numpad(m, '.', keycode.KeyDelete)
	}

	// Everything else (arrows, function keys, modifiers, media keys)
	// passes through unchanged.
	return keycode.Raw(code)
}

func numpad(m Modifiers, glyph rune, nav keycode.KeyCode) keycode.DecodedKey {
	if m.NumLock {
		return keycode.Rune(glyph)
	}
	return keycode.Raw(nav)
}
