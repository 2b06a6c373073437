package layout

import "github.com/Alia5/KEYDEC/keycode"

// UK105 is the 105-key United Kingdom layout, defined as US104 with a small
// set of key overrides. The override set is fixed; every other key delegates
// to the base layout.
type UK105 struct {
	base US104
}

// Name implements Layout.
func (UK105) Name() string { return "uk" }

// MapKeycode implements Layout.
func (l UK105) MapKeycode(code keycode.KeyCode, m Modifiers, ctrl ControlHandling) keycode.DecodedKey {
	switch code {
	case keycode.KeyGrave:
		if m.AltGr {
			return keycode.Rune('¦')
		}
		return twoTier(m, '`', '¬')
	case keycode.Key2:
		return twoTier(m, '2', '"')
	case keycode.Key3:
		return twoTier(m, '3', '£')
	case keycode.Key4:
		if m.AltGr {
			return keycode.Rune('€')
		}
		return twoTier(m, '4', '$')
	case keycode.KeyApostrophe:
		return twoTier(m, '\'', '@')
	case keycode.KeyNonUSHash:
		return twoTier(m, '#', '~')
	case keycode.KeyNonUSBackslash:
		return twoTier(m, '\\', '|')
	}
	return l.base.MapKeycode(code, m, ctrl)
}
