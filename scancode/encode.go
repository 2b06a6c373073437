package scancode

import (
	"fmt"

	"github.com/Alia5/KEYDEC/keycode"
)

// AppendSet1Event appends the Set 1 byte sequence a controller would emit
// for ev to dst and returns the extended slice. Keys with no Set 1 scancode
// (e.g. Pause, which uses the 0xE1 protocol) return an error.
func AppendSet1Event(dst []byte, ev keycode.KeyEvent) ([]byte, error) {
	if b, ok := set1Make[ev.Code]; ok {
		if ev.State == keycode.Released {
			b |= set1BreakBit
		}
		return append(dst, b), nil
	}
	if b, ok := set1ExtendedMake[ev.Code]; ok {
		if ev.State == keycode.Released {
			b |= set1BreakBit
		}
		return append(dst, extendedPrefix, b), nil
	}
	return dst, fmt.Errorf("key %s has no set 1 scancode", ev.Code)
}

// AppendSet2Event appends the Set 2 byte sequence a controller would emit
// for ev to dst and returns the extended slice.
func AppendSet2Event(dst []byte, ev keycode.KeyEvent) ([]byte, error) {
	if b, ok := set2Make[ev.Code]; ok {
		if ev.State == keycode.Released {
			return append(dst, releasePrefix, b), nil
		}
		return append(dst, b), nil
	}
	if b, ok := set2ExtendedMake[ev.Code]; ok {
		if ev.State == keycode.Released {
			return append(dst, extendedPrefix, releasePrefix, b), nil
		}
		return append(dst, extendedPrefix, b), nil
	}
	return dst, fmt.Errorf("key %s has no set 2 scancode", ev.Code)
}

// AppendStroke appends a full press/release pair for code using the given
// set (1 or 2).
func AppendStroke(dst []byte, set int, code keycode.KeyCode) ([]byte, error) {
	appendEvent := AppendSet1Event
	if set == 2 {
		appendEvent = AppendSet2Event
	}
	dst, err := appendEvent(dst, keycode.KeyEvent{Code: code, State: keycode.Pressed})
	if err != nil {
		return dst, err
	}
	return appendEvent(dst, keycode.KeyEvent{Code: code, State: keycode.Released})
}

// Make-code tables inverted from the decode maps. The decode maps are
// bijective per table, so inversion is lossless.
var (
	set1Make         = invert(set1Map)
	set1ExtendedMake = invert(set1ExtendedMap)
	set2Make         = invert(set2Map)
	set2ExtendedMake = invert(set2ExtendedMap)
)

func invert(m map[byte]keycode.KeyCode) map[keycode.KeyCode]byte {
	out := make(map[keycode.KeyCode]byte, len(m))
	for b, code := range m {
		out[code] = b
	}
	return out
}
