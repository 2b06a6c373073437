package scancode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/KEYDEC/keycode"
)

func TestTablesAreBijective(t *testing.T) {
	tables := map[string]map[byte]keycode.KeyCode{
		"set1":          set1Map,
		"set1 extended": set1ExtendedMap,
		"set2":          set2Map,
		"set2 extended": set2ExtendedMap,
	}
	for name, table := range tables {
		seen := map[keycode.KeyCode]byte{}
		for b, code := range table {
			prev, dup := seen[code]
			assert.False(t, dup, "%s: key %s mapped by both 0x%02X and 0x%02X", name, code, prev, b)
			seen[code] = b
		}
	}
}

func TestEncodeDecodeRoundTripSet1(t *testing.T) {
	d := &Set1Decoder{}
	for _, code := range keycode.All() {
		for _, state := range []keycode.KeyState{keycode.Pressed, keycode.Released} {
			want := keycode.KeyEvent{Code: code, State: state}
			data, err := AppendSet1Event(nil, want)
			if err != nil {
				// Keys outside the Set 1 protocol (Pause and friends).
				continue
			}
			events := drain(t, d, data)
			require.Len(t, events, 1, "key %s", code)
			assert.Equal(t, want, events[0])
			assert.Equal(t, Start, d.State())
		}
	}
}

func TestEncodeDecodeRoundTripSet2(t *testing.T) {
	d := &Set2Decoder{}
	for _, code := range keycode.All() {
		for _, state := range []keycode.KeyState{keycode.Pressed, keycode.Released} {
			want := keycode.KeyEvent{Code: code, State: state}
			data, err := AppendSet2Event(nil, want)
			if err != nil {
				continue
			}
			events := drain(t, d, data)
			require.Len(t, events, 1, "key %s", code)
			assert.Equal(t, want, events[0])
			assert.Equal(t, Start, d.State())
		}
	}
}

func TestAppendStroke(t *testing.T) {
	data, err := AppendStroke(nil, 1, keycode.KeyUp)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE0, 0x48, 0xE0, 0xC8}, data)

	data, err = AppendStroke(nil, 2, keycode.KeyUp)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE0, 0x75, 0xE0, 0xF0, 0x75}, data)

	_, err = AppendStroke(nil, 1, keycode.KeyPause)
	assert.Error(t, err)
}

func drain(t *testing.T, d Decoder, data []byte) []keycode.KeyEvent {
	t.Helper()
	var events []keycode.KeyEvent
	for _, b := range data {
		ev, ok, err := d.Advance(b)
		require.NoError(t, err)
		if ok {
			events = append(events, ev)
		}
	}
	return events
}
