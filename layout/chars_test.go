package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/KEYDEC/keycode"
	"github.com/Alia5/KEYDEC/layout"
)

func TestKeystrokes(t *testing.T) {
	events, err := layout.Keystrokes("a")
	require.NoError(t, err)
	assert.Equal(t, []keycode.KeyEvent{
		{Code: keycode.KeyA, State: keycode.Pressed},
		{Code: keycode.KeyA, State: keycode.Released},
	}, events)

	events, err = layout.Keystrokes("A")
	require.NoError(t, err)
	assert.Equal(t, []keycode.KeyEvent{
		{Code: keycode.KeyLeftShift, State: keycode.Pressed},
		{Code: keycode.KeyA, State: keycode.Pressed},
		{Code: keycode.KeyA, State: keycode.Released},
		{Code: keycode.KeyLeftShift, State: keycode.Released},
	}, events)

	_, err = layout.Keystrokes("é")
	assert.Error(t, err)
}

func TestNeedsShift(t *testing.T) {
	assert.True(t, layout.NeedsShift('A'))
	assert.True(t, layout.NeedsShift('!'))
	assert.True(t, layout.NeedsShift('?'))
	assert.False(t, layout.NeedsShift('a'))
	assert.False(t, layout.NeedsShift('1'))
	assert.False(t, layout.NeedsShift(' '))
}

// Every typable character must come back out of the US layout when its
// keystrokes are replayed through translation.
func TestKeystrokesRoundTripThroughLayout(t *testing.T) {
	us := layout.US104{}
	for r, code := range layout.CharToKey {
		if r == '\r' {
			// Carriage return shares the Enter key with '\n'.
			continue
		}
		m := layout.Modifiers{Shift: layout.NeedsShift(r), CapsEffect: layout.NeedsShift(r)}
		key := us.MapKeycode(code, m, layout.ControlIgnored)
		require.False(t, key.IsRaw(), "char %q", r)
		assert.Equal(t, string(r), key.Text, "char %q", r)
	}
}
