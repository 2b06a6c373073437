package scancode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/KEYDEC/keycode"
	"github.com/Alia5/KEYDEC/scancode"
)

func TestSet2Sequences(t *testing.T) {
	type testCase struct {
		name     string
		bytes    []byte
		expected []keycode.KeyEvent
	}

	cases := []testCase{
		{
			name:     "letter press",
			bytes:    []byte{0x1C},
			expected: []keycode.KeyEvent{{Code: keycode.KeyA, State: keycode.Pressed}},
		},
		{
			name:     "letter release",
			bytes:    []byte{0xF0, 0x1C},
			expected: []keycode.KeyEvent{{Code: keycode.KeyA, State: keycode.Released}},
		},
		{
			name:     "extended press",
			bytes:    []byte{0xE0, 0x75},
			expected: []keycode.KeyEvent{{Code: keycode.KeyUp, State: keycode.Pressed}},
		},
		{
			name:     "extended release",
			bytes:    []byte{0xE0, 0xF0, 0x75},
			expected: []keycode.KeyEvent{{Code: keycode.KeyUp, State: keycode.Released}},
		},
		{
			name:  "full stroke with shift",
			bytes: []byte{0x12, 0x1C, 0xF0, 0x1C, 0xF0, 0x12},
			expected: []keycode.KeyEvent{
				{Code: keycode.KeyLeftShift, State: keycode.Pressed},
				{Code: keycode.KeyA, State: keycode.Pressed},
				{Code: keycode.KeyA, State: keycode.Released},
				{Code: keycode.KeyLeftShift, State: keycode.Released},
			},
		},
		{
			name:  "numpad enter vs enter",
			bytes: []byte{0x5A, 0xF0, 0x5A, 0xE0, 0x5A, 0xE0, 0xF0, 0x5A},
			expected: []keycode.KeyEvent{
				{Code: keycode.KeyEnter, State: keycode.Pressed},
				{Code: keycode.KeyEnter, State: keycode.Released},
				{Code: keycode.KeyKpEnter, State: keycode.Pressed},
				{Code: keycode.KeyKpEnter, State: keycode.Released},
			},
		},
		{
			name:     "high make code",
			bytes:    []byte{0x83, 0xF0, 0x83},
			expected: []keycode.KeyEvent{{Code: keycode.KeyF7, State: keycode.Pressed}, {Code: keycode.KeyF7, State: keycode.Released}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := &scancode.Set2Decoder{}
			events := feed(t, d, tc.bytes)
			assert.Equal(t, tc.expected, events)
			assert.Equal(t, scancode.Start, d.State())
		})
	}
}

func TestSet2States(t *testing.T) {
	d := &scancode.Set2Decoder{}

	_, ok, err := d.Advance(0xF0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, scancode.Release, d.State())

	_, ok, err = d.Advance(0x1C)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, scancode.Start, d.State())

	_, ok, err = d.Advance(0xE0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, scancode.Extended, d.State())

	_, ok, err = d.Advance(0xF0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, scancode.ExtendedRelease, d.State())

	_, ok, err = d.Advance(0x75)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, scancode.Start, d.State())
}

func TestSet2ResyncAfterUnknown(t *testing.T) {
	type testCase struct {
		name  string
		bytes []byte
	}

	// Each sequence ends in a payload byte with no table entry.
	cases := []testCase{
		{name: "unknown base", bytes: []byte{0x02}},
		{name: "unknown release", bytes: []byte{0xF0, 0x02}},
		{name: "unknown extended", bytes: []byte{0xE0, 0x02}},
		{name: "unknown extended release", bytes: []byte{0xE0, 0xF0, 0x02}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := &scancode.Set2Decoder{}
			var lastErr error
			for _, b := range tc.bytes {
				_, _, lastErr = d.Advance(b)
			}
			var unknown keycode.UnknownScancodeError
			require.ErrorAs(t, lastErr, &unknown)
			assert.Equal(t, byte(0x02), unknown.Byte)
			assert.Equal(t, 2, unknown.Set)
			assert.Equal(t, scancode.Start, d.State())

			// A known-good sequence decodes correctly after the failure.
			ev, ok, err := d.Advance(0x1C)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, keycode.KeyEvent{Code: keycode.KeyA, State: keycode.Pressed}, ev)
		})
	}
}
