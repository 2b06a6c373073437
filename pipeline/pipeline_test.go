package pipeline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/KEYDEC/keycode"
	"github.com/Alia5/KEYDEC/layout"
	"github.com/Alia5/KEYDEC/pipeline"
	"github.com/Alia5/KEYDEC/scancode"
)

// typed generates the scancode bytes for text and replays them through a
// pipeline, returning the translated text output.
func typed(t *testing.T, set int, lay layout.Layout, text string) string {
	t.Helper()

	events, err := layout.Keystrokes(text)
	require.NoError(t, err)
	var data []byte
	for _, ev := range events {
		if set == 2 {
			data, err = scancode.AppendSet2Event(data, ev)
		} else {
			data, err = scancode.AppendSet1Event(data, ev)
		}
		require.NoError(t, err)
	}

	var dec scancode.Decoder = &scancode.Set1Decoder{}
	if set == 2 {
		dec = &scancode.Set2Decoder{}
	}
	p := pipeline.New(dec, lay, nil, layout.ControlIgnored)
	keys, errs := p.AddBytes(data)
	require.Empty(t, errs)

	var out strings.Builder
	for _, key := range keys {
		if !key.IsRaw() {
			out.WriteString(key.Text)
		}
	}
	return out.String()
}

func TestTypedTextRoundTrip(t *testing.T) {
	us, _ := layout.ByName("us")
	for _, set := range []int{1, 2} {
		assert.Equal(t, "Hello, world!\n", typed(t, set, us, "Hello, world!\n"))
		assert.Equal(t, "0x1E -> {brace}", typed(t, set, us, "0x1E -> {brace}"))
	}
}

func TestShiftStateTracksAcrossEvents(t *testing.T) {
	us, _ := layout.ByName("us")
	p := pipeline.New(&scancode.Set1Decoder{}, us, nil, layout.ControlIgnored)

	// Shift down, '1', shift up, '1' again: "!" then "1". The shift press
	// itself passes through as a raw key.
	keys, errs := p.AddBytes([]byte{0x2A, 0x02, 0x82, 0xAA, 0x02, 0x82})
	require.Empty(t, errs)
	require.Len(t, keys, 3)
	assert.Equal(t, keycode.Raw(keycode.KeyLeftShift), keys[0])
	assert.Equal(t, keycode.Text("!"), keys[1])
	assert.Equal(t, keycode.Text("1"), keys[2])
}

func TestCapsLockAcrossEvents(t *testing.T) {
	us, _ := layout.ByName("us")
	p := pipeline.New(&scancode.Set1Decoder{}, us, nil, layout.ControlIgnored)

	// 'a', caps-lock stroke, 'a': "a" then "A".
	keys, errs := p.AddBytes([]byte{0x1E, 0x9E, 0x3A, 0xBA, 0x1E, 0x9E})
	require.Empty(t, errs)
	require.Len(t, keys, 3)
	assert.Equal(t, keycode.Text("a"), keys[0])
	assert.Equal(t, keycode.Raw(keycode.KeyCapsLock), keys[1])
	assert.Equal(t, keycode.Text("A"), keys[2])
}

func TestCtrlMapping(t *testing.T) {
	us, _ := layout.ByName("us")
	p := pipeline.New(&scancode.Set1Decoder{}, us, nil, layout.ControlMapsLetters)

	// Ctrl down, 'c'.
	keys, errs := p.AddBytes([]byte{0x1D, 0x2E})
	require.Empty(t, errs)
	require.Len(t, keys, 2)
	assert.Equal(t, keycode.Raw(keycode.KeyLeftCtrl), keys[0])
	assert.Equal(t, keycode.Text("\x03"), keys[1])
}

func TestNumpadNavigationPassThrough(t *testing.T) {
	us, _ := layout.ByName("us")
	p := pipeline.New(&scancode.Set1Decoder{}, us, nil, layout.ControlIgnored)

	// Num-lock is engaged by default: Kp8 is a digit. After a num-lock
	// stroke it becomes the up-arrow identity.
	keys, errs := p.AddBytes([]byte{0x48, 0xC8, 0x45, 0xC5, 0x48, 0xC8})
	require.Empty(t, errs)
	require.Len(t, keys, 3)
	assert.Equal(t, keycode.Text("8"), keys[0])
	assert.Equal(t, keycode.Raw(keycode.KeyNumLock), keys[1])
	assert.Equal(t, keycode.Raw(keycode.KeyUp), keys[2])
}

func TestUKLayoutThroughPipeline(t *testing.T) {
	uk, _ := layout.ByName("uk")
	p := pipeline.New(&scancode.Set2Decoder{}, uk, nil, layout.ControlIgnored)

	// Shift down, '3' on set 2.
	keys, errs := p.AddBytes([]byte{0x12, 0x26})
	require.Empty(t, errs)
	require.Len(t, keys, 2)
	assert.Equal(t, keycode.Text("£"), keys[1])
}

func TestUnknownBytesAreReportedNotFatal(t *testing.T) {
	us, _ := layout.ByName("us")
	p := pipeline.New(&scancode.Set1Decoder{}, us, nil, layout.ControlIgnored)

	keys, errs := p.AddBytes([]byte{0x55, 0x1E})
	assert.Len(t, errs, 1)
	require.Len(t, keys, 1)
	assert.Equal(t, keycode.Text("a"), keys[0])
}

func TestReleasesProduceNoOutput(t *testing.T) {
	us, _ := layout.ByName("us")
	p := pipeline.New(&scancode.Set1Decoder{}, us, nil, layout.ControlIgnored)

	ev, ok, err := p.AddByte(0x9E)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, keycode.Released, ev.State)

	_, ok = p.ProcessEvent(ev)
	assert.False(t, ok)
}
