package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/KEYDEC/keycode"
	"github.com/Alia5/KEYDEC/layout"
	"github.com/Alia5/KEYDEC/tracker"
)

func press(code keycode.KeyCode) keycode.KeyEvent {
	return keycode.KeyEvent{Code: code, State: keycode.Pressed}
}

func release(code keycode.KeyCode) keycode.KeyEvent {
	return keycode.KeyEvent{Code: code, State: keycode.Released}
}

func TestHeldModifiers(t *testing.T) {
	tr := tracker.New()

	tr.Observe(press(keycode.KeyLeftShift))
	assert.True(t, tr.Snapshot().Shift)

	// Either shift key asserts the predicate.
	tr.Observe(press(keycode.KeyRightShift))
	tr.Observe(release(keycode.KeyLeftShift))
	assert.True(t, tr.Snapshot().Shift)

	tr.Observe(release(keycode.KeyRightShift))
	assert.False(t, tr.Snapshot().Shift)

	tr.Observe(press(keycode.KeyRightCtrl))
	assert.True(t, tr.Snapshot().Ctrl)
	tr.Observe(release(keycode.KeyRightCtrl))
	assert.False(t, tr.Snapshot().Ctrl)

	tr.Observe(press(keycode.KeyRightAlt))
	assert.True(t, tr.Snapshot().AltGr)
	tr.Observe(release(keycode.KeyRightAlt))
	assert.False(t, tr.Snapshot().AltGr)
}

func TestLockToggles(t *testing.T) {
	tr := tracker.New()
	assert.True(t, tr.NumLock(), "num-lock engaged at power-on")

	// Toggles flip on press only; release is a no-op.
	tr.Observe(press(keycode.KeyCapsLock))
	tr.Observe(release(keycode.KeyCapsLock))
	assert.True(t, tr.CapsLock())
	tr.Observe(press(keycode.KeyCapsLock))
	assert.False(t, tr.CapsLock())

	tr.Observe(press(keycode.KeyNumLock))
	assert.False(t, tr.NumLock())
	assert.False(t, tr.Snapshot().NumLock)

	tr.Observe(press(keycode.KeyScrollLock))
	assert.True(t, tr.ScrollLock())
}

func TestCapsEffectXOR(t *testing.T) {
	tr := tracker.New()

	assert.False(t, tr.Snapshot().CapsEffect)

	tr.Observe(press(keycode.KeyLeftShift))
	assert.True(t, tr.Snapshot().CapsEffect)

	tr.Observe(press(keycode.KeyCapsLock))
	assert.False(t, tr.Snapshot().CapsEffect, "caps and shift cancel out")

	tr.Observe(release(keycode.KeyLeftShift))
	assert.True(t, tr.Snapshot().CapsEffect)
}

func TestCapsRuleConfigurable(t *testing.T) {
	// Caps-as-shift-lock: shift never cancels caps.
	tr := tracker.New()
	tr.Caps = func(caps, shift bool) bool { return caps || shift }

	tr.Observe(press(keycode.KeyCapsLock))
	tr.Observe(press(keycode.KeyLeftShift))
	assert.True(t, tr.Snapshot().CapsEffect)
}

func TestZeroValueTracker(t *testing.T) {
	var tr tracker.Tracker
	m := tr.Snapshot()
	assert.Equal(t, layout.Modifiers{}, m)
}
