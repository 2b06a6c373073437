package keycode

import "fmt"

// KeyState is the transition direction of a key event.
type KeyState uint8

const (
	Pressed KeyState = iota
	Released
)

// String returns "Pressed" or "Released".
func (s KeyState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// KeyEvent is a single key transition emitted by a scancode decoder.
// At most one event is produced per input byte.
type KeyEvent struct {
	Code  KeyCode
	State KeyState
}

// String formats the event as "Name Pressed" / "Name Released".
func (e KeyEvent) String() string {
	return e.Code.String() + " " + e.State.String()
}

// DecodedKeyKind selects which field of a DecodedKey carries the result.
type DecodedKeyKind uint8

const (
	// DecodedText means the key produced a sequence of Unicode scalars.
	DecodedText DecodedKeyKind = iota
	// DecodedRaw means the key has no textual output; the key code passes
	// through unchanged (arrow keys, function keys, modifiers).
	DecodedRaw
)

// DecodedKey is the result of translating a key press through a layout.
// Exactly one of Text or Key is meaningful, selected by Kind.
type DecodedKey struct {
	Kind DecodedKeyKind
	Text string
	Key  KeyCode
}

// Text builds a textual DecodedKey.
func Text(s string) DecodedKey {
	return DecodedKey{Kind: DecodedText, Text: s}
}

// Rune builds a textual DecodedKey from a single Unicode scalar.
func Rune(r rune) DecodedKey {
	return DecodedKey{Kind: DecodedText, Text: string(r)}
}

// Raw builds a pass-through DecodedKey.
func Raw(code KeyCode) DecodedKey {
	return DecodedKey{Kind: DecodedRaw, Key: code}
}

// IsRaw reports whether the key passed through without textual output.
func (d DecodedKey) IsRaw() bool {
	return d.Kind == DecodedRaw
}

// String returns the text output, or "<Name>" for pass-through keys.
func (d DecodedKey) String() string {
	if d.Kind == DecodedRaw {
		return "<" + d.Key.String() + ">"
	}
	return d.Text
}

// UnknownScancodeError reports a byte that completed a scancode sequence but
// maps to no known key in the relevant lookup table. The decoder that raised
// it has already advanced past the bad byte; decoding may continue with the
// next byte.
type UnknownScancodeError struct {
	Byte     byte
	Extended bool
	Set      int
}

// Error implements the error interface.
func (e UnknownScancodeError) Error() string {
	if e.Extended {
		return fmt.Sprintf("unknown set %d extended scancode 0xE0 0x%02X", e.Set, e.Byte)
	}
	return fmt.Sprintf("unknown set %d scancode 0x%02X", e.Set, e.Byte)
}
