// Package scancode decodes raw PS/2 keyboard scancode byte streams into key
// events, and encodes key events back into the byte sequences a controller
// would emit. Set 1 (IBM PC XT) and Set 2 (IBM PC AT) are implemented as
// independent decoders; a caller picks one at setup based on how the
// keyboard controller is configured and feeds it every byte, in order.
package scancode

import "github.com/Alia5/KEYDEC/keycode"

// State is the decoder's position inside a multi-byte scancode sequence.
// The zero value is Start. No sequence spans more than two stages: a prefix
// byte, then a payload byte.
type State uint8

const (
	// Start means the next byte begins a new sequence.
	Start State = iota
	// Extended means a 0xE0 prefix has been consumed.
	Extended
	// Release means a 0xF0 prefix has been consumed (Set 2 only).
	Release
	// ExtendedRelease means 0xE0 0xF0 have been consumed (Set 2 only).
	ExtendedRelease
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case Extended:
		return "Extended"
	case Release:
		return "Release"
	case ExtendedRelease:
		return "ExtendedRelease"
	default:
		return "Unknown"
	}
}

const (
	extendedPrefix = 0xE0
	releasePrefix  = 0xF0
	set1BreakBit   = 0x80
)

// Decoder is the common surface of the per-set decoders.
//
// Advance consumes one raw byte. It returns ok=false when the byte only
// advanced internal state (a prefix byte), and an event with ok=true when
// the byte completed a sequence that resolves to a known key. A byte that
// completes a sequence but matches no table entry yields a
// keycode.UnknownScancodeError; the decoder has already moved past the bad
// byte, so the error is recoverable and the next byte decodes fresh.
//
// A decoder instance must not be advanced concurrently; Advance performs a
// read-modify-write on the instance's state. Bytes must arrive in the exact
// order the hardware produced them.
type Decoder interface {
	Advance(b byte) (ev keycode.KeyEvent, ok bool, err error)
	State() State
	Reset()
}
