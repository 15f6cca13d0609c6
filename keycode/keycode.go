// Package keycode defines the closed set of key identities used by the layer
// mapping tables and the report encoder. Values are HID Keyboard/Keypad
// usage codes, so a KeyCode can be written into a report key slot verbatim.
package keycode

// KeyCode is a single key identity from the HID Keyboard/Keypad usage page.
type KeyCode uint8

// Class partitions KeyCodes by how the report encoder must treat them.
type Class uint8

const (
	// ClassEmpty codes have no effect on a report.
	ClassEmpty Class = iota
	// ClassError codes are host-visible error sentinels that dominate all
	// six key slots of a report.
	ClassError
	// ClassModifier codes OR a bit into the modifier byte and consume no
	// key slot.
	ClassModifier
	// ClassKey codes occupy one key slot each.
	ClassKey
)

// Error sentinels and the empty identity.
const (
	Empty          KeyCode = 0x00
	ErrorRollOver  KeyCode = 0x01
	POSTFail       KeyCode = 0x02
	ErrorUndefined KeyCode = 0x03
)

// Modifier keys. Each carries a disjoint single-bit mask in the report's
// modifier byte, bit 0 = LeftCtrl through bit 7 = RightGUI.
const (
	LeftCtrl   KeyCode = 0xE0
	LeftShift  KeyCode = 0xE1
	LeftAlt    KeyCode = 0xE2
	LeftGUI    KeyCode = 0xE3
	RightCtrl  KeyCode = 0xE4
	RightShift KeyCode = 0xE5
	RightAlt   KeyCode = 0xE6
	RightGUI   KeyCode = 0xE7
)

// Letters A-Z.
const (
	A KeyCode = 0x04 + iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
)

// Number row 1-0.
const (
	Num1 KeyCode = 0x1E + iota
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9
	Num0
)

// Special and punctuation keys.
const (
	Enter      KeyCode = 0x28
	Escape     KeyCode = 0x29
	Backspace  KeyCode = 0x2A
	Tab        KeyCode = 0x2B
	Space      KeyCode = 0x2C
	Minus      KeyCode = 0x2D // - and _
	Equal      KeyCode = 0x2E // = and +
	LeftBrace  KeyCode = 0x2F // [ and {
	RightBrace KeyCode = 0x30 // ] and }
	Backslash  KeyCode = 0x31 // \ and |
	NonUSHash  KeyCode = 0x32 // Non-US # and ~
	Semicolon  KeyCode = 0x33 // ; and :
	Apostrophe KeyCode = 0x34 // ' and "
	Grave      KeyCode = 0x35 // ` and ~
	Comma      KeyCode = 0x36 // , and <
	Period     KeyCode = 0x37 // . and >
	Slash      KeyCode = 0x38 // / and ?
	CapsLock   KeyCode = 0x39
)

// Function keys.
const (
	F1 KeyCode = 0x3A + iota
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

// Control cluster and arrows.
const (
	PrintScreen KeyCode = 0x46
	ScrollLock  KeyCode = 0x47
	Pause       KeyCode = 0x48
	Insert      KeyCode = 0x49
	Home        KeyCode = 0x4A
	PageUp      KeyCode = 0x4B
	Delete      KeyCode = 0x4C
	End         KeyCode = 0x4D
	PageDown    KeyCode = 0x4E
	Right       KeyCode = 0x4F
	Left        KeyCode = 0x50
	Down        KeyCode = 0x51
	Up          KeyCode = 0x52
	NumLock     KeyCode = 0x53
	Application KeyCode = 0x65
)

// Media keys reachable on the FN layer.
const (
	Mute       KeyCode = 0x7F
	VolumeUp   KeyCode = 0x80
	VolumeDown KeyCode = 0x81
)

// Class reports how the report encoder must treat this code.
func (k KeyCode) Class() Class {
	switch {
	case k == Empty:
		return ClassEmpty
	case k >= ErrorRollOver && k <= ErrorUndefined:
		return ClassError
	case k >= LeftCtrl && k <= RightGUI:
		return ClassModifier
	default:
		return ClassKey
	}
}

// IsModifier reports whether the code is one of the eight modifier keys.
func (k KeyCode) IsModifier() bool {
	return k.Class() == ClassModifier
}

// ModifierBit returns the code's modifier bitmask. ok is false for
// non-modifier codes.
func (k KeyCode) ModifierBit() (mask uint8, ok bool) {
	if !k.IsModifier() {
		return 0, false
	}
	return 1 << (uint8(k) - uint8(LeftCtrl)), true
}

// IsError reports whether the code is a host-visible error sentinel.
func (k KeyCode) IsError() bool {
	return k.Class() == ClassError
}
