// Package report implements the 8-byte boot-protocol HID keyboard input
// report and the encoder that derives one from a debounced matrix.
package report

import "github.com/Alia5/KEYPER/keycode"

// InputSize is the wire size of a boot keyboard input report.
const InputSize = 8

// Input is a boot-protocol keyboard input report.
//
// Report layout (8 bytes):
//
//	Byte 0: Modifier bitmask (bit 0 = LeftCtrl .. bit 7 = RightGUI)
//	Byte 1: Reserved (0x00)
//	Bytes 2-7: Up to six concurrently pressed keys, left-packed in scan
//	           order, zero when empty
//
// Equality is byte-wise; the zero value is the empty report.
type Input [InputSize]byte

// Press folds one pressed key into the report. Empty codes are ignored,
// modifiers OR their bit into byte 0 without consuming a slot, error
// sentinels overwrite all six key slots (already accumulated modifiers are
// retained), and normal keys take the next free slot. A seventh normal key
// degrades the whole report to ErrorRollOver so the host sees "too many
// keys" instead of a silently truncated chord.
func (r *Input) Press(kc keycode.KeyCode) {
	switch kc.Class() {
	case keycode.ClassEmpty:
	case keycode.ClassError:
		r.keys().fill(kc)
	case keycode.ClassModifier:
		mask, _ := kc.ModifierBit()
		r[0] |= mask
	case keycode.ClassKey:
		if !r.keys().tryPush(kc) {
			r.keys().fill(keycode.ErrorRollOver)
		}
	}
}

// Modifiers returns the modifier bitmask byte.
func (r Input) Modifiers() uint8 { return r[0] }

// Keys returns a copy of the six key slots.
func (r Input) Keys() [6]byte {
	var k [6]byte
	copy(k[:], r[2:])
	return k
}

// Bytes returns the report in wire form.
func (r Input) Bytes() []byte {
	b := make([]byte, InputSize)
	copy(b, r[:])
	return b
}

// keys exposes bytes 2-7 as a bounded slot list.
func (r *Input) keys() slotList { return slotList(r[2:]) }

// slotList is the six-entry key array of a report. Slot value 0 means free.
type slotList []byte

// tryPush writes kc into the first free slot. It returns false when every
// slot is occupied, which is exactly the rollover condition.
func (s slotList) tryPush(kc keycode.KeyCode) bool {
	for i := range s {
		if s[i] == 0 {
			s[i] = byte(kc)
			return true
		}
	}
	return false
}

// fill overwrites every slot with kc.
func (s slotList) fill(kc keycode.KeyCode) {
	for i := range s {
		s[i] = byte(kc)
	}
}
