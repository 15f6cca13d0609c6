package hid

import "io"

// LED bitmasks in the 1-byte output report. Bits 5-7 are unused.
const (
	LEDNumLock    = 0x01
	LEDCapsLock   = 0x02
	LEDScrollLock = 0x04
	LEDCompose    = 0x08
	LEDKana       = 0x10
)

// LEDState is the decoded form of the host's output report. It holds its
// last value until the next valid output report arrives.
type LEDState struct {
	NumLock    bool
	CapsLock   bool
	ScrollLock bool
	Compose    bool
	Kana       bool
}

// UnmarshalBinary decodes a 1-byte LED bitmask into LEDState.
func (st *LEDState) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return io.ErrUnexpectedEOF
	}
	b := data[0]
	st.NumLock = b&LEDNumLock != 0
	st.CapsLock = b&LEDCapsLock != 0
	st.ScrollLock = b&LEDScrollLock != 0
	st.Compose = b&LEDCompose != 0
	st.Kana = b&LEDKana != 0
	return nil
}

// apply forwards each indicator to the Leds collaborator.
func (st LEDState) apply(l Leds) {
	l.NumLock(st.NumLock)
	l.CapsLock(st.CapsLock)
	l.ScrollLock(st.ScrollLock)
	l.Compose(st.Compose)
	l.Kana(st.Kana)
}
