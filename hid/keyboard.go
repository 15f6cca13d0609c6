package hid

import (
	"github.com/Alia5/KEYPER/report"
)

// Keyboard is the boot-protocol keyboard HID device. It holds the most
// recent encoded input report and the LED collaborator.
//
// Keyboard does no locking of its own: both execution contexts (poll loop
// and USB interrupt) reach it through the transport bridge, whose critical
// section serializes every access.
type Keyboard struct {
	report report.Input
	leds   Leds
}

// NewKeyboard returns a Keyboard forwarding LED state to leds. A nil leds
// means nobody cares about indicators; all updates become no-ops.
func NewKeyboard(leds Leds) *Keyboard {
	if leds == nil {
		leds = NoLeds{}
	}
	return &Keyboard{leds: leds}
}

// SetInputReport stores the current input report. It returns true when the
// report differs byte-wise from the stored one; callers use this to suppress
// retransmission of identical reports.
func (k *Keyboard) SetInputReport(r report.Input) bool {
	if r == k.report {
		return false
	}
	k.report = r
	return true
}

// InputReport returns the most recent committed input report.
func (k *Keyboard) InputReport() report.Input {
	return k.report
}

func (k *Keyboard) Subclass() Subclass    { return SubclassBootInterface }
func (k *Keyboard) Protocol() Protocol    { return ProtocolKeyboard }
func (k *Keyboard) MaxPacketSize() uint16 { return 8 }

func (k *Keyboard) ReportDescriptor() []byte {
	return reportDescriptor
}

// GetReport returns the most recent input report for the Input type; every
// other combination is rejected with ErrUnsupportedReport.
func (k *Keyboard) GetReport(typ ReportType, _ uint8) ([]byte, error) {
	if typ == ReportInput {
		return k.report.Bytes(), nil
	}
	return nil, ErrUnsupportedReport
}

// SetReport accepts exactly one shape: Output type, report id 0, one payload
// byte. Bits 0-4 are decoded into the five LED indicators and forwarded to
// the collaborator. This is the only path by which host-driven state
// re-enters the firmware.
func (k *Keyboard) SetReport(typ ReportType, id uint8, data []byte) error {
	if typ != ReportOutput || id != 0 || len(data) != 1 {
		return ErrUnsupportedReport
	}
	var st LEDState
	if err := st.UnmarshalBinary(data); err != nil {
		return err
	}
	st.apply(k.leds)
	return nil
}
