// Package hid implements the HID device contract of the keyboard: the report
// descriptor, the get/set report state machine and LED output decode. The
// USB transport and HID protocol engine that frame these calls over the wire
// are external; they consume this contract only.
package hid

import "errors"

// ErrUnsupportedReport is returned by GetReport/SetReport for any report
// type/id/length combination outside the single supported input and output
// report. The transport surfaces it as a protocol-level rejection; it is
// never fatal to the firmware.
var ErrUnsupportedReport = errors.New("hid: unsupported report")

// ReportType is the HID report type from a GET_REPORT/SET_REPORT request.
type ReportType uint8

const (
	ReportInput   ReportType = 1
	ReportOutput  ReportType = 2
	ReportFeature ReportType = 3
)

func (t ReportType) String() string {
	switch t {
	case ReportInput:
		return "input"
	case ReportOutput:
		return "output"
	case ReportFeature:
		return "feature"
	default:
		return "unknown"
	}
}

// Subclass is the HID interface subclass advertised during enumeration.
type Subclass uint8

const (
	SubclassNone          Subclass = 0
	SubclassBootInterface Subclass = 1
)

// Protocol is the HID interface protocol advertised during enumeration.
type Protocol uint8

const (
	ProtocolNone     Protocol = 0
	ProtocolKeyboard Protocol = 1
	ProtocolMouse    Protocol = 2
)

// Device is the contract the external HID transport drives.
type Device interface {
	Subclass() Subclass
	Protocol() Protocol
	MaxPacketSize() uint16
	ReportDescriptor() []byte
	GetReport(typ ReportType, id uint8) ([]byte, error)
	SetReport(typ ReportType, id uint8, data []byte) error
}

// Leds is the collaborator receiving host-driven LED indicator state, one
// setter per indicator.
type Leds interface {
	NumLock(on bool)
	CapsLock(on bool)
	ScrollLock(on bool)
	Compose(on bool)
	Kana(on bool)
}

// NoLeds is the default Leds collaborator; every setter is a no-op.
type NoLeds struct{}

func (NoLeds) NumLock(bool)    {}
func (NoLeds) CapsLock(bool)   {}
func (NoLeds) ScrollLock(bool) {}
func (NoLeds) Compose(bool)    {}
func (NoLeds) Kana(bool)       {}
