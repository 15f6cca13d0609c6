package hid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/KEYPER/hid"
	th "github.com/Alia5/KEYPER/internal/testing"
	"github.com/Alia5/KEYPER/keycode"
	"github.com/Alia5/KEYPER/report"
)

func TestSetInputReportChangeDetection(t *testing.T) {
	kb := hid.NewKeyboard(nil)

	var rep report.Input
	rep.Press(keycode.A)

	assert.True(t, kb.SetInputReport(rep))
	assert.False(t, kb.SetInputReport(rep), "identical report is not a change")

	rep.Press(keycode.LeftShift)
	assert.True(t, kb.SetInputReport(rep))
	assert.Equal(t, rep, kb.InputReport())
}

func TestGetReport(t *testing.T) {
	kb := hid.NewKeyboard(nil)
	var rep report.Input
	rep.Press(keycode.LeftCtrl)
	rep.Press(keycode.C)
	kb.SetInputReport(rep)

	got, err := kb.GetReport(hid.ReportInput, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0x06, 0x00, 0x00, 0x00, 0x00, 0x00}, got)

	for _, typ := range []hid.ReportType{hid.ReportOutput, hid.ReportFeature} {
		_, err := kb.GetReport(typ, 0)
		assert.ErrorIs(t, err, hid.ErrUnsupportedReport)
	}
}

func TestSetReportDecodesLeds(t *testing.T) {
	tests := []struct {
		name string
		data byte
		want th.Leds
	}{
		{"all off", 0x00, th.Leds{}},
		{"num lock", hid.LEDNumLock, th.Leds{Num: true}},
		{"caps lock", hid.LEDCapsLock, th.Leds{Caps: true}},
		{"scroll lock", hid.LEDScrollLock, th.Leds{Scroll: true}},
		{"compose", hid.LEDCompose, th.Leds{Comp: true}},
		{"kana", hid.LEDKana, th.Leds{Kan: true}},
		{"num and caps", hid.LEDNumLock | hid.LEDCapsLock, th.Leds{Num: true, Caps: true}},
		{"unused high bits ignored", 0xE0 | hid.LEDKana, th.Leds{Kan: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leds := &th.Leds{}
			kb := hid.NewKeyboard(leds)
			require.NoError(t, kb.SetReport(hid.ReportOutput, 0, []byte{tt.data}))
			assert.Equal(t, tt.want, *leds)
		})
	}
}

func TestSetReportClearsPreviousLeds(t *testing.T) {
	leds := &th.Leds{}
	kb := hid.NewKeyboard(leds)

	require.NoError(t, kb.SetReport(hid.ReportOutput, 0, []byte{hid.LEDNumLock | hid.LEDCapsLock}))
	require.NoError(t, kb.SetReport(hid.ReportOutput, 0, []byte{hid.LEDCapsLock}))
	assert.Equal(t, th.Leds{Caps: true}, *leds)
}

func TestSetReportRejectsWrongShape(t *testing.T) {
	leds := &th.Leds{}
	kb := hid.NewKeyboard(leds)

	tests := []struct {
		name string
		typ  hid.ReportType
		id   uint8
		data []byte
	}{
		{"input type", hid.ReportInput, 0, []byte{0x01}},
		{"feature type", hid.ReportFeature, 0, []byte{0x01}},
		{"nonzero id", hid.ReportOutput, 1, []byte{0x01}},
		{"empty payload", hid.ReportOutput, 0, nil},
		{"oversized payload", hid.ReportOutput, 0, []byte{0x01, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := kb.SetReport(tt.typ, tt.id, tt.data)
			assert.ErrorIs(t, err, hid.ErrUnsupportedReport)
			assert.Equal(t, th.Leds{}, *leds, "rejected report must not touch the LEDs")
		})
	}
}

func TestEnumerationConstants(t *testing.T) {
	kb := hid.NewKeyboard(nil)

	assert.Equal(t, hid.SubclassBootInterface, kb.Subclass())
	assert.Equal(t, hid.ProtocolKeyboard, kb.Protocol())
	assert.Equal(t, uint16(8), kb.MaxPacketSize())

	desc := kb.ReportDescriptor()
	require.NotEmpty(t, desc)
	assert.Equal(t, byte(0x05), desc[0])
	assert.Equal(t, byte(0xC0), desc[len(desc)-1], "collection must be closed")

	d := kb.Descriptor()
	assert.Equal(t, uint16(0x16C0), d.Device.IDVendor)
	assert.Equal(t, uint16(0x27DB), d.Device.IDProduct)
	require.Len(t, d.Interfaces, 1)
	assert.Equal(t, desc, d.Interfaces[0].HIDReport)
}
