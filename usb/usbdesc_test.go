package usb_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/KEYPER/usb"
)

var testDescriptor = usb.Descriptor{
	Device: usb.DeviceDescriptor{
		BcdUSB:             0x0200,
		BMaxPacketSize0:    0x08,
		IDVendor:           0x16C0,
		IDProduct:          0x27DB,
		BcdDevice:          0x0100,
		IManufacturer:      0x01,
		IProduct:           0x02,
		BNumConfigurations: 0x01,
	},
	Interfaces: []usb.InterfaceConfig{
		{
			Descriptor: usb.InterfaceDescriptor{
				BNumEndpoints:      1,
				BInterfaceClass:    usb.ClassHID,
				BInterfaceSubClass: usb.SubclassBoot,
				BInterfaceProtocol: usb.ProtocolKeyboard,
			},
			HIDDescriptor: &usb.HIDDescriptor{
				BcdHID:          0x0111,
				BCountryCode:    0x21,
				BNumDescriptors: 1,
				ClassDescType:   usb.ReportDescType,
			},
			HIDReport: []byte{0x05, 0x01, 0x09, 0x06, 0xA1, 0x01, 0xC0},
			Endpoints: []usb.EndpointDescriptor{
				{BEndpointAddress: 0x81, BMAttributes: 0x03, WMaxPacketSize: 8, BInterval: 8},
			},
		},
	},
}

func TestDeviceDescriptorBytes(t *testing.T) {
	b := testDescriptor.Bytes()

	expected := []byte{
		18, usb.DeviceDescType,
		0x00, 0x02, // bcdUSB
		0x00, 0x00, 0x00, // class, subclass, protocol
		0x08,       // bMaxPacketSize0
		0xC0, 0x16, // idVendor
		0xDB, 0x27, // idProduct
		0x00, 0x01, // bcdDevice
		0x01, 0x02, 0x00, // string indexes
		0x01, // bNumConfigurations
	}
	assert.Equal(t, expected, b)
}

func TestConfigBytesLayout(t *testing.T) {
	b := testDescriptor.ConfigBytes()

	// config header + interface + HID class descriptor + one endpoint
	wantLen := usb.ConfigDescLen + usb.InterfaceDescLen + usb.HIDDescLen + usb.EndpointDescLen
	require.Len(t, b, wantLen)

	assert.Equal(t, byte(usb.ConfigDescLen), b[0])
	assert.Equal(t, byte(usb.ConfigDescType), b[1])
	assert.Equal(t, uint16(wantLen), binary.LittleEndian.Uint16(b[2:4]), "wTotalLength covers the whole set")
	assert.Equal(t, byte(1), b[4], "bNumInterfaces")
	assert.Equal(t, byte(usb.ConfigAttrBusPowered), b[7])

	iface := b[usb.ConfigDescLen:]
	assert.Equal(t, byte(usb.InterfaceDescType), iface[1])
	assert.Equal(t, byte(usb.ClassHID), iface[5])
	assert.Equal(t, byte(usb.SubclassBoot), iface[6])
	assert.Equal(t, byte(usb.ProtocolKeyboard), iface[7])

	hidDesc := iface[usb.InterfaceDescLen:]
	assert.Equal(t, byte(usb.HIDDescType), hidDesc[1])
	assert.Equal(t, byte(usb.ReportDescType), hidDesc[6])
	assert.Equal(t, uint16(7), binary.LittleEndian.Uint16(hidDesc[7:9]),
		"wDescriptorLength tracks the report blob")

	ep := hidDesc[usb.HIDDescLen:]
	assert.Equal(t, byte(usb.EndpointDescType), ep[1])
	assert.Equal(t, byte(0x81), ep[2])
	assert.Equal(t, uint16(8), binary.LittleEndian.Uint16(ep[4:6]))
	assert.Equal(t, byte(8), ep[6])
}

func TestEncodeStringDescriptor(t *testing.T) {
	b := usb.EncodeStringDescriptor("AB")

	assert.Equal(t, []byte{6, usb.StringDescType, 'A', 0x00, 'B', 0x00}, b)
}

func TestEncodeStringDescriptorEmpty(t *testing.T) {
	b := usb.EncodeStringDescriptor("")

	assert.Equal(t, []byte{2, usb.StringDescType}, b)
}
