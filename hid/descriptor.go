package hid

import "github.com/Alia5/KEYPER/usb"

// reportDescriptor is the boot-protocol keyboard report descriptor. Host
// drivers parse this blob to learn the report layout, so its byte encoding
// is compatibility-critical and reproduced exactly: 8 modifier bits, 1
// reserved byte, 6 array-type 8-bit key usages, 5 LED output bits plus 3
// constant padding bits.
var reportDescriptor = []byte{
	0x05, 0x01, //       Usage Page (Generic Desktop Ctrls)
	0x09, 0x06, //       Usage (Keyboard)
	0xA1, 0x01, //       Collection (Application)
	0x05, 0x07, //         Usage Page (Kbrd/Keypad)
	0x19, 0xE0, //         Usage Minimum (0xE0)
	0x29, 0xE7, //         Usage Maximum (0xE7)
	0x15, 0x00, //         Logical Minimum (0)
	0x25, 0x01, //         Logical Maximum (1)
	0x95, 0x08, //         Report Count (8)
	0x75, 0x01, //         Report Size (1)
	0x81, 0x02, //         Input (Data,Var,Abs)
	0x95, 0x01, //         Report Count (1)
	0x75, 0x08, //         Report Size (8)
	0x81, 0x03, //         Input (Const,Var,Abs)
	0x05, 0x07, //         Usage Page (Kbrd/Keypad)
	0x19, 0x00, //         Usage Minimum (0x00)
	0x29, 0xFF, //         Usage Maximum (0xFF)
	0x15, 0x00, //         Logical Minimum (0)
	0x26, 0xFF, 0x00, //   Logical Maximum (255)
	0x95, 0x06, //         Report Count (6)
	0x75, 0x08, //         Report Size (8)
	0x81, 0x00, //         Input (Data,Array,Abs)
	0x05, 0x08, //         Usage Page (LEDs)
	0x19, 0x01, //         Usage Minimum (Num Lock)
	0x29, 0x05, //         Usage Maximum (Kana)
	0x95, 0x05, //         Report Count (5)
	0x75, 0x01, //         Report Size (1)
	0x91, 0x02, //         Output (Data,Var,Abs)
	0x95, 0x01, //         Report Count (1)
	0x75, 0x03, //         Report Size (3)
	0x91, 0x03, //         Output (Const,Var,Abs)
	0xC0, //             End Collection
}

// defaultDescriptor is the static USB descriptor set for the keyboard.
// The VID/PID pair is from the V-USB shared keyboard range.
var defaultDescriptor = usb.Descriptor{
	Device: usb.DeviceDescriptor{
		BcdUSB:             0x0200,
		BDeviceClass:       0x00,
		BDeviceSubClass:    0x00,
		BDeviceProtocol:    0x00,
		BMaxPacketSize0:    0x08,
		IDVendor:           0x16C0,
		IDProduct:          0x27DB,
		BcdDevice:          0x0100,
		IManufacturer:      0x01,
		IProduct:           0x02,
		ISerialNumber:      0x00,
		BNumConfigurations: 0x01,
	},
	Interfaces: []usb.InterfaceConfig{
		{
			Descriptor: usb.InterfaceDescriptor{
				BInterfaceNumber:   0x00,
				BAlternateSetting:  0x00,
				BNumEndpoints:      0x01,
				BInterfaceClass:    usb.ClassHID,
				BInterfaceSubClass: usb.SubclassBoot,
				BInterfaceProtocol: usb.ProtocolKeyboard,
				IInterface:         0x00,
			},
			HIDDescriptor: &usb.HIDDescriptor{
				BcdHID:          0x0111,
				BCountryCode:    0x21, // US
				BNumDescriptors: 0x01,
				ClassDescType:   usb.ReportDescType,
			},
			HIDReport: reportDescriptor,
			Endpoints: []usb.EndpointDescriptor{
				{
					BEndpointAddress: 0x81, // interrupt IN
					BMAttributes:     0x03,
					WMaxPacketSize:   0x0008,
					BInterval:        0x08, // 8 ms, the scan cadence
				},
			},
		},
	},
	Strings: map[uint8]string{
		1: "KEYPER",
		2: "key ripper",
	},
}

// Descriptor returns the keyboard's static USB descriptor set.
func (k *Keyboard) Descriptor() usb.Descriptor {
	return defaultDescriptor
}
