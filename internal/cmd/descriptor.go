package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Alia5/KEYPER/hid"
)

// Descriptor dumps the descriptors the keyboard exposes to the host.
type Descriptor struct {
	Kind string `arg:"" optional:"" name:"kind" help:"Which descriptor to dump" enum:"all,device,config,report" default:"all"`
}

func (c *Descriptor) Run(logger *slog.Logger) error {
	kb := hid.NewKeyboard(nil)
	desc := kb.Descriptor()

	if c.Kind == "all" || c.Kind == "device" {
		dump("device descriptor", desc.Bytes())
	}
	if c.Kind == "all" || c.Kind == "config" {
		dump("configuration descriptor set", desc.ConfigBytes())
	}
	if c.Kind == "all" || c.Kind == "report" {
		dump("HID report descriptor", kb.ReportDescriptor())
	}
	return nil
}

func dump(name string, data []byte) {
	fmt.Printf("%s (%d bytes):\n", name, len(data))
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Printf("  %04x:", i)
		for _, b := range data[i:end] {
			fmt.Printf(" %02x", b)
		}
		fmt.Println()
	}
}
