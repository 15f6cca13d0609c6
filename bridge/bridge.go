// Package bridge mediates between the two execution contexts of the
// firmware: the cooperative poll loop producing input reports and the
// interrupt-driven USB stack consuming them and producing LED output
// reports. It is the only place shared mutable state lives.
package bridge

import (
	"sync"

	"github.com/Alia5/KEYPER/hid"
	"github.com/Alia5/KEYPER/report"
	"github.com/Alia5/KEYPER/transport"
)

// Bridge owns the HID keyboard device and the transport hand-off. Every
// access path from either context goes through one of its methods; the
// internal mutex is the scoped critical section masking the competing
// context, and is held only for the single read-modify-write each method
// performs.
type Bridge struct {
	mu     sync.Mutex
	kb     *hid.Keyboard
	tr     transport.Transport
	queued report.Input // last report successfully handed to the transport
	pushed bool         // false until the first successful push
}

// New returns a Bridge over the given device and transport.
func New(kb *hid.Keyboard, tr transport.Transport) *Bridge {
	return &Bridge{kb: kb, tr: tr}
}

// Commit records rep as the current input report and pushes it to the
// transport. Transmission is suppressed when rep is byte-identical to the
// last successfully queued report, bounding bus traffic to state
// transitions. A push failure leaves the suppression state untouched, so
// the retry on the next period is not mistaken for a duplicate.
func (b *Bridge) Commit(rep report.Input) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.kb.SetInputReport(rep)
	if b.pushed && rep == b.queued {
		return nil
	}
	if err := b.tr.PushInput(rep); err != nil {
		return err
	}
	b.queued = rep
	b.pushed = true
	return nil
}

// GetReport services a host GET_REPORT from the interrupt context.
func (b *Bridge) GetReport(typ hid.ReportType, id uint8) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.kb.GetReport(typ, id)
}

// SetReport services a host SET_REPORT from the interrupt context.
func (b *Bridge) SetReport(typ hid.ReportType, id uint8, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.kb.SetReport(typ, id, data)
}
