// Package transport defines the push-side contract between the firmware core
// and the external USB stack, and the error kinds that stack can surface.
package transport

import (
	"errors"

	"github.com/Alia5/KEYPER/report"
)

// Transient failure: the push could not complete immediately. Recovered
// locally by deferring to the next scan period; the next cycle re-encodes
// current matrix state rather than queueing this one.
var ErrWouldBlock = errors.New("transport: would block")

// Hard failures. These indicate a transport-layer condition outside the
// core's control; the firmware logs them and carries on with the next cycle.
var (
	ErrParse            = errors.New("transport: parse error")
	ErrBufferOverflow   = errors.New("transport: buffer overflow")
	ErrEndpointOverflow = errors.New("transport: endpoint overflow")
	ErrInvalidEndpoint  = errors.New("transport: invalid endpoint")
	ErrUnsupported      = errors.New("transport: unsupported operation")
	ErrInvalidState     = errors.New("transport: invalid state")
)

// Transport queues one encoded input report toward the host. PushInput is
// fail-fast: it either queues immediately or returns ErrWouldBlock (or a
// hard error); it never blocks the caller.
type Transport interface {
	PushInput(rep report.Input) error
}
