package transport

import (
	"sync"

	"github.com/Alia5/KEYPER/report"
)

// Loopback is an in-process Transport backed by a single-slot queue,
// mirroring a one-packet interrupt IN endpoint: a push while the previous
// report is still unread fails with ErrWouldBlock. The simulator and tests
// play the host side by draining Reports.
type Loopback struct {
	mu     sync.Mutex
	ch     chan report.Input
	closed bool
}

// NewLoopback returns an open Loopback.
func NewLoopback() *Loopback {
	return &Loopback{ch: make(chan report.Input, 1)}
}

// PushInput implements Transport.
func (l *Loopback) PushInput(rep report.Input) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrInvalidState
	}
	select {
	case l.ch <- rep:
		return nil
	default:
		return ErrWouldBlock
	}
}

// Reports is the host-side read end of the endpoint.
func (l *Loopback) Reports() <-chan report.Input {
	return l.ch
}

// Close detaches the host. Subsequent pushes fail with ErrInvalidState.
func (l *Loopback) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.closed {
		l.closed = true
		close(l.ch)
	}
}
