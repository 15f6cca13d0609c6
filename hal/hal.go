// Package hal defines the hardware abstraction consumed by the scan and poll
// logic. Platform code (a TinyGo target, a test harness, the simulator)
// provides implementations; nothing in this module touches hardware directly.
package hal

import "time"

// InputPin is a digital input line, e.g. one matrix row sense line.
// Reads are infallible under the stated hardware assumptions; a future
// fault-capable HAL must introduce a distinct error-returning interface
// rather than hiding faults here.
type InputPin interface {
	Get() bool
}

// OutputPin is a digital output line, e.g. one matrix column drive line.
type OutputPin interface {
	Set(high bool)
}

// Delayer performs short busy-wait delays, used for matrix settle time.
type Delayer interface {
	DelayMicroseconds(us uint32)
}

// Countdown is a one-shot countdown timer driving the poll cadence.
// Start arms (or re-arms) the timer; Expired reports whether the armed
// period has elapsed, without blocking.
type Countdown interface {
	Start(d time.Duration)
	Expired() bool
}
