// Package debounce provides the default temporal filter for raw matrix
// samples: a per-key integrating counter. Each cell's counter saturates
// towards the raw sample; the reported state flips only when the counter
// hits either rail, so a contact must read stable for DefaultThreshold
// consecutive cycles (~8 ms apart) before its logical state changes.
package debounce

import "github.com/Alia5/KEYPER/matrix"

// DefaultThreshold is the number of consecutive agreeing samples required
// to flip a key's logical state. At the 8 ms scan cadence this filters
// bounce up to ~24 ms without adding perceptible latency.
const DefaultThreshold = 3

// Integrator implements matrix.Debouncer with an integrating counter per
// matrix cell. The zero value is not usable; call New.
type Integrator struct {
	threshold uint8
	counters  [matrix.Cols][matrix.Rows]uint8
	state     matrix.Debounced
}

// New returns an Integrator with the given threshold. A threshold of 0 is
// clamped to 1, which makes the filter a pass-through.
func New(threshold uint8) *Integrator {
	if threshold == 0 {
		threshold = 1
	}
	return &Integrator{threshold: threshold}
}

// Update feeds one raw sample and returns the stabilized matrix.
func (d *Integrator) Update(raw matrix.Raw) matrix.Debounced {
	for c := 0; c < matrix.Cols; c++ {
		for r := 0; r < matrix.Rows; r++ {
			switch {
			case raw[c][r] && d.counters[c][r] < d.threshold:
				d.counters[c][r]++
				if d.counters[c][r] == d.threshold {
					d.state[c][r] = true
				}
			case !raw[c][r] && d.counters[c][r] > 0:
				d.counters[c][r]--
				if d.counters[c][r] == 0 {
					d.state[c][r] = false
				}
			}
		}
	}
	return d.state
}
