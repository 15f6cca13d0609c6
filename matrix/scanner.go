package matrix

import "github.com/Alia5/KEYPER/hal"

// SettleDelayMicros is the pause after driving or releasing a column line,
// in microseconds. It must exceed the RC charge time of the matrix wiring;
// the trailing delay also lets a column discharge before its neighbour is
// strobed, preventing cross-talk.
const SettleDelayMicros = 10

// Scanner drives the column/row electrical scan and hands each raw sample to
// the debounce filter. The fixed-size pin arrays tie the scanner to the
// matrix geometry at compile time.
type Scanner struct {
	cols  [Cols]hal.OutputPin
	rows  [Rows]hal.InputPin
	delay hal.Delayer
	deb   Debouncer
}

// NewScanner returns a Scanner over the given drive and sense lines.
func NewScanner(cols [Cols]hal.OutputPin, rows [Rows]hal.InputPin, delay hal.Delayer, deb Debouncer) *Scanner {
	return &Scanner{cols: cols, rows: rows, delay: delay, deb: deb}
}

// Scan performs one full scan cycle and returns the debounced matrix.
// Columns are strobed in index order: drive high, settle, sample every row,
// drive low, settle. The complete raw matrix is then passed atomically to
// the debounce filter.
func (s *Scanner) Scan() Debounced {
	return s.deb.Update(s.ScanRaw())
}

// ScanRaw performs one electrical scan without debouncing. Its only intended
// caller besides Scan is the one-shot power-on bootloader check.
func (s *Scanner) ScanRaw() Raw {
	var raw Raw
	for c := range s.cols {
		s.cols[c].Set(true)
		s.delay.DelayMicroseconds(SettleDelayMicros)
		for r := range s.rows {
			raw[c][r] = s.rows[r].Get()
		}
		s.cols[c].Set(false)
		s.delay.DelayMicroseconds(SettleDelayMicros)
	}
	return raw
}
