// Package testing holds shared fakes for exercising the scan pipeline
// without hardware: an electrical matrix harness, a manual countdown timer,
// a capturing transport and recording LED/bootloader collaborators.
package testing

import (
	"sync"
	"time"

	"github.com/Alia5/KEYPER/hal"
	"github.com/Alia5/KEYPER/matrix"
	"github.com/Alia5/KEYPER/report"
)

// MatrixHarness emulates the switch matrix wiring: a row line reads high
// only while the column currently driven high has a pressed switch at that
// intersection. It is safe for concurrent use so tests can press keys while
// the poll loop runs.
type MatrixHarness struct {
	mu      sync.Mutex
	pressed matrix.Raw
	driven  int // currently driven column, -1 when none

	DelayCalls  int
	DelayMicros uint32
}

// NewMatrixHarness returns a harness with no keys pressed.
func NewMatrixHarness() *MatrixHarness {
	return &MatrixHarness{driven: -1}
}

// Press closes the switch at (col, row).
func (h *MatrixHarness) Press(col, row int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pressed[col][row] = true
}

// Release opens the switch at (col, row).
func (h *MatrixHarness) Release(col, row int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pressed[col][row] = false
}

// SetAll replaces the whole pressed state at once.
func (h *MatrixHarness) SetAll(pressed matrix.Raw) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pressed = pressed
}

// Cols returns the column drive pins.
func (h *MatrixHarness) Cols() [matrix.Cols]hal.OutputPin {
	var cols [matrix.Cols]hal.OutputPin
	for c := range cols {
		cols[c] = &colPin{h: h, idx: c}
	}
	return cols
}

// Rows returns the row sense pins.
func (h *MatrixHarness) Rows() [matrix.Rows]hal.InputPin {
	var rows [matrix.Rows]hal.InputPin
	for r := range rows {
		rows[r] = &rowPin{h: h, idx: r}
	}
	return rows
}

// DelayMicroseconds implements hal.Delayer, counting settle delays instead
// of waiting.
func (h *MatrixHarness) DelayMicroseconds(us uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.DelayCalls++
	h.DelayMicros += us
}

type colPin struct {
	h   *MatrixHarness
	idx int
}

func (p *colPin) Set(high bool) {
	p.h.mu.Lock()
	defer p.h.mu.Unlock()
	if high {
		p.h.driven = p.idx
	} else if p.h.driven == p.idx {
		p.h.driven = -1
	}
}

type rowPin struct {
	h   *MatrixHarness
	idx int
}

func (p *rowPin) Get() bool {
	p.h.mu.Lock()
	defer p.h.mu.Unlock()
	return p.h.driven >= 0 && p.h.pressed[p.h.driven][p.idx]
}

// Countdown implements hal.Countdown under test control. With AutoFire set
// it reports expired on every check; otherwise Fire arms a single expiry.
type Countdown struct {
	mu       sync.Mutex
	AutoFire bool
	fired    bool
	started  []time.Duration
}

func (t *Countdown) Start(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.started = append(t.started, d)
	t.fired = false
}

func (t *Countdown) Expired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.AutoFire {
		return true
	}
	f := t.fired
	t.fired = false
	return f
}

// Fire makes the next Expired call return true once.
func (t *Countdown) Fire() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fired = true
}

// Started returns a copy of every period the loop armed, in order.
func (t *Countdown) Started() []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]time.Duration, len(t.started))
	copy(out, t.started)
	return out
}

// CaptureTransport records pushed reports and can be scripted to fail.
type CaptureTransport struct {
	mu     sync.Mutex
	pushes []report.Input
	errs   []error // consumed front-first; nil entries mean success
}

// FailWith queues errors to return from the next pushes, in order.
func (t *CaptureTransport) FailWith(errs ...error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errs = append(t.errs, errs...)
}

func (t *CaptureTransport) PushInput(rep report.Input) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.errs) > 0 {
		err := t.errs[0]
		t.errs = t.errs[1:]
		if err != nil {
			return err
		}
	}
	t.pushes = append(t.pushes, rep)
	return nil
}

// Pushes returns a copy of every successfully pushed report, in order.
func (t *CaptureTransport) Pushes() []report.Input {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]report.Input, len(t.pushes))
	copy(out, t.pushes)
	return out
}

// Leds records the last value of each indicator.
type Leds struct {
	Num    bool
	Caps   bool
	Scroll bool
	Comp   bool
	Kan    bool
}

func (l *Leds) NumLock(on bool)    { l.Num = on }
func (l *Leds) CapsLock(on bool)   { l.Caps = on }
func (l *Leds) ScrollLock(on bool) { l.Scroll = on }
func (l *Leds) Compose(on bool)    { l.Comp = on }
func (l *Leds) Kana(on bool)       { l.Kan = on }

// Bootloader records whether bootloader entry was requested.
type Bootloader struct {
	Entered bool
}

func (b *Bootloader) Enter() { b.Entered = true }
