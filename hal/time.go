package hal

import "time"

// TimerCountdown is a wall-clock Countdown for host-side use (simulator,
// integration tests). On a microcontroller target this would be backed by
// the hardware timer instead.
type TimerCountdown struct {
	deadline time.Time
}

func (t *TimerCountdown) Start(d time.Duration) {
	t.deadline = time.Now().Add(d)
}

func (t *TimerCountdown) Expired() bool {
	return !time.Now().Before(t.deadline)
}

// SleepDelayer implements Delayer with time.Sleep. Host schedulers cannot
// honor microsecond precision, but for simulated pins the settle delay is
// semantic rather than electrical.
type SleepDelayer struct{}

func (SleepDelayer) DelayMicroseconds(us uint32) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}
