// Package firmware wires the scan pipeline together and runs the main poll
// loop: scan, debounce, layer-resolve, encode, commit, at a fixed cadence.
package firmware

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/Alia5/KEYPER/bridge"
	"github.com/Alia5/KEYPER/hal"
	"github.com/Alia5/KEYPER/keymap"
	"github.com/Alia5/KEYPER/matrix"
	"github.com/Alia5/KEYPER/transport"
)

// Bootloader hands control to the bootloader-entry mechanism. On real
// hardware Enter never returns; the controller treats it as the irreversible
// end of the firmware's life either way.
type Bootloader interface {
	Enter()
}

// Poll cadence. The first period is long so the initial push cannot land
// before the USB stack is ready; going below 8 ms afterwards would need a
// tighter debounce threshold.
const (
	FirstScanPeriod = 500 * time.Millisecond
	ScanPeriod      = 8 * time.Millisecond
)

// Controller is the cooperative main loop. It owns no shared state itself;
// everything the interrupt context can also touch lives behind the bridge.
type Controller struct {
	scanner *matrix.Scanner
	keymap  *keymap.Keymap
	bridge  *bridge.Bridge
	timer   hal.Countdown
	boot    Bootloader
	logger  *slog.Logger
}

// NewController assembles a controller. logger must not be nil; boot may be
// nil when no bootloader-entry mechanism exists (the power-on check then
// degrades to a no-op).
func NewController(scanner *matrix.Scanner, km *keymap.Keymap, br *bridge.Bridge, timer hal.Countdown, boot Bootloader, logger *slog.Logger) *Controller {
	return &Controller{
		scanner: scanner,
		keymap:  km,
		bridge:  br,
		timer:   timer,
		boot:    boot,
		logger:  logger,
	}
}

// Run performs the one-shot power-on bootloader check and then polls until
// ctx is cancelled. No failure propagates past this loop: pushes that would
// block are retried next period, hard transport errors are logged and the
// loop carries on.
func (c *Controller) Run(ctx context.Context) error {
	raw := c.scanner.ScanRaw()
	if raw[keymap.BootloaderPos.Col][keymap.BootloaderPos.Row] && c.boot != nil {
		c.logger.Info("bootloader key held at power-on, entering bootloader")
		c.boot.Enter()
		return nil
	}

	c.timer.Start(FirstScanPeriod)
	c.logger.Info("starting poll loop", "period", ScanPeriod)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !c.timer.Expired() {
			runtime.Gosched()
			continue
		}

		m := c.scanner.Scan()
		layer := c.keymap.Active(m)
		rep := layer.Encode(m)

		err := c.bridge.Commit(rep)
		switch {
		case err == nil:
		case errors.Is(err, transport.ErrWouldBlock):
			c.logger.Warn("input report push would block, retrying next period")
		default:
			c.logger.Error("input report push failed", "error", err)
		}

		// The timer is re-armed only after the push attempt resolves, so at
		// most one push happens per elapsed period.
		c.timer.Start(ScanPeriod)
	}
}
