package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/Alia5/KEYPER/bridge"
	"github.com/Alia5/KEYPER/debounce"
	"github.com/Alia5/KEYPER/firmware"
	"github.com/Alia5/KEYPER/hal"
	"github.com/Alia5/KEYPER/hid"
	"github.com/Alia5/KEYPER/internal/log"
	"github.com/Alia5/KEYPER/keycode"
	"github.com/Alia5/KEYPER/keymap"
	"github.com/Alia5/KEYPER/matrix"
	"github.com/Alia5/KEYPER/transport"
)

// Sim runs the whole pipeline on the host: typed characters close matrix
// switches for a short hold time, the poll loop scans and encodes them, and
// emitted input reports are printed as a host would see them. Ctrl-N and
// Ctrl-T toggle the NumLock/CapsLock LEDs through the output-report path.
type Sim struct {
	Keymap string        `help:"Keymap file overriding the built-in layout (.json/.yaml/.toml)" env:"KEYPER_SIM_KEYMAP"`
	Hold   time.Duration `help:"How long a typed key stays pressed" default:"60ms"`
}

func (c *Sim) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	km := &keymap.Default
	if c.Keymap != "" {
		loaded, err := keymap.Load(c.Keymap)
		if err != nil {
			return err
		}
		km = loaded
	}

	board := newSimBoard()
	scanner := matrix.NewScanner(board.Cols(), board.Rows(), noDelay{}, debounce.New(1))

	lb := transport.NewLoopback()
	defer lb.Close()

	kb := hid.NewKeyboard(&logLeds{logger: logger})
	br := bridge.New(kb, lb)
	ctrl := firmware.NewController(scanner, km, br, &hal.TimerCountdown{}, nil, logger)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, old) }()
	}

	logger.Info("simulator running; type keys, Ctrl-N/Ctrl-T toggle LEDs, Ctrl-C quits")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Host side: drain the endpoint and print each report.
	go func() {
		for rep := range lb.Reports() {
			rawLogger.Log(true, rep.Bytes())
			logger.Info("input report",
				"modifiers", fmt.Sprintf("%#02x", rep.Modifiers()),
				"keys", reportKeyNames(rep.Keys()))
		}
	}()

	// Keystroke reader: each typed character closes its matrix switch.
	go func() {
		defer cancel()
		index := positionIndex(&km.Normal)
		var leds uint8
		buf := make([]byte, 1)
		for {
			if _, err := os.Stdin.Read(buf); err != nil {
				return
			}
			switch buf[0] {
			case 0x03, 0x04: // Ctrl-C / Ctrl-D
				return
			case 0x0E: // Ctrl-N
				leds ^= hid.LEDNumLock
				c.setLEDs(br, rawLogger, logger, leds)
			case 0x14: // Ctrl-T
				leds ^= hid.LEDCapsLock
				c.setLEDs(br, rawLogger, logger, leds)
			default:
				kc := charToKey(buf[0])
				pos, ok := index[kc]
				if !ok {
					continue
				}
				board.PressFor(pos, c.Hold)
			}
		}
	}()

	err := ctrl.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (c *Sim) setLEDs(br *bridge.Bridge, rawLogger log.RawLogger, logger *slog.Logger, leds uint8) {
	rawLogger.Log(false, []byte{leds})
	if err := br.SetReport(hid.ReportOutput, 0, []byte{leds}); err != nil {
		logger.Error("set LED report failed", "error", err)
	}
}

// positionIndex inverts a layer table: key identity to matrix position.
func positionIndex(l *keymap.Layer) map[keycode.KeyCode]keymap.Pos {
	index := make(map[keycode.KeyCode]keymap.Pos)
	for c := 0; c < matrix.Cols; c++ {
		for r := 0; r < matrix.Rows; r++ {
			kc := l[c][r]
			if kc == keycode.Empty {
				continue
			}
			if _, seen := index[kc]; !seen {
				index[kc] = keymap.Pos{Col: c, Row: r}
			}
		}
	}
	return index
}

func reportKeyNames(keys [6]byte) string {
	var names []string
	for _, k := range keys {
		if k != 0 {
			names = append(names, keycode.KeyCode(k).String())
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "+")
}

// charToKey maps a typed ASCII byte to the key identity it sits on.
// Shift composition is out of scope for the simulator; uppercase letters
// land on the same switch as their lowercase forms.
func charToKey(b byte) keycode.KeyCode {
	switch {
	case b >= 'a' && b <= 'z':
		return keycode.A + keycode.KeyCode(b-'a')
	case b >= 'A' && b <= 'Z':
		return keycode.A + keycode.KeyCode(b-'A')
	case b == '0':
		return keycode.Num0
	case b >= '1' && b <= '9':
		return keycode.Num1 + keycode.KeyCode(b-'1')
	}
	switch b {
	case ' ':
		return keycode.Space
	case '\r', '\n':
		return keycode.Enter
	case '\t':
		return keycode.Tab
	case 0x1B:
		return keycode.Escape
	case 0x7F, 0x08:
		return keycode.Backspace
	case '-':
		return keycode.Minus
	case '=':
		return keycode.Equal
	case '[':
		return keycode.LeftBrace
	case ']':
		return keycode.RightBrace
	case '\\':
		return keycode.Backslash
	case ';':
		return keycode.Semicolon
	case '\'':
		return keycode.Apostrophe
	case '`':
		return keycode.Grave
	case ',':
		return keycode.Comma
	case '.':
		return keycode.Period
	case '/':
		return keycode.Slash
	default:
		return keycode.Empty
	}
}

// simBoard emulates the matrix electrically, like the hardware harness used
// in tests: a row reads high only while its driven column has a closed
// switch. Switches stay closed until their hold deadline passes.
type simBoard struct {
	mu     sync.Mutex
	until  [matrix.Cols][matrix.Rows]time.Time
	driven int
}

func newSimBoard() *simBoard {
	return &simBoard{driven: -1}
}

func (b *simBoard) PressFor(p keymap.Pos, hold time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.until[p.Col][p.Row] = time.Now().Add(hold)
}

func (b *simBoard) Cols() [matrix.Cols]hal.OutputPin {
	var cols [matrix.Cols]hal.OutputPin
	for c := range cols {
		cols[c] = &simColPin{b: b, idx: c}
	}
	return cols
}

func (b *simBoard) Rows() [matrix.Rows]hal.InputPin {
	var rows [matrix.Rows]hal.InputPin
	for r := range rows {
		rows[r] = &simRowPin{b: b, idx: r}
	}
	return rows
}

type simColPin struct {
	b   *simBoard
	idx int
}

func (p *simColPin) Set(high bool) {
	p.b.mu.Lock()
	defer p.b.mu.Unlock()
	if high {
		p.b.driven = p.idx
	} else if p.b.driven == p.idx {
		p.b.driven = -1
	}
}

type simRowPin struct {
	b   *simBoard
	idx int
}

func (p *simRowPin) Get() bool {
	p.b.mu.Lock()
	defer p.b.mu.Unlock()
	return p.b.driven >= 0 && time.Now().Before(p.b.until[p.b.driven][p.idx])
}

// noDelay skips settle delays; simulated pins have no RC charge time.
type noDelay struct{}

func (noDelay) DelayMicroseconds(uint32) {}

// logLeds surfaces host-driven indicator changes in the simulator log.
type logLeds struct {
	logger *slog.Logger
}

func (l *logLeds) NumLock(on bool)    { l.logger.Info("led", "num_lock", on) }
func (l *logLeds) CapsLock(on bool)   { l.logger.Info("led", "caps_lock", on) }
func (l *logLeds) ScrollLock(on bool) { l.logger.Info("led", "scroll_lock", on) }
func (l *logLeds) Compose(on bool)    { l.logger.Info("led", "compose", on) }
func (l *logLeds) Kana(on bool)       { l.logger.Info("led", "kana", on) }
