// Package backend hosts the thin terminal presentation layer: it owns
// no emulation state, only a tcell screen that blits the framebuffer
// and forwards key events to the machine.
package backend

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hollowcrest/pocketgb/pocketgb"
	"github.com/hollowcrest/pocketgb/pocketgb/input"
	"github.com/hollowcrest/pocketgb/pocketgb/timing"
	"github.com/hollowcrest/pocketgb/pocketgb/video"
)

// shadeChars renders the four 2-bit shades darkest-to-lightest as
// terminal block glyphs.
var shadeChars = [4]rune{'█', '▓', '▒', ' '}

// keyTimeout bounds how long a button stays "pressed" after its last
// matching key event. Terminals deliver no key-up event, only repeats
// while a key is held, so a press is released once no repeat arrives
// within this window.
const keyTimeout = 100 * time.Millisecond

// Terminal is a tcell-based host: it drives the machine one frame at
// a time, paints the framebuffer as shade glyphs (one glyph per pair
// of framebuffer rows), and turns key events into SetButton calls.
type Terminal struct {
	screen  tcell.Screen
	machine *pocketgb.Machine
	limiter timing.Limiter
	running bool
	pressed map[pocketgb.Button]time.Time
}

// NewTerminal creates a terminal host for the given machine.
func NewTerminal(m *pocketgb.Machine) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("backend: terminal init: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("backend: terminal init: %w", err)
	}

	return &Terminal{
		screen:  screen,
		machine: m,
		limiter: timing.NewAdaptiveLimiter(),
		running: true,
		pressed: make(map[pocketgb.Button]time.Time),
	}, nil
}

// Run drives the emulator until the window is closed or the core
// faults, returning the fault (if any) to the caller.
func (t *Terminal) Run() error {
	defer t.screen.Fini()

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	events := make(chan tcell.Event, 16)
	go func() {
		for t.running {
			events <- t.screen.PollEvent()
		}
	}()

	for t.running {
		select {
		case <-signals:
			t.running = false
			return nil
		case ev := <-events:
			t.handleEvent(ev)
		default:
			t.expireButtons()
			if err := t.machine.RunUntilVBlank(); err != nil {
				slog.Error("core fault", "error", err)
				return err
			}
			t.render()
			t.screen.Show()
			t.limiter.WaitForNextFrame()
		}
	}
	return nil
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			t.running = false
			return
		}
		if b, ok := input.Resolve(ev); ok {
			if _, held := t.pressed[b]; !held {
				t.machine.SetButton(b, true)
			}
			t.pressed[b] = time.Now()
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// expireButtons releases any button whose last matching key event is older
// than keyTimeout. Terminals deliver no key-up event, only repeats while a
// key is held, so release has to be inferred from silence.
func (t *Terminal) expireButtons() {
	now := time.Now()
	for b, last := range t.pressed {
		if now.Sub(last) >= keyTimeout {
			t.machine.SetButton(b, false)
			delete(t.pressed, b)
		}
	}
}

func (t *Terminal) render() {
	fb := t.machine.Framebuffer()
	for y := 0; y < video.Height; y += 2 {
		for x := 0; x < video.Width; x++ {
			top := fb.Index(x, y)
			bottom := uint8(3)
			if y+1 < video.Height {
				bottom = fb.Index(x, y+1)
			}
			t.screen.SetContent(x, y/2, blockGlyph(top, bottom), nil, tcell.StyleDefault)
		}
	}
}

// blockGlyph picks a single glyph approximating two stacked shaded
// pixels using the average of the pair, since the terminal has no
// native half-block-per-2-bit-shade primitive.
func blockGlyph(top, bottom uint8) rune {
	avg := (int(top) + int(bottom)) / 2
	return shadeChars[avg&0x03]
}
