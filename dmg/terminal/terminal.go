// Package terminal is the in-repo host front end: it renders frames as
// shade characters with tcell and feeds key presses into the joypad
// snapshot. It exercises the same listener surface a windowed host would.
package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/valerio/go-dmg/dmg"
	"github.com/valerio/go-dmg/dmg/joypad"
	"github.com/valerio/go-dmg/dmg/timing"
	"github.com/valerio/go-dmg/dmg/video"
)

// Terminal characters are taller than wide; scale the width to keep the
// aspect ratio approximately right.
const (
	scaleX = 2
	scaleY = 1
)

// shadeChars maps the four DMG shades, lightest to darkest.
var shadeChars = [4]rune{' ', '░', '▒', '█'}

// keyHoldFrames is how long a key press stays latched: terminals report
// key-down events only, so presses decay after a few frames.
const keyHoldFrames = 6

// Frontend drives an emulator and renders to the terminal.
type Frontend struct {
	screen tcell.Screen
	emu    *dmg.Emulator

	keys      joypad.KeySet
	keyExpiry [8]int
	frame     int

	running bool
}

// New initializes the terminal screen.
func New(emu *dmg.Emulator) (*Frontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	return &Frontend{
		screen:  screen,
		emu:     emu,
		running: true,
	}, nil
}

// Run executes frames at the Game Boy cadence until Escape or a signal.
func (t *Frontend) Run() error {
	defer func() {
		slog.Info("Finishing terminal")
		t.screen.Fini()
	}()

	t.screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	t.screen.Clear()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- t.screen.PollEvent()
		}
	}()

	limiter := timing.NewTickerLimiter()
	defer limiter.Stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for t.running {
		select {
		case <-signals:
			slog.Info("Received signal to stop")
			return nil
		case ev := <-events:
			t.handleEvent(ev)
		default:
		}

		t.expireKeys()
		if err := t.emu.RunFrame(); err != nil {
			return err
		}
		t.render(t.emu.Framebuffer())
		t.screen.Show()
		t.frame++

		limiter.WaitForNextFrame()
	}

	return nil
}

func (t *Frontend) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape {
			t.running = false
			return
		}
		if key, ok := mapKey(ev); ok {
			t.pressKey(key)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func mapKey(ev *tcell.EventKey) (joypad.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return joypad.Up, true
	case tcell.KeyDown:
		return joypad.Down, true
	case tcell.KeyLeft:
		return joypad.Left, true
	case tcell.KeyRight:
		return joypad.Right, true
	case tcell.KeyEnter:
		return joypad.Start, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return joypad.Select, true
	}
	switch ev.Rune() {
	case 'z', 'Z':
		return joypad.A, true
	case 'x', 'X':
		return joypad.B, true
	}
	return 0, false
}

func (t *Frontend) pressKey(key joypad.Key) {
	t.keys = t.keys.With(key)
	t.keyExpiry[key] = t.frame + keyHoldFrames
	t.emu.UpdatePressedKeys(t.keys)
}

// expireKeys releases latched keys whose hold window has passed.
func (t *Frontend) expireKeys() {
	changed := false
	for key := joypad.Right; key <= joypad.Start; key++ {
		if t.keys.Has(key) && t.frame >= t.keyExpiry[key] {
			t.keys = t.keys.Without(key)
			changed = true
		}
	}
	if changed {
		t.emu.UpdatePressedKeys(t.keys)
	}
}

func (t *Frontend) render(fb *video.Framebuffer) {
	t.screen.Clear()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			char := shadeChars[fb.GetPixel(x, y)]
			screenX := x * scaleX
			screenY := y * scaleY
			for sx := 0; sx < scaleX; sx++ {
				t.screen.SetContent(screenX+sx, screenY, char, nil, style)
			}
		}
	}
}
