// spinwheel renders a weighted prize wheel in the terminal. Space or
// a click inside the wheel spins it; Esc, Ctrl-C, or q quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/spinwheel/audio"
	"github.com/lixenwraith/spinwheel/config"
	"github.com/lixenwraith/spinwheel/render"
	"github.com/lixenwraith/spinwheel/spin"
	"github.com/lixenwraith/spinwheel/wheel"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	debugFlag = flag.Bool("debug", false, "Write logs to logs/spinwheel.log")
	muteFlag  = flag.Bool("mute", false, "Disable tick sounds")
)

type game struct {
	screen     tcell.Screen
	controller *spin.Controller
	renderer   *render.Renderer
	cfg        config.Resolved
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	// Optional .env overlay for the SPINWHEEL_* audio overrides.
	_ = godotenv.Load()

	cfg := config.Load(flag.Arg(0)).Resolve()

	audioOpts := audio.LoadOptions()
	if *muteFlag {
		audioOpts.Enabled = false
	}

	// An unavailable audio device is a startup failure; there is no
	// silent degraded mode. Per-tick drops later are fine.
	player, err := audio.NewPlayer(audioOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize audio: %v\n", err)
		os.Exit(1)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	// Restore the terminal before printing a crash, or the trace is
	// unreadable in raw mode.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSPINWHEEL CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	g, err := newGame(screen, cfg, player)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build wheel: %v\n", err)
		os.Exit(1)
	}

	g.run()
}

func newGame(screen tcell.Screen, cfg config.Resolved, player *audio.Player) (*game, error) {
	specs := make([]wheel.SegmentSpec, 0, len(cfg.Segments))
	for _, s := range cfg.Segments {
		specs = append(specs, wheel.SegmentSpec{Label: s.Label, Weight: s.Weight, Color: s.Color})
	}

	w, err := wheel.New(specs)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	tick := func(p spin.TickParams) {
		player.PlayTick(p.Freq, p.Gain, p.Duration)
	}

	centerColor, ok := wheel.ParseHex(cfg.CenterColor)
	if !ok {
		centerColor = tcell.NewRGBColor(32, 32, 32)
	}

	renderer := render.New(screen, render.Options{
		CenterColor:       centerColor,
		CenterRadiusRatio: cfg.CenterRadiusRatio,
		ShowBorders:       cfg.ShowSegmentBorders,
		ShowLabels:        cfg.LabelFontSize > 0,
		ShowWinner:        cfg.WinnerFontSize > 0,
	})

	return &game{
		screen:     screen,
		controller: spin.NewController(w, rng, cfg.SpinDuration, tick),
		renderer:   renderer,
		cfg:        cfg,
	}, nil
}

func (g *game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			g.controller.Advance(dt)
			g.draw()
		}
	}
}

func (g *game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			g.requestSpin()
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if g.renderer.Layout().Contains(x, y) {
				g.requestSpin()
			}
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true
}

func (g *game) requestSpin() {
	if g.controller.RequestSpin() {
		log.Printf("spin started from %.3f rad", g.controller.Rotation())
	}
}

func (g *game) draw() {
	winner := ""
	if label, ok := g.controller.Winner(); ok {
		winner = g.cfg.RenderWinner(label)
	}
	g.renderer.Draw(g.controller.Wheel(), g.controller.Rotation(), winner)
}
