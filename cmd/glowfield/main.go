package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/lixenwraith/glowfield/audio"
	"github.com/lixenwraith/glowfield/effect"
	"github.com/lixenwraith/glowfield/gesture"
	"github.com/lixenwraith/glowfield/parameter"
	"github.com/lixenwraith/glowfield/render"
	"github.com/lixenwraith/glowfield/stage"
)

var (
	rendererFlag = flag.String("renderer", "term", "Renderer backend: 'term' or 'window'")
	effectFlag   = flag.String("effect", "galaxy", "Starting effect: galaxy, rain, wave, sphere, text, cake, firework")
	countFlag    = flag.Int("count", 0, "Particle count (0 = effect default)")
	sizeFlag     = flag.Float64("size", 0, "Particle point size (0 = effect default)")
	speedFlag    = flag.Float64("speed", 0, "Motion speed multiplier (0 = effect default)")
	textFlag     = flag.String("text", "", "Text for the text-morph effect and cake plaque")
	wsFlag       = flag.String("ws", "", "Detection feed endpoint (ws://...); empty runs without a feed")
	categoryFlag = flag.String("category", "cake", "Object category the feed watches for")
	scoreFlag    = flag.Float64("min-score", parameter.FeedMinScore, "Minimum detection confidence")
	seedFlag     = flag.Uint64("seed", 0, "Generator seed (0 = time-based)")
	muteFlag     = flag.Bool("mute", false, "Disable the gesture audio cue")
	logFlag      = flag.String("log", "", "Log file path (empty disables logging)")
)

func main() {
	flag.Parse()

	logger := newLogger(*logFlag)
	defer logger.Sync()

	kind, ok := effect.ParseKind(*effectFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown effect: %s\n", *effectFlag)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cue := audio.NewCue()
	if !*muteFlag {
		if err := cue.Init(); err != nil {
			// Audio is a garnish; the show goes on silent
			logger.Warn("audio init failed, continuing silent", zap.Error(err))
		}
	}
	defer cue.Close()

	switch *rendererFlag {
	case "term":
		runTerminal(kind, cue, seed, logger)
	case "window":
		runWindow(kind, cue, seed, logger)
	default:
		fmt.Fprintf(os.Stderr, "Unknown renderer: %s\n", *rendererFlag)
		os.Exit(1)
	}
}

// configFor derives the per-activation config from the kind defaults with
// flag overrides applied on top
func configFor(kind effect.Kind) effect.Config {
	cfg := effect.DefaultConfig(kind)
	if *countFlag > 0 {
		cfg.Count = *countFlag
	}
	if *sizeFlag > 0 {
		cfg.Size = *sizeFlag
	}
	if *speedFlag > 0 {
		cfg.Speed = *speedFlag
	}
	if *textFlag != "" {
		cfg.Text = *textFlag
	}
	return cfg
}

// startFeed launches the detection feed when an endpoint is configured.
// Returns nil with no endpoint; the caller falls back to keyboard gestures.
func startFeed(d *stage.Director, logger *zap.Logger) *gesture.Feed {
	if *wsFlag == "" {
		return nil
	}
	feed := gesture.NewFeed(*wsFlag, *categoryFlag, *scoreFlag, parameter.FeedRedialDelay, d.SetGesture, logger)
	go feed.Run()
	return feed
}

func runTerminal(kind effect.Kind, cue stage.Cue, seed uint64, logger *zap.Logger) {
	term, err := render.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			term.Fini()
			fmt.Fprintf(os.Stderr, "\nGLOWFIELD CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer term.Fini()

	d := stage.New(term, cue, seed)
	d.Activate(kind, configFor(kind))
	term.SetStatus(statusLine(kind, false))
	defer d.Teardown()

	feed := startFeed(d, logger)
	if feed != nil {
		defer feed.Close()
	}

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := term.Screen().PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	start := time.Now()
	manualGesture := false
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.Tick(time.Since(start).Seconds())

		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				term.HandleResize()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return
				case ev.Rune() >= '1' && ev.Rune() <= '7':
					next := effect.Kind(ev.Rune() - '1')
					d.Activate(next, configFor(next))
					term.SetStatus(statusLine(next, manualGesture))
					logger.Info("effect switched", zap.Stringer("kind", next))
				case ev.Rune() == ' ' && feed == nil:
					// Keyboard stand-in for the gesture when no feed runs
					manualGesture = !manualGesture
					d.SetGesture(manualGesture)
					if k, ok := d.ActiveKind(); ok {
						term.SetStatus(statusLine(k, manualGesture))
					}
				}
			}
		}
	}
}

func runWindow(kind effect.Kind, cue stage.Cue, seed uint64, logger *zap.Logger) {
	var d *stage.Director
	var feed *gesture.Feed
	manualGesture := false

	win := render.NewWindow(func(elapsed, dt float64) error {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		for key := ebiten.KeyDigit1; key <= ebiten.KeyDigit7; key++ {
			if inpututil.IsKeyJustPressed(key) {
				next := effect.Kind(key - ebiten.KeyDigit1)
				d.Activate(next, configFor(next))
				logger.Info("effect switched", zap.Stringer("kind", next))
			}
		}
		if feed == nil && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			manualGesture = !manualGesture
			d.SetGesture(manualGesture)
		}

		d.Tick(elapsed)
		return nil
	})

	d = stage.New(win, cue, seed)
	d.Activate(kind, configFor(kind))
	defer d.Teardown()

	feed = startFeed(d, logger)
	if feed != nil {
		defer feed.Close()
	}

	if err := win.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Window loop failed: %v\n", err)
		os.Exit(1)
	}
}

// statusLine renders the bottom-left readout for the terminal backend
func statusLine(kind effect.Kind, gesture bool) string {
	state := "idle"
	if gesture {
		state = "active"
	}
	return fmt.Sprintf(" %s | gesture %s | 1-7 switch  space gesture  q quit ", kind, state)
}

// newLogger builds a development logger into the given file, or a nop logger
// with no path. Logging to the terminal would fight the renderer for the
// screen, so there is no stderr default.
func newLogger(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return zap.NewNop()
	}
	return logger
}
