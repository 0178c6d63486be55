package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/dropchain/audio"
	"github.com/lixenwraith/dropchain/config"
	"github.com/lixenwraith/dropchain/core"
	dlog "github.com/lixenwraith/dropchain/log"
	"github.com/lixenwraith/dropchain/metrics"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write debug logs to the configured log file")
	configFlag = flag.String("config", "", "Config file path (default: DROPCHAIN_CONFIG or ./dropchain.toml)")
	muteFlag   = flag.Bool("mute", false, "Start with audio cues muted")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Log.Level
	if *debugFlag {
		level = "debug"
	}
	logFile, err := setupLogging(*debugFlag, cfg.Log.File, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger := dlog.WithComponent("demo")

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)

	// Panic recovery: restore the terminal before printing the trace
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		core.HandleCrash(recover())
	}()

	// Audio is optional; the player stays silent when the device cannot be opened
	player := audio.NewPlayer()
	if cfg.Audio.Enabled {
		if err := player.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
		} else {
			defer player.Cleanup()
		}
	}
	player.SetMuted(*muteFlag)

	stats, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to register metrics: %v\n", err)
		os.Exit(1)
	}

	a, err := newApp(screen, cfg, player, stats, logger)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build layout: %v\n", err)
		os.Exit(1)
	}

	logger.Info().
		Int("slots", len(cfg.Layout.Slots)).
		Str("strategy", cfg.Layout.Strategy).
		Str("layout", a.coord.Slots().String()).
		Msg("demo started")

	a.run()
	core.SetCrashCleanup(nil)
	screen.Fini()

	totals := stats.Totals()
	logger.Info().
		Int("started", totals.Started).
		Int("drops", totals.Drops).
		Int("cancels", totals.Cancels).
		Int("rejected", totals.Rejected).
		Str("layout", a.coord.Slots().String()).
		Msg("demo finished")
}

// run polls the screen on its own goroutine and applies events on this one
func (a *app) run() {
	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	a.draw()
	for ev := range eventChan {
		in := a.machine.Process(ev)
		if in == nil {
			continue
		}
		if !a.handle(in) {
			return
		}
		a.draw()
	}
}
