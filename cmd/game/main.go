// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"

	"hex-mockup/internal/config"
	"hex-mockup/internal/event"
	"hex-mockup/internal/game"
	"hex-mockup/internal/state"
	"hex-mockup/internal/utils"
	"hex-mockup/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.stateMachine.Layout(outsideWidth, outsideHeight)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "terrain seed (overrides the config file, 0 = random)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		slog.Error("bad log level", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stdout, level)
	slog.SetDefault(logger)

	if *pprofAddr != "" {
		go func() {
			slog.Info("pprof listening", "addr", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				slog.Warn("pprof stopped", "error", err)
			}
		}()
	}

	rng := utils.NewPRNGService(cfg.Seed)
	grid, err := hexmap.BuildGrid(cfg.Grid.Width, cfg.Grid.Height, rng)
	if err != nil {
		slog.Error("failed to build grid", "error", err)
		os.Exit(1)
	}

	dispatcher := event.NewDispatcher()
	session := game.NewSession(grid, cfg.Layout(), dispatcher, logger)
	slog.Info("session started", "session", session.ID.String(), "seed", rng.Seed())
	session.LogSummary()

	sm := state.NewStateMachine()
	gs, err := state.NewGameState(sm, cfg, session, dispatcher, logger)
	if err != nil {
		slog.Error("failed to create game state", "error", err)
		os.Exit(1)
	}
	sm.SetState(gs)

	app := &AppGame{stateMachine: sm}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
}
