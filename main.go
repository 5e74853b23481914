package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vancha/binary-clock/internal/app"
	"github.com/vancha/binary-clock/internal/chime"
	"github.com/vancha/binary-clock/internal/clock"
	"github.com/vancha/binary-clock/internal/config"
	"github.com/vancha/binary-clock/internal/logging"
)

func main() {
	path, err := config.Path()
	if err != nil {
		slog.Error("resolve settings path", "err", err)
		os.Exit(1)
	}
	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("load settings", "err", err)
		os.Exit(1)
	}

	log := logging.Init(cfg.LogLevel, cfg.LogFormat)
	log.Debug("settings loaded", "path", path, "mode", cfg.Mode)

	a, err := app.New(cfg, path, clock.System{}, chime.NewSpeaker(log), log)
	if err != nil {
		log.Error("init", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Binary Clock - Space: BCD/binary, C/I: colors, M: chime, S: save, Esc/Q: quit")

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}
