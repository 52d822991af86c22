package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Mine-Sense/internal/config"
	"github.com/Garsondee/Mine-Sense/internal/game"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if config.IsHelp(err) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Fatal("create game", zap.Error(err))
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(cfg.VSync)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}
