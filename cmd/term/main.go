package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Mine-Sense/internal/config"
	"github.com/Garsondee/Mine-Sense/internal/term"
)

func main() {
	fs := flag.NewFlagSet("term", flag.ExitOnError)
	cfg, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.LogFile == "" {
		// stderr shares the terminal with the board.
		cfg.LogFile = "minesense-term.log"
	}
	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("open terminal", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("init terminal", zap.Error(err))
	}
	defer screen.Fini()
	screen.EnableMouse()

	var copyText func(string) error
	if !clipboard.Unsupported {
		copyText = clipboard.WriteAll
	}
	app, err := term.New(screen, cfg, logger, copyText)
	if err != nil {
		screen.Fini()
		logger.Fatal("create board", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("run", zap.Error(err))
	}
}
