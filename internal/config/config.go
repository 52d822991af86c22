// Package config holds the startup settings shared by every frontend.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/fftoml"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to flag names when reading environment variables,
// e.g. MINESENSE_BOARD_WIDTH.
const EnvPrefix = "MINESENSE"

// maxBoardSide bounds either board dimension. Larger boards are valid for the
// core but unusable on screen.
const maxBoardSide = 512

// Config holds startup configuration.
type Config struct {
	// BoardWidth and BoardHeight are the board size in cells.
	BoardWidth  int
	BoardHeight int

	// WindowWidth and WindowHeight are the initial window size in pixels.
	WindowWidth  int
	WindowHeight int

	Title    string
	VSync    bool
	LogLevel string // debug, info, warn, error
	DevLog   bool   // human-readable console logs instead of JSON
	LogFile  string // log destination; empty means stderr
}

// Default returns the stock 10x10 configuration.
func Default() Config {
	return Config{
		BoardWidth:   10,
		BoardHeight:  10,
		WindowWidth:  912,
		WindowHeight: 912,
		Title:        "Minesweeper",
		VSync:        true,
		LogLevel:     "info",
		DevLog:       true,
	}
}

// RegisterFlags binds every field to fs with the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.BoardWidth, "board-width", c.BoardWidth, "board width in cells")
	fs.IntVar(&c.BoardHeight, "board-height", c.BoardHeight, "board height in cells")
	fs.IntVar(&c.WindowWidth, "window-width", c.WindowWidth, "initial window width in pixels")
	fs.IntVar(&c.WindowHeight, "window-height", c.WindowHeight, "initial window height in pixels")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "wait for vertical sync")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&c.DevLog, "dev-log", c.DevLog, "human-readable console logs")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
}

// Parse fills a Default config from args, then environment variables
// (MINESENSE_*), then the TOML file named by -config if given. Flags win over
// the environment, which wins over the file.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()
	cfg.RegisterFlags(fs)
	fs.String("config", "", "TOML config file")
	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix(EnvPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(fftoml.Parser),
	)
	if err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.BoardWidth <= 0 || c.BoardWidth > maxBoardSide {
		err = multierr.Append(err, fmt.Errorf("board-width %d outside 1..%d", c.BoardWidth, maxBoardSide))
	}
	if c.BoardHeight <= 0 || c.BoardHeight > maxBoardSide {
		err = multierr.Append(err, fmt.Errorf("board-height %d outside 1..%d", c.BoardHeight, maxBoardSide))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if _, lerr := zapcore.ParseLevel(c.LogLevel); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("log-level: %w", lerr))
	}
	return err
}

// Logger builds the process logger described by the config.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	var zc zap.Config
	if c.DevLog {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if c.LogFile != "" {
		zc.OutputPaths = []string{c.LogFile}
		zc.ErrorOutputPaths = []string{c.LogFile}
	}
	return zc.Build()
}

// IsHelp reports whether err came from a help request.
func IsHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
