package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.BoardWidth)
	assert.Equal(t, 10, cfg.BoardHeight)
	assert.Equal(t, "Minesweeper", cfg.Title)
}

func TestParse_Flags(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-board-width", "16", "-board-height", "12", "-log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.BoardWidth)
	assert.Equal(t, 12, cfg.BoardHeight)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 912, cfg.WindowWidth, "unset flags keep defaults")
}

func TestParse_EnvAndFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mines.toml")
	body := "board-width = 20\nboard-height = 15\ntitle = \"From File\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("MINESENSE_BOARD_HEIGHT", "9")

	cfg, err := Parse(newFlagSet(), []string{"-config", path, "-title", "From Flag"})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.BoardWidth, "file value")
	assert.Equal(t, 9, cfg.BoardHeight, "env beats file")
	assert.Equal(t, "From Flag", cfg.Title, "flag beats file")
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.BoardWidth = 0
	cfg.BoardHeight = 10000
	cfg.WindowWidth = -1
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)
	assert.Contains(t, err.Error(), "board-width 0")
	assert.Contains(t, err.Error(), "log-level")
}

func TestParse_InvalidFailsValidation(t *testing.T) {
	_, err := Parse(newFlagSet(), []string{"-board-width", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "board-width")
}

func TestParse_Help(t *testing.T) {
	fs := newFlagSet()
	fs.SetOutput(io.Discard)
	_, err := Parse(fs, []string{"-h"})
	assert.True(t, IsHelp(err))
}

func TestLogger_Builds(t *testing.T) {
	cfg := Default()
	cfg.DevLog = false
	cfg.LogLevel = "warn"
	log, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel), "debug disabled at warn")
}

func TestLogger_WritesToFile(t *testing.T) {
	cfg := Default()
	cfg.DevLog = false
	cfg.LogFile = filepath.Join(t.TempDir(), "mines.log")
	log, err := cfg.Logger()
	require.NoError(t, err)
	log.Info("board created")
	require.NoError(t, log.Sync())

	body, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"msg":"board created"`)
}
