package main

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termsnake/game/types"
)

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, types.DefaultConfig(), opts.cfg)
	assert.Equal(t, frontendTerminal, opts.frontend)
	assert.Equal(t, "info", opts.logLevel)
}

func TestParseFlags_All(t *testing.T) {
	opts, err := parseFlags([]string{
		"-width", "30", "-height", "12", "-frame", "80ms", "-wrap", "both",
		"-seed", "42", "-dev", "-frontend", "window", "-cell", "16",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, types.Config{
		Grid:      types.Grid{Width: 30, Height: 12},
		Wrap:      types.WrapBoth,
		FrameTime: 80 * time.Millisecond,
		Seed:      42,
		DevKeys:   true,
	}, opts.cfg)
	assert.Equal(t, frontendWindow, opts.frontend)
	assert.Equal(t, 16, opts.cellSize)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags([]string{"-width", "3"}, io.Discard)
	assert.ErrorIs(t, err, types.ErrBoardTooSmall)

	_, err = parseFlags([]string{"-wrap", "diagonal"}, io.Discard)
	assert.ErrorIs(t, err, types.ErrInvalidWrap)

	_, err = parseFlags([]string{"-frame", "0s"}, io.Discard)
	assert.ErrorIs(t, err, types.ErrInvalidFrame)

	_, err = parseFlags([]string{"-frontend", "web"}, io.Discard)
	assert.ErrorIs(t, err, errUnknownFrontend)

	_, err = parseFlags([]string{"-bogus"}, io.Discard)
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(io.Discard) })

	_, err := setupLogging("", "loud")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "snake.log")
	closeLog, err := setupLogging(path, "debug")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	log.Info("hello")
	require.NoError(t, closeLog())
	assert.FileExists(t, path)
}

func TestReportClose(t *testing.T) {
	var buf bytes.Buffer
	reportClose(&buf, "log file", func() error { return nil })
	assert.Empty(t, buf.String())

	reportClose(&buf, "log file", func() error { return errors.New("disk gone") })
	assert.Equal(t, "termsnake: close log file: disk gone\n", buf.String())
}
