package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/riftarena/internal/arena"
)

// NewLogger builds the root logger, taking its level from LOG_LEVEL.
// An unknown level is reported and info is used.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           log.InfoLevel,
	})
	if raw := GetEnv("LOG_LEVEL", ""); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			logger.Warn("ignoring LOG_LEVEL", "value", raw, "err", err)
		} else {
			logger.SetLevel(level)
		}
	}
	return logger
}

// ArenaConfig returns the game rules selected by GAME_MODE and
// GAME_LAST_HIT.
func ArenaConfig() (arena.Config, error) {
	variant, err := arena.ParseVariant(GetEnv("GAME_MODE", "classic"))
	if err != nil {
		return arena.ClassicConfig(), fmt.Errorf("config: GAME_MODE: %w", err)
	}
	cfg := arena.ConfigFor(variant)

	lastHit, err := arena.ParseLastHit(GetEnv("GAME_LAST_HIT", ""))
	if err != nil {
		return cfg, fmt.Errorf("config: GAME_LAST_HIT: %w", err)
	}
	cfg.LastHit = lastHit
	return cfg, nil
}

// ErrBadFPS is returned by FPS for values outside 1..240.
var ErrBadFPS = errors.New("config: GAME_FPS must be between 1 and 240")

// FPS returns the frame rate from GAME_FPS, or fallback when unset.
func FPS(fallback int) (int, error) {
	fps, err := GetEnvInt("GAME_FPS", fallback)
	if err != nil {
		return fallback, err
	}
	if fps < 1 || fps > 240 {
		return fallback, ErrBadFPS
	}
	return fps, nil
}

// LogOutput returns where a process that owns the terminal should log:
// the file named by LOG_FILE, appended to, or io.Discard when unset.
// The returned close func is never nil.
func LogOutput() (io.Writer, func() error, error) {
	path := GetEnv("LOG_FILE", "")
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() error { return nil }, fmt.Errorf("config: LOG_FILE: %w", err)
	}
	return f, f.Close, nil
}
