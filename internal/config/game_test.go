package config

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/riftarena/internal/arena"
)

func TestArenaConfig(t *testing.T) {
	tests := []struct {
		mode, lastHit string
		variant       arena.Variant
		policy        arena.LastHit
		wantErr       bool
	}{
		{"", "", arena.VariantClassic, arena.LastHitOnDecay, false},
		{"waves", "any", arena.VariantWaves, arena.LastHitAnyDeath, false},
		{"Classic", "decay", arena.VariantClassic, arena.LastHitOnDecay, false},
		{"tower", "", arena.VariantClassic, arena.LastHitOnDecay, true},
		{"waves", "sometimes", arena.VariantWaves, arena.LastHitOnDecay, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode+"/"+tt.lastHit, func(t *testing.T) {
			t.Setenv("GAME_MODE", tt.mode)
			t.Setenv("GAME_LAST_HIT", tt.lastHit)
			cfg, err := ArenaConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v", err)
			}
			if cfg.Variant != tt.variant || cfg.LastHit != tt.policy {
				t.Errorf("got %v/%v", cfg.Variant, cfg.LastHit)
			}
			if cfg.HalfExtent <= 0 {
				t.Error("config has no arena size")
			}
		})
	}
}

func TestFPS(t *testing.T) {
	t.Setenv("GAME_FPS", "")
	if fps, err := FPS(60); fps != 60 || err != nil {
		t.Errorf("default = %d, %v", fps, err)
	}
	t.Setenv("GAME_FPS", "30")
	if fps, err := FPS(60); fps != 30 || err != nil {
		t.Errorf("30 = %d, %v", fps, err)
	}
	t.Setenv("GAME_FPS", "0")
	if fps, err := FPS(60); fps != 60 || !errors.Is(err, ErrBadFPS) {
		t.Errorf("0 = %d, %v", fps, err)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("LOG_LEVEL", "debug")
	if l := NewLogger(&buf, "test"); l.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v", l.GetLevel())
	}

	t.Setenv("LOG_LEVEL", "chatty")
	l := NewLogger(&buf, "test")
	if l.GetLevel() != log.InfoLevel {
		t.Errorf("bad level kept: %v", l.GetLevel())
	}
	if !strings.Contains(buf.String(), "LOG_LEVEL") {
		t.Errorf("bad level not reported: %q", buf.String())
	}
}

func TestLogOutput(t *testing.T) {
	t.Setenv("LOG_FILE", "")
	w, closeOut, err := LogOutput()
	if err != nil || w != io.Discard {
		t.Fatalf("unset LOG_FILE = %v, %v", w, err)
	}
	if err := closeOut(); err != nil {
		t.Error(err)
	}

	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "missing", "game.log"))
	if w, _, err := LogOutput(); err == nil || w != io.Discard {
		t.Errorf("unwritable LOG_FILE = %v, %v", w, err)
	}
}
