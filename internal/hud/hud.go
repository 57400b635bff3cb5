// Package hud keeps the numbers the game pushes to its UI and turns them
// into text overlays for the terminal.
package hud

import (
	"fmt"
	"math"
	"time"

	"github.com/tomz197/riftarena/internal/arena"
	"github.com/tomz197/riftarena/internal/draw"
	"github.com/tomz197/riftarena/internal/object"
	"github.com/tomz197/riftarena/internal/physics"
	"github.com/tomz197/riftarena/internal/render"
)

var _ arena.UI = (*HUD)(nil)

// HUD implements arena.UI. All calls come from the frame goroutine.
type HUD struct {
	now func() time.Time

	health   float64
	gold     int
	score    int
	gameOver bool

	timerStart   time.Time
	timerRunning bool
	elapsed      time.Duration
}

// New returns a HUD reading time from now, or time.Now when nil.
func New(now func() time.Time) *HUD {
	if now == nil {
		now = time.Now
	}
	h := &HUD{now: now}
	h.Reset()
	return h
}

func (h *HUD) UpdateHealth(health float64) { h.health = health }
func (h *HUD) UpdateGold(gold int)         { h.gold = gold }
func (h *HUD) UpdateScore(score int)       { h.score = score }
func (h *HUD) ShowGameOver()               { h.gameOver = true }

// StartTimer restarts the play timer from zero.
func (h *HUD) StartTimer() {
	h.timerStart = h.now()
	h.timerRunning = true
	h.elapsed = 0
}

// StopTimer freezes the timer at its current value.
func (h *HUD) StopTimer() {
	if !h.timerRunning {
		return
	}
	h.elapsed = h.now().Sub(h.timerStart)
	h.timerRunning = false
}

// Reset clears every stat and hides the game-over panel.
func (h *HUD) Reset() {
	h.health = object.PlayerMaxHealth
	h.gold = 0
	h.score = 0
	h.gameOver = false
	h.timerRunning = false
	h.elapsed = 0
}

// Health is the displayed health: whole points, never below zero.
func (h *HUD) Health() int {
	return max(0, int(math.Floor(h.health)))
}

func (h *HUD) Gold() int      { return h.gold }
func (h *HUD) Score() int     { return h.score }
func (h *HUD) GameOver() bool { return h.gameOver }

// Elapsed is the play time, frozen once the timer stops.
func (h *HUD) Elapsed() time.Duration {
	if h.timerRunning {
		return h.now().Sub(h.timerStart)
	}
	return h.elapsed
}

// Seconds is the timer in whole seconds.
func (h *HUD) Seconds() int {
	return int(h.Elapsed() / time.Second)
}

// Clock formats the timer as mm:ss.
func (h *HUD) Clock() string {
	s := h.Seconds()
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// Playing returns the in-game status overlay.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (h *HUD) Playing(cols, rows int, wave int, pos physics.Vec3) []draw.Text {
	fraction := float64(h.Health()) / object.PlayerMaxHealth
	out := []draw.Text{
		{Col: 2, Row: 1, S: fmt.Sprintf("Health: %-4d", h.Health()), Color: render.BarColor(fraction)},
		{Col: 16, Row: 1, S: fmt.Sprintf("Gold: %-6d", h.gold), Color: draw.ColorTarget},
		{Col: 30, Row: 1, S: fmt.Sprintf("Score: %-6d", h.score), Color: draw.ColorText},
	}

	clock := "Time: " + h.Clock()
	out = append(out, draw.Text{Col: cols - len(clock) - 1, Row: 1, S: clock, Color: draw.ColorText})

	coords := fmt.Sprintf("X:%-5.0f Z:%-5.0f", pos.X, pos.Z)
	out = append(out, draw.Text{Col: 2, Row: rows, S: coords, Color: draw.ColorGround})

	if wave > 0 {
		w := fmt.Sprintf("Wave %-3d", wave)
		out = append(out, draw.Text{Col: cols - len(w) - 1, Row: rows, S: w, Color: draw.ColorWarn})
	}
	return out
}
