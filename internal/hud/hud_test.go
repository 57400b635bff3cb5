package hud

import (
	"strings"
	"testing"
	"time"

	"github.com/tomz197/riftarena/internal/draw"
	"github.com/tomz197/riftarena/internal/physics"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestHUD() (*HUD, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	return New(clk.now), clk
}

func TestHealthDisplay(t *testing.T) {
	h, _ := newTestHUD()

	tests := []struct {
		in   float64
		want int
	}{
		{100, 100},
		{87.9, 87},
		{0.4, 0},
		{-12, 0},
	}
	for _, tt := range tests {
		h.UpdateHealth(tt.in)
		if got := h.Health(); got != tt.want {
			t.Errorf("UpdateHealth(%v): Health() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTimer(t *testing.T) {
	h, clk := newTestHUD()

	clk.advance(5 * time.Second)
	if h.Seconds() != 0 {
		t.Fatal("timer counts before StartTimer")
	}

	h.StartTimer()
	clk.advance(1900 * time.Millisecond)
	if got := h.Seconds(); got != 1 {
		t.Fatalf("Seconds() = %d, want whole seconds", got)
	}

	clk.advance(62 * time.Second)
	h.StopTimer()
	clk.advance(time.Hour)
	if got := h.Clock(); got != "01:03" {
		t.Fatalf("Clock() = %q after stop, want frozen 01:03", got)
	}

	h.StopTimer()
	if got := h.Clock(); got != "01:03" {
		t.Fatalf("second StopTimer changed the clock to %q", got)
	}

	h.StartTimer()
	if h.Seconds() != 0 {
		t.Fatal("StartTimer did not restart from zero")
	}
}

func TestResetClearsStats(t *testing.T) {
	h, clk := newTestHUD()
	h.StartTimer()
	h.UpdateHealth(12)
	h.UpdateGold(40)
	h.UpdateScore(30)
	clk.advance(10 * time.Second)
	h.StopTimer()
	h.ShowGameOver()

	h.Reset()

	if h.Health() != 100 || h.Gold() != 0 || h.Score() != 0 || h.GameOver() || h.Seconds() != 0 {
		t.Errorf("after Reset: health %d gold %d score %d over %v time %d",
			h.Health(), h.Gold(), h.Score(), h.GameOver(), h.Seconds())
	}
}

func TestPlayingOverlay(t *testing.T) {
	h, _ := newTestHUD()
	h.UpdateHealth(25)
	h.UpdateGold(60)
	h.UpdateScore(35)

	texts := h.Playing(80, 24, 3, physics.V(12, 0, -7))
	joined := joinTexts(texts)
	for _, want := range []string{"Health: 25", "Gold: 60", "Score: 35", "Time: 00:00", "Wave 3", "X:12", "Z:-7"} {
		if !strings.Contains(joined, want) {
			t.Errorf("overlay missing %q in %q", want, joined)
		}
	}
	if texts[0].Color != draw.ColorHealthLow {
		t.Errorf("low health coloured %v", texts[0].Color)
	}
	for _, tx := range texts {
		if tx.Col < 1 || tx.Row < 1 || tx.Row > 24 || tx.Col+len(tx.S) > 81 {
			t.Errorf("text %q placed off screen at %d,%d", tx.S, tx.Col, tx.Row)
		}
	}

	if strings.Contains(joinTexts(h.Playing(80, 24, 0, physics.Vec3{})), "Wave") {
		t.Error("wave shown in classic mode")
	}
}

func TestScreens(t *testing.T) {
	h, _ := newTestHUD()
	h.UpdateScore(120)
	h.UpdateGold(90)

	on := time.UnixMilli(0)
	off := time.UnixMilli(600)

	start := joinTexts(StartScreen(100, 30, "waves", on))
	if !strings.Contains(start, "Press SPACE to Start") || !strings.Contains(start, "waves mode") {
		t.Errorf("start screen: %q", start)
	}
	if strings.Contains(joinTexts(StartScreen(100, 30, "waves", off)), "Press SPACE") {
		t.Error("prompt did not blink off")
	}

	over := joinTexts(h.GameOverScreen(100, 30, on))
	for _, want := range []string{"Score: 120", "Gold: 90", "Time: 00:00", "Press SPACE to Restart"} {
		if !strings.Contains(over, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}

	if !strings.Contains(joinTexts(InactivityScreen(100, 30, 30)), "disconnected in 30 seconds") {
		t.Error("inactivity countdown missing")
	}
	if !strings.Contains(joinTexts(ShutdownScreen(100, 30, -2)), "Disconnecting in 0 seconds") {
		t.Error("shutdown countdown not floored at zero")
	}
}

func TestCenteredClampsToFirstColumn(t *testing.T) {
	tx := centered(10, 1, strings.Repeat("x", 40), draw.ColorText)
	if tx.Col != 1 {
		t.Errorf("Col = %d, want 1", tx.Col)
	}
}

func joinTexts(texts []draw.Text) string {
	var b strings.Builder
	for _, tx := range texts {
		b.WriteString(tx.S)
		b.WriteByte('\n')
	}
	return b.String()
}
