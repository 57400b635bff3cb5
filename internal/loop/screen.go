package loop

import (
	"math"

	"github.com/tomz197/riftarena/internal/draw"
	"github.com/tomz197/riftarena/internal/hud"
	"github.com/tomz197/riftarena/internal/loop/config"
	"github.com/tomz197/riftarena/internal/physics"
	"github.com/tomz197/riftarena/internal/render"
)

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	// On screen or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	clearAll := s.resized || s.screen != s.prevScreen || s.isInactive != s.wasInactive
	s.prevScreen = s.screen
	s.wasInactive = s.isInactive
	s.resized = false

	s.canvas.Clear()
	if s.screen == ScreenPlaying || s.screen == ScreenGameOver {
		s.scene.Draw(s.canvas, s.camera)
	}

	return s.display.Present(&Frame{
		Canvas: s.canvas,
		Texts:  s.overlay(),
		Clear:  clearAll,
	})
}

// overlay returns the text drawn over the canvas.
func (s *Session) overlay() []draw.Text {
	cols := s.canvas.TerminalWidth()
	rows := s.canvas.TerminalHeight()

	if s.screen == ScreenShutdown {
		return hud.ShutdownScreen(cols, rows, int(math.Ceil(s.shutdownTimer)))
	}

	if s.isInactive {
		left := s.idleDisconnect - s.now().Sub(s.lastInput)
		return hud.InactivityScreen(cols, rows, int(left.Seconds()))
	}

	switch s.screen {
	case ScreenStart:
		return hud.StartScreen(cols, rows, s.game.Config().Variant.String(), s.now())
	case ScreenPlaying:
		return s.playingOverlay(cols, rows)
	case ScreenGameOver:
		return s.hud.GameOverScreen(cols, rows, s.now())
	}
	return nil
}

// playingOverlay draws the in-game HUD and, when there is room, the minimap.
func (s *Session) playingOverlay(cols, rows int) []draw.Text {
	var pos physics.Vec3
	if p := s.game.Player(); p != nil {
		pos = p.Position()
	}
	texts := s.hud.Playing(cols, rows, s.game.Stats().Wave, pos)

	if cols >= config.MinimapMinCols && rows >= config.MinimapMinRows {
		texts = append(texts, s.scene.Minimap(cols-render.MinimapWidth-1, config.MinimapRow)...)
	}
	return texts
}
