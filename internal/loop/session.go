// Package loop runs one player's session: it reads input, advances the
// arena once per frame and draws the result to a Display.
package loop

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/riftarena/internal/arena"
	"github.com/tomz197/riftarena/internal/draw"
	"github.com/tomz197/riftarena/internal/hud"
	"github.com/tomz197/riftarena/internal/input"
	"github.com/tomz197/riftarena/internal/loop/config"
	"github.com/tomz197/riftarena/internal/physics"
	"github.com/tomz197/riftarena/internal/render"
)

// Options configures a Session. Zero values pick defaults.
type Options struct {
	Config arena.Config
	Sounds arena.Sounds
	Logger *log.Logger
	Rand   *rand.Rand
	FPS    int
	// Now is the clock for frame timing, inactivity and the HUD timer.
	Now func() time.Time
	// InactivityWarn and InactivityDisconnect override the idle limits.
	InactivityWarn       time.Duration
	InactivityDisconnect time.Duration
}

// Session drives a single game on a single display.
type Session struct {
	display Display
	game    *arena.Game
	hud     *hud.HUD
	scene   *render.Scene
	camera  *render.Camera
	canvas  *draw.Canvas
	logger  *log.Logger
	now     func() time.Time

	frameTime      time.Duration
	idleWarn       time.Duration
	idleDisconnect time.Duration

	running    bool
	screen     Screen
	prevScreen Screen
	input      input.Frame
	prevKeys   input.Keys
	lastInput  time.Time

	isInactive    bool
	wasInactive   bool
	resized       bool
	gameOverTimer float64
	shutdownTimer float64

	shutdownCh   chan struct{}
	shutdownOnce sync.Once
}

// NewSession creates a session showing the start screen.
func NewSession(d Display, opts Options) (*Session, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := hud.New(now)
	scene := render.NewScene(0)
	game, err := arena.New(h, scene, arena.Options{
		Config: opts.Config,
		Rand:   opts.Rand,
		Logger: logger,
		Sounds: opts.Sounds,
	})
	if err != nil {
		return nil, fmt.Errorf("loop: new game: %w", err)
	}
	scene.HalfExtent = game.Config().HalfExtent

	frameTime := config.ClientTargetFrameTime
	if opts.FPS > 0 {
		frameTime = time.Second / time.Duration(opts.FPS)
	}
	warn := opts.InactivityWarn
	if warn <= 0 {
		warn = config.InactivityWarnUser * time.Second
	}
	disconnect := opts.InactivityDisconnect
	if disconnect <= 0 {
		disconnect = config.InactivityDisconnectUser * time.Second
	}

	camera := render.NewCamera()
	return &Session{
		display:        d,
		game:           game,
		hud:            h,
		scene:          scene,
		camera:         camera,
		canvas:         draw.NewScaledCanvas(1, 1, camera.ViewWidth, camera.ViewHeight),
		logger:         logger,
		now:            now,
		frameTime:      frameTime,
		idleWarn:       warn,
		idleDisconnect: disconnect,
		running:        true,
		screen:         ScreenStart,
		prevScreen:     ScreenStart,
		lastInput:      now(),
		resized:        true,
		shutdownCh:     make(chan struct{}),
	}, nil
}

// Game returns the arena the session drives.
func (s *Session) Game() *arena.Game { return s.game }

// Screen returns the phase currently shown.
func (s *Session) Screen() Screen { return s.screen }

// Running reports whether Run keeps producing frames.
func (s *Session) Running() bool { return s.running }

// Shutdown shows the shutdown notice and ends the session after
// ShutdownDisplaySeconds. Safe to call from any goroutine, more than once.
func (s *Session) Shutdown() {
	s.shutdownOnce.Do(func() { close(s.shutdownCh) })
}

// Run opens the display and runs frames until the player quits, idles
// out, the shutdown notice expires or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	if err := s.display.Open(); err != nil {
		return fmt.Errorf("loop: open display: %w", err)
	}
	defer s.display.Close()
	defer s.game.Dispose()

	s.logger.Debug("session started", "game", s.game.ID()[:8])
	lastTime := s.now()

	timer := time.NewTimer(0)
	defer timer.Stop()

	for s.running {
		if ctx.Err() != nil {
			break
		}
		frameStart := s.now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		if err := s.frame(delta); err != nil {
			return err
		}

		// Frame timing
		if wait := s.frameTime - s.now().Sub(frameStart); wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
			case <-timer.C:
			}
		}
	}

	s.logger.Debug("session ended", "game", s.game.ID()[:8], "screen", s.screen)
	return nil
}

// frame runs one Input -> Update -> Draw cycle.
func (s *Session) frame(delta time.Duration) error {
	s.processInput()
	s.processShutdown()
	s.updateScreen()

	switch s.screen {
	case ScreenStart:
		s.updateStartState()
	case ScreenPlaying:
		s.updatePlayingState(delta)
	case ScreenGameOver:
		s.updateGameOverState(delta)
	case ScreenShutdown:
		s.updateShutdownState(delta)
	}

	return s.drawFrame()
}

// processInput reads input and tracks inactivity.
func (s *Session) processInput() {
	s.input = s.display.Poll()
	now := s.now()

	if len(s.input.Pressed) > 0 || len(s.input.Pointers) > 0 {
		s.lastInput = now
		s.isInactive = false
	} else if idle := now.Sub(s.lastInput); idle > s.idleDisconnect {
		s.logger.Info("disconnecting idle session", "idle", idle.Truncate(time.Second))
		s.running = false
	} else if idle > s.idleWarn {
		s.isInactive = true
	}

	if s.input.Quit {
		s.running = false
	}
}

func (s *Session) processShutdown() {
	if s.screen == ScreenShutdown {
		return
	}
	select {
	case <-s.shutdownCh:
		s.game.GameOver()
		s.screen = ScreenShutdown
		s.shutdownTimer = config.ShutdownDisplaySeconds
	default:
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (s *Session) updateScreen() {
	cols, rows, err := s.display.Size()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.Fit(cols, rows, config.MaxTermWidth, config.MaxTermHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		s.resized = true
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.camera.Fit(s.canvas.TerminalWidth(), s.canvas.TerminalHeight())
	s.canvas.SetLogicalSize(s.camera.ViewWidth, s.camera.ViewHeight)
}

// updateStartState handles the start screen.
func (s *Session) updateStartState() {
	if s.input.Confirm {
		s.startGame()
	}
}

// updatePlayingState feeds input to the game and advances it one frame.
func (s *Session) updatePlayingState(delta time.Duration) {
	s.applyKeys(s.input.Keys)
	s.applyPointers(s.input.Pointers)

	s.game.SetCameraFacing(s.camera.Facing())
	s.game.Update(min(delta, config.MaxFrameDelta))

	if p := s.game.Player(); p != nil {
		s.camera.Follow(p.Position())
		s.scene.SetMarker(p.Destination(), p.Pathing())
	}

	if s.game.State() == arena.StateGameOver {
		s.screen = ScreenGameOver
		s.gameOverTimer = config.RestartDelaySeconds
		s.scene.SetMarker(physics.Vec3{}, false)
	}
}

// updateGameOverState waits for a restart.
func (s *Session) updateGameOverState(delta time.Duration) {
	if s.gameOverTimer > 0 {
		s.gameOverTimer -= delta.Seconds()
		return
	}
	if s.input.Confirm {
		s.startGame()
	}
}

// updateShutdownState counts down to disconnect.
func (s *Session) updateShutdownState(delta time.Duration) {
	s.shutdownTimer -= delta.Seconds()
	if s.shutdownTimer <= 0 {
		s.running = false
	}
}

// startGame throws away any previous game and starts a fresh one.
func (s *Session) startGame() {
	s.display.ResetKeys()
	s.prevKeys = input.Keys{}
	s.game.Dispose()
	s.game.Start()
	if p := s.game.Player(); p != nil {
		s.camera.Follow(p.Position())
	}
	s.screen = ScreenPlaying
}

// applyKeys turns the held key set into key-down and key-up events.
func (s *Session) applyKeys(keys input.Keys) {
	for _, a := range input.Actions {
		held, was := keys.Held(a), s.prevKeys.Held(a)
		switch {
		case held && !was:
			s.game.KeyDown(a)
		case !held && was:
			s.game.KeyUp(a)
		}
	}
	s.prevKeys = keys
}

// applyPointers converts pointer cells to ground points: presses go to
// PointerDown, everything else aims.
func (s *Session) applyPointers(ps []input.Pointer) {
	for _, p := range ps {
		world, ok := s.toGround(p)
		if !ok {
			continue
		}
		if p.Pressed {
			s.game.PointerDown(p.Button, world)
			continue
		}
		s.game.PointerMove(world)
	}
}

// toGround maps a 1-based terminal cell to the ground point under it.
// Cells outside the render area map to nothing.
func (s *Session) toGround(p input.Pointer) (physics.Vec3, bool) {
	col := p.Col - s.canvas.OffsetCol()
	row := p.Row - s.canvas.OffsetRow()
	if col < 1 || row < 1 || col > s.canvas.TerminalWidth() || row > s.canvas.TerminalHeight() {
		return physics.Vec3{}, false
	}
	return s.camera.ScreenToGround(s.canvas.TerminalToLogical(col, row)), true
}
