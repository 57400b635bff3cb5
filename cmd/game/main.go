package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/riftarena/internal/arena"
	"github.com/tomz197/riftarena/internal/audio"
	"github.com/tomz197/riftarena/internal/config"
	"github.com/tomz197/riftarena/internal/loop"
	"github.com/tomz197/riftarena/internal/tui"
)

func main() {
	logger := config.NewLogger(os.Stderr, "game")

	cfg, err := config.ArenaConfig()
	if err != nil {
		logger.Fatal("bad game config", "err", err)
	}
	fps, err := config.FPS(60)
	if err != nil {
		logger.Warn("using default frame rate", "err", err)
	}

	// The game owns the terminal from here on.
	closeLogs := detachLogs(logger)
	defer closeLogs()
	restore := func() {}
	fail := func(msg string, keyvals ...any) {
		restore()
		closeLogs()
		logger.SetOutput(os.Stderr)
		logger.Fatal(msg, keyvals...)
	}

	frontend := config.GetEnv("GAME_FRONTEND", "tcell")
	display, restoreTerm, err := openDisplay(frontend)
	if err != nil {
		fail("failed to prepare terminal", "frontend", frontend, "err", err)
	}
	restore = restoreTerm
	defer restore()

	var sounds arena.Sounds
	if on, err := config.GetEnvBool("GAME_SOUND", true); err != nil {
		logger.Warn("bad GAME_SOUND, sound off", "err", err)
	} else if on {
		player := audio.NewPlayer(logger)
		if err := player.Init(); err != nil {
			logger.Warn("sound unavailable", "err", err)
		} else {
			defer player.Close()
			sounds = player
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := loop.NewSession(display, loop.Options{
		Config: cfg,
		Sounds: sounds,
		Logger: logger,
		FPS:    fps,
	})
	if err != nil {
		fail("failed to create game", "err", err)
	}

	if err := session.Run(ctx); err != nil {
		fail("game error", "err", err)
	}
}

// detachLogs points logger at LOG_FILE, or discards its output, so log
// lines never land in the frame. Call it before deriving child loggers.
func detachLogs(logger *log.Logger) (closeLogs func()) {
	out, closeOut, err := config.LogOutput()
	if err != nil {
		logger.Warn("logging disabled", "err", err)
	}
	logger.SetOutput(out)
	return func() { _ = closeOut() }
}

// openDisplay picks the terminal frontend. The ansi frontend needs the
// terminal in raw mode; restore undoes that.
func openDisplay(frontend string) (loop.Display, func(), error) {
	if frontend != "ansi" {
		return tui.New(nil), func() {}, nil
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, err
	}
	restore := func() {
		_ = term.Restore(fd, oldState)
	}
	return loop.NewTerminal(bufio.NewReader(os.Stdin), os.Stdout, nil), restore, nil
}
