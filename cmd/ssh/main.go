package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/riftarena/internal/arena"
	"github.com/tomz197/riftarena/internal/config"
	"github.com/tomz197/riftarena/internal/draw"
	"github.com/tomz197/riftarena/internal/loop"
	loopconfig "github.com/tomz197/riftarena/internal/loop/config"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"

	// Players see the shutdown notice for ShutdownDisplaySeconds; allow a
	// little more before closing connections.
	shutdownGrace = 15 * time.Second
)

func main() {
	logger := config.NewLogger(os.Stderr, "ssh")

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	cfg, err := config.ArenaConfig()
	if err != nil {
		logger.Fatal("bad game config", "err", err)
	}
	fps, err := config.FPS(loopconfig.ClientTargetFPS)
	if err != nil {
		logger.Warn("using default frame rate", "err", err)
	}
	logger.Info("ssh config", "host", host, "port", port, "hostKey", hostKeyPath, "mode", cfg.Variant)

	games := newRegistry()
	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(games, cfg, fps, logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting ssh server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "players", games.Len())

		// Notify players and wait for their sessions to wind down.
		games.ShutdownAll()
		waitCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		games.Wait(waitCtx)

		closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelClose()
		return s.Shutdown(closeCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server error", "err", err)
	}
	logger.Info("server stopped")
}

// gameMiddleware runs one game session per SSH session.
func gameMiddleware(games *registry, cfg arena.Config, fps int, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			id := uuid.NewString()
			l := logger.With("conn", id[:8], "user", sess.User())
			l.Info("new game session", "term", pty.Term, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			term := loop.NewTerminal(bufio.NewReader(sess), sess, sizeTracker.getSize)
			session, err := loop.NewSession(term, loop.Options{
				Config: cfg,
				Logger: l,
				FPS:    fps,
			})
			if err != nil {
				l.Error("failed to create game", "err", err)
				return
			}

			done, ok := games.Add(id, session)
			if !ok {
				fmt.Fprintln(sess, "Server is shutting down, try again later.")
				return
			}
			defer done()
			if err := session.Run(sess.Context()); err != nil {
				l.Error("game error", "err", err)
			}

			l.Info("session ended")
			next(sess)
		}
	}
}

// registry tracks live sessions so a server shutdown can notify them.
type registry struct {
	mu       sync.Mutex
	sessions map[string]*loop.Session
	closed   bool
	wg       sync.WaitGroup
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*loop.Session)}
}

// Add registers a session; call done when it ends. Add refuses new
// sessions once ShutdownAll ran.
func (r *registry) Add(id string, s *loop.Session) (done func(), ok bool) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, false
	}
	r.sessions[id] = s
	r.wg.Add(1)
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.sessions, id)
			r.mu.Unlock()
			r.wg.Done()
		})
	}, true
}

func (r *registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// ShutdownAll shows every player the shutdown notice.
func (r *registry) ShutdownAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	for _, s := range r.sessions {
		s.Shutdown()
	}
}

// Wait blocks until every session ended or ctx is done.
func (r *registry) Wait(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
