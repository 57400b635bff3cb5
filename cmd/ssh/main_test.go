package main

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/riftarena/internal/input"
	"github.com/tomz197/riftarena/internal/loop"
)

type idleDisplay struct{}

func (idleDisplay) Open() error               { return nil }
func (idleDisplay) Size() (int, int, error)   { return 80, 24, nil }
func (idleDisplay) Poll() input.Frame         { return input.Frame{} }
func (idleDisplay) ResetKeys()                {}
func (idleDisplay) Present(*loop.Frame) error { return nil }
func (idleDisplay) Close() error              { return nil }

func TestRegistryShutdown(t *testing.T) {
	r := newRegistry()
	s, err := loop.NewSession(idleDisplay{}, loop.Options{Logger: log.New(io.Discard), FPS: 200})
	if err != nil {
		t.Fatal(err)
	}

	done, ok := r.Add("a", s)
	if !ok || r.Len() != 1 {
		t.Fatalf("Add = %v, len %d", ok, r.Len())
	}

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		defer done()
		_ = s.Run(context.Background())
	}()

	r.ShutdownAll()
	if _, ok := r.Add("b", s); ok {
		t.Error("registry accepted a session during shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	r.Wait(ctx)
	if ctx.Err() != nil {
		t.Fatal("session did not end after the shutdown notice")
	}
	<-finished
	if r.Len() != 0 {
		t.Errorf("len %d after shutdown", r.Len())
	}
	done()
}

func TestSizeTracker(t *testing.T) {
	st := newSizeTracker(80, 24)
	st.update(120, 40)
	if w, h, err := st.getSize(); w != 120 || h != 40 || err != nil {
		t.Errorf("getSize = %d, %d, %v", w, h, err)
	}
}
