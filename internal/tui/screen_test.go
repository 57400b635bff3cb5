package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/riftarena/internal/draw"
	"github.com/tomz197/riftarena/internal/input"
	"github.com/tomz197/riftarena/internal/loop"
)

func newTestScreen(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := New(sim)
	if err := s.Open(); err != nil {
		t.Fatal(err)
	}
	sim.SetSize(cols, rows)
	t.Cleanup(func() { _ = s.Close() })
	return s, sim
}

func TestKeyTranslation(t *testing.T) {
	s := New(nil)
	now := time.Unix(100, 0)

	tests := []struct {
		name  string
		ev    *tcell.EventKey
		check func(f input.Frame, k input.Keys) bool
	}{
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
			func(_ input.Frame, k input.Keys) bool { return k.Forward }},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
			func(_ input.Frame, k input.Keys) bool { return k.Left }},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone),
			func(_ input.Frame, k input.Keys) bool { return k.Right }},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
			func(f input.Frame, k input.Keys) bool { return f.Confirm && k.Action }},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone),
			func(f input.Frame, _ input.Keys) bool { return f.Confirm }},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
			func(f input.Frame, _ input.Keys) bool { return f.Quit }},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
			func(f input.Frame, _ input.Keys) bool { return f.Quit }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.tracker.Reset()
			var f input.Frame
			s.handle(&f, tt.ev, now)
			if !tt.check(f, s.tracker.Keys(now)) {
				t.Errorf("unexpected frame %+v keys %+v", f, s.tracker.Keys(now))
			}
			if len(f.Pressed) == 0 {
				t.Error("key not counted as activity")
			}
		})
	}
}

func TestMouseTranslation(t *testing.T) {
	s := New(nil)
	var f input.Frame

	s.handleMouse(&f, tcell.NewEventMouse(9, 4, tcell.Button1, tcell.ModNone))
	s.handleMouse(&f, tcell.NewEventMouse(10, 4, tcell.Button1, tcell.ModNone))
	s.handleMouse(&f, tcell.NewEventMouse(10, 4, tcell.ButtonNone, tcell.ModNone))
	s.handleMouse(&f, tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone))
	s.handleMouse(&f, tcell.NewEventMouse(2, 3, tcell.Button2, tcell.ModNone))

	want := []input.Pointer{
		{Col: 10, Row: 5, Button: input.ButtonPrimary, Pressed: true},
		{Col: 11, Row: 5, Motion: true},
		{Col: 12, Row: 6, Motion: true},
		{Col: 3, Row: 4, Button: input.ButtonSecondary, Pressed: true},
	}
	if len(f.Pointers) != len(want) {
		t.Fatalf("got %d pointers, want %d: %+v", len(f.Pointers), len(want), f.Pointers)
	}
	for i := range want {
		if f.Pointers[i] != want[i] {
			t.Errorf("pointer %d = %+v, want %+v", i, f.Pointers[i], want[i])
		}
	}
}

func TestPollDeliversInjectedEvents(t *testing.T) {
	s, sim := newTestScreen(t, 40, 12)
	sim.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f := s.Poll(); f.Keys.Forward {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("injected key never reached Poll")
}

func TestResetKeys(t *testing.T) {
	s := New(nil)
	now := time.Now()
	s.now = func() time.Time { return now }

	var f input.Frame
	s.handle(&f, tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), now)
	s.ResetKeys()
	if s.tracker.Keys(now).Action {
		t.Fatal("fire still held after ResetKeys")
	}
}

func TestPresent(t *testing.T) {
	s, sim := newTestScreen(t, 12, 6)

	c := draw.NewCanvas(10, 4)
	c.SetOffset(1, 1)
	c.Set(0, 0, draw.ColorPlayer)
	c.Set(1, 0, draw.ColorMinion)
	c.Set(1, 1, draw.ColorPlayer)

	err := s.Present(&loop.Frame{
		Canvas: c,
		Texts:  []draw.Text{{Col: 3, Row: 2, S: "ok", Color: draw.ColorText}},
		Clear:  true,
	})
	if err != nil {
		t.Fatal(err)
	}

	r, _, style, _ := sim.GetContent(1, 1)
	fg, _, _ := style.Decompose()
	if r != draw.BlockUpperHalf || fg != tcell.PaletteColor(int(draw.ColorPlayer.Xterm())) {
		t.Errorf("cell (1,1) = %q fg %v", r, fg)
	}

	r, _, style, _ = sim.GetContent(2, 1)
	fg, bg, _ := style.Decompose()
	if r != draw.BlockUpperHalf ||
		fg != tcell.PaletteColor(int(draw.ColorMinion.Xterm())) ||
		bg != tcell.PaletteColor(int(draw.ColorPlayer.Xterm())) {
		t.Errorf("cell (2,1) = %q fg %v bg %v", r, fg, bg)
	}

	if r, _, _, _ := sim.GetContent(3, 2); r != 'o' {
		t.Errorf("overlay text at (3,2) = %q", r)
	}
	if r, _, _, _ := sim.GetContent(0, 0); r != tcell.RuneULCorner {
		t.Errorf("border corner = %q", r)
	}
	if r, _, _, _ := sim.GetContent(11, 3); r != tcell.RuneVLine {
		t.Errorf("right border = %q", r)
	}
}
