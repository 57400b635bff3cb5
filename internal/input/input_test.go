package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func newTestStream() *Stream {
	return &Stream{ch: make(chan byte, 256)}
}

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestKeysFromBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Keys
	}{
		{"wasd", "wa", Keys{Forward: true, Left: true}},
		{"vim keys", "kl", Keys{Backward: true, Right: true}},
		{"arrows", "\x1b[A\x1b[D", Keys{Forward: true, Left: true}},
		{"down right arrows", "\x1b[B\x1b[C", Keys{Backward: true, Right: true}},
		{"fire", " ", Keys{Action: true}},
		{"unbound", "zx", Keys{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStream()
			feed(s, tt.in)
			f := readInputAt(s, time.Unix(100, 0))
			if f.Keys != tt.want {
				t.Errorf("Keys = %+v, want %+v", f.Keys, tt.want)
			}
			if string(f.Pressed) != tt.in {
				t.Errorf("Pressed = %q, want %q", f.Pressed, tt.in)
			}
		})
	}
}

func TestKeyHoldExpires(t *testing.T) {
	s := newTestStream()
	now := time.Unix(100, 0)

	feed(s, "d")
	if f := readInputAt(s, now); !f.Keys.Right {
		t.Fatal("key not held on the frame it arrived")
	}
	if f := readInputAt(s, now.Add(keyHoldDuration/2)); !f.Keys.Right {
		t.Fatal("key released before the hold window")
	}
	if f := readInputAt(s, now.Add(keyHoldDuration)); f.Keys.Right {
		t.Fatal("key still held after the hold window")
	}

	feed(s, "d")
	readInputAt(s, now)
	s.ResetKeys()
	if f := readInputAt(s, now); f.Keys.Moving() {
		t.Fatal("ResetKeys left a key held")
	}
}

func TestConfirmAndQuit(t *testing.T) {
	s := newTestStream()
	feed(s, "\r")
	if f := readInputAt(s, time.Unix(1, 0)); !f.Confirm || f.Quit {
		t.Errorf("enter: %+v", f)
	}

	feed(s, "Q")
	if f := readInputAt(s, time.Unix(1, 0)); !f.Quit {
		t.Error("q did not quit")
	}

	feed(s, "\x03")
	if f := readInputAt(s, time.Unix(1, 0)); !f.Quit {
		t.Error("ctrl-c did not quit")
	}
}

func TestClosedStreamQuits(t *testing.T) {
	s := newTestStream()
	feed(s, "w")
	close(s.ch)

	f := readInputAt(s, time.Unix(1, 0))
	if !f.Quit || !f.Keys.Forward {
		t.Fatalf("frame after close = %+v", f)
	}
	if f := readInputAt(s, time.Unix(1, 0)); !f.Quit {
		t.Fatal("closed stream stopped reporting quit")
	}
}

func TestStartStreamEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("a")))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ReadInput(s).Quit {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("stream never reported quit after EOF")
}

func TestSGRMouse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Pointer
	}{
		{"left press", "\x1b[<0;10;5M", Pointer{Col: 10, Row: 5, Button: ButtonPrimary, Pressed: true}},
		{"left release", "\x1b[<0;10;5m", Pointer{Col: 10, Row: 5, Button: ButtonPrimary}},
		{"right press", "\x1b[<2;3;40M", Pointer{Col: 3, Row: 40, Button: ButtonSecondary, Pressed: true}},
		{"hover", "\x1b[<35;120;7M", Pointer{Col: 120, Row: 7, Motion: true}},
		{"drag", "\x1b[<32;8;9M", Pointer{Col: 8, Row: 9, Button: ButtonPrimary, Motion: true}},
		{"wheel", "\x1b[<64;2;2M", Pointer{Col: 2, Row: 2, Motion: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStream()
			feed(s, tt.in)
			f := readInputAt(s, time.Unix(1, 0))
			if len(f.Pointers) != 1 || f.Pointers[0] != tt.want {
				t.Fatalf("Pointers = %+v, want %+v", f.Pointers, tt.want)
			}
			if f.Keys != (Keys{}) {
				t.Errorf("mouse report pressed keys: %+v", f.Keys)
			}
		})
	}
}

func TestSplitSequencesCarryOver(t *testing.T) {
	s := newTestStream()
	now := time.Unix(1, 0)

	feed(s, "\x1b[<0;1")
	if f := readInputAt(s, now); len(f.Pointers) != 0 || f.Keys != (Keys{}) {
		t.Fatalf("partial report produced %+v", f)
	}
	feed(s, "0;5M")
	f := readInputAt(s, now)
	if len(f.Pointers) != 1 || f.Pointers[0].Col != 10 || f.Pointers[0].Row != 5 {
		t.Fatalf("completed report = %+v", f.Pointers)
	}

	feed(s, "\x1b[")
	if f := readInputAt(s, now); f.Keys.Forward {
		t.Fatal("arrow decoded before its final byte")
	}
	feed(s, "A")
	if f := readInputAt(s, now); !f.Keys.Forward {
		t.Fatal("split arrow lost")
	}

	s = newTestStream()
	feed(s, "\x1b")
	if f := readInputAt(s, now); f.Keys != (Keys{}) {
		t.Fatalf("lone ESC produced %+v", f.Keys)
	}
	feed(s, "[A")
	if f := readInputAt(s, now); f.Keys != (Keys{Forward: true}) {
		t.Fatalf("up arrow split after ESC decoded as %+v", f.Keys)
	}
}

func TestCarriedBytesNotPressedTwice(t *testing.T) {
	s := newTestStream()
	now := time.Unix(1, 0)

	feed(s, "\x1b[")
	if f := readInputAt(s, now); string(f.Pressed) != "\x1b[" {
		t.Fatalf("Pressed = %q", f.Pressed)
	}
	if f := readInputAt(s, now); len(f.Pressed) != 0 {
		t.Errorf("held-over bytes reported again: %q", f.Pressed)
	}
}

func TestMalformedMouseDropped(t *testing.T) {
	s := newTestStream()
	feed(s, "\x1b[<1;2Mw")
	f := readInputAt(s, time.Unix(1, 0))
	if len(f.Pointers) != 0 {
		t.Errorf("malformed report decoded: %+v", f.Pointers)
	}
	if !f.Keys.Forward {
		t.Error("key after a malformed report lost")
	}

	tests := []struct {
		name string
		in   string
		want Keys
	}{
		{"bad byte in body", "\x1b[<0;a", Keys{}},
		{"bad byte then key", "\x1b[<0;xd", Keys{Right: true}},
		{"arrow interrupts report", "\x1b[<0;\x1b[A", Keys{Forward: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStream()
			feed(s, tt.in)
			f := readInputAt(s, time.Unix(1, 0))
			if len(f.Pointers) != 0 || f.Keys != tt.want {
				t.Errorf("pointers %+v keys %+v, want keys %+v", f.Pointers, f.Keys, tt.want)
			}
		})
	}
}

func TestTrackerRelease(t *testing.T) {
	var tr Tracker
	now := time.Unix(5, 0)
	tr.Press(ActionFire, now)
	tr.Press(ActionLeft, now)
	tr.Release(ActionFire)
	tr.Press(actionCount, now)

	if got := tr.Keys(now); got != (Keys{Left: true}) {
		t.Errorf("Keys = %+v", got)
	}
}

func TestKeysHeld(t *testing.T) {
	for _, a := range Actions {
		var k Keys
		k.Set(a, true)
		for _, b := range Actions {
			if k.Held(b) != (a == b) {
				t.Errorf("Set(%v): Held(%v) = %v", a, b, k.Held(b))
			}
		}
	}
	if (Keys{Action: true}).Moving() {
		t.Error("fire counted as movement")
	}
}
