// Package input translates raw terminal bytes into logical key flags and
// pointer events.
package input

import (
	"bufio"
	"strconv"
	"time"
)

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	closed  bool
	tracker Tracker
	pending []byte // incomplete escape sequence carried to the next read
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream reports Quit once r is exhausted.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 256),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ResetKeys releases every held key, so a key pressed on a menu does not
// leak into the first frame of a game.
func (s *Stream) ResetKeys() {
	s.tracker.Reset()
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and SGR mouse reports, and uses
// key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Frame {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Frame {
	buf := s.pending
	carried := len(buf)
	s.pending = nil

	// Drain all available bytes
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				continue
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	// Carried bytes were reported as pressed by the read they arrived in.
	frame := Frame{Quit: s.closed, Pressed: buf[carried:]}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+1 == len(buf) {
			// A lone ESC may start a sequence split across reads.
			s.pending = append(s.pending[:0], buf[i:]...)
			break
		}

		if b == '\x1b' && i+1 < len(buf) && buf[i+1] == '[' {
			if i+2 >= len(buf) {
				s.pending = append(s.pending[:0], buf[i:]...)
				break
			}
			// CSI sequence: ESC [ <code>
			switch buf[i+2] {
			case 'A': // Up arrow
				s.tracker.Press(ActionForward, now)
				i += 2
				continue
			case 'B': // Down arrow
				s.tracker.Press(ActionBackward, now)
				i += 2
				continue
			case 'C': // Right arrow
				s.tracker.Press(ActionRight, now)
				i += 2
				continue
			case 'D': // Left arrow
				s.tracker.Press(ActionLeft, now)
				i += 2
				continue
			case '<': // SGR mouse: ESC [ < b ; col ; row (M|m)
				p, n, ok, complete := parseSGRMouse(buf[i+3:])
				if !complete {
					s.pending = append(s.pending[:0], buf[i:]...)
					i = len(buf)
					continue
				}
				if ok {
					frame.Pointers = append(frame.Pointers, p)
				}
				i += 2 + n
				continue
			}
		}

		ApplyByte(&frame, &s.tracker, b, now)
	}

	frame.Keys = s.tracker.Keys(now)
	return frame
}

// ApplyByte maps a key byte onto frame flags and tracker presses.
func ApplyByte(frame *Frame, tracker *Tracker, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03: // q or Ctrl-C
		frame.Quit = true
	case 'w', 'W', 'i', 'I':
		tracker.Press(ActionForward, now)
	case 's', 'S', 'k', 'K':
		tracker.Press(ActionBackward, now)
	case 'a', 'A', 'j', 'J':
		tracker.Press(ActionLeft, now)
	case 'd', 'D', 'l', 'L':
		tracker.Press(ActionRight, now)
	case ' ':
		tracker.Press(ActionFire, now)
		frame.Confirm = true
	case '\n', '\r':
		frame.Confirm = true
	}
}

// parseSGRMouse parses the body of an SGR mouse report (after "ESC [ <").
// It returns the event, the number of bytes consumed, whether the report
// was well formed and whether it was complete. A malformed report is
// consumed up to and including the offending byte, unless that byte is
// an ESC starting the next sequence.
func parseSGRMouse(b []byte) (p Pointer, n int, ok, complete bool) {
	var fields [3]int
	field := 0
	start := 0
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c >= '0' && c <= '9':
			continue
		case c == ';':
			if field >= 2 {
				return malformed(b, i)
			}
			v, err := strconv.Atoi(string(b[start:i]))
			if err != nil {
				return malformed(b, i)
			}
			fields[field] = v
			field++
			start = i + 1
		case c == 'M' || c == 'm':
			if field != 2 {
				return malformed(b, i)
			}
			v, err := strconv.Atoi(string(b[start:i]))
			if err != nil {
				return malformed(b, i)
			}
			fields[2] = v
			return decodeSGR(fields, c == 'M'), i + 1, true, true
		default:
			return malformed(b, i)
		}
	}
	return Pointer{}, 0, false, false
}

// malformed drops a bad report whose offending byte is b[i].
func malformed(b []byte, i int) (Pointer, int, bool, bool) {
	if b[i] == '\x1b' {
		return Pointer{}, i, false, true
	}
	return Pointer{}, i + 1, false, true
}

// decodeSGR converts SGR mouse fields into a Pointer.
func decodeSGR(fields [3]int, press bool) Pointer {
	code := fields[0]
	p := Pointer{
		Col:    fields[1],
		Row:    fields[2],
		Motion: code&32 != 0,
	}
	if code&64 != 0 {
		// Wheel events carry no button we care about.
		p.Motion = true
		return p
	}
	switch code & 3 {
	case 0:
		p.Button = ButtonPrimary
	case 1:
		p.Button = ButtonMiddle
	case 2:
		p.Button = ButtonSecondary
	}
	p.Pressed = press && !p.Motion && p.Button != ButtonNone
	return p
}
