// Package tui is a loop.Display backed by tcell, for local play in
// terminals that tcell knows how to drive.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/riftarena/internal/draw"
	"github.com/tomz197/riftarena/internal/input"
	"github.com/tomz197/riftarena/internal/loop"
)

var _ loop.Display = (*Screen)(nil)

// Screen adapts a tcell.Screen to loop.Display.
type Screen struct {
	screen  tcell.Screen
	events  chan tcell.Event
	quit    chan struct{}
	closed  bool
	tracker input.Tracker
	buttons tcell.ButtonMask
	now     func() time.Time
}

// New wraps s. A nil s opens the real terminal on Open.
func New(s tcell.Screen) *Screen {
	return &Screen{screen: s, now: time.Now}
}

// Open initialises the terminal and starts polling events.
func (s *Screen) Open() error {
	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("tui: new screen: %w", err)
		}
		s.screen = screen
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("tui: init screen: %w", err)
	}
	s.screen.EnableMouse()
	s.screen.HideCursor()
	s.screen.Clear()

	s.events = make(chan tcell.Event, 100)
	s.quit = make(chan struct{})
	go s.pollEvents(s.screen, s.events, s.quit)
	return nil
}

func (s *Screen) pollEvents(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

func (s *Screen) Size() (int, int, error) {
	cols, rows := s.screen.Size()
	return cols, rows, nil
}

// Poll drains pending events without blocking.
func (s *Screen) Poll() input.Frame {
	now := s.now()
	var frame input.Frame

	for !s.closed {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.closed = true
				continue
			}
			s.handle(&frame, ev, now)
			continue
		default:
		}
		break
	}

	frame.Quit = frame.Quit || s.closed
	frame.Keys = s.tracker.Keys(now)
	return frame
}

func (s *Screen) handle(frame *input.Frame, ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(frame, ev, now)
	case *tcell.EventMouse:
		s.handleMouse(frame, ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func (s *Screen) handleKey(frame *input.Frame, ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyUp:
		s.tracker.Press(input.ActionForward, now)
	case tcell.KeyDown:
		s.tracker.Press(input.ActionBackward, now)
	case tcell.KeyLeft:
		s.tracker.Press(input.ActionLeft, now)
	case tcell.KeyRight:
		s.tracker.Press(input.ActionRight, now)
	case tcell.KeyEnter:
		frame.Confirm = true
	case tcell.KeyCtrlC, tcell.KeyEscape:
		frame.Quit = true
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && (r == 'c' || r == 'C') {
			r = 0x03
		}
		if r > 0x7f {
			return
		}
		input.ApplyByte(frame, &s.tracker, byte(r), now)
		frame.Pressed = append(frame.Pressed, byte(r))
		return
	default:
		return
	}
	// Any recognised key counts as activity.
	frame.Pressed = append(frame.Pressed, 0)
}

func (s *Screen) handleMouse(frame *input.Frame, ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	pressed := buttons &^ s.buttons
	moved := pressed == 0 && buttons == s.buttons
	s.buttons = buttons

	p := input.Pointer{Col: x + 1, Row: y + 1}
	switch {
	case pressed&tcell.Button1 != 0:
		p.Button, p.Pressed = input.ButtonPrimary, true
	case pressed&tcell.Button2 != 0:
		p.Button, p.Pressed = input.ButtonSecondary, true
	case pressed&tcell.Button3 != 0:
		p.Button, p.Pressed = input.ButtonMiddle, true
	case moved:
		p.Motion = true
	default:
		// Button release.
		return
	}
	frame.Pointers = append(frame.Pointers, p)
}

func (s *Screen) ResetKeys() {
	s.tracker.Reset()
}

// Present copies the canvas and overlays into tcell's back buffer and
// shows it.
func (s *Screen) Present(f *loop.Frame) error {
	if f.Clear {
		s.screen.Clear()
	}

	c := f.Canvas
	offCol, offRow := c.OffsetCol(), c.OffsetRow()
	for row := 0; row < c.TerminalHeight(); row++ {
		for col := 0; col < c.TerminalWidth(); col++ {
			ch, fg, bg, ok := c.Cell(col, row)
			style := tcell.StyleDefault
			if !ok {
				ch = ' '
			} else {
				style = style.Foreground(paletteColor(fg)).Background(paletteColor(bg))
			}
			s.screen.SetContent(offCol+col, offRow+row, ch, nil, style)
		}
	}

	s.drawBorder(c)

	for _, t := range f.Texts {
		style := tcell.StyleDefault
		if t.Color != draw.ColorNone {
			style = style.Foreground(paletteColor(t.Color))
		}
		col := offCol + t.Col - 1
		for _, r := range t.S {
			s.screen.SetContent(col, offRow+t.Row-1, r, nil, style)
			col++
		}
	}

	s.screen.Show()
	return nil
}

// drawBorder frames the render area when the terminal has room around it.
func (s *Screen) drawBorder(c *draw.Canvas) {
	left, top := c.OffsetCol()-1, c.OffsetRow()-1
	right, bottom := c.OffsetCol()+c.TerminalWidth(), c.OffsetRow()+c.TerminalHeight()
	hasH, hasV := left >= 0, top >= 0
	style := tcell.StyleDefault

	if hasV {
		for x := c.OffsetCol(); x < right; x++ {
			s.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
			s.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
		}
	}
	if hasH {
		for y := c.OffsetRow(); y < bottom; y++ {
			s.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
			s.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
		}
	}
	if hasH && hasV {
		s.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
		s.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
		s.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
		s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
	}
}

// Close stops polling and restores the terminal.
func (s *Screen) Close() error {
	if s.quit != nil {
		close(s.quit)
		s.quit = nil
	}
	s.screen.Fini()
	return nil
}

func paletteColor(c draw.Color) tcell.Color {
	if c == draw.ColorNone {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c.Xterm()))
}
