package loop

import (
	"github.com/tomz197/riftarena/internal/draw"
	"github.com/tomz197/riftarena/internal/input"
)

// Frame is one finished picture: the canvas plus text overlays.
type Frame struct {
	Canvas *draw.Canvas
	Texts  []draw.Text
	// Clear asks for a full terminal clear before drawing, so content of
	// a previous screen or terminal size does not linger.
	Clear bool
}

// Display is a terminal the session draws to and reads input from.
type Display interface {
	Open() error
	// Size returns the terminal size in cells.
	Size() (cols, rows int, err error)
	// Poll returns the input gathered since the previous call without
	// blocking. Pointer cells are 1-based terminal coordinates.
	Poll() input.Frame
	// ResetKeys releases every held key.
	ResetKeys()
	Present(f *Frame) error
	Close() error
}
