package loop

import (
	"bufio"
	"io"

	"github.com/tomz197/riftarena/internal/draw"
	"github.com/tomz197/riftarena/internal/input"
)

var _ Display = (*Terminal)(nil)

// Terminal is a Display speaking raw ANSI over a byte stream, such as an
// SSH channel or a local terminal in raw mode.
type Terminal struct {
	reader       *bufio.Reader
	writer       io.Writer
	termSizeFunc draw.TermSizeFunc
	chunkWriter  *draw.ChunkWriter // Accumulates frame output for chunked writes
	inputStream  *input.Stream
}

// NewTerminal creates a Terminal. A nil size function reads os.Stdout.
func NewTerminal(r *bufio.Reader, w io.Writer, size draw.TermSizeFunc) *Terminal {
	if size == nil {
		size = draw.DefaultTermSizeFunc
	}
	return &Terminal{
		reader:       r,
		writer:       w,
		termSizeFunc: size,
		chunkWriter:  draw.NewChunkWriter(w, 0, 0),
	}
}

// Open starts reading input and prepares the screen.
func (t *Terminal) Open() error {
	t.inputStream = input.StartStream(t.reader)
	draw.HideCursor(t.writer)
	draw.EnableMouse(t.writer)
	draw.ClearScreen(t.writer)
	return nil
}

func (t *Terminal) Size() (int, int, error) {
	return t.termSizeFunc()
}

func (t *Terminal) Poll() input.Frame {
	return input.ReadInput(t.inputStream)
}

func (t *Terminal) ResetKeys() {
	t.inputStream.ResetKeys()
}

// Present renders the canvas, its border and the overlays in one flush.
func (t *Terminal) Present(f *Frame) error {
	cw := t.chunkWriter
	cw.SetOffset(f.Canvas.OffsetCol(), f.Canvas.OffsetRow())
	if f.Clear {
		cw.WriteString("\033[H\033[2J")
	}

	// Render canvas to terminal
	f.Canvas.Render(cw)

	// Draw border when terminal exceeds max render resolution
	f.Canvas.RenderBorder(cw)

	for _, text := range f.Texts {
		cw.WriteText(text)
	}
	return cw.Flush()
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	draw.DisableMouse(t.writer)
	draw.ClearScreen(t.writer)
	draw.ShowCursor(t.writer)
	return nil
}
