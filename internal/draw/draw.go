package draw

import (
	"fmt"
	"io"
	"strconv"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is an index into the arena palette. ColorNone marks an unset pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorGround
	ColorWall
	ColorPath
	ColorPlayer
	ColorMinion
	ColorPlayerShot
	ColorEnemyShot
	ColorTarget
	ColorHealthHigh
	ColorHealthMid
	ColorHealthLow
	ColorHealthBack
	ColorText
	ColorTitle
	ColorWarn
	colorCount
)

// xterm-256 indices for each palette entry.
var palette = [colorCount]uint8{
	ColorNone:       0,
	ColorGround:     238,
	ColorWall:       180,
	ColorPath:       25,
	ColorPlayer:     33,
	ColorMinion:     203,
	ColorPlayerShot: 51,
	ColorEnemyShot:  196,
	ColorTarget:     220,
	ColorHealthHigh: 46,
	ColorHealthMid:  226,
	ColorHealthLow:  160,
	ColorHealthBack: 236,
	ColorText:       252,
	ColorTitle:      180,
	ColorWarn:       214,
}

// Xterm returns the xterm-256 colour index.
func (c Color) Xterm() uint8 {
	if c >= colorCount {
		return palette[ColorText]
	}
	return palette[c]
}

// FgSeq returns the SGR sequence selecting c as foreground.
func (c Color) FgSeq() string {
	return "\033[38;5;" + strconv.Itoa(int(c.Xterm())) + "m"
}

// BgSeq returns the SGR sequence selecting c as background.
func (c Color) BgSeq() string {
	return "\033[48;5;" + strconv.Itoa(int(c.Xterm())) + "m"
}

const styleReset = "\033[0m"

// Text is a string overlaid on the canvas at a 1-based canvas-relative cell.
type Text struct {
	Col, Row int
	S        string
	Color    Color
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// EnableMouse turns on button, drag and SGR extended mouse reporting.
func EnableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1000h\033[?1002h\033[?1006h")
}

// DisableMouse turns mouse reporting back off.
func DisableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1006l\033[?1002l\033[?1000l")
}

// MoveCursor moves cursor to a specific position (1-based).
func MoveCursor(w io.Writer, x, y int) {
	fmt.Fprint(w, cursorTo(x, y))
}

func cursorTo(col, row int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
