package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestCellHalfBlocks(t *testing.T) {
	c := NewCanvas(3, 1)

	c.setPixel(0, 0, ColorPlayer)
	c.setPixel(1, 1, ColorMinion)
	c.setPixel(2, 0, ColorTarget)
	c.setPixel(2, 1, ColorWall)

	tests := []struct {
		col    int
		ch     rune
		fg, bg Color
	}{
		{0, BlockUpperHalf, ColorPlayer, ColorNone},
		{1, BlockLowerHalf, ColorMinion, ColorNone},
		{2, BlockUpperHalf, ColorTarget, ColorWall},
	}
	for _, tt := range tests {
		ch, fg, bg, ok := c.Cell(tt.col, 0)
		if !ok || ch != tt.ch || fg != tt.fg || bg != tt.bg {
			t.Errorf("Cell(%d) = %q %v %v %v, want %q %v %v", tt.col, ch, fg, bg, ok, tt.ch, tt.fg, tt.bg)
		}
	}

	c.setPixel(0, 1, ColorPlayer)
	if ch, fg, _, _ := c.Cell(0, 0); ch != BlockFull || fg != ColorPlayer {
		t.Errorf("same colour halves = %q %v, want full block", ch, fg)
	}

	c.Clear()
	if _, _, _, ok := c.Cell(2, 0); ok {
		t.Error("cell still set after Clear")
	}
}

func TestScaledSet(t *testing.T) {
	// 10 columns x 5 rows showing a 20 x 20 logical space.
	c := NewScaledCanvas(10, 5, 20, 20)

	c.SetFloat(19.9, 19.9, ColorPlayer)
	if got := c.Pixel(9, 9); got != ColorPlayer {
		t.Fatalf("bottom-right pixel = %v", got)
	}

	c.SetFloat(-1, 5, ColorPlayer)
	c.SetFloat(25, 5, ColorPlayer)
	for _, p := range c.pixels[:len(c.pixels)-1] {
		if p != ColorNone {
			t.Fatal("out of range write landed on the canvas")
		}
	}
}

func TestTerminalToLogicalRoundTrip(t *testing.T) {
	c := NewScaledCanvas(80, 24, 120, 80)
	for _, cell := range [][2]int{{1, 1}, {40, 12}, {80, 24}} {
		p := c.TerminalToLogical(cell[0], cell[1])
		col, row := c.LogicalToTerminal(p.X, p.Y)
		if col != cell[0] || row != cell[1] {
			t.Errorf("cell %v -> %+v -> (%d, %d)", cell, p, col, row)
		}
	}
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.FillCircle(Point{X: 10, Y: 10}, 3, ColorTarget)

	if c.Pixel(10, 10) != ColorTarget {
		t.Error("centre not filled")
	}
	if c.Pixel(10, 14) != ColorNone || c.Pixel(14, 10) != ColorNone {
		t.Error("fill leaked past the radius")
	}

	c.Clear()
	c.FillCircle(Point{X: 3.2, Y: 4.7}, 0, ColorTarget)
	if c.Pixel(3, 4) != ColorTarget {
		t.Error("zero radius circle left no pixel")
	}
}

func TestRenderColours(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetOffset(3, 2)
	c.setPixel(0, 0, ColorPlayer)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	if !strings.HasPrefix(out, "\033[3;4H") {
		t.Errorf("render did not start at the offset: %q", out)
	}
	if !strings.Contains(out, ColorPlayer.FgSeq()+string(BlockUpperHalf)) {
		t.Errorf("missing coloured block: %q", out)
	}
	if !strings.HasSuffix(out, styleReset+" ") {
		t.Errorf("empty cell not reset before the blank: %q", out)
	}
}

func TestRenderBorder(t *testing.T) {
	c := NewCanvas(4, 2)

	var buf bytes.Buffer
	c.RenderBorder(&buf)
	if buf.Len() != 0 {
		t.Fatal("border drawn without offset")
	}

	c.SetOffset(1, 1)
	c.RenderBorder(&buf)
	out := buf.String()
	for _, want := range []string{"┌────┐", "└────┘", "│"} {
		if !strings.Contains(out, want) {
			t.Errorf("border missing %q", want)
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{80, 24, 80, 24, 0, 0},
		{200, 24, 120, 24, 40, 0},
		{121, 60, 120, 40, 0, 10},
	}
	for _, tt := range tests {
		rw, rh, oc, or := Fit(tt.w, tt.h, 120, 40)
		if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
			t.Errorf("Fit(%d, %d) = %d %d %d %d", tt.w, tt.h, rw, rh, oc, or)
		}
	}
}

func TestChunkWriterText(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 2, 1)
	cw.WriteText(Text{Col: 1, Row: 1, S: "GOLD 20", Color: ColorTarget})
	if buf.Len() != 0 {
		t.Fatal("wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "\033[2;3H" + ColorTarget.FgSeq() + "GOLD 20" + styleReset
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
