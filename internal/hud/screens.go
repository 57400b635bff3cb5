package hud

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/tomz197/riftarena/internal/draw"
)

// ASCII art title (figlet "small" font)
var titleArt = []string{
	` ___  ___  ___  _____      _    ___  ___  _  _    _   `,
	`| _ \|_ _|| __||_   _|    /_\  | _ \| __|| \| |  /_\  `,
	`|   / | | | _|   | |     / _ \ |   /| _| |  \ | / _ \ `,
	`|_|_\|___||_|    |_|    /_/ \_\|_|_\|___||_|\_|/_/ \_\`,
	`                                                      `,
}

var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	`                                              `,
}

var controlLines = []string{
	"W A S D / arrows  . . . Move",
	"Right click . . . . Move to",
	"Mouse . . . . . . . . . Aim",
	"SPACE / left click . . Shoot",
	"Q . . . . . . . . . . . Quit",
}

// blinkOn drives blinking prompts.
func blinkOn(now time.Time) bool {
	return now.UnixMilli()/600%2 == 0
}

// centered places s on row, centred across cols.
func centered(cols, row int, s string, c draw.Color) draw.Text {
	return draw.Text{Col: max(1, cols/2-utf8.RuneCountInString(s)/2), Row: row, S: s, Color: c}
}

func artWidth(art []string) int {
	w := 0
	for _, line := range art {
		w = max(w, utf8.RuneCountInString(line))
	}
	return w
}

func appendArt(out []draw.Text, art []string, cols, top int, c draw.Color) []draw.Text {
	left := max(1, cols/2-artWidth(art)/2)
	for i, line := range art {
		out = append(out, draw.Text{Col: left, Row: top + i, S: line, Color: c})
	}
	return out
}

// StartScreen returns the title screen. mode names the game variant.
func StartScreen(cols, rows int, mode string, now time.Time) []draw.Text {
	centerY := rows / 2
	titleStartY := centerY - 8

	out := appendArt(nil, titleArt, cols, titleStartY, draw.ColorTitle)

	subtitle := fmt.Sprintf("~ Top-down arena shooter, %s mode ~", mode)
	out = append(out, centered(cols, titleStartY+len(titleArt)+1, subtitle, draw.ColorText))

	controlsY := titleStartY + len(titleArt) + 3
	out = append(out, centered(cols, controlsY, "Controls", draw.ColorTitle))
	for i, line := range controlLines {
		out = append(out, centered(cols, controlsY+1+i, line, draw.ColorText))
	}

	if blinkOn(now) {
		out = append(out, centered(cols, controlsY+len(controlLines)+2, ">>  Press SPACE to Start  <<", draw.ColorWarn))
	}
	return out
}

// GameOverScreen returns the game-over panel with the final stats.
func (h *HUD) GameOverScreen(cols, rows int, now time.Time) []draw.Text {
	centerY := rows / 2
	titleStartY := centerY - 6

	out := appendArt(nil, gameOverArt, cols, titleStartY, draw.ColorMinion)

	y := titleStartY + len(gameOverArt) + 1
	out = append(out,
		centered(cols, y, fmt.Sprintf("Score: %d", h.score), draw.ColorText),
		centered(cols, y+1, fmt.Sprintf("Gold: %d", h.gold), draw.ColorTarget),
		centered(cols, y+2, "Time: "+h.Clock(), draw.ColorText),
	)

	if blinkOn(now) {
		out = append(out, centered(cols, y+4, ">>  Press SPACE to Restart  <<", draw.ColorWarn))
	}
	out = append(out, centered(cols, y+5, "Press Q to quit", draw.ColorGround))
	return out
}

// InactivityScreen returns the idle warning with the seconds left before
// disconnect.
func InactivityScreen(cols, rows, remaining int) []draw.Text {
	centerY := rows / 2
	msg := fmt.Sprintf("You have been inactive for too long. You will be disconnected in %d seconds.", max(0, remaining))
	return []draw.Text{
		centered(cols, centerY-2, "INACTIVITY WARNING", draw.ColorWarn),
		centered(cols, centerY, msg, draw.ColorText),
		centered(cols, centerY+2, "Press any key to continue", draw.ColorText),
	}
}

// ShutdownScreen returns the server shutdown notice.
func ShutdownScreen(cols, rows, remaining int) []draw.Text {
	centerY := rows / 2
	return []draw.Text{
		centered(cols, centerY-3, "SERVER SHUTTING DOWN", draw.ColorWarn),
		centered(cols, centerY-1, "The server is restarting for maintenance.", draw.ColorText),
		centered(cols, centerY, "Please reconnect in a moment.", draw.ColorText),
		centered(cols, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", max(0, remaining)), draw.ColorText),
		centered(cols, centerY+4, "Press Q to disconnect now", draw.ColorGround),
	}
}
