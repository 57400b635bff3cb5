// Package config centralizes the tunable session parameters.
package config

import "time"

// Max render resolution in terminal cells. Larger terminals get a
// centred, bordered render area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Minimap placement: top right, below the status line. Smaller
// terminals hide it.
const (
	MinimapRow     = 3
	MinimapMinCols = 70
	MinimapMinRows = 20
)

// Game over
const (
	RestartDelaySeconds = 1.0 // Seconds after game over before Confirm restarts
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// MaxFrameDelta caps the simulated step after a stall (suspended
// terminal, slow link) so objects never tunnel through each other.
const MaxFrameDelta = 100 * time.Millisecond
