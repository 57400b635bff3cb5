package loop

// Screen is the phase a session shows.
type Screen int

const (
	ScreenStart    Screen = iota // Title screen
	ScreenPlaying                // Active gameplay
	ScreenGameOver               // Final stats, restart prompt
	ScreenShutdown               // Server is shutting down
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game-over"
	case ScreenShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}
