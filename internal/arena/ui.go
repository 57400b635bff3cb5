package arena

import "errors"

//go:generate go tool mockgen -destination=mocks/ui_mock.go -package=mocks . UI

var (
	// ErrNilUI is returned by New when no UI is given.
	ErrNilUI = errors.New("arena: nil UI")
	// ErrNilScene is returned by New when no scene is given.
	ErrNilScene = errors.New("arena: nil scene")
)

// UI receives stat pushes from the game. Calls are fire-and-forget and
// happen synchronously inside Update.
type UI interface {
	UpdateHealth(health float64)
	UpdateGold(gold int)
	UpdateScore(score int)
	StartTimer()
	StopTimer()
	ShowGameOver()
	Reset()
}

// Cue is a game event worth a sound.
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueKill
	CueHurt
	CueGameOver
	CueWave
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	case CueKill:
		return "kill"
	case CueHurt:
		return "hurt"
	case CueGameOver:
		return "game-over"
	case CueWave:
		return "wave"
	default:
		return "unknown"
	}
}

// Sounds plays cues. Implementations must not block.
type Sounds interface {
	Play(c Cue)
}

type nopSounds struct{}

func (nopSounds) Play(Cue) {}
