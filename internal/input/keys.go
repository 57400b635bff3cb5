package input

import "time"

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key presses (and auto-repeat), never releases, so a
// key counts as released once it has not been seen for this long.
const keyHoldDuration = 60 * time.Millisecond

// Action is a logical control the simulation understands.
type Action int

const (
	ActionForward Action = iota
	ActionBackward
	ActionLeft
	ActionRight
	ActionFire
	actionCount
)

// Actions lists every action in order.
var Actions = [...]Action{ActionForward, ActionBackward, ActionLeft, ActionRight, ActionFire}

func (a Action) String() string {
	switch a {
	case ActionForward:
		return "forward"
	case ActionBackward:
		return "backward"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Keys is the set of logical flags currently held.
type Keys struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Action   bool
}

// Set applies a key-down (down=true) or key-up event for a.
func (k *Keys) Set(a Action, down bool) {
	switch a {
	case ActionForward:
		k.Forward = down
	case ActionBackward:
		k.Backward = down
	case ActionLeft:
		k.Left = down
	case ActionRight:
		k.Right = down
	case ActionFire:
		k.Action = down
	}
}

// Held reports whether the key for a is down.
func (k Keys) Held(a Action) bool {
	switch a {
	case ActionForward:
		return k.Forward
	case ActionBackward:
		return k.Backward
	case ActionLeft:
		return k.Left
	case ActionRight:
		return k.Right
	case ActionFire:
		return k.Action
	default:
		return false
	}
}

// Moving reports whether any direction key is held.
func (k Keys) Moving() bool {
	return k.Forward || k.Backward || k.Left || k.Right
}

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// Pointer is a pointer event in 1-based terminal cell coordinates.
type Pointer struct {
	Col, Row int
	Button   Button
	Pressed  bool // button went down
	Motion   bool // pointer moved (with or without a held button)
}

// Frame is everything the player did since the previous frame.
type Frame struct {
	Keys     Keys
	Pointers []Pointer
	Quit     bool
	Confirm  bool // space or enter, used by menus
	Pressed  []byte
}

// Tracker turns timestamped key presses into held flags, emulating
// key-up events for input sources that never report releases.
type Tracker struct {
	last [actionCount]time.Time
}

// Press records a key-down of a at now.
func (t *Tracker) Press(a Action, now time.Time) {
	if a >= 0 && a < actionCount {
		t.last[a] = now
	}
}

// Release forgets a, as if its key had been lifted.
func (t *Tracker) Release(a Action) {
	if a >= 0 && a < actionCount {
		t.last[a] = time.Time{}
	}
}

// Reset releases every key.
func (t *Tracker) Reset() {
	t.last = [actionCount]time.Time{}
}

// Keys returns the flags held at now.
func (t *Tracker) Keys(now time.Time) Keys {
	var k Keys
	for a := Action(0); a < actionCount; a++ {
		if !t.last[a].IsZero() && now.Sub(t.last[a]) < keyHoldDuration {
			k.Set(a, true)
		}
	}
	return k
}
