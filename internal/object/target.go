package object

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/riftarena/internal/physics"
)

const (
	TargetRadius = 0.7
	TargetSpeed  = 5.0

	// TargetTurnInterval is how often a target picks a new direction.
	TargetTurnInterval = 2.0

	targetBobAmplitude = 0.2
	targetBobFrequency = 2.0
)

// Target is a bonus objective wandering around the arena.
type Target struct {
	base

	Speed float64

	baseY     float64
	dir       physics.Vec3
	sinceTurn float64
}

// NewTarget creates a target at pos heading in a random direction.
func NewTarget(scene Scene, pos physics.Vec3, r *rand.Rand) *Target {
	t := &Target{
		base:  newBase(scene, KindTarget, pos, TargetRadius),
		Speed: TargetSpeed,
		baseY: pos.Y,
		dir:   randomGroundDir(r),
	}
	t.facing = t.dir
	t.sync()
	return t
}

// Direction returns the current wander direction.
func (t *Target) Direction() physics.Vec3 { return t.dir }

// Update wanders the target and bobs it around its spawn height.
func (t *Target) Update(ctx UpdateContext) bool {
	dt := ctx.Delta.Seconds()

	t.sinceTurn += dt
	if t.sinceTurn > TargetTurnInterval && ctx.Rand != nil {
		t.dir = randomGroundDir(ctx.Rand)
		t.facing = t.dir
		t.sinceTurn = 0
	}

	t.pos = t.pos.Add(t.dir.Scale(t.Speed * dt))
	t.pos.Y = t.baseY + math.Sin(ctx.Elapsed*targetBobFrequency)*targetBobAmplitude
	t.sync()
	return false
}
