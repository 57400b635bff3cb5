// Package object holds the simulated arena entities: the player, minions,
// projectiles and targets.
package object

import (
	"math/rand/v2"
	"time"

	"github.com/tomz197/riftarena/internal/input"
	"github.com/tomz197/riftarena/internal/physics"
)

// Kind tells the renderer what an attached visual represents.
type Kind int

const (
	KindPlayer Kind = iota
	KindMinion
	KindPlayerProjectile
	KindEnemyProjectile
	KindTarget
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMinion:
		return "minion"
	case KindPlayerProjectile:
		return "player-projectile"
	case KindEnemyProjectile:
		return "enemy-projectile"
	case KindTarget:
		return "target"
	default:
		return "unknown"
	}
}

// Scene is the render collaborator. Objects attach one visual each and
// never read anything back from it.
type Scene interface {
	Attach(kind Kind, pos physics.Vec3) Visual
}

// Visual is the render-side handle of a single object.
type Visual interface {
	// SetTransform moves the visual and turns it to face along facing.
	SetTransform(pos, facing physics.Vec3)
	// SetHealth sets the health-bar fill in [0, 1]. cameraFacing is the
	// direction the camera looks along, for billboarding.
	SetHealth(fraction float64, cameraFacing physics.Vec3)
	// Detach removes the visual from the scene. Safe to call twice.
	Detach()
}

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta        time.Duration
	Elapsed      float64 // seconds since the game started
	Keys         input.Keys
	Player       physics.Vec3 // current player position, for homing
	SoftLimit    float64      // half-extent soft entities stay within; 0 means unbounded
	CameraFacing physics.Vec3
	Scene        Scene
	Spawner      Spawner
	Rand         *rand.Rand
}

// Object is a simulated entity with a collision sphere.
type Object interface {
	physics.Body

	// Update advances the object by ctx.Delta. Returns true if the object
	// should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Remove detaches the visual and marks the object removed.
	Remove()

	// Removed reports whether Remove has been called.
	Removed() bool
}

// Compact drops removed objects from s in place, keeping order.
func Compact[T Object](s []T) []T {
	kept := s[:0]
	for _, obj := range s {
		if !obj.Removed() {
			kept = append(kept, obj)
		}
	}
	// Clear the tail so dropped objects can be collected.
	var zero T
	for i := len(kept); i < len(s); i++ {
		s[i] = zero
	}
	return kept
}

// RemoveAll removes every object in s and returns the emptied slice.
func RemoveAll[T Object](s []T) []T {
	for _, obj := range s {
		obj.Remove()
	}
	return Compact(s)
}

// base carries the state shared by every object kind.
type base struct {
	pos     physics.Vec3
	facing  physics.Vec3
	radius  float64
	visual  Visual
	removed bool
}

func newBase(scene Scene, kind Kind, pos physics.Vec3, radius float64) base {
	b := base{pos: pos, facing: physics.V(0, 0, -1), radius: radius}
	if scene != nil {
		b.visual = scene.Attach(kind, pos)
	}
	return b
}

// sync pushes the current transform to the visual.
func (b *base) sync() {
	if b.visual != nil && !b.removed {
		b.visual.SetTransform(b.pos, b.facing)
	}
}

func (b *base) Position() physics.Vec3 { return b.pos }
func (b *base) Radius() float64         { return b.radius }
func (b *base) Removed() bool           { return b.removed }

func (b *base) Remove() {
	if b.removed {
		return
	}
	b.removed = true
	if b.visual != nil {
		b.visual.Detach()
	}
}

// KeepInBounds clamps the object onto the ground square of the given
// half-extent.
func (b *base) KeepInBounds(limit float64) {
	b.pos = physics.ClampGround(b.pos, limit)
	b.sync()
}

// Facing returns the unit direction the object is turned towards.
func (b *base) Facing() physics.Vec3 { return b.facing }

// randomGroundDir returns a unit vector on the ground plane with each
// component drawn from [-1, 1) before normalization.
func randomGroundDir(r *rand.Rand) physics.Vec3 {
	for {
		d := physics.V(r.Float64()*2-1, 0, r.Float64()*2-1)
		if d.Len() > 1e-6 {
			return d.Normalize()
		}
	}
}
