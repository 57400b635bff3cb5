package object

import (
	"github.com/tomz197/riftarena/internal/physics"
)

// Owner is the side that fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

const (
	// PlayerProjectileSpeed is the speed of projectiles fired by the player.
	PlayerProjectileSpeed = 30.0

	// EnemyProjectileSpeed is the speed of projectiles fired at the player.
	EnemyProjectileSpeed = 15.0

	// ProjectileLifetime is how long projectiles last before disappearing.
	ProjectileLifetime = 3.0

	// ProjectileRadius is the collision radius of every projectile.
	ProjectileRadius = 0.3
)

// Projectile is a skillshot flying in a straight line.
type Projectile struct {
	base

	Owner    Owner
	Speed    float64
	Lifetime float64 // seconds before removal
	Age      float64

	dir physics.Vec3 // unit vector, fixed at creation
}

// NewProjectile creates a projectile at pos travelling along dir.
// dir is normalized once here and never again.
func NewProjectile(scene Scene, pos, dir physics.Vec3, owner Owner) *Projectile {
	kind, speed := KindPlayerProjectile, PlayerProjectileSpeed
	if owner == OwnerEnemy {
		kind, speed = KindEnemyProjectile, EnemyProjectileSpeed
	}
	p := &Projectile{
		base:     newBase(scene, kind, pos, ProjectileRadius),
		Owner:    owner,
		Speed:    speed,
		Lifetime: ProjectileLifetime,
		dir:      dir.Normalize(),
	}
	p.facing = p.dir
	p.sync()
	return p
}

// Direction returns the flight direction.
func (p *Projectile) Direction() physics.Vec3 { return p.dir }

// Expired reports whether the projectile outlived its lifetime.
func (p *Projectile) Expired() bool { return p.Age > p.Lifetime }

// Update ages the projectile and moves it. Returns true once expired.
func (p *Projectile) Update(ctx UpdateContext) bool {
	dt := ctx.Delta.Seconds()

	p.Age += dt
	if p.Expired() {
		return true
	}

	p.pos = p.pos.Add(p.dir.Scale(p.Speed * dt))
	p.sync()
	return false
}
