package object

import (
	"github.com/tomz197/riftarena/internal/physics"
)

const (
	PlayerSpeed     = 10.0 // units per second
	PlayerRadius    = 1.0
	PlayerMaxHealth = 100.0
	PlayerFireRate  = 0.15 // minimum seconds between shots

	// arriveDistance is how close path movement must get to its destination.
	arriveDistance = 0.2
)

// Player is the hero controlled by the keys or by click-to-move.
type Player struct {
	base

	Health   float64
	Speed    float64
	FireRate float64

	dest         physics.Vec3
	pathing      bool // moving towards dest
	fireCooldown float64
}

// NewPlayer creates a player at pos with full health.
func NewPlayer(scene Scene, pos physics.Vec3) *Player {
	p := &Player{
		base:     newBase(scene, KindPlayer, pos, PlayerRadius),
		Health:   PlayerMaxHealth,
		Speed:    PlayerSpeed,
		FireRate: PlayerFireRate,
	}
	p.sync()
	return p
}

// Pathing reports whether the player is walking to a destination.
func (p *Player) Pathing() bool { return p.pathing }

// Destination returns the click-to-move destination.
func (p *Player) Destination() physics.Vec3 { return p.dest }

// LookAt turns the player towards a ground point.
func (p *Player) LookAt(target physics.Vec3) {
	d := target.Sub(p.pos).Flat()
	if d.Len() < 1e-6 {
		return
	}
	p.facing = d.Normalize()
	p.sync()
}

// MoveTo starts path movement to a ground point and faces it.
func (p *Player) MoveTo(target physics.Vec3) {
	p.dest = physics.V(target.X, p.pos.Y, target.Z)
	p.pathing = true
	p.LookAt(target)
}

// TakeDamage lowers health, never below zero. Returns true once the
// player is dead.
func (p *Player) TakeDamage(amount float64) bool {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health <= 0
}

// Fire returns a projectile leaving the player along its facing, or nil
// while the gun is cooling down.
func (p *Player) Fire(scene Scene) *Projectile {
	if p.fireCooldown > 0 {
		return nil
	}
	p.fireCooldown = p.FireRate
	return NewProjectile(scene, p.pos, p.facing, OwnerPlayer)
}

// Update moves the player by keys or along its path and fires while the
// action key is held.
func (p *Player) Update(ctx UpdateContext) bool {
	dt := ctx.Delta.Seconds()
	p.fireCooldown -= dt

	keys := ctx.Keys
	switch {
	case keys.Moving():
		// Keys take over from path movement.
		p.pathing = false

		var dir physics.Vec3
		if keys.Forward {
			dir.Z--
		}
		if keys.Backward {
			dir.Z++
		}
		if keys.Left {
			dir.X--
		}
		if keys.Right {
			dir.X++
		}
		// Each axis moves at full speed, so diagonals are faster.
		p.pos = p.pos.Add(dir.Scale(p.Speed * dt))
		if dir.Len() > 0 {
			p.facing = dir.Normalize()
		}

	case p.pathing:
		dist := p.pos.DistanceTo(p.dest)
		if dist < arriveDistance {
			p.pathing = false
			break
		}
		step := min(p.Speed*dt, dist)
		p.pos = p.pos.Add(p.dest.Sub(p.pos).Normalize().Scale(step))
	}

	// Shots leave from the clamped position.
	if ctx.SoftLimit > 0 {
		p.pos = physics.ClampGround(p.pos, ctx.SoftLimit)
	}

	if keys.Action && ctx.Spawner != nil {
		if proj := p.Fire(ctx.Scene); proj != nil {
			ctx.Spawner.Spawn(proj)
		}
	}

	p.sync()
	return false
}
