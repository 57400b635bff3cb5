package object

import (
	"github.com/tomz197/riftarena/internal/physics"
)

const (
	MinionSpeed     = 3.0
	MinionRadius    = 0.8
	MinionMaxHealth = 50.0
)

// Minion walks towards the player, or straight down a lane when it was
// spawned by a wave.
type Minion struct {
	base

	Health    float64
	MaxHealth float64
	Speed     float64

	// DecayRate is natural health loss in hp/s. Zero disables decay.
	DecayRate float64

	// HitByPlayer is set once a player projectile has struck the minion.
	HitByPlayer bool

	lane   physics.Vec3
	laned  bool
	decay  bool         // health ran out through decay
	camera physics.Vec3 // camera facing seen on the last update
}

// NewMinion creates a homing minion with the given max health.
func NewMinion(scene Scene, pos physics.Vec3, maxHealth float64) *Minion {
	m := &Minion{
		base:      newBase(scene, KindMinion, pos, MinionRadius),
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Speed:     MinionSpeed,
	}
	m.sync()
	if m.visual != nil {
		m.visual.SetHealth(m.Fraction(), m.camera)
	}
	return m
}

// NewLaneMinion creates a minion that walks along dir and loses decay hp
// every second.
func NewLaneMinion(scene Scene, pos, dir physics.Vec3, maxHealth, decay float64) *Minion {
	m := NewMinion(scene, pos, maxHealth)
	m.lane = dir.Flat().Normalize()
	m.laned = true
	m.facing = m.lane
	m.DecayRate = decay
	m.sync()
	return m
}

// Laned reports whether the minion follows a lane.
func (m *Minion) Laned() bool { return m.laned }

// Fraction returns health as a share of max health in [0, 1].
func (m *Minion) Fraction() float64 {
	if m.MaxHealth <= 0 {
		return 0
	}
	return physics.Clamp(m.Health/m.MaxHealth, 0, 1)
}

// TakeDamage lowers health, never below zero. Returns true once the
// minion is dead.
func (m *Minion) TakeDamage(amount float64) bool {
	m.Health -= amount
	if m.Health < 0 {
		m.Health = 0
	}
	if m.visual != nil && !m.removed {
		m.visual.SetHealth(m.Fraction(), m.camera)
	}
	return m.Health <= 0
}

// Decayed reports whether the last Update killed the minion through
// natural decay.
func (m *Minion) Decayed() bool { return m.decay }

// Update moves the minion and applies decay. Returns true when decay
// brought health to zero.
func (m *Minion) Update(ctx UpdateContext) bool {
	dt := ctx.Delta.Seconds()
	m.camera = ctx.CameraFacing

	dir := m.lane
	if !m.laned {
		dir = ctx.Player.Sub(m.pos).Flat().Normalize()
	}
	m.pos = m.pos.Add(dir.Scale(m.Speed * dt))
	if dir.Len() > 0 {
		m.facing = dir
	}
	m.sync()

	if m.DecayRate > 0 && m.Health > 0 {
		if m.TakeDamage(m.DecayRate * dt) {
			m.decay = true
		}
	} else if m.visual != nil {
		m.visual.SetHealth(m.Fraction(), m.camera)
	}
	return m.decay
}
