package arena

import (
	"github.com/tomz197/riftarena/internal/object"
	"github.com/tomz197/riftarena/internal/physics"
)

// updatePlayerProjectiles moves the player's projectiles and resolves
// their hits. A projectile is consumed by the first live minion it
// touches in collection order, then by the first live target.
func (g *Game) updatePlayerProjectiles(ctx object.UpdateContext) {
	g.grid.Clear()
	for i, m := range g.minions {
		g.grid.Insert(m.Position(), i)
	}
	targets := g.cfg.TargetsEnabled()

	for _, p := range g.playerProjectiles {
		if p.Removed() {
			continue
		}
		if p.Update(ctx) || physics.OutsideGround(p.Position(), g.cfg.HalfExtent) {
			p.Remove()
			continue
		}

		hit := g.grid.FirstAround(p.Position(), func(i int) bool {
			m := g.minions[i]
			return !m.Removed() && physics.Collide(p, m)
		})
		if hit >= 0 {
			p.Remove()
			g.hitMinion(g.minions[hit])
			continue
		}

		if !targets {
			continue
		}
		for _, t := range g.targets {
			if !t.Removed() && physics.Collide(p, t) {
				p.Remove()
				g.destroyTarget(t)
				break
			}
		}
	}

	g.playerProjectiles = object.Compact(g.playerProjectiles)
	g.minions = object.Compact(g.minions)
	g.targets = object.Compact(g.targets)
}

// hitMinion applies projectile damage to m and removes it if it died.
func (g *Game) hitMinion(m *object.Minion) {
	m.HitByPlayer = true
	g.sounds.Play(CueHit)
	if !m.TakeDamage(g.cfg.PlayerProjectileDamage) {
		return
	}
	m.Remove()
	if g.paysDirectKill(m) {
		g.reward(g.cfg.MinionGold, g.cfg.MinionScore)
	}
}

// paysDirectKill reports whether a projectile kill of m is rewarded.
// Decaying lane minions only pay through decay unless the policy says
// otherwise.
func (g *Game) paysDirectKill(m *object.Minion) bool {
	if m.DecayRate <= 0 {
		return true
	}
	return g.cfg.LastHit == LastHitAnyDeath
}

func (g *Game) destroyTarget(t *object.Target) {
	t.Remove()
	g.reward(g.cfg.TargetGold, g.cfg.TargetScore)
}

// firstHit returns the first live projectile in ps touching b, or nil.
func firstHit(ps []*object.Projectile, b physics.Body) *object.Projectile {
	for _, p := range ps {
		if !p.Removed() && physics.Collide(p, b) {
			return p
		}
	}
	return nil
}
