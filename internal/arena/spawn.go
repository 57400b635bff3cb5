package arena

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/tomz197/riftarena/internal/physics"
)

// Gate fires once every Interval of elapsed game time.
type Gate struct {
	Interval time.Duration
	last     float64
}

// Check reports whether the gate is due at elapsed seconds. A due gate
// restarts from elapsed, not from zero, so cadence does not drift.
func (g *Gate) Check(elapsed float64) bool {
	if g.Interval <= 0 {
		return false
	}
	if elapsed-g.last > g.Interval.Seconds() {
		g.last = elapsed
		return true
	}
	return false
}

// Reset rewinds the gate to time zero.
func (g *Gate) Reset() { g.last = 0 }

// EdgePoint picks one of the four walls uniformly and a uniform point
// along it, h units from the centre.
func EdgePoint(r *rand.Rand, h float64) physics.Vec3 {
	along := (r.Float64()*2 - 1) * h
	switch r.IntN(4) {
	case 0: // North
		return physics.V(along, 0, -h)
	case 1: // East
		return physics.V(h, 0, along)
	case 2: // South
		return physics.V(along, 0, h)
	default: // West
		return physics.V(-h, 0, along)
	}
}

// RingPoint picks a uniform angle on a circle of the given radius around
// the centre, at height y.
func RingPoint(r *rand.Rand, radius, y float64) physics.Vec3 {
	angle := r.Float64() * 2 * math.Pi
	return physics.V(math.Cos(angle)*radius, y, math.Sin(angle)*radius)
}

// AimWithDeviation returns the unit direction from "from" to "to" with a
// uniform offset in [-d/2, d/2] added to x and z before renormalizing.
func AimWithDeviation(r *rand.Rand, from, to physics.Vec3, d float64) physics.Vec3 {
	dir := to.Sub(from).Normalize()
	dir.X += (r.Float64() - 0.5) * d
	dir.Z += (r.Float64() - 0.5) * d
	if dir.Len() < 1e-9 {
		// Shooter sits on the player; aim anywhere.
		dir = physics.V(1, 0, 0)
	}
	return dir.Normalize()
}

// InteriorPoint picks a uniform point in the square [-h, h] at height y.
func InteriorPoint(r *rand.Rand, h, y float64) physics.Vec3 {
	return physics.V((r.Float64()*2-1)*h, y, (r.Float64()*2-1)*h)
}

// Lane is a straight path minions walk down.
type Lane struct {
	Start physics.Vec3
	Dir   physics.Vec3 // unit vector
}

// Lanes returns the three fixed lanes, all running north to south.
func Lanes() [3]Lane {
	dir := physics.V(0, 0, 1)
	return [3]Lane{
		{Start: physics.V(-laneOffset, 0, laneSpawnZ), Dir: dir},
		{Start: physics.V(0, 0, laneSpawnZ), Dir: dir},
		{Start: physics.V(laneOffset, 0, laneSpawnZ), Dir: dir},
	}
}

// LaneFormation places n minions from the lane start onwards, stagger
// apart along the lane, each shifted sideways by up to jitter.
func LaneFormation(r *rand.Rand, lane Lane, n int, stagger, jitter float64) []physics.Vec3 {
	side := physics.V(-lane.Dir.Z, 0, lane.Dir.X)
	out := make([]physics.Vec3, 0, n)
	for i := range n {
		p := lane.Start.Add(lane.Dir.Scale(float64(i) * stagger))
		p = p.Add(side.Scale((r.Float64()*2 - 1) * jitter))
		out = append(out, p)
	}
	return out
}

// WaveSize is the number of minions per lane on the given wave.
func WaveSize(base, wave int) int {
	return base + wave/3
}

// WaveHealth is the max health of lane minions on the given wave.
func WaveHealth(base, step float64, wave int) float64 {
	return base + float64(wave/2)*step
}
