// Package physics provides vector math, collision detection and distance utilities.
package physics

import "math"

// Vec3 is a point or direction in arena space. The ground is the XZ plane;
// Y is height above it.
type Vec3 struct {
	X, Y, Z float64
}

// V is shorthand for building a Vec3.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Flat returns v projected onto the ground plane (Y = 0).
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Distance calculates the Euclidean distance between two ground points.
func Distance(x1, z1, x2, z2 float64) float64 {
	dx := x2 - x1
	dz := z2 - z1
	return math.Sqrt(dx*dx + dz*dz)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// SpheresOverlap checks if two spheres overlap. Touching spheres do not.
func SpheresOverlap(a Vec3, ra float64, b Vec3, rb float64) bool {
	minDist := ra + rb
	return DistanceSquared(a, b) < minDist*minDist
}

// Body is anything with a position and a collision radius.
type Body interface {
	Position() Vec3
	Radius() float64
}

// Collide reports whether two bodies intersect: the distance between their
// centres is strictly less than the sum of their radii.
func Collide(a, b Body) bool {
	return SpheresOverlap(a.Position(), a.Radius(), b.Position(), b.Radius())
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampGround clamps the X and Z coordinates of p to [-limit, limit].
func ClampGround(p Vec3, limit float64) Vec3 {
	p.X = Clamp(p.X, -limit, limit)
	p.Z = Clamp(p.Z, -limit, limit)
	return p
}

// OutsideGround reports whether X or Z of p lies beyond [-limit, limit].
func OutsideGround(p Vec3, limit float64) bool {
	return p.X < -limit || p.X > limit || p.Z < -limit || p.Z > limit
}
