package physics

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

type ball struct {
	pos Vec3
	r   float64
}

func (b ball) Position() Vec3  { return b.pos }
func (b ball) Radius() float64 { return b.r }

func TestCollide(t *testing.T) {
	player := ball{pos: V(0, 0, 0), r: 1}

	tests := []struct {
		name  string
		other ball
		want  bool
	}{
		{"overlapping", ball{pos: V(1.5, 0, 0), r: 1}, true},
		{"apart", ball{pos: V(2.5, 0, 0), r: 1}, false},
		{"touching is not a hit", ball{pos: V(2, 0, 0), r: 1}, false},
		{"height counts", ball{pos: V(0, 1.5, 0), r: 0.3}, false},
		{"diagonal", ball{pos: V(1, 0, 1), r: 0.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collide(player, tt.other); got != tt.want {
				t.Errorf("Collide = %v, want %v", got, tt.want)
			}
		})
	}
}

func genBall(t *rapid.T, label string) ball {
	return ball{
		pos: V(
			rapid.Float64Range(-60, 60).Draw(t, label+".x"),
			rapid.Float64Range(-3, 3).Draw(t, label+".y"),
			rapid.Float64Range(-60, 60).Draw(t, label+".z"),
		),
		r: rapid.Float64Range(0, 5).Draw(t, label+".r"),
	}
}

func TestCollideSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genBall(t, "a")
		b := genBall(t, "b")
		if Collide(a, b) != Collide(b, a) {
			t.Fatalf("asymmetric collision for %+v and %+v", a, b)
		}
	})
}

func TestCollideMatchesDistance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genBall(t, "a")
		b := genBall(t, "b")
		d := a.pos.DistanceTo(b.pos)
		sum := a.r + b.r
		// Skip the float boundary where sqrt and squared comparisons may disagree.
		if math.Abs(d-sum) < 1e-9 {
			return
		}
		if Collide(a, b) != (d < sum) {
			t.Fatalf("Collide disagrees with distance %f vs radii %f", d, sum)
		}
	})
}

func TestNormalize(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := V(
			rapid.Float64Range(-100, 100).Draw(t, "x"),
			rapid.Float64Range(-100, 100).Draw(t, "y"),
			rapid.Float64Range(-100, 100).Draw(t, "z"),
		)
		if v.Len() < 1e-6 {
			return
		}
		if l := v.Normalize().Len(); math.Abs(l-1) > 1e-9 {
			t.Fatalf("normalized length = %f", l)
		}
	})

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector normalized to %+v", got)
	}
}

func TestClampGround(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		limit := rapid.Float64Range(1, 100).Draw(t, "limit")
		p := V(
			rapid.Float64Range(-1000, 1000).Draw(t, "x"),
			rapid.Float64Range(-10, 10).Draw(t, "y"),
			rapid.Float64Range(-1000, 1000).Draw(t, "z"),
		)
		c := ClampGround(p, limit)
		if math.Abs(c.X) > limit || math.Abs(c.Z) > limit {
			t.Fatalf("clamped %+v outside %f", c, limit)
		}
		if c.Y != p.Y {
			t.Fatalf("clamp changed height: %f -> %f", p.Y, c.Y)
		}
		if OutsideGround(c, limit) {
			t.Fatalf("clamped point reported outside")
		}
	})
}

func TestOutsideGround(t *testing.T) {
	if OutsideGround(V(50, 0, -50), 50) {
		t.Error("point on the edge should be inside")
	}
	if !OutsideGround(V(50.01, 0, 0), 50) {
		t.Error("point past +X edge should be outside")
	}
	if !OutsideGround(V(0, 0, -50.01), 50) {
		t.Error("point past -Z edge should be outside")
	}
}
