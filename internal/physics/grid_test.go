package physics

import (
	"testing"

	"pgregory.net/rapid"
)

func TestSpatialGridQueryAround(t *testing.T) {
	g := NewSpatialGrid(50, 4)
	g.Insert(V(0, 0, 0), 0)
	g.Insert(V(3, 0, 3), 1)
	g.Insert(V(40, 0, 40), 2)

	found := map[int]bool{}
	g.QueryAround(V(1, 0, 1), func(i int) bool {
		found[i] = true
		return false
	})
	if !found[0] || !found[1] {
		t.Fatalf("expected neighbours 0 and 1, got %v", found)
	}
	if found[2] {
		t.Fatalf("far item 2 should not be returned")
	}

	g.Clear()
	calls := 0
	g.QueryAround(V(0, 0, 0), func(int) bool {
		calls++
		return false
	})
	if calls != 0 {
		t.Fatalf("cleared grid returned %d items", calls)
	}
}

func TestSpatialGridEdgesDoNotWrap(t *testing.T) {
	g := NewSpatialGrid(50, 4)
	g.Insert(V(49, 0, 0), 0)

	hit := false
	g.QueryAround(V(-49, 0, 0), func(int) bool {
		hit = true
		return true
	})
	if hit {
		t.Fatal("query on the west wall found an item on the east wall")
	}
}

func TestFirstAroundMatchesLinearScan(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		const cell = 4.0
		n := rapid.IntRange(0, 30).Draw(t, "n")
		items := make([]ball, n)
		g := NewSpatialGrid(50, cell)
		for i := range items {
			items[i] = ball{
				pos: V(rapid.Float64Range(-50, 50).Draw(t, "x"), 0, rapid.Float64Range(-50, 50).Draw(t, "z")),
				r:   rapid.Float64Range(0.1, 1.5).Draw(t, "r"),
			}
			g.Insert(items[i].pos, i)
		}
		probe := ball{pos: V(rapid.Float64Range(-50, 50).Draw(t, "px"), 0, rapid.Float64Range(-50, 50).Draw(t, "pz")), r: 0.3}

		want := -1
		for i, it := range items {
			if Collide(probe, it) {
				want = i
				break
			}
		}
		got := g.FirstAround(probe.pos, func(i int) bool { return Collide(probe, items[i]) })
		if got != want {
			t.Fatalf("FirstAround = %d, linear scan = %d", got, want)
		}
	})
}
