package physics

import (
	"math"
	"sort"
	"testing"
)

func TestCirclesOverlapIsStrict(t *testing.T) {
	if CirclesOverlap(Vec2{}, 1, Vec2{X: 2}, 1) {
		t.Fatalf("touching circles must not overlap")
	}
	if !CirclesOverlap(Vec2{}, 1, Vec2{X: 1.99}, 1) {
		t.Fatalf("expected overlap")
	}
}

func TestStepTowardMovesExactDistance(t *testing.T) {
	from := Vec2{X: 30, Y: 40}
	got := StepToward(from, Vec2{}, 4)
	if d := Distance(from, got); math.Abs(d-4) > 1e-9 {
		t.Fatalf("step length: got=%f want=4", d)
	}
	if Distance(got, Vec2{}) >= Distance(from, Vec2{}) {
		t.Fatalf("expected to move toward target")
	}
	if same := StepToward(from, from, 4); same != from {
		t.Fatalf("coincident points must not move: got=%v", same)
	}
}

func TestHeadingIsUnit(t *testing.T) {
	for _, deg := range []float64{0, 30, 150, 270} {
		if l := Heading(deg).Len(); math.Abs(l-1) > 1e-9 {
			t.Fatalf("heading %v not unit: %f", deg, l)
		}
	}
}

func TestGridQueryFindsNeighborsOnly(t *testing.T) {
	g := NewSpatialGrid(1000, 50)
	g.Insert(Vec2{X: 10, Y: 10}, 0)
	g.Insert(Vec2{X: 60, Y: 10}, 1)
	g.Insert(Vec2{X: 900, Y: 900}, 2)
	g.Insert(Vec2{X: 5000, Y: 5000}, 3) // clamped into the corner cell

	var got []int
	g.QueryRadius(Vec2{X: 20, Y: 10}, 45, func(i int) bool {
		got = append(got, i)
		return false
	})
	sort.Ints(got)
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("unexpected neighbors: %v", got)
	}

	var corner []int
	g.QueryRadius(Vec2{X: 999, Y: 999}, 1, func(i int) bool {
		corner = append(corner, i)
		return false
	})
	if len(corner) != 1 || corner[0] != 3 {
		t.Fatalf("expected clamped item in corner cell: %v", corner)
	}

	g.Clear()
	g.QueryRadius(Vec2{}, 2000, func(i int) bool {
		t.Fatalf("grid should be empty after Clear, saw %d", i)
		return true
	})
}
