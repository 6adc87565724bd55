package skill

import (
	"math/rand"
	"testing"
)

func TestOrbMagnetCapsAtThree(t *testing.T) {
	var s Set
	for i := 0; i < 3; i++ {
		if !s.Acquire(OrbMagnet) {
			t.Fatalf("stack %d rejected", i+1)
		}
	}
	if s.Acquire(OrbMagnet) {
		t.Fatal("fourth orb magnet stack accepted")
	}
	for _, id := range s.AppendAvailable(nil) {
		if id == OrbMagnet {
			t.Fatal("maxed orb magnet still listed as available")
		}
	}
}

func TestPendingAppliesOncePerStack(t *testing.T) {
	var s Set
	s.Acquire(FastShot)
	applied := 0
	for frame := 0; frame < 100; frame++ {
		if s.Pending(FastShot) > 0 {
			applied++
			s.MarkApplied(FastShot)
		}
	}
	if applied != 1 {
		t.Fatalf("applied %d times, want 1", applied)
	}
}

func TestInvalidIDsAreRejected(t *testing.T) {
	var s Set
	if s.Acquire(Count) || s.Acquire(-1) {
		t.Fatal("invalid id accepted")
	}
	if _, ok := Metadata(Count); ok {
		t.Fatal("metadata returned for invalid id")
	}
}

func TestAnyAvailableAfterEverythingMaxed(t *testing.T) {
	var s Set
	for id := ID(0); id < Count; id++ {
		for s.Acquire(id) {
		}
	}
	if s.AnyAvailable() {
		t.Fatal("skills still available after maxing all")
	}
	s.Reset()
	if !s.AnyAvailable() || s.Has(Resurrection) {
		t.Fatal("reset did not clear skills")
	}
}

func TestDrawIsDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 200; round++ {
		pool := All()
		got := Draw(rng, pool, OfferSize)
		if len(got) != OfferSize {
			t.Fatalf("offer size %d", len(got))
		}
		seen := map[ID]bool{}
		for _, id := range got {
			if seen[id] {
				t.Fatalf("round %d: duplicate %v in %v", round, id, got)
			}
			seen[id] = true
		}
	}

	short := Draw(rng, []ID{Fury}, OfferSize)
	if len(short) != 1 || short[0] != Fury {
		t.Fatalf("short pool draw = %v", short)
	}
}

func TestIntervalFiresOnPeriod(t *testing.T) {
	iv := NewInterval(0.5)
	fired := 0
	for i := 0; i < 45; i++ {
		if iv.Tick(1.0 / 60) {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("fired %d times in 0.75s, want 1", fired)
	}
}

func TestWindowCloses(t *testing.T) {
	w := NewWindow(15)
	w.Start()
	if w.Tick(10) || !w.Active() {
		t.Fatal("window closed early")
	}
	if !w.Tick(6) || w.Active() {
		t.Fatal("window should close after its duration")
	}
	if w.Tick(100) {
		t.Fatal("closed window reported closing again")
	}
}
