package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/survivors/internal/physics"
)

func TestOrbPoolWrapsToFirstSlot(t *testing.T) {
	const capacity = 4
	p := NewOrbPool(capacity)
	for i := 0; i < capacity; i++ {
		idx, overwrote := p.Spawn(physics.Vec2{X: float64(i)}, OrbBaseRadius)
		if idx != i || overwrote {
			t.Fatalf("spawn %d: got index %d overwrote %v", i, idx, overwrote)
		}
	}

	idx, overwrote := p.Spawn(physics.Vec2{X: 99}, OrbBaseRadius)
	if idx != 0 {
		t.Fatalf("capacity+1 spawn landed at %d, want 0", idx)
	}
	if !overwrote || p.Overwrites() != 1 {
		t.Fatalf("expected one counted overwrite, got overwrote=%v count=%d", overwrote, p.Overwrites())
	}
	if got := p.At(0).Pos.X; got != 99 {
		t.Fatalf("slot 0 not overwritten: x=%v", got)
	}
	if live := p.Live(); live > capacity {
		t.Fatalf("live %d exceeds capacity %d", live, capacity)
	}
}

func TestEnemyPoolWrapCountsOnlyLiveOverwrites(t *testing.T) {
	p := NewEnemyPool(2)
	stats := EnemyStats{Health: 20, Speed: 1}
	p.Spawn(physics.Vec2{}, EnemyRadius, stats)
	p.Spawn(physics.Vec2{}, EnemyRadius, stats)
	p.At(0).Disable()

	idx, overwrote := p.Spawn(physics.Vec2{X: 5}, EnemyRadius, stats)
	if idx != 0 {
		t.Fatalf("wrap index = %d, want 0", idx)
	}
	if overwrote {
		t.Fatal("reusing a disabled slot must not count as an overwrite")
	}
	if p.Live() != 2 {
		t.Fatalf("live = %d, want 2", p.Live())
	}
}

func TestProjectilePoolWrapAndBounds(t *testing.T) {
	p := NewProjectilePool(2)
	p.Spawn(physics.Vec2{}, physics.Vec2{X: 10}, 10)
	p.Spawn(physics.Vec2{}, physics.Vec2{Y: 10}, 10)
	idx, overwrote := p.Spawn(physics.Vec2{}, physics.Vec2{X: -10}, 7)
	if idx != 0 || !overwrote {
		t.Fatalf("third projectile: index %d overwrote %v", idx, overwrote)
	}
	if d := p.At(0).Damage; d != 7 {
		t.Fatalf("damage = %d, want 7", d)
	}

	p.At(1).Pos = physics.Vec2{Y: ProjectileBound - 1}
	p.Update()
	if p.At(1).Enabled {
		t.Fatal("projectile leaving the world should be disabled")
	}
	if !p.At(0).Enabled || p.At(0).Pos.X != -ProjectileSpeed {
		t.Fatalf("projectile 0 moved to %+v", p.At(0).Pos)
	}
}

func TestProjectileDirectionIsUnit(t *testing.T) {
	p := NewProjectilePool(1)
	p.Spawn(physics.Vec2{X: 1, Y: 1}, physics.Vec2{X: 4, Y: 5}, 1)
	d := p.At(0).Dir
	if math.Abs(d.X-0.6) > 1e-9 || math.Abs(d.Y-0.8) > 1e-9 {
		t.Fatalf("direction = %+v, want (0.6, 0.8)", d)
	}
}

func TestSpawnPositionOutsideSafeZone(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	center := physics.Vec2{X: 300, Y: -120}
	for i := 0; i < 5000; i++ {
		p := SpawnPosition(rng, center)
		dx, dy := p.X-center.X, p.Y-center.Y
		if math.Abs(dx) <= SafeZone || math.Abs(dy) <= SafeZone {
			t.Fatalf("sample %d inside safe zone: (%v, %v)", i, dx, dy)
		}
		if math.Abs(dx) > SpawnRange || math.Abs(dy) > SpawnRange {
			t.Fatalf("sample %d outside spawn range: (%v, %v)", i, dx, dy)
		}
	}
}

func TestEffectPoolSkipsWhenFull(t *testing.T) {
	p := NewEffectPool(1)
	if !p.Start(EffectKill, physics.Vec2{}, TintWhite, 2, 1) {
		t.Fatal("first start should succeed")
	}
	if p.Start(EffectKill, physics.Vec2{}, TintWhite, 2, 1) {
		t.Fatal("start on a full pool should be skipped")
	}

	p.Update(EffectFrameTime)
	p.Update(EffectFrameTime)
	if p.Active() != 0 {
		t.Fatal("two-frame effect should be done after two frame times")
	}
	if !p.Start(EffectHeal, physics.Vec2{}, TintGreen, 1, 1) {
		t.Fatal("slot should be free again")
	}
}

func TestPlayerHealthStaysInBounds(t *testing.T) {
	pl := NewPlayer()
	pl.Hurt(100)
	if pl.Health != 0 {
		t.Fatalf("health = %d, want 0", pl.Health)
	}
	pl.Heal(100)
	if pl.Health != pl.MaxHealth {
		t.Fatalf("health = %d, want %d", pl.Health, pl.MaxHealth)
	}
	if pl.Heal(1) {
		t.Fatal("healing at full health should report no change")
	}
}

func TestPlayerMoveClamps(t *testing.T) {
	pl := NewPlayer()
	pl.Pos = physics.Vec2{X: PlayerBound - 1}
	pl.Move(physics.Vec2{X: 1}, PlayerBound)
	if pl.Pos.X != PlayerBound {
		t.Fatalf("x = %v, want %v", pl.Pos.X, PlayerBound)
	}
	if pl.Facing != FacingRight {
		t.Fatalf("facing = %v, want right", pl.Facing)
	}
}

func TestRampDifficultyToughens(t *testing.T) {
	d := NewRampDifficulty()
	early, late := d.EnemyStats(0), d.EnemyStats(120)
	if late.Health <= early.Health || late.Speed <= early.Speed {
		t.Fatalf("ramp did not toughen: %+v -> %+v", early, late)
	}
	if late.Speed > d.MaxSpeed {
		t.Fatalf("speed %v above cap %v", late.Speed, d.MaxSpeed)
	}
	c := NewConstantDifficulty()
	if c.EnemyStats(0) != c.EnemyStats(120) {
		t.Fatal("constant difficulty changed stats over time")
	}
}
