package session

import (
	"math"
	"testing"

	"github.com/tomz197/survivors/internal/entity"
	"github.com/tomz197/survivors/internal/physics"
	"github.com/tomz197/survivors/internal/skill"
)

func TestOrbPulledFourUnitsThenConsumed(t *testing.T) {
	s := newTestSession(t)
	idx, _ := s.orbs.Spawn(physics.Vec2{X: 20}, entity.OrbBaseRadius)

	for _, want := range []float64{16, 12, 8, 4, 0} {
		s.Update(frame, nil)
		o := s.orbs.At(idx)
		if !o.Enabled {
			t.Fatalf("orb consumed early, expected at x=%v", want)
		}
		if math.Abs(o.Pos.X-want) > 1e-9 {
			t.Fatalf("orb at %v, want %v", o.Pos.X, want)
		}
		if s.player.Experience != 0 {
			t.Fatal("experience gained before capture")
		}
	}

	s.Update(frame, nil)
	if s.orbs.At(idx).Enabled || s.player.Experience != 1 {
		t.Fatalf("orb not consumed: enabled=%v xp=%d", s.orbs.At(idx).Enabled, s.player.Experience)
	}
	if s.orbs.At(idx).Pos != entity.OffMap {
		t.Fatal("collected orb not parked off-map")
	}
}

func TestOrbOutsideRadiusStaysPut(t *testing.T) {
	s := newTestSession(t)
	idx, _ := s.orbs.Spawn(physics.Vec2{X: 200}, entity.OrbBaseRadius)
	s.Update(frame, nil)
	if got := s.orbs.At(idx).Pos.X; got != 200 {
		t.Fatalf("distant orb moved to %v", got)
	}
}

func TestProjectileHitsLowestIndexOnly(t *testing.T) {
	s := newTestSession(t)
	a := spawnStill(s, physics.Vec2{X: 100, Y: 3}, 20)
	b := spawnStill(s, physics.Vec2{X: 100, Y: -3}, 20)
	s.projectiles.Spawn(physics.Vec2{X: 96}, physics.Vec2{X: 200}, 10)

	s.Update(frame, nil)

	if s.enemies.At(a).Health != 10 {
		t.Fatal("lowest index enemy not hit")
	}
	if s.enemies.At(b).Health != 20 {
		t.Fatal("projectile penetrated into a second enemy")
	}
	if s.stats.ProjectilesHit != 1 {
		t.Fatalf("hits = %d, want 1", s.stats.ProjectilesHit)
	}
}

func TestProjectileKillDropsOrb(t *testing.T) {
	s := newTestSession(t)
	idx := spawnStill(s, physics.Vec2{X: 100}, 10)
	s.projectiles.Spawn(physics.Vec2{X: 90}, physics.Vec2{X: 200}, 10)

	s.Update(frame, nil)

	if s.enemies.At(idx).Enabled {
		t.Fatal("enemy survived lethal hit")
	}
	if s.enemies.At(idx).Pos != entity.OffMap {
		t.Fatal("dead enemy not parked off-map")
	}
	if s.stats.Kills != 1 || s.orbs.Live() != 1 {
		t.Fatalf("kills=%d orbs=%d, want 1 and 1", s.stats.Kills, s.orbs.Live())
	}
	if s.fx.kill.Active() != 1 {
		t.Fatal("kill effect not started")
	}
}

func TestKillResolvesWithoutEffectSlots(t *testing.T) {
	cfg := testConfig()
	cfg.EffectCapacity = 1
	s := New("tester", cfg)
	s.fx.kill.Start(entity.EffectKill, physics.Vec2{}, entity.TintYellow, 100, 1)

	idx := spawnStill(s, physics.Vec2{X: 500}, 1)
	s.killEnemy(idx)
	if s.stats.Kills != 1 || s.orbs.Live() != 1 {
		t.Fatal("kill depended on a free effect slot")
	}
}

func TestContactPushesCrowdAway(t *testing.T) {
	s := newTestSession(t)
	spawnStill(s, physics.Vec2{X: 5}, 20)
	near := spawnStill(s, physics.Vec2{Y: 6}, 20)

	s.damagePlayer(1)

	e := s.enemies.At(near)
	if math.Abs(e.Pos.Y-120) > 1e-9 {
		t.Fatalf("pushed enemy at %+v, want y=120", e.Pos)
	}
}

func TestExplosionOnContact(t *testing.T) {
	s := newTestSession(t)
	grant(t, s, skill.Explosion)
	toucher := spawnStill(s, physics.Vec2{X: 5}, 20)
	victim := spawnStill(s, physics.Vec2{X: 60}, 30)
	outside := spawnStill(s, physics.Vec2{X: 400}, 30)

	s.Update(frame, nil)

	if s.enemies.At(toucher).Enabled {
		t.Fatal("touching enemy survived")
	}
	if s.enemies.At(victim).Enabled {
		t.Fatal("enemy inside the blast survived")
	}
	if s.enemies.At(outside).Health != 30 {
		t.Fatal("blast reached too far")
	}
	if s.stats.Kills != 1 {
		t.Fatalf("kills = %d, want 1 (melee deaths do not count)", s.stats.Kills)
	}
}

func TestWanderingSoulsReleaseThreeShots(t *testing.T) {
	s := newTestSession(t)
	grant(t, s, skill.WanderingSouls)
	idx := spawnStill(s, physics.Vec2{X: 500}, 20)

	s.killEnemy(idx)

	if got := s.projectiles.Live(); got != 3 {
		t.Fatalf("live projectiles = %d, want 3", got)
	}
	want := []physics.Vec2{physics.Heading(30), physics.Heading(150), physics.Heading(270)}
	for i, w := range want {
		d := s.projectiles.At(i).Dir
		if math.Abs(d.X-w.X) > 1e-9 || math.Abs(d.Y-w.Y) > 1e-9 {
			t.Fatalf("soul %d heading %+v, want %+v", i, d, w)
		}
	}
}

func TestFireRateAndBifurcation(t *testing.T) {
	s := newTestSession(t)
	ctrl := &stubController{aim: physics.Vec2{X: 100}, fire: true}

	s.Update(frame, ctrl)
	if s.projectiles.Live() != 1 {
		t.Fatalf("live = %d after first shot", s.projectiles.Live())
	}
	s.Update(frame, ctrl)
	if s.projectiles.Live() != 1 {
		t.Fatal("fired again inside the fire interval")
	}

	grant(t, s, skill.Bifurcation)
	for i := 0; i < 20; i++ {
		s.Update(frame, ctrl)
	}
	if got := s.stats.ProjectilesFired; got != 3 {
		t.Fatalf("fired %d, want 3 (one plain shot, one bifurcated pair)", got)
	}
	second := s.projectiles.At(2).Dir
	want := physics.Heading(BifurcationAngle)
	if math.Abs(second.X-want.X) > 1e-9 || math.Abs(second.Y-want.Y) > 1e-9 {
		t.Fatalf("bifurcated heading %+v, want %+v", second, want)
	}
}

func TestSawCutsEveryTenFrames(t *testing.T) {
	s := newTestSession(t)
	grant(t, s, skill.SpinningSaw)

	// After ten frames the saw sits at 30 degrees.
	at := physics.Heading(30).Scale(SawOrbit)
	idx := spawnStill(s, at, 100)

	for i := 0; i < 9; i++ {
		s.Update(frame, nil)
	}
	if s.enemies.At(idx).Health != 100 {
		t.Fatal("saw cut before its tick")
	}
	s.Update(frame, nil)
	if got := s.enemies.At(idx).Health; got != 100-SawDamage {
		t.Fatalf("health = %d, want %d", got, 100-SawDamage)
	}
}

func TestAllyTargetsNearestEnemy(t *testing.T) {
	s := newTestSession(t)
	grant(t, s, skill.Ally)
	spawnStill(s, physics.Vec2{X: -900}, 20)
	near := spawnStill(s, physics.Vec2{Y: 300}, 20)

	for i := 0; i < 31; i++ {
		s.Update(frame, nil)
	}
	if s.projectiles.Live() != 1 {
		t.Fatalf("ally fired %d projectiles, want 1", s.projectiles.Live())
	}
	p := s.projectiles.At(0)
	want := s.enemies.At(near).Pos.Sub(allyOffset).Normalize()
	if math.Abs(p.Dir.X-want.X) > 1e-6 || math.Abs(p.Dir.Y-want.Y) > 1e-6 {
		t.Fatalf("ally aimed %+v, want %+v", p.Dir, want)
	}
}

func TestBulletStormFiresSix(t *testing.T) {
	s := newTestSession(t)
	grant(t, s, skill.BulletStorm)
	s.Update(StormPeriod, nil)
	if got := s.projectiles.Live(); got != StormShots {
		t.Fatalf("storm fired %d, want %d", got, StormShots)
	}
}
