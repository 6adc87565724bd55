package session

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/survivors/internal/entity"
	"github.com/tomz197/survivors/internal/physics"
	"github.com/tomz197/survivors/internal/skill"
)

const frame = 1.0 / 60

// fixedRate spawns at a constant rate with fixed stats.
type fixedRate struct {
	rate  float64
	stats entity.EnemyStats
}

func (f fixedRate) SpawnRate(float64) float64            { return f.rate }
func (f fixedRate) EnemyStats(float64) entity.EnemyStats { return f.stats }

type stubController struct {
	move        physics.Vec2
	aim         physics.Vec2
	fire        bool
	debugToggle bool
	debugSpawn  bool
}

func (c *stubController) MovementIntent() physics.Vec2 { return c.move }
func (c *stubController) AimPoint() physics.Vec2       { return c.aim }
func (c *stubController) FireRequested() bool          { return c.fire }
func (c *stubController) DebugToggleRequested() bool   { return c.debugToggle }
func (c *stubController) DebugSpawnRequested() bool    { return c.debugSpawn }

type countingRecorder struct {
	calls int
	name  string
	kills int
	err   error
}

func (r *countingRecorder) Record(name string, kills int) error {
	r.calls++
	r.name, r.kills = name, kills
	return r.err
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Rand = rand.New(rand.NewSource(1))
	cfg.Difficulty = fixedRate{stats: entity.EnemyStats{Health: 20, Speed: 1.35}}
	cfg.OrbScatter = 0
	return cfg
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return New("tester", testConfig())
}

// grant acquires id through the upgrade menu, as a player would.
func grant(t *testing.T, s *Session, id skill.ID) {
	t.Helper()
	s.state = StateLevelUp
	s.offer = append(s.offerBuf[:0], id)
	if !s.AcceptSkill(id) {
		t.Fatalf("accept %v rejected", id)
	}
}

func spawnStill(s *Session, pos physics.Vec2, health int) int {
	idx, _ := s.enemies.Spawn(pos, entity.EnemyRadius, entity.EnemyStats{Health: health})
	return idx
}

func TestScenarioEnemyWalksInAndHitsOnce(t *testing.T) {
	cfg := testConfig()
	cfg.EnemyRadius = 0.5
	s := New("tester", cfg)
	s.player.Radius = 0.5
	idx, _ := s.enemies.Spawn(physics.Vec2{X: 50}, 0.5, entity.EnemyStats{Health: 20, Speed: 2})

	for i := 1; i < 25; i++ {
		s.Update(frame, nil)
		e := s.enemies.At(idx)
		if !e.Enabled {
			t.Fatalf("enemy made contact early at frame %d", i)
		}
		if want := 50 - 2*float64(i); e.Pos.X != want {
			t.Fatalf("frame %d: enemy at %v, want %v", i, e.Pos.X, want)
		}
	}

	s.Update(frame, nil)
	if s.enemies.At(idx).Enabled {
		t.Fatal("enemy still alive after covering 50 units")
	}
	if s.player.Health != entity.PlayerHealth-1 {
		t.Fatalf("health = %d, want %d", s.player.Health, entity.PlayerHealth-1)
	}
	if s.stats.Kills != 0 || s.orbs.Live() != 0 {
		t.Fatalf("melee death must not credit a kill or drop an orb: kills=%d orbs=%d", s.stats.Kills, s.orbs.Live())
	}
}

func TestScenarioFracturedHeartSplash(t *testing.T) {
	s := newTestSession(t)
	s.skills.Acquire(skill.FracturedHeart)
	s.player.Health = 1

	target := spawnStill(s, physics.Vec2{X: 100}, 40)
	others := []int{
		spawnStill(s, physics.Vec2{X: 100, Y: 40}, 20),
		spawnStill(s, physics.Vec2{X: 100, Y: -40}, 20),
		spawnStill(s, physics.Vec2{X: 140}, 20),
	}
	s.projectiles.Spawn(physics.Vec2{X: 80}, physics.Vec2{X: 200}, 10)

	s.Update(frame, nil)

	// The struck enemy takes the splash and then the direct hit.
	if h := s.enemies.At(target).Health; h != 40-2*10 {
		t.Fatalf("target health = %d, want %d", h, 40-2*10)
	}
	for _, i := range others {
		if h := s.enemies.At(i).Health; h != 10 {
			t.Fatalf("enemy %d health = %d, want 10", i, h)
		}
	}
	if s.projectiles.Live() != 0 {
		t.Fatal("projectile should be spent on impact")
	}
}

func TestFracturedHeartSplashKillSkipsDirectHit(t *testing.T) {
	s := newTestSession(t)
	s.skills.Acquire(skill.FracturedHeart)
	s.player.Health = 1

	target := spawnStill(s, physics.Vec2{X: 100}, 10)
	s.projectiles.Spawn(physics.Vec2{X: 80}, physics.Vec2{X: 200}, 10)

	s.Update(frame, nil)

	if s.enemies.At(target).Enabled {
		t.Fatal("target survived the splash")
	}
	if s.stats.Kills != 1 {
		t.Fatalf("kills = %d, want 1", s.stats.Kills)
	}
}

func TestFracturedHeartNeedsLowHealth(t *testing.T) {
	s := newTestSession(t)
	s.skills.Acquire(skill.FracturedHeart)

	target := spawnStill(s, physics.Vec2{X: 100}, 20)
	bystander := spawnStill(s, physics.Vec2{X: 100, Y: 40}, 20)
	s.projectiles.Spawn(physics.Vec2{X: 80}, physics.Vec2{X: 200}, 10)

	s.Update(frame, nil)

	if s.enemies.At(target).Health != 10 {
		t.Fatal("direct hit missed")
	}
	if s.enemies.At(bystander).Health != 20 {
		t.Fatal("splash applied at full health")
	}
}

func TestScenarioOrbMagnetStacks(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 3; i++ {
		grant(t, s, skill.OrbMagnet)
	}
	want := entity.OrbBaseRadius * math.Pow(1.25, 3)
	if got := s.OrbRadius(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("orb radius = %v, want %v", got, want)
	}
	for _, id := range s.AvailableSkills() {
		if id == skill.OrbMagnet {
			t.Fatal("orb magnet still available after three stacks")
		}
	}

	s.state = StateLevelUp
	s.offer = append(s.offerBuf[:0], skill.OrbMagnet)
	if s.AcceptSkill(skill.OrbMagnet) {
		t.Fatal("fourth orb magnet accepted")
	}
	if got := s.OrbRadius(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("rejected stack changed radius to %v", got)
	}

	idx := s.spawnOrb(physics.Vec2{X: 500})
	if r := s.orbs.At(idx).Radius; math.Abs(r-want) > 1e-9 {
		t.Fatalf("new orb radius = %v, want %v", r, want)
	}
}

func TestScenarioVictoryRecordsOnce(t *testing.T) {
	rec := &countingRecorder{}
	cfg := testConfig()
	cfg.Scores = rec
	cfg.VictoryTime = 1
	s := New("tester", cfg)
	s.stats.Kills = 7

	for i := 0; i < 200; i++ {
		s.Update(frame, nil)
	}
	if s.State() != StateVictory {
		t.Fatalf("state = %v, want victory", s.State())
	}
	if rec.calls != 1 || rec.name != "tester" || rec.kills != 7 {
		t.Fatalf("recorder got %d calls (%q, %d)", rec.calls, rec.name, rec.kills)
	}

	s.win()
	if rec.calls != 1 {
		t.Fatalf("re-evaluated victory recorded again: %d calls", rec.calls)
	}

	s.ResetFull()
	if s.Name() != "" || s.State() != StatePlaying {
		t.Fatalf("full reset left name=%q state=%v", s.Name(), s.State())
	}
	s.SetName("again")
	for i := 0; i < 70; i++ {
		s.Update(frame, nil)
	}
	if rec.calls != 2 || rec.name != "again" {
		t.Fatalf("second victory: %d calls, name %q", rec.calls, rec.name)
	}
}

func TestVictoryRecorderFailureIsNotFatal(t *testing.T) {
	cfg := testConfig()
	cfg.Scores = &countingRecorder{err: errors.New("disk full")}
	cfg.VictoryTime = frame
	s := New("tester", cfg)
	s.Update(frame, nil)
	if s.State() != StateVictory {
		t.Fatalf("state = %v, want victory", s.State())
	}
}

func TestHealthStaysInBounds(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty = entity.NewConstantDifficulty()
	s := New("tester", cfg)
	grant(t, s, skill.Regeneration)
	grant(t, s, skill.Resurrection)

	ctrl := &stubController{move: physics.Vec2{X: 1}, aim: physics.Vec2{X: 1000}, fire: true}
	for i := 0; i < 4000; i++ {
		s.Update(frame, ctrl)
		if h := s.player.Health; h < 0 || h > s.player.MaxHealth {
			t.Fatalf("frame %d: health %d outside [0, %d]", i, h, s.player.MaxHealth)
		}
		switch s.State() {
		case StateDead:
			s.Restart()
		case StateLevelUp:
			s.CancelUpgrade()
		}
	}
}

func TestRestartKeepsName(t *testing.T) {
	s := newTestSession(t)
	grant(t, s, skill.Fury)
	s.stats.Kills = 3
	s.state = StateDead

	s.Restart()
	if s.Name() != "tester" {
		t.Fatalf("name = %q after soft reset", s.Name())
	}
	if s.skills.Has(skill.Fury) || s.stats.Kills != 0 || s.State() != StatePlaying {
		t.Fatal("soft reset did not clear the run")
	}
}

func TestDebugToggleAndOrbSpawn(t *testing.T) {
	s := newTestSession(t)
	ctrl := &stubController{aim: physics.Vec2{X: 300, Y: 300}, debugSpawn: true}

	s.Update(frame, ctrl)
	if s.orbs.Live() != 0 {
		t.Fatal("debug spawn worked outside debug mode")
	}

	ctrl.debugToggle = true
	s.Update(frame, ctrl)
	if !s.Debug() || s.orbs.Live() != 1 {
		t.Fatalf("debug=%v orbs=%d, want true and 1", s.Debug(), s.orbs.Live())
	}
}

func TestSpawnAccumulatorBurst(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty = fixedRate{rate: 1, stats: entity.EnemyStats{Health: 20}}
	s := New("tester", cfg)

	s.Update(1.5, nil)
	if s.enemies.Live() != 0 {
		t.Fatal("spawned before reaching the threshold")
	}
	s.Update(1.0, nil)
	if got := s.enemies.Live(); got != 2 {
		t.Fatalf("live enemies = %d, want 2", got)
	}
	if math.Abs(s.spawnAcc-0.5) > 1e-9 {
		t.Fatalf("accumulator = %v, want 0.5", s.spawnAcc)
	}
	for _, e := range s.enemies.Slots() {
		if !e.Enabled {
			continue
		}
		if math.Abs(e.Pos.X) <= entity.SafeZone || math.Abs(e.Pos.Y) <= entity.SafeZone {
			t.Fatalf("enemy spawned in the safe zone at %+v", e.Pos)
		}
	}
}

type recordingRenderer struct {
	kinds map[entity.Kind]int
}

func (r *recordingRenderer) DrawEntity(kind entity.Kind, _ physics.Vec2, _ VisualState) {
	r.kinds[kind]++
}

func TestRenderWalksPools(t *testing.T) {
	s := newTestSession(t)
	grant(t, s, skill.SpinningSaw)
	spawnStill(s, physics.Vec2{X: 900}, 20)
	s.spawnOrb(physics.Vec2{X: 500})
	s.projectiles.Spawn(physics.Vec2{}, physics.Vec2{X: 1}, 10)

	r := &recordingRenderer{kinds: map[entity.Kind]int{}}
	s.Render(r)
	for _, k := range []entity.Kind{entity.KindPlayer, entity.KindOrb, entity.KindEnemy, entity.KindProjectile, entity.KindSaw} {
		if r.kinds[k] != 1 {
			t.Fatalf("%v drawn %d times, want 1", k, r.kinds[k])
		}
	}
}
