package session

import (
	"github.com/tomz197/survivors/internal/entity"
	"github.com/tomz197/survivors/internal/physics"
)

// Update advances the session by one frame of dt seconds.
//
// Frame order: revive freeze → clock and victory → level-up → spawning →
// skill effects → debug → firing → projectile and effect motion →
// collisions (orbs, enemies, projectiles) → player movement → saw.
// Outside StatePlaying nothing but the debug toggle is processed.
func (s *Session) Update(dt float64, ctrl Controller) {
	if ctrl != nil && ctrl.DebugToggleRequested() {
		s.debug = !s.debug
		s.log.Debug("debug mode", "on", s.debug)
	}
	if s.state != StatePlaying {
		return
	}

	if s.reviveCooldown > 0 {
		s.reviveCooldown -= dt
		if s.reviveCooldown < 0 {
			s.reviveCooldown = 0
		}
		return
	}

	s.elapsed += dt
	if s.elapsed >= s.cfg.VictoryTime {
		s.win()
		return
	}

	if s.checkLevelUp() {
		return
	}

	s.spawnEnemies(dt)
	s.runFrameSkills(dt)
	if !s.running() {
		return
	}

	if ctrl != nil {
		s.handleDebugSpawn(ctrl)
		s.handleFire(dt, ctrl)
	}

	s.projectiles.Update()
	s.fx.update(dt)

	s.collideOrbs()
	s.collideEnemies()
	if !s.running() {
		return
	}
	s.collideProjectiles()

	var intent physics.Vec2
	if ctrl != nil {
		intent = ctrl.MovementIntent()
	}
	s.player.Move(intent, s.cfg.PlayerBound)
	s.player.Animate(dt)

	s.runLateSkills()
}

// running reports whether the rest of the frame should still be simulated.
func (s *Session) running() bool {
	return s.state == StatePlaying && s.reviveCooldown <= 0
}

// spawnEnemies fills the spawn accumulator and converts every whole unit of
// backlog into one enemy once the threshold is reached.
func (s *Session) spawnEnemies(dt float64) {
	s.spawnAcc += dt * s.cfg.Difficulty.SpawnRate(s.elapsed)
	if s.spawnAcc < SpawnThreshold {
		return
	}
	n := int(s.spawnAcc)
	s.spawnAcc -= float64(n)
	for i := 0; i < n; i++ {
		pos := entity.SpawnPosition(s.rng, s.player.Pos)
		s.spawnEnemy(pos)
	}
}

func (s *Session) spawnEnemy(pos physics.Vec2) int {
	stats := s.cfg.Difficulty.EnemyStats(s.elapsed)
	idx, overwrote := s.enemies.Spawn(pos, s.cfg.EnemyRadius, stats)
	if overwrote {
		s.log.Debug("enemy pool full, overwrote oldest", "slot", idx, "overwrites", s.enemies.Overwrites())
	}
	s.stats.EnemiesSpawned++
	s.fx.spawn.Start(entity.EffectSpawn, pos, entity.TintWhite, spawnFrames, 1)
	return idx
}

func (s *Session) spawnOrb(pos physics.Vec2) int {
	if sc := s.cfg.OrbScatter; sc > 0 {
		pos = pos.Add(physics.Vec2{X: s.rng.Float64() * sc, Y: s.rng.Float64() * sc})
	}
	idx, overwrote := s.orbs.Spawn(pos, s.OrbRadius())
	if overwrote {
		s.log.Debug("orb pool full, overwrote oldest", "slot", idx, "overwrites", s.orbs.Overwrites())
	}
	return idx
}

func (s *Session) spawnProjectile(origin, aim physics.Vec2) int {
	idx, overwrote := s.projectiles.Spawn(origin, aim, s.player.Damage)
	if overwrote {
		s.log.Debug("projectile pool full, overwrote oldest", "slot", idx, "overwrites", s.projectiles.Overwrites())
	}
	s.stats.ProjectilesFired++
	return idx
}

func (s *Session) handleDebugSpawn(ctrl Controller) {
	if s.debug && ctrl.DebugSpawnRequested() {
		s.orbs.Spawn(ctrl.AimPoint(), s.OrbRadius())
	}
}

// fireInterval is the minimum time between player shots.
func (s *Session) fireInterval() float64 {
	return BaseFireInterval / s.shootVelocity
}

func (s *Session) handleFire(dt float64, ctrl Controller) {
	s.sinceShot += dt
	if !ctrl.FireRequested() || s.sinceShot < s.fireInterval() {
		return
	}
	s.sinceShot = 0
	aim := ctrl.AimPoint()
	s.spawnProjectile(s.player.Pos, aim)
	s.runShotSkills(s.player.Pos, aim)
	s.audio.PlayOneShot(SoundShoot)
}
