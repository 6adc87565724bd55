package session

import (
	"slices"

	"github.com/tomz197/survivors/internal/entity"
	"github.com/tomz197/survivors/internal/physics"
	"github.com/tomz197/survivors/internal/skill"
)

// collideOrbs pulls overlapping orbs toward the player and consumes the ones
// within capture distance.
func (s *Session) collideOrbs() {
	slots := s.orbs.Slots()
	for i := range slots {
		o := &slots[i]
		if !o.Enabled {
			continue
		}
		if !physics.CirclesOverlap(s.player.Pos, s.player.Radius, o.Pos, o.Radius) {
			continue
		}
		if physics.Distance(s.player.Pos, o.Pos) <= CaptureDistance {
			o.Collect()
			s.player.Experience++
			s.stats.OrbsCollected++
			continue
		}
		o.Pos = physics.StepToward(o.Pos, s.player.Pos, OrbPullSpeed)
	}
}

// collideEnemies steps every enemy toward the player and resolves melee
// contact. A touching enemy is removed without an orb and deals contact damage.
func (s *Session) collideEnemies() {
	slots := s.enemies.Slots()
	for i := range slots {
		e := &slots[i]
		if !e.Enabled {
			continue
		}
		e.StepToward(s.player.Pos)
		if !physics.CirclesOverlap(s.player.Pos, s.player.Radius, e.Pos, e.Radius) {
			continue
		}
		e.Disable()
		s.damagePlayer(ContactDamage)
		if !s.running() {
			return
		}
	}
}

// collideProjectiles hits each live projectile against the lowest-index
// enemy it overlaps.
func (s *Session) collideProjectiles() {
	s.buildGrid()
	slots := s.projectiles.Slots()
	for i := range slots {
		pr := &slots[i]
		if !pr.Enabled {
			continue
		}
		target := s.firstEnemyIn(pr.Pos, pr.Radius)
		if target < 0 {
			continue
		}

		impact, damage := pr.Pos, pr.Damage
		splash := pr.Radius * FracturedHeartFactor
		pr.Disable()
		s.stats.ProjectilesHit++
		s.audio.PlayOneShot(SoundHit)

		if s.skills.Has(skill.FracturedHeart) && s.player.Health <= 1 {
			s.fx.blast.Start(entity.EffectExplosion, impact, entity.TintBlue, explosionFrames, 2)
			for _, j := range s.enemiesIn(impact, splash) {
				s.damageEnemy(j, damage)
			}
		}
		s.damageEnemy(target, damage)
	}
}

// buildGrid indexes the enabled enemies for this frame's broad phase.
func (s *Session) buildGrid() {
	s.grid.Clear()
	for i, e := range s.enemies.Slots() {
		if e.Enabled {
			s.grid.Insert(e.Pos, i)
		}
	}
}

// enemiesIn returns, in ascending index order, the enabled enemies whose
// circle overlaps the circle (center, radius). The result is reused by the
// next call.
func (s *Session) enemiesIn(center physics.Vec2, radius float64) []int {
	s.candidates = s.candidates[:0]
	slots := s.enemies.Slots()
	s.grid.QueryRadius(center, radius+s.cfg.EnemyRadius, func(i int) bool {
		e := &slots[i]
		if e.Enabled && physics.CirclesOverlap(center, radius, e.Pos, e.Radius) {
			s.candidates = append(s.candidates, i)
		}
		return false
	})
	slices.Sort(s.candidates)
	return s.candidates
}

// firstEnemyIn returns the lowest enemy index overlapping the circle, or -1.
func (s *Session) firstEnemyIn(center physics.Vec2, radius float64) int {
	hits := s.enemiesIn(center, radius)
	if len(hits) == 0 {
		return -1
	}
	return hits[0]
}

// pushEnemiesAway shoves enemies crowding the player outward.
func (s *Session) pushEnemiesAway() {
	slots := s.enemies.Slots()
	for i := range slots {
		e := &slots[i]
		if !e.Enabled {
			continue
		}
		away := e.Pos.Sub(s.player.Pos)
		d := away.Len()
		if d > 0 && d < PushRadius {
			e.Pos = e.Pos.Add(away.Normalize().Scale(PushStrength - d))
		}
	}
}

// damagePlayer applies melee damage and everything that reacts to it.
func (s *Session) damagePlayer(damage int) {
	s.pushEnemiesAway()
	s.player.Hurt(damage)
	s.runDamagedSkills()
	if s.player.Health == 0 {
		s.handleLethal()
	}
}
