package session

import (
	"github.com/tomz197/survivors/internal/entity"
	"github.com/tomz197/survivors/internal/physics"
	"github.com/tomz197/survivors/internal/skill"
)

// damageEnemy applies damage to enemy i and resolves its death.
func (s *Session) damageEnemy(i, damage int) {
	e := s.enemies.At(i)
	if !e.Enabled {
		return
	}
	if e.TakeDamage(damage) {
		s.killEnemy(i)
	}
}

// killEnemy is the single death path for every ranged or skill kill: credit
// the kill, drop one orb, play the kill effect, run on-kill skills and park
// the slot off-map.
func (s *Session) killEnemy(i int) {
	e := s.enemies.At(i)
	pos := e.Pos
	e.Disable()

	s.stats.Kills++
	s.spawnOrb(pos)
	s.fx.kill.Start(entity.EffectKill, pos, entity.TintYellow, killFrames, 1)
	s.runKilledSkills(pos)
}

// handleLethal runs when the player's health reaches zero.
func (s *Session) handleLethal() {
	if s.skills.Has(skill.Resurrection) && !s.resurrectionUsed {
		s.revive()
		return
	}
	s.state = StateDead
	s.offer = s.offerBuf[:0]
	s.log.Info("player died",
		"time", s.elapsed,
		"level", s.player.Level,
		"kills", s.stats.Kills)
}

// revive brings the player back once per run with a cleared arena.
func (s *Session) revive() {
	s.resurrectionUsed = true
	s.player.Health = 1
	s.player.Pos = physics.Vec2{}
	s.player.Facing = entity.FacingIdle
	s.player.AnimFrame = 0

	s.enemies.Clear()
	s.projectiles.Clear()
	s.orbs.Clear()
	s.fx.clear()
	s.fx.aura.Start(entity.EffectRevive, s.player.Pos, entity.TintGreen, reviveFrames, 1.6)

	s.state = StatePlaying
	s.offer = s.offerBuf[:0]
	s.reviveCooldown = ReviveCooldown
	s.audio.PlayOneShot(SoundRevive)
	s.log.Info("player resurrected", "time", s.elapsed)
}
