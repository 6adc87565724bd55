package session

import (
	"math"

	"github.com/tomz197/survivors/internal/entity"
	"github.com/tomz197/survivors/internal/physics"
	"github.com/tomz197/survivors/internal/skill"
)

// hooks are the effects of one skill, keyed by the moment they run. A nil
// hook means the skill does nothing at that moment.
type hooks struct {
	latch   func(s *Session)                           // Apply-once bonuses, checked every frame
	frame   func(s *Session, dt float64)               // Timers and periodic effects
	shot    func(s *Session, origin, aim physics.Vec2) // After every player shot
	damaged func(s *Session)                           // After the player takes melee damage
	killed  func(s *Session, pos physics.Vec2)         // After any enemy death
	late    func(s *Session)                           // After player movement
}

// skillHooks is filled in init because the hooks reach back into the
// functions that read the table.
var skillHooks [skill.Count]hooks

func init() {
	skillHooks = [skill.Count]hooks{
		skill.ImprovedShot: {latch: func(s *Session) {
			s.applyLatch(skill.ImprovedShot, func() {
				s.player.BaseDamage = int(float64(s.player.BaseDamage) * ImprovedShotBonus)
			})
		}},
		skill.AgileMovement: {latch: func(s *Session) {
			s.applyLatch(skill.AgileMovement, func() {
				s.player.BaseSpeed *= AgileBonus
			})
		}},
		skill.FastShot: {latch: func(s *Session) {
			s.applyLatch(skill.FastShot, func() {
				s.shootVelocity *= FastShotBonus
			})
		}},
		skill.OrbMagnet: {latch: func(s *Session) {
			s.applyLatch(skill.OrbMagnet, func() {
				s.radiusMul *= MagnetFactor
				s.orbs.SetRadius(s.OrbRadius())
			})
		}},
		skill.Regeneration: {frame: func(s *Session, dt float64) {
			if s.regen.Tick(dt) && s.player.Heal(1) {
				s.fx.aura.Start(entity.EffectHeal, s.player.Pos, entity.TintGreen, healFrames, 1.6)
				s.audio.PlayOneShot(SoundHeal)
			}
		}},
		skill.Ally: {frame: func(s *Session, dt float64) {
			if !s.ally.Tick(dt) {
				return
			}
			if i := s.enemies.Nearest(s.player.Pos, AllyRange); i >= 0 {
				s.spawnProjectile(s.player.Pos.Add(allyOffset), s.enemies.At(i).Pos)
			}
		}},
		skill.BulletStorm: {frame: func(s *Session, dt float64) {
			if !s.storm.Tick(dt) {
				return
			}
			step := 360.0 / StormShots
			for k := 0; k < StormShots; k++ {
				s.spawnProjectile(s.player.Pos, s.player.Pos.Add(physics.Heading(float64(k)*step)))
			}
		}},
		skill.Fury: {
			frame: func(s *Session, dt float64) {
				if s.fury.Tick(dt) {
					s.derive()
					s.log.Debug("fury ended")
				}
			},
			damaged: func(s *Session) {
				s.fury.Start()
				s.derive()
			},
		},
		skill.Bifurcation: {shot: func(s *Session, origin, aim physics.Vec2) {
			d := aim.Sub(origin)
			angle := math.Atan2(d.Y, d.X)*180/math.Pi + BifurcationAngle
			s.spawnProjectile(origin, origin.Add(physics.Heading(angle).Scale(BifurcationReach)))
		}},
		skill.Explosion: {damaged: func(s *Session) {
			s.explode()
		}},
		skill.WanderingSouls: {killed: func(s *Session, pos physics.Vec2) {
			for _, h := range soulHeadings {
				s.spawnProjectile(pos, pos.Add(physics.Heading(h)))
			}
		}},
		skill.SpinningSaw: {late: func(s *Session) {
			s.spinSaw()
		}},
	}
}

// applyLatch runs fn once for every acquired stack of id not yet applied,
// then recomputes the derived player stats.
func (s *Session) applyLatch(id skill.ID, fn func()) {
	if s.skills.Pending(id) == 0 {
		return
	}
	for s.skills.Pending(id) > 0 {
		fn()
		s.skills.MarkApplied(id)
	}
	s.derive()
}

// derive recomputes player speed and damage from base values and fury.
func (s *Session) derive() {
	speedMul, damageMul := 1.0, 1.0
	if s.fury.Active() {
		speedMul, damageMul = FurySpeedMul, FuryDamageMul
	}
	s.player.Derive(speedMul, damageMul)
}

func (s *Session) applyLatches() {
	for id := skill.ID(0); id < skill.Count; id++ {
		if h := skillHooks[id].latch; h != nil && s.skills.Has(id) {
			h(s)
		}
	}
}

func (s *Session) runFrameSkills(dt float64) {
	s.applyLatches()
	for id := skill.ID(0); id < skill.Count; id++ {
		if h := skillHooks[id].frame; h != nil && s.skills.Has(id) {
			h(s, dt)
		}
	}
}

func (s *Session) runShotSkills(origin, aim physics.Vec2) {
	for id := skill.ID(0); id < skill.Count; id++ {
		if h := skillHooks[id].shot; h != nil && s.skills.Has(id) {
			h(s, origin, aim)
		}
	}
}

func (s *Session) runDamagedSkills() {
	for id := skill.ID(0); id < skill.Count; id++ {
		if h := skillHooks[id].damaged; h != nil && s.skills.Has(id) {
			h(s)
		}
	}
}

func (s *Session) runKilledSkills(pos physics.Vec2) {
	for id := skill.ID(0); id < skill.Count; id++ {
		if h := skillHooks[id].killed; h != nil && s.skills.Has(id) {
			h(s, pos)
		}
	}
}

func (s *Session) runLateSkills() {
	for id := skill.ID(0); id < skill.Count; id++ {
		if h := skillHooks[id].late; h != nil && s.skills.Has(id) {
			h(s)
		}
	}
}

// explode damages every enemy around the player.
func (s *Session) explode() {
	radius := s.player.Radius * ExplosionRadiusFactor
	s.fx.blast.Start(entity.EffectExplosion, s.player.Pos, entity.TintBlue, explosionFrames, 2.5)
	s.audio.PlayOneShot(SoundExplosion)
	for i := 0; i < s.enemies.Cap(); i++ {
		e := s.enemies.At(i)
		if e.Enabled && physics.CirclesOverlap(s.player.Pos, radius, e.Pos, e.Radius) {
			s.damageEnemy(i, ExplosionDamage)
		}
	}
}

// SawPosition returns where the orbiting saw is this frame.
func (s *Session) SawPosition() physics.Vec2 {
	return s.player.Pos.Add(physics.Heading(s.sawAngle).Scale(SawOrbit))
}

// spinSaw advances the saw and cuts every enemy under it every few frames.
func (s *Session) spinSaw() {
	s.sawAngle = math.Mod(s.sawAngle+SawStep, 360)
	s.sawFrames++
	if s.sawFrames < SawEveryFrames {
		return
	}
	s.sawFrames = 0
	s.buildGrid()
	for _, i := range s.enemiesIn(s.SawPosition(), SawRadius) {
		s.damageEnemy(i, SawDamage)
	}
}
