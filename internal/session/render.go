package session

import (
	"github.com/tomz197/survivors/internal/entity"
	"github.com/tomz197/survivors/internal/physics"
	"github.com/tomz197/survivors/internal/skill"
)

// VisualState is what a renderer needs beyond kind and position.
type VisualState struct {
	Radius float64
	Frame  int     // Animation frame (player walk cycle or effect frame)
	Frames int     // Total frames of an effect animation
	Health float64 // Enemy health ratio in [0, 1]
	Facing entity.Facing
	Effect entity.EffectKind
	Tint   entity.Tint
	Scale  float64
	Fury   bool
}

// Renderer draws one entity. Texture and glyph selection is up to it.
type Renderer interface {
	DrawEntity(kind entity.Kind, pos physics.Vec2, vs VisualState)
}

// Render walks the pools back to front: orbs, enemies, projectiles, effects,
// saw, then the player.
func (s *Session) Render(r Renderer) {
	for _, o := range s.orbs.Slots() {
		if o.Enabled {
			r.DrawEntity(entity.KindOrb, o.Pos, VisualState{Radius: o.Radius, Scale: 1})
		}
	}
	for _, e := range s.enemies.Slots() {
		if e.Enabled {
			r.DrawEntity(entity.KindEnemy, e.Pos, VisualState{Radius: e.Radius, Health: e.HealthRatio(), Scale: 1})
		}
	}
	for _, p := range s.projectiles.Slots() {
		if p.Enabled {
			r.DrawEntity(entity.KindProjectile, p.Pos, VisualState{Radius: p.Radius, Scale: 1})
		}
	}
	for _, pool := range [...]*entity.EffectPool{s.fx.spawn, s.fx.kill, s.fx.blast, s.fx.aura} {
		for _, fx := range pool.Slots() {
			if !fx.Active {
				continue
			}
			r.DrawEntity(entity.KindEffect, fx.Pos, VisualState{
				Frame:  fx.Frame,
				Frames: fx.Frames,
				Effect: fx.Kind,
				Tint:   fx.Tint,
				Scale:  fx.Scale,
			})
		}
	}
	if s.skills.Has(skill.SpinningSaw) {
		r.DrawEntity(entity.KindSaw, s.SawPosition(), VisualState{Radius: SawRadius, Frame: int(s.sawAngle), Scale: 1})
	}
	r.DrawEntity(entity.KindPlayer, s.player.Pos, VisualState{
		Radius: s.player.Radius,
		Frame:  s.player.AnimFrame,
		Facing: s.player.Facing,
		Scale:  1,
		Fury:   s.fury.Active(),
	})
}
