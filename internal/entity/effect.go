package entity

import "github.com/tomz197/survivors/internal/physics"

// EffectFrameTime is how long each animation frame stays on screen, in seconds.
const EffectFrameTime = 0.03

// EffectKind selects the animation a renderer plays for a slot.
type EffectKind int

const (
	EffectSpawn EffectKind = iota
	EffectKill
	EffectExplosion
	EffectHeal
	EffectRevive
)

// Tint is a palette index for effect colors.
type Tint int

const (
	TintWhite Tint = iota
	TintYellow
	TintBlue
	TintGreen
)

// Effect is a transient animation slot. Purely cosmetic.
type Effect struct {
	Kind   EffectKind
	Pos    physics.Vec2
	Active bool
	Frame  int
	Frames int
	Timer  float64
	Tint   Tint
	Scale  float64
}

// EffectPool hands out the first inactive slot. Unlike the gameplay pools it
// never overwrites: when every slot is busy the effect is simply skipped.
type EffectPool struct {
	slots []Effect
}

// NewEffectPool allocates capacity slots.
func NewEffectPool(capacity int) *EffectPool {
	if capacity < 1 {
		capacity = 1
	}
	p := &EffectPool{slots: make([]Effect, capacity)}
	p.Clear()
	return p
}

// Start activates a free slot. Returns false if every slot is busy.
func (p *EffectPool) Start(kind EffectKind, pos physics.Vec2, tint Tint, frames int, scale float64) bool {
	for i := range p.slots {
		e := &p.slots[i]
		if e.Active {
			continue
		}
		*e = Effect{
			Kind:   kind,
			Pos:    pos,
			Active: true,
			Frames: frames,
			Tint:   tint,
			Scale:  scale,
		}
		return true
	}
	return false
}

// Update advances every active animation by dt and retires finished ones.
func (p *EffectPool) Update(dt float64) {
	for i := range p.slots {
		e := &p.slots[i]
		if !e.Active {
			continue
		}
		e.Timer += dt
		if e.Timer < EffectFrameTime {
			continue
		}
		e.Timer = 0
		e.Frame++
		if e.Frame >= e.Frames {
			e.Active = false
			e.Frame = 0
			e.Pos = OffMap
		}
	}
}

// Clear retires every slot.
func (p *EffectPool) Clear() {
	for i := range p.slots {
		p.slots[i] = Effect{Pos: OffMap, Scale: 1}
	}
}

// Slots exposes the slots for rendering.
func (p *EffectPool) Slots() []Effect {
	return p.slots
}

// Active counts running animations.
func (p *EffectPool) Active() int {
	n := 0
	for _, e := range p.slots {
		if e.Active {
			n++
		}
	}
	return n
}
