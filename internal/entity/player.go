package entity

import "github.com/tomz197/survivors/internal/physics"

// Player defaults for a fresh run.
const (
	PlayerSpeed        = 2.0
	PlayerAcceleration = 1.0
	PlayerRadius       = 10.0
	PlayerHealth       = 5
	PlayerDamage       = 10
	PlayerBound        = 2500.0 // Half side of the square the player is clamped to

	animFrameTime  = 0.1
	idleAnimFrames = 3
	walkAnimFrames = 4
)

// Facing is the walk animation the renderer should pick.
type Facing int

const (
	FacingIdle Facing = iota
	FacingUp
	FacingDown
	FacingRight
	FacingLeft
)

// Player is the survivor. Speed and Damage are derived from the Base values
// plus any active multipliers and must be refreshed through Derive.
type Player struct {
	Pos          physics.Vec2
	BaseSpeed    float64
	Speed        float64
	Acceleration float64
	Radius       float64
	Health       int
	MaxHealth    int
	BaseDamage   int
	Damage       int
	Level        int
	Experience   int

	Facing    Facing
	AnimFrame int
	animTimer float64
}

// NewPlayer returns a level 1 player at the origin.
func NewPlayer() Player {
	return Player{
		BaseSpeed:    PlayerSpeed,
		Speed:        PlayerSpeed,
		Acceleration: PlayerAcceleration,
		Radius:       PlayerRadius,
		Health:       PlayerHealth,
		MaxHealth:    PlayerHealth,
		BaseDamage:   PlayerDamage,
		Damage:       PlayerDamage,
		Level:        1,
	}
}

// Derive recomputes Speed and Damage from the base values.
func (p *Player) Derive(speedMul, damageMul float64) {
	p.Speed = p.BaseSpeed * speedMul
	p.Damage = int(float64(p.BaseDamage) * damageMul)
}

// Move steps the player along intent and clamps the result to the play area.
// intent is expected to be a unit vector or zero.
func (p *Player) Move(intent physics.Vec2, bound float64) {
	p.Pos = p.Pos.Add(intent.Scale(p.Speed * p.Acceleration)).Clamp(bound)
	p.Facing = facingFor(intent)
}

// Hurt removes damage hit points, never going below zero.
func (p *Player) Hurt(damage int) {
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal restores hit points up to MaxHealth. Reports whether anything changed.
func (p *Player) Heal(amount int) bool {
	if p.Health >= p.MaxHealth {
		return false
	}
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	return true
}

// Animate advances the walk/idle animation.
func (p *Player) Animate(dt float64) {
	frames := walkAnimFrames
	if p.Facing == FacingIdle {
		frames = idleAnimFrames
	}
	p.animTimer += dt
	if p.animTimer >= animFrameTime {
		p.animTimer = 0
		p.AnimFrame++
	}
	if p.AnimFrame >= frames {
		p.AnimFrame = 0
	}
}

func facingFor(intent physics.Vec2) Facing {
	switch {
	case intent.Y < 0:
		return FacingUp
	case intent.Y > 0:
		return FacingDown
	case intent.X > 0:
		return FacingRight
	case intent.X < 0:
		return FacingLeft
	default:
		return FacingIdle
	}
}
