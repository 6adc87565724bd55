// Package entity holds the fixed-capacity pools a session simulates:
// orbs, enemies, projectiles and transient visual effects, plus the player.
package entity

import "github.com/tomz197/survivors/internal/physics"

// OffMap is where disabled entities are parked. Nothing in play ever reaches it.
var OffMap = physics.Vec2{X: -100000, Y: -100000}

// Kind identifies an entity class for renderers.
type Kind int

const (
	KindPlayer Kind = iota
	KindOrb
	KindEnemy
	KindProjectile
	KindSaw
	KindEffect
)

// String returns a short lowercase name for logs and debug overlays.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindOrb:
		return "orb"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindSaw:
		return "saw"
	case KindEffect:
		return "effect"
	default:
		return "unknown"
	}
}
