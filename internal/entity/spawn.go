package entity

import (
	"math/rand"

	"github.com/tomz197/survivors/internal/physics"
)

// Spawn area around the player: samples land within SpawnRange on each axis
// but never within SafeZone of the player on that axis.
const (
	SpawnRange = 2000.0
	SafeZone   = 700.0
)

// SpawnPosition samples an enemy spawn point around center. Each axis is drawn
// uniformly from [-SpawnRange, SpawnRange] and redrawn while it falls inside
// the safe zone.
func SpawnPosition(rng *rand.Rand, center physics.Vec2) physics.Vec2 {
	return physics.Vec2{
		X: center.X + sampleAxis(rng),
		Y: center.Y + sampleAxis(rng),
	}
}

func sampleAxis(rng *rand.Rand) float64 {
	for {
		v := (rng.Float64()*2 - 1) * SpawnRange
		if v < -SafeZone || v > SafeZone {
			return v
		}
	}
}

// Difficulty decides how fast enemies arrive and how strong they are.
// elapsed is the session time in seconds.
type Difficulty interface {
	// SpawnRate is how fast the spawn accumulator fills, in units per second.
	SpawnRate(elapsed float64) float64
	// EnemyStats returns the stats of an enemy spawned now.
	EnemyStats(elapsed float64) EnemyStats
}

// Default spawn tuning.
const (
	DefaultSpawnRate   = 1.5
	DefaultSpawnGrowth = 0.3
	DefaultEnemyHealth = 20
	DefaultEnemySpeed  = 1.35
)

// ConstantDifficulty spawns enemies with fixed stats at a linearly growing rate.
type ConstantDifficulty struct {
	BaseRate float64
	Growth   float64 // Added to the rate per second of session time
	Stats    EnemyStats
}

// NewConstantDifficulty returns the default ruleset.
func NewConstantDifficulty() ConstantDifficulty {
	return ConstantDifficulty{
		BaseRate: DefaultSpawnRate,
		Growth:   DefaultSpawnGrowth,
		Stats:    EnemyStats{Health: DefaultEnemyHealth, Speed: DefaultEnemySpeed},
	}
}

func (d ConstantDifficulty) SpawnRate(elapsed float64) float64 {
	return d.BaseRate + elapsed*d.Growth
}

func (d ConstantDifficulty) EnemyStats(float64) EnemyStats {
	return d.Stats
}

// RampDifficulty is ConstantDifficulty with enemies that toughen over time.
type RampDifficulty struct {
	ConstantDifficulty
	HealthPerMinute float64
	SpeedPerMinute  float64
	MaxSpeed        float64
}

// NewRampDifficulty returns a ruleset where a two minute run ends with enemies
// at roughly twice the starting health.
func NewRampDifficulty() RampDifficulty {
	return RampDifficulty{
		ConstantDifficulty: NewConstantDifficulty(),
		HealthPerMinute:    10,
		SpeedPerMinute:     0.25,
		MaxSpeed:           1.9,
	}
}

func (d RampDifficulty) EnemyStats(elapsed float64) EnemyStats {
	minutes := elapsed / 60
	s := d.Stats
	s.Health += int(d.HealthPerMinute * minutes)
	s.Speed += d.SpeedPerMinute * minutes
	if d.MaxSpeed > 0 && s.Speed > d.MaxSpeed {
		s.Speed = d.MaxSpeed
	}
	return s
}

// ParseDifficulty maps a config name to a policy. Unknown names get the default.
func ParseDifficulty(name string) Difficulty {
	switch name {
	case "ramp":
		return NewRampDifficulty()
	default:
		return NewConstantDifficulty()
	}
}
