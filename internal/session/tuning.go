package session

import "github.com/tomz197/survivors/internal/physics"

// Gameplay tuning. Distances are world units; periods are seconds unless
// the name says frames.
const (
	VictoryTime        = 120.0
	ReviveCooldown     = 0.5
	SpawnThreshold     = 2.0
	ExperiencePerLevel = 10

	CaptureDistance = 2.0
	OrbPullSpeed    = 4.0
	OrbScatter      = 5.0

	ContactDamage = 1
	PushRadius    = 10.0
	PushStrength  = 120.0

	BaseFireInterval = 0.3

	BifurcationAngle = 5.0
	BifurcationReach = 100.0

	AllyPeriod = 0.5
	AllyRange  = 1000.0

	StormPeriod = 3.0
	StormShots  = 6

	RegenPeriod = 60.0

	FuryDuration  = 15.0
	FurySpeedMul  = 1.25
	FuryDamageMul = 2.0

	ExplosionDamage       = 30
	ExplosionRadiusFactor = 12.0

	FracturedHeartFactor = 20.0

	SawOrbit       = 100.0
	SawStep        = 3.0 // Degrees per frame
	SawRadius      = 10.0
	SawEveryFrames = 10
	SawDamage      = 20

	ImprovedShotBonus = 1.2
	AgileBonus        = 1.2
	FastShotBonus     = 1.25
	MagnetFactor      = 1.25

	gridCellSize = 64.0
)

// Ally fires from this offset relative to the player.
var allyOffset = physics.Vec2{X: 15, Y: 5}

// Wandering souls fire at these headings, in degrees.
var soulHeadings = [...]float64{30, 150, 270}

// Effect animation lengths, in frames.
const (
	spawnFrames     = 6
	killFrames      = 6
	explosionFrames = 6
	reviveFrames    = 12
	healFrames      = 1
)
