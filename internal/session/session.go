// Package session runs one survivors playthrough: the entity pools, the skill
// engine, collisions and the progression state machine, advanced one frame at
// a time by Update.
package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/survivors/internal/entity"
	"github.com/tomz197/survivors/internal/physics"
	"github.com/tomz197/survivors/internal/skill"
)

// State is the phase of a session.
type State int

const (
	StatePlaying State = iota // Simulation running
	StateLevelUp              // Upgrade menu open, gameplay frozen
	StateDead                 // Waiting for Restart
	StateVictory              // Survived the time cap, waiting for ResetFull
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLevelUp:
		return "level-up"
	case StateDead:
		return "dead"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Sound identifies a one-shot audio cue.
type Sound int

const (
	SoundShoot Sound = iota
	SoundHit
	SoundExplosion
	SoundHeal
	SoundRevive
	SoundLevelUp
)

// Audio plays fire-and-forget sound cues.
type Audio interface {
	PlayOneShot(Sound)
}

// Controller is the player intent for one frame, already mapped to world space.
type Controller interface {
	MovementIntent() physics.Vec2 // Unit vector or zero
	AimPoint() physics.Vec2       // World position
	FireRequested() bool
	DebugToggleRequested() bool
	DebugSpawnRequested() bool // Spawn an orb at the aim point (debug mode only)
}

// ScoreRecorder persists a finished run.
type ScoreRecorder interface {
	Record(name string, kills int) error
}

// Stats are the counters shown on the death and victory screens.
type Stats struct {
	Kills            int
	OrbsCollected    int
	ProjectilesFired int
	ProjectilesHit   int
	EnemiesSpawned   int
}

// Config holds the collaborators and tunables of a session.
type Config struct {
	Rand       *rand.Rand
	Difficulty entity.Difficulty
	Logger     *log.Logger
	Audio      Audio
	Scores     ScoreRecorder

	OrbCapacity        int
	EnemyCapacity      int
	ProjectileCapacity int
	EffectCapacity     int

	EnemyRadius float64
	OrbScatter  float64 // Orbs drop up to this far from the death position on each axis
	VictoryTime float64
	PlayerBound float64
}

// DefaultConfig returns the standard ruleset with silent collaborators.
func DefaultConfig() Config {
	return Config{
		Rand:               rand.New(rand.NewSource(time.Now().UnixNano())),
		Difficulty:         entity.NewConstantDifficulty(),
		Logger:             log.New(io.Discard),
		OrbCapacity:        256,
		EnemyCapacity:      512,
		ProjectileCapacity: 32,
		EffectCapacity:     32,
		EnemyRadius:        entity.EnemyRadius,
		OrbScatter:         OrbScatter,
		VictoryTime:        VictoryTime,
		PlayerBound:        entity.PlayerBound,
	}
}

type nopAudio struct{}

func (nopAudio) PlayOneShot(Sound) {}

// effects groups the cosmetic animation pools.
type effects struct {
	spawn *entity.EffectPool
	kill  *entity.EffectPool
	blast *entity.EffectPool
	aura  *entity.EffectPool // Single slot for heal and revive
}

func (f *effects) clear() {
	f.spawn.Clear()
	f.kill.Clear()
	f.blast.Clear()
	f.aura.Clear()
}

func (f *effects) update(dt float64) {
	f.spawn.Update(dt)
	f.kill.Update(dt)
	f.blast.Update(dt)
	f.aura.Update(dt)
}

// Session is one playthrough. It is not safe for concurrent use: a single
// goroutine calls Update and then reads it for drawing.
type Session struct {
	cfg   Config
	log   *log.Logger
	rng   *rand.Rand
	audio Audio

	state State
	name  string

	player      entity.Player
	orbs        *entity.OrbPool
	enemies     *entity.EnemyPool
	projectiles *entity.ProjectilePool
	fx          effects

	skills        skill.Set
	offer         []skill.ID
	offerBuf      [skill.Count]skill.ID
	radiusMul     float64
	shootVelocity float64
	regen         skill.Interval
	ally          skill.Interval
	storm         skill.Interval
	fury          skill.Window
	sawAngle      float64
	sawFrames     int

	elapsed          float64
	spawnAcc         float64
	sinceShot        float64
	reviveCooldown   float64
	resurrectionUsed bool
	scoreRecorded    bool
	debug            bool

	grid       *physics.SpatialGrid
	candidates []int

	stats Stats
}

// New builds a session ready to play. Zero-valued config fields fall back to
// DefaultConfig.
func New(name string, cfg Config) *Session {
	cfg = withDefaults(cfg)
	s := &Session{
		cfg:         cfg,
		log:         cfg.Logger.With("player", name),
		rng:         cfg.Rand,
		audio:       cfg.Audio,
		name:        name,
		orbs:        entity.NewOrbPool(cfg.OrbCapacity),
		enemies:     entity.NewEnemyPool(cfg.EnemyCapacity),
		projectiles: entity.NewProjectilePool(cfg.ProjectileCapacity),
		fx: effects{
			spawn: entity.NewEffectPool(cfg.EffectCapacity),
			kill:  entity.NewEffectPool(cfg.EffectCapacity),
			blast: entity.NewEffectPool(cfg.EffectCapacity),
			aura:  entity.NewEffectPool(1),
		},
		grid:       physics.NewSpatialGrid(entity.ProjectileBound, gridCellSize),
		candidates: make([]int, 0, cfg.EnemyCapacity),
	}
	s.reset()
	return s
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Rand == nil {
		cfg.Rand = def.Rand
	}
	if cfg.Difficulty == nil {
		cfg.Difficulty = def.Difficulty
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	if cfg.Audio == nil {
		cfg.Audio = nopAudio{}
	}
	if cfg.OrbCapacity <= 0 {
		cfg.OrbCapacity = def.OrbCapacity
	}
	if cfg.EnemyCapacity <= 0 {
		cfg.EnemyCapacity = def.EnemyCapacity
	}
	if cfg.ProjectileCapacity <= 0 {
		cfg.ProjectileCapacity = def.ProjectileCapacity
	}
	if cfg.EffectCapacity <= 0 {
		cfg.EffectCapacity = def.EffectCapacity
	}
	if cfg.EnemyRadius <= 0 {
		cfg.EnemyRadius = def.EnemyRadius
	}
	if cfg.OrbScatter < 0 {
		cfg.OrbScatter = 0
	}
	if cfg.VictoryTime <= 0 {
		cfg.VictoryTime = def.VictoryTime
	}
	if cfg.PlayerBound <= 0 {
		cfg.PlayerBound = def.PlayerBound
	}
	return cfg
}

// reset restores everything but the player name.
func (s *Session) reset() {
	s.state = StatePlaying
	s.player = entity.NewPlayer()
	s.orbs.Clear()
	s.enemies.Clear()
	s.projectiles.Clear()
	s.fx.clear()

	s.skills.Reset()
	s.offer = s.offerBuf[:0]
	s.radiusMul = 1
	s.shootVelocity = 1
	s.regen = skill.NewInterval(RegenPeriod)
	s.ally = skill.NewInterval(AllyPeriod)
	s.storm = skill.NewInterval(StormPeriod)
	s.fury = skill.NewWindow(FuryDuration)
	s.sawAngle = 0
	s.sawFrames = 0

	s.elapsed = 0
	s.spawnAcc = 0
	s.sinceShot = BaseFireInterval
	s.reviveCooldown = 0
	s.resurrectionUsed = false
	s.scoreRecorded = false
	s.stats = Stats{}
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Name returns the player name.
func (s *Session) Name() string { return s.name }

// SetName changes the player name, typically after a full reset. Later log
// lines carry the new name.
func (s *Session) SetName(name string) {
	s.name = name
	s.log = s.cfg.Logger.With("player", name)
}

// Player returns the live player state.
func (s *Session) Player() *entity.Player { return &s.player }

// Stats returns the run counters.
func (s *Session) Stats() Stats { return s.stats }

// Elapsed returns the session time in seconds.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Remaining returns the seconds left until victory.
func (s *Session) Remaining() float64 {
	if r := s.cfg.VictoryTime - s.elapsed; r > 0 {
		return r
	}
	return 0
}

// Debug reports whether the debug overlay is on.
func (s *Session) Debug() bool { return s.debug }

// Skills exposes the acquired skill set for HUDs.
func (s *Session) Skills() *skill.Set { return &s.skills }

// OrbRadius returns the current orb pickup radius.
func (s *Session) OrbRadius() float64 { return entity.OrbBaseRadius * s.radiusMul }

// ShootVelocity returns the fire-rate multiplier.
func (s *Session) ShootVelocity() float64 { return s.shootVelocity }

// FuryRemaining returns the seconds left on an active fury window.
func (s *Session) FuryRemaining() float64 { return s.fury.Remaining() }

// Reviving reports whether the post-resurrection freeze is running.
func (s *Session) Reviving() bool { return s.reviveCooldown > 0 }

// PoolStats summarizes pool usage for the debug overlay.
type PoolStats struct {
	Orbs                 int
	Enemies              int
	Projectiles          int
	OrbOverwrites        int
	EnemyOverwrites      int
	ProjectileOverwrites int
	SpawnFx              int
	KillFx               int
	BlastFx              int
}

// Pools returns live counts and overwrite pressure.
func (s *Session) Pools() PoolStats {
	return PoolStats{
		Orbs:                 s.orbs.Live(),
		Enemies:              s.enemies.Live(),
		Projectiles:          s.projectiles.Live(),
		OrbOverwrites:        s.orbs.Overwrites(),
		EnemyOverwrites:      s.enemies.Overwrites(),
		ProjectileOverwrites: s.projectiles.Overwrites(),
		SpawnFx:              s.fx.spawn.Active(),
		KillFx:               s.fx.kill.Active(),
		BlastFx:              s.fx.blast.Active(),
	}
}
